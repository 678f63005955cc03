package life

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	events  []Event
	reports []ResetReport
}

func (c *captureSink) Emit(ev Event)                 { c.events = append(c.events, ev) }
func (c *captureSink) ResetHappened(rep ResetReport) { c.reports = append(c.reports, rep) }

type panickySink struct{}

func (panickySink) Emit(Event)                { panic("sink unavailable") }
func (panickySink) ResetHappened(ResetReport) { panic("sink unavailable") }

// plantPattern replaces the board with exactly the given cells, leaving the
// run state (generation, detector) untouched.
func plantPattern(e *Engine, cells [][2]int) {
	for i := range e.cur {
		e.cur[i] = 0
		e.nxt[i] = 0
	}
	for _, c := range cells {
		e.cur[c[0]] |= 1 << uint(c[1])
	}
	e.pop = countPopulation(e.cur[:e.mode.Width()])
	e.refreshDisplay()
}

func TestStillLifeTriggersShortLoopReset(t *testing.T) {
	e := New(ModeB)
	sink := &captureSink{}
	e.AttachEventSink(sink)
	e.AttachResetSink(sink)

	plantPattern(e, [][2]int{{3, 4}, {4, 4}, {3, 5}, {4, 5}})

	for i := 0; i < shortCadence+1 && len(sink.events) == 0; i++ {
		e.Step()
	}

	require.Len(t, sink.events, 1, "still life not detected within the short cadence")
	assert.Equal(t, EventShortLoop, sink.events[0].Kind)
	assert.NotZero(t, sink.events[0].Hash)

	require.Len(t, sink.reports, 1)
	assert.Equal(t, sink.events[0].Hash, sink.reports[0].LastHash)
	assert.Equal(t, sink.events[0].Generation+1, sink.reports[0].Generations)

	// The reset started a fresh run on a new random board.
	assert.Equal(t, uint64(0), e.Generation())
	assert.False(t, e.det.shortArmed)
	assert.False(t, e.det.longArmed)
	assert.NotZero(t, e.Population())
}

func TestLoneGliderLongLoopsForever(t *testing.T) {
	e := New(ModeB)
	sink := &captureSink{}
	e.AttachEventSink(sink)
	e.AttachResetSink(sink)

	plantPattern(e, glider)

	const steps = 1300
	for i := 0; i < steps; i++ {
		e.Step()
	}

	require.Empty(t, sink.reports, "lone glider must never trigger a reset")
	require.NotEmpty(t, sink.events, "lone glider never produced a long-loop event")
	for _, ev := range sink.events {
		assert.Equal(t, EventLongLoop, ev.Kind)
		assert.Zero(t, ev.Generation%longCadence,
			"long loop at generation %d, want a multiple of %d", ev.Generation, longCadence)
	}
	assert.Equal(t, uint64(steps), e.Generation())
}

func TestManualReset(t *testing.T) {
	e := New(ModeB)
	sink := &captureSink{}
	e.AttachEventSink(sink)
	e.AttachResetSink(sink)
	e.Reset(5)

	for i := 0; i < 10; i++ {
		e.Step()
	}
	genBefore := e.Generation()
	e.ManualReset()

	require.Len(t, sink.events, 1)
	assert.Equal(t, EventManualReset, sink.events[0].Kind)
	assert.Zero(t, sink.events[0].Hash)
	assert.Equal(t, genBefore, sink.events[0].Generation)

	require.Len(t, sink.reports, 1)
	assert.Equal(t, genBefore, sink.reports[0].Generations)
	assert.Zero(t, sink.reports[0].LastHash)
	assert.Equal(t, uint64(0), e.Generation())
}

func TestReinitializeIdempotent(t *testing.T) {
	e := New(ModeA)
	e.Reset(9)
	for i := 0; i < 20; i++ {
		e.Step()
	}

	e.Reinitialize(ModeB)
	e.Reinitialize(ModeB)

	assert.Equal(t, uint64(0), e.Generation())
	assert.False(t, e.det.shortArmed)
	assert.False(t, e.det.longArmed)
	assert.Equal(t, 64, e.Size().W)
	assert.Equal(t, 32, e.Size().H)
	require.Len(t, e.Columns(), 64)
	for x, col := range e.Columns() {
		assert.Zero(t, col>>32, "column %d keeps stale high bits after reinitialize", x)
	}
	assert.NotZero(t, e.Population())
}

func TestReinitializeRejectsInvalidMode(t *testing.T) {
	e := New(ModeA)
	assert.Panics(t, func() { e.Reinitialize(Mode(17)) })
}

func TestSinkFailuresDoNotDisturbTheRun(t *testing.T) {
	broken := New(ModeB)
	broken.AttachEventSink(panickySink{})
	broken.AttachResetSink(panickySink{})
	clean := New(ModeB)

	plantPattern(broken, [][2]int{{3, 4}, {4, 4}, {3, 5}, {4, 5}})
	plantPattern(clean, [][2]int{{3, 4}, {4, 4}, {3, 5}, {4, 5}})

	// Both engines share the default seed, so the post-reset boards and
	// every following step must stay in lockstep.
	for i := 0; i < 40; i++ {
		require.NotPanics(t, func() { broken.Step() })
		clean.Step()
		require.Equal(t, clean.LastHash(), broken.LastHash(),
			"engines diverged at step %d", i)
	}
}

func TestElapsedUsesInjectedClock(t *testing.T) {
	e := New(ModeB)
	now := time.Unix(1000, 0)
	e.clock = func() time.Time { return now }
	sink := &captureSink{}
	e.AttachResetSink(sink)
	e.Reset(3)

	now = now.Add(42 * time.Second)
	e.ManualReset()

	require.Len(t, sink.reports, 1)
	assert.Equal(t, 42*time.Second, sink.reports[0].Elapsed)
}
