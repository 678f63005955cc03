package life

import (
	"fmt"
	"math/bits"
	"time"

	"torus-life/internal/core"
	"torus-life/pkg/rng"
)

// Engine owns all state of one simulation run: the double-buffered packed
// board, the generation counter, and the loop-detector samples. Nothing is
// ambient; callers hold the Engine and drive it one Step at a time from a
// single goroutine. Collaborators (renderer, logger, display) only see it at
// step boundaries, so a reset always completes before anyone can observe the
// board again.
type Engine struct {
	cfg  Config
	mode Mode

	// cur and nxt are sized for the largest mode; smaller modes use a
	// prefix and keep unused column bits zero.
	cur []uint64
	nxt []uint64

	display  *core.ByteGrid
	pop      int
	lastHash uint32
	gen      uint64

	det detector
	rng *rng.RNG

	events []EventSink
	resets []ResetSink

	started time.Time
	clock   func() time.Time
}

// New returns an Engine for the given mode using default seeding.
func New(mode Mode) *Engine {
	cfg := DefaultConfig()
	cfg.Mode = mode
	return NewWithConfig(cfg)
}

// NewWithConfig returns an Engine configured from the provided options. The
// board starts empty; call Reset to populate it.
func NewWithConfig(cfg Config) *Engine {
	cfg.Mode.validate()
	e := &Engine{
		cfg:     cfg,
		mode:    cfg.Mode,
		cur:     make([]uint64, maxWidth),
		nxt:     make([]uint64, maxWidth),
		display: core.NewByteGrid(cfg.Mode.Width(), cfg.Mode.Height()),
		rng:     rng.New(cfg.Seed),
		clock:   time.Now,
	}
	return e
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size reports the logical grid dimensions for the active mode.
func (e *Engine) Size() core.Size {
	return core.Size{W: e.mode.Width(), H: e.mode.Height()}
}

// Cells exposes the unpacked display buffer, refreshed after every step and
// reset. Callers must treat it as read-only.
func (e *Engine) Cells() []uint8 { return e.display.Cells() }

// Columns exposes the live packed columns of the current board. Callers must
// treat the slice as read-only.
func (e *Engine) Columns() []uint64 { return e.cur[:e.mode.Width()] }

// Population returns the live-cell count of the current board.
func (e *Engine) Population() int { return e.pop }

// Generation returns the number of completed steps since the last reset.
func (e *Engine) Generation() uint64 { return e.gen }

// LastHash returns the hash computed by the most recent step, or zero right
// after a reset.
func (e *Engine) LastHash() uint32 { return e.lastHash }

// Mode returns the active board geometry.
func (e *Engine) Mode() Mode { return e.mode }

// AttachEventSink registers a consumer for detector and reset events.
func (e *Engine) AttachEventSink(s EventSink) {
	if s != nil {
		e.events = append(e.events, s)
	}
}

// AttachResetSink registers a consumer for end-of-run reports.
func (e *Engine) AttachResetSink(s ResetSink) {
	if s != nil {
		e.resets = append(e.resets, s)
	}
}

// Reset reseeds the RNG and starts a fresh run. A zero seed falls back to
// the configured seed.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	e.rng = rng.New(effective)
	e.newRun()
}

// Step advances the simulation by one generation, feeds the board hash to
// the loop detector and acts on its verdict. A short loop ends the run: the
// event and reset report go out, then a fresh random board replaces the old
// one. A long loop is logged and the run continues indefinitely.
func (e *Engine) Step() {
	w := e.mode.Width()
	hash, pop := stepColumns(e.nxt[:w], e.cur[:w], e.mode)
	e.cur, e.nxt = e.nxt, e.cur
	e.lastHash = hash
	e.pop = pop
	e.refreshDisplay()

	switch e.det.observe(hash, e.gen) {
	case VerdictShortLoop:
		e.emit(Event{Kind: EventShortLoop, Hash: hash, Generation: e.gen, Timestamp: e.clock()})
		// The matching step still counts as completed.
		e.gen++
		e.resetRun(hash)
		return
	case VerdictLongLoop:
		e.emit(Event{Kind: EventLongLoop, Hash: hash, Generation: e.gen, Timestamp: e.clock()})
	}
	e.gen++
}

// ManualReset ends the current run on request. It behaves like a detected
// short loop except the logged hash is zero, meaning no match.
func (e *Engine) ManualReset() {
	e.emit(Event{Kind: EventManualReset, Hash: 0, Generation: e.gen, Timestamp: e.clock()})
	e.resetRun(0)
}

// Reinitialize switches the board geometry and fully resets the run state.
// Calling it twice with the same mode is idempotent: generation zero,
// detector disarmed, fresh board.
func (e *Engine) Reinitialize(mode Mode) {
	mode.validate()
	if mode != e.mode {
		e.mode = mode
		e.display = core.NewByteGrid(mode.Width(), mode.Height())
		for i := range e.cur {
			e.cur[i] = 0
			e.nxt[i] = 0
		}
	}
	e.newRun()
}

// Parameters publishes the engine configuration for the overlay panel.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "board",
			Params: []core.Parameter{
				{Key: "mode", Label: "Mode", Value: e.mode.String()},
				{Key: "width", Label: "Width", Value: fmt.Sprintf("%d", e.mode.Width())},
				{Key: "height", Label: "Height", Value: fmt.Sprintf("%d", e.mode.Height())},
				{Key: "density", Label: "Initial density", Value: "0.25"},
			},
		},
		{
			Name: "detector",
			Params: []core.Parameter{
				{Key: "short_cadence", Label: "Short cadence", Value: fmt.Sprintf("%d", shortCadence)},
				{Key: "long_cadence", Label: "Long cadence", Value: fmt.Sprintf("%d", longCadence)},
			},
		},
	}}
}

// resetRun reports the finished run and starts a new one. The report carries
// the generation counter after the final step, the wall time the run took,
// and the hash that triggered the reset (zero for manual resets).
func (e *Engine) resetRun(lastHash uint32) {
	e.report(ResetReport{
		Generations: e.gen,
		Elapsed:     e.clock().Sub(e.started),
		LastHash:    lastHash,
	})
	e.newRun()
}

// newRun replaces the board with a fresh random one and clears everything a
// run owns: generation counter, detector samples, last hash.
func (e *Engine) newRun() {
	w := e.mode.Width()
	randomizeColumns(e.cur[:w], e.mode, e.rng)
	for i := range e.nxt {
		e.nxt[i] = 0
	}
	e.gen = 0
	e.lastHash = 0
	e.det.disarm()
	e.started = e.clock()
	e.pop = countPopulation(e.cur[:w])
	e.refreshDisplay()
}

// refreshDisplay unpacks the current columns into the row-major byte buffer
// renderers consume.
func (e *Engine) refreshDisplay() {
	w, h := e.mode.Width(), e.mode.Height()
	cells := e.display.Cells()
	for x := 0; x < w; x++ {
		col := e.cur[x]
		for y := 0; y < h; y++ {
			cells[e.display.Index(x, y)] = uint8(col >> uint(y) & 1)
		}
	}
}

// emit delivers an event to every attached sink. Sink failures stay at the
// boundary: a panicking or missing sink never disturbs the simulation.
func (e *Engine) emit(ev Event) {
	for _, s := range e.events {
		deliverEvent(s, ev)
	}
}

func deliverEvent(s EventSink, ev Event) {
	defer func() { _ = recover() }()
	s.Emit(ev)
}

// report delivers an end-of-run summary to every attached sink, with the
// same isolation as emit.
func (e *Engine) report(rep ResetReport) {
	for _, s := range e.resets {
		deliverReport(s, rep)
	}
}

func deliverReport(s ResetSink, rep ResetReport) {
	defer func() { _ = recover() }()
	s.ResetHappened(rep)
}

func countPopulation(cols []uint64) int {
	total := 0
	for _, c := range cols {
		total += bits.OnesCount64(c)
	}
	return total
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
