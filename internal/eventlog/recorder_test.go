package eventlog

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torus-life/internal/sims/life"
)

func TestRecorderWritesEventsAndReports(t *testing.T) {
	var buf bytes.Buffer
	r := New(slog.New(slog.NewTextHandler(&buf, nil)), 16)

	r.Emit(life.Event{
		Kind:       life.EventShortLoop,
		Hash:       0xdeadbeef,
		Generation: 42,
		Timestamp:  time.Unix(1000, 0),
	})
	r.ResetHappened(life.ResetReport{
		Generations: 43,
		Elapsed:     5 * time.Second,
		LastHash:    0xdeadbeef,
	})
	r.Close()

	out := buf.String()
	require.Contains(t, out, "kind=short-loop")
	require.Contains(t, out, "hash=deadbeef")
	require.Contains(t, out, "generation=42")
	require.Contains(t, out, "generations=43")
	assert.Contains(t, out, "run=")
}

func TestRecorderRotatesRunIDAfterReset(t *testing.T) {
	var buf bytes.Buffer
	r := New(slog.New(slog.NewTextHandler(&buf, nil)), 16)

	r.Emit(life.Event{Kind: life.EventLongLoop, Generation: 256})
	r.ResetHappened(life.ResetReport{Generations: 300})
	r.Emit(life.Event{Kind: life.EventLongLoop, Generation: 256})
	r.Close()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	first := runField(t, lines[0])
	second := runField(t, lines[2])
	assert.Equal(t, first, runField(t, lines[1]), "reset report must carry the finished run's ID")
	assert.NotEqual(t, first, second, "run ID not rotated after reset")
}

func runField(t *testing.T, line []byte) string {
	t.Helper()
	for _, f := range bytes.Fields(line) {
		if bytes.HasPrefix(f, []byte("run=")) {
			return string(f[len("run="):])
		}
	}
	t.Fatalf("no run field in %q", line)
	return ""
}

func TestFullBufferDropsInsteadOfBlocking(t *testing.T) {
	// No drain goroutine: the channel stays full, so the second send must
	// fall through immediately.
	r := &Recorder{ch: make(chan record, 1)}

	done := make(chan struct{})
	go func() {
		r.Emit(life.Event{Kind: life.EventShortLoop})
		r.Emit(life.Event{Kind: life.EventShortLoop})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}
	assert.Len(t, r.ch, 1)
}
