// Package eventlog records engine boundary events through slog without ever
// blocking or failing the simulation loop.
package eventlog

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"torus-life/internal/sims/life"
)

// record carries either an event or a reset report through the channel.
type record struct {
	ev  *life.Event
	rep *life.ResetReport
}

// Recorder is an EventSink/ResetSink pair backed by a buffered channel and a
// single writer goroutine. When the buffer is full, records are dropped
// rather than stalling the engine. Each run (reset to reset) is tagged with
// its own UUID so log lines from one board can be grouped.
type Recorder struct {
	log  *slog.Logger
	ch   chan record
	done chan struct{}
}

// New starts a Recorder writing to logger. A nil logger uses slog.Default;
// a non-positive buffer gets a small default.
func New(logger *slog.Logger, buffer int) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	if buffer <= 0 {
		buffer = 64
	}
	r := &Recorder{
		log:  logger,
		ch:   make(chan record, buffer),
		done: make(chan struct{}),
	}
	go r.drain()
	return r
}

// Emit queues a detector event. It never blocks; on a full buffer the event
// is dropped. Must not be called after Close.
func (r *Recorder) Emit(ev life.Event) {
	r.send(record{ev: &ev})
}

// ResetHappened queues an end-of-run report, with the same guarantees as
// Emit.
func (r *Recorder) ResetHappened(rep life.ResetReport) {
	r.send(record{rep: &rep})
}

// Close stops the writer after the queued records are flushed.
func (r *Recorder) Close() {
	close(r.ch)
	<-r.done
}

func (r *Recorder) send(rec record) {
	select {
	case r.ch <- rec:
	default:
	}
}

// drain owns the run UUID: it rotates after every reset report so the next
// board's lines carry a fresh identity.
func (r *Recorder) drain() {
	defer close(r.done)
	run := uuid.New()
	for rec := range r.ch {
		switch {
		case rec.ev != nil:
			r.log.Info("life event",
				"run", run.String(),
				"kind", rec.ev.Kind.String(),
				"hash", fmt.Sprintf("%08x", rec.ev.Hash),
				"generation", rec.ev.Generation,
				"at", rec.ev.Timestamp,
			)
		case rec.rep != nil:
			r.log.Info("run finished",
				"run", run.String(),
				"generations", rec.rep.Generations,
				"elapsed", rec.rep.Elapsed,
				"last_hash", fmt.Sprintf("%08x", rec.rep.LastHash),
			)
			run = uuid.New()
		}
	}
}
