package life

import "time"

// EventKind classifies the boundary events the engine reports.
type EventKind uint8

const (
	// EventShortLoop is a detected cycle of period at most the short
	// cadence. The engine resets the board after emitting it.
	EventShortLoop EventKind = iota
	// EventLongLoop is a recurrence at the long cadence. The engine keeps
	// running; travelers are interesting, not degenerate.
	EventLongLoop
	// EventManualReset is an externally requested reset. Its hash is
	// always zero since no match was involved.
	EventManualReset
)

func (k EventKind) String() string {
	switch k {
	case EventShortLoop:
		return "short-loop"
	case EventLongLoop:
		return "long-loop"
	case EventManualReset:
		return "manual-reset"
	}
	return "unknown"
}

// Event describes a single detector or reset occurrence.
type Event struct {
	Kind       EventKind
	Hash       uint32
	Generation uint64
	Timestamp  time.Time
}

// ResetReport summarizes a finished run, handed to display collaborators
// just before the fresh board replaces the old one.
type ResetReport struct {
	Generations uint64
	Elapsed     time.Duration
	LastHash    uint32
}

// EventSink consumes detector events. Implementations must not block; the
// engine proceeds identically whether or not delivery succeeds.
type EventSink interface {
	Emit(ev Event)
}

// ResetSink consumes end-of-run reports.
type ResetSink interface {
	ResetHappened(rep ResetReport)
}
