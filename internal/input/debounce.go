// Package input turns raw edge signals (key presses, buttons) into single
// pending requests a simulation loop consumes at step boundaries.
package input

import "time"

// DefaultDebounce is the minimum spacing between accepted edges.
const DefaultDebounce = 60 * time.Millisecond

// Debouncer collapses rapid edges into at most one pending request. It is a
// single-slot queue: a second accepted edge before the first is consumed has
// no additional effect. All methods must be called from the loop goroutine.
type Debouncer struct {
	min     time.Duration
	last    time.Time
	pending bool
}

// NewDebouncer returns a Debouncer with the given minimum edge spacing.
// Non-positive values fall back to DefaultDebounce.
func NewDebouncer(min time.Duration) *Debouncer {
	if min <= 0 {
		min = DefaultDebounce
	}
	return &Debouncer{min: min}
}

// Edge records a raw edge at the given time and reports whether it was
// accepted. Edges closer than the minimum spacing to the previously accepted
// one are dropped.
func (d *Debouncer) Edge(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < d.min {
		return false
	}
	d.last = now
	d.pending = true
	return true
}

// Consume reports whether a request is pending and clears it.
func (d *Debouncer) Consume() bool {
	p := d.pending
	d.pending = false
	return p
}
