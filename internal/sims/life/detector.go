package life

// Sampling cadences for the loop detector. Six generations bounds the period
// of the common small still lifes and oscillators; 256 is the number of
// generations a glider needs to return to its original phase and position on
// a 64-wide toroidal board, so traveling patterns re-match exactly at the
// long cadence.
const (
	shortCadence = 6
	longCadence  = 256
)

// Verdict is the loop detector's decision for one observed board hash.
type Verdict int

const (
	// VerdictNone means no recurrence was seen; keep running.
	VerdictNone Verdict = iota
	// VerdictShortLoop means the board settled into a cycle of at most
	// shortCadence generations (still lifes, low-period oscillators).
	VerdictShortLoop
	// VerdictLongLoop means the board recurred at the long cadence,
	// characteristic of travelers that cross the torus and come back.
	VerdictLongLoop
)

// detector holds one sampled hash per cadence. Each slot carries an explicit
// armed flag so a legitimate board hash of zero can never self-match an
// empty slot.
type detector struct {
	shortSample uint32
	longSample  uint32
	shortArmed  bool
	longArmed   bool
}

// observe compares the hash of the board produced at generation gen against
// both samples, then refreshes whichever slots gen lands on. Matching takes
// priority over sampling, and a long match skips sampling for that step.
func (d *detector) observe(h uint32, gen uint64) Verdict {
	if d.shortArmed && h == d.shortSample {
		return VerdictShortLoop
	}
	if d.longArmed && h == d.longSample {
		return VerdictLongLoop
	}
	if gen%shortCadence == 0 {
		d.shortSample, d.shortArmed = h, true
	}
	if gen%longCadence == 0 {
		d.longSample, d.longArmed = h, true
	}
	return VerdictNone
}

// disarm returns the detector to its unarmed start-of-run state.
func (d *detector) disarm() {
	*d = detector{}
}
