package life

import (
	"math/bits"

	"torus-life/pkg/rng"
)

// winPop maps a 3-bit pattern to its population count.
var winPop = [8]uint8{0, 1, 1, 2, 1, 2, 2, 3}

// window extracts the three vertically adjacent bits of col around row y,
// wrapped circularly: bit 0 is row y-1, bit 1 is row y, bit 2 is row y+1.
// The rotate must cover exactly the column's effective bit width or the
// vertical wrap breaks, so ModeB rotates a uint32.
func (m Mode) window(col uint64, y int) uint64 {
	s := y - 1
	if s < 0 {
		s += m.Height()
	}
	if m == ModeB {
		return uint64(bits.RotateLeft32(uint32(col), -s) & 7)
	}
	return bits.RotateLeft64(col, -s) & 7
}

// randomizeColumns fills cols with cells at exactly 25% density: each bit is
// the AND of two independent uniform bits. ModeB columns are masked so the
// unused high bits stay zero.
func randomizeColumns(cols []uint64, m Mode, r *rng.RNG) {
	mask := m.colMask()
	for x := range cols {
		a := r.Uint64()
		b := r.Uint64()
		cols[x] = a & b & mask
	}
}
