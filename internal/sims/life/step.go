package life

// hashSeed is the initial value of the DJB2-style board hash.
const hashSeed uint32 = 5381

// stepColumns computes one generation from src into dst and returns the hash
// of the new board plus its live-cell count. dst and src must be distinct
// buffers of length Mode.Width(): every column is derived from the pre-step
// snapshot only.
//
// The hash is folded in the same pass that assembles the new columns: new
// cell bits stream into an 8-bit accumulator (row 0 first, column-major
// overall) and every 8th row the accumulator mixes into the running hash as
// hash*33 XOR acc. Both board heights are multiples of 8, so the accumulator
// is always empty at a column boundary.
func stepColumns(dst, src []uint64, m Mode) (hash uint32, pop int) {
	w, h := m.Width(), m.Height()
	hash = hashSeed
	var acc uint32
	for x := 0; x < w; x++ {
		left := src[(x+w-1)%w]
		center := src[x]
		right := src[(x+1)%w]

		var col uint64
		for y := 0; y < h; y++ {
			cw := m.window(center, y)
			// count covers the full 3x3 neighborhood including the
			// cell itself, so 3 means birth or survival-on-2 and 4
			// means survival-on-3 when the cell is already alive.
			count := winPop[m.window(left, y)] + winPop[cw] + winPop[m.window(right, y)]
			alive := (cw >> 1) & 1

			var next uint64
			if count == 3 || (count == 4 && alive == 1) {
				next = 1
			}
			col |= next << uint(y)
			pop += int(next)

			acc = acc<<1 | uint32(next)
			if y&7 == 7 {
				hash = hash*33 ^ acc
				acc = 0
			}
		}
		dst[x] = col
	}
	return hash, pop
}
