package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold 4 bytes per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// DensityColor maps a live-cell fraction onto a cold-to-hot indicator color,
// used by the overlay as a population gauge.
func DensityColor(density float64) color.RGBA {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	return color.RGBA{
		R: uint8(255 * density),
		G: uint8(64 + 96*(1-density)),
		B: uint8(255 * (1 - density)),
		A: 255,
	}
}
