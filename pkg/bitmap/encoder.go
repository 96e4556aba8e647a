package bitmap

import (
	"image/color"
)

// Encode expands src into RGBA bytes (4 per pixel, row major), painting lit
// pixels with on and dark pixels with off.
func Encode(src *Mono, on, off color.RGBA) []byte {
	b := src.Bounds()
	dst := make([]byte, 0, 4*b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := off
			if src.Lit(x, y) {
				c = on
			}
			dst = append(dst, c.R, c.G, c.B, c.A)
		}
	}

	return dst
}
