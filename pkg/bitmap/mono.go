package bitmap

import (
	"image"
	"image/color"
)

func NewMono(r image.Rectangle) *Mono {
	return &Mono{
		pixels: make([]byte, r.Dx()*r.Dy()),
		stride: r.Dx(),
		bounds: r,
	}
}

// Mono is a monochrome image, one byte per pixel. It implements the
// draw.Image interface.
type Mono struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (m *Mono) Bounds() image.Rectangle {
	return m.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (m *Mono) ColorModel() color.Model {
	return MonoModel
}

// At implements the image.Image (and draw.Image) interface.
func (m *Mono) At(x, y int) color.Color {
	return mono(m.Lit(x, y))
}

// Set implements the draw.Image interface.
func (m *Mono) Set(x, y int, c color.Color) {
	m.SetLit(x, y, bool(MonoModel.Convert(c).(mono)))
}

func (m *Mono) Lit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(m.bounds) {
		return false
	}
	return m.pixels[m.offset(x, y)] != 0
}

func (m *Mono) SetLit(x, y int, lit bool) {
	if !(image.Point{X: x, Y: y}).In(m.bounds) {
		return
	}
	var b byte
	if lit {
		b = 1
	}
	m.pixels[m.offset(x, y)] = b
}

// Fill sets every pixel to the same state.
func (m *Mono) Fill(lit bool) {
	var b byte
	if lit {
		b = 1
	}
	for i := range m.pixels {
		m.pixels[i] = b
	}
}

func (m *Mono) Clone() *Mono {
	c := NewMono(m.bounds)
	copy(c.pixels, m.pixels)
	return c
}

func (m *Mono) offset(x, y int) int {
	return (y-m.bounds.Min.Y)*m.stride + (x - m.bounds.Min.X)
}

// MonoModel converts any color to lit or dark. A color is lit when its
// luminance is at least half of the full scale, and it is not transparent.
var MonoModel color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if m, ok := c.(mono); ok {
		return m
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return mono(false)
	}
	// same weights as color.GrayModel
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return mono(y >= 0x8000)
})

var (
	Lit  color.Color = mono(true)
	Dark color.Color = mono(false)
)

// mono implements the color.Color interface.
type mono bool

// RGBA implements the color.Color interface.
func (c mono) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}
