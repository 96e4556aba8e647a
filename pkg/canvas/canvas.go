// Package canvas holds the local copy of what the remote display shows.
package canvas

import (
	"image"

	"github.com/pkg/errors"

	"oledpad/pkg/bitmap"
	"oledpad/pkg/proto"
)

type Option func(c *Canvas)

// WithRefresh registers fn to be called after every change of the canvas.
func WithRefresh(fn func()) Option {
	return func(c *Canvas) {
		c.refresh = fn
	}
}

func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid canvas size %dx%d", width, height)
	}

	c := &Canvas{
		bmp:     bitmap.NewMono(image.Rect(0, 0, width, height)),
		refresh: func() {},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Canvas is a fixed size monochrome grid. Its size never changes.
type Canvas struct {
	bmp     *bitmap.Mono
	refresh func()
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.bmp.Bounds()
}

// SetPixel sets cell (x, y) to state and returns its coordinate. Cells
// outside the canvas are left alone and ok is false.
func (c *Canvas) SetPixel(x, y int, state proto.State) (pt image.Point, ok bool) {
	pt = image.Pt(x, y)
	if !pt.In(c.bmp.Bounds()) {
		return image.Point{}, false
	}

	c.bmp.SetLit(x, y, state == proto.On)
	c.refresh()
	return pt, true
}

func (c *Canvas) State(x, y int) proto.State {
	if c.bmp.Lit(x, y) {
		return proto.On
	}
	return proto.Off
}

func (c *Canvas) Clear() {
	c.bmp.Fill(false)
	c.refresh()
}

// Image exposes the backing bitmap. Callers must not modify it.
func (c *Canvas) Image() *bitmap.Mono {
	return c.bmp
}

func (c *Canvas) Snapshot() *bitmap.Mono {
	return c.bmp.Clone()
}
