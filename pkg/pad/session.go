// Package pad turns pointer input into canvas changes and mirrors every
// change to the remote display.
package pad

import (
	"image"

	"github.com/rs/xid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"oledpad/pkg/canvas"
	"oledpad/pkg/proto"
	"oledpad/pkg/raster"
)

type mode int

const (
	idle mode = iota
	drawing
	erasing
)

func New(c *canvas.Canvas, dev proto.Control, scale int, logger *zap.Logger) *Session {
	id := xid.New().String()
	return &Session{
		id:     id,
		canvas: c,
		dev:    dev,
		scale:  lo.Ternary(scale > 0, scale, 1),
		logger: logger.With(zap.String("session", id)),
	}
}

// Session owns one canvas, the display it is mirrored to and the state of
// the current drag. It is not safe for concurrent use.
type Session struct {
	id     string
	canvas *canvas.Canvas
	dev    proto.Control
	scale  int
	logger *zap.Logger

	mode mode
	last *image.Point
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Canvas() *canvas.Canvas {
	return s.canvas
}

// Handle processes one event completely. Unknown events are ignored.
func (s *Session) Handle(ev Event) {
	switch ev.Type {
	case EventButtonDown:
		s.buttonDown(ev.Button, ev.Pos)
	case EventButtonUp:
		s.buttonUp(ev.Button)
	case EventMove:
		s.move(ev.Pos)
	case EventKey:
		if ev.Key == KeyClear {
			s.Clear()
		}
	}
}

// SetPixel changes one canvas cell and sends it to the display. Cells outside
// the canvas are dropped without sending anything.
func (s *Session) SetPixel(x, y int, state proto.State) (image.Point, bool) {
	pt, ok := s.canvas.SetPixel(x, y, state)
	if !ok {
		return pt, false
	}

	if err := s.dev.DrawPixel(pt.X, pt.Y, state); err != nil {
		s.logger.With(zap.Int("x", pt.X), zap.Int("y", pt.Y), zap.Error(err)).Debug("send pixel")
	}
	return pt, true
}

// DrawLine sets every cell from start to end.
func (s *Session) DrawLine(start, end image.Point, state proto.State) {
	raster.Line(start, end, func(p image.Point) {
		s.SetPixel(p.X, p.Y, state)
	})
}

func (s *Session) Clear() {
	s.canvas.Clear()
	if err := s.dev.Clear(); err != nil {
		s.logger.With(zap.Error(err)).Debug("send clear")
	}
	s.logger.Info("cleared")
}

// ToCanvas maps a screen position to a canvas cell.
func (s *Session) ToCanvas(p image.Point) image.Point {
	return image.Pt(floorDiv(p.X, s.scale), floorDiv(p.Y, s.scale))
}

func (s *Session) buttonDown(b Button, pos image.Point) {
	switch b {
	case ButtonLeft:
		s.mode = drawing
	case ButtonRight:
		s.mode = erasing
	default:
		return
	}

	s.last = s.touch(pos)
}

func (s *Session) buttonUp(b Button) {
	if (b == ButtonLeft && s.mode == drawing) || (b == ButtonRight && s.mode == erasing) {
		s.mode = idle
		s.last = nil
	}
}

func (s *Session) move(pos image.Point) {
	if s.mode == idle {
		return
	}

	cur := s.ToCanvas(pos)
	if s.last != nil && cur == *s.last {
		return
	}
	if s.last != nil && cur.In(s.canvas.Bounds()) {
		s.DrawLine(*s.last, cur, s.state())
		s.last = &cur
		return
	}

	s.last = s.touch(pos)
}

// touch sets the cell under pos and returns it, or nil when pos is outside
// the canvas.
func (s *Session) touch(pos image.Point) *image.Point {
	cur := s.ToCanvas(pos)
	pt, ok := s.SetPixel(cur.X, cur.Y, s.state())
	if !ok {
		return nil
	}
	return &pt
}

func (s *Session) state() proto.State {
	return lo.Ternary(s.mode == drawing, proto.On, proto.Off)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
