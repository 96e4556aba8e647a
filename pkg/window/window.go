// Package window shows the canvas in a desktop window and feeds mouse and
// keyboard input to a drawing session.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"oledpad/pkg/bitmap"
	"oledpad/pkg/pad"
)

const Title = "OLED Drawing Tool - Left: Draw | Right: Erase | C: Clear"

var (
	SetColor     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ClearedColor = color.RGBA{A: 0xFF}
)

type Options struct {
	Width  int
	Height int
	Scale  int
	TPS    int
}

func New(opts Options, logger *zap.Logger) *Window {
	return &Window{
		opts:   opts,
		logger: logger.With(zap.String("via", "window")),
		dirty:  true,
	}
}

// Window implements ebiten.Game.
type Window struct {
	opts    Options
	logger  *zap.Logger
	session *pad.Session

	frame *ebiten.Image
	dirty bool
	prev  image.Point
}

// Invalidate marks the canvas as changed so the next frame redraws it.
func (w *Window) Invalidate() {
	w.dirty = true
}

// Run blocks until the window is closed. Must be called from the main
// goroutine.
func (w *Window) Run(s *pad.Session) error {
	w.session = s

	ebiten.SetWindowSize(w.opts.Width*w.opts.Scale, w.opts.Height*w.opts.Scale)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(w.opts.TPS)

	w.logger.With(
		zap.Int("width", w.opts.Width),
		zap.Int("height", w.opts.Height),
		zap.Int("scale", w.opts.Scale),
	).Info("window open")

	return ebiten.RunGame(w)
}

// --- ebiten.Game interface ---

func (w *Window) Update() error {
	for _, ev := range w.poll() {
		w.session.Handle(ev)
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		w.frame = ebiten.NewImage(w.opts.Width, w.opts.Height)
	}
	if w.dirty {
		w.frame.WritePixels(bitmap.Encode(w.session.Canvas().Image(), SetColor, ClearedColor))
		w.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.opts.Scale), float64(w.opts.Scale))
	screen.DrawImage(w.frame, op)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.opts.Width * w.opts.Scale, w.opts.Height * w.opts.Scale
}

// --- Input capture ---

// poll collects this tick's input in the order presses, motion, releases.
func (w *Window) poll() []pad.Event {
	var evs []pad.Event

	mx, my := ebiten.CursorPosition()

	buttons := []struct {
		eb  ebiten.MouseButton
		btn pad.Button
	}{
		{ebiten.MouseButtonLeft, pad.ButtonLeft},
		{ebiten.MouseButtonRight, pad.ButtonRight},
	}

	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			evs = append(evs, pad.Down(b.btn, mx, my))
		}
	}

	if cur := image.Pt(mx, my); cur != w.prev {
		w.prev = cur
		evs = append(evs, pad.Move(mx, my))
	}

	for _, b := range buttons {
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			evs = append(evs, pad.Up(b.btn))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		evs = append(evs, pad.Press(pad.KeyClear))
	}

	return evs
}
