package virtual

import (
	"image"
	"sync"

	"go.uber.org/zap"

	"oledpad/pkg/bitmap"
	"oledpad/pkg/proto"
)

// Mock returns a display that only lives in memory. Out of range pixels are
// logged and ignored, the same way the firmware ignores them.
func Mock(width, height int, logger *zap.Logger) *Mocker {
	return &Mocker{
		l:   logger.With(zap.String("device", "virtual")),
		bmp: bitmap.NewMono(image.Rect(0, 0, width, height)),
	}
}

type Mocker struct {
	l *zap.Logger

	mu   sync.Mutex
	bmp  *bitmap.Mono
	msgs []proto.Message
}

var _ proto.Control = (*Mocker)(nil)

func (m *Mocker) DrawPixel(x, y int, state proto.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.msgs = append(m.msgs, proto.Pixel(x, y, state))
	if !image.Pt(x, y).In(m.bmp.Bounds()) {
		m.l.With(zap.Int("x", x), zap.Int("y", y)).Info("draw-pixel out of range")
		return nil
	}

	m.bmp.SetLit(x, y, state == proto.On)
	m.l.With(zap.Int("x", x), zap.Int("y", y), zap.Uint8("state", uint8(state))).Debug("draw-pixel")
	return nil
}

func (m *Mocker) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.msgs = append(m.msgs, proto.Clear())
	m.bmp.Fill(false)
	m.l.Info("clear")
	return nil
}

func (m *Mocker) Close() error {
	m.l.With(zap.Int("messages", len(m.Messages()))).Info("close")
	return nil
}

// Messages returns every message received so far, in arrival order.
func (m *Mocker) Messages() []proto.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]proto.Message(nil), m.msgs...)
}

// Image returns a copy of what the display currently shows.
func (m *Mocker) Image() *bitmap.Mono {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bmp.Clone()
}
