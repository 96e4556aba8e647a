package oled

import (
	"github.com/inhies/go-bytesize"
	"go.uber.org/zap"

	"oledpad/pkg/proto"
)

// New returns the sender side of an OLED display reached over link. Every
// pixel change and every clear is written to the link as one record.
func New(link proto.Link, logger *zap.Logger) proto.Control {
	return &OLED{
		link:   link,
		logger: logger.With(zap.String("device", "oled")),
	}
}

type OLED struct {
	link   proto.Link
	logger *zap.Logger

	records int
	bytes   int
}

func (o *OLED) DrawPixel(x, y int, state proto.State) error {
	return o.send(proto.Pixel(x, y, state))
}

func (o *OLED) Clear() error {
	return o.send(proto.Clear())
}

func (o *OLED) Close() error {
	o.logger.With(
		zap.Int("records", o.records),
		zap.String("sent", bytesize.New(float64(o.bytes)).String()),
	).Info("closing")

	return o.link.Close()
}
