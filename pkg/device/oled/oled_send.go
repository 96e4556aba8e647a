package oled

import (
	"go.uber.org/zap"

	"oledpad/pkg/proto"
)

func (o *OLED) send(m proto.Message) error {
	bs := m.Encode()

	n, err := o.link.Write(bs)
	if err != nil {
		o.logger.With(zap.Stringer("msg", m), zap.Error(err)).Debug("transfer failed")
		return err
	}

	o.records++
	o.bytes += n

	o.logger.With(
		zap.Int("sent", n),
		zap.ByteString("data", bs),
	).Debug("transfer")

	return nil
}
