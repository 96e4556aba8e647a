package remote

import (
	"context"
	"image"
	"net"
	"sync"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"oledpad/pkg/proto"
)

// maxDatagram is well above the longest valid record.
const maxDatagram = 512

// Proxy serves conn for the lifetime of the fx application, applying every
// received record through svc.
func Proxy(svc *Service, conn net.PacketConn, lifecycle fx.Lifecycle) {
	done := make(chan struct{})

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				if err := svc.Serve(conn); err != nil {
					svc.logger.With(zap.Error(err)).Error("serve failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := conn.Close()
			select {
			case <-done:
			case <-ctx.Done():
				return ctx.Err()
			}
			svc.LogStats()
			return err
		},
	})
}

// NewService validates incoming records against a width x height display
// before handing them to dev.
func NewService(dev proto.Control, width, height int, logger *zap.Logger) *Service {
	return &Service{
		dev:    dev,
		bounds: image.Rect(0, 0, width, height),
		logger: logger.With(zap.String("via", "remote")),
	}
}

type Service struct {
	dev    proto.Control
	bounds image.Rectangle
	logger *zap.Logger

	mu    sync.Mutex
	stats Stats
}

// Serve reads datagrams from conn until it is closed.
func (s *Service) Serve(conn net.PacketConn) error {
	buf := make([]byte, maxDatagram)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return errors.Wrap(err, "read datagram")
		}

		if err := s.Handle(buf[:n]); err != nil {
			s.logger.With(zap.Stringer("from", from), zap.Error(err)).Info("dropped")
		}
	}
}

// Handle applies a single record.
func (s *Service) Handle(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Datagrams++
	s.stats.Bytes += len(p)

	msg, err := proto.Parse(p)
	if err != nil {
		s.stats.Dropped++
		return err
	}

	switch msg.Kind {
	case proto.KindClear:
		err = s.dev.Clear()
	case proto.KindPixel:
		if !image.Pt(msg.X, msg.Y).In(s.bounds) {
			s.stats.Dropped++
			return errors.Errorf("pixel %d,%d out of range", msg.X, msg.Y)
		}
		err = s.dev.DrawPixel(msg.X, msg.Y, msg.State)
	}
	if err != nil {
		s.stats.Dropped++
		return errors.Wrapf(err, "apply %s", msg)
	}

	s.stats.Applied++
	return nil
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Service) LogStats() {
	st := s.Stats()
	s.logger.With(
		zap.Int("datagrams", st.Datagrams),
		zap.Int("applied", st.Applied),
		zap.Int("dropped", st.Dropped),
		zap.String("received", bytesize.New(float64(st.Bytes)).String()),
	).Info("stats")
}
