package main

import (
	"context"
	"log"
	"net"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"oledpad/internal/config"
	"oledpad/internal/logging"
	"oledpad/pkg/device/oled"
	"oledpad/pkg/device/remote"
	"oledpad/pkg/device/virtual"
	"oledpad/pkg/discovery"
	"oledpad/pkg/proto"
)

func main() {
	cfg, err := config.ParseRelay(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func(cfg *config.RelayConfig) (*zap.Logger, error) {
				return logging.New(cfg.Debug)
			},
			newDevice,
			func(cfg *config.RelayConfig) (net.PacketConn, error) {
				return net.ListenPacket("udp", cfg.Listen)
			},
			func(cfg *config.RelayConfig, dev proto.Control, logger *zap.Logger) *remote.Service {
				return remote.NewService(dev, cfg.Width, cfg.Height, logger)
			},
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Invoke(
			remote.Proxy,
			advertise,
		),
	).Run()
}

func newDevice(cfg *config.RelayConfig, logger *zap.Logger, lc fx.Lifecycle) (proto.Control, error) {
	var dev proto.Control = virtual.Mock(cfg.Width, cfg.Height, logger)

	if cfg.Serial != "" {
		link := proto.NewSerial(cfg.Serial)
		if err := link.Open(); err != nil {
			return nil, err
		}
		dev = oled.New(link, logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return dev.Close()
		},
	})

	return dev, nil
}

func advertise(cfg *config.RelayConfig, lc fx.Lifecycle, logger *zap.Logger) error {
	if !cfg.Advertise {
		return nil
	}

	server, err := discovery.Advertise(cfg.Port(), "oledpad relay")
	if err != nil {
		return err
	}
	logger.With(zap.Int("port", cfg.Port())).Info("advertising")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return server.Shutdown()
		},
	})
	return nil
}
