package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"oledpad/internal/config"
	"oledpad/internal/logging"
	"oledpad/pkg/canvas"
	"oledpad/pkg/device/oled"
	"oledpad/pkg/device/virtual"
	"oledpad/pkg/discovery"
	"oledpad/pkg/pad"
	"oledpad/pkg/proto"
	"oledpad/pkg/window"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	var win *window.Window
	var session *pad.Session

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func(cfg *config.Config) (*zap.Logger, error) {
				return logging.New(cfg.Debug)
			},
			newDevice,
			func(cfg *config.Config, logger *zap.Logger) *window.Window {
				return window.New(window.Options{
					Width:  cfg.Width,
					Height: cfg.Height,
					Scale:  cfg.Scale,
					TPS:    cfg.TPS,
				}, logger)
			},
			func(cfg *config.Config, win *window.Window) (*canvas.Canvas, error) {
				return canvas.New(cfg.Width, cfg.Height, canvas.WithRefresh(win.Invalidate))
			},
			func(cfg *config.Config, c *canvas.Canvas, dev proto.Control, logger *zap.Logger) *pad.Session {
				return pad.New(c, dev, cfg.Scale, logger)
			},
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
		fx.Populate(&win, &session),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	runErr := win.Run(session)

	stopCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Println(err)
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}

func newDevice(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) (proto.Control, error) {
	var dev proto.Control

	switch {
	case cfg.DryRun:
		dev = virtual.Mock(cfg.Width, cfg.Height, logger)
	case cfg.Serial != "":
		link := proto.NewSerial(cfg.Serial)
		if err := link.Open(); err != nil {
			return nil, err
		}
		dev = oled.New(link, logger)
	default:
		addr := cfg.Destination()
		if cfg.UseDiscovery() {
			found, err := discovery.Lookup(2 * time.Second)
			if err != nil {
				return nil, err
			}
			addr = found
		}
		link, err := proto.NewUDP(addr)
		if err != nil {
			return nil, err
		}
		logger.With(zap.String("addr", link.Addr())).Info("sending to display")
		dev = oled.New(link, logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return dev.Close()
		},
	})

	return dev, nil
}
