package config

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
)

const (
	DefaultPort   = 12345
	DefaultWidth  = 128
	DefaultHeight = 64
	DefaultScale  = 4
	DefaultTPS    = 100
)

// Config holds the options of the drawing tool. It is fixed once parsed.
type Config struct {
	Addr     string
	Port     int
	Width    int
	Height   int
	Scale    int
	Serial   string
	Discover bool
	DryRun   bool
	TPS      int
	Debug    bool
}

func Parse(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("oledpad", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", "127.0.0.1", "display IP address")
	fs.IntVar(&cfg.Port, "port", DefaultPort, "display UDP port")
	fs.IntVar(&cfg.Width, "width", DefaultWidth, "canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", DefaultHeight, "canvas height in pixels")
	fs.IntVar(&cfg.Scale, "scale", DefaultScale, "on-screen size of one canvas pixel")
	fs.StringVar(&cfg.Serial, "serial", "", "send to this serial port instead of UDP")
	fs.BoolVar(&cfg.Discover, "discover", false, "find the display via mDNS instead of --addr")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "draw to a virtual display only")
	fs.IntVar(&cfg.TPS, "tps", DefaultTPS, "input polls per second")
	fs.BoolVar(&cfg.Debug, "debug", false, "set debug")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("invalid scale %d", c.Scale)
	}
	if c.TPS <= 0 {
		return errors.Errorf("invalid tps %d", c.TPS)
	}
	if c.DryRun || c.Serial != "" {
		return nil
	}
	if err := validPort(c.Port); err != nil {
		return err
	}
	if c.Addr == "" && !c.Discover {
		return errors.New("no display address, use --addr or --discover")
	}
	return nil
}

// UseDiscovery reports whether the destination must be looked up over mDNS
// rather than taken from --addr.
func (c *Config) UseDiscovery() bool {
	return c.Discover || c.Addr == ""
}

// Destination is the "host:port" pixels are sent to.
func (c *Config) Destination() string {
	return net.JoinHostPort(c.Addr, strconv.Itoa(c.Port))
}

// RelayConfig holds the options of the relay.
type RelayConfig struct {
	Listen    string
	Width     int
	Height    int
	Serial    string
	Advertise bool
	Debug     bool
}

func ParseRelay(args []string) (*RelayConfig, error) {
	cfg := &RelayConfig{}

	fs := flag.NewFlagSet("relay", flag.ContinueOnError)
	fs.StringVar(&cfg.Listen, "listen", ":"+strconv.Itoa(DefaultPort), "listen addr")
	fs.IntVar(&cfg.Width, "width", DefaultWidth, "display width in pixels")
	fs.IntVar(&cfg.Height, "height", DefaultHeight, "display height in pixels")
	fs.StringVar(&cfg.Serial, "serial", "", "forward to this serial port (virtual display when empty)")
	fs.BoolVar(&cfg.Advertise, "advertise", false, "announce the relay via mDNS")
	fs.BoolVar(&cfg.Debug, "debug", false, "set debug")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (c *RelayConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid display size %dx%d", c.Width, c.Height)
	}
	_, port, err := net.SplitHostPort(c.Listen)
	if err != nil {
		return errors.Wrapf(err, "listen addr %q", c.Listen)
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return errors.Wrapf(err, "listen port %q", port)
	}
	return validPort(p)
}

// Port is the UDP port the relay listens on.
func (c *RelayConfig) Port() int {
	_, port, _ := net.SplitHostPort(c.Listen)
	p, _ := strconv.Atoi(port)
	return p
}

func validPort(p int) error {
	if p < 1 || p > 65535 {
		return errors.Errorf("invalid port %d", p)
	}
	return nil
}
