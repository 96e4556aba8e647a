package proto

import (
	"strings"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// NewSerial returns a link to the first serial port whose name contains
// name, driven at 115200 baud with DTR and RTS raised. The port is opened
// by Open.
func NewSerial(name string) *Serial {
	return &Serial{
		name: name,
		mode: serial.Mode{BaudRate: 115200},
		dtr:  true,
		rts:  true,
	}
}

// Serial is a stream link. Records are terminated with a newline so the
// display can split them again.
type Serial struct {
	name string
	mode serial.Mode
	dtr  bool
	rts  bool
	port serial.Port
}

func (s *Serial) Ports() ([]string, error) {
	return serial.GetPortsList()
}

func (s *Serial) Open() error {
	ports, err := s.Ports()
	if err != nil {
		return errors.Wrap(err, "list serial ports")
	}

	var matched string
	for _, name := range ports {
		if strings.Contains(name, s.name) {
			matched = name
			break
		}
	}
	if matched == "" {
		return errors.Errorf("serial port %q not found", s.name)
	}

	port, err := serial.Open(matched, &s.mode)
	if err != nil {
		return errors.Wrapf(err, "open %s", matched)
	}

	if err := port.SetDTR(s.dtr); err != nil {
		return err
	}

	if err := port.SetRTS(s.rts); err != nil {
		return err
	}

	s.port = port
	return nil
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}

func (s *Serial) Write(p []byte) (n int, err error) {
	if s.port == nil {
		return 0, errors.New("serial port not open")
	}
	rec := make([]byte, 0, len(p)+1)
	rec = append(append(rec, p...), '\n')
	return s.port.Write(rec)
}
