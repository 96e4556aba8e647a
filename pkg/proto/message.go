package proto

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

// ClearPayload is the literal record that blanks the whole display.
const ClearPayload = "clear"

type Kind uint8

const (
	KindPixel Kind = iota + 1
	KindClear
)

// Message is one record of the display protocol: either a pixel update
// "x,y,state" or the clear command.
type Message struct {
	Kind  Kind
	X     int
	Y     int
	State State
}

func Pixel(x, y int, state State) Message {
	return Message{Kind: KindPixel, X: x, Y: y, State: state}
}

func Clear() Message {
	return Message{Kind: KindClear}
}

func (m Message) Encode() []byte {
	if m.Kind == KindClear {
		return []byte(ClearPayload)
	}

	b := make([]byte, 0, 12)
	b = strconv.AppendInt(b, int64(m.X), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(m.Y), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(m.State), 10)
	return b
}

func (m Message) String() string {
	return string(m.Encode())
}

// Parse decodes one record. Surrounding whitespace (a trailing newline on
// stream links) is ignored.
func Parse(p []byte) (Message, error) {
	p = bytes.TrimSpace(p)
	if string(p) == ClearPayload {
		return Clear(), nil
	}

	fields := bytes.Split(p, []byte{','})
	if len(fields) != 3 {
		return Message{}, errors.Errorf("malformed record %q", p)
	}

	var vals [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(string(f))
		if err != nil {
			return Message{}, errors.Wrapf(err, "malformed record %q", p)
		}
		vals[i] = v
	}

	if vals[2] != 0 && vals[2] != 1 {
		return Message{}, errors.Errorf("invalid state %d", vals[2])
	}

	return Pixel(vals[0], vals[1], State(vals[2])), nil
}
