package oled

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"oledpad/pkg/proto"
)

type recLink struct {
	writes [][]byte
	fail   bool
	closed bool
}

func (l *recLink) Write(p []byte) (int, error) {
	if l.fail {
		return 0, errors.New("network unreachable")
	}
	l.writes = append(l.writes, append([]byte(nil), p...))
	return len(p), nil
}

func (l *recLink) Close() error {
	l.closed = true
	return nil
}

func TestOLEDRecords(t *testing.T) {
	link := &recLink{}
	dev := New(link, zaptest.NewLogger(t))

	require.NoError(t, dev.DrawPixel(3, 4, proto.On))
	require.NoError(t, dev.DrawPixel(127, 63, proto.Off))
	require.NoError(t, dev.Clear())
	require.NoError(t, dev.Close())

	require.Len(t, link.writes, 3)
	assert.Equal(t, "3,4,1", string(link.writes[0]))
	assert.Equal(t, "127,63,0", string(link.writes[1]))
	assert.Equal(t, "clear", string(link.writes[2]))
	assert.True(t, link.closed)

	o := dev.(*OLED)
	assert.Equal(t, 3, o.records)
	assert.Equal(t, len("3,4,1")+len("127,63,0")+len("clear"), o.bytes)
}

func TestOLEDSendFailure(t *testing.T) {
	link := &recLink{fail: true}
	dev := New(link, zaptest.NewLogger(t))

	assert.Error(t, dev.DrawPixel(1, 1, proto.On))
	assert.Error(t, dev.Clear())
	assert.Equal(t, 0, dev.(*OLED).records)
}
