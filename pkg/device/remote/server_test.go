package remote

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"oledpad/pkg/device/oled"
	"oledpad/pkg/device/virtual"
	"oledpad/pkg/proto"
)

func TestHandle(t *testing.T) {
	dev := virtual.Mock(8, 4, zaptest.NewLogger(t))
	svc := NewService(dev, 8, 4, zaptest.NewLogger(t))

	assert.NoError(t, svc.Handle([]byte("2,3,1")))
	assert.Error(t, svc.Handle([]byte("8,0,1")))
	assert.Error(t, svc.Handle([]byte("garbage")))
	assert.NoError(t, svc.Handle([]byte("clear")))

	assert.Equal(t, []proto.Message{proto.Pixel(2, 3, proto.On), proto.Clear()}, dev.Messages())
	assert.Equal(t, Stats{Datagrams: 4, Bytes: 5 + 5 + 7 + 5, Applied: 2, Dropped: 2}, svc.Stats())
}

func TestServeLoopback(t *testing.T) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	dev := virtual.Mock(128, 64, zaptest.NewLogger(t))
	svc := NewService(dev, 128, 64, zaptest.NewLogger(t))

	served := make(chan error, 1)
	go func() { served <- svc.Serve(conn) }()

	link, err := proto.NewUDP(conn.LocalAddr().String())
	require.NoError(t, err)
	sender := oled.New(link, zaptest.NewLogger(t))

	require.NoError(t, sender.DrawPixel(10, 20, proto.On))
	require.NoError(t, sender.DrawPixel(11, 20, proto.On))
	require.NoError(t, sender.Clear())

	require.Eventually(t, func() bool {
		return len(dev.Messages()) == 3
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, []proto.Message{
		proto.Pixel(10, 20, proto.On),
		proto.Pixel(11, 20, proto.On),
		proto.Clear(),
	}, dev.Messages())

	require.NoError(t, sender.Close())
	require.NoError(t, conn.Close())
	assert.NoError(t, <-served)
}
