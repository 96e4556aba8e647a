package virtual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"oledpad/pkg/proto"
)

func TestMocker(t *testing.T) {
	m := Mock(4, 2, zaptest.NewLogger(t))

	require.NoError(t, m.DrawPixel(1, 1, proto.On))
	require.NoError(t, m.DrawPixel(9, 9, proto.On))
	assert.True(t, m.Image().Lit(1, 1))

	require.NoError(t, m.Clear())
	assert.False(t, m.Image().Lit(1, 1))

	assert.Equal(t, []proto.Message{
		proto.Pixel(1, 1, proto.On),
		proto.Pixel(9, 9, proto.On),
		proto.Clear(),
	}, m.Messages())
	assert.NoError(t, m.Close())
}
