package canvas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oledpad/pkg/proto"
)

func countOn(c *Canvas) int {
	var n int
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.State(x, y) == proto.On {
				n++
			}
		}
	}
	return n
}

func TestNewInvalid(t *testing.T) {
	_, err := New(0, 64)
	assert.Error(t, err)
	_, err = New(128, -1)
	assert.Error(t, err)
}

func TestSetPixelInBounds(t *testing.T) {
	c, err := New(8, 4)
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			pt, ok := c.SetPixel(x, y, proto.On)
			require.True(t, ok)
			assert.Equal(t, image.Pt(x, y), pt)
			assert.Equal(t, proto.On, c.State(x, y))
			assert.Equal(t, 1, countOn(c), "only (%d,%d) must change", x, y)

			_, ok = c.SetPixel(x, y, proto.Off)
			require.True(t, ok)
			assert.Equal(t, 0, countOn(c))
		}
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	var refreshed int
	c, err := New(8, 4, WithRefresh(func() { refreshed++ }))
	require.NoError(t, err)
	c.SetPixel(1, 1, proto.On)
	refreshed = 0

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {8, 0}, {0, 4}, {8, 4}, {100, 100}} {
		pt, ok := c.SetPixel(p.X, p.Y, proto.On)
		assert.False(t, ok, "%v", p)
		assert.Equal(t, image.Point{}, pt)
	}

	assert.Equal(t, 0, refreshed)
	assert.Equal(t, 1, countOn(c))
}

func TestClear(t *testing.T) {
	var refreshed int
	c, err := New(8, 4, WithRefresh(func() { refreshed++ }))
	require.NoError(t, err)

	c.SetPixel(0, 0, proto.On)
	c.SetPixel(7, 3, proto.On)
	c.SetPixel(3, 2, proto.On)
	c.Clear()

	assert.Equal(t, 0, countOn(c))
	assert.Equal(t, 4, refreshed)

	c.Clear()
	assert.Equal(t, 0, countOn(c))
}

func TestSnapshot(t *testing.T) {
	c, err := New(4, 4)
	require.NoError(t, err)

	c.SetPixel(2, 2, proto.On)
	snap := c.Snapshot()
	c.Clear()

	assert.True(t, snap.Lit(2, 2))
	assert.False(t, c.Image().Lit(2, 2))
}
