package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, "127.0.0.1:12345", cfg.Destination())
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"--addr", "10.0.0.7", "--port", "4210", "--width", "64", "--height", "32", "--scale", "8"})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.7:4210", cfg.Destination())
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
	assert.Equal(t, 8, cfg.Scale)
}

func TestParseInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "0"},
		{"--height", "-1"},
		{"--scale", "0"},
		{"--tps", "0"},
		{"--port", "0"},
		{"--port", "70000"},
		{"--addr", ""},
		{"--bogus"},
	} {
		_, err := Parse(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestDiscoverSelectsLookup(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.False(t, cfg.UseDiscovery())

	cfg, err = Parse([]string{"--discover"})
	require.NoError(t, err)
	assert.True(t, cfg.UseDiscovery())

	cfg, err = Parse([]string{"--addr", "", "--discover"})
	require.NoError(t, err)
	assert.True(t, cfg.UseDiscovery())
}

func TestParseRelay(t *testing.T) {
	cfg, err := ParseRelay([]string{"--listen", "0.0.0.0:4210"})
	require.NoError(t, err)
	assert.Equal(t, 4210, cfg.Port())

	_, err = ParseRelay([]string{"--listen", "nope"})
	assert.Error(t, err)
	_, err = ParseRelay([]string{"--width", "0"})
	assert.Error(t, err)
}
