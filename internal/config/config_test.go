package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesConstants(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	maxX, maxY := c.Bounds()
	assert.Equal(t, 4800.0, maxX)
	assert.Equal(t, 3000.0, maxY)
	assert.Equal(t, 1600.0, c.OriginX)
	assert.Equal(t, 1600.0, c.OriginY)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"window":       func(c *Config) { c.WindowWidth = 0 },
		"tile":         func(c *Config) { c.TileHeight = -1 },
		"world":        func(c *Config) { c.WorldHeight = 0 },
		"split":        func(c *Config) { c.SplitRow = c.WorldHeight + 1 },
		"zoom range":   func(c *Config) { c.MinZoom = 0 },
		"initial zoom": func(c *Config) { c.InitialZoom = c.MaxZoom * 2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
