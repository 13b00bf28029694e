// Package camera tracks the view origin, zoom and held movement keys.
package camera

import (
	"fmt"
	"sort"

	"tileworld/internal/config"
	"tileworld/internal/input"
)

// Camera is mutated once per tick by the active mode. Not safe for concurrent use.
type Camera struct {
	X, Y float64
	Zoom float64

	maxX, maxY float64
	cfg        config.Config
	bindings   input.Bindings
	held       map[input.Code]struct{}
}

func New(cfg config.Config, bindings input.Bindings) *Camera {
	maxX, maxY := cfg.Bounds()
	c := &Camera{
		X:        cfg.OriginX,
		Y:        cfg.OriginY,
		Zoom:     cfg.InitialZoom,
		maxX:     maxX,
		maxY:     maxY,
		cfg:      cfg,
		bindings: bindings,
		held:     make(map[input.Code]struct{}),
	}
	c.clamp()
	return c
}

// --- Input ---

func (c *Camera) Press(code input.Code)   { c.held[code] = struct{}{} }
func (c *Camera) Release(code input.Code) { delete(c.held, code) }

func (c *Camera) IsHeld(code input.Code) bool {
	_, ok := c.held[code]
	return ok
}

// Held returns the held codes in ascending order.
func (c *Camera) Held() []input.Code {
	out := make([]input.Code, 0, len(c.held))
	for code := range c.held {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Scroll moves zoom one step toward dy's sign and keeps it within [MinZoom, MaxZoom].
func (c *Camera) Scroll(dy float64) {
	switch {
	case dy > 0:
		c.Zoom += c.cfg.ZoomStep
	case dy < 0:
		c.Zoom -= c.cfg.ZoomStep
	default:
		return
	}
	c.Zoom = min(max(c.Zoom, c.cfg.MinZoom), c.cfg.MaxZoom)
}

// --- Update ---

// Tick applies one PanStep per held bound key, then clamps.
// Held keys add up: two directions at once move diagonally faster than one.
func (c *Camera) Tick() {
	for code := range c.held {
		dx, dy := c.bindings[code].Delta()
		c.X += dx * c.cfg.PanStep
		c.Y += dy * c.cfg.PanStep
	}
	c.clamp()
}

func (c *Camera) clamp() {
	c.X = min(max(c.X, 0), c.maxX)
	c.Y = min(max(c.Y, 0), c.maxY)
}

// Overlay is the diagnostic line shown in the corner of the screen.
func (c *Camera) Overlay(fps float64) string {
	return fmt.Sprintf("FPS: %.1f, X: %g, Y: %g", fps, c.X, c.Y)
}
