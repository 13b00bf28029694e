// Package gamemode holds the state the host driver forwards input, ticks and frames to.
package gamemode

import (
	"tileworld/internal/input"
	"tileworld/internal/render"
)

// Mode is the seam between the host event loop and the core.
// The driver calls HandleInput for each event, then Update once per tick, then Draw per frame.
type Mode interface {
	HandleInput(ev input.Event)
	Update()
	Draw(screen render.Surface)
}
