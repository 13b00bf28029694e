package gamemode

import (
	"tileworld/internal/camera"
	"tileworld/internal/entity"
	"tileworld/internal/input"
	"tileworld/internal/logging"
	"tileworld/internal/render"
	"tileworld/internal/world"
)

// Explore pans a camera over a static world with the player sprite pinned in the middle.
type Explore struct {
	World  *world.World
	Camera *camera.Camera
	Player *entity.Player

	fps     func() float64
	overlay string
}

// NewExplore wires the mode. fps reports the host's measured frame rate.
func NewExplore(w *world.World, cam *camera.Camera, player *entity.Player, fps func() float64) *Explore {
	return &Explore{
		World:  w,
		Camera: cam,
		Player: player,
		fps:    fps,
	}
}

func (e *Explore) HandleInput(ev input.Event) {
	switch ev.Kind {
	case input.KeyDown:
		e.Camera.Press(ev.Code)
	case input.KeyUp:
		e.Camera.Release(ev.Code)
	case input.MouseWheel:
		e.Camera.Scroll(ev.WheelY)
		logging.Logger().Debug("zoom changed", "zoom", e.Camera.Zoom)
	case input.MouseDown:
		logging.Logger().Info("mouse down", "x", ev.X, "y", ev.Y, "button", ev.Button)
	}
}

func (e *Explore) Update() {
	e.Camera.Tick()
	e.overlay = e.Camera.Overlay(e.fps())
}

// Overlay is the diagnostic text computed on the last Update.
func (e *Explore) Overlay() string { return e.overlay }

func (e *Explore) Draw(screen render.Surface) {
	screen.Fill(render.ColBackground)
	e.World.Render(screen, world.View{
		OriginX: e.Camera.X,
		OriginY: e.Camera.Y,
		Zoom:    e.Camera.Zoom,
	})
	e.Player.Draw(screen)
	screen.Text(e.overlay, 0, 0)
}
