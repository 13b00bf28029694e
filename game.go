package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tileworld/internal/assets"
	"tileworld/internal/camera"
	"tileworld/internal/config"
	"tileworld/internal/entity"
	"tileworld/internal/gamemode"
	"tileworld/internal/input"
	"tileworld/internal/world"
)

// DefaultBindings pans with WASD and the arrow keys.
var DefaultBindings = input.Bindings{
	input.Code(ebiten.KeyW):          input.DirUp,
	input.Code(ebiten.KeyArrowUp):    input.DirUp,
	input.Code(ebiten.KeyS):          input.DirDown,
	input.Code(ebiten.KeyArrowDown):  input.DirDown,
	input.Code(ebiten.KeyA):          input.DirLeft,
	input.Code(ebiten.KeyArrowLeft):  input.DirLeft,
	input.Code(ebiten.KeyD):          input.DirRight,
	input.Code(ebiten.KeyArrowRight): input.DirRight,
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Game is the ebiten driver: it turns polled input into events for the active mode.
type Game struct {
	cfg    config.Config
	mode   gamemode.Mode
	screen *Screen
	keys   []ebiten.Key
}

func NewGame(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	w := world.FromConfig(cfg)
	cam := camera.New(cfg, DefaultBindings)
	player := entity.NewPlayer(config.PlayerSprite, assets.MustLoad)

	return &Game{
		cfg:    cfg,
		mode:   gamemode.NewExplore(w, cam, player, ebiten.ActualFPS),
		screen: NewScreen(),
	}, nil
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.mode.HandleInput(input.KeyDownEvent(input.Code(k)))
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.mode.HandleInput(input.KeyUpEvent(input.Code(k)))
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.mode.HandleInput(input.WheelEvent(dy))
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			g.mode.HandleInput(input.MouseDownEvent(float64(x), float64(y), int(b)))
		}
	}

	g.mode.Update()
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.mode.Draw(g.screen.Target(screen))
}

// Layout: fixed logical resolution, ebiten scales to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
