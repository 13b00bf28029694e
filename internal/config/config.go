package config

import (
	"errors"
	"fmt"
)

// Screen Constants
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Tile World"
	TPS          = 60
)

// World Constants
const (
	TileWidth   = 80.0
	TileHeight  = 100.0
	WorldWidth  = 60
	WorldHeight = 30
	SplitRow    = 20
	WorldName   = "Some World"
)

// Camera Constants
const (
	PanStep     = 2.0
	ZoomStep    = 0.1
	InitialZoom = 1.0
	MinZoom     = 0.1
	MaxZoom     = 4.0
	OriginX     = TileWidth * 20
	OriginY     = TileWidth * 20
)

// PlayerSprite is the embedded sprite drawn at the centre of the viewport.
const PlayerSprite = "player.png"

var ErrInvalid = errors.New("invalid config")

// Config bundles the static constants so tests can build smaller worlds.
type Config struct {
	WindowWidth, WindowHeight int
	TileWidth, TileHeight     float64
	WorldWidth, WorldHeight   int
	SplitRow                  int
	WorldName                 string

	PanStep     float64
	ZoomStep    float64
	InitialZoom float64
	MinZoom     float64
	MaxZoom     float64
	OriginX     float64
	OriginY     float64
}

func Default() Config {
	return Config{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		TileWidth:    TileWidth,
		TileHeight:   TileHeight,
		WorldWidth:   WorldWidth,
		WorldHeight:  WorldHeight,
		SplitRow:     SplitRow,
		WorldName:    WorldName,
		PanStep:      PanStep,
		ZoomStep:     ZoomStep,
		InitialZoom:  InitialZoom,
		MinZoom:      MinZoom,
		MaxZoom:      MaxZoom,
		OriginX:      OriginX,
		OriginY:      OriginY,
	}
}

// Validate reports the first field that would break the world or camera.
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	case c.TileWidth <= 0 || c.TileHeight <= 0:
		return fmt.Errorf("%w: tile %gx%g", ErrInvalid, c.TileWidth, c.TileHeight)
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("%w: world %dx%d", ErrInvalid, c.WorldWidth, c.WorldHeight)
	case c.SplitRow < 0 || c.SplitRow > c.WorldHeight:
		return fmt.Errorf("%w: split row %d outside [0, %d]", ErrInvalid, c.SplitRow, c.WorldHeight)
	case c.MinZoom <= 0 || c.MaxZoom < c.MinZoom:
		return fmt.Errorf("%w: zoom range [%g, %g]", ErrInvalid, c.MinZoom, c.MaxZoom)
	case c.InitialZoom < c.MinZoom || c.InitialZoom > c.MaxZoom:
		return fmt.Errorf("%w: initial zoom %g", ErrInvalid, c.InitialZoom)
	}
	return nil
}

// Bounds is the largest origin the camera may reach.
func (c Config) Bounds() (maxX, maxY float64) {
	return float64(c.WorldWidth) * c.TileWidth, float64(c.WorldHeight) * c.TileHeight
}
