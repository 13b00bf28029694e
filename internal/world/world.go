package world

import (
	"image/color"

	"tileworld/internal/config"
	"tileworld/internal/logging"
	"tileworld/internal/render"
)

// World owns a fixed grid stored row-major: idx = row*Width + col.
type World struct {
	Name          string
	Width, Height int
	TileWidth     float64
	TileHeight    float64

	tiles []Tile
}

// View is the camera state World needs to draw a frame.
type View struct {
	OriginX, OriginY float64
	Zoom             float64
}

// Generate builds the two-band terrain: rows [0, splitRow) open, the rest solid.
// splitRow is clamped into [0, height].
func Generate(name string, width, height, splitRow int) *World {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	splitRow = min(max(splitRow, 0), height)

	w := &World{
		Name:       name,
		Width:      width,
		Height:     height,
		TileWidth:  config.TileWidth,
		TileHeight: config.TileHeight,
		tiles:      make([]Tile, width*height),
	}
	open, solid := OpenTile(), SolidTile()
	for row := 0; row < height; row++ {
		t := open
		if row >= splitRow {
			t = solid
		}
		for col := 0; col < width; col++ {
			w.tiles[row*width+col] = t
		}
	}
	return w
}

// FromConfig generates the world described by cfg.
func FromConfig(cfg config.Config) *World {
	w := Generate(cfg.WorldName, cfg.WorldWidth, cfg.WorldHeight, cfg.SplitRow)
	w.TileWidth = cfg.TileWidth
	w.TileHeight = cfg.TileHeight
	return w
}

// At returns the tile at (col, row). ok is false outside the grid.
func (w *World) At(col, row int) (t Tile, ok bool) {
	if col < 0 || col >= w.Width || row < 0 || row >= w.Height {
		return Tile{}, false
	}
	return w.tiles[row*w.Width+col], true
}

// Bounds is the world size in world units.
func (w *World) Bounds() (float64, float64) {
	return float64(w.Width) * w.TileWidth, float64(w.Height) * w.TileHeight
}

// Render outlines every tile whose zoomed rectangle overlaps dst and returns how many were drawn.
// A failing tile is logged and skipped; the frame always completes.
func (w *World) Render(dst render.Surface, v View) int {
	sw, sh := dst.Size()
	tw, th := float32(w.TileWidth*v.Zoom), float32(w.TileHeight*v.Zoom)
	log := logging.Logger()

	drawn := 0
	for row := 0; row < w.Height; row++ {
		y := float32((float64(row)*w.TileHeight - v.OriginY) * v.Zoom)
		if y+th <= 0 || y >= float32(sh) {
			continue
		}
		for col := 0; col < w.Width; col++ {
			x := float32((float64(col)*w.TileWidth - v.OriginX) * v.Zoom)
			if x+tw <= 0 || x >= float32(sw) {
				continue
			}
			t := w.tiles[row*w.Width+col]
			if err := dst.StrokeRect(x, y, tw, th, tileColor(t)); err != nil {
				log.Warn("draw tile failed", "world", w.Name, "col", col, "row", row, "err", err)
				continue
			}
			drawn++
		}
	}
	return drawn
}

func tileColor(t Tile) color.Color {
	if t.Kind == KindSolid {
		return render.ColSolid
	}
	return render.ColOpen
}
