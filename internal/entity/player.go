package entity

import (
	"image"

	"tileworld/internal/render"
)

// Loader returns a sprite by name. It does not return on a missing asset.
type Loader func(name string) image.Image

// Player is the static sprite pinned to the centre of the viewport.
type Player struct {
	Sprite string

	load Loader
	img  image.Image
}

func NewPlayer(sprite string, load Loader) *Player {
	return &Player{Sprite: sprite, load: load}
}

// Draw loads the sprite on first use, then centres it on dst.
func (p *Player) Draw(screen render.Surface) {
	if p.img == nil {
		p.img = p.load(p.Sprite)
	}

	sw, sh := screen.Size()
	b := p.img.Bounds()
	x := float64(sw)/2 - float64(b.Dx())/2
	y := float64(sh)/2 - float64(b.Dy())/2
	screen.DrawImage(p.img, x, y)
}
