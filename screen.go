package main

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"tileworld/internal/logging"
	"tileworld/internal/render"
)

const overlayFontSize = 16

// Screen adapts an ebiten frame to render.Surface.
type Screen struct {
	dst     *ebiten.Image
	face    *text.GoTextFace
	sprites map[image.Image]*ebiten.Image
}

func NewScreen() *Screen {
	s := &Screen{sprites: make(map[image.Image]*ebiten.Image)}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		logging.Logger().Warn("overlay font failed to load, using debug print", "err", err)
		return s
	}
	s.face = &text.GoTextFace{Source: src, Size: overlayFontSize}
	return s
}

// Target points the surface at this frame's image.
func (s *Screen) Target(dst *ebiten.Image) *Screen {
	s.dst = dst
	return s
}

func (s *Screen) Fill(clr color.Color) { s.dst.Fill(clr) }

func (s *Screen) StrokeRect(x, y, w, h float32, clr color.Color) error {
	if err := render.CheckRect(x, y, w, h); err != nil {
		return err
	}
	vector.StrokeRect(s.dst, x, y, w, h, 1, clr, false)
	return nil
}

func (s *Screen) Text(msg string, x, y float64) {
	if s.face == nil {
		ebitenutil.DebugPrintAt(s.dst, msg, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(render.ColText)
	text.Draw(s.dst, msg, s.face, op)
}

func (s *Screen) DrawImage(img image.Image, x, y float64) {
	ei, ok := img.(*ebiten.Image)
	if !ok {
		if ei, ok = s.sprites[img]; !ok {
			ei = ebiten.NewImageFromImage(img)
			s.sprites[img] = ei
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(ei, op)
}

func (s *Screen) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}
