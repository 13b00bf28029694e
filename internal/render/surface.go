// Package render describes the drawing surface the host hands to the core.
package render

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// --- Colors ---
var (
	ColBackground = color.RGBA{0x1a, 0x33, 0x4d, 0xff} // (0.1, 0.2, 0.3)
	ColOpen       = color.RGBA{0x00, 0x00, 0xff, 0xff}
	ColSolid      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

var ErrBadRect = errors.New("render: rectangle is not drawable")

// Surface is implemented by the host screen and by Recorder in tests.
type Surface interface {
	Fill(clr color.Color)
	// StrokeRect outlines a rectangle one unit wide.
	StrokeRect(x, y, w, h float32, clr color.Color) error
	Text(s string, x, y float64)
	DrawImage(img image.Image, x, y float64)
	Size() (w, h int)
}

// CheckRect rejects rectangles the host cannot rasterise.
func CheckRect(x, y, w, h float32) error {
	for _, v := range [...]float32{x, y, w, h} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrBadRect
		}
	}
	if w <= 0 || h <= 0 {
		return ErrBadRect
	}
	return nil
}
