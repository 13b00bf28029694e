package render

import (
	"image"
	"image/color"
)

type Rect struct {
	X, Y, W, H float32
	Color      color.Color
}

type TextCall struct {
	S    string
	X, Y float64
}

type ImageCall struct {
	Img  image.Image
	X, Y float64
}

// Recorder is an in-memory Surface that keeps every call.
// Fail, when set, decides which StrokeRect calls return an error.
type Recorder struct {
	W, H   int
	Filled color.Color
	Rects  []Rect
	Texts  []TextCall
	Images []ImageCall
	Fail   func(Rect) error
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Fill(clr color.Color) { r.Filled = clr }

func (r *Recorder) StrokeRect(x, y, w, h float32, clr color.Color) error {
	rc := Rect{X: x, Y: y, W: w, H: h, Color: clr}
	if r.Fail != nil {
		if err := r.Fail(rc); err != nil {
			return err
		}
	}
	if err := CheckRect(x, y, w, h); err != nil {
		return err
	}
	r.Rects = append(r.Rects, rc)
	return nil
}

func (r *Recorder) Text(s string, x, y float64) {
	r.Texts = append(r.Texts, TextCall{S: s, X: x, Y: y})
}

func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	r.Images = append(r.Images, ImageCall{Img: img, X: x, Y: y})
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }
