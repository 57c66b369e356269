package treelist

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageSurface paints into an RGBA image. Together with FaceMeasurer it
// renders a List without a display.
type ImageSurface struct {
	Img      *image.RGBA
	Measurer *FaceMeasurer

	images map[string]image.Image
}

// NewImageSurface returns a surface backed by a new image of the given size.
func NewImageSurface(width, height int, m *FaceMeasurer) *ImageSurface {
	if m == nil {
		m = NewFaceMeasurer(nil)
	}
	return &ImageSurface{
		Img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		Measurer: m,
		images:   make(map[string]image.Image),
	}
}

func toImageRect(r Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (s *ImageSurface) FillRect(r Rect, c color.Color) {
	draw.Draw(s.Img, toImageRect(r), &image.Uniform{C: c}, image.Point{}, draw.Over)
}

func (s *ImageSurface) StrokeRect(r Rect, c color.Color, width int) {
	if width <= 0 || r.Empty() {
		return
	}
	s.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: width}, c)
	s.FillRect(Rect{X: r.X, Y: r.Y + r.H - width, W: r.W, H: width}, c)
	s.FillRect(Rect{X: r.X, Y: r.Y, W: width, H: r.H}, c)
	s.FillRect(Rect{X: r.X + r.W - width, Y: r.Y, W: width, H: r.H}, c)
}

// Line draws horizontal and vertical lines; other lines are drawn as their
// bounding box.
func (s *ImageSurface) Line(x1, y1, x2, y2 int, c color.Color) {
	s.FillRect(Rect{X: min(x1, x2), Y: min(y1, y2), W: max(abs(x2-x1), 1), H: max(abs(y2-y1), 1)}, c)
}

func (s *ImageSurface) Text(r Rect, text string, align fyne.TextAlign, c color.Color, bold bool) {
	text = truncateText(text, r.W, func(t string) int {
		return s.Measurer.MeasureText(t, bold).W
	})
	if text == "" {
		return
	}
	size := s.Measurer.MeasureText(text, bold)
	x := r.X
	switch align {
	case fyne.TextAlignCenter:
		x += (r.W - size.W) / 2
	case fyne.TextAlignTrailing:
		x += r.W - size.W
	}
	face := s.Measurer.Face
	ascent := face.Metrics().Ascent.Ceil()
	y := r.Y + (r.H-size.H)/2 + ascent

	dst := s.Img.SubImage(toImageRect(r)).(*image.RGBA)
	d := &font.Drawer{Dst: dst, Src: &image.Uniform{C: c}, Face: face}
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
	if bold {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(text)
	}
}

// Image draws a PNG or JPEG resource scaled to fit r, keeping its aspect ratio.
func (s *ImageSurface) Image(r Rect, res fyne.Resource) {
	if res == nil || r.Empty() {
		return
	}
	img, ok := s.images[res.Name()]
	if !ok {
		decoded, _, err := image.Decode(bytes.NewReader(res.Content()))
		if err != nil {
			fyne.LogError("Failed to decode image "+res.Name(), err)
		}
		img = decoded
		s.images[res.Name()] = img
	}
	if img == nil {
		return
	}

	src := img.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 {
		return
	}
	w, h := r.W, r.H
	ratio := float64(src.Dx()) / float64(src.Dy())
	if float64(w)/float64(h) > ratio {
		w = int(float64(h) * ratio)
	} else {
		h = int(float64(w) / ratio)
	}
	x := r.X + (r.W-w)/2
	y := r.Y + (r.H-h)/2
	draw.ApproxBiLinear.Scale(s.Img, image.Rect(x, y, x+w, y+h), img, src, draw.Over, nil)
}

// truncateText shortens text with an ellipsis until measure reports it fits width.
func truncateText(text string, width int, measure func(string) int) string {
	if width <= 0 {
		return ""
	}
	if measure(text) <= width {
		return text
	}
	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if measure(string(runes[:mid])+"…") <= width {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		return ""
	}
	return string(runes[:lo]) + "…"
}
