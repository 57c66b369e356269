package treelist

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

// canvasSurface records a paint pass as fyne canvas objects. Objects are
// reused between passes by position, so a stable paint order allocates
// nothing after the first frame.
type canvasSurface struct {
	objects []fyne.CanvasObject
	used    int

	bounds   Rect
	textSize float32
	measurer *fyneMeasurer
}

func newCanvasSurface(m *fyneMeasurer) *canvasSurface {
	return &canvasSurface{measurer: m}
}

func (s *canvasSurface) begin(bounds Rect, textSize float32) {
	s.used = 0
	s.bounds = bounds
	s.textSize = textSize
}

// end hides the objects the last pass did not use.
func (s *canvasSurface) end() {
	for _, o := range s.objects[s.used:] {
		o.Hide()
	}
}

func (s *canvasSurface) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *canvasSurface) rect() *canvas.Rectangle {
	if s.used < len(s.objects) {
		if r, ok := s.objects[s.used].(*canvas.Rectangle); ok {
			s.used++
			return r
		}
	}
	r := canvas.NewRectangle(color.Transparent)
	s.put(r)
	return r
}

func (s *canvasSurface) text() *canvas.Text {
	if s.used < len(s.objects) {
		if t, ok := s.objects[s.used].(*canvas.Text); ok {
			s.used++
			return t
		}
	}
	t := canvas.NewText("", color.Black)
	s.put(t)
	return t
}

func (s *canvasSurface) line() *canvas.Line {
	if s.used < len(s.objects) {
		if l, ok := s.objects[s.used].(*canvas.Line); ok {
			s.used++
			return l
		}
	}
	l := canvas.NewLine(color.Black)
	s.put(l)
	return l
}

func (s *canvasSurface) image() *canvas.Image {
	if s.used < len(s.objects) {
		if i, ok := s.objects[s.used].(*canvas.Image); ok {
			s.used++
			return i
		}
	}
	i := &canvas.Image{FillMode: canvas.ImageFillContain}
	s.put(i)
	return i
}

func (s *canvasSurface) put(o fyne.CanvasObject) {
	if s.used < len(s.objects) {
		s.objects[s.used] = o
	} else {
		s.objects = append(s.objects, o)
	}
	s.used++
}

func place(o fyne.CanvasObject, r Rect) {
	o.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	o.Resize(fyne.NewSize(float32(r.W), float32(r.H)))
	o.Show()
}

func (s *canvasSurface) FillRect(r Rect, c color.Color) {
	r = intersect(r, s.bounds)
	if r.Empty() {
		return
	}
	o := s.rect()
	o.FillColor = c
	o.StrokeWidth = 0
	place(o, r)
	o.Refresh()
}

func (s *canvasSurface) StrokeRect(r Rect, c color.Color, width int) {
	r = intersect(r, s.bounds)
	if r.Empty() {
		return
	}
	o := s.rect()
	o.FillColor = color.Transparent
	o.StrokeColor = c
	o.StrokeWidth = float32(width)
	place(o, r)
	o.Refresh()
}

func (s *canvasSurface) Line(x1, y1, x2, y2 int, c color.Color) {
	if !s.bounds.Contains(x1, y1) && !s.bounds.Contains(x2, y2) {
		return
	}
	o := s.line()
	o.StrokeColor = c
	o.StrokeWidth = 1
	o.Position1 = fyne.NewPos(float32(x1), float32(y1))
	o.Position2 = fyne.NewPos(float32(x2), float32(y2))
	o.Show()
	o.Refresh()
}

func (s *canvasSurface) Text(r Rect, text string, align fyne.TextAlign, c color.Color, bold bool) {
	if r.Y < s.bounds.Y || r.Y+r.H > s.bounds.Y+s.bounds.H {
		return
	}
	style := fyne.TextStyle{Bold: bold}
	text = truncateText(text, r.W, func(t string) int {
		return s.measurer.measure(t, s.textSize, style).W
	})
	if text == "" {
		return
	}
	o := s.text()
	o.Text = text
	o.Color = c
	o.TextSize = s.textSize
	o.TextStyle = style
	o.Alignment = align
	place(o, r)
	o.Refresh()
}

func (s *canvasSurface) Image(r Rect, res fyne.Resource) {
	if res == nil || !r.Intersects(s.bounds) {
		return
	}
	o := s.image()
	if o.Resource != res {
		o.Resource = res
		o.Image = nil
		o.File = ""
	}
	o.FillMode = canvas.ImageFillContain
	place(o, r)
	o.Refresh()
}

// fyneMeasurer measures text with the current fyne driver.
type fyneMeasurer struct {
	textSize float32
}

func (m *fyneMeasurer) measure(text string, size float32, style fyne.TextStyle) Size {
	s := fyne.MeasureText(text, size, style)
	return Size{W: int(s.Width + 0.999), H: int(s.Height + 0.999)}
}

func (m *fyneMeasurer) MeasureText(text string, bold bool) Size {
	size := m.textSize
	if size <= 0 {
		size = theme.TextSize()
	}
	return m.measure(text, size, fyne.TextStyle{Bold: bold})
}
