package treelist

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FaceMeasurer measures text with a font.Face. It needs no display and is
// used by tests and image exports.
type FaceMeasurer struct {
	Face font.Face
}

// NewFaceMeasurer returns a measurer for face, or for the 7x13 bitmap
// font when face is nil.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceMeasurer{Face: face}
}

// MeasureText returns the advance width and line height of text. Bold text
// is drawn twice one pixel apart and so is one pixel wider.
func (m *FaceMeasurer) MeasureText(text string, bold bool) Size {
	w := font.MeasureString(m.Face, text).Ceil()
	if bold && text != "" {
		w++
	}
	return Size{W: w, H: m.Face.Metrics().Height.Ceil()}
}
