package treelist

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
)

var (
	// ErrInvalidArgument is wrapped by errors caused by a bad parameter, such
	// as a nil item, an index out of range or an item owned by another list.
	ErrInvalidArgument = errors.New("treelist: invalid argument")
	// ErrInvalidState is wrapped by errors caused by calling an operation that
	// does not apply to the receiver's current configuration.
	ErrInvalidState = errors.New("treelist: invalid state")
)

// referenceDPI is the DPI at which option sizes and column min widths are expressed.
const referenceDPI = 96

const (
	zoomLevelKey      = "xtreelist:zoomLevel"
	layoutKeyPrefix   = "xtreelist:layout:"
	minFillWidth      = 10
	typeSearchTimeout = 1000 // milliseconds
)

// Rect is an integer rectangle in widget coordinates.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether both rectangles share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Size is an integer extent.
type Size struct {
	W, H int
}

// Area identifies the region of the widget a point falls in.
type Area int

const (
	// AreaNonClient is outside the widget.
	AreaNonClient Area = iota
	// AreaHeader is the column header band.
	AreaHeader
	// AreaRow is an item row.
	AreaRow
	// AreaFreeSpace is inside the widget but below the last row.
	AreaFreeSpace
)

// Part identifies the sub-element of a header cell or row.
type Part int

const (
	PartNone Part = iota
	PartDefault
	PartLeftResizer
	PartRightResizer
	PartExtender
	PartPlusMinus
	PartCheckBox
)

func (p Part) String() string {
	switch p {
	case PartDefault:
		return "default"
	case PartLeftResizer:
		return "left-resizer"
	case PartRightResizer:
		return "right-resizer"
	case PartExtender:
		return "extender"
	case PartPlusMinus:
		return "plus-minus"
	case PartCheckBox:
		return "checkbox"
	}
	return "none"
}

// HitInfo is the result of a hit test.
// Index is the flattened row index for AreaRow and the visible column
// position for AreaHeader, or -1.
type HitInfo struct {
	Area  Area
	Index int
	Part  Part
}

// Surface receives drawing commands during a paint pass.
type Surface interface {
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, c color.Color, width int)
	Line(x1, y1, x2, y2 int, c color.Color)
	// Text draws text constrained to r, truncating when it does not fit.
	Text(r Rect, text string, align fyne.TextAlign, c color.Color, bold bool)
	Image(r Rect, res fyne.Resource)
}

// Measurer measures text extents in device pixels.
type Measurer interface {
	MeasureText(text string, bold bool) Size
}

// Invalidator is told which areas need repainting.
type Invalidator interface {
	Invalidate(r Rect)
}

func scaleDPI(v, from, to int) int {
	if from <= 0 || from == to {
		return v
	}
	if v < 0 {
		return -scaleDPI(-v, from, to)
	}
	return (v*to + from/2) / from
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
