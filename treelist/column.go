package treelist

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// SizeMode controls how a column's width is resolved.
type SizeMode int

const (
	// Sizeable columns keep the width set by the caller or the user.
	Sizeable SizeMode = iota
	// Fill columns share the width left over by the other columns.
	Fill
	// Auto columns are as wide as their widest presented cell.
	Auto
)

func (m SizeMode) String() string {
	switch m {
	case Fill:
		return "fill"
	case Auto:
		return "auto"
	}
	return "sizeable"
}

// SortOrder is the sort indicator painted in a column header.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

// Width is a column width tagged with the DPI it was measured at.
type Width struct {
	Value int
	DPI   int
}

// Column describes one vertical slice of a List.
type Column struct {
	ID   int
	Key  string
	Name string

	Alignment fyne.TextAlign
	// Draggable columns can be reordered by dragging their header.
	Draggable bool
	// Extender columns show a drop down affordance at the right of the header.
	Extender bool
	// MinWidth is the smallest width at 96 DPI.
	MinWidth int
	Sort     SortOrder

	mode      SizeMode
	width     Width
	visible   bool
	available bool

	left     int
	resolved int
	content  int

	header *Header
}

// NewColumn returns a visible, available column. width is at 96 DPI and
// ignored for Fill columns.
func NewColumn(id int, key, name string, mode SizeMode, width int) *Column {
	c := &Column{
		ID:        id,
		Key:       key,
		Name:      name,
		MinWidth:  20,
		mode:      mode,
		visible:   true,
		available: true,
		content:   -1,
	}
	if mode != Fill {
		c.width = Width{Value: width, DPI: referenceDPI}
	}
	return c
}

func (c *Column) SizeMode() SizeMode {
	return c.mode
}

// SetSizeMode changes the size mode. A Sizeable column without a width starts at its min width.
func (c *Column) SetSizeMode(mode SizeMode) {
	if c.mode == mode {
		return
	}
	c.mode = mode
	if mode == Fill {
		c.width = Width{}
	} else if c.width.DPI == 0 {
		c.width = Width{Value: c.MinWidth, DPI: referenceDPI}
	}
	c.content = -1
	c.changed()
}

// Width returns the stored width. It is zero for Fill columns.
func (c *Column) Width() Width {
	return c.width
}

// SetWidth stores an explicit width. Fill columns have no width of their own.
func (c *Column) SetWidth(w Width) error {
	if c.mode == Fill {
		return fmt.Errorf("set width of fill column %q: %w", c.Key, ErrInvalidState)
	}
	if w.Value < 0 || w.DPI <= 0 {
		return fmt.Errorf("set width %d at %d dpi: %w", w.Value, w.DPI, ErrInvalidArgument)
	}
	c.width = w
	c.changed()
	return nil
}

func (c *Column) IsVisible() bool {
	return c.visible && c.available
}

// SetVisible shows or hides the column.
func (c *Column) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	c.visible = visible
	c.changed()
}

// IsAvailable reports whether the column may be shown at all.
func (c *Column) IsAvailable() bool {
	return c.available
}

// SetAvailable makes the column eligible for display. Unavailable columns
// are hidden regardless of their visible flag.
func (c *Column) SetAvailable(available bool) {
	if c.available == available {
		return
	}
	c.available = available
	c.changed()
}

// Left returns the resolved left offset of a visible column.
func (c *Column) Left() int {
	return c.left
}

// ResolvedWidth returns the width assigned by the last layout pass.
func (c *Column) ResolvedWidth() int {
	return c.resolved
}

// InvalidateContent drops the cached content width of an Auto column.
func (c *Column) InvalidateContent() {
	c.content = -1
	c.changed()
}

func (c *Column) changed() {
	if c.header != nil {
		c.header.relayout()
	}
}
