package treelist

import (
	"fmt"
	"slices"
)

// Header owns the ordered columns of a List and resolves their layout.
type Header struct {
	// OnLayoutChanged is called when the user finishes resizing or
	// reordering a column.
	OnLayoutChanged func()
	// OnClicked is called when a header is pressed and released without
	// starting a reorder.
	OnClicked func(c *Column)

	// Hot tracks the header cell under the pointer.
	Hot *Tracker[*Column]

	columns   []*Column
	dpi       int
	available int

	grip      int
	threshold int
	extender  int

	measure   func(c *Column) int
	onChanged func()
	onDirty   func()

	resize  *resizeState
	reorder *reorderState
}

// NewHeader returns an empty header at 96 DPI.
func NewHeader() *Header {
	h := &Header{
		dpi:       referenceDPI,
		available: -1,
		grip:      4,
		threshold: 4,
		extender:  16,
	}
	h.Hot = NewTracker(func(prev, next Tracked[*Column]) {
		h.dirty()
	})
	return h
}

// DPI returns the current device DPI.
func (h *Header) DPI() int {
	return h.dpi
}

// SetDPI changes the device DPI and re-resolves the layout.
func (h *Header) SetDPI(dpi int) {
	if dpi <= 0 || dpi == h.dpi {
		return
	}
	h.dpi = dpi
	for _, c := range h.columns {
		c.content = -1
	}
	h.relayout()
}

func (h *Header) scale(v int) int {
	return scaleDPI(v, referenceDPI, h.dpi)
}

// AddColumn appends c.
func (h *Header) AddColumn(c *Column) error {
	if c == nil {
		return fmt.Errorf("add column: nil column: %w", ErrInvalidArgument)
	}
	if c.header != nil {
		return fmt.Errorf("add column %q: already added: %w", c.Key, ErrInvalidArgument)
	}
	for _, o := range h.columns {
		if o.ID == c.ID || o.Key == c.Key {
			return fmt.Errorf("add column %q: duplicate id or key: %w", c.Key, ErrInvalidArgument)
		}
	}
	c.header = h
	h.columns = append(h.columns, c)
	h.relayout()
	return nil
}

// RemoveColumn removes c.
func (h *Header) RemoveColumn(c *Column) error {
	i := slices.Index(h.columns, c)
	if c == nil || i < 0 {
		return fmt.Errorf("remove column: not in header: %w", ErrInvalidArgument)
	}
	h.CancelResize()
	h.CancelReorder()
	if h.Hot.Entity() == c {
		h.Hot.Drop()
	}
	h.columns = slices.Delete(h.columns, i, i+1)
	c.header = nil
	h.relayout()
	return nil
}

// Columns returns the columns in display order, hidden ones included.
func (h *Header) Columns() []*Column {
	return slices.Clone(h.columns)
}

// ColumnByKey returns the column with the given key or nil.
func (h *Header) ColumnByKey(key string) *Column {
	for _, c := range h.columns {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// VisibleColumns returns the visible columns in display order.
func (h *Header) VisibleColumns() []*Column {
	vis := make([]*Column, 0, len(h.columns))
	for _, c := range h.columns {
		if c.IsVisible() {
			vis = append(vis, c)
		}
	}
	return vis
}

// MoveColumn moves the column at index from to index to, both counting
// hidden columns.
func (h *Header) MoveColumn(from, to int) error {
	if from < 0 || from >= len(h.columns) || to < 0 || to >= len(h.columns) {
		return fmt.Errorf("move column %d to %d of %d: %w", from, to, len(h.columns), ErrInvalidArgument)
	}
	if from == to {
		return nil
	}
	c := h.columns[from]
	h.columns = slices.Delete(h.columns, from, from+1)
	h.columns = slices.Insert(h.columns, to, c)
	h.relayout()
	return nil
}

// Extent returns the summed width of the visible columns.
func (h *Header) Extent() int {
	w := 0
	for _, c := range h.columns {
		if c.IsVisible() {
			w += c.resolved
		}
	}
	return w
}

func (h *Header) relayout() {
	if h.available >= 0 {
		h.Resolve(h.available)
	}
	if h.onChanged != nil {
		h.onChanged()
	}
}

// dirty requests a repaint of the header band only.
func (h *Header) dirty() {
	if h.onDirty != nil {
		h.onDirty()
	}
}

func (h *Header) minWidth(c *Column) int {
	return h.scale(c.MinWidth)
}

// currentWidth returns the stored width of c in current device pixels.
func (h *Header) currentWidth(c *Column) int {
	return max(scaleDPI(c.width.Value, c.width.DPI, h.dpi), h.minWidth(c))
}

func (h *Header) autoWidth(c *Column) int {
	if c.content < 0 {
		c.content = 0
		if h.measure != nil {
			c.content = h.measure(c)
		}
	}
	return max(c.content, h.minWidth(c))
}

// invalidateContent drops every cached Auto width.
func (h *Header) invalidateContent() {
	for _, c := range h.columns {
		if c.mode == Auto {
			c.content = -1
		}
	}
}

// Resolve assigns the resolved width and left offset of every visible column
// for the given available width.
func (h *Header) Resolve(available int) {
	h.available = available

	vis := h.VisibleColumns()
	used := 0
	var fills []*Column
	var lastAuto *Column
	for _, c := range vis {
		switch c.mode {
		case Fill:
			fills = append(fills, c)
			continue
		case Auto:
			c.resolved = h.autoWidth(c)
			lastAuto = c
		default:
			c.resolved = h.currentWidth(c)
		}
		used += c.resolved
	}

	remaining := available - used
	if n := len(fills); n > 0 {
		share := remaining / n
		for i, c := range fills {
			w := share
			if i == n-1 {
				w = remaining - share*(n-1)
			}
			c.resolved = max(w, minFillWidth)
		}
	} else if lastAuto != nil && remaining > 0 {
		lastAuto.resolved += remaining
	}

	for _, c := range h.columns {
		if !c.IsVisible() {
			c.resolved = 0
			c.left = 0
		}
	}
	left := 0
	for _, c := range vis {
		c.left = left
		left += c.resolved
	}
}

// hitColumn resolves the part of the visible column at position vi under
// localX, measured from the column's left edge.
func (h *Header) hitColumn(vis []*Column, vi, localX int) Part {
	c := vis[vi]
	grip := h.scale(h.grip)
	if localX >= c.resolved-grip {
		if _, _, ok := h.resizeTarget(vis, vi, PartRightResizer); ok {
			return PartRightResizer
		}
	}
	if localX < grip {
		if _, _, ok := h.resizeTarget(vis, vi, PartLeftResizer); ok {
			return PartLeftResizer
		}
	}
	if c.Extender && localX >= c.resolved-h.scale(h.extender) {
		return PartExtender
	}
	return PartDefault
}

// HitTest resolves a point in header coordinates, x already including the
// horizontal scroll offset. It returns the visible column position or -1.
func (h *Header) HitTest(x int) (int, Part) {
	vis := h.VisibleColumns()
	for vi, c := range vis {
		if x >= c.left && x < c.left+c.resolved {
			return vi, h.hitColumn(vis, vi, x-c.left)
		}
	}
	return -1, PartNone
}
