package treelist

import "slices"

type reorderState struct {
	col      *Column
	pressX   int
	origLeft int
	left     int
	dragging bool
	snap     int
}

// ArmReorder records a press on the default part of the visible column vi.
// The gesture becomes a drag once the pointer moves past the drag threshold
// and the column is Draggable; otherwise releasing it is a click.
func (h *Header) ArmReorder(vi int, x int) bool {
	h.CancelReorder()
	vis := h.VisibleColumns()
	if vi < 0 || vi >= len(vis) {
		return false
	}
	c := vis[vi]
	h.reorder = &reorderState{col: c, pressX: x, origLeft: c.left, left: c.left, snap: vi}
	return true
}

// IsReordering reports whether a header is being dragged.
func (h *Header) IsReordering() bool {
	return h.reorder != nil && h.reorder.dragging
}

// Pressed returns the header cell currently pressed, or nil.
func (h *Header) Pressed() *Column {
	if h.reorder == nil {
		return nil
	}
	return h.reorder.col
}

// ReorderTo follows the pointer while a header is pressed.
func (h *Header) ReorderTo(x int) {
	r := h.reorder
	if r == nil {
		return
	}
	if !r.dragging {
		if !r.col.Draggable || abs(x-r.pressX) <= h.scale(h.threshold) {
			return
		}
		r.dragging = true
	}
	r.left = r.origLeft + x - r.pressX
	r.snap = h.snapPosition(r.col, r.left)
	h.dirty()
}

// snapPosition returns the visible position whose left edge, with c removed
// from the row of visible columns, is nearest to left. Ties prefer the
// smaller position.
func (h *Header) snapPosition(c *Column, left int) int {
	best, bestDist := 0, -1
	edge := 0
	p := 0
	for _, o := range h.columns {
		if o == c || !o.IsVisible() {
			continue
		}
		if d := abs(edge - left); bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
		edge += o.resolved
		p++
	}
	if d := abs(edge - left); bestDist < 0 || d < bestDist {
		best = p
	}
	return best
}

// DragFeedback describes the dragged header: its current left edge and
// the left edge of the gap it would drop into.
func (h *Header) DragFeedback() (col *Column, left, gapLeft int, ok bool) {
	r := h.reorder
	if r == nil || !r.dragging {
		return nil, 0, 0, false
	}
	gap, p := 0, 0
	for _, o := range h.columns {
		if o == r.col || !o.IsVisible() {
			continue
		}
		if p == r.snap {
			break
		}
		gap += o.resolved
		p++
	}
	return r.col, r.left, gap, true
}

// EndReorder finishes the gesture. A dragged column moves to its snap
// position; an undragged press reports a click. It returns true when the
// column moved.
func (h *Header) EndReorder() bool {
	r := h.reorder
	if r == nil {
		return false
	}
	h.reorder = nil
	if !r.dragging {
		h.dirty()
		if h.OnClicked != nil {
			h.OnClicked(r.col)
		}
		return false
	}
	moved := h.moveToVisible(r.col, r.snap)
	h.relayout()
	if moved && h.OnLayoutChanged != nil {
		h.OnLayoutChanged()
	}
	return moved
}

// CancelReorder abandons the gesture without moving or clicking.
func (h *Header) CancelReorder() {
	if h.reorder == nil {
		return
	}
	h.reorder = nil
	h.dirty()
}

// moveToVisible places c so that it becomes the p-th visible column.
// Hidden columns keep their place relative to their visible neighbours.
func (h *Header) moveToVisible(c *Column, p int) bool {
	from := slices.Index(h.columns, c)
	if from < 0 {
		return false
	}
	before := slices.Clone(h.columns)
	h.columns = slices.Delete(h.columns, from, from+1)

	to := -1
	seen := 0
	lastVisible := -1
	for i, o := range h.columns {
		if !o.IsVisible() {
			continue
		}
		if seen == p {
			to = i
			break
		}
		seen++
		lastVisible = i
	}
	if to < 0 {
		to = lastVisible + 1
		if lastVisible < 0 {
			to = min(from, len(h.columns))
		}
	}
	h.columns = slices.Insert(h.columns, to, c)
	return !slices.Equal(before, h.columns)
}
