package treelist

type resizeState struct {
	target   *Column
	sign     int
	lastX    int
	original Width
}

func fillPosition(vis []*Column) int {
	for i, c := range vis {
		if c.mode == Fill {
			return i
		}
	}
	return -1
}

// resizeTarget resolves which column a drag of the given edge of the visible
// column vi resizes, and the sign applied to pointer movement.
func (h *Header) resizeTarget(vis []*Column, vi int, edge Part) (*Column, int, bool) {
	if vi < 0 || vi >= len(vis) {
		return nil, 0, false
	}
	c := vis[vi]
	fill := fillPosition(vis)

	switch edge {
	case PartRightResizer:
		if c.mode == Sizeable && (fill < 0 || vi < fill) {
			return c, 1, true
		}
		if vi+1 < len(vis) && vis[vi+1].mode == Sizeable {
			return vis[vi+1], -1, true
		}
	case PartLeftResizer:
		if vi == 0 {
			return nil, 0, false
		}
		if fill < 0 || vi <= fill {
			for p := vi - 1; p >= 0; p-- {
				if vis[p].mode == Sizeable {
					return vis[p], 1, true
				}
			}
		}
		if c.mode == Sizeable {
			return c, -1, true
		}
	}
	return nil, 0, false
}

// BeginResize starts resizing from the given edge of the visible column vi
// with the pointer at x. It reports false when that edge has no resize target.
func (h *Header) BeginResize(vi int, edge Part, x int) bool {
	h.CancelResize()
	target, sign, ok := h.resizeTarget(h.VisibleColumns(), vi, edge)
	if !ok {
		return false
	}
	h.resize = &resizeState{
		target:   target,
		sign:     sign,
		lastX:    x,
		original: target.width,
	}
	return true
}

// IsResizing reports whether a resize gesture is in progress.
func (h *Header) IsResizing() bool {
	return h.resize != nil
}

// ResizeTarget returns the column being resized or nil.
func (h *Header) ResizeTarget() *Column {
	if h.resize == nil {
		return nil
	}
	return h.resize.target
}

// ResizeTo applies pointer movement to the resize target. The width never
// drops below the column's min width; movement past that point is discarded
// so that reversing direction grows the column straight away.
func (h *Header) ResizeTo(x int) {
	r := h.resize
	if r == nil {
		return
	}
	delta := (x - r.lastX) * r.sign
	r.lastX = x
	if delta == 0 {
		return
	}
	w := max(h.currentWidth(r.target)+delta, h.minWidth(r.target))
	r.target.width = Width{Value: w, DPI: h.dpi}
	h.relayout()
}

// EndResize commits the gesture.
func (h *Header) EndResize() {
	if h.resize == nil {
		return
	}
	h.resize = nil
	if h.OnLayoutChanged != nil {
		h.OnLayoutChanged()
	}
}

// CancelResize restores the width the target had when the gesture began.
func (h *Header) CancelResize() {
	r := h.resize
	if r == nil {
		return
	}
	h.resize = nil
	r.target.width = r.original
	h.relayout()
}
