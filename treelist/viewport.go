package treelist

// ScrollOffset returns the horizontal and vertical scroll offsets.
func (l *List[T]) ScrollOffset() (int, int) {
	return l.scrollX, l.scrollY
}

// ScrollTo sets the scroll offsets, clamped to the content.
func (l *List[T]) ScrollTo(x, y int) {
	l.scrollX, l.scrollY = x, y
	l.clampScroll()
}

// Scroll moves the scroll offsets by dx and dy.
func (l *List[T]) Scroll(dx, dy int) {
	l.ScrollTo(l.scrollX+dx, l.scrollY+dy)
}

func (l *List[T]) clampScroll() {
	x, y := l.scrollX, l.scrollY
	content := l.ContentSize()
	view := l.rowsViewport()
	x = max(min(x, content.W-view.W), 0)
	y = max(min(y, content.H-view.H), 0)
	if x == l.scrollX && y == l.scrollY {
		return
	}
	l.scrollX, l.scrollY = x, y
	l.invalidateAll()
}

// rowsViewport returns the area below the header in widget coordinates.
func (l *List[T]) rowsViewport() Rect {
	hh := min(l.HeaderHeight(), l.height)
	return Rect{X: 0, Y: hh, W: l.width, H: l.height - hh}
}

// VisibleRows returns the first row and the row after the last one that
// intersect the viewport.
func (l *List[T]) VisibleRows() (int, int) {
	rh := l.RowHeight()
	view := l.rowsViewport()
	first := l.scrollY / rh
	last := (l.scrollY + view.H + rh - 1) / rh
	return min(first, len(l.rows)), min(last, len(l.rows))
}

// EnsureVisible scrolls vertically so that row i is fully shown.
func (l *List[T]) EnsureVisible(i int) {
	if i < 0 || i >= len(l.rows) {
		return
	}
	rh := l.RowHeight()
	view := l.rowsViewport()
	top := i * rh
	switch {
	case top < l.scrollY:
		l.ScrollTo(l.scrollX, top)
	case top+rh > l.scrollY+view.H:
		l.ScrollTo(l.scrollX, top+rh-view.H)
	}
}

// RowRect returns the rectangle of row i in widget coordinates.
func (l *List[T]) RowRect(i int) Rect {
	return l.rowRect(i)
}

func (l *List[T]) rowRect(i int) Rect {
	rh := l.RowHeight()
	return Rect{
		X: 0,
		Y: l.HeaderHeight() + i*rh - l.scrollY,
		W: l.width,
		H: rh,
	}
}

func (l *List[T]) headerRect() Rect {
	return Rect{W: l.width, H: l.HeaderHeight()}
}

// CellRect returns the rectangle of row i in column c, in widget coordinates.
func (l *List[T]) CellRect(i int, c *Column) Rect {
	r := l.rowRect(i)
	r.X = c.left - l.scrollX
	r.W = c.resolved
	return r
}

func (l *List[T]) invalidate(r Rect) {
	if l.invalidator == nil || r.Empty() {
		return
	}
	view := Rect{W: l.width, H: l.height}
	if !r.Intersects(view) {
		return
	}
	l.invalidator.Invalidate(r)
}

func (l *List[T]) invalidateAll() {
	l.invalidate(Rect{W: l.width, H: l.height})
}

// invalidateRowsFrom invalidates the viewport from row i downwards.
func (l *List[T]) invalidateRowsFrom(i int) {
	r := l.rowRect(i)
	view := l.rowsViewport()
	if r.Y < view.Y {
		r.Y = view.Y
	}
	r.H = view.Y + view.H - r.Y
	l.invalidate(r)
}

func (l *List[T]) rowTrackerChanged(prev, next Tracked[*Item[T]]) {
	if prev.Valid {
		l.invalidate(l.rowRect(prev.Index))
	}
	if next.Valid && next.Index != prev.Index {
		l.invalidate(l.rowRect(next.Index))
	}
}
