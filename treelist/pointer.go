package treelist

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

type pointerState[T any] struct {
	// pressRow is a row pressed inside a multi-selection; it becomes the
	// only selected row if released without moving.
	pressRow int
	pressX   int
	pressY   int

	marquee bool
	// marquee corners in content coordinates
	mx0, my0 int
	mx1, my1 int
	base     []*Item[T]
}

func isToggleModifier(mods fyne.KeyModifier) bool {
	return mods&fyne.KeyModifierControl != 0 || mods&fyne.KeyModifierShortcutDefault != 0
}

// PointerDown handles a mouse press at widget coordinates x, y.
func (l *List[T]) PointerDown(x, y int, button desktop.MouseButton, mods fyne.KeyModifier) {
	l.pointer.pressRow = -1
	l.pointer.pressX, l.pointer.pressY = x, y
	hit := l.HitTest(x, y)
	if button == desktop.MouseButtonSecondary {
		l.contextMenu(hit, x, y)
		return
	}
	if button != desktop.MouseButtonPrimary {
		return
	}

	switch hit.Area {
	case AreaHeader:
		l.pressHeader(hit, x)
	case AreaRow:
		l.pressRow(hit, mods)
	case AreaFreeSpace:
		l.beginMarquee(x, y, mods)
	}
}

func (l *List[T]) pressHeader(hit HitInfo, x int) {
	if hit.Index < 0 {
		return
	}
	h := l.header
	switch hit.Part {
	case PartLeftResizer, PartRightResizer:
		h.BeginResize(hit.Index, hit.Part, x+l.scrollX)
	case PartExtender:
		if l.OnContextMenu != nil {
			l.OnContextMenu(ContextMenuRequest[T]{Kind: MenuHeader, Column: h.VisibleColumns()[hit.Index], X: x, Y: l.HeaderHeight()})
		}
	default:
		h.ArmReorder(hit.Index, x+l.scrollX)
		h.dirty()
	}
}

func (l *List[T]) pressRow(hit HitInfo, mods fyne.KeyModifier) {
	it := l.rows[hit.Index]
	switch hit.Part {
	case PartPlusMinus:
		l.focusRow(hit.Index)
		it.SetExpanded(!it.expanded)
		return
	case PartCheckBox:
		l.focusRow(hit.Index)
		l.toggleChecked(it)
		return
	}

	switch {
	case isToggleModifier(mods):
		_ = l.ToggleSelection(it)
		l.focusRow(hit.Index)
	case mods&fyne.KeyModifierShift != 0:
		_ = l.ExtendSelection(hit.Index)
		l.Focus.Track(hit.Index, it, PartDefault)
		l.EnsureVisible(hit.Index)
	case it.selected && len(l.selection) > 1:
		l.pointer.pressRow = hit.Index
		l.focusRow(hit.Index)
	default:
		_ = l.SelectOnly(it)
		l.focusRow(hit.Index)
	}
}

func (l *List[T]) contextMenu(hit HitInfo, x, y int) {
	req := ContextMenuRequest[T]{X: x, Y: y}
	switch hit.Area {
	case AreaHeader:
		req.Kind = MenuHeader
		if hit.Index >= 0 {
			req.Column = l.header.VisibleColumns()[hit.Index]
		}
	case AreaRow:
		it := l.rows[hit.Index]
		if !it.selected {
			_ = l.SelectOnly(it)
		}
		l.focusRow(hit.Index)
		req.Kind = MenuItem
		if len(l.selection) > 1 {
			req.Kind = MenuItems
		}
		req.Items = l.SelectedItems()
	case AreaFreeSpace:
		req.Kind = MenuFreeSpace
	default:
		return
	}
	if l.OnContextMenu != nil {
		l.OnContextMenu(req)
	}
}

// PointerMove handles pointer movement, with or without a button held.
func (l *List[T]) PointerMove(x, y int) {
	h := l.header
	switch {
	case h.IsResizing():
		h.ResizeTo(x + l.scrollX)
		return
	case h.Pressed() != nil:
		h.ReorderTo(x + l.scrollX)
		return
	case l.pointer.marquee:
		l.autoScroll(y)
		l.updateMarquee(x, y)
		return
	}

	if l.pointer.pressRow >= 0 && (abs(x-l.pointer.pressX) > l.scale(l.opts.DragThreshold) || abs(y-l.pointer.pressY) > l.scale(l.opts.DragThreshold)) {
		l.pointer.pressRow = -1
	}

	hit := l.HitTest(x, y)
	if hit.Area == AreaRow {
		l.Hover.Track(hit.Index, l.rows[hit.Index], hit.Part)
	} else {
		l.Hover.Drop()
	}
	if hit.Area == AreaHeader && hit.Index >= 0 {
		h.Hot.Track(hit.Index, h.VisibleColumns()[hit.Index], hit.Part)
	} else {
		h.Hot.Drop()
	}
}

// PointerUp finishes the gesture started by PointerDown.
func (l *List[T]) PointerUp(x, y int) {
	h := l.header
	if h.IsResizing() {
		h.EndResize()
	}
	if h.Pressed() != nil {
		h.EndReorder()
	}
	if l.pointer.marquee {
		l.endMarquee()
	}
	if i := l.pointer.pressRow; i >= 0 {
		l.pointer.pressRow = -1
		if hit := l.HitTest(x, y); hit.Area == AreaRow && hit.Index == i {
			_ = l.SelectOnly(l.rows[i])
		}
	}
}

// PointerLeave clears hover state when the pointer leaves the widget.
func (l *List[T]) PointerLeave() {
	l.Hover.Drop()
	l.header.Hot.Drop()
}

// CancelGesture abandons any resize, reorder or marquee in progress.
func (l *List[T]) CancelGesture() {
	l.header.CancelResize()
	l.header.CancelReorder()
	if l.pointer.marquee {
		l.setSelection(l.pointer.base)
		l.endMarquee()
	}
	l.pointer.pressRow = -1
}

// DoubleClick activates the item under the pointer.
func (l *List[T]) DoubleClick(x, y int) {
	hit := l.HitTest(x, y)
	if hit.Area != AreaRow || hit.Part != PartDefault {
		return
	}
	l.activate(l.rows[hit.Index])
}

func (l *List[T]) activate(it *Item[T]) {
	if l.OnActivated != nil {
		l.OnActivated(it)
	}
}

// toggleChecked flips a checkbox: checked items become unchecked and
// everything else becomes checked.
func (l *List[T]) toggleChecked(it *Item[T]) {
	switch it.checked {
	case Unavailable:
		return
	case Checked:
		it.SetChecked(Unchecked)
	default:
		it.SetChecked(Checked)
	}
}

func (l *List[T]) beginMarquee(x, y int, mods fyne.KeyModifier) {
	p := &l.pointer
	p.base = nil
	if isToggleModifier(mods) {
		p.base = l.SelectedItems()
	} else {
		l.ClearSelection()
	}
	p.marquee = true
	p.mx0, p.my0 = x+l.scrollX, y-l.HeaderHeight()+l.scrollY
	p.mx1, p.my1 = p.mx0, p.my0
}

func (l *List[T]) updateMarquee(x, y int) {
	p := &l.pointer
	p.mx1, p.my1 = x+l.scrollX, y-l.HeaderHeight()+l.scrollY

	sel := slices.Clone(p.base)
	r := l.marqueeContentRect()
	if len(l.rows) > 0 && r.X < l.header.Extent() && r.X+r.W > 0 {
		rh := l.RowHeight()
		first := max(r.Y/rh, 0)
		last := min((r.Y+r.H)/rh, len(l.rows)-1)
		for i := first; i <= last; i++ {
			if !slices.Contains(p.base, l.rows[i]) {
				sel = append(sel, l.rows[i])
			}
		}
	}
	l.setSelection(sel)
	l.invalidateAll()
}

func (l *List[T]) endMarquee() {
	l.pointer.marquee = false
	l.pointer.base = nil
	l.invalidateAll()
}

func (l *List[T]) marqueeContentRect() Rect {
	p := &l.pointer
	return Rect{
		X: min(p.mx0, p.mx1),
		Y: min(p.my0, p.my1),
		W: abs(p.mx1 - p.mx0),
		H: abs(p.my1 - p.my0),
	}
}

// Marquee returns the rubber band rectangle in widget coordinates while a
// marquee selection is in progress.
func (l *List[T]) Marquee() (Rect, bool) {
	if !l.pointer.marquee {
		return Rect{}, false
	}
	r := l.marqueeContentRect()
	r.X -= l.scrollX
	r.Y += l.HeaderHeight() - l.scrollY
	return r, true
}

// autoScroll scrolls one row when a drag moves past the top or bottom of the rows.
func (l *List[T]) autoScroll(y int) {
	view := l.rowsViewport()
	switch {
	case y < view.Y:
		l.Scroll(0, -l.RowHeight())
	case y >= view.Y+view.H:
		l.Scroll(0, l.RowHeight())
	}
}
