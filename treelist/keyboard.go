package treelist

import "fyne.io/fyne/v2"

// HandleKey applies a navigation or command key to the list and reports
// whether it was used.
func (l *List[T]) HandleKey(key fyne.KeyName, mods fyne.KeyModifier) bool {
	if key == fyne.KeyEscape {
		l.CancelGesture()
		return true
	}
	n := len(l.rows)
	if n == 0 {
		return false
	}
	cur := l.Focus.Index()

	switch key {
	case fyne.KeyUp:
		l.moveFocus(max(cur-1, 0), mods)
	case fyne.KeyDown:
		l.moveFocus(min(cur+1, n-1), mods)
	case fyne.KeyHome:
		l.moveFocus(0, mods)
	case fyne.KeyEnd:
		l.moveFocus(n-1, mods)
	case fyne.KeyPageUp:
		l.moveFocus(max(cur-l.pageRows(), 0), mods)
	case fyne.KeyPageDown:
		l.moveFocus(min(max(cur, 0)+l.pageRows(), n-1), mods)
	case fyne.KeyLeft:
		it := l.FocusedItem()
		if it == nil {
			return false
		}
		if it.expanded && it.HasChildren() {
			it.Collapse()
		} else if it.parent != nil {
			l.moveFocus(l.RowIndex(it.parent), 0)
		}
	case fyne.KeyRight:
		it := l.FocusedItem()
		if it == nil {
			return false
		}
		if !it.expanded && it.HasChildren() {
			it.Expand()
		} else if it.expanded && it.children != nil && len(it.children.items) > 0 {
			l.moveFocus(l.Focus.Index()+1, 0)
		}
	case fyne.KeyAsterisk:
		it := l.FocusedItem()
		if it == nil {
			return false
		}
		_ = l.ExpandAll(it)
	case fyne.KeySpace:
		it := l.FocusedItem()
		if it == nil {
			return false
		}
		if isToggleModifier(mods) || !l.opts.ShowCheckBoxes {
			_ = l.ToggleSelection(it)
		} else {
			l.toggleChecked(it)
		}
	case fyne.KeyReturn, fyne.KeyEnter:
		it := l.FocusedItem()
		if it == nil {
			return false
		}
		l.activate(it)
	case fyne.KeyA:
		if !isToggleModifier(mods) {
			return false
		}
		l.SelectAll()
	default:
		return false
	}
	return true
}

// moveFocus focuses row i. Shift extends the selection from the anchor,
// Ctrl moves focus alone, otherwise the row becomes the only selection.
func (l *List[T]) moveFocus(i int, mods fyne.KeyModifier) {
	if i < 0 || i >= len(l.rows) {
		return
	}
	it := l.rows[i]
	switch {
	case mods&fyne.KeyModifierShift != 0:
		_ = l.ExtendSelection(i)
		l.Focus.Track(i, it, PartDefault)
		l.EnsureVisible(i)
	case isToggleModifier(mods):
		l.Focus.Track(i, it, PartDefault)
		l.EnsureVisible(i)
	default:
		_ = l.SelectOnly(it)
		l.focusRow(i)
	}
}

func (l *List[T]) pageRows() int {
	return max(l.rowsViewport().H/l.RowHeight()-1, 1)
}
