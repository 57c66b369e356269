package treelist

import (
	"fmt"
	"slices"
)

// SelectedItems returns the selected items in the order they were selected.
func (l *List[T]) SelectedItems() []*Item[T] {
	return slices.Clone(l.selection)
}

// FocusedItem returns the focused item or nil.
func (l *List[T]) FocusedItem() *Item[T] {
	if !l.Focus.IsTracked() {
		return nil
	}
	return l.Focus.Entity()
}

// SetFocus moves the keyboard focus to a presented item and makes it the
// anchor for range selection.
func (l *List[T]) SetFocus(it *Item[T]) error {
	if err := l.owns(it); err != nil {
		return err
	}
	i := l.RowIndex(it)
	if i < 0 {
		return fmt.Errorf("focus hidden item: %w", ErrInvalidArgument)
	}
	l.focusRow(i)
	return nil
}

func (l *List[T]) focusRow(i int) {
	l.Focus.Track(i, l.rows[i], PartDefault)
	l.anchor = i
	l.EnsureVisible(i)
}

func (l *List[T]) selectable(it *Item[T]) error {
	if err := l.owns(it); err != nil {
		return err
	}
	if !it.IsPresented() {
		return fmt.Errorf("select hidden item: %w", ErrInvalidArgument)
	}
	return nil
}

// Select adds it to the selection. In single selection mode it replaces the selection.
func (l *List[T]) Select(it *Item[T]) error {
	if !l.opts.MultiSelect {
		return l.SelectOnly(it)
	}
	if err := l.selectable(it); err != nil {
		return err
	}
	if it.selected {
		return nil
	}
	l.addSelected(it)
	l.selectionChanged()
	return nil
}

// SelectOnly makes it the only selected item.
func (l *List[T]) SelectOnly(it *Item[T]) error {
	if err := l.selectable(it); err != nil {
		return err
	}
	if len(l.selection) == 1 && l.selection[0] == it {
		return nil
	}
	l.clearSelected()
	l.addSelected(it)
	l.selectionChanged()
	return nil
}

// Deselect removes it from the selection.
func (l *List[T]) Deselect(it *Item[T]) error {
	if err := l.owns(it); err != nil {
		return err
	}
	if !it.selected {
		return nil
	}
	l.removeSelected(it)
	l.selectionChanged()
	return nil
}

// ToggleSelection flips the selection of it and makes it the range anchor.
func (l *List[T]) ToggleSelection(it *Item[T]) error {
	if !l.opts.MultiSelect {
		return l.SelectOnly(it)
	}
	if err := l.selectable(it); err != nil {
		return err
	}
	if it.selected {
		l.removeSelected(it)
	} else {
		l.addSelected(it)
	}
	l.anchor = l.RowIndex(it)
	l.selectionChanged()
	return nil
}

// ExtendSelection selects the rows between the anchor and row i, replacing
// the previous selection.
func (l *List[T]) ExtendSelection(i int) error {
	if i < 0 || i >= len(l.rows) {
		return fmt.Errorf("extend selection to row %d of %d: %w", i, len(l.rows), ErrInvalidArgument)
	}
	if !l.opts.MultiSelect {
		return l.SelectOnly(l.rows[i])
	}
	anchor := l.anchor
	if anchor < 0 {
		anchor = 0
	}
	start, end := anchor, i
	if start > end {
		start, end = end, start
	}
	l.clearSelected()
	for _, it := range l.rows[start : end+1] {
		l.addSelected(it)
	}
	l.anchor = anchor
	l.selectionChanged()
	return nil
}

// SelectAll selects every row.
func (l *List[T]) SelectAll() {
	if !l.opts.MultiSelect || len(l.rows) == 0 {
		return
	}
	for _, it := range l.rows {
		if !it.selected {
			l.addSelected(it)
		}
	}
	l.selectionChanged()
}

// ClearSelection deselects everything.
func (l *List[T]) ClearSelection() {
	if len(l.selection) == 0 {
		return
	}
	l.clearSelected()
	l.selectionChanged()
}

// setSelection replaces the selection with items without intermediate events.
func (l *List[T]) setSelection(items []*Item[T]) {
	if slices.Equal(items, l.selection) {
		return
	}
	l.clearSelected()
	for _, it := range items {
		if !it.selected {
			l.addSelected(it)
		}
	}
	l.selectionChanged()
}

func (l *List[T]) addSelected(it *Item[T]) {
	it.selected = true
	l.selection = append(l.selection, it)
}

func (l *List[T]) removeSelected(it *Item[T]) {
	it.selected = false
	l.selection = slices.DeleteFunc(l.selection, func(s *Item[T]) bool { return s == it })
}

func (l *List[T]) clearSelected() {
	for _, it := range l.selection {
		it.selected = false
	}
	l.selection = nil
}

// deselectUnder drops selected items that are in roots or below them.
func (l *List[T]) deselectUnder(roots []*Item[T]) {
	if len(l.selection) == 0 || len(roots) == 0 {
		return
	}
	set := make(map[*Item[T]]struct{}, len(roots))
	for _, r := range roots {
		set[r] = struct{}{}
	}
	under := func(it *Item[T]) bool {
		for p := it; p != nil; p = p.parent {
			if _, ok := set[p]; ok {
				return true
			}
		}
		return false
	}
	changed := false
	l.selection = slices.DeleteFunc(l.selection, func(it *Item[T]) bool {
		if !under(it) {
			return false
		}
		it.selected = false
		changed = true
		return true
	})
	if changed {
		l.selectionChanged()
	}
}

func (l *List[T]) selectionChanged() {
	l.invalidateRowsFrom(0)
	if l.OnSelectionChanged != nil {
		l.OnSelectionChanged()
	}
}
