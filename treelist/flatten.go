package treelist

import "slices"

// spanEnd returns the row after the last presented descendant of row i.
func (l *List[T]) spanEnd(i int) int {
	level := l.rows[i].Level()
	j := i + 1
	for j < len(l.rows) && l.rows[j].Level() > level {
		j++
	}
	return j
}

// presentedCollection reports whether the items of c occupy rows.
func (l *List[T]) presentedCollection(c *Items[T]) bool {
	if c == l.root {
		return true
	}
	return c.owner != nil && c.owner.expanded && c.owner.IsPresented()
}

// appendPresented appends it and its presented descendants to rows.
func appendPresented[T any](rows []*Item[T], it *Item[T]) []*Item[T] {
	rows = append(rows, it)
	if it.expanded && it.children != nil {
		for _, c := range it.children.items {
			rows = appendPresented(rows, c)
		}
	}
	return rows
}

// splice replaces removed rows at pos with seg and re-maps row state.
func (l *List[T]) splice(pos, removed int, seg []*Item[T]) {
	l.rows = slices.Replace(l.rows, pos, pos+removed, seg...)
	l.remap(pos, removed, len(seg))
	if removed == 0 && len(seg) > 0 {
		l.rowsInserted(pos, len(seg))
		return
	}
	l.structureChanged(pos, removed != len(seg))
}

// rowsInserted widens cached Auto widths by the new rows only. Removals
// and replacements may shrink a column and go through structureChanged.
func (l *List[T]) rowsInserted(pos, n int) {
	grew := false
	for _, c := range l.header.columns {
		if c.mode != Auto || c.content < 0 {
			continue
		}
		if !c.IsVisible() {
			c.content = -1
			continue
		}
		if w := l.measureRows(c, pos, pos+n); w > c.content {
			c.content = w
			grew = true
		}
	}
	if grew {
		l.header.relayout()
	}
	l.clampScroll()
	l.invalidateRowsFrom(pos)
}

// remap re-maps every index that refers into rows after a splice.
func (l *List[T]) remap(pos, removed, inserted int) {
	l.Hover.remap(pos, removed, inserted)
	l.Focus.remap(pos, removed, inserted)
	if l.anchor >= pos {
		if l.anchor < pos+removed {
			l.anchor = -1
		} else {
			l.anchor += inserted - removed
		}
	}
	if l.pointer.pressRow >= pos {
		l.pointer.pressRow = -1
	}
}

func (l *List[T]) structureChanged(from int, sizeChanged bool) {
	l.header.invalidateContent()
	if l.hasAutoColumns() {
		l.header.relayout()
	}
	if sizeChanged {
		l.clampScroll()
	}
	l.invalidateRowsFrom(from)
}

func (l *List[T]) hasAutoColumns() bool {
	for _, c := range l.header.columns {
		if c.mode == Auto && c.IsVisible() {
			return true
		}
	}
	return false
}

func (l *List[T]) itemsInserted(c *Items[T], index, n int) {
	if !l.presentedCollection(c) {
		return
	}
	var pos int
	switch {
	case c == l.root && index+n == len(c.items):
		pos = len(l.rows)
	case index > 0:
		pos = l.spanEnd(l.RowIndex(c.items[index-1]))
	case c == l.root:
		pos = 0
	default:
		pos = l.RowIndex(c.owner) + 1
	}

	var seg []*Item[T]
	for _, it := range c.items[index : index+n] {
		seg = appendPresented(seg, it)
	}
	l.splice(pos, 0, seg)
}

func (l *List[T]) itemsRemoved(c *Items[T], removed []*Item[T]) {
	defer l.deselectUnder(removed)
	if !l.presentedCollection(c) {
		return
	}
	first := l.RowIndex(removed[0])
	last := first
	if len(removed) > 1 {
		last = first + slices.Index(l.rows[first:], removed[len(removed)-1])
	}
	end := l.spanEnd(last)
	l.splice(first, end-first, nil)
}

func (l *List[T]) itemReplaced(old, it *Item[T]) {
	defer l.deselectUnder([]*Item[T]{old})
	if !l.presentedCollection(it.coll) {
		return
	}
	pos := l.RowIndex(old)
	end := l.spanEnd(pos)
	l.splice(pos, end-pos, appendPresented(nil, it))
}

func (l *List[T]) itemsCleared(c *Items[T], old []*Item[T]) {
	defer l.deselectUnder(old)
	if c == l.root {
		n := len(l.rows)
		l.rows = nil
		l.remap(0, n, 0)
		l.structureChanged(0, n > 0)
		return
	}
	if !l.presentedCollection(c) {
		return
	}
	pos := l.RowIndex(c.owner)
	end := l.spanEnd(pos)
	l.splice(pos+1, end-pos-1, nil)
}

func (l *List[T]) itemsSorted(c *Items[T]) {
	if !l.presentedCollection(c) {
		return
	}
	start, end := 0, len(l.rows)
	if c != l.root {
		pos := l.RowIndex(c.owner)
		start, end = pos+1, l.spanEnd(pos)
	}
	var seg []*Item[T]
	for _, it := range c.items {
		seg = appendPresented(seg, it)
	}
	l.rebuildSpan(start, end, seg)
}

// rebuildSpan replaces rows[start:end] with seg, where seg may hold some of
// the same items in a different order. Row state that pointed at a surviving
// item follows it.
func (l *List[T]) rebuildSpan(start, end int, seg []*Item[T]) {
	old := slices.Clone(l.rows[start:end])
	l.rows = slices.Replace(l.rows, start, end, seg...)

	find := func(i int) int {
		if j := slices.Index(seg, old[i-start]); j >= 0 {
			return start + j
		}
		return -1
	}
	delta := len(seg) - len(old)
	for _, t := range []*Tracker[*Item[T]]{l.Hover, l.Focus} {
		i := t.Index()
		switch {
		case !t.IsTracked() || i < start:
		case i >= end:
			t.ResetIndex(i + delta)
		default:
			if j := find(i); j >= 0 {
				t.ResetIndex(j)
			} else {
				t.Drop()
			}
		}
	}
	switch {
	case l.anchor < start:
	case l.anchor >= end:
		l.anchor += delta
	default:
		l.anchor = find(l.anchor)
	}
	if l.pointer.pressRow >= start {
		l.pointer.pressRow = -1
	}
	l.structureChanged(start, delta != 0)
}

func (l *List[T]) setExpanded(it *Item[T], expanded bool) {
	it.expanded = expanded
	if it.IsPresented() && it.children != nil && len(it.children.items) > 0 {
		pos := l.RowIndex(it)
		if expanded {
			var seg []*Item[T]
			for _, c := range it.children.items {
				seg = appendPresented(seg, c)
			}
			l.splice(pos+1, 0, seg)
		} else {
			end := l.spanEnd(pos)
			l.splice(pos+1, end-pos-1, nil)
			l.deselectUnder(it.children.items)
		}
	} else if i := l.RowIndex(it); i >= 0 {
		l.invalidate(l.rowRect(i))
	}
	if l.OnExpandedChanged != nil {
		l.OnExpandedChanged(it)
	}
}

// ExpandAll expands it and every descendant that has children, including
// expandable items whose children are not loaded yet. OnExpandedChanged is
// called for each item that changed, after the rows were updated.
func (l *List[T]) ExpandAll(it *Item[T]) error {
	if err := l.owns(it); err != nil {
		return err
	}
	var changed []*Item[T]
	var mark func(*Item[T])
	mark = func(n *Item[T]) {
		if n.children == nil {
			return
		}
		for _, c := range n.children.items {
			if c.HasChildren() && !c.expanded {
				c.expanded = true
				changed = append(changed, c)
			}
			mark(c)
		}
	}
	mark(it)
	if !it.expanded {
		it.SetExpanded(true)
	} else if pos := l.RowIndex(it); pos >= 0 && it.children != nil {
		var seg []*Item[T]
		for _, c := range it.children.items {
			seg = appendPresented(seg, c)
		}
		l.rebuildSpan(pos+1, l.spanEnd(pos), seg)
	}

	if l.OnExpandedChanged != nil {
		for _, c := range changed {
			l.OnExpandedChanged(c)
		}
	}
	return nil
}

// presentedOrder walks the tree and returns the rows it should produce.
func (l *List[T]) presentedOrder() []*Item[T] {
	var rows []*Item[T]
	for _, it := range l.root.items {
		rows = appendPresented(rows, it)
	}
	return rows
}
