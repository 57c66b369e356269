package treelist

// rowLayout is the horizontal arrangement of the tree column of one row,
// in content coordinates.
type rowLayout struct {
	expander Rect
	checkbox Rect
	content  int
}

// layoutRow places the expander and checkbox of it inside the tree column.
func (l *List[T]) layoutRow(it *Item[T], col *Column, y, h int) rowLayout {
	pad := l.scale(l.opts.CellPadding)
	x := col.left + pad + it.Level()*l.scale(l.opts.Indent)
	var lay rowLayout
	if l.opts.ShowExpanders {
		w := l.scale(l.opts.ExpanderSize)
		if it.HasChildren() {
			lay.expander = Rect{X: x, Y: y + (h-w)/2, W: w, H: w}
		}
		x += w
	}
	if l.opts.ShowCheckBoxes {
		w := l.scale(l.opts.CheckBoxSize)
		if it.checked != Unavailable {
			lay.checkbox = Rect{X: x, Y: y + (h-w)/2, W: w, H: w}
		}
		x += w + pad
	}
	lay.content = x
	return lay
}

// HitTest resolves a point in widget coordinates.
func (l *List[T]) HitTest(x, y int) HitInfo {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return HitInfo{Area: AreaNonClient, Index: -1}
	}
	cx := x + l.scrollX
	hh := l.HeaderHeight()
	if y < hh {
		vi, part := l.header.HitTest(cx)
		return HitInfo{Area: AreaHeader, Index: vi, Part: part}
	}

	rh := l.RowHeight()
	i := (l.scrollY + y - hh) / rh
	if i >= len(l.rows) {
		return HitInfo{Area: AreaFreeSpace, Index: -1}
	}
	return HitInfo{Area: AreaRow, Index: i, Part: l.hitRow(i, cx)}
}

// hitRow resolves the part of row i under the content x coordinate cx.
func (l *List[T]) hitRow(i, cx int) Part {
	col := l.treeColumn()
	if col == nil || cx < col.left || cx >= col.left+col.resolved {
		return PartDefault
	}
	rh := l.RowHeight()
	lay := l.layoutRow(l.rows[i], col, i*rh, rh)
	// Expander and checkbox targets span the full row height.
	if !lay.expander.Empty() && cx >= lay.expander.X && cx < lay.expander.X+lay.expander.W {
		return PartPlusMinus
	}
	if !lay.checkbox.Empty() && cx >= lay.checkbox.X && cx < lay.checkbox.X+lay.checkbox.W {
		return PartCheckBox
	}
	return PartDefault
}
