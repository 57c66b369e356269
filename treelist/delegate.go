package treelist

import (
	"image/color"
)

// CellState describes how a cell should be drawn.
type CellState struct {
	Selected bool
	Focused  bool
	Hot      bool
}

// CellContext is handed to cell delegates. Rect is the content area of the
// cell in widget coordinates, after indentation, expander and checkbox.
type CellContext[T any] struct {
	Item   *Item[T]
	Column *Column
	Rect   Rect
	State  CellState

	Surface  Surface
	Measurer Measurer
	Renderer Renderer

	list *List[T]
}

// Text returns the cell text from the list's CellText function.
func (ctx *CellContext[T]) Text() string {
	return ctx.list.text(ctx.Item, ctx.Column)
}

// Scale converts a 96 DPI size to the current DPI.
func (ctx *CellContext[T]) Scale(v int) int {
	return ctx.list.scale(v)
}

// CellDelegate measures and paints cells it recognises. Each method reports
// false to let the next delegate in the chain handle the cell.
type CellDelegate[T any] interface {
	TryMeasure(ctx *CellContext[T]) (Size, bool)
	TryPaint(ctx *CellContext[T]) bool
}

// Delegates is an ordered chain of cell delegates; the first one to accept a
// cell handles it.
type Delegates[T any] []CellDelegate[T]

// Measure returns the size reported by the first delegate that accepts ctx.
func (d Delegates[T]) Measure(ctx *CellContext[T]) (Size, bool) {
	for _, del := range d {
		if s, ok := del.TryMeasure(ctx); ok {
			return s, true
		}
	}
	return Size{}, false
}

// Paint lets the first delegate that accepts ctx paint it.
func (d Delegates[T]) Paint(ctx *CellContext[T]) bool {
	for _, del := range d {
		if del.TryPaint(ctx) {
			return true
		}
	}
	return false
}

// DelegateFuncs adapts a pair of functions to CellDelegate. A nil function
// declines every cell.
type DelegateFuncs[T any] struct {
	MeasureFunc func(ctx *CellContext[T]) (Size, bool)
	PaintFunc   func(ctx *CellContext[T]) bool
}

func (f DelegateFuncs[T]) TryMeasure(ctx *CellContext[T]) (Size, bool) {
	if f.MeasureFunc == nil {
		return Size{}, false
	}
	return f.MeasureFunc(ctx)
}

func (f DelegateFuncs[T]) TryPaint(ctx *CellContext[T]) bool {
	if f.PaintFunc == nil {
		return false
	}
	return f.PaintFunc(ctx)
}

// ColumnDelegate restricts a delegate to the column with the given key.
func ColumnDelegate[T any](key string, d CellDelegate[T]) CellDelegate[T] {
	return DelegateFuncs[T]{
		MeasureFunc: func(ctx *CellContext[T]) (Size, bool) {
			if ctx.Column.Key != key {
				return Size{}, false
			}
			return d.TryMeasure(ctx)
		},
		PaintFunc: func(ctx *CellContext[T]) bool {
			if ctx.Column.Key != key {
				return false
			}
			return d.TryPaint(ctx)
		},
	}
}

// textDelegate is the last delegate of every chain: it draws CellText.
type textDelegate[T any] struct{}

func (textDelegate[T]) TryMeasure(ctx *CellContext[T]) (Size, bool) {
	if ctx.Measurer == nil {
		return Size{}, false
	}
	return ctx.Measurer.MeasureText(ctx.Text(), false), true
}

func (textDelegate[T]) TryPaint(ctx *CellContext[T]) bool {
	text := ctx.Text()
	if text == "" || ctx.Surface == nil {
		return true
	}
	var c color.Color = color.Black
	if ctx.Renderer != nil {
		c = ctx.Renderer.TextColor(ctx.State)
	}
	ctx.Surface.Text(ctx.Rect, text, ctx.Column.Alignment, c, false)
	return true
}

func (l *List[T]) cellContext(it *Item[T], c *Column, r Rect, s Surface) *CellContext[T] {
	return &CellContext[T]{
		Item:     it,
		Column:   c,
		Rect:     r,
		Surface:  s,
		Measurer: l.measurer,
		Renderer: l.renderer,
		list:     l,
	}
}

func (l *List[T]) measureCell(ctx *CellContext[T]) Size {
	if s, ok := l.Delegates.Measure(ctx); ok {
		return s
	}
	s, _ := textDelegate[T]{}.TryMeasure(ctx)
	return s
}

func (l *List[T]) paintCell(ctx *CellContext[T]) {
	if l.Delegates.Paint(ctx) {
		return
	}
	textDelegate[T]{}.TryPaint(ctx)
}

// measureColumn returns the content width of c: its caption and every
// presented cell, including the tree column's indentation.
func (l *List[T]) measureColumn(c *Column) int {
	pad := l.scale(l.opts.CellPadding)
	w := 0
	if l.measurer != nil && l.opts.ShowHeader {
		w = l.measurer.MeasureText(c.Name, true).W + 2*pad
	}
	return max(w, l.measureRows(c, 0, len(l.rows)))
}

// measureRows returns the widest cell of c in rows [from, to).
func (l *List[T]) measureRows(c *Column, from, to int) int {
	pad := l.scale(l.opts.CellPadding)
	tree := l.treeColumn() == c
	rh := l.RowHeight()
	w := 0
	for i := from; i < to; i++ {
		it := l.rows[i]
		x := c.left + pad
		if tree {
			x = l.layoutRow(it, c, i*rh, rh).content
		}
		s := l.measureCell(l.cellContext(it, c, Rect{X: x, W: 0, H: rh}, nil))
		w = max(w, x-c.left+s.W+pad)
	}
	return w
}
