package treelist

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// HeaderState describes how a header cell should be drawn.
type HeaderState struct {
	Hot      bool
	HotPart  Part
	Pressed  bool
	Dragging bool
}

// Renderer draws the chrome of a list: backgrounds, expanders, checkboxes
// and header cells. Cell content is drawn by cell delegates.
type Renderer interface {
	Background(s Surface, r Rect)
	RowBackground(s Surface, r Rect, state CellState)
	TextColor(state CellState) color.Color
	Expander(s Surface, r Rect, expanded, hot bool)
	CheckBox(s Surface, r Rect, state CheckedState, hot bool)
	// HeaderCell draws one header cell. c is nil for the space after the
	// last column.
	HeaderCell(s Surface, r Rect, c *Column, state HeaderState)
	// DropGap marks where a dragged header would be dropped.
	DropGap(s Surface, r Rect)
}

// PlainRenderer draws with a fixed palette and text glyphs.
// It is used when no Renderer was injected.
type PlainRenderer struct {
	Foreground, BackgroundColor, Selection, Hover, HeaderColor, Separator color.Color
}

// NewPlainRenderer returns a light PlainRenderer.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{
		Foreground:      color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		BackgroundColor: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Selection:       color.NRGBA{R: 0x9c, G: 0xc5, B: 0xf0, A: 0xff},
		Hover:           color.NRGBA{R: 0xe8, G: 0xf0, B: 0xfa, A: 0xff},
		HeaderColor:     color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		Separator:       color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff},
	}
}

func (p *PlainRenderer) Background(s Surface, r Rect) {
	s.FillRect(r, p.BackgroundColor)
}

func (p *PlainRenderer) RowBackground(s Surface, r Rect, state CellState) {
	switch {
	case state.Selected:
		s.FillRect(r, p.Selection)
	case state.Hot:
		s.FillRect(r, p.Hover)
	}
	if state.Focused {
		s.StrokeRect(r, p.Foreground, 1)
	}
}

func (p *PlainRenderer) TextColor(CellState) color.Color {
	return p.Foreground
}

func (p *PlainRenderer) Expander(s Surface, r Rect, expanded, _ bool) {
	glyph := "+"
	if expanded {
		glyph = "-"
	}
	s.Text(r, glyph, fyne.TextAlignCenter, p.Foreground, false)
}

func (p *PlainRenderer) CheckBox(s Surface, r Rect, state CheckedState, _ bool) {
	glyph := "[ ]"
	switch state {
	case Checked:
		glyph = "[x]"
	case Indeterminate:
		glyph = "[-]"
	}
	s.Text(r, glyph, fyne.TextAlignCenter, p.Foreground, false)
}

func (p *PlainRenderer) HeaderCell(s Surface, r Rect, c *Column, state HeaderState) {
	bg := p.HeaderColor
	if state.Pressed || state.Dragging {
		bg = p.Hover
	}
	s.FillRect(r, bg)
	s.Line(r.X, r.Y+r.H-1, r.X+r.W, r.Y+r.H-1, p.Separator)
	if c == nil {
		return
	}
	s.Line(r.X+r.W-1, r.Y, r.X+r.W-1, r.Y+r.H, p.Separator)
	s.Text(r, headerCaption(c), c.Alignment, p.Foreground, true)
}

func (p *PlainRenderer) DropGap(s Surface, r Rect) {
	s.FillRect(r, p.Separator)
}

// headerCaption appends the sort indicator to a column name.
func headerCaption(c *Column) string {
	switch c.Sort {
	case SortAscending:
		return c.Name + " ▲"
	case SortDescending:
		return c.Name + " ▼"
	}
	return c.Name
}

func intersect(a, b Rect) Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Paint draws the parts of the list that intersect clip, which is in widget
// coordinates. Only rows and columns inside clip are visited.
func (l *List[T]) Paint(s Surface, clip Rect) {
	clip = intersect(clip, Rect{W: l.width, H: l.height})
	if clip.Empty() {
		return
	}
	r := l.renderer
	if r == nil {
		r = NewPlainRenderer()
	}
	r.Background(s, clip)
	l.paintRows(s, r, clip)
	if l.opts.ShowHeader {
		l.paintHeader(s, r, clip)
	}
}

func (l *List[T]) paintRows(s Surface, r Renderer, clip Rect) {
	rh := l.RowHeight()
	pad := l.scale(l.opts.CellPadding)
	first, last := l.VisibleRows()
	vis := l.header.VisibleColumns()
	tree := l.treeColumn()
	focused := l.FocusedItem()
	hovered := l.Hover.State()

	for i := first; i < last; i++ {
		rr := l.rowRect(i)
		if !rr.Intersects(clip) {
			continue
		}
		it := l.rows[i]
		state := CellState{
			Selected: it.selected,
			Focused:  it == focused,
			Hot:      hovered.Valid && hovered.Index == i,
		}
		r.RowBackground(s, rr, state)

		for _, c := range vis {
			cell := l.CellRect(i, c)
			if !cell.Intersects(clip) {
				continue
			}
			content := Rect{X: cell.X + pad, Y: cell.Y, W: cell.W - 2*pad, H: cell.H}
			if c == tree {
				lay := l.layoutRow(it, c, rr.Y, rh)
				if !lay.expander.Empty() {
					e := lay.expander
					e.X -= l.scrollX
					r.Expander(s, e, it.expanded, state.Hot && hovered.Part == PartPlusMinus)
				}
				if !lay.checkbox.Empty() {
					b := lay.checkbox
					b.X -= l.scrollX
					r.CheckBox(s, b, it.checked, state.Hot && hovered.Part == PartCheckBox)
				}
				content.X = lay.content - l.scrollX
				content.W = cell.X + cell.W - pad - content.X
			}
			if content.W <= 0 {
				continue
			}
			ctx := l.cellContext(it, c, content, s)
			ctx.State = state
			l.paintCell(ctx)
		}
	}
}

func (l *List[T]) paintHeader(s Surface, r Renderer, clip Rect) {
	band := l.headerRect()
	if !band.Intersects(clip) {
		return
	}
	h := l.header
	hot := h.Hot.State()
	pressed := h.Pressed()
	dragCol, dragLeft, gapLeft, dragging := h.DragFeedback()

	end := 0
	for _, c := range h.VisibleColumns() {
		cell := Rect{X: c.left - l.scrollX, Y: 0, W: c.resolved, H: band.H}
		end = cell.X + cell.W
		if !cell.Intersects(clip) || c == dragCol {
			continue
		}
		r.HeaderCell(s, cell, c, HeaderState{
			Hot:     hot.Valid && hot.Entity == c,
			HotPart: hot.Part,
			Pressed: c == pressed,
		})
	}
	if end < band.W {
		r.HeaderCell(s, Rect{X: end, Y: 0, W: band.W - end, H: band.H}, nil, HeaderState{})
	}
	if dragging {
		w := dragCol.resolved
		r.DropGap(s, Rect{X: gapLeft - l.scrollX, Y: 0, W: w, H: band.H})
		r.HeaderCell(s, Rect{X: dragLeft - l.scrollX, Y: 0, W: w, H: band.H}, dragCol, HeaderState{Pressed: true, Dragging: true})
	}
}
