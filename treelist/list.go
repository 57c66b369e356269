package treelist

import (
	"fmt"
	"slices"
)

// ContextMenuKind tells what a context menu request was made on.
type ContextMenuKind int

const (
	MenuFreeSpace ContextMenuKind = iota
	MenuItem
	MenuItems
	MenuHeader
)

// ContextMenuRequest is passed to OnContextMenu. X and Y are widget coordinates.
type ContextMenuRequest[T any] struct {
	Kind   ContextMenuKind
	Items  []*Item[T]
	Column *Column
	X, Y   int
}

// List is the headless engine behind a tree list widget: an item tree, its
// flattened rows, columns, selection and pointer state.
//
// A List is not safe for concurrent use. Background work must hand its
// results to the UI goroutine, for example through a Queue.
type List[T any] struct {
	// CellText returns the text of an item in a column. It feeds the
	// default cell painter and, for the tree column, search.
	CellText func(item *Item[T], col *Column) string
	// SearchText, when set, replaces the tree column text for searches.
	SearchText func(item *Item[T]) string
	// Delegates measure and paint cells before the default text painter.
	Delegates Delegates[T]

	OnActivated        func(item *Item[T])
	OnCheckedChanged   func(item *Item[T])
	OnExpandedChanged  func(item *Item[T])
	OnSelectionChanged func()
	OnFocusChanged     func(item *Item[T])
	OnHeaderClicked    func(col *Column)
	OnContextMenu      func(req ContextMenuRequest[T])
	// OnColumnLayoutChanged is called after the user resized or moved a column.
	OnColumnLayoutChanged func()

	// Hover and Focus track rows of the flattened sequence.
	Hover *Tracker[*Item[T]]
	Focus *Tracker[*Item[T]]

	header *Header
	root   *Items[T]
	rows   []*Item[T]

	selection []*Item[T]
	anchor    int

	opts        Options
	renderer    Renderer
	measurer    Measurer
	invalidator Invalidator

	width, height    int
	scrollX, scrollY int

	pointer pointerState[T]
	search  typeSearch

	// layoutCommitted runs before OnColumnLayoutChanged; hosts use it to
	// persist the layout.
	layoutCommitted func()
}

// NewList returns an empty list configured with opts.
func NewList[T any](opts Options) *List[T] {
	l := &List[T]{
		header: NewHeader(),
		anchor: -1,
		opts:   opts.normalized(),
	}
	l.root = &Items[T]{list: l}
	l.pointer.pressRow = -1
	l.Hover = NewTracker(l.rowTrackerChanged)
	l.Focus = NewTracker(func(prev, next Tracked[*Item[T]]) {
		l.rowTrackerChanged(prev, next)
		if l.OnFocusChanged != nil {
			l.OnFocusChanged(next.Entity)
		}
	})

	h := l.header
	h.grip = l.opts.ResizeGrip
	h.threshold = l.opts.DragThreshold
	h.extender = l.opts.ExtenderWidth
	h.measure = l.measureColumn
	h.onChanged = l.layoutChanged
	h.onDirty = func() { l.invalidate(l.headerRect()) }
	h.OnLayoutChanged = func() {
		if l.layoutCommitted != nil {
			l.layoutCommitted()
		}
		if l.OnColumnLayoutChanged != nil {
			l.OnColumnLayoutChanged()
		}
	}
	h.OnClicked = func(c *Column) {
		if l.OnHeaderClicked != nil {
			l.OnHeaderClicked(c)
		}
	}
	return l
}

// Root returns the top level collection.
func (l *List[T]) Root() *Items[T] {
	return l.root
}

// Header returns the column header.
func (l *List[T]) Header() *Header {
	return l.header
}

// AddColumn appends a column to the header.
func (l *List[T]) AddColumn(c *Column) error {
	return l.header.AddColumn(c)
}

// Options returns the list configuration.
func (l *List[T]) Options() Options {
	return l.opts
}

// SetRenderer injects the painter used for backgrounds, expanders and checkboxes.
func (l *List[T]) SetRenderer(r Renderer) {
	l.renderer = r
	l.invalidateAll()
}

// SetMeasurer injects the text measurer used for Auto columns and text cells.
func (l *List[T]) SetMeasurer(m Measurer) {
	l.measurer = m
	l.header.invalidateContent()
	l.header.relayout()
}

// SetInvalidator injects the receiver of repaint requests.
func (l *List[T]) SetInvalidator(inv Invalidator) {
	l.invalidator = inv
}

// DPI returns the current device DPI.
func (l *List[T]) DPI() int {
	return l.header.dpi
}

// SetDPI changes the device DPI. Metrics and column widths are rescaled.
func (l *List[T]) SetDPI(dpi int) {
	l.header.SetDPI(dpi)
	l.clampScroll()
}

func (l *List[T]) scale(v int) int {
	return l.header.scale(v)
}

// RowHeight returns the scaled height of a row.
func (l *List[T]) RowHeight() int {
	return max(l.scale(l.opts.RowHeight), 1)
}

// HeaderHeight returns the scaled header height, 0 when the header is hidden.
func (l *List[T]) HeaderHeight() int {
	if !l.opts.ShowHeader {
		return 0
	}
	return l.scale(l.opts.HeaderHeight)
}

// Len returns the number of rows.
func (l *List[T]) Len() int {
	return len(l.rows)
}

// Row returns the item shown at row i.
func (l *List[T]) Row(i int) *Item[T] {
	return l.rows[i]
}

// RowIndex returns the row of it, or -1 when it is not presented.
func (l *List[T]) RowIndex(it *Item[T]) int {
	if it == nil {
		return -1
	}
	return slices.Index(l.rows, it)
}

// Resize sets the size of the widget the list is shown in.
func (l *List[T]) Resize(width, height int) {
	if width == l.width && height == l.height {
		return
	}
	l.width, l.height = max(width, 0), max(height, 0)
	l.header.Resolve(l.width)
	l.clampScroll()
	l.invalidateAll()
}

// Size returns the widget size set by Resize.
func (l *List[T]) Size() Size {
	return Size{W: l.width, H: l.height}
}

// ContentSize returns the scrollable extent of the rows.
func (l *List[T]) ContentSize() Size {
	return Size{W: l.header.Extent(), H: len(l.rows) * l.RowHeight()}
}

func (l *List[T]) owns(it *Item[T]) error {
	if it == nil {
		return fmt.Errorf("nil item: %w", ErrInvalidArgument)
	}
	if it.List() != l {
		return fmt.Errorf("item not owned by this list: %w", ErrInvalidArgument)
	}
	return nil
}

func (l *List[T]) text(it *Item[T], c *Column) string {
	if l.CellText == nil || c == nil {
		return ""
	}
	return l.CellText(it, c)
}

// treeColumn returns the visible column that shows indentation, expanders and checkboxes.
func (l *List[T]) treeColumn() *Column {
	for _, c := range l.header.columns {
		if c.IsVisible() {
			return c
		}
	}
	return nil
}

// itemChanged is called when the content of a row changed.
func (l *List[T]) itemChanged(it *Item[T]) {
	i := l.RowIndex(it)
	if i < 0 {
		return
	}
	if l.hasAutoColumns() {
		l.header.invalidateContent()
		l.header.relayout()
		return
	}
	l.invalidate(l.rowRect(i))
}

func (l *List[T]) layoutChanged() {
	l.clampScroll()
	l.invalidateAll()
}
