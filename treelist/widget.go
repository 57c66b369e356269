package treelist

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Widget shows a List in a fyne window. Only the rows inside the viewport
// are turned into canvas objects.
type Widget[T any] struct {
	widget.BaseWidget

	// MenuFor returns the popup menu for a context menu request, or nil for
	// none. Header requests without a menu show the column chooser.
	MenuFor func(req ContextMenuRequest[T]) *fyne.Menu

	list     *List[T]
	queue    *Queue
	measurer *fyneMeasurer
	surface  *canvasSurface
	marquee  *canvas.Rectangle

	zoomLevel   int
	zoomAcc     zoomAccumulator
	layoutIdent string

	refreshQueued bool
	lastPos       fyne.Position
	focused       bool
	activeMenu    *widget.PopUp

	autoScrollTicker *time.Ticker
	autoScrollStop   chan struct{}
}

// NewWidget wraps l. It installs the theme renderer unless l already has a
// renderer, and takes over l.OnContextMenu.
func NewWidget[T any](l *List[T]) *Widget[T] {
	w := &Widget[T]{
		list:      l,
		measurer:  &fyneMeasurer{},
		marquee:   canvas.NewRectangle(color.Transparent),
		zoomLevel: defaultZoomLevelIndex,
	}
	w.surface = newCanvasSurface(w.measurer)
	w.queue = NewQueue(func() {
		fyne.Do(func() { w.queue.Drain() })
	})

	w.marquee.StrokeColor = theme.Color(theme.ColorNamePrimary)
	w.marquee.StrokeWidth = 2
	r, g, b, _ := theme.Color(theme.ColorNameFocus).RGBA()
	w.marquee.FillColor = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 64}
	w.marquee.Hide()

	if app := fyne.CurrentApp(); app != nil {
		w.zoomLevel = clampZoomLevelIndex(app.Preferences().IntWithFallback(zoomLevelKey, defaultZoomLevelIndex))
	}
	w.measurer.textSize = w.textSize()

	if l.renderer == nil {
		l.renderer = ThemeRenderer{}
	}
	l.SetMeasurer(w.measurer)
	l.SetInvalidator(w)
	l.SetDPI(zoomDPI(w.zoomLevel))
	l.OnContextMenu = w.showContextMenu

	w.ExtendBaseWidget(w)
	return w
}

// List returns the engine shown by the widget.
func (w *Widget[T]) List() *List[T] {
	return w.list
}

// Queue returns the queue drained on the fyne main goroutine. Background
// work posts its list mutations here.
func (w *Widget[T]) Queue() *Queue {
	return w.queue
}

func (w *Widget[T]) CreateRenderer() fyne.WidgetRenderer {
	return &widgetRenderer[T]{w: w}
}

// Invalidate schedules a repaint. Requests are coalesced until the next
// main loop iteration.
func (w *Widget[T]) Invalidate(Rect) {
	if w.refreshQueued {
		return
	}
	w.refreshQueued = true
	fyne.Do(func() {
		w.refreshQueued = false
		w.Refresh()
	})
}

func (w *Widget[T]) textSize() float32 {
	return theme.TextSize() * zoomLevels[clampZoomLevelIndex(w.zoomLevel)]
}

// ZoomLevel returns the index of the current zoom level.
func (w *Widget[T]) ZoomLevel() int {
	return w.zoomLevel
}

// SetZoomLevel changes the zoom and stores it in the app preferences.
func (w *Widget[T]) SetZoomLevel(level int) {
	level = clampZoomLevelIndex(level)
	if w.zoomLevel == level {
		return
	}
	w.zoomLevel = level
	if app := fyne.CurrentApp(); app != nil {
		app.Preferences().SetInt(zoomLevelKey, level)
	}
	w.measurer.textSize = w.textSize()
	w.list.SetDPI(zoomDPI(level))
	w.Refresh()
}

// RestoreLayout loads the column layout stored under ident and saves it
// again whenever the user changes it.
func (w *Widget[T]) RestoreLayout(ident string) {
	w.layoutIdent = ident
	w.list.layoutCommitted = w.saveLayout
	if app := fyne.CurrentApp(); app != nil {
		LoadLayoutPreference(app.Preferences(), ident, w.list.header)
	}
}

func (w *Widget[T]) saveLayout() {
	if w.layoutIdent == "" {
		return
	}
	if app := fyne.CurrentApp(); app != nil {
		SaveLayoutPreference(app.Preferences(), w.layoutIdent, w.list.header)
	}
}

func pointerXY(p fyne.Position) (int, int) {
	return int(p.X), int(p.Y)
}

var (
	_ desktop.Mouseable   = (*Widget[int])(nil)
	_ desktop.Hoverable   = (*Widget[int])(nil)
	_ desktop.Cursorable  = (*Widget[int])(nil)
	_ fyne.Draggable      = (*Widget[int])(nil)
	_ fyne.Scrollable     = (*Widget[int])(nil)
	_ fyne.Focusable      = (*Widget[int])(nil)
	_ fyne.Shortcutable   = (*Widget[int])(nil)
	_ fyne.DoubleTappable = (*Widget[int])(nil)
)

func (w *Widget[T]) MouseDown(e *desktop.MouseEvent) {
	w.DismissMenu()
	if c := fyne.CurrentApp().Driver().CanvasForObject(w); c != nil {
		c.Focus(w)
	}
	w.lastPos = e.Position
	x, y := pointerXY(e.Position)
	w.list.PointerDown(x, y, e.Button, e.Modifier)
}

func (w *Widget[T]) MouseUp(e *desktop.MouseEvent) {
	w.stopAutoScroll()
	x, y := pointerXY(e.Position)
	w.list.PointerUp(x, y)
}

func (w *Widget[T]) MouseIn(e *desktop.MouseEvent) {
	w.MouseMoved(e)
}

func (w *Widget[T]) MouseMoved(e *desktop.MouseEvent) {
	w.lastPos = e.Position
	x, y := pointerXY(e.Position)
	w.list.PointerMove(x, y)
}

func (w *Widget[T]) MouseOut() {
	w.list.PointerLeave()
}

func (w *Widget[T]) Cursor() desktop.Cursor {
	h := w.list.header
	if h.IsResizing() {
		return desktop.HResizeCursor
	}
	switch h.Hot.Part() {
	case PartLeftResizer, PartRightResizer:
		return desktop.HResizeCursor
	}
	return desktop.DefaultCursor
}

func (w *Widget[T]) Dragged(e *fyne.DragEvent) {
	w.lastPos = e.Position
	x, y := pointerXY(e.Position)
	w.list.PointerMove(x, y)
	w.updateAutoScroll()
}

func (w *Widget[T]) DragEnd() {
	w.stopAutoScroll()
	x, y := pointerXY(w.lastPos)
	w.list.PointerUp(x, y)
}

func (w *Widget[T]) Scrolled(e *fyne.ScrollEvent) {
	if isZoomModifierActive() {
		if steps := w.zoomAcc.add(e.Scrolled.DY); steps != 0 {
			w.SetZoomLevel(w.zoomLevel + steps)
		}
		return
	}
	w.list.Scroll(int(-e.Scrolled.DX), int(-e.Scrolled.DY))
}

func (w *Widget[T]) DoubleTapped(e *fyne.PointEvent) {
	x, y := pointerXY(e.Position)
	w.list.DoubleClick(x, y)
}

func (w *Widget[T]) FocusGained() {
	w.focused = true
	w.Refresh()
}

func (w *Widget[T]) FocusLost() {
	w.focused = false
	w.list.CancelGesture()
	w.Refresh()
}

func (w *Widget[T]) TypedRune(r rune) {
	w.list.TypeRune(r, time.Now())
}

func (w *Widget[T]) TypedKey(e *fyne.KeyEvent) {
	w.list.HandleKey(e.Name, currentKeyModifiers())
}

func (w *Widget[T]) TypedShortcut(s fyne.Shortcut) {
	if _, ok := s.(*fyne.ShortcutSelectAll); ok {
		w.list.SelectAll()
	}
}

func (w *Widget[T]) showContextMenu(req ContextMenuRequest[T]) {
	var menu *fyne.Menu
	if w.MenuFor != nil {
		menu = w.MenuFor(req)
	}
	if menu == nil && req.Kind == MenuHeader {
		menu = w.columnsMenu()
	}
	if menu == nil {
		return
	}
	w.ShowMenu(menu, fyne.NewPos(float32(req.X), float32(req.Y)))
}

// columnsMenu lists the available columns with a check mark on the visible ones.
func (w *Widget[T]) columnsMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, c := range w.list.header.Columns() {
		if !c.IsAvailable() {
			continue
		}
		item := fyne.NewMenuItem(c.Name, func() {
			c.SetVisible(!c.visible)
			w.saveLayout()
			w.DismissMenu()
		})
		item.Checked = c.visible
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return fyne.NewMenu("", items...)
}

// ShowMenu pops up menu at pos relative to the widget.
func (w *Widget[T]) ShowMenu(menu *fyne.Menu, pos fyne.Position) {
	w.DismissMenu()
	c := fyne.CurrentApp().Driver().CanvasForObject(w)
	if c == nil {
		return
	}

	m := widget.NewMenu(menu)
	m.OnDismiss = w.DismissMenu

	absPos := fyne.CurrentApp().Driver().AbsolutePositionForObject(w).Add(pos)
	w.activeMenu = widget.NewPopUp(m, c)
	w.activeMenu.ShowAtPosition(absPos)
}

func (w *Widget[T]) DismissMenu() {
	if w.activeMenu != nil {
		w.activeMenu.Hide()
		w.activeMenu = nil
	}
}

// updateAutoScroll keeps a marquee scrolling while the pointer rests above
// or below the rows.
func (w *Widget[T]) updateAutoScroll() {
	if !w.list.pointer.marquee {
		w.stopAutoScroll()
		return
	}
	_, y := pointerXY(w.lastPos)
	view := w.list.rowsViewport()
	if y >= view.Y && y < view.Y+view.H {
		w.stopAutoScroll()
		return
	}
	w.startAutoScroll()
}

func (w *Widget[T]) startAutoScroll() {
	if w.autoScrollTicker != nil {
		return
	}
	w.autoScrollTicker = time.NewTicker(30 * time.Millisecond)
	w.autoScrollStop = make(chan struct{})

	stop := w.autoScrollStop
	ticker := w.autoScrollTicker
	go func() {
		for {
			select {
			case <-ticker.C:
				fyne.Do(func() {
					if !w.list.pointer.marquee {
						w.stopAutoScroll()
						return
					}
					x, y := pointerXY(w.lastPos)
					w.list.PointerMove(x, y)
				})
			case <-stop:
				return
			}
		}
	}()
}

func (w *Widget[T]) stopAutoScroll() {
	if w.autoScrollTicker == nil {
		return
	}
	w.autoScrollTicker.Stop()
	w.autoScrollTicker = nil
	if w.autoScrollStop != nil {
		close(w.autoScrollStop)
		w.autoScrollStop = nil
	}
}

type widgetRenderer[T any] struct {
	w       *Widget[T]
	objects []fyne.CanvasObject
}

func (r *widgetRenderer[T]) Layout(size fyne.Size) {
	r.w.list.Resize(int(size.Width), int(size.Height))
	r.paint()
}

func (r *widgetRenderer[T]) MinSize() fyne.Size {
	l := r.w.list
	return fyne.NewSize(float32(l.scale(50)), float32(l.HeaderHeight()+l.RowHeight()))
}

func (r *widgetRenderer[T]) Refresh() {
	r.paint()
}

func (r *widgetRenderer[T]) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *widgetRenderer[T]) Destroy() {
	r.w.stopAutoScroll()
	r.w.DismissMenu()
}

func (r *widgetRenderer[T]) paint() {
	w := r.w
	l := w.list
	bounds := Rect{W: l.width, H: l.height}

	w.surface.begin(bounds, w.textSize())
	l.Paint(w.surface, bounds)
	if w.focused && l.Len() == 0 {
		w.surface.StrokeRect(bounds, theme.Color(theme.ColorNameFocus), 1)
	}
	w.surface.end()

	if m, ok := l.Marquee(); ok {
		place(w.marquee, intersect(m, bounds))
		w.marquee.Refresh()
	} else {
		w.marquee.Hide()
	}

	r.objects = append(r.objects[:0], w.surface.Objects()...)
	r.objects = append(r.objects, w.marquee)
}
