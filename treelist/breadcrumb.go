package treelist

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Breadcrumb shows the ancestor path of an item as a row of buttons.
// Pressing a button focuses and selects that ancestor.
type Breadcrumb[T any] struct {
	list    *List[T]
	label   func(*Item[T]) string
	content *fyne.Container
	scroll  *container.Scroll
}

// NewBreadcrumb returns a breadcrumb for items of l. label names an item.
func NewBreadcrumb[T any](l *List[T], label func(*Item[T]) string) *Breadcrumb[T] {
	b := &Breadcrumb[T]{
		list:    l,
		label:   label,
		content: container.NewHBox(),
	}
	b.scroll = container.NewHScroll(container.NewPadded(b.content))
	return b
}

// Object returns the canvas object to place in a window.
func (b *Breadcrumb[T]) Object() fyne.CanvasObject {
	return b.scroll
}

// Update shows the path from the top level down to it. A nil item clears
// the breadcrumb.
func (b *Breadcrumb[T]) Update(it *Item[T]) {
	var path []fyne.CanvasObject
	for cur := it; cur != nil; cur = cur.parent {
		target := cur
		path = append(path, widget.NewButton(b.label(cur), func() {
			b.open(target)
		}))
	}

	b.content.Objects = b.content.Objects[:0]
	for i := len(path) - 1; i >= 0; i-- {
		b.content.Add(path[i])
	}
	b.content.Refresh()
	b.scroll.Offset = fyne.NewPos(b.content.MinSize().Width, 0)
	b.scroll.Refresh()
}

func (b *Breadcrumb[T]) open(it *Item[T]) {
	if !it.IsPresented() {
		return
	}
	if err := b.list.SelectOnly(it); err != nil {
		fyne.LogError("Failed to select breadcrumb item", err)
		return
	}
	_ = b.list.SetFocus(it)
}
