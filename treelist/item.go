package treelist

// CheckedState is the state of an item's checkbox.
type CheckedState int

const (
	Unchecked CheckedState = iota
	Checked
	Indeterminate
	// Unavailable items show no checkbox and cannot be toggled.
	Unavailable
)

// Item is a node of the tree shown by a List. Value carries the caller's payload.
//
// Items are created detached with NewItem and attached by adding them to the
// root collection of a List or to the children of an attached item.
type Item[T any] struct {
	Value T

	parent   *Item[T]
	coll     *Items[T]
	children *Items[T]

	selected   bool
	expanded   bool
	expandable bool
	checked    CheckedState
	level      int
}

// NewItem returns a detached item holding value.
func NewItem[T any](value T) *Item[T] {
	return &Item[T]{Value: value, level: -1}
}

// Parent returns the owning item, or nil for top level and detached items.
func (it *Item[T]) Parent() *Item[T] {
	return it.parent
}

// Children returns the item's child collection, creating it on first use.
func (it *Item[T]) Children() *Items[T] {
	if it.children == nil {
		it.children = &Items[T]{owner: it}
	}
	return it.children
}

// HasChildren reports whether the item has children or was marked expandable.
func (it *Item[T]) HasChildren() bool {
	return it.expandable || (it.children != nil && len(it.children.items) > 0)
}

// SetExpandable shows an expander even while the item has no children,
// for children that are loaded on demand.
func (it *Item[T]) SetExpandable(expandable bool) {
	if it.expandable == expandable {
		return
	}
	it.expandable = expandable
	it.refresh()
}

// Level returns the depth of the item, 0 for top level items.
func (it *Item[T]) Level() int {
	if it.level < 0 {
		if it.parent == nil {
			it.level = 0
		} else {
			it.level = it.parent.Level() + 1
		}
	}
	return it.level
}

func (it *Item[T]) invalidateLevel() {
	it.level = -1
	if it.children == nil {
		return
	}
	for _, c := range it.children.items {
		c.invalidateLevel()
	}
}

// List returns the list the item is attached to, or nil.
func (it *Item[T]) List() *List[T] {
	top := it
	for top.parent != nil {
		top = top.parent
	}
	if top.coll == nil {
		return nil
	}
	return top.coll.list
}

// IsPresented reports whether the item occupies a row: it is attached and
// every ancestor is expanded.
func (it *Item[T]) IsPresented() bool {
	for p := it.parent; p != nil; p = p.parent {
		if !p.expanded {
			return false
		}
	}
	return it.List() != nil
}

func (it *Item[T]) IsSelected() bool {
	return it.selected
}

func (it *Item[T]) IsExpanded() bool {
	return it.expanded
}

func (it *Item[T]) CheckedState() CheckedState {
	return it.checked
}

// SetExpanded expands or collapses the item. Children of an attached item are
// added to or removed from the list's rows.
func (it *Item[T]) SetExpanded(expanded bool) {
	if it.expanded == expanded {
		return
	}
	if l := it.List(); l != nil {
		l.setExpanded(it, expanded)
		return
	}
	it.expanded = expanded
}

// Expand is shorthand for SetExpanded(true).
func (it *Item[T]) Expand() {
	it.SetExpanded(true)
}

// Collapse is shorthand for SetExpanded(false).
func (it *Item[T]) Collapse() {
	it.SetExpanded(false)
}

// SetChecked changes the checkbox state.
func (it *Item[T]) SetChecked(state CheckedState) {
	if it.checked == state {
		return
	}
	it.checked = state
	if l := it.List(); l != nil {
		l.itemChanged(it)
		if l.OnCheckedChanged != nil {
			l.OnCheckedChanged(it)
		}
	}
}

// Refresh tells the owning list that the item's content changed.
func (it *Item[T]) Refresh() {
	it.refresh()
}

func (it *Item[T]) refresh() {
	if l := it.List(); l != nil {
		l.itemChanged(it)
	}
}

// index returns the position of the item within its collection.
func (it *Item[T]) index() int {
	if it.coll == nil {
		return -1
	}
	return it.coll.IndexOf(it)
}

func (it *Item[T]) nextSibling() *Item[T] {
	i := it.index()
	if i < 0 || i+1 >= len(it.coll.items) {
		return nil
	}
	return it.coll.items[i+1]
}

func (it *Item[T]) prevSibling() *Item[T] {
	i := it.index()
	if i <= 0 {
		return nil
	}
	return it.coll.items[i-1]
}

// isAncestorOf reports whether it is other or one of other's ancestors.
func (it *Item[T]) isAncestorOf(other *Item[T]) bool {
	for p := other; p != nil; p = p.parent {
		if p == it {
			return true
		}
	}
	return false
}
