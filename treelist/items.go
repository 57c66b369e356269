package treelist

import (
	"fmt"
	"slices"
	"sort"
)

// Items is an ordered collection of items owned by a parent item or by the
// root of a List. Mutations of an attached collection update the list's rows.
type Items[T any] struct {
	owner   *Item[T]
	list    *List[T]
	items   []*Item[T]
	compare func(a, b *Item[T]) int
}

func (c *Items[T]) Len() int {
	return len(c.items)
}

// At returns the item at index i.
func (c *Items[T]) At(i int) *Item[T] {
	return c.items[i]
}

// All returns a copy of the items.
func (c *Items[T]) All() []*Item[T] {
	return slices.Clone(c.items)
}

// IndexOf returns the index of it or -1.
func (c *Items[T]) IndexOf(it *Item[T]) int {
	return slices.Index(c.items, it)
}

// Owner returns the parent item, nil for a root collection.
func (c *Items[T]) Owner() *Item[T] {
	return c.owner
}

// attachedList returns the list this collection is attached to.
func (c *Items[T]) attachedList() *List[T] {
	if c.list != nil {
		return c.list
	}
	if c.owner == nil {
		return nil
	}
	return c.owner.List()
}

// Add appends items, or inserts each at its sorted position when the
// collection has a comparison set by Sort.
func (c *Items[T]) Add(items ...*Item[T]) error {
	if err := c.validate(items); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if c.compare == nil {
		return c.insert(len(c.items), items)
	}
	for _, it := range items {
		i := sort.Search(len(c.items), func(i int) bool {
			return c.compare(c.items[i], it) > 0
		})
		if err := c.insert(i, []*Item[T]{it}); err != nil {
			return err
		}
	}
	return nil
}

// Insert places items starting at index. Sorted collections only accept Add.
func (c *Items[T]) Insert(index int, items ...*Item[T]) error {
	if c.compare != nil {
		return fmt.Errorf("insert into sorted collection: %w", ErrInvalidState)
	}
	if index < 0 || index > len(c.items) {
		return fmt.Errorf("insert at %d of %d: %w", index, len(c.items), ErrInvalidArgument)
	}
	if err := c.validate(items); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return c.insert(index, items)
}

func (c *Items[T]) validate(items []*Item[T]) error {
	for i, it := range items {
		if it == nil {
			return fmt.Errorf("nil item: %w", ErrInvalidArgument)
		}
		if it.coll != nil {
			return fmt.Errorf("item already has an owner: %w", ErrInvalidArgument)
		}
		if slices.Index(items[:i], it) >= 0 {
			return fmt.Errorf("item passed twice: %w", ErrInvalidArgument)
		}
		if c.owner != nil && it.isAncestorOf(c.owner) {
			return fmt.Errorf("item would become its own descendant: %w", ErrInvalidArgument)
		}
	}
	return nil
}

func (c *Items[T]) insert(index int, items []*Item[T]) error {
	if len(items) == 0 {
		return nil
	}
	for _, it := range items {
		it.parent = c.owner
		it.coll = c
		it.invalidateLevel()
	}
	c.items = slices.Insert(c.items, index, items...)
	if l := c.attachedList(); l != nil {
		l.itemsInserted(c, index, len(items))
	}
	return nil
}

// Remove deletes count items starting at index.
func (c *Items[T]) Remove(index, count int) error {
	if count < 0 || index < 0 || index+count > len(c.items) {
		return fmt.Errorf("remove %d at %d of %d: %w", count, index, len(c.items), ErrInvalidArgument)
	}
	if count == 0 {
		return nil
	}
	removed := slices.Clone(c.items[index : index+count])
	c.items = slices.Delete(c.items, index, index+count)
	if l := c.attachedList(); l != nil {
		l.itemsRemoved(c, removed)
	}
	for _, it := range removed {
		detach(it)
	}
	return nil
}

// RemoveItem deletes it from the collection.
func (c *Items[T]) RemoveItem(it *Item[T]) error {
	i := c.IndexOf(it)
	if it == nil || i < 0 {
		return fmt.Errorf("remove: item not in collection: %w", ErrInvalidArgument)
	}
	return c.Remove(i, 1)
}

// Set replaces the item at index.
func (c *Items[T]) Set(index int, it *Item[T]) error {
	if c.compare != nil {
		return fmt.Errorf("set in sorted collection: %w", ErrInvalidState)
	}
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("set at %d of %d: %w", index, len(c.items), ErrInvalidArgument)
	}
	if err := c.validate([]*Item[T]{it}); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	old := c.items[index]
	it.parent = c.owner
	it.coll = c
	it.invalidateLevel()
	c.items[index] = it
	if l := c.attachedList(); l != nil {
		l.itemReplaced(old, it)
	}
	detach(old)
	return nil
}

// Clear removes every item.
func (c *Items[T]) Clear() {
	if len(c.items) == 0 {
		return
	}
	old := c.items
	c.items = nil
	if l := c.attachedList(); l != nil {
		l.itemsCleared(c, old)
	}
	for _, it := range old {
		detach(it)
	}
}

// Sort orders the collection with cmp and keeps it ordered on later Add
// calls. A nil cmp turns sorting off without reordering.
func (c *Items[T]) Sort(cmp func(a, b *Item[T]) int) {
	c.compare = cmp
	if cmp == nil || len(c.items) < 2 {
		return
	}
	slices.SortStableFunc(c.items, cmp)
	if l := c.attachedList(); l != nil {
		l.itemsSorted(c)
	}
}

func detach[T any](it *Item[T]) {
	it.parent = nil
	it.coll = nil
	it.selected = false
	it.invalidateLevel()
}
