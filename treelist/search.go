package treelist

import (
	"strings"
	"time"
)

// SearchMode selects the order in which a search visits items.
type SearchMode int

const (
	// SearchTree visits presented items in depth-first order.
	SearchTree SearchMode = iota
	// SearchFlat visits only the top level items.
	SearchFlat
)

// Search finds items whose search text contains a query, ignoring case.
// A found item becomes the only selected item and is focused.
type Search[T any] struct {
	// Text returns the searchable text of an item. By default the text of
	// the tree column is used.
	Text func(item *Item[T]) string
	Mode SearchMode

	list *List[T]
}

// NewSearch returns a search over l.
func NewSearch[T any](l *List[T], mode SearchMode) *Search[T] {
	return &Search[T]{list: l, Mode: mode}
}

// First searches from the first item.
func (s *Search[T]) First(query string) bool {
	if query == "" {
		return true
	}
	start := s.first()
	if start == nil {
		return false
	}
	if s.matches(start, query) {
		return s.found(start)
	}
	return s.walk(start, query, s.next)
}

// Current searches from the focused item, including it.
func (s *Search[T]) Current(query string) bool {
	if query == "" {
		return true
	}
	start := s.start()
	if start == nil {
		return s.First(query)
	}
	if s.matches(start, query) {
		return s.found(start)
	}
	return s.walk(start, query, s.next)
}

// Next searches forward from the item after the focused one, wrapping.
func (s *Search[T]) Next(query string) bool {
	if query == "" {
		return true
	}
	start := s.start()
	if start == nil {
		return s.First(query)
	}
	return s.walk(start, query, s.next)
}

// Previous searches backward from the item before the focused one, wrapping.
func (s *Search[T]) Previous(query string) bool {
	if query == "" {
		return true
	}
	start := s.start()
	if start == nil {
		last := s.last()
		if last == nil {
			return false
		}
		if s.matches(last, query) {
			return s.found(last)
		}
		start = last
	}
	return s.walk(start, query, s.prev)
}

// walk steps from start until an item matches or start comes round again.
func (s *Search[T]) walk(start *Item[T], query string, step func(*Item[T]) *Item[T]) bool {
	for it := step(start); it != nil && it != start; it = step(it) {
		if s.matches(it, query) {
			return s.found(it)
		}
	}
	return false
}

func (s *Search[T]) matches(it *Item[T], query string) bool {
	var text string
	if s.Text != nil {
		text = s.Text(it)
	} else {
		text = s.list.text(it, s.list.treeColumn())
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

func (s *Search[T]) found(it *Item[T]) bool {
	l := s.list
	if err := l.SelectOnly(it); err != nil {
		return false
	}
	if i := l.RowIndex(it); i >= 0 {
		l.focusRow(i)
	}
	return true
}

// start returns the focused item when it can be visited in this mode.
func (s *Search[T]) start() *Item[T] {
	it := s.list.FocusedItem()
	if it == nil {
		return nil
	}
	if s.Mode == SearchFlat && it.coll != s.list.root {
		return nil
	}
	return it
}

func (s *Search[T]) first() *Item[T] {
	root := s.list.root
	if len(root.items) == 0 {
		return nil
	}
	return root.items[0]
}

func (s *Search[T]) last() *Item[T] {
	root := s.list.root
	if len(root.items) == 0 {
		return nil
	}
	last := root.items[len(root.items)-1]
	if s.Mode == SearchFlat {
		return last
	}
	return lastPresented(last)
}

func (s *Search[T]) next(it *Item[T]) *Item[T] {
	if s.Mode == SearchFlat {
		return s.flatStep(it, 1)
	}
	if n := nextPresented(it); n != nil {
		return n
	}
	return s.first()
}

func (s *Search[T]) prev(it *Item[T]) *Item[T] {
	if s.Mode == SearchFlat {
		return s.flatStep(it, -1)
	}
	if p := prevPresented(it); p != nil {
		return p
	}
	return s.last()
}

func (s *Search[T]) flatStep(it *Item[T], d int) *Item[T] {
	items := s.list.root.items
	n := len(items)
	i := it.index()
	if n == 0 || i < 0 {
		return nil
	}
	return items[((i+d)%n+n)%n]
}

// nextPresented returns the item after it in depth-first order over
// presented items, or nil after the last one.
func nextPresented[T any](it *Item[T]) *Item[T] {
	if it.expanded && it.children != nil && len(it.children.items) > 0 {
		return it.children.items[0]
	}
	for p := it; p != nil; p = p.parent {
		if sib := p.nextSibling(); sib != nil {
			return sib
		}
	}
	return nil
}

// prevPresented is the inverse of nextPresented.
func prevPresented[T any](it *Item[T]) *Item[T] {
	if sib := it.prevSibling(); sib != nil {
		return lastPresented(sib)
	}
	return it.parent
}

// lastPresented returns the deepest last presented descendant of it, or it.
func lastPresented[T any](it *Item[T]) *Item[T] {
	for it.expanded && it.children != nil && len(it.children.items) > 0 {
		it = it.children.items[len(it.children.items)-1]
	}
	return it
}

// typeSearch accumulates typed runes into a query that resets after a pause.
type typeSearch struct {
	query string
	last  time.Time
}

// TypeRune feeds a typed character to the incremental search. Typing within
// one second of the previous character extends the query.
func (l *List[T]) TypeRune(r rune, now time.Time) bool {
	ts := &l.search
	if now.Sub(ts.last) > typeSearchTimeout*time.Millisecond {
		ts.query = ""
	}
	ts.last = now
	ts.query += string(r)
	return l.Searcher().Current(ts.query)
}

// Searcher returns a search over this list in the configured mode.
func (l *List[T]) Searcher() *Search[T] {
	s := NewSearch(l, l.opts.Search)
	s.Text = l.SearchText
	return s
}
