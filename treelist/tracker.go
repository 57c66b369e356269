package treelist

import "fmt"

// Tracked is a snapshot of a Tracker.
type Tracked[E comparable] struct {
	Index  int
	Entity E
	Part   Part
	Valid  bool
}

// Tracker remembers one index into a sequence together with the entity found
// there. It has no knowledge of the sequence; the owner re-maps it with
// ResetIndex or Drop whenever the sequence changes shape.
type Tracker[E comparable] struct {
	cur      Tracked[E]
	onChange func(prev, next Tracked[E])
}

// NewTracker returns an untracked Tracker. onChange, when not nil, is called
// whenever Track or Drop change the tracked value.
func NewTracker[E comparable](onChange func(prev, next Tracked[E])) *Tracker[E] {
	return &Tracker[E]{cur: Tracked[E]{Index: -1}, onChange: onChange}
}

// Track starts tracking entity at index. Tracking the same state again is a no-op.
func (t *Tracker[E]) Track(index int, entity E, part Part) {
	next := Tracked[E]{Index: index, Entity: entity, Part: part, Valid: true}
	if t.cur == next {
		return
	}
	prev := t.cur
	t.cur = next
	if t.onChange != nil {
		t.onChange(prev, next)
	}
}

// Drop stops tracking.
func (t *Tracker[E]) Drop() {
	if !t.cur.Valid {
		return
	}
	prev := t.cur
	t.cur = Tracked[E]{Index: -1}
	if t.onChange != nil {
		t.onChange(prev, t.cur)
	}
}

// ResetIndex moves the tracked entity to a new index without notifying.
// It panics on a negative index; dropping must use Drop.
func (t *Tracker[E]) ResetIndex(index int) {
	if index < 0 {
		panic(fmt.Sprintf("treelist: tracker reset to negative index %d", index))
	}
	if t.cur.Valid {
		t.cur.Index = index
	}
}

func (t *Tracker[E]) IsTracked() bool {
	return t.cur.Valid
}

// Index returns the tracked index or -1.
func (t *Tracker[E]) Index() int {
	return t.cur.Index
}

func (t *Tracker[E]) Entity() E {
	return t.cur.Entity
}

func (t *Tracker[E]) Part() Part {
	return t.cur.Part
}

// State returns a snapshot of the tracked value.
func (t *Tracker[E]) State() Tracked[E] {
	return t.cur
}

// remap applies a splice of the tracked sequence: removed entries starting at
// pos are replaced by inserted new ones.
func (t *Tracker[E]) remap(pos, removed, inserted int) {
	if !t.cur.Valid || t.cur.Index < pos {
		return
	}
	if t.cur.Index < pos+removed {
		t.Drop()
		return
	}
	t.ResetIndex(t.cur.Index - removed + inserted)
}
