package treelist

import "testing"

func newReorderHeader(t *testing.T) (*Header, *Column, *Column, *Column) {
	t.Helper()
	a := NewColumn(1, "a", "A", Sizeable, 100)
	b := NewColumn(2, "b", "B", Sizeable, 100)
	c := NewColumn(3, "c", "C", Sizeable, 100)
	for _, col := range []*Column{a, b, c} {
		col.Draggable = true
	}
	h := newTestHeader(t, a, b, c)
	h.Resolve(300)
	return h, a, b, c
}

func TestReorder_DragSnapsToNearestGap(t *testing.T) {
	h, a, b, c := newReorderHeader(t)
	moved := 0
	h.OnLayoutChanged = func() { moved++ }
	h.OnClicked = func(*Column) { t.Error("Expected no click after a drag") }

	// 1. Press a and wiggle inside the threshold
	h.ArmReorder(0, 50)
	h.ReorderTo(52)
	if h.IsReordering() {
		t.Fatal("Expected no drag within the threshold")
	}

	// 2. Drag it past the last column
	h.ReorderTo(260)
	col, left, gap, ok := h.DragFeedback()
	if !ok || col != a {
		t.Fatalf("Expected drag feedback for a, got %v %v", col, ok)
	}
	if left != 210 || gap != 200 {
		t.Errorf("Expected ghost at 210 and gap at 200, got %d and %d", left, gap)
	}

	// 3. Drop
	if !h.EndReorder() {
		t.Error("Expected the column to move")
	}
	got := h.Columns()
	if got[0] != b || got[1] != c || got[2] != a {
		t.Errorf("Expected b,c,a, got %s,%s,%s", got[0].Key, got[1].Key, got[2].Key)
	}
	if a.Left() != 200 {
		t.Errorf("Expected a at 200, got %d", a.Left())
	}
	if moved != 1 {
		t.Errorf("Expected one layout change, got %d", moved)
	}
}

func TestReorder_DropInPlaceDoesNotCommit(t *testing.T) {
	h, a, b, _ := newReorderHeader(t)
	moved := 0
	h.OnLayoutChanged = func() { moved++ }

	h.ArmReorder(1, 150)
	h.ReorderTo(170)
	if !h.IsReordering() {
		t.Fatal("Expected a drag")
	}
	if h.EndReorder() {
		t.Error("Expected no move when dropped at the same place")
	}
	if h.Columns()[0] != a || h.Columns()[1] != b || moved != 0 {
		t.Errorf("Expected order and layout unchanged, got %d commits", moved)
	}
}

func TestReorder_ClickWithoutDrag(t *testing.T) {
	h, a, _, _ := newReorderHeader(t)
	var clicked *Column
	h.OnClicked = func(c *Column) { clicked = c }

	h.ArmReorder(0, 50)
	if h.Pressed() != a {
		t.Fatalf("Expected a to be pressed, got %v", h.Pressed())
	}
	h.ReorderTo(53)
	h.EndReorder()

	if clicked != a {
		t.Errorf("Expected a click on a, got %v", clicked)
	}
	if h.Pressed() != nil {
		t.Error("Expected nothing pressed after release")
	}
}

func TestReorder_NotDraggable(t *testing.T) {
	h, a, _, _ := newReorderHeader(t)
	a.Draggable = false
	clicks := 0
	h.OnClicked = func(*Column) { clicks++ }

	h.ArmReorder(0, 50)
	h.ReorderTo(260)
	if h.IsReordering() {
		t.Error("Expected a non draggable column not to drag")
	}
	if h.EndReorder() {
		t.Error("Expected no move")
	}
	if clicks != 1 || h.Columns()[0] != a {
		t.Errorf("Expected a click and a still first, got %d clicks", clicks)
	}
}

func TestReorder_Cancel(t *testing.T) {
	h, a, _, _ := newReorderHeader(t)
	h.OnClicked = func(*Column) { t.Error("Expected no click after cancel") }

	h.ArmReorder(0, 50)
	h.ReorderTo(260)
	h.CancelReorder()

	if h.Columns()[0] != a || h.IsReordering() {
		t.Error("Expected cancel to leave the order alone")
	}
}

func TestReorder_HiddenColumnsKeepTheirPlace(t *testing.T) {
	h, a, b, c := newReorderHeader(t)
	hidden := NewColumn(4, "h", "H", Sizeable, 100)
	if err := h.AddColumn(hidden); err != nil {
		t.Fatal(err)
	}
	if err := h.MoveColumn(3, 1); err != nil {
		t.Fatal(err)
	}
	hidden.SetVisible(false)

	// Drag c to the front
	h.ArmReorder(2, 250)
	h.ReorderTo(0)
	h.EndReorder()

	got := h.Columns()
	want := []*Column{c, a, hidden, b}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Position %d: expected %s, got %s", i, want[i].Key, got[i].Key)
		}
	}
}
