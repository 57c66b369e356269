package treelist

import (
	"testing"

	"fyne.io/fyne/v2/driver/desktop"
)

func TestResize_ClampsWithoutDrift(t *testing.T) {
	a := NewColumn(1, "a", "A", Sizeable, 100)
	b := NewColumn(2, "b", "B", Fill, 0)
	h := newTestHeader(t, a, b)
	h.Resolve(400)

	// 1. Grab the right edge of a
	if !h.BeginResize(0, PartRightResizer, 100) {
		t.Fatal("Expected the right edge of a to be resizable")
	}
	if h.ResizeTarget() != a {
		t.Fatalf("Expected a to be the target, got %v", h.ResizeTarget())
	}

	// 2. Shrink past the minimum in several steps
	h.ResizeTo(50)
	if a.ResolvedWidth() != 50 {
		t.Errorf("Expected 50, got %d", a.ResolvedWidth())
	}
	h.ResizeTo(0)
	h.ResizeTo(-100)
	if a.ResolvedWidth() != a.MinWidth {
		t.Errorf("Expected min width %d, got %d", a.MinWidth, a.ResolvedWidth())
	}

	// 3. Reversing grows the column straight away
	h.ResizeTo(-90)
	if a.ResolvedWidth() != a.MinWidth+10 {
		t.Errorf("Expected %d, got %d", a.MinWidth+10, a.ResolvedWidth())
	}
	if b.ResolvedWidth() != 400-a.ResolvedWidth() {
		t.Errorf("Expected fill to take the rest, got %d", b.ResolvedWidth())
	}

	committed := 0
	h.OnLayoutChanged = func() { committed++ }
	h.EndResize()
	if committed != 1 || h.IsResizing() {
		t.Errorf("Expected one commit and no gesture, got %d commits, resizing=%v", committed, h.IsResizing())
	}
}

func TestResize_Cancel(t *testing.T) {
	a := NewColumn(1, "a", "A", Sizeable, 100)
	h := newTestHeader(t, a)
	h.Resolve(400)
	committed := 0
	h.OnLayoutChanged = func() { committed++ }

	h.BeginResize(0, PartRightResizer, 100)
	h.ResizeTo(180)
	if a.ResolvedWidth() != 180 {
		t.Fatalf("Expected 180, got %d", a.ResolvedWidth())
	}
	h.CancelResize()

	if a.ResolvedWidth() != 100 || a.Width() != (Width{Value: 100, DPI: 96}) {
		t.Errorf("Expected the original width back, got %d (%+v)", a.ResolvedWidth(), a.Width())
	}
	if committed != 0 {
		t.Errorf("Expected a cancelled resize not to commit, got %d", committed)
	}
}

func TestResize_Targets(t *testing.T) {
	tests := []struct {
		name   string
		modes  []SizeMode
		vi     int
		edge   Part
		target int // index into the columns, -1 for none
		sign   int
	}{
		{"right edge of sizeable", []SizeMode{Sizeable, Sizeable}, 0, PartRightResizer, 0, 1},
		{"first column left edge", []SizeMode{Sizeable, Sizeable}, 0, PartLeftResizer, -1, 0},
		{"left edge resizes previous", []SizeMode{Sizeable, Sizeable}, 1, PartLeftResizer, 0, 1},
		{"left edge skips auto", []SizeMode{Sizeable, Auto, Sizeable}, 2, PartLeftResizer, 0, 1},
		{"left edge falls back to self", []SizeMode{Auto, Sizeable}, 1, PartLeftResizer, 1, -1},
		{"right edge after fill", []SizeMode{Fill, Sizeable, Sizeable}, 1, PartRightResizer, 2, -1},
		{"left edge after fill", []SizeMode{Sizeable, Fill, Sizeable}, 2, PartLeftResizer, 2, -1},
		{"right edge of fill", []SizeMode{Sizeable, Fill}, 1, PartRightResizer, -1, 0},
		{"right edge of auto", []SizeMode{Auto, Auto}, 0, PartRightResizer, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader()
			var cols []*Column
			for i, m := range tt.modes {
				c := NewColumn(i, string(rune('a'+i)), "", m, 50)
				cols = append(cols, c)
				if err := h.AddColumn(c); err != nil {
					t.Fatal(err)
				}
			}
			got, sign, ok := h.resizeTarget(h.VisibleColumns(), tt.vi, tt.edge)
			if tt.target < 0 {
				if ok {
					t.Errorf("Expected no target, got %s", got.Key)
				}
				return
			}
			if !ok || got != cols[tt.target] || sign != tt.sign {
				t.Errorf("Expected %s with sign %d, got %v with sign %d", cols[tt.target].Key, tt.sign, got, sign)
			}
		})
	}
}

func TestResize_LeftEdgeFallbackGrowsLeftwards(t *testing.T) {
	auto := NewColumn(1, "auto", "Auto", Auto, 0)
	size := NewColumn(2, "size", "Size", Sizeable, 80)
	h := newTestHeader(t, auto, size)
	h.measure = func(*Column) int { return 60 }
	h.Resolve(140)

	if !h.BeginResize(1, PartLeftResizer, 60) {
		t.Fatal("Expected the left edge of size to resize it")
	}
	// Dragging the left edge left widens the column
	h.ResizeTo(50)
	if size.ResolvedWidth() != 90 {
		t.Errorf("Expected 90, got %d", size.ResolvedWidth())
	}
	h.EndResize()
}

func TestResize_ThroughPointer(t *testing.T) {
	l := newTestList(DefaultOptions())
	a := NewColumn(1, "a", "A", Sizeable, 100)
	b := NewColumn(2, "b", "B", Fill, 0)
	_ = l.AddColumn(a)
	_ = l.AddColumn(b)
	l.Resize(400, 300)
	saved := 0
	l.OnColumnLayoutChanged = func() { saved++ }

	l.PointerDown(98, 10, desktop.MouseButtonPrimary, 0)
	if !l.Header().IsResizing() {
		t.Fatal("Expected a press on the grip to start resizing")
	}
	l.PointerMove(148, 10)
	l.PointerUp(148, 10)

	if a.ResolvedWidth() != 150 {
		t.Errorf("Expected 150, got %d", a.ResolvedWidth())
	}
	if saved != 1 {
		t.Errorf("Expected one layout change event, got %d", saved)
	}
}
