package treelist

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestHandleKey_Navigation(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	l.Resize(200, 24+22*4)

	steps := []struct {
		key   fyne.KeyName
		mods  fyne.KeyModifier
		focus string
		sel   string
	}{
		{fyne.KeyDown, 0, "0", "0"},
		{fyne.KeyDown, 0, "1", "1"},
		{fyne.KeyDown, fyne.KeyModifierShift, "2", "1,2"},
		{fyne.KeyDown, fyne.KeyModifierShift, "3", "1,2,3"},
		{fyne.KeyUp, fyne.KeyModifierControl, "2", "1,2,3"},
		{fyne.KeyEnd, 0, "9", "9"},
		{fyne.KeyPageUp, 0, "6", "6"},
		{fyne.KeyHome, 0, "0", "0"},
		{fyne.KeyUp, 0, "0", "0"},
		{fyne.KeyPageDown, 0, "3", "3"},
	}
	for i, st := range steps {
		if !l.HandleKey(st.key, st.mods) {
			t.Fatalf("Step %d: expected %s to be handled", i, st.key)
		}
		if focused(l) != st.focus || selected(l) != st.sel {
			t.Fatalf("Step %d (%s): expected focus %s and selection %q, got %s and %q",
				i, st.key, st.focus, st.sel, focused(l), selected(l))
		}
		// The focused row is always scrolled into view
		r := l.RowRect(l.Focus.Index())
		if r.Y < l.HeaderHeight() || r.Y+r.H > l.Size().H {
			t.Fatalf("Step %d: focused row not visible: %+v", i, r)
		}
	}
}

func TestHandleKey_TreeKeys(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	_ = l.SetFocus(l.Row(1))

	// 1. Right expands, then moves to the first child
	l.HandleKey(fyne.KeyRight, 0)
	if !l.Row(1).IsExpanded() || focused(l) != "1" {
		t.Fatalf("Expected 1 expanded and focused, got %s", focused(l))
	}
	l.HandleKey(fyne.KeyRight, 0)
	if focused(l) != "1a" {
		t.Fatalf("Expected focus on 1a, got %s", focused(l))
	}

	// 2. Left on a leaf moves to the parent, then collapses it
	l.HandleKey(fyne.KeyLeft, 0)
	if focused(l) != "1" {
		t.Fatalf("Expected focus back on 1, got %s", focused(l))
	}
	l.HandleKey(fyne.KeyLeft, 0)
	if l.Row(1).IsExpanded() {
		t.Error("Expected 1 to collapse")
	}

	// 3. Asterisk expands the whole subtree
	grand := l.Row(1).Children().At(0)
	addItems(t, grand.Children(), "1a-x")
	l.HandleKey(fyne.KeyAsterisk, 0)
	if rowNames(l) != "0,1,1a,1a-x,1b,2,3,4,5,6,7,8,9" {
		t.Errorf("Expected the subtree expanded, got %s", rowNames(l))
	}
}

func TestHandleKey_Commands(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowCheckBoxes = true
	l := newInteractionList(t, opts)
	_ = l.SetFocus(l.Row(4))
	var activated string
	l.OnActivated = func(it *Item[string]) { activated = it.Value }

	l.HandleKey(fyne.KeySpace, 0)
	if l.Row(4).CheckedState() != Checked {
		t.Errorf("Expected space to check 4, got %v", l.Row(4).CheckedState())
	}
	l.HandleKey(fyne.KeySpace, fyne.KeyModifierControl)
	if selected(l) != "4" {
		t.Errorf("Expected ctrl space to select 4, got %q", selected(l))
	}

	l.HandleKey(fyne.KeyReturn, 0)
	if activated != "4" {
		t.Errorf("Expected enter to activate 4, got %q", activated)
	}

	if l.HandleKey(fyne.KeyA, 0) {
		t.Error("Expected a plain A not to be handled")
	}
	l.HandleKey(fyne.KeyA, fyne.KeyModifierControl)
	if len(l.SelectedItems()) != l.Len() {
		t.Errorf("Expected ctrl A to select all, got %q", selected(l))
	}

	if l.HandleKey(fyne.KeyF5, 0) {
		t.Error("Expected F5 not to be handled")
	}
}

func TestHandleKey_EscapeCancelsResize(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	name := l.Header().ColumnByKey("name")
	size := NewColumn(2, "size", "Size", Sizeable, 60)
	_ = l.AddColumn(size)
	name.SetSizeMode(Sizeable)
	_ = name.SetWidth(Width{Value: 100, DPI: 96})

	h := l.Header()
	if !h.BeginResize(0, PartRightResizer, 100) {
		t.Fatal("Expected a resize to start")
	}
	h.ResizeTo(150)
	l.HandleKey(fyne.KeyEscape, 0)

	if h.IsResizing() || name.ResolvedWidth() != 100 {
		t.Errorf("Expected escape to restore 100, got %d", name.ResolvedWidth())
	}
}
