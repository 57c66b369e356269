package treelist

import (
	"errors"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// newInteractionList returns a list of ten top level rows "0".."9" where
// row 1 has two children, in a 200 wide viewport showing all rows.
func newInteractionList(t *testing.T, opts Options) *List[string] {
	t.Helper()
	l := newTestList(opts)
	_ = l.AddColumn(NewColumn(1, "name", "Name", Fill, 0))
	top := addItems(t, l.Root(), "0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	addItems(t, top[1].Children(), "1a", "1b")
	l.Resize(200, 24+22*14)
	return l
}

func selected(l *List[string]) string {
	var names []string
	for _, it := range l.SelectedItems() {
		names = append(names, it.Value)
	}
	return strings.Join(names, ",")
}

// rowY returns a widget y coordinate inside row i.
func rowY(l *List[string], i int) int {
	return l.RowRect(i).Y + 5
}

func click(l *List[string], x, y int, mods fyne.KeyModifier) {
	l.PointerDown(x, y, desktop.MouseButtonPrimary, mods)
	l.PointerUp(x, y)
}

func TestSelection_Click(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	changes := 0
	l.OnSelectionChanged = func() { changes++ }

	// 1. Plain click
	click(l, 100, rowY(l, 2), 0)
	if selected(l) != "2" || focused(l) != "2" {
		t.Errorf("Expected 2 selected and focused, got %q/%q", selected(l), focused(l))
	}

	// 2. Ctrl click adds
	click(l, 100, rowY(l, 4), fyne.KeyModifierControl)
	if selected(l) != "2,4" {
		t.Errorf("Expected 2,4, got %q", selected(l))
	}

	// 3. Shift click extends from the anchor
	click(l, 100, rowY(l, 6), fyne.KeyModifierShift)
	if selected(l) != "4,5,6" || focused(l) != "6" {
		t.Errorf("Expected 4,5,6 with focus on 6, got %q/%q", selected(l), focused(l))
	}

	// 4. Ctrl click toggles off
	click(l, 100, rowY(l, 5), fyne.KeyModifierControl)
	if selected(l) != "4,6" {
		t.Errorf("Expected 4,6, got %q", selected(l))
	}
	if changes != 4 {
		t.Errorf("Expected 4 selection events, got %d", changes)
	}
}

func TestSelection_PressInsideMultiSelection(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	l.SelectAll()

	// Press and release without moving narrows the selection
	click(l, 100, rowY(l, 3), 0)
	if selected(l) != "3" {
		t.Errorf("Expected 3, got %q", selected(l))
	}

	// Moving away first keeps it
	l.SelectAll()
	l.PointerDown(100, rowY(l, 3), desktop.MouseButtonPrimary, 0)
	l.PointerMove(100, rowY(l, 3)+20)
	l.PointerUp(100, rowY(l, 3))
	if len(l.SelectedItems()) != l.Len() {
		t.Errorf("Expected the selection to survive, got %q", selected(l))
	}
}

func TestSelection_ExpanderAndCheckBox(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowCheckBoxes = true
	l := newInteractionList(t, opts)
	var checked []string
	l.OnCheckedChanged = func(it *Item[string]) { checked = append(checked, it.Value) }

	click(l, 10, rowY(l, 1), 0)
	if rowNames(l) != "0,1,1a,1b,2,3,4,5,6,7,8,9" {
		t.Fatalf("Expected row 1 expanded, got %s", rowNames(l))
	}
	if focused(l) != "1" || selected(l) != "" {
		t.Errorf("Expected the expander to focus without selecting, got %q/%q", focused(l), selected(l))
	}

	click(l, 25, rowY(l, 1), 0)
	if l.Row(1).CheckedState() != Checked || len(checked) != 1 {
		t.Errorf("Expected row 1 checked, got %v", l.Row(1).CheckedState())
	}
	click(l, 25, rowY(l, 1), 0)
	if l.Row(1).CheckedState() != Unchecked || len(checked) != 2 {
		t.Errorf("Expected row 1 unchecked, got %v", l.Row(1).CheckedState())
	}

	// An indeterminate box becomes checked
	l.Row(0).SetChecked(Indeterminate)
	click(l, 25, rowY(l, 0), 0)
	if l.Row(0).CheckedState() != Checked {
		t.Errorf("Expected indeterminate to become checked, got %v", l.Row(0).CheckedState())
	}
}

func TestSelection_CollapseDropsHiddenSelection(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	parent := l.Row(1)
	parent.Expand()
	_ = l.Select(l.Row(0))
	_ = l.Select(l.Row(2)) // 1a
	changes := 0
	l.OnSelectionChanged = func() { changes++ }

	parent.Collapse()
	if selected(l) != "0" {
		t.Errorf("Expected only 0 to stay selected, got %q", selected(l))
	}
	if changes != 1 {
		t.Errorf("Expected one selection event, got %d", changes)
	}
}

func TestSelection_SingleMode(t *testing.T) {
	opts := DefaultOptions()
	opts.MultiSelect = false
	l := newInteractionList(t, opts)

	_ = l.Select(l.Row(0))
	_ = l.Select(l.Row(3))
	click(l, 100, rowY(l, 5), fyne.KeyModifierShift)
	if selected(l) != "5" {
		t.Errorf("Expected only 5, got %q", selected(l))
	}
	l.SelectAll()
	if selected(l) != "5" {
		t.Errorf("Expected SelectAll to do nothing, got %q", selected(l))
	}
}

func TestSelection_Errors(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	hidden := l.Row(1).Children().At(0)

	if err := l.Select(hidden); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument selecting a hidden item, got %v", err)
	}
	if err := l.SetFocus(hidden); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument focusing a hidden item, got %v", err)
	}
	if err := l.ExtendSelection(99); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for a bad row, got %v", err)
	}
	if err := l.Deselect(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for nil, got %v", err)
	}
}

func TestMarquee(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	l.Resize(200, 24+22*12)
	_ = l.Select(l.Row(9))

	// 1. Start in the free space below the rows and drag up into row 7
	bottom := 24 + 22*11
	l.PointerDown(100, bottom, desktop.MouseButtonPrimary, 0)
	if selected(l) != "" {
		t.Errorf("Expected a plain marquee to clear the selection, got %q", selected(l))
	}
	l.PointerMove(50, rowY(l, 7))
	if selected(l) != "7,8,9" {
		t.Errorf("Expected 7,8,9, got %q", selected(l))
	}
	r, ok := l.Marquee()
	if !ok || r.X != 50 || r.Y != rowY(l, 7) || r.H != bottom-rowY(l, 7) {
		t.Errorf("Expected the band from the press to the pointer, got %+v", r)
	}

	// 2. Shrinking the band drops rows again
	l.PointerMove(50, rowY(l, 9))
	if selected(l) != "9" {
		t.Errorf("Expected 9, got %q", selected(l))
	}
	l.PointerUp(50, rowY(l, 9))
	if _, ok := l.Marquee(); ok {
		t.Error("Expected the marquee to end on release")
	}
}

func TestMarquee_CancelRestoresSelection(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	l.Resize(200, 24+22*12)
	_ = l.Select(l.Row(0))

	bottom := 24 + 22*11
	l.PointerDown(100, bottom, desktop.MouseButtonPrimary, fyne.KeyModifierControl)
	l.PointerMove(100, rowY(l, 8))
	if selected(l) != "0,8,9" {
		t.Errorf("Expected ctrl marquee to add to 0, got %q", selected(l))
	}

	l.HandleKey(fyne.KeyEscape, 0)
	if selected(l) != "0" {
		t.Errorf("Expected escape to restore 0, got %q", selected(l))
	}
	if _, ok := l.Marquee(); ok {
		t.Error("Expected no marquee after escape")
	}
}

func TestDoubleClickAndContextMenu(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())
	var activated string
	l.OnActivated = func(it *Item[string]) { activated = it.Value }
	var menus []ContextMenuRequest[string]
	l.OnContextMenu = func(req ContextMenuRequest[string]) { menus = append(menus, req) }

	l.DoubleClick(100, rowY(l, 4))
	if activated != "4" {
		t.Errorf("Expected 4 activated, got %q", activated)
	}
	activated = ""
	l.DoubleClick(10, rowY(l, 1))
	if activated != "" {
		t.Errorf("Expected a double click on the expander not to activate, got %q", activated)
	}

	l.PointerDown(100, rowY(l, 3), desktop.MouseButtonSecondary, 0)
	l.SelectAll()
	l.PointerDown(100, rowY(l, 5), desktop.MouseButtonSecondary, 0)
	l.PointerDown(100, 24+22*12, desktop.MouseButtonSecondary, 0)
	l.PointerDown(100, 10, desktop.MouseButtonSecondary, 0)

	want := []ContextMenuKind{MenuItem, MenuItems, MenuFreeSpace, MenuHeader}
	if len(menus) != len(want) {
		t.Fatalf("Expected %d menus, got %d", len(want), len(menus))
	}
	for i, k := range want {
		if menus[i].Kind != k {
			t.Errorf("Menu %d: expected kind %d, got %d", i, k, menus[i].Kind)
		}
	}
	if len(menus[0].Items) != 1 || menus[0].Items[0].Value != "3" {
		t.Errorf("Expected the right click to select 3, got %v", menus[0].Items)
	}
	if menus[3].Column == nil || menus[3].Column.Key != "name" {
		t.Errorf("Expected the header menu to name its column, got %v", menus[3].Column)
	}
}

func TestHover(t *testing.T) {
	l := newInteractionList(t, DefaultOptions())

	l.PointerMove(100, rowY(l, 2))
	if l.Hover.Index() != 2 || l.Hover.Part() != PartDefault {
		t.Errorf("Expected hover on row 2, got %d", l.Hover.Index())
	}
	l.PointerMove(10, rowY(l, 1))
	if l.Hover.Part() != PartPlusMinus {
		t.Errorf("Expected hover on the expander, got %s", l.Hover.Part())
	}
	l.PointerMove(100, 10)
	if l.Hover.IsTracked() || !l.Header().Hot.IsTracked() {
		t.Error("Expected the header to be hot and no row hovered")
	}
	l.PointerLeave()
	if l.Header().Hot.IsTracked() {
		t.Error("Expected leave to clear the hot header")
	}
}
