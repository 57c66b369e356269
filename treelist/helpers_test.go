package treelist

import (
	"image/color"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
)

func newTestList(opts Options) *List[string] {
	l := NewList[string](opts)
	l.CellText = func(it *Item[string], _ *Column) string { return it.Value }
	return l
}

// addItems appends one item per name to c and returns them.
func addItems(t *testing.T, c *Items[string], names ...string) []*Item[string] {
	t.Helper()
	items := make([]*Item[string], len(names))
	for i, n := range names {
		items[i] = NewItem(n)
	}
	if err := c.Add(items...); err != nil {
		t.Fatalf("Add(%v) failed: %v", names, err)
	}
	return items
}

func rowNames(l *List[string]) string {
	names := make([]string, l.Len())
	for i := range names {
		names[i] = l.Row(i).Value
	}
	return strings.Join(names, ",")
}

// checkRows fails when the rows differ from a fresh walk of the tree.
func checkRows(t *testing.T, l *List[string]) {
	t.Helper()
	want := l.presentedOrder()
	if len(want) != len(l.rows) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(l.rows))
	}
	for i := range want {
		if want[i] != l.rows[i] {
			t.Fatalf("Row %d: expected %q, got %q", i, want[i].Value, l.rows[i].Value)
		}
	}
}

// fixedMeasurer reports 7 pixels per rune and 13 pixels of height.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, bold bool) Size {
	w := 7 * len([]rune(text))
	if bold {
		w++
	}
	return Size{W: w, H: 13}
}

type recordedText struct {
	rect Rect
	text string
}

// recordingSurface keeps what was drawn on it.
type recordingSurface struct {
	fills  []Rect
	texts  []recordedText
	images []Rect
}

func (s *recordingSurface) FillRect(r Rect, _ color.Color)       { s.fills = append(s.fills, r) }
func (s *recordingSurface) StrokeRect(Rect, color.Color, int)    {}
func (s *recordingSurface) Line(int, int, int, int, color.Color) {}
func (s *recordingSurface) Image(r Rect, _ fyne.Resource)        { s.images = append(s.images, r) }
func (s *recordingSurface) Text(r Rect, text string, _ fyne.TextAlign, _ color.Color, _ bool) {
	s.texts = append(s.texts, recordedText{rect: r, text: text})
}

func (s *recordingSurface) drewText(text string) bool {
	for _, t := range s.texts {
		if t.text == text {
			return true
		}
	}
	return false
}

// invalidations counts repaint requests.
type invalidations struct {
	rects []Rect
}

func (i *invalidations) Invalidate(r Rect) {
	i.rects = append(i.rects, r)
}
