package treelist

// Options configures the metrics and behaviour of a List. Sizes are given at
// 96 DPI and scaled to the list's current DPI.
type Options struct {
	RowHeight     int
	HeaderHeight  int
	Indent        int
	ExpanderSize  int
	CheckBoxSize  int
	CellPadding   int
	ResizeGrip    int
	ExtenderWidth int
	// DragThreshold is the horizontal distance a pressed header must travel
	// before a column reorder starts.
	DragThreshold int

	ShowHeader     bool
	ShowExpanders  bool
	ShowCheckBoxes bool
	MultiSelect    bool

	// Search selects the traversal used by typed and explicit searches.
	Search SearchMode
}

// DefaultOptions returns the options used by NewList when none are given.
func DefaultOptions() Options {
	return Options{
		RowHeight:     22,
		HeaderHeight:  24,
		Indent:        16,
		ExpanderSize:  16,
		CheckBoxSize:  16,
		CellPadding:   4,
		ResizeGrip:    4,
		ExtenderWidth: 16,
		DragThreshold: 4,
		ShowHeader:    true,
		ShowExpanders: true,
		MultiSelect:   true,
		Search:        SearchTree,
	}
}

// normalized fills zero metrics with their defaults.
func (o Options) normalized() Options {
	d := DefaultOptions()
	fill := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	fill(&o.RowHeight, d.RowHeight)
	fill(&o.HeaderHeight, d.HeaderHeight)
	fill(&o.Indent, d.Indent)
	fill(&o.ExpanderSize, d.ExpanderSize)
	fill(&o.CheckBoxSize, d.CheckBoxSize)
	fill(&o.CellPadding, d.CellPadding)
	fill(&o.ResizeGrip, d.ResizeGrip)
	fill(&o.ExtenderWidth, d.ExtenderWidth)
	fill(&o.DragThreshold, d.DragThreshold)
	return o
}
