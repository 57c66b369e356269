package treelist

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemeOptions returns DefaultOptions with row and header heights derived
// from the text metrics of the current fyne theme at zoom 1.0.
func ThemeOptions() Options {
	o := DefaultOptions()
	app := fyne.CurrentApp()
	if app == nil {
		return o
	}

	// "A" is representative for the line height
	s, _ := app.Driver().RenderedTextSize("A", theme.TextSize(), fyne.TextStyle{}, nil)
	lineHeight := s.Height
	pad := theme.Padding()

	o.RowHeight = int(fyne.Max(float32(o.ExpanderSize), lineHeight+pad) + 0.5)
	o.HeaderHeight = int(lineHeight + pad*2 + 0.5)
	o.CellPadding = int(pad + 0.5)
	return o
}
