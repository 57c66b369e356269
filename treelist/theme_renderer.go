package treelist

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemeRenderer paints list chrome with the colors and icons of the current
// fyne theme.
type ThemeRenderer struct{}

func (ThemeRenderer) Background(s Surface, r Rect) {
	s.FillRect(r, theme.Color(theme.ColorNameBackground))
}

func (ThemeRenderer) RowBackground(s Surface, r Rect, state CellState) {
	switch {
	case state.Selected:
		s.FillRect(r, theme.Color(theme.ColorNameSelection))
	case state.Hot:
		s.FillRect(r, theme.Color(theme.ColorNameHover))
	}
	if state.Focused {
		s.StrokeRect(r, theme.Color(theme.ColorNameFocus), 1)
	}
}

func (ThemeRenderer) TextColor(state CellState) color.Color {
	return theme.Color(theme.ColorNameForeground)
}

func (ThemeRenderer) Expander(s Surface, r Rect, expanded, hot bool) {
	if hot {
		s.FillRect(r, theme.Color(theme.ColorNameHover))
	}
	icon := theme.MenuExpandIcon()
	if expanded {
		icon = theme.MenuDropDownIcon()
	}
	s.Image(r, icon)
}

func (ThemeRenderer) CheckBox(s Surface, r Rect, state CheckedState, hot bool) {
	if hot {
		s.FillRect(r, theme.Color(theme.ColorNameHover))
	}
	var icon fyne.Resource
	switch state {
	case Checked:
		icon = theme.CheckButtonCheckedIcon()
	case Indeterminate:
		icon = theme.ContentRemoveIcon()
	default:
		icon = theme.CheckButtonIcon()
	}
	s.Image(r, icon)
}

func (ThemeRenderer) HeaderCell(s Surface, r Rect, c *Column, state HeaderState) {
	s.FillRect(r, theme.Color(theme.ColorNameHeaderBackground))
	if state.Hot || state.Pressed {
		s.FillRect(r, theme.Color(theme.ColorNameHover))
	}
	sep := theme.Color(theme.ColorNameSeparator)
	s.Line(r.X, r.Y+r.H-1, r.X+r.W, r.Y+r.H-1, sep)
	if c == nil {
		return
	}
	s.Line(r.X+r.W-1, r.Y, r.X+r.W-1, r.Y+r.H, sep)

	pad := int(theme.Padding())
	text := Rect{X: r.X + pad, Y: r.Y, W: r.W - 2*pad, H: r.H}
	icon := r.H / 2
	if c.Extender {
		ext := Rect{X: r.X + r.W - pad - icon, Y: r.Y + (r.H-icon)/2, W: icon, H: icon}
		if state.Hot && state.HotPart == PartExtender {
			s.Image(ext, theme.MenuDropDownIcon())
		}
		text.W -= icon + pad
	}
	if c.Sort != SortNone {
		ind := Rect{X: text.X + text.W - icon, Y: r.Y + (r.H-icon)/2, W: icon, H: icon}
		if c.Sort == SortAscending {
			s.Image(ind, theme.MoveUpIcon())
		} else {
			s.Image(ind, theme.MoveDownIcon())
		}
		text.W -= icon + pad
	}
	s.Text(text, c.Name, c.Alignment, theme.Color(theme.ColorNameForeground), true)
}

func (ThemeRenderer) DropGap(s Surface, r Rect) {
	c := theme.Color(theme.ColorNamePrimary)
	cr, cg, cb, _ := c.RGBA()
	s.FillRect(r, color.NRGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: 64})
}
