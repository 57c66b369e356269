package treelist

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var zoomLevels = []float32{
	0.75,
	1.0,
	1.25,
	1.5,
	1.75,
	2.0,
}

const defaultZoomLevelIndex = 1 // 1.0

func clampZoomLevelIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(zoomLevels) {
		return len(zoomLevels) - 1
	}
	return i
}

// zoomDPI returns the engine DPI for a zoom level index.
func zoomDPI(i int) int {
	return int(math.Round(float64(referenceDPI * zoomLevels[clampZoomLevelIndex(i)])))
}

func isZoomModifierActive() bool {
	app := fyne.CurrentApp()
	if app == nil {
		return false
	}
	d, ok := app.Driver().(desktop.Driver)
	if !ok {
		return false
	}

	mods := d.CurrentKeyModifiers()
	if mods&fyne.KeyModifierControl != 0 {
		return true
	}
	// Command+scroll on macOS
	return mods&fyne.KeyModifierShortcutDefault != 0
}

func currentKeyModifiers() fyne.KeyModifier {
	app := fyne.CurrentApp()
	if app == nil {
		return 0
	}
	if d, ok := app.Driver().(desktop.Driver); ok {
		return d.CurrentKeyModifiers()
	}
	return 0
}

// zoomAccumulator turns scroll deltas into whole zoom steps.
type zoomAccumulator struct {
	accDY float32
}

// add returns the number of notches crossed by dy. Fyne scroll deltas are
// about 40 per mouse wheel notch; touchpads send many small deltas.
func (z *zoomAccumulator) add(dy float32) int {
	const notch = float32(40)

	if math.IsNaN(float64(dy)) || math.IsInf(float64(dy), 0) {
		return 0
	}
	z.accDY += dy

	var steps int
	for z.accDY >= notch {
		steps++
		z.accDY -= notch
	}
	for z.accDY <= -notch {
		steps--
		z.accDY += notch
	}
	return steps
}
