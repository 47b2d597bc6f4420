package ui

import (
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/BoyleSeo/paris-green/internal/param"
)

// Geometry shared by the parameter widgets.
const (
	sliderTrackThickness = 4
	sliderTickArea       = 12
	defaultScrollStep    = 0.02
)

// tickLength maps a tick tier to the drawn mark length. TierOne is the most
// prominent.
func tickLength(tier param.TickMarkTier) float32 {
	switch tier {
	case param.TierOne:
		return 9
	case param.TierTwo:
		return 6
	default:
		return 3
	}
}

// buildTickLines creates one canvas line per mark in the group, subtly
// colored. Placement is left to each widget's renderer.
func buildTickLines(g param.TickMarkGroup) []*canvas.Line {
	marks := g.Marks()
	lines := make([]*canvas.Line, len(marks))
	for i := range marks {
		l := canvas.NewLine(theme.DisabledColor())
		l.StrokeWidth = 1
		lines[i] = l
	}
	return lines
}
