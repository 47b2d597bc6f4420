// Package panel implements the parameter panel core: a set of named
// parameters, each a conversion range plus a normalized value, folded over a
// closed stream of widget events into a single display string. The panel is
// pure state, single threaded and free of UI concerns; the app layer renders
// it and feeds events back in.
package panel

import (
	"fmt"

	"github.com/BoyleSeo/paris-green/internal/param"
)

const (
	windowTitle = "ParisGreen — Parameter Panel"
	idleText    = "try anything"

	demoButtonID = 128
)

// Panel holds the demo's parameters and the current display string.
type Panel struct {
	intRange   param.IntRange
	dbRange    param.LogDBRange
	freqRange  param.FreqRange
	floatRange param.FloatRange

	steps param.NormalParam
	gain  param.NormalParam
	freq  param.NormalParam
	padX  param.NormalParam
	padY  param.NormalParam

	mix      float64
	buttonID uint8

	centerTicks param.TickMarkGroup
	knobTicks   param.TickMarkGroup

	display string
}

// New builds the demo panel: a 0..10 stepped slider starting at 5, a ±12 dB
// gain slider starting at 0 dB, a 20 Hz..20.48 kHz knob starting at 1 kHz and
// a bipolar XY pad starting centered.
func New() *Panel {
	intRange := param.NewIntRange(0, 10)
	dbRange := param.DefaultLogDBRange()
	freqRange := param.DefaultFreqRange()
	floatRange := param.DefaultBipolarFloatRange()
	pad := floatRange.DefaultNormalParam()
	return &Panel{
		intRange:    intRange,
		dbRange:     dbRange,
		freqRange:   freqRange,
		floatRange:  floatRange,
		steps:       intRange.NormalParam(5, 5),
		gain:        dbRange.DefaultNormalParam(),
		freq:        freqRange.NormalParam(1000, 1000),
		padX:        pad,
		padY:        pad,
		buttonID:    demoButtonID,
		centerTicks: param.CenterTickMarks(param.TierTwo),
		knobTicks:   param.MinMaxAndCenterTickMarks(param.TierTwo, param.TierThree),
		display:     idleText,
	}
}

// HandleEvent folds one widget event into the panel and rewrites the display
// string. The stepped slider's normal is snapped before storage, so the
// stored value always sits on an integer position and the widget visibly
// jumps onto it when resynchronized.
func (p *Panel) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case SliderChanged:
		p.mix = e.Value
		p.display = fmt.Sprintf("Slider Changed: %v", e.Value)
	case ButtonClicked:
		p.display = fmt.Sprintf("Button Clicked: %d", e.ID)
	case HSliderChanged:
		p.steps.Update(p.intRange.Snapped(e.Normal))
		p.display = fmt.Sprintf("HSliderInt: %d", p.intRange.UnmapToInt(e.Normal))
	case VSliderChanged:
		p.gain.Update(e.Normal)
		p.display = fmt.Sprintf("VSliderDB: %.3f", p.dbRange.UnmapToValue(e.Normal))
	case KnobChanged:
		p.freq.Update(e.Normal)
		p.display = fmt.Sprintf("KnobFreq: %.2f", p.freqRange.UnmapToValue(e.Normal))
	case XYPadChanged:
		p.padX.Update(e.X)
		p.padY.Update(e.Y)
		p.display = fmt.Sprintf("XYPadFloat: x: %.2f, y: %.2f",
			p.floatRange.UnmapToValue(e.X), p.floatRange.UnmapToValue(e.Y))
	}
}

// Title returns the window title.
func (p *Panel) Title() string { return windowTitle }

// DisplayText returns the current status line.
func (p *Panel) DisplayText() string { return p.display }

// MixValue returns the stock slider's stored value.
func (p *Panel) MixValue() float64 { return p.mix }

// ButtonID returns the identifier the demo button reports when clicked.
func (p *Panel) ButtonID() uint8 { return p.buttonID }

// StepNormal returns the stepped slider's stored normal, always on a step
// boundary.
func (p *Panel) StepNormal() param.Normal { return p.steps.Value }

// StepDefault returns the stepped slider's default normal.
func (p *Panel) StepDefault() param.Normal { return p.steps.Default }

// StepValue returns the stepped slider's integer value.
func (p *Panel) StepValue() int { return p.intRange.UnmapToInt(p.steps.Value) }

// StepRange returns the stepped slider's range.
func (p *Panel) StepRange() param.IntRange { return p.intRange }

// GainNormal returns the gain slider's stored normal.
func (p *Panel) GainNormal() param.Normal { return p.gain.Value }

// GainDefault returns the gain slider's default normal.
func (p *Panel) GainDefault() param.Normal { return p.gain.Default }

// GainDB returns the gain in decibels.
func (p *Panel) GainDB() float64 { return p.dbRange.UnmapToValue(p.gain.Value) }

// GainRange returns the gain slider's range.
func (p *Panel) GainRange() param.LogDBRange { return p.dbRange }

// FreqNormal returns the knob's stored normal.
func (p *Panel) FreqNormal() param.Normal { return p.freq.Value }

// FreqDefault returns the knob's default normal.
func (p *Panel) FreqDefault() param.Normal { return p.freq.Default }

// FreqHz returns the knob's frequency in Hz.
func (p *Panel) FreqHz() float64 { return p.freqRange.UnmapToValue(p.freq.Value) }

// FreqRange returns the knob's range.
func (p *Panel) FreqRange() param.FreqRange { return p.freqRange }

// PadNormals returns the pad's stored normals.
func (p *Panel) PadNormals() (x, y param.Normal) { return p.padX.Value, p.padY.Value }

// PadDefaults returns the pad's default normals.
func (p *Panel) PadDefaults() (x, y param.Normal) { return p.padX.Default, p.padY.Default }

// PadValues returns the pad's values on the bipolar range.
func (p *Panel) PadValues() (x, y float64) {
	return p.floatRange.UnmapToValue(p.padX.Value), p.floatRange.UnmapToValue(p.padY.Value)
}

// PadRange returns the pad's range, shared by both axes.
func (p *Panel) PadRange() param.FloatRange { return p.floatRange }

// CenterTicks returns the single center mark shared by both sliders.
func (p *Panel) CenterTicks() param.TickMarkGroup { return p.centerTicks }

// KnobTicks returns the knob's min, max and center mark group.
func (p *Panel) KnobTicks() param.TickMarkGroup { return p.knobTicks }
