package panel

import "github.com/BoyleSeo/paris-green/internal/param"

// Event is one user interaction delivered by the widget layer. The set is
// closed: every variant lives in this file and HandleEvent switches over all
// of them, so there is no malformed-event path to defend against.
type Event interface {
	isEvent()
}

// SliderChanged reports the stock slider's new value in [0, 1].
type SliderChanged struct {
	Value float64
}

// ButtonClicked reports a press of the demo button, carrying its identifier.
type ButtonClicked struct {
	ID uint8
}

// HSliderChanged reports the stepped horizontal slider's raw normal, before
// snapping.
type HSliderChanged struct {
	Normal param.Normal
}

// VSliderChanged reports the gain slider's normal.
type VSliderChanged struct {
	Normal param.Normal
}

// KnobChanged reports the frequency knob's normal.
type KnobChanged struct {
	Normal param.Normal
}

// XYPadChanged reports both pad axes in one event so the pair always stays
// consistent.
type XYPadChanged struct {
	X, Y param.Normal
}

func (SliderChanged) isEvent()  {}
func (ButtonClicked) isEvent()  {}
func (HSliderChanged) isEvent() {}
func (VSliderChanged) isEvent() {}
func (KnobChanged) isEvent()    {}
func (XYPadChanged) isEvent()   {}
