package panel

import (
	"math"
	"testing"

	"github.com/BoyleSeo/paris-green/internal/param"
)

func TestNewPanelDefaults(t *testing.T) {
	p := New()
	if got := p.DisplayText(); got != "try anything" {
		t.Fatalf("initial display = %q", got)
	}
	if got := p.StepValue(); got != 5 {
		t.Fatalf("initial steps = %d, want 5", got)
	}
	if got := p.GainDB(); got != 0 {
		t.Fatalf("initial gain = %v dB, want 0", got)
	}
	if got := p.FreqHz(); math.Abs(got-1000) > 1e-6 {
		t.Fatalf("initial freq = %v Hz, want 1000", got)
	}
	x, y := p.PadValues()
	if x != 0 || y != 0 {
		t.Fatalf("initial pad = (%v, %v), want centered", x, y)
	}
	if got := p.MixValue(); got != 0 {
		t.Fatalf("initial mix = %v, want 0", got)
	}
	if got := p.ButtonID(); got != 128 {
		t.Fatalf("button id = %d, want 128", got)
	}
	if got := p.Title(); got != "ParisGreen — Parameter Panel" {
		t.Fatalf("title = %q", got)
	}
}

func TestPanelTickGroups(t *testing.T) {
	p := New()
	center := p.CenterTicks().Marks()
	if len(center) != 1 || center[0].Position != param.CenterNormal || center[0].Tier != param.TierTwo {
		t.Fatalf("center group = %+v, want a single tier-two center mark", center)
	}
	knob := p.KnobTicks().Marks()
	if len(knob) != 3 {
		t.Fatalf("knob group has %d marks, want 3", len(knob))
	}
	if knob[0].Position != 0 || knob[2].Position != 1 || knob[0].Tier != param.TierTwo {
		t.Fatalf("knob end marks = %+v", knob)
	}
	if knob[1].Position != param.CenterNormal || knob[1].Tier != param.TierThree {
		t.Fatalf("knob center mark = %+v", knob[1])
	}
}

func TestButtonClickedDisplay(t *testing.T) {
	p := New()
	p.HandleEvent(ButtonClicked{ID: 7})
	if got := p.DisplayText(); got != "Button Clicked: 7" {
		t.Fatalf("display = %q, want %q", got, "Button Clicked: 7")
	}
}

func TestSliderChangedDisplay(t *testing.T) {
	p := New()
	p.HandleEvent(SliderChanged{Value: 0.55})
	if got := p.DisplayText(); got != "Slider Changed: 0.55" {
		t.Fatalf("display = %q", got)
	}
	if got := p.MixValue(); got != 0.55 {
		t.Fatalf("mix = %v, want 0.55", got)
	}
}

func TestHSliderSnapsBeforeStore(t *testing.T) {
	p := New()
	p.HandleEvent(HSliderChanged{Normal: 0.33})
	if got := p.StepNormal(); got != 0.3 {
		t.Fatalf("stored normal = %v, want the 0.3 boundary", got)
	}
	if got := p.StepValue(); got != 3 {
		t.Fatalf("steps = %d, want 3", got)
	}
	if got := p.DisplayText(); got != "HSliderInt: 3" {
		t.Fatalf("display = %q", got)
	}
	// Feeding the snapped normal back in must not move anything.
	p.HandleEvent(HSliderChanged{Normal: p.StepNormal()})
	if got := p.StepNormal(); got != 0.3 {
		t.Fatalf("re-dispatch moved the normal to %v", got)
	}
}

func TestVSliderDisplay(t *testing.T) {
	p := New()
	p.HandleEvent(VSliderChanged{Normal: 0.75})
	if got := p.DisplayText(); got != "VSliderDB: 3.000" {
		t.Fatalf("display = %q", got)
	}
	if got := p.GainDB(); math.Abs(got-3) > 1e-9 {
		t.Fatalf("gain = %v dB, want 3", got)
	}
}

func TestKnobDisplay(t *testing.T) {
	p := New()
	p.HandleEvent(KnobChanged{Normal: 0.5})
	if got := p.DisplayText(); got != "KnobFreq: 640.00" {
		t.Fatalf("display = %q", got)
	}
}

func TestXYPadDisplay(t *testing.T) {
	p := New()
	p.HandleEvent(XYPadChanged{X: 0.25, Y: 0.75})
	if got := p.DisplayText(); got != "XYPadFloat: x: -0.50, y: 0.50" {
		t.Fatalf("display = %q", got)
	}
	x, y := p.PadValues()
	if x != -0.5 || y != 0.5 {
		t.Fatalf("pad = (%v, %v), want (-0.5, 0.5)", x, y)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	p := New()
	p.HandleEvent(SliderChanged{Value: 0.3})
	p.HandleEvent(HSliderChanged{Normal: 0.72})
	p.HandleEvent(VSliderChanged{Normal: 0.25})
	p.HandleEvent(KnobChanged{Normal: 0.9})
	p.HandleEvent(XYPadChanged{X: 0.1, Y: 0.8})
	snap := p.Snapshot()

	q := New()
	q.Restore(snap)
	if q.StepNormal() != p.StepNormal() {
		t.Fatalf("steps normal %v, want %v", q.StepNormal(), p.StepNormal())
	}
	if q.GainNormal() != p.GainNormal() {
		t.Fatalf("gain normal %v, want %v", q.GainNormal(), p.GainNormal())
	}
	if q.FreqNormal() != p.FreqNormal() {
		t.Fatalf("freq normal %v, want %v", q.FreqNormal(), p.FreqNormal())
	}
	qx, qy := q.PadNormals()
	px, py := p.PadNormals()
	if qx != px || qy != py {
		t.Fatalf("pad normals (%v, %v), want (%v, %v)", qx, qy, px, py)
	}
	if q.MixValue() != p.MixValue() {
		t.Fatalf("mix %v, want %v", q.MixValue(), p.MixValue())
	}
	if got := q.DisplayText(); got != "try anything" {
		t.Fatalf("restore should reset the display, got %q", got)
	}
}

func TestRestoreClampsAndSnaps(t *testing.T) {
	p := New()
	p.Restore(State{Mix: 2, Steps: 1.7, Gain: -0.2, Freq: 0.5, PadX: 0.5, PadY: 0.5})
	if got := p.MixValue(); got != 1 {
		t.Fatalf("mix = %v, want clamped to 1", got)
	}
	if got := p.StepNormal(); got != 1 {
		t.Fatalf("steps normal = %v, want clamped to 1", got)
	}
	if got := p.GainNormal(); got != 0 {
		t.Fatalf("gain normal = %v, want clamped to 0", got)
	}
	// Defaults survive a restore untouched.
	if got := p.StepDefault(); got != 0.5 {
		t.Fatalf("steps default = %v, want 0.5", got)
	}
}
