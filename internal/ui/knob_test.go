package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"

	"github.com/BoyleSeo/paris-green/internal/param"
)

func TestKnobAngleSweep(t *testing.T) {
	cases := []struct {
		value float64
		deg   float64
	}{
		{0, -150},
		{0.5, 0},
		{1, 150},
		{-3, -150},
		{42, 150},
	}
	for _, tc := range cases {
		want := tc.deg * math.Pi / 180
		if got := knobAngle(tc.value); math.Abs(got-want) > 1e-12 {
			t.Fatalf("knobAngle(%v) = %v rad, want %v", tc.value, got, want)
		}
	}
}

func TestKnobDragUpIncreases(t *testing.T) {
	k := NewKnob(param.MinMaxAndCenterTickMarks(param.TierTwo, param.TierThree))
	k.SetValue(0.5)

	k.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: -50}})
	if math.Abs(k.Value-0.75) > 1e-9 {
		t.Fatalf("after 50 px upward drag value = %v, want 0.75", k.Value)
	}

	k.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: 200}})
	if k.Value != 0 {
		t.Fatalf("after hard downward drag value = %v, want 0", k.Value)
	}
	k.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: 10}})
	if k.Value != 0 {
		t.Fatalf("dragging below the floor moved the value to %v", k.Value)
	}
}

func TestKnobScrollAndReset(t *testing.T) {
	k := NewKnob(param.TickMarkGroup{})
	k.Default = 0.5
	k.ScrollStep = 0.1

	var calls int
	k.OnChanged = func(float64) { calls++ }

	k.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})
	if math.Abs(k.Value-0.1) > 1e-9 {
		t.Fatalf("after scroll value = %v, want 0.1", k.Value)
	}

	k.DoubleTapped(&fyne.PointEvent{})
	if k.Value != 0.5 {
		t.Fatalf("after double tap value = %v, want 0.5", k.Value)
	}
	if calls != 2 {
		t.Fatalf("callback ran %d times, want 2", calls)
	}
}
