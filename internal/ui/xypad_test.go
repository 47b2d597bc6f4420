package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
)

func TestXYPadPositionMapping(t *testing.T) {
	p := NewXYPad()
	var gotX, gotY float64
	var calls int
	p.OnChanged = func(x, y float64) { gotX, gotY = x, y; calls++ }

	p.updateFromPos(25, 0, 100, 200) // quarter across, top edge
	if math.Abs(gotX-0.25) > 1e-6 || gotY != 1 {
		t.Fatalf("top-edge update produced (%v, %v), want (0.25, 1)", gotX, gotY)
	}
	p.updateFromPos(100, 200, 100, 200) // far corner, bottom edge
	if gotX != 1 || gotY != 0 {
		t.Fatalf("bottom-corner update produced (%v, %v), want (1, 0)", gotX, gotY)
	}
	if calls != 2 {
		t.Fatalf("both axes must change through one callback, got %d calls", calls)
	}
}

func TestXYPadRepeatedPairIsNoOp(t *testing.T) {
	p := NewXYPad()
	p.SetValues(0.5, 0.5)

	var calls int
	p.OnChanged = func(x, y float64) { calls++ }

	p.SetValues(0.5, 0.5)
	if calls != 0 {
		t.Fatalf("repeated pair fired %d callbacks, want 0", calls)
	}
	p.SetValues(0.5, 0.25) // one axis moving still notifies
	if calls != 1 {
		t.Fatalf("single-axis change fired %d callbacks, want 1", calls)
	}
}

func TestXYPadClampsOutOfBounds(t *testing.T) {
	p := NewXYPad()
	p.SetValues(-2, 7)
	if p.X != 0 || p.Y != 1 {
		t.Fatalf("out-of-bounds pair stored as (%v, %v), want (0, 1)", p.X, p.Y)
	}
	before := [2]float64{p.X, p.Y}
	p.updateFromPos(10, 10, 0, 0) // no extent yet, ignored
	if p.X != before[0] || p.Y != before[1] {
		t.Fatalf("zero-size update moved the handle to (%v, %v)", p.X, p.Y)
	}
}

func TestXYPadScrollAndReset(t *testing.T) {
	p := NewXYPad()
	p.DefaultX, p.DefaultY = 0.5, 0.5
	p.ScrollStep = 0.25

	p.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})
	if p.X != 0 || math.Abs(p.Y-0.25) > 1e-9 {
		t.Fatalf("scroll moved the pad to (%v, %v), want (0, 0.25)", p.X, p.Y)
	}

	p.DoubleTapped(&fyne.PointEvent{})
	if p.X != 0.5 || p.Y != 0.5 {
		t.Fatalf("after double tap pad is at (%v, %v), want (0.5, 0.5)", p.X, p.Y)
	}
}
