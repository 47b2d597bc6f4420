package param

import (
	"math"
	"testing"
)

func TestLogDBRangeCenterIsExactlyZero(t *testing.T) {
	r := DefaultLogDBRange()
	if got := r.UnmapToValue(CenterNormal); got != 0 {
		t.Fatalf("UnmapToValue(center) = %v, want exactly 0", got)
	}
	if got := r.MapToNormal(0); got != CenterNormal {
		t.Fatalf("MapToNormal(0) = %v, want center", got)
	}
}

func TestLogDBRangeSquareLawTaper(t *testing.T) {
	r := DefaultLogDBRange()
	cases := []struct {
		n    Normal
		want float64
	}{
		{0, -12},
		{0.25, -3},
		{0.5, 0},
		{0.75, 3},
		{1, 12},
	}
	for _, c := range cases {
		if got := r.UnmapToValue(c.n); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("UnmapToValue(%v) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestLogDBRangeDeltaGrowsTowardExtremes(t *testing.T) {
	// Equal normalized steps away from center must produce growing dB deltas.
	r := DefaultLogDBRange()
	prevDelta := 0.0
	prevValue := r.UnmapToValue(CenterNormal)
	for _, n := range []Normal{0.625, 0.75, 0.875, 1} {
		v := r.UnmapToValue(n)
		delta := v - prevValue
		if delta <= prevDelta {
			t.Fatalf("delta at %v is %v, not greater than previous %v", n, delta, prevDelta)
		}
		prevDelta = delta
		prevValue = v
	}
}

func TestLogDBRangeRoundTrip(t *testing.T) {
	r := DefaultLogDBRange()
	for _, n := range []Normal{0, 0.1, 0.25, 0.5, 0.6, 0.875, 1} {
		back := r.MapToNormal(r.UnmapToValue(n))
		if math.Abs(float64(back-n)) > 1e-9 {
			t.Fatalf("round trip of %v came back as %v", n, back)
		}
	}
}

func TestLogDBRangeOneSidedCollapses(t *testing.T) {
	r := NewLogDBRange(0, 12, CenterNormal)
	if got := r.UnmapToValue(0.25); got != 0 {
		t.Fatalf("negative side of a non-negative range = %v, want 0", got)
	}
	r = NewLogDBRange(-12, 0, CenterNormal)
	if got := r.UnmapToValue(0.75); got != 0 {
		t.Fatalf("positive side of a non-positive range = %v, want 0", got)
	}
}

func TestFreqRangeEndpointsAndOctaves(t *testing.T) {
	r := DefaultFreqRange()
	if got := r.UnmapToValue(0); math.Abs(got-20) > 1e-9 {
		t.Fatalf("UnmapToValue(0) = %v, want 20", got)
	}
	if got := r.UnmapToValue(1); math.Abs(got-20480) > 1e-6 {
		t.Fatalf("UnmapToValue(1) = %v, want 20480", got)
	}
	// Ten octaves: every 0.1 of normalized travel doubles the frequency.
	for i := 1; i <= 10; i++ {
		n := Normal(float64(i) / 10)
		prev := r.UnmapToValue(Normal(float64(i-1) / 10))
		if got := r.UnmapToValue(n); math.Abs(got-2*prev) > 1e-6 {
			t.Fatalf("UnmapToValue(%v) = %v, want %v", n, got, 2*prev)
		}
	}
}

func TestFreqRangeMidpoint(t *testing.T) {
	r := DefaultFreqRange()
	if got := r.UnmapToValue(0.5); math.Abs(got-640) > 1e-9 {
		t.Fatalf("UnmapToValue(0.5) = %v, want 640", got)
	}
}

func TestFreqRangeMapClampsOutOfBand(t *testing.T) {
	r := DefaultFreqRange()
	if got := r.MapToNormal(5); got != 0 {
		t.Fatalf("MapToNormal(5) = %v, want 0", got)
	}
	if got := r.MapToNormal(30000); got != 1 {
		t.Fatalf("MapToNormal(30000) = %v, want 1", got)
	}
}

func TestFreqRangeRoundTrip(t *testing.T) {
	r := NewFreqRange(20, 20480)
	for _, hz := range []float64{20, 55, 440, 1000, 12345, 20480} {
		back := r.UnmapToValue(r.MapToNormal(hz))
		if math.Abs(back-hz) > 1e-6*hz {
			t.Fatalf("round trip of %v Hz came back as %v", hz, back)
		}
	}
}

func TestFreqRangeGuardsNonPositiveMin(t *testing.T) {
	r := NewFreqRange(-10, 100)
	if r.Min() != 1 {
		t.Fatalf("expected min raised to 1 Hz, got %v", r.Min())
	}
}
