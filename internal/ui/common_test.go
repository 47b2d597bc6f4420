package ui

import (
	"math"
	"testing"
)

func TestTravelFraction(t *testing.T) {
	tests := []struct {
		name     string
		pos      float32
		extent   float32
		inverted bool
		want     float64
	}{
		{name: "start", pos: 0, extent: 100, want: 0},
		{name: "middle", pos: 50, extent: 100, want: 0.5},
		{name: "end", pos: 100, extent: 100, want: 1},
		{name: "before start clamps", pos: -20, extent: 100, want: 0},
		{name: "past end clamps", pos: 140, extent: 100, want: 1},
		{name: "inverted start", pos: 0, extent: 100, inverted: true, want: 1},
		{name: "inverted end", pos: 100, extent: 100, inverted: true, want: 0},
		{name: "inverted middle", pos: 25, extent: 100, inverted: true, want: 0.75},
		{name: "zero extent", pos: 50, extent: 0, want: 0},
		{name: "negative extent", pos: 50, extent: -10, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := travelFraction(tt.pos, tt.extent, tt.inverted)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Fatalf("travelFraction(%v, %v, %v) = %v, want %v", tt.pos, tt.extent, tt.inverted, got, tt.want)
			}
		})
	}
}

func TestClampFloat64(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		want        float64
	}{
		{name: "inside", v: 0.4, min: 0, max: 1, want: 0.4},
		{name: "below", v: -2, min: 0, max: 1, want: 0},
		{name: "above", v: 3, min: 0, max: 1, want: 1},
		{name: "degenerate interval", v: 7, min: 5, max: 5, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampFloat64(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("clampFloat64(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestStatusNeedsScroll(t *testing.T) {
	tests := []struct {
		name          string
		textWidth     float32
		viewportWidth float32
		want          bool
	}{
		{name: "fits exactly", textWidth: 120, viewportWidth: 120, want: false},
		{name: "slightly bigger but within epsilon", textWidth: 100.3, viewportWidth: 100, want: false},
		{name: "clearly needs scroll", textWidth: 150, viewportWidth: 120, want: true},
		{name: "negative viewport treated as zero", textWidth: 1, viewportWidth: -5, want: true},
		{name: "zero text width", textWidth: 0, viewportWidth: 200, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusNeedsScroll(tt.textWidth, tt.viewportWidth)
			if got != tt.want {
				t.Fatalf("statusNeedsScroll(%v, %v) = %v, want %v", tt.textWidth, tt.viewportWidth, got, tt.want)
			}
		})
	}
}
