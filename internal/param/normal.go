// Package param implements the normalized parameter model shared by the panel
// and the widget layer: a clamped 0..1 Normal value, ranges that map between
// normalized positions and real-world units (linear floats, stepped integers,
// decibels, frequencies), tick mark groups for widget scales and a few unit
// formatters for read-outs.
package param

import "math"

// Normal is a parameter position in [0, 1]. Widgets produce and consume
// normals; ranges convert them to real-world values. Construct out-of-band
// floats through ClampNormal so stored values always stay in range.
type Normal float64

// CenterNormal is the midpoint position, the default for bipolar parameters.
const CenterNormal Normal = 0.5

// ClampNormal clamps v into [0, 1]. NaN maps to 0.
func ClampNormal(v float64) Normal {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return Normal(v)
}

// NormalParam couples a parameter's current normalized value with the default
// it returns to on reset. Ranges provide constructors that fill both fields
// from real-world units.
type NormalParam struct {
	Value   Normal
	Default Normal
}

// Update replaces the current value.
func (p *NormalParam) Update(n Normal) {
	p.Value = n
}

// Reset moves the value back to the default.
func (p *NormalParam) Reset() {
	p.Value = p.Default
}
