package param

import "math"

// Range converts between normalized positions and real-world values. All
// ranges are immutable after construction and total over [0, 1]; UnmapToValue
// of 0 and 1 yields the range bounds exactly.
type Range interface {
	MapToNormal(value float64) Normal
	UnmapToValue(n Normal) float64
}

// FloatRange maps normals linearly onto [min, max].
type FloatRange struct {
	min, max float64
}

// NewFloatRange builds a linear range. Bounds given in the wrong order are
// swapped.
func NewFloatRange(min, max float64) FloatRange {
	if min > max {
		min, max = max, min
	}
	return FloatRange{min: min, max: max}
}

// DefaultBipolarFloatRange returns the [-1, 1] range used by pan and
// XY pad style parameters.
func DefaultBipolarFloatRange() FloatRange {
	return FloatRange{min: -1, max: 1}
}

// Min returns the lower bound.
func (r FloatRange) Min() float64 { return r.min }

// Max returns the upper bound.
func (r FloatRange) Max() float64 { return r.max }

// MapToNormal converts a real value into its normalized position, clamped to
// the range. A zero-width range maps everything to 0.
func (r FloatRange) MapToNormal(value float64) Normal {
	if r.max == r.min {
		return 0
	}
	return ClampNormal((value - r.min) / (r.max - r.min))
}

// UnmapToValue converts a normalized position into the real value.
func (r FloatRange) UnmapToValue(n Normal) float64 {
	return r.min + float64(n)*(r.max-r.min)
}

// NormalParam builds a parameter from real-world current and default values.
func (r FloatRange) NormalParam(value, def float64) NormalParam {
	return NormalParam{Value: r.MapToNormal(value), Default: r.MapToNormal(def)}
}

// DefaultNormalParam builds a parameter resting at the center position.
func (r FloatRange) DefaultNormalParam() NormalParam {
	return NormalParam{Value: CenterNormal, Default: CenterNormal}
}

// IntRange maps normals onto the integers min..max. Incoming normals are
// snapped to the nearest step before storage so a stored normal always sits
// exactly on an integer position.
type IntRange struct {
	min, max int
}

// NewIntRange builds a stepped range. Bounds given in the wrong order are
// swapped.
func NewIntRange(min, max int) IntRange {
	if min > max {
		min, max = max, min
	}
	return IntRange{min: min, max: max}
}

// Min returns the lower bound.
func (r IntRange) Min() int { return r.min }

// Max returns the upper bound.
func (r IntRange) Max() int { return r.max }

// Snapped returns the step boundary nearest to n. Ties round half away from
// zero (math.Round), so a normal exactly between two steps lands on the
// higher one. Snapping a snapped value is a no-op.
func (r IntRange) Snapped(n Normal) Normal {
	steps := float64(r.max - r.min)
	if steps <= 0 {
		return 0
	}
	return Normal(math.Round(float64(n)*steps) / steps)
}

// UnmapToInt converts a normalized position into the nearest integer value.
func (r IntRange) UnmapToInt(n Normal) int {
	steps := float64(r.max - r.min)
	if steps <= 0 {
		return r.min
	}
	return r.min + int(math.Round(float64(n)*steps))
}

// UnmapToValue converts a normalized position into the nearest integer value
// as a float64, satisfying Range.
func (r IntRange) UnmapToValue(n Normal) float64 {
	return float64(r.UnmapToInt(n))
}

// MapToNormal converts a real value into its normalized position, clamped to
// the range. A single-value range maps everything to 0.
func (r IntRange) MapToNormal(value float64) Normal {
	if r.max == r.min {
		return 0
	}
	return ClampNormal((value - float64(r.min)) / float64(r.max-r.min))
}

// NormalParam builds a parameter from integer current and default values,
// snapped onto step boundaries.
func (r IntRange) NormalParam(value, def int) NormalParam {
	return NormalParam{
		Value:   r.Snapped(r.MapToNormal(float64(value))),
		Default: r.Snapped(r.MapToNormal(float64(def))),
	}
}
