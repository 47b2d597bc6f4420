package param

import "math"

// LogDBRange maps normals onto a decibel span with a square-law taper on each
// side of a configurable zero-dB position. Movement near the zero position
// changes the value slowly; the dB delta per unit of normalized movement grows
// toward the extremes, which is how gain faders usually feel.
type LogDBRange struct {
	min, max float64
	zero     Normal
}

// NewLogDBRange builds a decibel range with the zero-dB point at the given
// normalized position. Bounds given in the wrong order are swapped.
func NewLogDBRange(min, max float64, zero Normal) LogDBRange {
	if min > max {
		min, max = max, min
	}
	return LogDBRange{min: min, max: max, zero: zero}
}

// DefaultLogDBRange returns the [-12 dB, +12 dB] range centered at 0.5.
func DefaultLogDBRange() LogDBRange {
	return LogDBRange{min: -12, max: 12, zero: CenterNormal}
}

// Min returns the lower bound in dB.
func (r LogDBRange) Min() float64 { return r.min }

// Max returns the upper bound in dB.
func (r LogDBRange) Max() float64 { return r.max }

// Zero returns the normalized position that maps to exactly 0 dB.
func (r LogDBRange) Zero() Normal { return r.zero }

// UnmapToValue converts a normalized position into decibels. The zero
// position yields exactly 0. A side whose bound does not cross zero (min >= 0
// or max <= 0) collapses to 0 for positions on that side.
func (r LogDBRange) UnmapToValue(n Normal) float64 {
	z := float64(r.zero)
	v := float64(n)
	switch {
	case v == z:
		return 0
	case v < z:
		if r.min >= 0 || z <= 0 {
			return 0
		}
		neg := 1 - v/z
		return r.min * neg * neg
	default:
		if r.max <= 0 || z >= 1 {
			return 0
		}
		pos := (v - z) / (1 - z)
		return r.max * pos * pos
	}
}

// MapToNormal converts decibels into the normalized position, the inverse of
// UnmapToValue. Values beyond the bounds clamp to 0 or 1.
func (r LogDBRange) MapToNormal(db float64) Normal {
	z := float64(r.zero)
	switch {
	case db == 0:
		return r.zero
	case db < 0:
		if r.min >= 0 || z <= 0 {
			return r.zero
		}
		neg := math.Sqrt(clamp01(db / r.min))
		return ClampNormal(z * (1 - neg))
	default:
		if r.max <= 0 || z >= 1 {
			return r.zero
		}
		pos := math.Sqrt(clamp01(db / r.max))
		return ClampNormal(z + pos*(1-z))
	}
}

// NormalParam builds a parameter from current and default values in dB.
func (r LogDBRange) NormalParam(db, def float64) NormalParam {
	return NormalParam{Value: r.MapToNormal(db), Default: r.MapToNormal(def)}
}

// DefaultNormalParam builds a parameter resting at the zero-dB position.
func (r LogDBRange) DefaultNormalParam() NormalParam {
	return NormalParam{Value: r.zero, Default: r.zero}
}

// FreqRange maps normals onto a frequency span logarithmically, giving every
// octave the same normalized width.
type FreqRange struct {
	min, max float64
}

// NewFreqRange builds a frequency range. min must be positive; non-positive
// values are raised to 1 Hz. Bounds given in the wrong order are swapped.
func NewFreqRange(min, max float64) FreqRange {
	if max < min {
		min, max = max, min
	}
	if min <= 0 {
		min = 1
	}
	if max < min {
		max = min
	}
	return FreqRange{min: min, max: max}
}

// DefaultFreqRange returns the 20 Hz .. 20 480 Hz range: ten octaves, so each
// 0.1 of normalized movement doubles the frequency.
func DefaultFreqRange() FreqRange {
	return FreqRange{min: 20, max: 20480}
}

// Min returns the lower bound in Hz.
func (r FreqRange) Min() float64 { return r.min }

// Max returns the upper bound in Hz.
func (r FreqRange) Max() float64 { return r.max }

// Octaves returns the width of the range in octaves.
func (r FreqRange) Octaves() float64 {
	return math.Log2(r.max / r.min)
}

// UnmapToValue converts a normalized position into Hz.
func (r FreqRange) UnmapToValue(n Normal) float64 {
	return r.min * math.Pow(2, float64(n)*r.Octaves())
}

// MapToNormal converts Hz into the normalized position. Frequencies outside
// the bounds clamp to 0 or 1.
func (r FreqRange) MapToNormal(hz float64) Normal {
	oct := r.Octaves()
	if oct == 0 {
		return 0
	}
	if hz < r.min {
		hz = r.min
	}
	if hz > r.max {
		hz = r.max
	}
	return ClampNormal(math.Log2(hz/r.min) / oct)
}

// NormalParam builds a parameter from current and default values in Hz.
func (r FreqRange) NormalParam(hz, def float64) NormalParam {
	return NormalParam{Value: r.MapToNormal(hz), Default: r.MapToNormal(def)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
