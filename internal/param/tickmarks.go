package param

// TickMarkTier selects how prominently a widget draws a tick mark. TierOne is
// the most prominent.
type TickMarkTier int

// Tick mark tiers, largest first.
const (
	TierOne TickMarkTier = iota + 1
	TierTwo
	TierThree
)

// TickMark is a single cosmetic mark at a normalized position along a
// widget's travel. Marks never influence values; snapping belongs to ranges.
type TickMark struct {
	Position Normal
	Tier     TickMarkTier
}

// TickMarkGroup is an immutable set of tick marks shared between widgets.
type TickMarkGroup struct {
	marks []TickMark
}

// NewTickMarkGroup builds a group from explicit marks.
func NewTickMarkGroup(marks ...TickMark) TickMarkGroup {
	g := TickMarkGroup{marks: make([]TickMark, len(marks))}
	copy(g.marks, marks)
	return g
}

// CenterTickMarks returns a single mark at the center position.
func CenterTickMarks(tier TickMarkTier) TickMarkGroup {
	return NewTickMarkGroup(TickMark{Position: CenterNormal, Tier: tier})
}

// MinMaxAndCenterTickMarks returns marks at both ends plus the center, with
// the ends and the center drawn at their own tiers.
func MinMaxAndCenterTickMarks(minMaxTier, centerTier TickMarkTier) TickMarkGroup {
	return NewTickMarkGroup(
		TickMark{Position: 0, Tier: minMaxTier},
		TickMark{Position: CenterNormal, Tier: centerTier},
		TickMark{Position: 1, Tier: minMaxTier},
	)
}

// EvenlySpacedTickMarks returns count marks spread uniformly from 0 to 1
// inclusive. A count below one yields an empty group; a count of one yields a
// single center mark.
func EvenlySpacedTickMarks(count int, tier TickMarkTier) TickMarkGroup {
	switch {
	case count < 1:
		return TickMarkGroup{}
	case count == 1:
		return CenterTickMarks(tier)
	}
	marks := make([]TickMark, count)
	span := float64(count - 1)
	for i := range marks {
		marks[i] = TickMark{Position: ClampNormal(float64(i) / span), Tier: tier}
	}
	return TickMarkGroup{marks: marks}
}

// Marks returns a copy of the group's marks so callers can iterate without
// aliasing the group's storage.
func (g TickMarkGroup) Marks() []TickMark {
	out := make([]TickMark, len(g.marks))
	copy(out, g.marks)
	return out
}
