package panel

import "github.com/BoyleSeo/paris-green/internal/param"

// State is the persistable slice of panel state: the stock slider value plus
// every parameter normal. Defaults and ranges are construction-time facts and
// are not part of it.
type State struct {
	Mix   float64
	Steps param.Normal
	Gain  param.Normal
	Freq  param.Normal
	PadX  param.Normal
	PadY  param.Normal
}

// Snapshot copies the current values out for persistence.
func (p *Panel) Snapshot() State {
	return State{
		Mix:   p.mix,
		Steps: p.steps.Value,
		Gain:  p.gain.Value,
		Freq:  p.freq.Value,
		PadX:  p.padX.Value,
		PadY:  p.padY.Value,
	}
}

// Restore writes persisted values back in. Every normal is clamped and the
// stepped parameter is snapped onto a boundary, so a hand-edited or stale
// config cannot put the panel into an unrepresentable position. The display
// returns to the idle text.
func (p *Panel) Restore(s State) {
	p.mix = float64(param.ClampNormal(s.Mix))
	p.steps.Update(p.intRange.Snapped(param.ClampNormal(float64(s.Steps))))
	p.gain.Update(param.ClampNormal(float64(s.Gain)))
	p.freq.Update(param.ClampNormal(float64(s.Freq)))
	p.padX.Update(param.ClampNormal(float64(s.PadX)))
	p.padY.Update(param.ClampNormal(float64(s.PadY)))
	p.display = idleText
}
