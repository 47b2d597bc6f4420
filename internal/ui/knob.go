package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/BoyleSeo/paris-green/internal/param"
)

const (
	knobSweepDegrees = 300.0
	knobStartDegrees = -150.0
	knobTickMargin   = 10

	// Normalized change per pixel of vertical drag. Full travel takes 200 px.
	knobDragSensitivity = 1.0 / 200
)

// Knob is a rotary parameter control over the normalized 0..1 travel. The
// pointer sweeps 300° from 7 o'clock to 5 o'clock; dragging up increases the
// value. A single tap never jumps the value, double-tapping resets to the
// Default position.
type Knob struct {
	widget.BaseWidget
	Value      float64
	Default    float64
	ScrollStep float64
	OnChanged  func(float64)

	ticks param.TickMarkGroup
}

// NewKnob creates a knob with the given cosmetic tick marks.
func NewKnob(ticks param.TickMarkGroup) *Knob {
	k := &Knob{ScrollStep: defaultScrollStep, ticks: ticks}
	k.ExtendBaseWidget(k)
	return k
}

func (k *Knob) CreateRenderer() fyne.WidgetRenderer {
	face := canvas.NewCircle(theme.ShadowColor())
	face.StrokeColor = theme.DisabledColor()
	face.StrokeWidth = 1
	pointer := canvas.NewLine(theme.PrimaryColor())
	pointer.StrokeWidth = 2
	r := &knobRenderer{
		k:       k,
		face:    face,
		pointer: pointer,
		ticks:   buildTickLines(k.ticks),
	}
	r.objs = make([]fyne.CanvasObject, 0, len(r.ticks)+2)
	for _, l := range r.ticks {
		r.objs = append(r.objs, l)
	}
	r.objs = append(r.objs, r.face, r.pointer)
	return r
}

// SetValue stores a clamped normal, refreshes and notifies. A repeated value
// is a no-op.
func (k *Knob) SetValue(v float64) {
	v = clampFloat64(v, 0, 1)
	if v == k.Value {
		return
	}
	k.Value = v
	k.Refresh()
	if k.OnChanged != nil {
		k.OnChanged(v)
	}
}

// Dragged turns the knob by the vertical drag delta; up increases.
func (k *Knob) Dragged(e *fyne.DragEvent) {
	k.SetValue(k.Value - float64(e.Dragged.DY)*knobDragSensitivity)
}

func (k *Knob) DragEnd() {}

// DoubleTapped resets the knob to its default position.
func (k *Knob) DoubleTapped(*fyne.PointEvent) {
	k.SetValue(k.Default)
}

// Scrolled nudges the value by ScrollStep per wheel notch.
func (k *Knob) Scrolled(e *fyne.ScrollEvent) {
	if e == nil {
		return
	}
	step := k.ScrollStep
	if step <= 0 {
		step = defaultScrollStep
	}
	if e.Scrolled.DY > 0 {
		k.SetValue(k.Value + step)
	} else if e.Scrolled.DY < 0 {
		k.SetValue(k.Value - step)
	}
}

// MinSize keeps the face round with room for the tick ring.
func (k *Knob) MinSize() fyne.Size {
	return fyne.NewSize(72, 72)
}

// knobAngle converts a normalized value into the pointer angle in radians,
// measured clockwise from 12 o'clock.
func knobAngle(value float64) float64 {
	deg := knobStartDegrees + knobSweepDegrees*clampFloat64(value, 0, 1)
	return deg * math.Pi / 180
}

type knobRenderer struct {
	k       *Knob
	face    *canvas.Circle
	pointer *canvas.Line
	ticks   []*canvas.Line
	objs    []fyne.CanvasObject
}

func (r *knobRenderer) Layout(sz fyne.Size) {
	if sz.Width <= 0 || sz.Height <= 0 {
		return
	}
	cx := sz.Width / 2
	cy := sz.Height / 2
	radius := sz.Width
	if sz.Height < radius {
		radius = sz.Height
	}
	radius = radius/2 - knobTickMargin
	if radius < 8 {
		radius = 8
	}
	r.face.Move(fyne.NewPos(cx-radius, cy-radius))
	r.face.Resize(fyne.NewSize(radius*2, radius*2))

	angle := knobAngle(r.k.Value)
	dirX := float32(math.Sin(angle))
	dirY := float32(-math.Cos(angle))
	r.pointer.Position1 = fyne.NewPos(cx+dirX*radius*0.35, cy+dirY*radius*0.35)
	r.pointer.Position2 = fyne.NewPos(cx+dirX*radius*0.85, cy+dirY*radius*0.85)

	marks := r.k.ticks.Marks()
	for i, l := range r.ticks {
		if i >= len(marks) {
			break
		}
		a := knobAngle(float64(marks[i].Position))
		tx := float32(math.Sin(a))
		ty := float32(-math.Cos(a))
		inner := radius + 2
		outer := inner + tickLength(marks[i].Tier)
		l.Position1 = fyne.NewPos(cx+tx*inner, cy+ty*inner)
		l.Position2 = fyne.NewPos(cx+tx*outer, cy+ty*outer)
	}
}

func (r *knobRenderer) MinSize() fyne.Size { return r.k.MinSize() }

func (r *knobRenderer) Refresh() {
	r.Layout(r.k.Size())
	canvas.Refresh(r.face)
	canvas.Refresh(r.pointer)
}

func (r *knobRenderer) Destroy() {}

func (r *knobRenderer) Objects() []fyne.CanvasObject { return r.objs }
