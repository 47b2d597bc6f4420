package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/BoyleSeo/paris-green/internal/param"
)

// VSlider is the vertical counterpart of HSlider. The travel is inverted on
// screen: the top of the track is 1, the bottom is 0.
type VSlider struct {
	widget.BaseWidget
	Value      float64
	Default    float64
	ScrollStep float64
	OnChanged  func(float64)

	ticks param.TickMarkGroup
}

// NewVSlider creates a vertical slider with the given cosmetic tick marks.
func NewVSlider(ticks param.TickMarkGroup) *VSlider {
	s := &VSlider{ScrollStep: defaultScrollStep, ticks: ticks}
	s.ExtendBaseWidget(s)
	return s
}

func (s *VSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &vsliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
		ticks: buildTickLines(s.ticks),
	}
	r.objs = make([]fyne.CanvasObject, 0, len(r.ticks)+3)
	for _, l := range r.ticks {
		r.objs = append(r.objs, l)
	}
	r.objs = append(r.objs, r.track, r.fill, r.thumb)
	return r
}

// SetValue stores a clamped normal, refreshes and notifies. A repeated value
// is a no-op.
func (s *VSlider) SetValue(v float64) {
	v = clampFloat64(v, 0, 1)
	if v == s.Value {
		return
	}
	s.Value = v
	s.Refresh()
	if s.OnChanged != nil {
		s.OnChanged(v)
	}
}

// Dragged moves the thumb to the pointer position (top = 1).
func (s *VSlider) Dragged(e *fyne.DragEvent) {
	s.updateFromPos(e.Position.Y, s.Size().Height)
}

func (s *VSlider) DragEnd() {}

// Tapped jumps the thumb to the tapped position.
func (s *VSlider) Tapped(e *fyne.PointEvent) {
	s.updateFromPos(e.Position.Y, s.Size().Height)
}

// DoubleTapped resets the slider to its default position.
func (s *VSlider) DoubleTapped(*fyne.PointEvent) {
	s.SetValue(s.Default)
}

// Scrolled nudges the value by ScrollStep per wheel notch.
func (s *VSlider) Scrolled(e *fyne.ScrollEvent) {
	if e == nil {
		return
	}
	step := s.ScrollStep
	if step <= 0 {
		step = defaultScrollStep
	}
	if e.Scrolled.DY > 0 {
		s.SetValue(s.Value + step)
	} else if e.Scrolled.DY < 0 {
		s.SetValue(s.Value - step)
	}
}

func (s *VSlider) updateFromPos(py, h float32) {
	if h <= 0 {
		return
	}
	s.SetValue(travelFraction(py, h, true))
}

// MinSize keeps a narrow column with room for the tick area on the left.
func (s *VSlider) MinSize() fyne.Size {
	return fyne.NewSize(theme.IconInlineSize()+sliderTickArea, 180)
}

type vsliderRenderer struct {
	s     *VSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	ticks []*canvas.Line
	objs  []fyne.CanvasObject
}

func (r *vsliderRenderer) Layout(sz fyne.Size) {
	if sz.Width <= 0 || sz.Height <= 0 {
		return
	}
	trackX := sliderTickArea + (sz.Width-sliderTickArea-sliderTrackThickness)/2
	r.track.Move(fyne.NewPos(trackX, 0))
	r.track.Resize(fyne.NewSize(sliderTrackThickness, sz.Height))

	frac := float32(clampFloat64(r.s.Value, 0, 1))
	fillH := sz.Height * frac
	r.fill.Move(fyne.NewPos(trackX, sz.Height-fillH))
	r.fill.Resize(fyne.NewSize(sliderTrackThickness, fillH))

	thumbR := theme.IconInlineSize() / 3
	cy := sz.Height - fillH
	if cy < thumbR {
		cy = thumbR
	}
	if cy > sz.Height-thumbR {
		cy = sz.Height - thumbR
	}
	cx := trackX + sliderTrackThickness/2
	r.thumb.Resize(fyne.NewSize(thumbR*2, thumbR*2))
	r.thumb.Move(fyne.NewPos(cx-thumbR, cy-thumbR))

	marks := r.s.ticks.Marks()
	for i, l := range r.ticks {
		if i >= len(marks) {
			break
		}
		y := sz.Height * float32(1-marks[i].Position)
		length := tickLength(marks[i].Tier)
		l.Position1 = fyne.NewPos(sliderTickArea-2-length, y)
		l.Position2 = fyne.NewPos(sliderTickArea-2, y)
	}
}

func (r *vsliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *vsliderRenderer) Refresh() {
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *vsliderRenderer) Destroy() {}

func (r *vsliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
