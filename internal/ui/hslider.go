package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/BoyleSeo/paris-green/internal/param"
)

// HSlider is a horizontal parameter slider over the normalized 0..1 travel.
// It reports raw normals through OnChanged; any snapping happens upstream and
// comes back via SetValue, so the thumb can visibly jump onto a boundary.
// Double-tapping returns to the Default position.
type HSlider struct {
	widget.BaseWidget
	Value      float64
	Default    float64
	ScrollStep float64
	OnChanged  func(float64)

	ticks param.TickMarkGroup
}

// NewHSlider creates a horizontal slider with the given cosmetic tick marks.
func NewHSlider(ticks param.TickMarkGroup) *HSlider {
	s := &HSlider{ScrollStep: defaultScrollStep, ticks: ticks}
	s.ExtendBaseWidget(s)
	return s
}

func (s *HSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &hsliderRenderer{
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

// SetValue stores a clamped normal, refreshes and notifies. Setting the
// current value again is a no-op, so programmatic resynchronization cannot
// echo forever.
func (s *HSlider) SetValue(v float64) {
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

// Dragged moves the thumb to the pointer position.
func (s *HSlider) Dragged(e *fyne.DragEvent) {
	s.updateFromPos(e.Position.X, s.Size().Width)
}

func (s *HSlider) DragEnd() {}

// Tapped jumps the thumb to the tapped position.
func (s *HSlider) Tapped(e *fyne.PointEvent) {
	s.updateFromPos(e.Position.X, s.Size().Width)
}

// DoubleTapped resets the slider to its default position.
func (s *HSlider) DoubleTapped(*fyne.PointEvent) {
	s.SetValue(s.Default)
}

// Scrolled nudges the value by ScrollStep per wheel notch.
func (s *HSlider) Scrolled(e *fyne.ScrollEvent) {
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

func (s *HSlider) updateFromPos(px, w float32) {
	if w <= 0 {
		return
	}
	s.SetValue(travelFraction(px, w, false))
}

// MinSize keeps room for the track, the thumb and the tick area above.
func (s *HSlider) MinSize() fyne.Size {
	return fyne.NewSize(180, theme.IconInlineSize()+sliderTickArea)
}

type hsliderRenderer struct {
	s     *HSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	ticks []*canvas.Line
	objs  []fyne.CanvasObject
}

func (r *hsliderRenderer) Layout(sz fyne.Size) {
	if sz.Width <= 0 || sz.Height <= 0 {
		return
	}
	trackY := sliderTickArea + (sz.Height-sliderTickArea-sliderTrackThickness)/2
	r.track.Move(fyne.NewPos(0, trackY))
	r.track.Resize(fyne.NewSize(sz.Width, sliderTrackThickness))

	frac := float32(clampFloat64(r.s.Value, 0, 1))
	fillW := sz.Width * frac
	r.fill.Move(fyne.NewPos(0, trackY))
	r.fill.Resize(fyne.NewSize(fillW, sliderTrackThickness))

	thumbR := theme.IconInlineSize() / 3
	cx := fillW
	if cx < thumbR {
		cx = thumbR
	}
	if cx > sz.Width-thumbR {
		cx = sz.Width - thumbR
	}
	cy := trackY + sliderTrackThickness/2
	r.thumb.Resize(fyne.NewSize(thumbR*2, thumbR*2))
	r.thumb.Move(fyne.NewPos(cx-thumbR, cy-thumbR))

	marks := r.s.ticks.Marks()
	for i, l := range r.ticks {
		if i >= len(marks) {
			break
		}
		x := sz.Width * float32(marks[i].Position)
		length := tickLength(marks[i].Tier)
		l.Position1 = fyne.NewPos(x, sliderTickArea-2-length)
		l.Position2 = fyne.NewPos(x, sliderTickArea-2)
	}
}

func (r *hsliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *hsliderRenderer) Refresh() {
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *hsliderRenderer) Destroy() {}

func (r *hsliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
