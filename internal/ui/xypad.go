package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// XYPad is a two-axis parameter control over normalized 0..1 travels. The
// screen Y axis is inverted: the top edge is 1. Both axes always change
// together through a single OnChanged call so downstream consumers see a
// consistent pair.
type XYPad struct {
	widget.BaseWidget
	X, Y               float64
	DefaultX, DefaultY float64
	ScrollStep         float64
	OnChanged          func(x, y float64)
}

// NewXYPad creates a pad with the handle at the origin corner.
func NewXYPad() *XYPad {
	p := &XYPad{ScrollStep: defaultScrollStep}
	p.ExtendBaseWidget(p)
	return p
}

func (p *XYPad) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.ShadowColor())
	bg.StrokeColor = theme.DisabledColor()
	bg.StrokeWidth = 1
	crossV := canvas.NewLine(theme.DisabledColor())
	crossV.StrokeWidth = 1
	crossH := canvas.NewLine(theme.DisabledColor())
	crossH.StrokeWidth = 1
	r := &xypadRenderer{
		p:      p,
		bg:     bg,
		crossV: crossV,
		crossH: crossH,
		handle: canvas.NewCircle(theme.PrimaryColor()),
	}
	r.objs = []fyne.CanvasObject{r.bg, r.crossV, r.crossH, r.handle}
	return r
}

// SetValues stores both clamped normals, refreshes and notifies. A repeated
// pair is a no-op.
func (p *XYPad) SetValues(x, y float64) {
	x = clampFloat64(x, 0, 1)
	y = clampFloat64(y, 0, 1)
	if x == p.X && y == p.Y {
		return
	}
	p.X = x
	p.Y = y
	p.Refresh()
	if p.OnChanged != nil {
		p.OnChanged(x, y)
	}
}

// Dragged moves the handle to the pointer position.
func (p *XYPad) Dragged(e *fyne.DragEvent) {
	sz := p.Size()
	p.updateFromPos(e.Position.X, e.Position.Y, sz.Width, sz.Height)
}

func (p *XYPad) DragEnd() {}

// Tapped jumps the handle to the tapped position.
func (p *XYPad) Tapped(e *fyne.PointEvent) {
	sz := p.Size()
	p.updateFromPos(e.Position.X, e.Position.Y, sz.Width, sz.Height)
}

// DoubleTapped resets both axes to their default positions.
func (p *XYPad) DoubleTapped(*fyne.PointEvent) {
	p.SetValues(p.DefaultX, p.DefaultY)
}

// Scrolled nudges the Y axis by ScrollStep per wheel notch.
func (p *XYPad) Scrolled(e *fyne.ScrollEvent) {
	if e == nil {
		return
	}
	step := p.ScrollStep
	if step <= 0 {
		step = defaultScrollStep
	}
	if e.Scrolled.DY > 0 {
		p.SetValues(p.X, p.Y+step)
	} else if e.Scrolled.DY < 0 {
		p.SetValues(p.X, p.Y-step)
	}
}

func (p *XYPad) updateFromPos(px, py, w, h float32) {
	if w <= 0 || h <= 0 {
		return
	}
	p.SetValues(travelFraction(px, w, false), travelFraction(py, h, true))
}

// MinSize keeps the pad square and large enough for precise handle drags.
func (p *XYPad) MinSize() fyne.Size {
	return fyne.NewSize(140, 140)
}

type xypadRenderer struct {
	p      *XYPad
	bg     *canvas.Rectangle
	crossV *canvas.Line
	crossH *canvas.Line
	handle *canvas.Circle
	objs   []fyne.CanvasObject
}

func (r *xypadRenderer) Layout(sz fyne.Size) {
	if sz.Width <= 0 || sz.Height <= 0 {
		return
	}
	r.bg.Move(fyne.NewPos(0, 0))
	r.bg.Resize(sz)

	handleR := theme.IconInlineSize() / 3
	hx := sz.Width * float32(clampFloat64(r.p.X, 0, 1))
	hy := sz.Height * float32(1-clampFloat64(r.p.Y, 0, 1))
	if hx < handleR {
		hx = handleR
	}
	if hx > sz.Width-handleR {
		hx = sz.Width - handleR
	}
	if hy < handleR {
		hy = handleR
	}
	if hy > sz.Height-handleR {
		hy = sz.Height - handleR
	}

	r.crossV.Position1 = fyne.NewPos(hx, 0)
	r.crossV.Position2 = fyne.NewPos(hx, sz.Height)
	r.crossH.Position1 = fyne.NewPos(0, hy)
	r.crossH.Position2 = fyne.NewPos(sz.Width, hy)

	r.handle.Resize(fyne.NewSize(handleR*2, handleR*2))
	r.handle.Move(fyne.NewPos(hx-handleR, hy-handleR))
}

func (r *xypadRenderer) MinSize() fyne.Size { return r.p.MinSize() }

func (r *xypadRenderer) Refresh() {
	r.Layout(r.p.Size())
	canvas.Refresh(r.bg)
	canvas.Refresh(r.crossV)
	canvas.Refresh(r.crossH)
	canvas.Refresh(r.handle)
}

func (r *xypadRenderer) Destroy() {}

func (r *xypadRenderer) Objects() []fyne.CanvasObject { return r.objs }
