package ui

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

var (
	indicatorIdleColor = color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}

	// Pulse endpoints, a dim and a bright paris green.
	indicatorDimColor    = color.NRGBA{R: 0x18, G: 0x40, B: 0x28, A: 0xFF}
	indicatorBrightColor = color.NRGBA{R: 0x50, G: 0xC8, B: 0x78, A: 0xFF}
)

// ActivityIndicator is a small dot that pulses green while broadcasting is
// active and stays gray otherwise.
type ActivityIndicator struct {
	wrap   *fyne.Container
	circle *canvas.Circle
	on     atomic.Bool
}

// NewActivityIndicator constructs an indicator with the given diameter.
func NewActivityIndicator(diameter float32) *ActivityIndicator {
	c := canvas.NewCircle(indicatorIdleColor)
	inner := container.New(layout.NewGridWrapLayout(fyne.NewSize(diameter, diameter)), c)
	return &ActivityIndicator{wrap: container.NewCenter(inner), circle: c}
}

// CanvasObject returns the fyne object suitable for embedding in layouts.
func (a *ActivityIndicator) CanvasObject() fyne.CanvasObject { return a.wrap }

// Active reports whether the pulse animation is running.
func (a *ActivityIndicator) Active() bool { return a.on.Load() }

// SetActive starts or stops the pulse. The animation goroutine owns the dot's
// color and repaints it gray on its way out, so deactivation shows within one
// animation tick.
func (a *ActivityIndicator) SetActive(on bool) {
	if on {
		if !a.on.Swap(true) {
			go a.animate()
		}
		return
	}
	a.on.Store(false)
}

func (a *ActivityIndicator) animate() {
	t := time.NewTicker(90 * time.Millisecond)
	defer t.Stop()
	phase := 0.0
	for a.on.Load() {
		<-t.C
		phase += 0.045
		if phase >= 1 {
			phase -= 1
		}
		col := pulseColor(phase)
		CallOnMain(func() {
			a.circle.FillColor = col
			a.circle.Refresh()
		})
	}
	CallOnMain(func() {
		a.circle.FillColor = indicatorIdleColor
		a.circle.Refresh()
	})
}

// pulseColor blends between the dim and bright pulse endpoints over one
// cosine cycle: phase 0 is fully dim, phase 0.5 fully bright.
func pulseColor(phase float64) color.NRGBA {
	w := 0.5 - 0.5*math.Cos(2*math.Pi*phase)
	return color.NRGBA{
		R: lerpChannel(indicatorDimColor.R, indicatorBrightColor.R, w),
		G: lerpChannel(indicatorDimColor.G, indicatorBrightColor.G, w),
		B: lerpChannel(indicatorDimColor.B, indicatorBrightColor.B, w),
		A: 0xFF,
	}
}

func lerpChannel(from, to uint8, w float64) uint8 {
	return uint8(float64(from) + w*(float64(to)-float64(from)) + 0.5)
}
