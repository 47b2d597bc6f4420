// Package panelapp wires the panel core, the custom widgets, OSC output and
// configuration together to present the ParisGreen desktop window.
package panelapp

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	config "github.com/BoyleSeo/paris-green/internal/config"
	oscout "github.com/BoyleSeo/paris-green/internal/oscout"
	panelpkg "github.com/BoyleSeo/paris-green/internal/panel"
	"github.com/BoyleSeo/paris-green/internal/param"
	ui "github.com/BoyleSeo/paris-green/internal/ui"
)

const (
	// appLabel is the short name shown in the header bar.
	appLabel = "ParisGreen"
	// saveDebounce batches rapid widget changes into one config write.
	saveDebounce = 400 * time.Millisecond
	// statusFlashDuration is how long the status strip stays highlighted
	// after an event.
	statusFlashDuration = 180 * time.Millisecond
)

var (
	statusBaseTint  = color.NRGBA{0x20, 0x60, 0x40, 0x40}
	statusFlashTint = color.NRGBA{0x30, 0xA0, 0x60, 0x60}
	drawerOpenTint  = color.NRGBA{0x30, 0xA0, 0x60, 0x38}
)

// App owns the fyne application, main window, panel state, OSC broadcaster
// and widgets. It routes widget callbacks into panel events and mirrors the
// resulting state back onto every widget.
type App struct {
	fa    fyne.App
	w     fyne.Window
	cfg   *config.Config
	panel *panelpkg.Panel
	osc   *oscout.Broadcaster

	// parameter widgets, resynchronized from panel state after every event
	mixSlider  *widget.Slider
	demoButton *widget.Button
	stepSlider *ui.HSlider
	gainSlider *ui.VSlider
	freqKnob   *ui.Knob
	pad        *ui.XYPad

	stepReadout *widget.Label
	gainReadout *widget.Label
	freqReadout *widget.Label
	padReadout  *widget.Label

	// status strip
	statusLbl  *widget.Label
	statusWrap fyne.CanvasObject
	statusBg   *canvas.Rectangle
	status     *ui.StatusTicker
	ind        *ui.ActivityIndicator

	settingsBtn     *widget.Button
	settingsBg      *canvas.Rectangle
	shortcutCatcher *shortcutCatcher

	// root containers
	root      fyne.CanvasObject
	drawerBox *fyne.Container
	drawerBg  *canvas.Rectangle

	// drawer state
	drawerShown   bool
	drawerContent fyne.CanvasObject
	drawerHeight  float32

	// controls inside the settings drawer
	oscEnableCheck *widget.Check
	oscHostEntry   *widget.Entry
	oscPortEntry   *widget.Entry
	oscPrefixEntry *widget.Entry
	rememberCheck  *widget.Check
	drawerReadout  *widget.Label

	silentUpdating bool
	saveTimer      *time.Timer
}

// NewApp wires configuration, panel state, OSC and fyne scaffolding into a
// ready-to-run App instance.
func NewApp() *App {
	cfg, err := config.Load()
	if err != nil {
		log.Println("config load error:", err)
		cfg = &config.Config{
			WindowW: config.DefaultWidth,
			WindowH: config.DefaultHeight,
			Values:  config.DefaultParamState(),
			OSC: config.OSCConfig{
				Host:   config.DefaultOSCHost,
				Port:   config.DefaultOSCPort,
				Prefix: config.DefaultOSCPrefix,
			},
		}
	}

	fa := app.NewWithID(config.AppID)
	// Dark theme with the smaller slider thumb reads better in a dense column
	fa.Settings().SetTheme(theme.DarkTheme())
	ui.UseCompactTheme()
	if AppIcon != nil {
		fa.SetIcon(AppIcon)
	}

	pnl := panelpkg.New()
	if cfg.RememberValues {
		pnl.Restore(stateFromValues(cfg.Values))
	}

	w := fa.NewWindow(pnl.Title())
	w.SetMaster()
	w.SetFixedSize(true)
	if AppIcon != nil {
		w.SetIcon(AppIcon)
	}

	osc := oscout.New(cfg.OSC.Host, cfg.OSC.Port, cfg.OSC.Prefix)
	osc.SetEnabled(cfg.OSC.Enabled)

	a := &App{
		fa:    fa,
		w:     w,
		cfg:   cfg,
		panel: pnl,
		osc:   osc,
	}

	a.buildUI()
	a.syncWidgets()
	a.updateReadouts()
	a.ind.SetActive(cfg.OSC.Enabled)

	// window close handler: save size and values, release resources
	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		cfg.WindowW = int(sz.Width)
		// Persist the base height; the drawer is transient.
		cfg.WindowH = int(sz.Height - a.drawerHeight)
		a.captureValues()
		if err := cfg.Save(); err != nil {
			log.Println("config save error:", err)
		}
		if a.status != nil {
			a.status.Close()
		}
		if a.ind != nil {
			a.ind.SetActive(false)
		}
		w.Close()
		fa.Quit()
	})

	// keyboard shortcuts work regardless of which widget owns focus
	w.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		a.handleShortcutKey(ke)
	})

	return a
}

// Run enters the fyne event loop.
func (a *App) Run() {
	a.w.ShowAndRun()
}

// apply folds one widget event into the panel and mirrors the result back
// onto the UI: status line, widget positions, readouts, OSC.
func (a *App) apply(ev panelpkg.Event) {
	a.panel.HandleEvent(ev)
	a.flashStatus(a.panel.DisplayText())
	a.syncWidgets()
	a.updateReadouts()
	a.emitOSC(ev)
	a.scheduleSave()
}

// syncWidgets pushes the panel's stored normals back onto every widget. The
// stepped slider visibly jumps onto its snapped position here.
func (a *App) syncWidgets() {
	a.silentUpdating = true
	if a.mixSlider != nil {
		a.mixSlider.SetValue(a.panel.MixValue())
	}
	if a.stepSlider != nil {
		a.stepSlider.SetValue(float64(a.panel.StepNormal()))
	}
	if a.gainSlider != nil {
		a.gainSlider.SetValue(float64(a.panel.GainNormal()))
	}
	if a.freqKnob != nil {
		a.freqKnob.SetValue(float64(a.panel.FreqNormal()))
	}
	if a.pad != nil {
		nx, ny := a.panel.PadNormals()
		a.pad.SetValues(float64(nx), float64(ny))
	}
	a.silentUpdating = false
}

// updateReadouts rewrites the per-widget unit labels and, when the settings
// drawer is open, its combined values line.
func (a *App) updateReadouts() {
	if a.stepReadout != nil {
		a.stepReadout.SetText(fmt.Sprintf("%d", a.panel.StepValue()))
	}
	if a.gainReadout != nil {
		a.gainReadout.SetText(param.FormatDecibel(a.panel.GainDB()))
	}
	if a.freqReadout != nil {
		a.freqReadout.SetText(param.FormatFrequency(a.panel.FreqHz()))
	}
	if a.padReadout != nil {
		x, y := a.panel.PadValues()
		a.padReadout.SetText(fmt.Sprintf("%s  %s", param.FormatBipolar(x), param.FormatBipolar(y)))
	}
	if a.drawerReadout != nil {
		a.drawerReadout.SetText(a.currentValuesLine())
	}
}

// currentValuesLine summarizes every parameter for the settings drawer.
func (a *App) currentValuesLine() string {
	x, y := a.panel.PadValues()
	return fmt.Sprintf("mix %.2f · steps %d · %s · %s · pad %s %s",
		a.panel.MixValue(),
		a.panel.StepValue(),
		param.FormatDecibel(a.panel.GainDB()),
		param.FormatFrequency(a.panel.FreqHz()),
		param.FormatBipolar(x), param.FormatBipolar(y))
}

// flashStatus sets the status line and briefly brightens the strip behind it.
func (a *App) flashStatus(text string) {
	if a.status != nil {
		ui.CallOnMain(func() { a.status.SetText(text) })
	}
	if a.statusBg == nil {
		return
	}
	ui.CallOnMain(func() {
		a.statusBg.FillColor = statusFlashTint
		a.statusBg.Refresh()
	})
	time.AfterFunc(statusFlashDuration, func() {
		ui.CallOnMain(func() {
			a.statusBg.FillColor = statusBaseTint
			a.statusBg.Refresh()
		})
	})
}

// emitOSC reports the event's parameter to the OSC target, if enabled.
func (a *App) emitOSC(ev panelpkg.Event) {
	if a.osc == nil || !a.osc.Enabled() {
		return
	}
	var err error
	switch e := ev.(type) {
	case panelpkg.SliderChanged:
		err = a.osc.Mix(a.panel.MixValue())
	case panelpkg.ButtonClicked:
		err = a.osc.Button(e.ID)
	case panelpkg.HSliderChanged:
		err = a.osc.Param("steps", float64(a.panel.StepNormal()), float64(a.panel.StepValue()))
	case panelpkg.VSliderChanged:
		err = a.osc.Param("gain", float64(a.panel.GainNormal()), a.panel.GainDB())
	case panelpkg.KnobChanged:
		err = a.osc.Param("freq", float64(a.panel.FreqNormal()), a.panel.FreqHz())
	case panelpkg.XYPadChanged:
		nx, ny := a.panel.PadNormals()
		x, y := a.panel.PadValues()
		err = a.osc.Pad(float64(nx), float64(ny), x, y)
	}
	if err != nil {
		log.Printf("panelapp: %v", err)
	}
}

// broadcastAll reports every parameter at once, used after a restore, a reset
// or enabling OSC so the receiver starts from a consistent picture.
func (a *App) broadcastAll() {
	if a.osc == nil || !a.osc.Enabled() {
		return
	}
	nx, ny := a.panel.PadNormals()
	x, y := a.panel.PadValues()
	sends := []error{
		a.osc.Mix(a.panel.MixValue()),
		a.osc.Param("steps", float64(a.panel.StepNormal()), float64(a.panel.StepValue())),
		a.osc.Param("gain", float64(a.panel.GainNormal()), a.panel.GainDB()),
		a.osc.Param("freq", float64(a.panel.FreqNormal()), a.panel.FreqHz()),
		a.osc.Pad(float64(nx), float64(ny), x, y),
	}
	for _, err := range sends {
		if err != nil {
			log.Printf("panelapp: %v", err)
		}
	}
}

// captureValues copies the current widget positions into the config when the
// user wants them remembered.
func (a *App) captureValues() {
	if a.cfg == nil || !a.cfg.RememberValues {
		return
	}
	st := a.panel.Snapshot()
	a.cfg.Values = config.ParamState{
		Mix:   st.Mix,
		Steps: float64(st.Steps),
		Gain:  float64(st.Gain),
		Freq:  float64(st.Freq),
		PadX:  float64(st.PadX),
		PadY:  float64(st.PadY),
	}
}

// scheduleSave persists the config shortly after the last change.
func (a *App) scheduleSave() {
	if a.cfg == nil {
		return
	}
	a.captureValues()
	if a.saveTimer != nil {
		a.saveTimer.Stop()
	}
	a.saveTimer = time.AfterFunc(saveDebounce, func() { _ = a.cfg.Save() })
}

// stateFromValues converts persisted positions into a panel state.
func stateFromValues(v config.ParamState) panelpkg.State {
	return panelpkg.State{
		Mix:   v.Mix,
		Steps: param.Normal(v.Steps),
		Gain:  param.Normal(v.Gain),
		Freq:  param.Normal(v.Freq),
		PadX:  param.Normal(v.PadX),
		PadY:  param.Normal(v.PadY),
	}
}

// resetAll returns every parameter to its default position, as if the window
// had just opened.
func (a *App) resetAll() {
	dx, dy := a.panel.PadDefaults()
	a.panel.Restore(panelpkg.State{
		Mix:   0,
		Steps: a.panel.StepDefault(),
		Gain:  a.panel.GainDefault(),
		Freq:  a.panel.FreqDefault(),
		PadX:  dx,
		PadY:  dy,
	})
	if a.status != nil {
		ui.CallOnMain(func() { a.status.SetText(a.panel.DisplayText()) })
	}
	a.syncWidgets()
	a.updateReadouts()
	a.broadcastAll()
	a.scheduleSave()
}

// nudgeSteps moves the stepped slider by whole steps.
func (a *App) nudgeSteps(delta int) {
	r := a.panel.StepRange()
	target := a.panel.StepValue() + delta
	a.apply(panelpkg.HSliderChanged{Normal: r.MapToNormal(float64(target))})
}

// jumpSteps moves the stepped slider straight to the given value.
func (a *App) jumpSteps(value int) {
	r := a.panel.StepRange()
	a.apply(panelpkg.HSliderChanged{Normal: r.MapToNormal(float64(value))})
}

// nudgeGain moves the gain slider by whole decibels.
func (a *App) nudgeGain(deltaDB float64) {
	r := a.panel.GainRange()
	a.apply(panelpkg.VSliderChanged{Normal: r.MapToNormal(a.panel.GainDB() + deltaDB)})
}

func keyToStepDigit(key fyne.KeyName) int {
	switch key {
	case fyne.Key0:
		return 0
	case fyne.Key1:
		return 1
	case fyne.Key2:
		return 2
	case fyne.Key3:
		return 3
	case fyne.Key4:
		return 4
	case fyne.Key5:
		return 5
	case fyne.Key6:
		return 6
	case fyne.Key7:
		return 7
	case fyne.Key8:
		return 8
	case fyne.Key9:
		return 9
	}
	return -1
}

// handleShortcutKey centralizes keyboard shortcuts regardless of which widget
// currently owns focus.
func (a *App) handleShortcutKey(ke *fyne.KeyEvent) {
	if ke == nil {
		return
	}
	switch ke.Name {
	case fyne.KeySpace:
		a.resetAll()
	case fyne.KeyLeft:
		a.nudgeSteps(-1)
	case fyne.KeyRight:
		a.nudgeSteps(+1)
	case fyne.KeyUp:
		a.nudgeGain(+1)
	case fyne.KeyDown:
		a.nudgeGain(-1)
	case fyne.KeyEscape:
		if a.drawerShown {
			a.closeDrawer()
		}
	case fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4, fyne.Key5,
		fyne.Key6, fyne.Key7, fyne.Key8, fyne.Key9, fyne.Key0:
		if d := keyToStepDigit(ke.Name); d >= 0 {
			a.jumpSteps(d)
		}
	}
}

// buildUI assembles the drawer container and the main window content.
func (a *App) buildUI() {
	a.buildDrawers()
	a.buildMainWindow()
}

// buildMainWindow frames the widget column with the header bar on top and the
// status bar plus drawer area on the bottom, then applies the persisted
// window size.
func (a *App) buildMainWindow() {
	header := a.buildHeader()
	column := a.buildWidgetColumn()
	bottom := container.NewVBox(a.buildStatusBar(), a.drawerBox)
	a.root = container.NewBorder(header, bottom, nil, nil, column)
	a.w.SetContent(a.root)
	a.ensureShortcutFocus()

	ui.CallOnMain(func() {
		targetW := float32(a.cfg.WindowW)
		if targetW < config.MinWindowWidth {
			targetW = config.MinWindowWidth
		}
		targetH := float32(a.cfg.WindowH)
		if minH := a.root.MinSize().Height; targetH < minH {
			targetH = minH
		}
		a.w.Resize(fyne.NewSize(targetW, targetH))
		a.w.Canvas().Refresh(a.root)
	})
}

// buildHeader constructs the top bar: app label, activity indicator and the
// settings button over its highlight rectangle.
func (a *App) buildHeader() fyne.CanvasObject {
	if a.shortcutCatcher == nil {
		a.shortcutCatcher = newShortcutCatcher(a.handleShortcutKey)
	}

	title := widget.NewLabelWithStyle(appLabel, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	a.ind = ui.NewActivityIndicator(14)
	gap := canvas.NewRectangle(color.NRGBA{})
	gap.SetMinSize(fyne.NewSize(6, 1))

	left := container.NewHBox(title, gap, a.ind.CanvasObject())

	a.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), func() { a.toggleSettingsDrawer() })
	a.settingsBtn.Importance = widget.LowImportance

	a.settingsBg = canvas.NewRectangle(color.NRGBA{0, 0, 0, 0})
	settingsWrap := container.NewStack(a.settingsBg, a.settingsBtn)

	header := container.NewBorder(nil, nil, left, settingsWrap, nil)

	// invisible overlay that keeps keyboard focus for global shortcuts
	a.shortcutCatcher.Resize(fyne.NewSize(1, 1))
	a.shortcutCatcher.Move(fyne.NewPos(-5, -5))
	return container.NewStack(header, container.NewPadded(a.shortcutCatcher))
}

// buildStatusBar constructs the bottom strip: the scrolling status line over
// the flash rectangle.
func (a *App) buildStatusBar() fyne.CanvasObject {
	a.statusLbl = widget.NewLabel(a.panel.DisplayText())
	a.statusLbl.Truncation = fyne.TextTruncateClip
	a.statusLbl.Alignment = fyne.TextAlignLeading

	a.statusBg = canvas.NewRectangle(statusBaseTint)
	a.statusBg.SetMinSize(fyne.NewSize(1, 26))

	labelWrap := container.NewStack(a.statusLbl)
	a.statusWrap = labelWrap
	a.status = ui.NewStatusTicker(a.statusLbl, a.statusWrap, a.panel.DisplayText())

	return container.NewStack(
		container.NewPadded(a.statusBg),
		container.NewPadded(labelWrap),
	)
}

// buildWidgetColumn lays out the parameter widgets: the stock slider and demo
// button, the stepped slider, then the gain slider, knob and pad side by side.
func (a *App) buildWidgetColumn() fyne.CanvasObject {
	a.mixSlider = widget.NewSlider(0, 1)
	a.mixSlider.Step = 0.025
	a.mixSlider.Value = a.panel.MixValue()
	a.mixSlider.OnChanged = func(v float64) {
		if a.silentUpdating {
			return
		}
		a.apply(panelpkg.SliderChanged{Value: v})
	}

	a.demoButton = widget.NewButton("Click here", func() {
		a.apply(panelpkg.ButtonClicked{ID: a.panel.ButtonID()})
	})

	mixRow := container.NewBorder(nil, nil, widget.NewLabel("Mix"), a.demoButton, a.mixSlider)

	a.stepSlider = ui.NewHSlider(a.panel.CenterTicks())
	a.stepSlider.Value = float64(a.panel.StepNormal())
	a.stepSlider.Default = float64(a.panel.StepDefault())
	a.stepSlider.ScrollStep = 0.1
	a.stepSlider.OnChanged = func(v float64) {
		if a.silentUpdating {
			return
		}
		a.apply(panelpkg.HSliderChanged{Normal: param.Normal(v)})
	}
	a.stepReadout = widget.NewLabel("")
	stepRow := container.NewBorder(nil, nil, widget.NewLabel("Steps"), a.stepReadout, a.stepSlider)

	middle := container.NewGridWithColumns(3,
		a.buildGainColumn(),
		a.buildKnobColumn(),
		a.buildPadColumn(),
	)

	column := container.NewBorder(
		container.NewVBox(mixRow, stepRow),
		nil, nil, nil,
		middle,
	)
	return container.NewPadded(column)
}

// buildGainColumn pairs the vertical gain slider with a rotated caption, a
// small dB scale and its readout.
func (a *App) buildGainColumn() fyne.CanvasObject {
	a.gainSlider = ui.NewVSlider(a.panel.CenterTicks())
	a.gainSlider.Value = float64(a.panel.GainNormal())
	a.gainSlider.Default = float64(a.panel.GainDefault())
	a.gainSlider.OnChanged = func(v float64) {
		if a.silentUpdating {
			return
		}
		a.apply(panelpkg.VSliderChanged{Normal: param.Normal(v)})
	}

	caption := ui.NewRotatedLabel("GAIN")
	caption.SetTargetSize(18, 90)

	r := a.panel.GainRange()
	scale := container.NewBorder(
		scaleLabel(fmt.Sprintf("%+.0f", r.Max())),
		scaleLabel(fmt.Sprintf("%+.0f", r.Min())),
		nil, nil,
		container.NewCenter(scaleLabel("0")),
	)

	a.gainReadout = widget.NewLabel("")
	return container.NewBorder(
		nil,
		container.NewCenter(a.gainReadout),
		caption.CanvasObject(),
		scale,
		a.gainSlider,
	)
}

// buildKnobColumn stacks the frequency knob between its caption and readout.
func (a *App) buildKnobColumn() fyne.CanvasObject {
	a.freqKnob = ui.NewKnob(a.panel.KnobTicks())
	a.freqKnob.Value = float64(a.panel.FreqNormal())
	a.freqKnob.Default = float64(a.panel.FreqDefault())
	a.freqKnob.OnChanged = func(v float64) {
		if a.silentUpdating {
			return
		}
		a.apply(panelpkg.KnobChanged{Normal: param.Normal(v)})
	}

	a.freqReadout = widget.NewLabel("")
	return container.NewVBox(
		container.NewCenter(widget.NewLabel("Freq")),
		container.NewCenter(a.freqKnob),
		container.NewCenter(a.freqReadout),
	)
}

// buildPadColumn fills the remaining space with the XY pad and its readout.
func (a *App) buildPadColumn() fyne.CanvasObject {
	a.pad = ui.NewXYPad()
	dx, dy := a.panel.PadDefaults()
	nx, ny := a.panel.PadNormals()
	a.pad.DefaultX, a.pad.DefaultY = float64(dx), float64(dy)
	a.pad.X, a.pad.Y = float64(nx), float64(ny)
	a.pad.OnChanged = func(x, y float64) {
		if a.silentUpdating {
			return
		}
		a.apply(panelpkg.XYPadChanged{X: param.Normal(x), Y: param.Normal(y)})
	}

	a.padReadout = widget.NewLabel("")
	return container.NewBorder(
		container.NewCenter(widget.NewLabel("Pad")),
		container.NewCenter(a.padReadout),
		nil, nil,
		a.pad,
	)
}

func scaleLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Importance = widget.LowImportance
	return l
}

// buildDrawers initializes the persistent bottom container the settings
// drawer slides into.
func (a *App) buildDrawers() {
	a.drawerBg = canvas.NewRectangle(color.NRGBA{})
	a.drawerBg.SetMinSize(fyne.NewSize(1, 0))
	a.drawerBox = container.NewStack(a.drawerBg)
	a.drawerShown = false
	a.drawerHeight = 0
}

// toggleSettingsDrawer opens the settings drawer, or closes it if shown.
func (a *App) toggleSettingsDrawer() {
	if a.drawerShown {
		a.closeDrawer()
		return
	}
	content, h := BuildSettingsDrawer(a)
	if content == nil || h <= 0 {
		return
	}
	a.openDrawer(content, h)
}

// openDrawer attaches the content and grows the window by the drawer height.
func (a *App) openDrawer(content fyne.CanvasObject, height float32) {
	a.drawerContent = content
	a.drawerBox.Objects = []fyne.CanvasObject{a.drawerBg, a.drawerContent}
	a.drawerBox.Refresh()
	a.resizeWindowForDrawer(a.drawerHeight, height)
	a.setDrawerHeight(height)
	a.drawerShown = true
	a.setSettingsHighlight(true)
	a.updateReadouts()
}

// closeDrawer collapses the drawer and shrinks the window back.
func (a *App) closeDrawer() {
	prev := a.drawerHeight
	a.setDrawerHeight(0)
	ui.CallOnMain(func() {
		a.drawerBox.Objects = []fyne.CanvasObject{a.drawerBg}
		a.drawerBox.Refresh()
	})
	a.resizeWindowForDrawer(prev, 0)
	a.drawerContent = nil
	a.drawerShown = false
	a.drawerReadout = nil
	a.setSettingsHighlight(false)
	a.ensureShortcutFocus()
}

// setSettingsHighlight paints the settings button background while the
// drawer is open and clears it when the drawer closes.
func (a *App) setSettingsHighlight(open bool) {
	if a.settingsBg == nil {
		return
	}
	if open {
		a.settingsBg.FillColor = drawerOpenTint
	} else {
		a.settingsBg.FillColor = color.NRGBA{0, 0, 0, 0}
	}
	a.settingsBg.Refresh()
}

// setDrawerHeight resizes the drawer container and refreshes the layout.
func (a *App) setDrawerHeight(h float32) {
	ui.CallOnMain(func() {
		w := a.w.Canvas().Size().Width
		a.drawerBox.Resize(fyne.NewSize(w, h))
		a.drawerBg.Resize(fyne.NewSize(w, h))
		a.drawerBox.Refresh()
		a.drawerHeight = h
		if a.root != nil {
			a.root.Refresh()
		}
	})
}

// resizeWindowForDrawer swaps the old drawer height for the new one in the
// window's total height.
func (a *App) resizeWindowForDrawer(current, target float32) {
	ui.CallOnMain(func() {
		if a == nil || a.w == nil {
			return
		}
		cv := a.w.Canvas()
		if cv == nil {
			return
		}
		sz := cv.Size()
		newH := sz.Height - current + target
		if minH := a.root.MinSize().Height; newH < minH {
			newH = minH
		}
		a.w.Resize(fyne.NewSize(sz.Width, newH))
		cv.Refresh(a.root)
	})
}

// ensureShortcutFocus makes sure the invisible shortcut catcher keeps focus
// so global key handling works when no entry is active.
func (a *App) ensureShortcutFocus() {
	if a == nil || a.w == nil || a.shortcutCatcher == nil {
		return
	}
	ui.CallOnMain(func() {
		if a.w != nil && a.shortcutCatcher != nil {
			a.w.Canvas().Focus(a.shortcutCatcher)
		}
	})
}

type shortcutCatcher struct {
	widget.BaseWidget
	onKey func(*fyne.KeyEvent)
}

func newShortcutCatcher(handler func(*fyne.KeyEvent)) *shortcutCatcher {
	c := &shortcutCatcher{onKey: handler}
	c.ExtendBaseWidget(c)
	return c
}

func (s *shortcutCatcher) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.NRGBA{})
	rect.SetMinSize(fyne.NewSize(1, 1))
	return widget.NewSimpleRenderer(rect)
}

func (s *shortcutCatcher) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (s *shortcutCatcher) Resize(fyne.Size) {
	s.BaseWidget.Resize(fyne.NewSize(1, 1))
}

func (s *shortcutCatcher) FocusGained() {}

func (s *shortcutCatcher) FocusLost() {}

func (s *shortcutCatcher) TypedKey(ev *fyne.KeyEvent) {
	if s.onKey != nil {
		s.onKey(ev)
	}
}

func (s *shortcutCatcher) TypedRune(rune) {}
