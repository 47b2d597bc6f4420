package panelapp

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	config "github.com/BoyleSeo/paris-green/internal/config"
	ui "github.com/BoyleSeo/paris-green/internal/ui"
)

// BuildSettingsDrawer constructs the slide-up settings panel: the OSC target
// editor on the left, panel preferences and the live values line on the
// right. Returns the widget tree plus the preferred drawer height.
func BuildSettingsDrawer(a *App) (fyne.CanvasObject, float32) {
	left := a.buildOSCSection()
	right := a.buildPreferencesSection()
	grid := container.NewGridWithColumns(2, left, right)

	a.drawerReadout = widget.NewLabel(a.currentValuesLine())
	a.drawerReadout.Truncation = fyne.TextTruncateClip

	bg := canvas.NewRectangle(color.NRGBA{0x20, 0x20, 0x20, 0xFF})
	body := container.NewBorder(nil, a.drawerReadout, nil, nil, grid)
	content := container.NewStack(bg, container.NewPadded(body))
	return content, 230
}

// buildOSCSection assembles the OSC enable switch and target entries. Entry
// edits are applied debounced so half-typed hosts never hit the socket.
func (a *App) buildOSCSection() fyne.CanvasObject {
	a.silentUpdating = true
	defer func() { a.silentUpdating = false }()

	a.oscEnableCheck = widget.NewCheck("Send OSC", func(bool) {
		if a.silentUpdating {
			return
		}
		a.applyOSCSettings()
	})
	a.oscEnableCheck.SetChecked(a.cfg.OSC.Enabled)

	a.oscHostEntry = widget.NewEntry()
	a.oscHostEntry.SetText(a.cfg.OSC.Host)
	a.oscPortEntry = widget.NewEntry()
	a.oscPortEntry.SetText(strconv.Itoa(a.cfg.OSC.Port))
	a.oscPrefixEntry = widget.NewEntry()
	a.oscPrefixEntry.SetText(a.cfg.OSC.Prefix)

	var applyTimer *time.Timer
	debouncedApply := func(string) {
		if a.silentUpdating {
			return
		}
		if applyTimer != nil {
			applyTimer.Stop()
		}
		applyTimer = time.AfterFunc(saveDebounce, func() {
			ui.CallOnMain(a.applyOSCSettings)
		})
	}
	a.oscHostEntry.OnChanged = debouncedApply
	a.oscPortEntry.OnChanged = debouncedApply
	a.oscPrefixEntry.OnChanged = debouncedApply

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Host"), a.oscHostEntry,
		widget.NewLabel("Port"), a.oscPortEntry,
		widget.NewLabel("Prefix"), a.oscPrefixEntry,
	)
	return container.NewVBox(a.oscEnableCheck, form)
}

// buildPreferencesSection assembles the remember-values switch and the
// reset-all button.
func (a *App) buildPreferencesSection() fyne.CanvasObject {
	a.silentUpdating = true
	defer func() { a.silentUpdating = false }()

	a.rememberCheck = widget.NewCheck("Remember values", func(b bool) {
		if a.silentUpdating {
			return
		}
		a.cfg.RememberValues = b
		if b {
			a.captureValues()
		}
		a.scheduleSave()
		a.ensureShortcutFocus()
	})
	a.rememberCheck.SetChecked(a.cfg.RememberValues)

	reset := widget.NewButtonWithIcon("Reset all", theme.ViewRefreshIcon(), func() {
		a.resetAll()
		a.ensureShortcutFocus()
	})

	return container.NewVBox(a.rememberCheck, reset)
}

// applyOSCSettings validates the drawer entries, reconfigures the
// broadcaster and persists the target.
func (a *App) applyOSCSettings() {
	if a.cfg == nil || a.osc == nil {
		return
	}
	host := strings.TrimSpace(a.oscHostEntry.Text)
	if host == "" {
		host = config.DefaultOSCHost
	}
	port := a.cfg.OSC.Port
	if txt := strings.TrimSpace(a.oscPortEntry.Text); txt != "" {
		p, err := strconv.Atoi(txt)
		if err != nil {
			dialog.ShowError(fmt.Errorf("OSC port: %w", err), a.w)
			return
		}
		if p <= 0 || p > 65535 {
			dialog.ShowError(fmt.Errorf("OSC port %d out of range", p), a.w)
			return
		}
		port = p
	}
	prefix := config.NormalizePrefix(a.oscPrefixEntry.Text)
	enabled := a.oscEnableCheck.Checked

	wasEnabled := a.cfg.OSC.Enabled
	a.cfg.OSC = config.OSCConfig{Enabled: enabled, Host: host, Port: port, Prefix: prefix}
	a.osc.Retarget(host, port, prefix)
	a.osc.SetEnabled(enabled)
	a.ind.SetActive(enabled)
	if enabled && !wasEnabled {
		a.broadcastAll()
	}
	a.scheduleSave()
}
