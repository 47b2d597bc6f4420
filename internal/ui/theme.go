package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// compactTheme is a theme wrapper that reduces the inline icon size, which
// Fyne also uses for the stock slider thumb, so the dense panel column stays
// tidy.
type compactTheme struct{ fyne.Theme }

func (t compactTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameInlineIcon {
		return t.Theme.Size(n) * 0.75
	}
	return t.Theme.Size(n)
}

// UseCompactTheme applies the theme wrapper to the current app.
func UseCompactTheme() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Settings().SetTheme(compactTheme{Theme: app.Settings().Theme()})
}
