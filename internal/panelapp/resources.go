package panelapp

import (
	"fyne.io/fyne/v2"
	"github.com/BoyleSeo/paris-green/images"
)

// Embedded application icons (PNG), bundled into the binary via images package.
// We pick a sensible default (32px) for the runtime window/app icon.
var (
	KnobIcon32  fyne.Resource
	KnobIcon128 fyne.Resource

	// AppIcon is the default icon used for the app and window.
	AppIcon fyne.Resource
)

func init() {
	// Build static resources from embedded PNGs
	if len(images.Knob32) > 0 {
		KnobIcon32 = fyne.NewStaticResource("knob32.png", images.Knob32)
	}
	if len(images.Knob128) > 0 {
		KnobIcon128 = fyne.NewStaticResource("knob128.png", images.Knob128)
	}

	// Choose 32px as a good default for runtime window/taskbar icon on Windows.
	if KnobIcon32 != nil {
		AppIcon = KnobIcon32
	} else if KnobIcon128 != nil {
		AppIcon = KnobIcon128
	}
}
