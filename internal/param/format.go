package param

import (
	"fmt"
	"math"
)

// Read-out formatters for settings panes and debug printing. Display strings
// produced by the panel itself use their own fixed formats and do not go
// through these.

// FormatFrequency formats hz with Hz/kHz units, switching at 1 kHz.
func FormatFrequency(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FormatDecibel formats a gain value with an explicit sign. Values that round
// to zero print as "0.0 dB".
func FormatDecibel(db float64) string {
	if math.Abs(db) < 0.05 {
		return "0.0 dB"
	}
	return fmt.Sprintf("%+.1f dB", db)
}

// FormatBipolar formats a [-1, 1] value with an explicit sign and two
// decimals.
func FormatBipolar(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}
