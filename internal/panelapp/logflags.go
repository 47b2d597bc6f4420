package panelapp

import oscout "github.com/BoyleSeo/paris-green/internal/oscout"

// SetTraceLogEnabled toggles verbose logging of outgoing OSC traffic.
// Call this before creating the App so the broadcaster can see the flag.
func SetTraceLogEnabled(b bool) { oscout.SetTraceLoggingEnabled(b) }
