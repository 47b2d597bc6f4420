package images

import _ "embed"

// Embed the knob icons into the binary so runtime does not need the images folder.
//go:embed knob32.png
var Knob32 []byte

//go:embed knob128.png
var Knob128 []byte
