package parser

import "strings"

var falsyFlagValues = map[string]bool{
	"false":    true,
	"0":        true,
	"no":       true,
	"off":      true,
	"disabled": true,
}

// FlagEnabled reports whether a bracket option value switches its flag on.
// A bare flag ("[clear]") has the empty value and is on; false, 0, no, off and
// disabled turn it off, case-insensitively. Any other value is on.
func FlagEnabled(value string) bool {
	return !falsyFlagValues[strings.ToLower(strings.TrimSpace(value))]
}
