package core

import (
	"io"
	"strings"
)

// Console is the prompt collaborator the engine talks to. Every output line
// goes through the embedded io.Writer; every read clamps or defaults instead
// of failing, so the engine never sees an input error.
type Console interface {
	io.Writer

	// Command reads a command token, lower-cased and truncated to 3 characters.
	Command(prompt string) string

	// Confirm asks a yes/no question. Unreadable answers return def.
	Confirm(prompt string, def bool) bool

	// Float reads a number clamped to [min, max]; unparsable input yields min.
	Float(prompt string, min, max float64) float64

	// Int reads an integer clamped to [min, max]; unparsable input yields min.
	Int(prompt string, min, max int) int
}

// Resources loads named static narrative text (intro, instructions, help).
type Resources interface {
	Load(name string) (string, error)
}

// NormalizeCommand lower-cases and truncates a raw command line to the
// 3-character token the dispatcher understands.
func NormalizeCommand(raw string) string {
	r := []rune(strings.ToLower(strings.TrimSpace(raw)))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
