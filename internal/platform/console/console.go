// Package console provides a line-oriented core.Console over any
// reader/writer pair: a local pipe, a non-PTY SSH channel or a test buffer.
package console

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-trek/internal/core"
)

// Line reads one answer per line from r and writes prompts and game output
// to w. Once the input is exhausted every prompt answers with its default,
// so a running mission winds down instead of blocking.
type Line struct {
	r      *bufio.Reader
	w      *bufio.Writer
	closed bool
}

var _ core.Console = (*Line)(nil)

// New creates a line console.
func New(r io.Reader, w io.Writer) *Line {
	return &Line{
		r: bufio.NewReader(r),
		w: bufio.NewWriter(w),
	}
}

// Write buffers game output. It is flushed before every prompt.
func (c *Line) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

// Flush writes any buffered output.
func (c *Line) Flush() error {
	return c.w.Flush()
}

// Closed reports whether the input has been exhausted.
func (c *Line) Closed() bool {
	return c.closed
}

// Command reads a command token. Exhausted input resigns the commission.
func (c *Line) Command(prompt string) string {
	line, ok := c.ask(prompt)
	if !ok {
		return "xxx"
	}
	return core.NormalizeCommand(line)
}

// Confirm reads a yes/no answer; anything that does not start with y or n
// yields def.
func (c *Line) Confirm(prompt string, def bool) bool {
	line, ok := c.ask(prompt)
	if !ok {
		return def
	}
	return ParseConfirm(line, def)
}

// Float reads a number clamped to [min, max].
func (c *Line) Float(prompt string, min, max float64) float64 {
	line, ok := c.ask(prompt)
	if !ok {
		return min
	}
	return ParseFloat(line, min, max)
}

// Int reads an integer clamped to [min, max].
func (c *Line) Int(prompt string, min, max int) int {
	line, ok := c.ask(prompt)
	if !ok {
		return min
	}
	return ParseInt(line, min, max)
}

func (c *Line) ask(prompt string) (string, bool) {
	//nolint:errcheck // Output errors surface on the next read
	c.w.WriteString(prompt)
	//nolint:errcheck
	c.w.Flush()

	if c.closed {
		return "", false
	}

	line, err := c.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			c.closed = true
			return "", false
		}
		c.closed = true
	}
	return strings.TrimRight(line, "\r\n"), true
}

// ParseConfirm maps an answer starting with y or n to true or false and
// anything else to def.
func ParseConfirm(s string, def bool) bool {
	switch answer := strings.ToLower(strings.TrimSpace(s)); {
	case strings.HasPrefix(answer, "y"):
		return true
	case strings.HasPrefix(answer, "n"):
		return false
	default:
		return def
	}
}

// ParseFloat parses s and clamps it to [min, max]. Unparsable input yields
// min.
func ParseFloat(s string, min, max float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return min
	}
	return core.ClampF(v, min, max)
}

// ParseInt parses s and clamps it to [min, max]. Unparsable input yields
// min. A fractional answer is truncated.
func ParseInt(s string, min, max int) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return core.Clamp(v, min, max)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return min
	}
	return core.Clamp(int(core.ClampF(f, float64(min), float64(max))), min, max)
}
