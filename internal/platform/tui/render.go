package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-trek/internal/core"
	"github.com/vovakirdan/tui-trek/internal/trek"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightRed: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// glyphColors colors the short-range scan symbols.
var glyphColors = map[trek.SectorType]core.Color{
	trek.SectorKlingon:  core.ColorBrightRed,
	trek.SectorStarbase: core.ColorCyan,
	trek.SectorShip:     core.ColorGreen,
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func styleFor(c core.Color) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

// Highlight colors condition labels and scan glyphs in engine output.
func Highlight(s string) string {
	for _, c := range trek.Conditions() {
		label := string(c)
		s = strings.ReplaceAll(s, label, styleFor(c.Color()).Render(label))
	}
	for t, c := range glyphColors {
		glyph := t.Glyph()
		s = strings.ReplaceAll(s, glyph, styleFor(c).Render(glyph))
	}
	return s
}

// centerText pads text to be centered within width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}
