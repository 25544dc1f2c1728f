package core

// Color is a semantic foreground color the platform layer maps to terminal
// styles. The engine only ever hands out colors, never escape codes.
type Color uint8

// Predefined colors for ship condition and console output.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorGray
)
