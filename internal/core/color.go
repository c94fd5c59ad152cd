package core

// Color is a foreground color for a screen cell, resolved to ANSI codes
// by the TUI layer.
type Color uint8

// Predefined colors for board and UI elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
