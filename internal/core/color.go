package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)
