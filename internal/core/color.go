package core

// Color represents a foreground color for text and screen cells.
// Frontends map it to ANSI 256-color codes or RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota // Ink color of the frontend (terminal default, black in a window)
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
