package core

// Color is a foreground color for a screen cell. The render layer maps these
// to ANSI colors; the core stays terminal-agnostic.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightMagenta
	ColorOrange
	ColorGray
)
