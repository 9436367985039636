package core

// Color is a foreground color for a screen cell. The platform maps these to
// ANSI colors; game code never deals with escape codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
)
