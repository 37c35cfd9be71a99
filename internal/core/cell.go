package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the platform layer.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightBlack
	ColorOrange
	ColorGray
)

// Cell is a single screen cell: one rune plus its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is what Clear fills the screen with.
var blank = Cell{Rune: ' ', Color: ColorDefault}
