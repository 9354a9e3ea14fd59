package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorRoom       = color.RGBA{15, 15, 26, 255}    // Darker than the background
	colorWall       = color.RGBA{135, 135, 135, 255} // Gray
	colorPlayer     = color.RGBA{255, 175, 0, 255}   // Orange
	colorMonster    = color.RGBA{255, 0, 0, 255}
	colorPotion     = color.RGBA{0, 175, 95, 255}  // Green
	colorHighlight  = color.RGBA{0, 215, 255, 255} // Cyan
	colorText       = color.RGBA{200, 210, 245, 255}
)

// Window and layout
const (
	WindowWidth  = 1024
	WindowHeight = 768
	TextRows     = 3  // header, status and help lines
	LineHeight   = 16 // of the debug font
	MinCellSize  = 2
	MaxCellSize  = 32
)
