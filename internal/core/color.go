package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
// ColorDefault doubles as the "empty" value for board cells.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB is a 24-bit color used by frontends that draw pixels instead of cells.
type RGB struct {
	R, G, B uint8
}

var rgbTable = map[Color]RGB{
	ColorDefault:       {230, 230, 230},
	ColorRed:           {240, 0, 0},
	ColorGreen:         {0, 240, 0},
	ColorYellow:        {255, 255, 0},
	ColorBlue:          {0, 0, 240},
	ColorMagenta:       {160, 0, 240},
	ColorCyan:          {0, 255, 255},
	ColorWhite:         {230, 230, 230},
	ColorBrightRed:     {255, 85, 85},
	ColorBrightGreen:   {85, 255, 85},
	ColorBrightYellow:  {255, 255, 85},
	ColorBrightBlue:    {85, 85, 255},
	ColorBrightMagenta: {255, 85, 255},
	ColorBrightCyan:    {85, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {240, 160, 0},
	ColorGray:          {150, 150, 150},
}

// RGB returns the pixel color for c. Unknown colors map to white.
func (c Color) RGB() RGB {
	if v, ok := rgbTable[c]; ok {
		return v
	}
	return rgbTable[ColorWhite]
}
