package core

// Color is a palette entry for a screen cell.
// The terminal platform resolves it to a true-color style.
type Color uint8

// Neon palette used by the game.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorMagenta
	ColorYellow
	ColorGreen
	ColorRed
	ColorWhite
	ColorGrid
	colorCount
)

// Background is the field color every faded cell blends toward.
const Background = "#0a0014"

var colorHex = [colorCount]string{
	ColorDefault: "#c8c8d8",
	ColorCyan:    "#00ffff",
	ColorMagenta: "#ff00ff",
	ColorYellow:  "#ffff00",
	ColorGreen:   "#00ff00",
	ColorRed:     "#ff0000",
	ColorWhite:   "#ffffff",
	ColorGrid:    "#ff00ff",
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	if c >= colorCount {
		return colorHex[ColorDefault]
	}
	return colorHex[c]
}

// ColorFromHex maps a #rrggbb string from configuration onto the palette.
// Unknown values fall back to ColorDefault.
func ColorFromHex(hex string) Color {
	for c := Color(0); c < colorCount; c++ {
		if colorHex[c] == hex {
			return c
		}
	}
	return ColorDefault
}

// FadeLevels is the number of distinct brightness steps a cell can take.
// Fade 0 is full brightness, FadeLevels-1 is nearly background.
const FadeLevels = 8

// FadeFor converts an opacity in [0, 1] to a fade step.
func FadeFor(alpha float64) uint8 {
	alpha = ClampF(alpha, 0, 1)
	step := int((1 - alpha) * float64(FadeLevels-1))
	return uint8(Clamp(step, 0, FadeLevels-1))
}
