package core

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to the image/color representation used by pixel renderers.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Palette holds the four fixed colours of the game.
type Palette struct {
	Apple      Color
	Snake      Color
	Border     Color
	Background Color
}

// DefaultPalette returns the classic red apple, green snake on black.
func DefaultPalette() Palette {
	return Palette{
		Apple:      RGB(255, 0, 0),
		Snake:      RGB(0, 255, 0),
		Border:     RGB(93, 216, 228),
		Background: RGB(0, 0, 0),
	}
}
