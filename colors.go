package ansihtml

import (
	"github.com/danielgatis/go-ansicode"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is the xterm 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]Color{
	// Standard colors (0-7)
	RGB(0x00, 0x00, 0x00), // Black
	RGB(0xcd, 0x00, 0x00), // Red
	RGB(0x00, 0xcd, 0x00), // Green
	RGB(0xcd, 0xcd, 0x00), // Yellow
	RGB(0x00, 0x00, 0xee), // Blue
	RGB(0xcd, 0x00, 0xcd), // Magenta
	RGB(0x00, 0xcd, 0xcd), // Cyan
	RGB(0xe5, 0xe5, 0xe5), // White

	// Bright colors (8-15)
	RGB(0x7f, 0x7f, 0x7f), // Bright Black
	RGB(0xff, 0x00, 0x00), // Bright Red
	RGB(0x00, 0xff, 0x00), // Bright Green
	RGB(0xff, 0xff, 0x00), // Bright Yellow
	RGB(0x5c, 0x5c, 0xff), // Bright Blue
	RGB(0xff, 0x00, 0xff), // Bright Magenta
	RGB(0x00, 0xff, 0xff), // Bright Cyan
	RGB(0xff, 0xff, 0xff), // Bright White

	// 216 colors (16-231) and grayscale (232-255) are generated below
}

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = RGB(cubeLevels[r], cubeLevels[g], cubeLevels[b])
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = RGB(gray, gray, gray)
	}
}

// DefaultForeground is the text color assumed when reverse video needs a concrete foreground.
var DefaultForeground = RGB(0xe5, 0xe5, 0xe5)

// DefaultBackground is the page color assumed when reverse video needs a concrete background.
var DefaultBackground = RGB(0x00, 0x00, 0x00)

// Named color indices reported by the decoder for the terminal defaults.
const (
	NamedColorForeground = 256
	NamedColorBackground = 257
)

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// resolveColor converts the color carried by an SGR attribute to a Color.
// Default foreground/background (SGR 39/49) and out of range indices resolve to an unset color.
func resolveColor(attr ansicode.TerminalCharAttribute) Color {
	if attr.RGBColor != nil {
		return RGB(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B)
	}

	if attr.IndexedColor != nil {
		return paletteColor(int(attr.IndexedColor.Index))
	}

	if attr.NamedColor != nil {
		return paletteColor(int(*attr.NamedColor))
	}

	return Color{}
}

// paletteColor looks up a palette index. Named defaults and anything past the palette are unset.
func paletteColor(index int) Color {
	if index >= 0 && index < len(DefaultPalette) {
		return DefaultPalette[index]
	}
	return Color{}
}
