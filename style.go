package ansihtml

// StyleFlags is a bitmask of the text attributes a span can carry.
type StyleFlags uint8

const (
	StyleBold StyleFlags = 1 << iota
	StyleItalic
	StyleBlink
	StyleUnderline
	StyleConceal
)

// Color is an RGB color that may be unset. An unset color is never rendered.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB returns a set color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Style is a snapshot of the attributes active for a run of characters.
// The generator builds a new Style on every change; renderers only read it.
type Style struct {
	Flags StyleFlags
	Fg    Color
	Bg    Color
}

// HasFlag returns true if the specified flag is set.
func (s Style) HasFlag(flag StyleFlags) bool {
	return s.Flags&flag != 0
}

// IsPlain returns true if the style carries no flags and no colors.
func (s Style) IsPlain() bool {
	return s.Flags == 0 && !s.Fg.Set && !s.Bg.Set
}
