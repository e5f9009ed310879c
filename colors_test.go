package ansihtml

import (
	"testing"

	"github.com/danielgatis/go-ansicode"
)

func TestDefaultPalette(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "#000000"},
		{1, "#cd0000"},
		{7, "#e5e5e5"},
		{9, "#ff0000"},
		{12, "#5c5cff"},
		{16, "#000000"},
		{21, "#0000ff"},
		{196, "#ff0000"},
		{231, "#ffffff"},
		{232, "#080808"},
		{255, "#eeeeee"},
	}

	for _, tt := range tests {
		if got := DefaultPalette[tt.index].Hex(); got != tt.expected {
			t.Errorf("DefaultPalette[%d] = %s, want %s", tt.index, got, tt.expected)
		}
	}
}

func TestResolveColor(t *testing.T) {
	red := ansicode.NamedColor(1)
	defaultFg := ansicode.NamedColor(NamedColorForeground)
	defaultBg := ansicode.NamedColor(NamedColorBackground)

	tests := []struct {
		name     string
		attr     ansicode.TerminalCharAttribute
		expected Color
	}{
		{
			name:     "named",
			attr:     ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeForeground, NamedColor: &red},
			expected: RGB(0xcd, 0x00, 0x00),
		},
		{
			name:     "indexed",
			attr:     ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeForeground, IndexedColor: &ansicode.IndexedColor{Index: 208}},
			expected: RGB(0xff, 0x87, 0x00),
		},
		{
			name:     "rgb",
			attr:     ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeBackground, RGBColor: &ansicode.RGBColor{R: 1, G: 2, B: 3}},
			expected: RGB(1, 2, 3),
		},
		{
			name: "default foreground",
			attr: ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeForeground, NamedColor: &defaultFg},
		},
		{
			name: "default background",
			attr: ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeBackground, NamedColor: &defaultBg},
		},
		{
			name: "no color",
			attr: ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeForeground},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveColor(tt.attr); got != tt.expected {
				t.Errorf("resolveColor() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
