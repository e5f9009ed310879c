package ansihtml

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{'a', 1},
		{'1', 1},
		{' ', 1},
		{'中', 2},
		{'日', 2},
		{'本', 2},
		{'한', 2},
		{'글', 2},
		{'가', 2},
		{'Ａ', 2}, // Fullwidth A
		{0, 0},
	}

	for _, tt := range tests {
		got := runeWidth(tt.r)
		if got != tt.expected {
			t.Errorf("runeWidth(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}

func TestNextTabStop(t *testing.T) {
	tests := []struct {
		col      int
		expected int
	}{
		{0, 8},
		{1, 8},
		{7, 8},
		{8, 16},
		{15, 16},
		{16, 24},
	}

	for _, tt := range tests {
		got := nextTabStop(tt.col)
		if got != tt.expected {
			t.Errorf("nextTabStop(%d) = %d, want %d", tt.col, got, tt.expected)
		}
	}
}

func TestEncodingWidth(t *testing.T) {
	tests := []struct {
		name     string
		enc      Encoding
		r        rune
		expected int
	}{
		{"default ascii", DefaultEncoding, 'A', 1},
		{"default wide", DefaultEncoding, '中', 2},
		{"legacy lifted", LegacyCodePageEncoding, liftBase + 0xdb, 1},
		{"legacy ascii", LegacyCodePageEncoding, 'A', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.enc.Width(tt.r)
			if got != tt.expected {
				t.Errorf("Width(%q) = %d, want %d", tt.r, got, tt.expected)
			}
		})
	}
}
