package ansihtml

import (
	"strings"
	"testing"
)

func TestTranslateTotal(t *testing.T) {
	for _, mode := range []EncodingMode{EncodingDefault, EncodingLegacyCodePage} {
		enc := EncodingFor(mode)
		for i := 0; i < 256; i++ {
			// must not panic for any byte
			_ = enc.Translate(byte(i))
		}
	}
}

func TestTranslateReservedInEveryMode(t *testing.T) {
	reserved := map[byte]string{
		'<':  "&lt;",
		'>':  "&gt;",
		'&':  "&amp;",
		'"':  "&quot;",
		'\'': "&apos;",
		'@':  "&#64;",
		'\t': "\t",
	}

	for _, mode := range []EncodingMode{EncodingDefault, EncodingLegacyCodePage} {
		for b, expected := range reserved {
			got := TranslateByte(b, mode)
			if got != expected {
				t.Errorf("%s: TranslateByte(%q) = %q, want %q", mode, b, got, expected)
			}
		}
	}
}

func TestTranslateNeverLeaksMarkup(t *testing.T) {
	for _, mode := range []EncodingMode{EncodingDefault, EncodingLegacyCodePage} {
		for i := 0; i < 256; i++ {
			got := TranslateByte(byte(i), mode)
			if strings.ContainsAny(got, "<>\"'") {
				t.Errorf("%s: TranslateByte(0x%02x) = %q contains markup", mode, i, got)
			}
		}
	}
}

func TestTranslateDefault(t *testing.T) {
	tests := []struct {
		name     string
		b        byte
		expected string
	}{
		{"letter", 'A', "A"},
		{"digit", '7', "7"},
		{"space", ' ', " "},
		{"null", 0x00, ""},
		{"bell", 0x07, ""},
		{"escape", 0x1b, ""},
		{"line feed", '\n', ""},
		{"unit separator", 0x1f, ""},
		{"high byte", 0xe9, "\xe9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateByte(tt.b, EncodingDefault)
			if got != tt.expected {
				t.Errorf("TranslateByte(0x%02x) = %q, want %q", tt.b, got, tt.expected)
			}
		})
	}
}

func TestTranslateLegacyCodePage(t *testing.T) {
	tests := []struct {
		name     string
		b        byte
		expected string
	}{
		{"full block", 0xdb, "&#9608;"},
		{"non-breaking space", 0xff, "&nbsp;"},
		{"null", 0x00, " "},
		{"smiley", 0x01, "&#x263a;"},
		{"heart", 0x03, "&#x2665;"},
		{"c cedilla", 0x80, "&#x00c7;"},
		{"letter", 'A', "A"},
		{"space", ' ', " "},
		{"less than", '<', "&lt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateByte(tt.b, EncodingLegacyCodePage)
			if got != tt.expected {
				t.Errorf("TranslateByte(0x%02x) = %q, want %q", tt.b, got, tt.expected)
			}
		})
	}
}

func TestTranslateRune(t *testing.T) {
	tests := []struct {
		name     string
		enc      Encoding
		r        rune
		expected string
	}{
		{"default ascii", DefaultEncoding, 'x', "x"},
		{"default reserved", DefaultEncoding, '&', "&amp;"},
		{"default utf-8", DefaultEncoding, 'é', "é"},
		{"default wide", DefaultEncoding, '中', "中"},
		{"default control", DefaultEncoding, 0x01, ""},
		{"default invalid", DefaultEncoding, 0xd800, ""},
		{"legacy lifted block", LegacyCodePageEncoding, liftBase + 0xdb, "&#9608;"},
		{"legacy lifted smiley", LegacyCodePageEncoding, liftBase + 0x01, "&#x263a;"},
		{"legacy ascii", LegacyCodePageEncoding, 'x', "x"},
		{"legacy code page character", LegacyCodePageEncoding, 'é', "&#x00e9;"},
		{"legacy block character", LegacyCodePageEncoding, '█', "&#9608;"},
		{"legacy outside code page", LegacyCodePageEncoding, '中', "&#x4e2d;"},
		{"legacy invalid", LegacyCodePageEncoding, 0xd800, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.enc.TranslateRune(tt.r)
			if got != tt.expected {
				t.Errorf("TranslateRune(%q) = %q, want %q", tt.r, got, tt.expected)
			}
		})
	}
}

func TestInputRune(t *testing.T) {
	tests := []struct {
		name     string
		enc      Encoding
		r        rune
		expected rune
	}{
		{"default unchanged", DefaultEncoding, liftBase + 0xdb, liftBase + 0xdb},
		{"legacy ascii", LegacyCodePageEncoding, 'A', 'A'},
		{"legacy block", LegacyCodePageEncoding, liftBase + 0xdb, '█'},
		{"legacy accent", LegacyCodePageEncoding, liftBase + 0x82, 'é'},
		{"legacy nbsp", LegacyCodePageEncoding, liftBase + 0xff, 0xa0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.enc.inputRune(tt.r); got != tt.expected {
				t.Errorf("inputRune(%U) = %U, want %U", tt.r, got, tt.expected)
			}
		})
	}
}

func TestInputRuneRoundTrip(t *testing.T) {
	enc := LegacyCodePageEncoding
	for b := 0x80; b <= 0xff; b++ {
		lifted := rune(liftBase + b)
		if got, want := enc.TranslateRune(enc.inputRune(lifted)), enc.Translate(byte(b)); got != want {
			t.Errorf("byte 0x%02x: expected %q, got %q", b, want, got)
		}
	}
}

func TestEncodingFor(t *testing.T) {
	if EncodingFor(EncodingDefault).SuppressGutter() {
		t.Error("expected default encoding to allow gutters")
	}
	if !EncodingFor(EncodingLegacyCodePage).SuppressGutter() {
		t.Error("expected legacy encoding to suppress gutters")
	}
	if got := EncodingFor(EncodingLegacyCodePage).Mode(); got != EncodingLegacyCodePage {
		t.Errorf("expected legacy mode, got %v", got)
	}
	if got := EncodingLegacyCodePage.String(); got != "cp437" {
		t.Errorf("expected cp437, got %q", got)
	}
}
