package ansihtml

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// EncodingMode selects how input bytes are interpreted.
type EncodingMode int

const (
	// EncodingDefault treats input as printable ASCII (or UTF-8) text.
	EncodingDefault EncodingMode = iota
	// EncodingLegacyCodePage treats input as IBM code page 437 text-mode art.
	EncodingLegacyCodePage
)

// String returns the mode name.
func (m EncodingMode) String() string {
	switch m {
	case EncodingLegacyCodePage:
		return "cp437"
	default:
		return "default"
	}
}

// Encoding is the capability set of an input encoding: how a byte renders and
// whether line number gutters are allowed. It is chosen once per run.
type Encoding struct {
	mode           EncodingMode
	glyphs         *[256]string
	suppressGutter bool
}

var (
	// DefaultEncoding escapes markup characters and drops control bytes.
	DefaultEncoding = Encoding{mode: EncodingDefault}
	// LegacyCodePageEncoding maps code page 437 bytes to glyph references and suppresses gutters.
	LegacyCodePageEncoding = Encoding{mode: EncodingLegacyCodePage, glyphs: &cp437Glyphs, suppressGutter: true}
)

// EncodingFor returns the encoding for mode.
func EncodingFor(mode EncodingMode) Encoding {
	if mode == EncodingLegacyCodePage {
		return LegacyCodePageEncoding
	}
	return DefaultEncoding
}

// Mode returns the encoding mode.
func (e Encoding) Mode() EncodingMode {
	return e.mode
}

// SuppressGutter returns true if line number gutters must not be rendered.
// Glyph art would be broken up by injected numbers.
func (e Encoding) SuppressGutter() bool {
	return e.suppressGutter
}

// Translate returns the HTML text for one input byte. It is total over 0-255
// and returns "" for bytes that have no rendering.
//
// Markup-reserved characters are escaped before any glyph lookup, so they
// never leak through the code page table.
func (e Encoding) Translate(b byte) string {
	if s, ok := escapeReserved(b); ok {
		return s
	}

	if e.glyphs != nil {
		return e.glyphs[b]
	}

	if b > 0x1f {
		return string([]byte{b})
	}
	return ""
}

// TranslateRune returns the HTML text for a rune delivered by the escape
// sequence decoder. ASCII runes go through Translate. Other runes are written
// as UTF-8 in default mode. In legacy mode, code page 437 characters and
// runes produced by the legacy lifter render from the glyph table, and any
// other rune becomes a numeric character reference.
func (e Encoding) TranslateRune(r rune) string {
	if r >= 0 && r < utf8.RuneSelf {
		return e.Translate(byte(r))
	}
	if e.glyphs != nil {
		return e.translateLegacyRune(r)
	}

	if !utf8.ValidRune(r) {
		return ""
	}
	return string(r)
}

func (e Encoding) translateLegacyRune(r rune) string {
	if b, ok := unliftByte(r); ok {
		return e.Translate(b)
	}
	if b, ok := charmap.CodePage437.EncodeRune(r); ok {
		return e.Translate(b)
	}
	if !utf8.ValidRune(r) {
		return ""
	}
	return "&#x" + strconv.FormatInt(int64(r), 16) + ";"
}

// inputRune returns the character a decoded rune stands for. Runes produced
// by the legacy lifter become their code page 437 character; others are
// returned unchanged.
func (e Encoding) inputRune(r rune) rune {
	if e.glyphs == nil {
		return r
	}
	if b, ok := unliftByte(r); ok {
		return charmap.CodePage437.DecodeByte(b)
	}
	return r
}

// Width returns the number of display columns r occupies once rendered.
func (e Encoding) Width(r rune) int {
	if e.glyphs != nil {
		return 1
	}
	return runeWidth(r)
}

// TranslateByte is Translate for the encoding selected by mode.
func TranslateByte(b byte, mode EncodingMode) string {
	return EncodingFor(mode).Translate(b)
}

// escapeReserved handles the bytes whose rendering is fixed in every mode.
func escapeReserved(b byte) (string, bool) {
	switch b {
	case '<':
		return "&lt;", true
	case '>':
		return "&gt;", true
	case '&':
		return "&amp;", true
	case '"':
		return "&quot;", true
	case '\'':
		return "&apos;", true
	case '@':
		return "&#64;", true
	case '\t':
		return "\t", true
	}
	return "", false
}
