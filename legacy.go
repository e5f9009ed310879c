package ansihtml

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// liftBase is the start of the Private Use Area block that carries lifted
// code page bytes through the escape sequence decoder.
const liftBase = 0xF000

// LegacyLifter prepares code page 437 input for the UTF-8 escape sequence
// decoder. Bytes 0x80-0xFF and the C0 controls that carry a glyph are
// rewritten as runes in U+F000-U+F0FF; TAB, LF, CR and ESC keep their control
// meaning so line structure and ANSI sequences still parse.
type LegacyLifter struct {
	transform.NopResetter
}

// Transform implements transform.Transformer.
func (LegacyLifter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]

		if !needsLift(b) {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
			nSrc++
			continue
		}

		r := rune(liftBase + int(b))
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

// NewLegacyReader wraps r so that its bytes reach the decoder lifted.
func NewLegacyReader(r io.Reader) io.Reader {
	return transform.NewReader(r, LegacyLifter{})
}

func needsLift(b byte) bool {
	if b >= 0x80 {
		return true
	}
	if b >= 0x20 {
		return false
	}
	switch b {
	case '\t', '\n', '\r', 0x1b:
		return false
	}
	return true
}

// unliftByte recovers the source byte of a rune produced by LegacyLifter.
func unliftByte(r rune) (byte, bool) {
	if r < liftBase || r > liftBase+0xff {
		return 0, false
	}
	return byte(r - liftBase), true
}
