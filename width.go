package ansihtml

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// nextTabStop returns the column after a tab written at col.
func nextTabStop(col int) int {
	return (col/tabWidth + 1) * tabWidth
}

const tabWidth = 8
