package highlight

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

func TestNewUnknownLanguage(t *testing.T) {
	_, err := New("definitely-not-a-language", "")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestHighlightKeepsText(t *testing.T) {
	const source = "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"

	h, err := New("go", DefaultStyle)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, h.Highlight(&out, "main.go", source))

	assert.Equal(t, source, strip(out.String()))
	assert.Contains(t, out.String(), "\x1b[38;2;", "expected true color sequences")
}

func TestHighlightResetsBeforeLineFeed(t *testing.T) {
	const source = "/* one\ntwo */\n"

	h, err := New("c", DefaultStyle)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, h.Highlight(&out, "x.c", source))

	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "\x1b[38") {
			assert.True(t, strings.HasSuffix(line, "\x1b[0m"), "line %q leaves a style open", line)
		}
	}
	assert.Equal(t, source, strip(out.String()))
}

func TestHighlightAutoDetectsByName(t *testing.T) {
	h, err := New(Auto, "")
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, h.Highlight(&out, "script.py", "def f():\n    return 1\n"))
	assert.Equal(t, "def f():\n    return 1\n", strip(out.String()))
	assert.NotEqual(t, strip(out.String()), out.String())
}

func TestNewDefaults(t *testing.T) {
	h, err := New("", "")
	require.NoError(t, err)
	assert.Equal(t, Auto, h.language)
	assert.NotNil(t, h.style)

	h, err = New("go", "no-such-style")
	require.NoError(t, err)
	assert.NotNil(t, h.style)
}
