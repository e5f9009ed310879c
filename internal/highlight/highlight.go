// Package highlight colors plain source code with ANSI escape sequences so it
// can be rendered like any other terminal output.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Auto selects the lexer from the file name, then from the content.
const Auto = "auto"

// ErrUnknownLanguage is returned when no lexer matches.
var ErrUnknownLanguage = errors.New("unknown language")

// Highlighter tokenizes source with a chroma lexer and writes true color SGR sequences.
type Highlighter struct {
	language string
	style    *chroma.Style
}

// New returns a highlighter for language (a lexer name or alias, or Auto)
// using the named chroma style. Unknown styles fall back to chroma's default.
func New(language, style string) (*Highlighter, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		language = Auto
	}
	if language != Auto && lexers.Get(language) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, language)
	}

	if style == "" {
		style = DefaultStyle
	}
	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}

	return &Highlighter{language: language, style: s}, nil
}

// lexer picks the lexer for a document named filename.
func (h *Highlighter) lexer(filename, source string) (chroma.Lexer, error) {
	var lexer chroma.Lexer
	if h.language == Auto {
		if filename != "" {
			lexer = lexers.Match(filename)
		}
		if lexer == nil {
			lexer = lexers.Analyse(source)
		}
	} else {
		lexer = lexers.Get(h.language)
	}

	if lexer == nil {
		return nil, fmt.Errorf("%w: cannot detect language of %q", ErrUnknownLanguage, filename)
	}
	return chroma.Coalesce(lexer), nil
}

// Highlight writes source to w with every token wrapped in its style's SGR sequence.
func (h *Highlighter) Highlight(w io.Writer, filename, source string) error {
	lexer, err := h.lexer(filename, source)
	if err != nil {
		return err
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", filename, err)
	}

	for token := iterator(); token != chroma.EOF; token = iterator() {
		if err := h.writeToken(w, token); err != nil {
			return err
		}
	}
	return nil
}

// writeToken writes one token. Styles are closed before every line feed so a
// token spanning lines does not color the line number gutter of the next one.
func (h *Highlighter) writeToken(w io.Writer, token chroma.Token) error {
	sgr := h.sgr(token.Type)

	lines := strings.SplitAfter(token.Value, "\n")
	for _, line := range lines {
		text := strings.TrimSuffix(line, "\n")

		var b strings.Builder
		if text != "" {
			if sgr != "" {
				b.WriteString("\x1b[" + sgr + "m" + text + "\x1b[0m")
			} else {
				b.WriteString(text)
			}
		}
		if len(text) != len(line) {
			b.WriteString("\n")
		}

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// sgr returns the SGR parameters for a token type, or "" for unstyled tokens.
func (h *Highlighter) sgr(t chroma.TokenType) string {
	entry := h.style.Get(t)

	var codes []string
	if entry.Colour.IsSet() {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Background.IsSet() && entry.Background != h.style.Get(chroma.Background).Background {
		codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", entry.Background.Red(), entry.Background.Green(), entry.Background.Blue()))
	}
	if entry.Bold == chroma.Yes {
		codes = append(codes, "1")
	}
	if entry.Italic == chroma.Yes {
		codes = append(codes, "3")
	}
	if entry.Underline == chroma.Yes {
		codes = append(codes, "4")
	}
	return strings.Join(codes, ";")
}
