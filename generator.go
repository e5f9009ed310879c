package ansihtml

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/danielgatis/go-ansicode"
	"golang.org/x/text/encoding"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Ensure Generator implements ansicode.Handler
var _ ansicode.Handler = (*Generator)(nil)

// Generator renders a stream of ANSI styled text as an HTML document.
//
// It receives decoder events (style changes, characters, line feeds) and keeps
// exactly one inline style span open while characters share a style. A
// Generator can be reused for several documents but must not be used by more
// than one Run at a time.
type Generator struct {
	cfg        Config
	enc        Encoding
	gutter     Gutter
	middleware *Middleware

	out *bufio.Writer

	// Styling
	span    SpanTracker
	pen     pen
	applied Style
	dirty   bool

	// Line tracking
	line          int
	col           int
	gutterPending bool
	gutterFresh   bool
}

// pen holds the attributes set by SGR sequences. Reverse video is resolved
// when the pen is turned into a Style.
type pen struct {
	flags   StyleFlags
	dim     bool
	reverse bool
	fg      Color
	bg      Color
}

func (p pen) style() Style {
	s := Style{Flags: p.flags, Fg: p.fg, Bg: p.bg}
	if p.reverse {
		fg, bg := p.bg, p.fg
		if !fg.Set {
			fg = DefaultBackground
		}
		if !bg.Set {
			bg = DefaultForeground
		}
		s.Fg, s.Bg = fg, bg
	}
	return s
}

// New creates a generator with the given options.
// Defaults to the default encoding, Courier New 10pt, no line numbers.
func New(opts ...Option) *Generator {
	g := &Generator{
		cfg: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.Encoding != "" {
		if canonical, err := CanonicalCharset(g.cfg.Encoding); err == nil {
			g.cfg.Encoding = canonical
		}
	}

	g.enc = EncodingFor(g.cfg.EncodingMode())
	g.gutter = NewGutter(g.cfg, g.enc)

	return g
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config {
	return g.cfg
}

// Encoding returns the input encoding in use.
func (g *Generator) Encoding() Encoding {
	return g.enc
}

// Run writes the document for the ANSI text read from r to w.
// It returns the first read or write error; the caller owns both streams.
func (g *Generator) Run(r io.Reader, w io.Writer) error {
	g.reset()

	var closer io.Closer
	enc := transcoder(g.cfg)
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
		tw := encoding.HTMLEscapeUnsupported(enc.NewEncoder()).Writer(w)
		closer, _ = tw.(io.Closer)
		w = tw
	}
	switch {
	case g.cfg.LegacyCodePage:
		r = NewLegacyReader(r)
	case enc == nil:
		// Bytes that are not valid UTF-8 reach the decoder as U+FFFD.
		r = transform.NewReader(r, runes.ReplaceIllFormed())
	}

	g.out = bufio.NewWriter(w)
	defer func() {
		g.out = nil
	}()

	if !g.cfg.Fragment {
		g.write(Header(g.cfg))
	}

	decoder := ansicode.NewDecoder(g)
	if _, err := io.Copy(decoder, r); err != nil {
		return fmt.Errorf("render input: %w", err)
	}

	if g.cfg.Fragment {
		g.write(g.span.CloseSpan())
	} else {
		g.write(Footer(&g.span))
	}

	if err := g.out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// RenderString returns the document for s.
func (g *Generator) RenderString(s string) (string, error) {
	var b strings.Builder
	if err := g.Run(strings.NewReader(s), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// reset prepares the per-document state.
func (g *Generator) reset() {
	g.span = SpanTracker{}
	g.pen = pen{}
	g.applied = Style{}
	g.dirty = false
	g.line = 1
	g.startLine(true)
}

// write buffers s. Write errors are sticky in the bufio.Writer and reported by Flush.
func (g *Generator) write(s string) {
	if s == "" || g.out == nil {
		return
	}
	_, _ = g.out.WriteString(s)
}

// startLine marks the gutter of a new output line as pending. fresh is false
// for a line started by soft wrapping.
func (g *Generator) startLine(fresh bool) {
	g.gutterPending = true
	g.gutterFresh = fresh
	g.col = 0
}

// beginContent emits whatever must precede a rendered character: the
// pending gutter and the pending style change.
func (g *Generator) beginContent() {
	g.flushGutter()
	g.applyStyle()
}

func (g *Generator) flushGutter() {
	if !g.gutterPending {
		return
	}
	g.gutterPending = false

	// A numbered gutter closes and reopens the span, so a pending style change is applied by the reopen.
	if g.gutterFresh && g.gutter.Active() && g.dirty {
		g.dirty = false
		g.applied = g.pen.style()
	}
	g.write(g.gutter.Render(g.line, g.gutterFresh, &g.span, g.applied))
}

// applyStyle closes the open span and opens one for the pen, if the pen changed.
func (g *Generator) applyStyle() {
	if !g.dirty {
		return
	}
	g.dirty = false

	next := g.pen.style()
	if next == g.applied {
		return
	}

	g.write(g.span.CloseSpan())
	g.write(g.span.OpenSpan(next))
	g.applied = next
}

// softBreak wraps the current line without starting a new source line.
func (g *Generator) softBreak() {
	g.write("\n")
	g.startLine(false)
}
