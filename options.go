package ansihtml

const (
	// DEFAULT_FONT is the font family used when none is configured.
	DEFAULT_FONT = "Courier New"
	// DEFAULT_FONT_SIZE is the font size used when none is configured.
	DEFAULT_FONT_SIZE = "10pt"
	// DEFAULT_GUTTER_COLOR is the color of line numbers.
	DEFAULT_GUTTER_COLOR = "gray"
)

// Config is the static configuration of a document. It does not change
// while a document is being generated.
type Config struct {
	// Title is written into the <title> element.
	Title string
	// Font and FontSize style the <pre> element.
	Font     string
	FontSize string
	// StyleSheet, when set, is linked as an external stylesheet.
	StyleSheet string
	// Encoding, when set, is declared in a <meta charset> element.
	Encoding string

	LineNumbers bool
	Anchors     bool
	// GutterColor is a CSS color name or #rrggbb value for line numbers.
	GutterColor string

	// LegacyCodePage renders input as code page 437 art.
	LegacyCodePage bool
	// Fragment omits the document header and footer.
	Fragment bool
	// Wrap breaks lines longer than this many columns. Zero disables wrapping.
	Wrap int
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Font:        DEFAULT_FONT,
		FontSize:    DEFAULT_FONT_SIZE,
		GutterColor: DEFAULT_GUTTER_COLOR,
	}
}

// EncodingMode returns the input encoding mode selected by c.
func (c Config) EncodingMode() EncodingMode {
	if c.LegacyCodePage {
		return EncodingLegacyCodePage
	}
	return EncodingDefault
}

// Option configures a Generator during construction.
type Option func(*Generator)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.cfg.Title = title
	}
}

// WithFont sets the font family of the document body.
// An empty value keeps the default.
func WithFont(font string) Option {
	return func(g *Generator) {
		if font != "" {
			g.cfg.Font = font
		}
	}
}

// WithFontSize sets the font size of the document body.
// An empty value keeps the default.
func WithFontSize(size string) Option {
	return func(g *Generator) {
		if size != "" {
			g.cfg.FontSize = size
		}
	}
}

// WithStyleSheet links an external stylesheet.
func WithStyleSheet(path string) Option {
	return func(g *Generator) {
		g.cfg.StyleSheet = path
	}
}

// WithEncoding declares the document character encoding.
// Names known to the WHATWG encoding index are canonicalized; when the
// encoding is not UTF-8, input is decoded from it and output encoded to it.
func WithEncoding(name string) Option {
	return func(g *Generator) {
		g.cfg.Encoding = name
	}
}

// WithLineNumbers enables the line number gutter.
func WithLineNumbers() Option {
	return func(g *Generator) {
		g.cfg.LineNumbers = true
	}
}

// WithAnchors gives every numbered line an "l_N" id. It has no effect without line numbers.
func WithAnchors() Option {
	return func(g *Generator) {
		g.cfg.Anchors = true
	}
}

// WithGutterColor sets the line number color.
func WithGutterColor(color string) Option {
	return func(g *Generator) {
		g.cfg.GutterColor = color
	}
}

// WithLegacyCodePage renders input as code page 437 art.
func WithLegacyCodePage() Option {
	return func(g *Generator) {
		g.cfg.LegacyCodePage = true
	}
}

// WithFragment omits the document header and footer.
func WithFragment() Option {
	return func(g *Generator) {
		g.cfg.Fragment = true
	}
}

// WithWrap breaks lines after cols display columns.
// Values <= 0 disable wrapping.
func WithWrap(cols int) Option {
	if cols < 0 {
		cols = 0
	}

	return func(g *Generator) {
		g.cfg.Wrap = cols
	}
}

// WithMiddleware sets functions to intercept decoder events.
// Each middleware receives the original parameters and a next function to call the default implementation.
func WithMiddleware(mw *Middleware) Option {
	return func(g *Generator) {
		if g.middleware == nil {
			g.middleware = &Middleware{}
		}
		g.middleware.Merge(mw)
	}
}
