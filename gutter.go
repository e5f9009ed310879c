package ansihtml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// gutterWidth is the number of columns reserved for a line number.
const gutterWidth = 5

// Gutter renders the line number prefix of each output line.
type Gutter struct {
	enabled bool
	anchors bool
	color   string
}

// NewGutter returns the gutter for cfg. Encodings that suppress gutters
// disable it regardless of cfg.LineNumbers.
func NewGutter(cfg Config, enc Encoding) Gutter {
	return Gutter{
		enabled: cfg.LineNumbers && !enc.SuppressGutter(),
		anchors: cfg.Anchors,
		color:   gutterColor(cfg.GutterColor),
	}
}

// Active returns true if the gutter renders anything.
func (g Gutter) Active() bool {
	return g.enabled
}

// Render returns the gutter for line. At the start of a source line the
// open span is closed so the number never inherits terminal styling, and cur
// is reopened afterwards. A continuation line gets blank padding only.
func (g Gutter) Render(line int, fresh bool, span *SpanTracker, cur Style) string {
	if !g.enabled {
		return ""
	}

	if !fresh {
		return strings.Repeat(" ", gutterWidth)
	}

	var b strings.Builder
	b.WriteString(span.CloseSpan())
	b.WriteString("<span")
	if g.anchors {
		b.WriteString(` id="l_`)
		b.WriteString(strconv.Itoa(line))
		b.WriteString(`" `)
	}
	b.WriteString(` style="color:`)
	b.WriteString(g.color)
	b.WriteString(`;">`)
	fmt.Fprintf(&b, "%*d", gutterWidth, line)
	b.WriteString("</span> ")
	b.WriteString(span.OpenSpan(cur))
	return b.String()
}

// gutterColor validates a CSS named color or hex value, falling back to the default.
func gutterColor(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := colornames.Map[name]; ok {
		return name
	}

	if strings.HasPrefix(name, "#") {
		if c, err := colorful.Hex(name); err == nil {
			return c.Hex()
		}
	}
	return DEFAULT_GUTTER_COLOR
}
