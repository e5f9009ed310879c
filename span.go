package ansihtml

import "strings"

// SpanState tells whether an inline style span is open in the output.
type SpanState uint8

const (
	// SpanClosed means no span is open; text is written unstyled.
	SpanClosed SpanState = iota
	// SpanOpen means a span is open and must be closed before the next one opens.
	SpanOpen
)

// SpanTracker emits the open and close tags of the single inline style span
// a document can have open at any time.
//
// OpenSpan does not close a previous span: callers close first.
type SpanTracker struct {
	state SpanState
}

// State returns the current span state.
func (t *SpanTracker) State() SpanState {
	return t.state
}

// IsOpen returns true if a span is open.
func (t *SpanTracker) IsOpen() bool {
	return t.state == SpanOpen
}

// OpenSpan returns the opening tag for s. A plain style opens nothing and
// leaves the tracker closed.
func (t *SpanTracker) OpenSpan(s Style) string {
	css := s.CSS()
	if css == "" {
		t.state = SpanClosed
		return ""
	}

	t.state = SpanOpen
	return `<span style="` + css + `">`
}

// CloseSpan returns the closing tag if a span is open. Calling it again is a no-op.
func (t *SpanTracker) CloseSpan() string {
	tag := ""
	if t.state == SpanOpen {
		tag = "</span>"
	}
	t.state = SpanClosed
	return tag
}

// CSS returns the inline declarations for s in a fixed order:
// weight, style, blink, underline, display, color, background-color.
func (s Style) CSS() string {
	var b strings.Builder

	if s.HasFlag(StyleBold) {
		b.WriteString("font-weight:bold;")
	}
	if s.HasFlag(StyleItalic) {
		b.WriteString("font-style:italic;")
	}
	if s.HasFlag(StyleBlink) {
		b.WriteString("text-decoration:blink;")
	}
	if s.HasFlag(StyleUnderline) {
		b.WriteString("text-decoration:underline;")
	}
	if s.HasFlag(StyleConceal) {
		b.WriteString("display:none;")
	}

	if s.Fg.Set {
		b.WriteString("color:")
		b.WriteString(s.Fg.Hex())
		b.WriteString(";")
	}
	if s.Bg.Set {
		b.WriteString("background-color:")
		b.WriteString(s.Bg.Hex())
		b.WriteString(";")
	}

	return b.String()
}
