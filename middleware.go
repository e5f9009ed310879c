package ansihtml

import "github.com/danielgatis/go-ansicode"

// Middleware intercepts the decoder events that produce output.
// Each field wraps one handler: it receives the original parameters and a next function to call the default implementation.
// Not calling next drops the event.
type Middleware struct {
	// Input wraps the Input handler
	Input func(r rune, next func(rune))

	// Tab wraps the Tab handler
	Tab func(n int, next func(int))

	// LineFeed wraps the LineFeed handler
	LineFeed func(next func())

	// SetTerminalCharAttribute wraps the SetTerminalCharAttribute handler
	SetTerminalCharAttribute func(attr ansicode.TerminalCharAttribute, next func(ansicode.TerminalCharAttribute))
}

// Merge copies non-nil middleware functions from other into this, overwriting existing values.
func (m *Middleware) Merge(other *Middleware) {
	if other == nil {
		return
	}

	if other.Input != nil {
		m.Input = other.Input
	}
	if other.Tab != nil {
		m.Tab = other.Tab
	}
	if other.LineFeed != nil {
		m.LineFeed = other.LineFeed
	}
	if other.SetTerminalCharAttribute != nil {
		m.SetTerminalCharAttribute = other.SetTerminalCharAttribute
	}
}
