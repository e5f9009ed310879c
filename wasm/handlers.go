//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/danielgatis/go-ansicode"
	ansihtml "github.com/danielgatis/go-ansihtml"
)

// jsHandlers holds the JavaScript callbacks of a generator instance.
// Callbacks are looked up on every event, so they may be registered after creation.
type jsHandlers struct {
	input     js.Value
	lineFeed  js.Value
	attribute js.Value
}

func newJSHandlers() *jsHandlers {
	return &jsHandlers{
		input:     js.Undefined(),
		lineFeed:  js.Undefined(),
		attribute: js.Undefined(),
	}
}

func isSet(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// dropped reports whether a callback result asks to drop the event.
func dropped(result js.Value) bool {
	return result.Type() == js.TypeBoolean && !result.Bool()
}

// middleware routes decoder events through the registered callbacks.
func (h *jsHandlers) middleware() *ansihtml.Middleware {
	return &ansihtml.Middleware{
		Input:                    h.onInput,
		LineFeed:                 h.onLineFeed,
		SetTerminalCharAttribute: h.onAttribute,
	}
}

// ============================================================================
// Input - calls onInput(char); legacy input arrives as code page 437 characters
// Returning false drops the character, returning a string replaces it.
// ============================================================================

func (h *jsHandlers) onInput(r rune, next func(rune)) {
	if !isSet(h.input) {
		next(r)
		return
	}

	result := h.input.Invoke(string(r))
	switch {
	case dropped(result):
	case result.Type() == js.TypeString:
		for _, c := range result.String() {
			next(c)
		}
	default:
		next(r)
	}
}

// ============================================================================
// Line feed - calls onLineFeed()
// Returning false joins the line with the next one.
// ============================================================================

func (h *jsHandlers) onLineFeed(next func()) {
	if !isSet(h.lineFeed) {
		next()
		return
	}

	if dropped(h.lineFeed.Invoke()) {
		return
	}
	next()
}

// ============================================================================
// Attribute - calls onAttribute(name)
// Returning false ignores the attribute.
// ============================================================================

func (h *jsHandlers) onAttribute(attr ansicode.TerminalCharAttribute, next func(ansicode.TerminalCharAttribute)) {
	if !isSet(h.attribute) {
		next(attr)
		return
	}

	if dropped(h.attribute.Invoke(attributeName(attr.Attr))) {
		return
	}
	next(attr)
}

func attributeName(attr ansicode.CharAttribute) string {
	switch attr {
	case ansicode.CharAttributeReset:
		return "reset"
	case ansicode.CharAttributeBold:
		return "bold"
	case ansicode.CharAttributeDim:
		return "dim"
	case ansicode.CharAttributeItalic:
		return "italic"
	case ansicode.CharAttributeUnderline,
		ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline,
		ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		return "underline"
	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast:
		return "blink"
	case ansicode.CharAttributeReverse:
		return "reverse"
	case ansicode.CharAttributeHidden:
		return "hidden"
	case ansicode.CharAttributeForeground:
		return "foreground"
	case ansicode.CharAttributeBackground:
		return "background"
	default:
		return "other"
	}
}
