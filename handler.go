package ansihtml

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// Input renders one character. In legacy mode middleware sees the code page
// 437 character, not the rune the lifter carried it in.
func (g *Generator) Input(r rune) {
	r = g.enc.inputRune(r)
	if g.middleware != nil && g.middleware.Input != nil {
		g.middleware.Input(r, g.inputInternal)
		return
	}
	g.inputInternal(r)
}

func (g *Generator) inputInternal(r rune) {
	frag := g.enc.TranslateRune(r)
	if frag == "" {
		return
	}

	width := g.enc.Width(r)
	if g.cfg.Wrap > 0 && g.col > 0 && g.col+width > g.cfg.Wrap {
		g.softBreak()
	}

	g.beginContent()
	g.write(frag)
	g.col += width
}

// Tab renders n horizontal tabs.
func (g *Generator) Tab(n int) {
	if g.middleware != nil && g.middleware.Tab != nil {
		g.middleware.Tab(n, g.tabInternal)
		return
	}
	g.tabInternal(n)
}

func (g *Generator) tabInternal(n int) {
	for i := 0; i < n; i++ {
		if g.cfg.Wrap > 0 && g.col > 0 && nextTabStop(g.col) > g.cfg.Wrap {
			g.softBreak()
		}
		g.beginContent()
		g.write(g.enc.Translate('\t'))
		g.col = nextTabStop(g.col)
	}
}

// LineFeed ends the current source line.
func (g *Generator) LineFeed() {
	if g.middleware != nil && g.middleware.LineFeed != nil {
		g.middleware.LineFeed(g.lineFeedInternal)
		return
	}
	g.lineFeedInternal()
}

func (g *Generator) lineFeedInternal() {
	// Empty lines still get their number.
	g.flushGutter()
	// A reset before the line break closes the span on this line.
	if g.dirty && g.pen.style() == (Style{}) {
		g.applyStyle()
	}
	g.write("\n")
	g.line++
	g.startLine(true)
}

// SetTerminalCharAttribute applies an SGR attribute to the pen. The output
// changes only when the next character is rendered.
func (g *Generator) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	if g.middleware != nil && g.middleware.SetTerminalCharAttribute != nil {
		g.middleware.SetTerminalCharAttribute(attr, g.setTerminalCharAttributeInternal)
		return
	}
	g.setTerminalCharAttributeInternal(attr)
}

func (g *Generator) setTerminalCharAttributeInternal(attr ansicode.TerminalCharAttribute) {
	p := &g.pen

	switch attr.Attr {
	case ansicode.CharAttributeReset:
		*p = pen{}
	case ansicode.CharAttributeBold:
		p.flags |= StyleBold
	case ansicode.CharAttributeDim:
		p.dim = true
	case ansicode.CharAttributeItalic:
		p.flags |= StyleItalic
	case ansicode.CharAttributeUnderline,
		ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline,
		ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		p.flags |= StyleUnderline
	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast:
		p.flags |= StyleBlink
	case ansicode.CharAttributeReverse:
		p.reverse = true
	case ansicode.CharAttributeHidden:
		p.flags |= StyleConceal
	case ansicode.CharAttributeCancelBold:
		p.flags &^= StyleBold
	case ansicode.CharAttributeCancelBoldDim:
		p.flags &^= StyleBold
		p.dim = false
	case ansicode.CharAttributeCancelItalic:
		p.flags &^= StyleItalic
	case ansicode.CharAttributeCancelUnderline:
		p.flags &^= StyleUnderline
	case ansicode.CharAttributeCancelBlink:
		p.flags &^= StyleBlink
	case ansicode.CharAttributeCancelReverse:
		p.reverse = false
	case ansicode.CharAttributeCancelHidden:
		p.flags &^= StyleConceal
	case ansicode.CharAttributeForeground:
		p.fg = resolveColor(attr)
	case ansicode.CharAttributeBackground:
		p.bg = resolveColor(attr)
	default:
		// strike and underline color have no rendering
		return
	}

	g.dirty = true
}

// ResetState (RIS) resets the pen.
func (g *Generator) ResetState() {
	g.pen = pen{}
	g.dirty = true
}

// The remaining events move a cursor, query the terminal or drive features
// a static document has no use for. They produce no output.

// ApplicationCommandReceived ignores APC payloads.
func (g *Generator) ApplicationCommandReceived(data []byte) {}

// Backspace is ignored: output is append-only.
func (g *Generator) Backspace() {}

// Bell is ignored.
func (g *Generator) Bell() {}

// CarriageReturn is ignored; LineFeed alone ends a line.
func (g *Generator) CarriageReturn() {}

// CellSizePixels is ignored.
func (g *Generator) CellSizePixels() {}

// ClearLine is ignored.
func (g *Generator) ClearLine(mode ansicode.LineClearMode) {}

// ClearScreen is ignored.
func (g *Generator) ClearScreen(mode ansicode.ClearMode) {}

// ClearTabs is ignored.
func (g *Generator) ClearTabs(mode ansicode.TabulationClearMode) {}

// ClipboardLoad is ignored.
func (g *Generator) ClipboardLoad(clipboard byte, terminator string) {}

// ClipboardStore is ignored.
func (g *Generator) ClipboardStore(clipboard byte, data []byte) {}

// ConfigureCharset is ignored.
func (g *Generator) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {}

// Decaln is ignored.
func (g *Generator) Decaln() {}

// DeleteChars is ignored.
func (g *Generator) DeleteChars(n int) {}

// DeleteLines is ignored.
func (g *Generator) DeleteLines(n int) {}

// DesktopNotification is ignored.
func (g *Generator) DesktopNotification(payload *ansicode.NotificationPayload) {}

// DeviceStatus is ignored.
func (g *Generator) DeviceStatus(n int) {}

// EraseChars is ignored.
func (g *Generator) EraseChars(n int) {}

// Goto is ignored.
func (g *Generator) Goto(row, col int) {}

// GotoCol is ignored.
func (g *Generator) GotoCol(col int) {}

// GotoLine is ignored.
func (g *Generator) GotoLine(row int) {}

// HorizontalTabSet is ignored.
func (g *Generator) HorizontalTabSet() {}

// IdentifyTerminal is ignored.
func (g *Generator) IdentifyTerminal(b byte) {}

// InsertBlank is ignored.
func (g *Generator) InsertBlank(n int) {}

// InsertBlankLines is ignored.
func (g *Generator) InsertBlankLines(n int) {}

// MoveBackward is ignored.
func (g *Generator) MoveBackward(n int) {}

// MoveBackwardTabs is ignored.
func (g *Generator) MoveBackwardTabs(n int) {}

// MoveDown is ignored.
func (g *Generator) MoveDown(n int) {}

// MoveDownCr is ignored.
func (g *Generator) MoveDownCr(n int) {}

// MoveForward is ignored.
func (g *Generator) MoveForward(n int) {}

// MoveForwardTabs is ignored.
func (g *Generator) MoveForwardTabs(n int) {}

// MoveUp is ignored.
func (g *Generator) MoveUp(n int) {}

// MoveUpCr is ignored.
func (g *Generator) MoveUpCr(n int) {}

// PopKeyboardMode is ignored.
func (g *Generator) PopKeyboardMode(n int) {}

// PopTitle is ignored.
func (g *Generator) PopTitle() {}

// PrivacyMessageReceived is ignored.
func (g *Generator) PrivacyMessageReceived(data []byte) {}

// PushKeyboardMode is ignored.
func (g *Generator) PushKeyboardMode(mode ansicode.KeyboardMode) {}

// PushTitle is ignored.
func (g *Generator) PushTitle() {}

// ReportKeyboardMode is ignored.
func (g *Generator) ReportKeyboardMode() {}

// ReportModifyOtherKeys is ignored.
func (g *Generator) ReportModifyOtherKeys() {}

// ResetColor is ignored; the palette is fixed.
func (g *Generator) ResetColor(i int) {}

// RestoreCursorPosition is ignored.
func (g *Generator) RestoreCursorPosition() {}

// ReverseIndex is ignored.
func (g *Generator) ReverseIndex() {}

// SaveCursorPosition is ignored.
func (g *Generator) SaveCursorPosition() {}

// ScrollDown is ignored.
func (g *Generator) ScrollDown(n int) {}

// ScrollUp is ignored.
func (g *Generator) ScrollUp(n int) {}

// SemanticPromptMark is ignored.
func (g *Generator) SemanticPromptMark(mark ansicode.ShellIntegrationMark, exitCode int) {}

// SetActiveCharset is ignored.
func (g *Generator) SetActiveCharset(n int) {}

// SetColor is ignored; the palette is fixed.
func (g *Generator) SetColor(index int, c color.Color) {}

// SetCursorStyle is ignored.
func (g *Generator) SetCursorStyle(style ansicode.CursorStyle) {}

// SetDynamicColor is ignored.
func (g *Generator) SetDynamicColor(prefix string, index int, terminator string) {}

// SetHyperlink is ignored.
func (g *Generator) SetHyperlink(hyperlink *ansicode.Hyperlink) {}

// SetKeyboardMode is ignored.
func (g *Generator) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}

// SetKeypadApplicationMode is ignored.
func (g *Generator) SetKeypadApplicationMode() {}

// SetMode is ignored.
func (g *Generator) SetMode(mode ansicode.TerminalMode) {}

// SetModifyOtherKeys is ignored.
func (g *Generator) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}

// SetScrollingRegion is ignored.
func (g *Generator) SetScrollingRegion(top, bottom int) {}

// SetTitle is ignored; the document title is fixed before the body is written.
func (g *Generator) SetTitle(title string) {}

// SetUserVar is ignored.
func (g *Generator) SetUserVar(name, value string) {}

// SetWorkingDirectory is ignored.
func (g *Generator) SetWorkingDirectory(uri string) {}

// ShellIntegrationMark is ignored.
func (g *Generator) ShellIntegrationMark(mark ansicode.ShellIntegrationMark, exitCode int) {}

// SixelReceived is ignored.
func (g *Generator) SixelReceived(params [][]uint16, data []byte) {}

// StartOfStringReceived is ignored.
func (g *Generator) StartOfStringReceived(data []byte) {}

// Substitute is ignored.
func (g *Generator) Substitute() {}

// TextAreaSizeChars is ignored.
func (g *Generator) TextAreaSizeChars() {}

// TextAreaSizePixels is ignored.
func (g *Generator) TextAreaSizePixels() {}

// UnsetKeypadApplicationMode is ignored.
func (g *Generator) UnsetKeypadApplicationMode() {}

// UnsetMode is ignored.
func (g *Generator) UnsetMode(mode ansicode.TerminalMode) {}
