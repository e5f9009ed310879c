// Package ansihtml converts text containing ANSI escape sequences into HTML.
//
// This package renders terminal output as a self-contained document, making it
// useful for:
//   - Publishing build and test logs with their colors intact
//   - Archiving ANSI and code page 437 art
//   - Embedding colored command output in web pages
//
// # Quick Start
//
// Create a generator and render a string:
//
//	gen := ansihtml.New(ansihtml.WithTitle("build.log"))
//	doc, err := gen.RenderString("\x1b[1;31mFAIL\x1b[0m main_test.go")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc)
//
// Or stream from a reader to a writer:
//
//	gen := ansihtml.New(ansihtml.WithLineNumbers(), ansihtml.WithAnchors())
//	if err := gen.Run(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Generator]: Receives escape sequence decoder events and writes the document
//   - [Encoding]: Translates one input byte or rune into safe HTML text
//   - [SpanTracker]: Keeps at most one inline style span open
//   - [Gutter]: Renders the line number prefix of each line
//   - [Style]: The resolved text attributes and colors of a run of characters
//
// # Styles and Spans
//
// SGR sequences update the generator's pen. Nothing is written until the next
// character, so a sequence like "\x1b[1;38;2;255;0;0m" produces a single span:
//
//	A\x1b[1;38;2;255;0;0m<\x1b[0mB
//
// renders as
//
//	A<span style="font-weight:bold;color:#ff0000;">&lt;</span>B
//
// Declarations are always written in the same order: font-weight, font-style,
// text-decoration (blink, then underline), display, color, background-color.
// Reverse video swaps foreground and background, substituting [DefaultForeground]
// and [DefaultBackground] for unset colors.
//
// # Encodings
//
// Two input encodings are supported:
//
//   - Default: printable ASCII and UTF-8 pass through, markup characters
//     (< > & " ' @) are escaped and control bytes are dropped
//   - Legacy code page: every byte is mapped through the IBM code page 437
//     glyph table, for DOS text-mode art. Line numbers are disabled.
//
// [Encoding.Translate] is total over all 256 byte values:
//
//	ansihtml.TranslateByte(0xdb, ansihtml.EncodingLegacyCodePage) // "&#9608;"
//	ansihtml.TranslateByte('<', ansihtml.EncodingDefault)         // "&lt;"
//
// A character encoding name given with [WithEncoding] is declared in a meta
// element. Names other than utf-8 also transcode input and output, escaping
// characters the output charset cannot represent.
//
// # Line Numbers
//
// With [WithLineNumbers] each line starts with a gray, right-aligned number.
// The open style span is closed around the number and reopened after it, so
// numbers never take terminal colors. [WithAnchors] adds an id of the form
// "l_N" to every number. Lines broken by [WithWrap] get blank padding instead
// of a number.
//
// # Middleware
//
// Middleware intercepts the events that produce output:
//
//	mw := &ansihtml.Middleware{
//	    Input: func(r rune, next func(rune)) {
//	        next(unicode.ToUpper(r))
//	    },
//	}
//	gen := ansihtml.New(ansihtml.WithMiddleware(mw))
//
// # Thread Safety
//
// A Generator holds per-document state and is not safe for concurrent use.
// Use one Generator per goroutine.
package ansihtml
