package ansihtml

import (
	"html"
	"strings"
)

// Generator attribution written into the trailing comment of every document.
const (
	GeneratorName = "ansifilter"
	Version       = "1.0.0"
	HomepageURL   = "https://github.com/danielgatis/go-ansihtml"
)

// Header returns everything that precedes the body: doctype, head with
// optional charset, embedded style block, optional stylesheet link, title,
// and the opening <pre>.
func Header(cfg Config) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	if cfg.Encoding != "" {
		b.WriteString(`<meta charset="`)
		b.WriteString(html.EscapeString(cfg.Encoding))
		b.WriteString("\">\n")
	}

	b.WriteString("<style type=\"text/css\">\n")
	b.WriteString("pre {\n")
	b.WriteString("  font-family:" + cfg.Font + ";\n")
	b.WriteString("  font-size:" + cfg.FontSize + ";\n")
	if cfg.LegacyCodePage {
		// DOS text mode palette
		b.WriteString("  color: #e5e5e5;\n")
	}
	b.WriteString("}\n\n")
	if cfg.LegacyCodePage {
		b.WriteString("body {  background-color: black; } \n")
	}
	b.WriteString("</style>\n")

	if cfg.StyleSheet != "" {
		b.WriteString(`<link rel="stylesheet" type="text/css" href="`)
		b.WriteString(html.EscapeString(cfg.StyleSheet))
		b.WriteString("\">\n")
	}

	b.WriteString("<title>" + html.EscapeString(cfg.Title) + "</title>\n")
	b.WriteString("</head>\n<body>\n<pre>")
	return b.String()
}

// Footer closes the open span and the document.
func Footer(span *SpanTracker) string {
	return span.CloseSpan() + "</pre>" + generatorComment()
}

func generatorComment() string {
	return "\n</body>\n</html>\n<!--HTML generated by " + GeneratorName + " " + Version + ", " + HomepageURL + "-->\n"
}
