//go:build js && wasm

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"syscall/js"

	ansihtml "github.com/danielgatis/go-ansihtml"
)

// Global generator registry
var generators = make(map[int]*generatorInstance)
var nextGeneratorID = 1

// generatorInstance wraps a generator with its JS handlers
type generatorInstance struct {
	gen      *ansihtml.Generator
	handlers *jsHandlers
}

func main() {
	js.Global().Set("AnsiHTML", js.ValueOf(map[string]interface{}{
		"version": ansihtml.Version,

		// Generator lifecycle
		"create":  js.FuncOf(createGenerator),
		"destroy": js.FuncOf(destroyGenerator),

		// Rendering
		"render":      js.FuncOf(render),
		"renderBytes": js.FuncOf(renderBytes),

		// State inspection
		"config":     js.FuncOf(config),
		"configJSON": js.FuncOf(configJSON),
		"encoding":   js.FuncOf(encoding),

		// Handler registration
		"onInput":     js.FuncOf(onInput),
		"onLineFeed":  js.FuncOf(onLineFeed),
		"onAttribute": js.FuncOf(onAttribute),
	}))

	// Keep the program running
	select {}
}

// ============================================================================
// Generator Lifecycle
// ============================================================================

// createGenerator takes an optional options object:
// {title, font, fontSize, styleSheet, encoding, lineNumbers, anchors,
// gutterColor, legacyCodePage, fragment, wrap}
func createGenerator(_ js.Value, args []js.Value) interface{} {
	handlers := newJSHandlers()

	opts := []ansihtml.Option{ansihtml.WithMiddleware(handlers.middleware())}
	if len(args) >= 1 && args[0].Type() == js.TypeObject {
		opts = append(opts, parseOptions(args[0])...)
	}

	id := nextGeneratorID
	nextGeneratorID++
	generators[id] = &generatorInstance{
		gen:      ansihtml.New(opts...),
		handlers: handlers,
	}
	return id
}

func parseOptions(o js.Value) []ansihtml.Option {
	var opts []ansihtml.Option

	str := func(key string, with func(string) ansihtml.Option) {
		if v := o.Get(key); v.Type() == js.TypeString {
			opts = append(opts, with(v.String()))
		}
	}
	flag := func(key string, with func() ansihtml.Option) {
		if v := o.Get(key); v.Type() == js.TypeBoolean && v.Bool() {
			opts = append(opts, with())
		}
	}

	str("title", ansihtml.WithTitle)
	str("font", ansihtml.WithFont)
	str("fontSize", ansihtml.WithFontSize)
	str("styleSheet", ansihtml.WithStyleSheet)
	str("encoding", ansihtml.WithEncoding)
	str("gutterColor", ansihtml.WithGutterColor)
	flag("lineNumbers", ansihtml.WithLineNumbers)
	flag("anchors", ansihtml.WithAnchors)
	flag("legacyCodePage", ansihtml.WithLegacyCodePage)
	flag("fragment", ansihtml.WithFragment)

	if v := o.Get("wrap"); v.Type() == js.TypeNumber {
		opts = append(opts, ansihtml.WithWrap(v.Int()))
	}
	return opts
}

func destroyGenerator(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	delete(generators, args[0].Int())
	return nil
}

func getGenerator(id int) *ansihtml.Generator {
	if inst, ok := generators[id]; ok {
		return inst.gen
	}
	return nil
}

func getHandlers(id int) *jsHandlers {
	if inst, ok := generators[id]; ok {
		return inst.handlers
	}
	return nil
}

// ============================================================================
// Rendering
// ============================================================================

// result is what render and renderBytes return to JS.
func result(html string, err error) map[string]interface{} {
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	return map[string]interface{}{"html": html}
}

func render(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	gen := getGenerator(args[0].Int())
	if gen == nil {
		return nil
	}

	return result(gen.RenderString(args[1].String()))
}

// renderBytes renders a Uint8Array. Use it for legacy code page and
// non UTF-8 input, which a JS string cannot carry.
func renderBytes(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	gen := getGenerator(args[0].Int())
	if gen == nil {
		return nil
	}

	data := make([]byte, args[1].Get("length").Int())
	js.CopyBytesToGo(data, args[1])

	var out strings.Builder
	if err := gen.Run(bytes.NewReader(data), &out); err != nil {
		return result("", err)
	}
	return result(out.String(), nil)
}

// ============================================================================
// State Inspection
// ============================================================================

func configToJS(cfg ansihtml.Config) map[string]interface{} {
	return map[string]interface{}{
		"title":          cfg.Title,
		"font":           cfg.Font,
		"fontSize":       cfg.FontSize,
		"styleSheet":     cfg.StyleSheet,
		"encoding":       cfg.Encoding,
		"lineNumbers":    cfg.LineNumbers,
		"anchors":        cfg.Anchors,
		"gutterColor":    cfg.GutterColor,
		"legacyCodePage": cfg.LegacyCodePage,
		"fragment":       cfg.Fragment,
		"wrap":           cfg.Wrap,
	}
}

func config(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	gen := getGenerator(args[0].Int())
	if gen == nil {
		return nil
	}
	return configToJS(gen.Config())
}

func configJSON(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	gen := getGenerator(args[0].Int())
	if gen == nil {
		return ""
	}

	data, err := json.Marshal(configToJS(gen.Config()))
	if err != nil {
		return ""
	}
	return string(data)
}

func encoding(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	gen := getGenerator(args[0].Int())
	if gen == nil {
		return ""
	}
	return gen.Encoding().Mode().String()
}

// ============================================================================
// Handler Registration
// ============================================================================

func onInput(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	if h := getHandlers(args[0].Int()); h != nil {
		h.input = args[1]
	}
	return nil
}

func onLineFeed(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	if h := getHandlers(args[0].Int()); h != nil {
		h.lineFeed = args[1]
	}
	return nil
}

func onAttribute(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	if h := getHandlers(args[0].Int()); h != nil {
		h.attribute = args[1]
	}
	return nil
}
