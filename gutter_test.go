package ansihtml

import "testing"

func TestGutterDisabled(t *testing.T) {
	g := NewGutter(DefaultConfig(), DefaultEncoding)
	var span SpanTracker

	if g.Active() {
		t.Fatal("expected gutter to be disabled by default")
	}
	if got := g.Render(1, true, &span, Style{}); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestGutterSuppressedByLegacyEncoding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineNumbers = true

	g := NewGutter(cfg, LegacyCodePageEncoding)
	if g.Active() {
		t.Error("expected legacy encoding to suppress the gutter")
	}
}

func TestGutterRender(t *testing.T) {
	tests := []struct {
		name     string
		anchors  bool
		line     int
		fresh    bool
		expected string
	}{
		{
			name:     "fresh line",
			line:     1,
			fresh:    true,
			expected: `<span style="color:gray;">    1</span> `,
		},
		{
			name:     "fresh line with anchor",
			anchors:  true,
			line:     42,
			fresh:    true,
			expected: `<span id="l_42"  style="color:gray;">   42</span> `,
		},
		{
			name:     "continuation",
			anchors:  true,
			line:     3,
			fresh:    false,
			expected: "     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LineNumbers = true
			cfg.Anchors = tt.anchors

			var span SpanTracker
			got := NewGutter(cfg, DefaultEncoding).Render(tt.line, tt.fresh, &span, Style{})
			if got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGutterReopensActiveSpan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineNumbers = true
	g := NewGutter(cfg, DefaultEncoding)

	var span SpanTracker
	cur := Style{Fg: RGB(0xcd, 0x00, 0x00)}
	span.OpenSpan(cur)

	got := g.Render(2, true, &span, cur)
	expected := `</span><span style="color:gray;">    2</span> <span style="color:#cd0000;">`
	if got != expected {
		t.Errorf("Render() = %q, want %q", got, expected)
	}
	if !span.IsOpen() {
		t.Error("expected span to be open after the gutter")
	}
}

func TestGutterContinuationKeepsSpan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineNumbers = true
	g := NewGutter(cfg, DefaultEncoding)

	var span SpanTracker
	cur := Style{Flags: StyleBold}
	span.OpenSpan(cur)

	if got := g.Render(2, false, &span, cur); got != "     " {
		t.Errorf("expected padding only, got %q", got)
	}
	if !span.IsOpen() {
		t.Error("expected span to stay open")
	}
}

func TestGutterColor(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", "gray"},
		{"gray", "gray"},
		{"SteelBlue", "steelblue"},
		{"#FF8800", "#ff8800"},
		{"#zzzzzz", "gray"},
		{"not-a-color", "gray"},
		{"red;}body{", "gray"},
	}

	for _, tt := range tests {
		if got := gutterColor(tt.in); got != tt.expected {
			t.Errorf("gutterColor(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
