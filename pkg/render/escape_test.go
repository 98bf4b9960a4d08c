package render

import (
	"strings"
	"testing"

	"github.com/blizzard-html/blizzard/pkg/html"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<b>", "&lt;b&gt;"},
		{"quotes", `"x" 'y'`, "&quot;x&quot; &#39;y&#39;"},
		{"unicode untouched", "héllo → wörld", "héllo → wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.input); got != tt.want {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quote", `say "hi"`, "say &quot;hi&quot;"},
		{"newline", "a\nb", "a&#10;b"},
		{"carriage return", "a\rb", "a&#13;b"},
		{"tab", "a\tb", "a&#9;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeAttr(tt.input); got != tt.want {
				t.Errorf("EscapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeIsOptIn(t *testing.T) {
	// Without explicit escaping the renderer reproduces dangerous input
	// verbatim; with it, the output is inert.
	raw := `<img src=x onerror=alert(1)>`

	unsafe := String(html.P(html.Text(raw)))
	if !strings.Contains(unsafe, "<img") {
		t.Errorf("renderer must not escape on its own, got %q", unsafe)
	}

	safe := String(html.P(html.Text(EscapeText(raw))))
	if strings.Contains(safe, "<img") {
		t.Errorf("escaped text should be inert, got %q", safe)
	}
}
