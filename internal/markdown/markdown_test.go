package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paragraph", "Join us Sunday.", "<p>Join us Sunday.</p>"},
		{"emphasis", "**bold** text", "<strong>bold</strong>"},
		{"heading", "## Schedule", "<h2"},
		{"list", "- one\n- two", "<li>one</li>"},
		{"autolink", "https://example.org", `<a href="https://example.org"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ToHTML(tt.in)
			if err != nil {
				t.Fatalf("ToHTML(%q): %v", tt.in, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("ToHTML(%q) = %q, want substring %q", tt.in, out, tt.want)
			}
		})
	}
}

func TestToHTMLRawPassthrough(t *testing.T) {
	// Raw HTML passes through; sanitization is a downstream concern.
	out, err := ToHTML(`<div class="x">raw</div>`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `<div class="x">raw</div>`) {
		t.Errorf("raw html blocked at conversion: %q", out)
	}
}
