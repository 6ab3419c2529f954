package styles

import (
	"strings"
	"testing"
)

func TestRenderHelpersKeepText(t *testing.T) {
	cases := []struct {
		name   string
		render func(string) string
	}{
		{"label", RenderLabel},
		{"dim", RenderDim},
		{"success", RenderSuccess},
		{"error", RenderError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Plain(tc.render("Sum: 6"))
			if got != "Sum: 6" {
				t.Errorf("Plain(render) = %q, want %q", got, "Sum: 6")
			}
		})
	}
}

func TestRenderBox(t *testing.T) {
	out := Plain(RenderBox("a\nb"))
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╯") {
		t.Errorf("expected rounded border, got %q", out)
	}
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("expected content in box, got %q", out)
	}
}

func TestPlainStripsEscapes(t *testing.T) {
	got := Plain("\x1b[1;32m6\x1b[0m")
	if got != "6" {
		t.Errorf("Plain = %q, want %q", got, "6")
	}
}
