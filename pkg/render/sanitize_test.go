package render

import (
	"strings"
	"testing"
)

func TestSanitizeContent_StripsScripts(t *testing.T) {
	out := SanitizeContent(`<p>hello</p><script>alert(1)</script>`)

	if strings.Contains(out, "script") {
		t.Fatalf("script survived sanitization: %q", out)
	}
	if !strings.Contains(out, "<p>hello</p>") {
		t.Fatalf("benign markup was lost: %q", out)
	}
}

func TestSanitizeContent_KeepsClasses(t *testing.T) {
	out := SanitizeContent(`<span class="badge">new</span>`)

	if !strings.Contains(out, `class="badge"`) {
		t.Fatalf("class attribute was stripped: %q", out)
	}
}

func TestSanitizeContent_Empty(t *testing.T) {
	if out := SanitizeContent("   "); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
