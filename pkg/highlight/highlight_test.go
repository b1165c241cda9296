package highlight

import (
	"strings"
	"testing"
)

func TestHighlightWrapsInlineCode(t *testing.T) {
	got := New().Highlight("Use `fmt.Println` to print")
	want := "Use <code>fmt.Println</code> to print"
	if got != want {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestHighlightMultipleSpans(t *testing.T) {
	got := New().Highlight("Both `a` and `b` are wrapped")
	if strings.Count(got, "<code>") != 2 {
		t.Fatalf("expected two code spans, got %q", got)
	}
}

func TestHighlightSanitizesActiveMarkup(t *testing.T) {
	got := New().Highlight("hello <script>alert(1)</script> world")
	if strings.Contains(got, "<script>") {
		t.Fatalf("script element survived sanitization: %q", got)
	}
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Fatalf("surrounding text lost: %q", got)
	}
}

func TestHighlightEmptyText(t *testing.T) {
	if got := New().Highlight(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestHighlightIsIdempotent(t *testing.T) {
	once := New().Highlight("Use `fmt.Println` to print")
	twice := New().Highlight(once)
	if once != twice {
		t.Fatalf("highlighting is not idempotent: %q vs %q", once, twice)
	}
}
