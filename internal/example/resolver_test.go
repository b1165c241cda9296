package example

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docnorm/internal/settings"
	"github.com/goliatone/go-docnorm/pkg/component"
	"github.com/goliatone/go-docnorm/pkg/testsupport"
)

func newTestResolver(t *testing.T) (*Resolver, *testsupport.WarnRecorder) {
	t.Helper()
	logger, rec := testsupport.NewWarnLogger()
	fs := OSFileSystem{}
	resolver := NewResolver(fs, NewFileLoader(fs, ""), settings.New(), logger, "")
	return resolver, rec
}

func newDocWithExampleDoclet() *component.Doc {
	return &component.Doc{
		Doclets: component.Doclets{component.DocletExample: ""},
	}
}

func TestResolveExternalReference(t *testing.T) {
	dir := t.TempDir()
	demoPath := filepath.Join(dir, "demo.js")
	if err := os.WriteFile(demoPath, []byte("const demo = true;\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	sourcePath := filepath.Join(dir, "Button.js")

	resolver, rec := newTestResolver(t)
	doc := newDocWithExampleDoclet()

	resolver.Resolve(doc, []component.Tag{
		{Title: "example", Description: " ./demo.js"},
	}, sourcePath)

	want := component.LoadedExample{Path: demoPath, Source: "const demo = true;\n"}
	if diff := cmp.Diff(want, doc.Example); diff != "" {
		t.Fatalf("loaded example mismatch (-want +got):\n%s", diff)
	}
	if doc.Doclets.Example() {
		t.Fatalf("example doclet should be consumed")
	}
	if len(doc.Examples) != 0 {
		t.Fatalf("no inline entry expected, got %v", doc.Examples)
	}
	if rec.Len() != 0 {
		t.Fatalf("unexpected warnings: %v", rec.Messages())
	}
}

func TestResolveLastExternalReferenceWins(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"first.js", "second.js"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	sourcePath := filepath.Join(dir, "Button.js")

	resolver, _ := newTestResolver(t)
	doc := newDocWithExampleDoclet()

	resolver.Resolve(doc, []component.Tag{
		{Title: "example", Description: "./first.js"},
		{Title: "example", Description: "./second.js"},
	}, sourcePath)

	loaded, ok := doc.Example.(component.LoadedExample)
	if !ok {
		t.Fatalf("expected LoadedExample, got %T", doc.Example)
	}
	if loaded.Path != filepath.Join(dir, "second.js") {
		t.Fatalf("expected last reference to win, got %q", loaded.Path)
	}
}

func TestResolveInlineRenderBlock(t *testing.T) {
	body := "\n```js render\nconst x = 1;\n```"

	resolver, rec := newTestResolver(t)
	doc := newDocWithExampleDoclet()

	resolver.Resolve(doc, []component.Tag{
		{Title: "example", Description: body},
	}, filepath.Join("src", "Counter.js"))

	if diff := cmp.Diff([]string{body}, doc.Examples); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}
	if doc.Doclets.Example() {
		t.Fatalf("example doclet should be consumed")
	}
	if doc.Example != nil {
		t.Fatalf("no external example expected, got %v", doc.Example)
	}
	if rec.Len() != 0 {
		t.Fatalf("unexpected warnings: %v", rec.Messages())
	}
}

func TestResolveInlineBlockWithoutRenderModifier(t *testing.T) {
	sourcePath := filepath.Join("src", "Counter.js")

	resolver, rec := newTestResolver(t)
	doc := newDocWithExampleDoclet()

	resolver.Resolve(doc, []component.Tag{
		{Title: "example", Description: "\n```js\nconst x = 1;\n```"},
	}, sourcePath)

	if len(doc.Examples) != 0 {
		t.Fatalf("block without render intent must be dropped, got %v", doc.Examples)
	}
	if rec.Len() != 1 {
		t.Fatalf("expected one warning, got %d", rec.Len())
	}
	if got := rec.Attrs(0)["file"]; got != sourcePath {
		t.Fatalf("warning should name the source path, got %q", got)
	}
	if !doc.Doclets.Example() {
		t.Fatalf("doclet should remain when nothing was consumed")
	}
}

func TestResolveUnresolvableReference(t *testing.T) {
	sourcePath := filepath.Join("src", "Counter.js")

	resolver, rec := newTestResolver(t)
	doc := newDocWithExampleDoclet()

	resolver.Resolve(doc, []component.Tag{
		{Title: "example", Description: "nonexistent-and-no-fence"},
	}, sourcePath)

	if doc.Example != nil || len(doc.Examples) != 0 {
		t.Fatalf("nothing should be resolved")
	}
	if rec.Len() != 1 {
		t.Fatalf("expected one warning, got %d", rec.Len())
	}
	attrs := rec.Attrs(0)
	if attrs["file"] != sourcePath {
		t.Fatalf("warning should name the source path, got %q", attrs["file"])
	}
	if attrs["reference"] != "nonexistent-and-no-fence" {
		t.Fatalf("warning should name the reference, got %q", attrs["reference"])
	}
}

func TestResolveSkipsEmptyOccurrences(t *testing.T) {
	resolver, rec := newTestResolver(t)
	doc := newDocWithExampleDoclet()

	resolver.Resolve(doc, []component.Tag{
		{Title: "example", Description: "   \n\t"},
	}, "src/Counter.js")

	if rec.Len() != 0 {
		t.Fatalf("empty occurrences are discarded silently, got %v", rec.Messages())
	}
}

func TestResolveOccurrencesAreIndependent(t *testing.T) {
	sourcePath := filepath.Join("src", "Counter.js")
	render := "\n```js render\nfirst();\n```"

	resolver, rec := newTestResolver(t)
	doc := newDocWithExampleDoclet()

	resolver.Resolve(doc, []component.Tag{
		{Title: "example", Description: "missing-reference"},
		{Title: "example", Description: render},
	}, sourcePath)

	if diff := cmp.Diff([]string{render}, doc.Examples); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}
	if rec.Len() != 1 {
		t.Fatalf("expected exactly the missing-reference warning, got %v", rec.Messages())
	}
}

func TestFileLoaderBuildsLoadedExample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.js")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewFileLoader(OSFileSystem{}, "")
	loaded, err := loader.Load(LoaderPrefix + path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := component.LoadedExample{Path: path, Source: "x"}
	if diff := cmp.Diff(want, loaded); diff != "" {
		t.Fatalf("loaded mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	loader := NewFileLoader(OSFileSystem{}, "")
	if _, err := loader.Load(LoaderPrefix + filepath.Join(t.TempDir(), "missing.js")); err == nil {
		t.Fatalf("expected load failure")
	} else if !strings.Contains(err.Error(), "example loader") {
		t.Fatalf("unexpected error: %v", err)
	}
}
