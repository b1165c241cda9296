package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docnorm/pkg/component"
	"github.com/goliatone/go-docnorm/pkg/pipeline"
	"github.com/goliatone/go-docnorm/pkg/testsupport"
)

func TestNormalizeFullRecord(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "demo.js"), []byte("render(<Button />);\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	sourcePath := filepath.Join(dir, "Button.js")

	logger, rec := testsupport.NewWarnLogger()
	doc := &component.Doc{
		Description: "A counter button.\n@example ./demo.js\n@visibleName Click Counter",
		Methods: []component.Method{
			{
				Name:     "increment",
				Docblock: "Increments the counter.\n@public\n@param {number} step How much to add",
				Params:   []component.Param{{Name: "step"}},
			},
			{Name: "reset", Docblock: "Internal reset."},
		},
		Props: map[string]*component.Prop{
			"label":  {Description: "The `label` text.\n@since 1.0"},
			"secret": {Description: "@hidden\nDebug only."},
		},
	}

	pipe := pipeline.New(pipeline.WithLogger(logger))
	normalized, err := pipe.Normalize(context.Background(), doc, sourcePath)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if normalized.Description != "A counter button." {
		t.Fatalf("unexpected description: %q", normalized.Description)
	}

	if len(normalized.Methods) != 1 || normalized.Methods[0].Name != "increment" {
		t.Fatalf("unexpected methods: %+v", normalized.Methods)
	}
	param := normalized.Methods[0].Params[0]
	if param.Description != "How much to add" || param.Type != "number" {
		t.Fatalf("param not merged: %+v", param)
	}

	if _, ok := normalized.Props["secret"]; ok {
		t.Fatalf("hidden prop survived")
	}
	label := normalized.Props["label"]
	if label.Description != "The `label` text." {
		t.Fatalf("unexpected prop description: %q", label.Description)
	}
	if len(label.Tags["since"]) != 1 {
		t.Fatalf("expected since tag on prop, got %v", label.Tags)
	}

	loaded, ok := normalized.Example.(component.LoadedExample)
	if !ok {
		t.Fatalf("expected loaded external example, got %T", normalized.Example)
	}
	if loaded.Path != filepath.Join(dir, "demo.js") {
		t.Fatalf("unexpected example path: %q", loaded.Path)
	}
	if len(normalized.Examples) != 0 {
		t.Fatalf("no inline examples expected, got %v", normalized.Examples)
	}

	if normalized.DisplayName != "Button" {
		t.Fatalf("unexpected display name: %q", normalized.DisplayName)
	}
	if normalized.VisibleName != "Click Counter" {
		t.Fatalf("unexpected visible name: %q", normalized.VisibleName)
	}
	if normalized.Doclets.Example() {
		t.Fatalf("example doclet should be consumed")
	}
	if normalized.Doclets.Has(component.DocletVisibleName) {
		t.Fatalf("visibleName doclet should be promoted out")
	}
	if _, ok := normalized.Tags[component.DocletVisibleName]; ok {
		t.Fatalf("visibleName tag group should be removed")
	}

	if rec.Len() != 0 {
		t.Fatalf("unexpected warnings: %v", rec.Messages())
	}
}

func TestNormalizeInlineRenderExample(t *testing.T) {
	body := "\n```js render\nconst x = 1;\n```"
	logger, rec := testsupport.NewWarnLogger()

	doc := &component.Doc{Description: "Counts.\n@example" + body}
	pipe := pipeline.New(pipeline.WithLogger(logger))

	normalized, err := pipe.Normalize(context.Background(), doc, filepath.Join("src", "Counter.js"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if diff := cmp.Diff([]string{body}, normalized.Examples); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}
	if normalized.Example != nil {
		t.Fatalf("no external example expected")
	}
	if rec.Len() != 0 {
		t.Fatalf("unexpected warnings: %v", rec.Messages())
	}
}

func TestNormalizeTwiceIsNoOp(t *testing.T) {
	logger, _ := testsupport.NewWarnLogger()
	doc := &component.Doc{
		Description: "Counts clicks with `style`.\n@example\n```js render\nconst x = 1;\n```",
		Props: map[string]*component.Prop{
			"label": {Description: "The label."},
		},
	}

	pipe := pipeline.New(pipeline.WithLogger(logger))
	sourcePath := filepath.Join("src", "Counter.js")

	if _, err := pipe.Normalize(context.Background(), doc, sourcePath); err != nil {
		t.Fatalf("first run: %v", err)
	}

	description := doc.Description
	examples := append([]string(nil), doc.Examples...)
	tagCount := len(doc.Tags)

	if _, err := pipe.Normalize(context.Background(), doc, sourcePath); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if doc.Description != description {
		t.Fatalf("description changed: %q vs %q", doc.Description, description)
	}
	if diff := cmp.Diff(examples, doc.Examples); diff != "" {
		t.Fatalf("examples changed (-want +got):\n%s", diff)
	}
	if len(doc.Tags) != tagCount {
		t.Fatalf("tags changed: %v", doc.Tags)
	}
}

func TestNormalizeNilDocument(t *testing.T) {
	if _, err := pipeline.New().Normalize(context.Background(), nil, "src/Button.js"); err == nil {
		t.Fatalf("expected error for nil document")
	}
}

func TestNormalizeHonoursInjectedCollaborators(t *testing.T) {
	doc := &component.Doc{Description: "Plain text."}

	pipe := pipeline.New(
		pipeline.WithHighlighter(stubHighlighter{}),
	)
	normalized, err := pipe.Normalize(context.Background(), doc, "src/Plain.js")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if normalized.Description != "HL:Plain text." {
		t.Fatalf("injected highlighter not used: %q", normalized.Description)
	}
}

func TestNormalizeCustomSynonyms(t *testing.T) {
	doc := &component.Doc{
		Methods: []component.Method{{
			Name:     "open",
			Docblock: "Opens.\n@public\n@property {string} mode The mode",
			Params:   []component.Param{{Name: "mode"}},
		}},
	}

	synonyms := pipeline.DefaultSynonyms()
	synonyms.Params = append(synonyms.Params, "property")

	pipe := pipeline.New(pipeline.WithSynonyms(synonyms))
	if _, err := pipe.Normalize(context.Background(), doc, "src/Widget.js"); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got := doc.Methods[0].Params[0].Description; got != "The mode" {
		t.Fatalf("custom synonym not merged: %q", got)
	}
}

type stubHighlighter struct{}

func (stubHighlighter) Highlight(text string) string { return "HL:" + text }
