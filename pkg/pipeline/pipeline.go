// Package pipeline coordinates the documentation normalization sequence:
// method normalization → description processing (with example resolution) →
// prop normalization → record finalization. It applies sensible defaults
// (bundled tag parser, settings parser, highlighter, OS filesystem) while
// remaining open to dependency injection for advanced callers.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/goliatone/go-docnorm/internal/doctags"
	"github.com/goliatone/go-docnorm/internal/example"
	"github.com/goliatone/go-docnorm/internal/normalize"
	"github.com/goliatone/go-docnorm/internal/settings"
	"github.com/goliatone/go-docnorm/internal/tags"
	"github.com/goliatone/go-docnorm/pkg/component"
	"github.com/goliatone/go-docnorm/pkg/highlight"
)

// Synonyms re-exports the declarative synonym table consumed by the merge
// step, so callers can extend the recognized spellings.
type Synonyms = tags.Synonyms

// DefaultSynonyms returns the built-in table: param/arg/argument and
// return/returns.
func DefaultSynonyms() Synonyms {
	return tags.Default()
}

// LoaderPrefix is the fixed identifier prepended to resolved example paths.
const LoaderPrefix = example.LoaderPrefix

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithTagParser injects a custom tag-grammar collaborator.
func WithTagParser(parser component.TagParser) Option {
	return func(p *Pipeline) {
		p.parser = parser
	}
}

// WithExampleLoader injects a custom example-loading collaborator.
func WithExampleLoader(loader component.ExampleLoader) Option {
	return func(p *Pipeline) {
		p.loader = loader
	}
}

// WithSettingsParser injects a custom example-settings collaborator.
func WithSettingsParser(parser component.SettingsParser) Option {
	return func(p *Pipeline) {
		p.settings = parser
	}
}

// WithHighlighter injects a custom description highlighter.
func WithHighlighter(h component.Highlighter) Option {
	return func(p *Pipeline) {
		p.highlighter = h
	}
}

// WithFileSystem injects the filesystem used for example existence checks and
// reads. Defaults to the host filesystem.
func WithFileSystem(fs component.FileSystem) Option {
	return func(p *Pipeline) {
		p.fs = fs
	}
}

// WithLogger injects the logger that receives validation warnings. Warnings
// are emitted, never returned as errors.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithSynonyms overrides the tag synonym table.
func WithSynonyms(s Synonyms) Option {
	return func(p *Pipeline) {
		p.synonyms = s
		p.synonymsSet = true
	}
}

// WithLoaderPrefix overrides the loader identifier used to build example
// module specifiers.
func WithLoaderPrefix(prefix string) Option {
	return func(p *Pipeline) {
		p.prefix = prefix
	}
}

// Pipeline runs the full normalization sequence over one record at a time.
// It is synchronous and keeps no state across invocations; each call owns its
// record exclusively for the duration.
type Pipeline struct {
	parser      component.TagParser
	loader      component.ExampleLoader
	settings    component.SettingsParser
	highlighter component.Highlighter
	fs          component.FileSystem
	logger      *slog.Logger
	synonyms    Synonyms
	synonymsSet bool
	prefix      string
}

// New constructs a Pipeline applying any provided options. Missing
// collaborators are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

func (p *Pipeline) applyDefaults() {
	if p.parser == nil {
		p.parser = doctags.New()
	}
	if p.fs == nil {
		p.fs = example.OSFileSystem{}
	}
	if p.prefix == "" {
		p.prefix = example.LoaderPrefix
	}
	if p.loader == nil {
		p.loader = example.NewFileLoader(p.fs, p.prefix)
	}
	if p.settings == nil {
		p.settings = settings.New()
	}
	if p.highlighter == nil {
		p.highlighter = highlight.New()
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if !p.synonymsSet {
		p.synonyms = tags.Default()
	}
}

// Normalize mutates the record in place and returns it. Structural parse
// failures from the tag-grammar collaborator abort the run; example
// validation failures are recovered with a logged warning and the pipeline
// continues.
func (p *Pipeline) Normalize(ctx context.Context, doc *component.Doc, sourcePath string) (*component.Doc, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("pipeline: document is nil")
	}

	resolver := example.NewResolver(p.fs, p.loader, p.settings, p.logger, p.prefix)
	n := normalize.New(p.parser, p.highlighter, resolver, p.synonyms, p.logger)

	if err := n.Methods(doc); err != nil {
		return nil, err
	}
	if err := n.Description(doc, sourcePath); err != nil {
		return nil, err
	}
	if err := n.Props(doc); err != nil {
		return nil, err
	}
	n.Finalize(doc, sourcePath)

	return doc, nil
}
