// Package docnorm normalizes machine-extracted component documentation. It
// merges structured introspection data with documentation-comment tags into
// one canonical record and resolves embedded usage examples into renderable
// content. The heavy lifting lives in pkg/pipeline; this package re-exports
// the common entry points.
package docnorm

import (
	"context"

	"github.com/goliatone/go-docnorm/pkg/component"
	"github.com/goliatone/go-docnorm/pkg/pipeline"
)

// Doc aliases the documentation record for convenience.
type Doc = component.Doc

// Option aliases the pipeline option type.
type Option = pipeline.Option

// New constructs a normalization pipeline with the provided options.
func New(options ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(options...)
}

// Normalize runs a one-shot pipeline over the record. It is the simplest
// entry point for callers that process a single component.
func Normalize(ctx context.Context, doc *component.Doc, sourcePath string, options ...pipeline.Option) (*component.Doc, error) {
	return pipeline.New(options...).Normalize(ctx, doc, sourcePath)
}
