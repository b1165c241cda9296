// Package normalize implements the pipeline stages that turn an introspected
// documentation record into its canonical form: public-method filtering with
// tag merging, description processing with example resolution, prop cleanup,
// and record finalization. Stage ordering is a contract, not an accident:
// doclet stripping runs before highlighting, and introspection data takes
// precedence over tag-derived data.
package normalize

import (
	"fmt"
	"log/slog"

	"github.com/goliatone/go-docnorm/internal/example"
	"github.com/goliatone/go-docnorm/internal/tags"
	"github.com/goliatone/go-docnorm/pkg/component"
)

// Normalizer holds the collaborators shared by every stage. One Normalizer
// serves many records; each call owns its record exclusively.
type Normalizer struct {
	parser      component.TagParser
	highlighter component.Highlighter
	resolver    *example.Resolver
	synonyms    tags.Synonyms
	logger      *slog.Logger
}

// New wires a Normalizer. The resolver may be nil when example resolution is
// handled elsewhere; the remaining collaborators are required.
func New(parser component.TagParser, highlighter component.Highlighter, resolver *example.Resolver, synonyms tags.Synonyms, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{
		parser:      parser,
		highlighter: highlighter,
		resolver:    resolver,
		synonyms:    synonyms,
		logger:      logger,
	}
}

func (n *Normalizer) parseBlock(block, subject string) (component.ParsedBlock, error) {
	parsed, err := n.parser.Parse(block)
	if err != nil {
		return component.ParsedBlock{}, fmt.Errorf("normalize: parse %s: %w", subject, err)
	}
	if parsed.Tags == nil {
		parsed.Tags = map[string][]component.Tag{}
	}
	return parsed, nil
}
