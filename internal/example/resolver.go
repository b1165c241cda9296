// Package example classifies and resolves usage examples declared in a
// component's documentation: external file references load through the
// example-loading collaborator into the record's single example slot, inline
// fenced blocks with declared render intent queue onto the record's example
// list, and anything else is dropped with a warning.
package example

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-docnorm/pkg/component"
)

// LoaderPrefix is the fixed identifier prepended to the resolved file path to
// form the synthetic module specifier handed to the example loader.
const LoaderPrefix = "examples-loader!"

const fenceMarker = "```"

// Resolver drives example classification for one record at a time.
type Resolver struct {
	fs       component.FileSystem
	loader   component.ExampleLoader
	settings component.SettingsParser
	logger   *slog.Logger
	prefix   string
}

// NewResolver wires the resolver with its collaborators. A nil logger falls
// back to slog.Default; an empty prefix falls back to LoaderPrefix.
func NewResolver(fs component.FileSystem, loader component.ExampleLoader, settings component.SettingsParser, logger *slog.Logger, prefix string) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if prefix == "" {
		prefix = LoaderPrefix
	}
	return &Resolver{
		fs:       fs,
		loader:   loader,
		settings: settings,
		logger:   logger,
		prefix:   prefix,
	}
}

// Resolve processes the example tag occurrences for the record in declaration
// order. Occurrences are independent: a later occurrence's outcome never
// affects an earlier one's. Validation failures drop the occurrence and log a
// warning naming the source file path; they never abort the pipeline.
func (r *Resolver) Resolve(doc *component.Doc, occurrences []component.Tag, sourcePath string) {
	for _, occ := range occurrences {
		body := occ.Description
		trimmed := strings.TrimSpace(body)
		if trimmed == "" {
			continue
		}

		resolved := filepath.Join(filepath.Dir(sourcePath), trimmed)
		if r.fs != nil && r.fs.Exists(resolved) {
			r.resolveExternal(doc, resolved, sourcePath)
			continue
		}

		if strings.Contains(body, fenceMarker) {
			r.resolveInline(doc, body, sourcePath)
			continue
		}

		r.logger.Warn("example is not an existing file or a fenced code block",
			"reference", trimmed,
			"file", sourcePath,
		)
	}
}

// resolveExternal loads the referenced file and stores the opaque result in
// the record's single example slot. A second external occurrence overwrites
// the first; there is only one slot.
func (r *Resolver) resolveExternal(doc *component.Doc, resolved, sourcePath string) {
	loaded, err := r.loader.Load(r.prefix + resolved)
	if err != nil {
		r.logger.Warn("example file could not be loaded",
			"reference", resolved,
			"file", sourcePath,
			"error", err,
		)
		return
	}
	doc.Example = loaded
	doc.Doclets.Delete(component.DocletExample)
}

// resolveInline validates a fenced block. The second line of the occurrence
// body is the fence's opening line; its fence marker is stripped to obtain
// the header, the first two lines are discarded, and the remainder becomes
// the block content handed to the settings parser. Blocks without declared
// render intent are dropped with a warning, never partially rendered.
func (r *Resolver) resolveInline(doc *component.Doc, body, sourcePath string) {
	lines := strings.Split(body, "\n")
	header := ""
	if len(lines) > 1 {
		header = strings.TrimPrefix(strings.TrimLeft(lines[1], " \t"), fenceMarker)
	}
	content := ""
	if len(lines) > 2 {
		content = strings.Join(lines[2:], "\n")
	}

	settings, err := r.settings.Parse(content, header)
	if err != nil {
		r.logger.Warn("example settings could not be parsed",
			"file", sourcePath,
			"error", err,
		)
		return
	}
	if !settings.Render {
		r.logger.Warn("example block is missing the render modifier",
			"file", sourcePath,
		)
		return
	}

	doc.Examples = append(doc.Examples, body)
	doc.Doclets.Delete(component.DocletExample)
}
