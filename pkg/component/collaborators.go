package component

// ParsedBlock is the tag-grammar collaborator's view of one annotation block:
// the free-text description that precedes the first tag plus the tag groups
// keyed by title, occurrences in declaration order.
type ParsedBlock struct {
	Description string
	Tags        map[string][]Tag
}

// TagParser is the external tag-grammar collaborator. Parse failures on
// malformed annotation syntax are returned as errors and propagate to the
// pipeline caller; they are not recovered locally.
type TagParser interface {
	// Parse turns a raw annotation block into description text plus tag
	// groups.
	Parse(block string) (ParsedBlock, error)

	// Doclets extracts the meta-annotations declared in the text.
	Doclets(text string) Doclets

	// StripDoclets removes every annotation section from the text, keyed by
	// the same syntax Doclets recognizes.
	StripDoclets(text string) string
}

// ExampleLoader resolves a synthetic module specifier (a fixed loader prefix
// followed by the resolved example file path) into an opaque loaded value
// stored verbatim on the record.
type ExampleLoader interface {
	Load(specifier string) (any, error)
}

// SettingsParser interprets an inline fenced block. It receives the block's
// content and the fence header (the opening line with the fence marker
// stripped) and returns the declared settings.
type SettingsParser interface {
	Parse(content, header string) (ExampleSettings, error)
}

// Highlighter applies inline-code highlighting to description text. It runs
// after doclet stripping so annotation text is never highlighted.
type Highlighter interface {
	Highlight(text string) string
}

// FileSystem is the filesystem collaborator used for external example
// references. A false Exists is a definitive not-found, never a transient
// condition.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}
