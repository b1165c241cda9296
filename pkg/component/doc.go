// Package component defines the documentation record that flows through the
// normalization pipeline together with the collaborator interfaces the
// pipeline depends on: the tag-grammar parser, the example loader, the
// example-settings parser, the highlighter, and the filesystem. Introspection
// engines construct a Doc, the pipeline mutates it in place, and the same Doc
// is handed back to the caller as the canonical documentation output.
package component
