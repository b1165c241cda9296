package normalize

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-docnorm/pkg/component"
)

// Finalize fills in a missing display name from the source file path and
// promotes the visibleName doclet into its dedicated field, deleting the
// marker from both the doclets and tags mappings so it never leaks into
// generic tag output. A pre-set display name is left untouched regardless of
// path.
func (n *Normalizer) Finalize(doc *component.Doc, sourcePath string) {
	if doc.DisplayName == "" && sourcePath != "" {
		doc.DisplayName = DisplayNameFromPath(sourcePath)
	}

	if label, ok := doc.Doclets.VisibleName(); ok {
		doc.VisibleName = label
		doc.Doclets.Delete(component.DocletVisibleName)
		delete(doc.Tags, component.DocletVisibleName)
	}
}

// DisplayNameFromPath derives a component name from its source file path:
// the base file name with the extension stripped, falling back to the parent
// directory for index files.
func DisplayNameFromPath(sourcePath string) string {
	base := filepath.Base(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.EqualFold(name, "index") {
		parent := filepath.Base(filepath.Dir(sourcePath))
		if parent != "." && parent != string(filepath.Separator) {
			return parent
		}
	}
	return name
}
