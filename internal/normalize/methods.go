package normalize

import (
	"github.com/goliatone/go-docnorm/internal/tags"
	"github.com/goliatone/go-docnorm/pkg/component"
)

// Methods keeps only the methods whose annotation block declares an explicit
// public marker, preserving input order, and merges each survivor's
// parameter/return tags into the introspected descriptors. The synonym tag
// titles are scrubbed from the method's tag mapping afterwards; the merged
// descriptors are the source of truth.
func (n *Normalizer) Methods(doc *component.Doc) error {
	if len(doc.Methods) == 0 {
		return nil
	}

	kept := make([]component.Method, 0, len(doc.Methods))
	for _, method := range doc.Methods {
		if !n.parser.Doclets(method.Docblock).Public() {
			continue
		}

		parsed, err := n.parseBlock(method.Docblock, "method "+method.Name)
		if err != nil {
			return err
		}

		paramTags := tags.MergeSynonyms(parsed.Tags, n.synonyms.Params)
		for i := range method.Params {
			if occ, ok := firstMatch(paramTags, method.Params[i].Name); ok {
				method.Params[i].Description = occ.Description
				if method.Params[i].Type == "" {
					method.Params[i].Type = occ.Type
				}
			}
		}

		returnTags := tags.MergeSynonyms(parsed.Tags, n.synonyms.Returns)
		if method.Returns == nil && len(returnTags) > 0 {
			first := returnTags[0]
			method.Returns = &component.Return{
				Type:        first.Type,
				Description: first.Description,
			}
		}

		method.Tags = parsed.Tags
		kept = append(kept, method)
	}
	doc.Methods = kept
	return nil
}

// firstMatch returns the first occurrence documenting the named identifier.
// Introspected parameters with no matching occurrence are left as-is.
func firstMatch(occurrences []component.Tag, name string) (component.Tag, bool) {
	for _, occ := range occurrences {
		if occ.Name == name {
			return occ, true
		}
	}
	return component.Tag{}, false
}
