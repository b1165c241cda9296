package normalize

import "github.com/goliatone/go-docnorm/pkg/component"

// Description processes the record's top-level documentation. With no
// description present, the doclets default to an empty mapping and nothing
// else happens. Otherwise the doclets are extracted, the description is
// parsed into tag groups, the annotation sections are stripped from the text,
// and the remainder is highlighted. Stripping runs before highlighting so
// annotation text is never highlighted. When both the example doclet and
// example tag occurrences are present, the occurrences are handed to the
// example resolver.
func (n *Normalizer) Description(doc *component.Doc, sourcePath string) error {
	if doc.Description == "" {
		if doc.Doclets == nil {
			doc.Doclets = component.Doclets{}
		}
		return nil
	}

	doc.Doclets = n.parser.Doclets(doc.Description)

	parsed, err := n.parseBlock(doc.Description, "description")
	if err != nil {
		return err
	}
	if doc.Tags == nil {
		doc.Tags = map[string][]component.Tag{}
	}
	// Merge rather than replace: reprocessing an already-stripped
	// description must not erase previously extracted tags.
	for title, occurrences := range parsed.Tags {
		doc.Tags[title] = append(doc.Tags[title], occurrences...)
	}

	doc.Description = n.highlighter.Highlight(n.parser.StripDoclets(doc.Description))

	if doc.Doclets.Example() && n.resolver != nil {
		if occurrences := doc.Tags[component.DocletExample]; len(occurrences) > 0 {
			n.resolver.Resolve(doc, occurrences, sourcePath)
		}
	}
	return nil
}
