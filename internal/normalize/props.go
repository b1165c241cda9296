package normalize

import "github.com/goliatone/go-docnorm/pkg/component"

// Props rewrites every prop's description to the tag-free text and attaches
// the parsed tag groups. A prop whose meta-annotations include the hidden
// marker is removed from the mapping entirely; its absence is what signals
// hidden status downstream. Props declared only through a defaults mechanism
// may have no description; that is empty text, not an error.
func (n *Normalizer) Props(doc *component.Doc) error {
	for name, prop := range doc.Props {
		if prop == nil {
			continue
		}

		doclets := n.parser.Doclets(prop.Description)

		parsed, err := n.parseBlock(prop.Description, "prop "+name)
		if err != nil {
			return err
		}
		prop.Description = parsed.Description
		prop.Tags = parsed.Tags

		// Deleting the current key while ranging is safe in Go; no other key
		// is skipped or visited twice.
		if doclets.Hidden() {
			delete(doc.Props, name)
		}
	}
	return nil
}
