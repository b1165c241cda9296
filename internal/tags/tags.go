// Package tags implements synonym merging over parsed tag groups. The
// synonym sets are declarative so new spellings can be added without touching
// the merge logic.
package tags

import "github.com/goliatone/go-docnorm/pkg/component"

// Synonyms maps each canonical tag group to the titles treated as one logical
// tag. Params covers parameter documentation, Returns covers return-value
// documentation.
type Synonyms struct {
	Params  []string
	Returns []string
}

// Default returns the synonym table used when callers do not override it.
func Default() Synonyms {
	return Synonyms{
		Params:  []string{"param", "arg", "argument"},
		Returns: []string{"return", "returns"},
	}
}

// MergeSynonyms concatenates the occurrences recorded under any of the given
// titles, in the order the titles are listed and in encounter order within
// each title, and removes those titles from the group mapping so they do not
// leak into final tag output.
func MergeSynonyms(groups map[string][]component.Tag, titles []string) []component.Tag {
	var merged []component.Tag
	for _, title := range titles {
		merged = append(merged, groups[title]...)
		delete(groups, title)
	}
	return merged
}
