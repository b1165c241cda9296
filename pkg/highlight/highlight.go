// Package highlight implements the default description highlighter: inline
// backtick spans become <code> elements and the result is sanitized so
// introspected documentation can never smuggle active markup into rendered
// output.
package highlight

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-docnorm/pkg/component"
)

var inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func descriptionPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("code", "pre")
		policy = p
	})
	return policy
}

// Inline implements component.Highlighter.
type Inline struct{}

var _ component.Highlighter = Inline{}

// New constructs the default highlighter.
func New() Inline {
	return Inline{}
}

// Highlight wraps inline code spans and sanitizes the result. Text that is
// already highlighted passes through unchanged, so running the pipeline twice
// over a clean description is a no-op.
func (Inline) Highlight(text string) string {
	if text == "" {
		return ""
	}
	marked := inlineCodePattern.ReplaceAllString(text, "<code>$1</code>")
	return descriptionPolicy().Sanitize(marked)
}
