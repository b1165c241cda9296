// Package settings implements the default example-settings collaborator. A
// fence header is a language word followed by bare modifiers ("js render"),
// optionally ending in a YAML flow map for everything richer
// ("js { render: true, line: 4 }").
package settings

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docnorm/pkg/component"
)

// Parser implements component.SettingsParser.
type Parser struct{}

var _ component.SettingsParser = Parser{}

// New constructs the default settings parser.
func New() Parser {
	return Parser{}
}

// Parse interprets the fence header. The block content is accepted for
// interface compatibility; the default grammar derives settings from the
// header alone.
func (Parser) Parse(_, header string) (component.ExampleSettings, error) {
	var out component.ExampleSettings

	h := strings.TrimSpace(header)
	if i := strings.Index(h, "{"); i >= 0 {
		payload := h[i:]
		h = strings.TrimSpace(h[:i])

		extra := map[string]any{}
		if err := yaml.Unmarshal([]byte(payload), &extra); err != nil {
			return component.ExampleSettings{}, fmt.Errorf("example settings: parse header map: %w", err)
		}
		if render, ok := extra["render"].(bool); ok {
			out.Render = render
			delete(extra, "render")
		}
		if len(extra) > 0 {
			out.Extra = extra
		}
	}

	words := strings.Fields(h)
	if len(words) > 0 {
		out.Lang = words[0]
	}
	for _, word := range words[1:] {
		switch word {
		case "render":
			out.Render = true
		case "static":
			out.Render = false
		}
	}
	return out, nil
}
