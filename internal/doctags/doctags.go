// Package doctags implements the default tag-grammar collaborator: a
// line-oriented parser for documentation-comment annotation blocks. A block
// is free text followed by @-prefixed tag sections; each section runs from
// its @-line to the next @-line. Parameter-family tags accept an optional
// {type} expression and an identifier before the description.
package doctags

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-docnorm/pkg/component"
)

// Parser implements component.TagParser.
type Parser struct{}

// Ensure the implementation satisfies the collaborator interface.
var _ component.TagParser = (*Parser)(nil)

// New constructs the default tag parser.
func New() *Parser {
	return &Parser{}
}

// identTitles are the tag titles that declare an identifier before their
// description. typedTitles accept a {type} expression but no identifier.
var (
	identTitles = map[string]bool{
		"param": true, "arg": true, "argument": true,
		"prop": true, "property": true,
	}
	typedTitles = map[string]bool{
		"return": true, "returns": true, "throws": true,
	}
)

// Doclets extracts the meta-annotations declared in the text. A bare marker
// such as @public maps to an empty value; the first declaration of a name
// wins when it repeats.
func (p *Parser) Doclets(text string) component.Doclets {
	doclets := component.Doclets{}
	for _, line := range strings.Split(text, "\n") {
		title, rest, ok := splitTagLine(line)
		if !ok {
			continue
		}
		if _, seen := doclets[title]; seen {
			continue
		}
		doclets[title] = strings.TrimSpace(rest)
	}
	return doclets
}

// StripDoclets removes every annotation section from the text. Sections run
// from the first @-line to the end of the block, so the result is the free
// text that precedes the first tag. Stripping an already-clean text returns
// it unchanged.
func (p *Parser) StripDoclets(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if _, _, ok := splitTagLine(line); ok {
			return strings.TrimRight(strings.Join(lines[:i], "\n"), " \t\n")
		}
	}
	return text
}

// Parse turns a raw annotation block into description text plus tag groups,
// occurrences in declaration order.
func (p *Parser) Parse(block string) (component.ParsedBlock, error) {
	parsed := component.ParsedBlock{Tags: map[string][]component.Tag{}}

	lines := strings.Split(block, "\n")
	i := 0
	for ; i < len(lines); i++ {
		if _, _, ok := splitTagLine(lines[i]); ok {
			break
		}
	}
	parsed.Description = strings.TrimSpace(strings.Join(lines[:i], "\n"))

	for i < len(lines) {
		start := i
		for i++; i < len(lines); i++ {
			if _, _, ok := splitTagLine(lines[i]); ok {
				break
			}
		}
		tag, err := p.parseSection(lines[start], lines[start+1:i])
		if err != nil {
			return component.ParsedBlock{}, err
		}
		parsed.Tags[tag.Title] = append(parsed.Tags[tag.Title], tag)
	}
	return parsed, nil
}

func (p *Parser) parseSection(first string, rest []string) (component.Tag, error) {
	title, body, _ := splitTagLine(first)
	if len(rest) > 0 {
		body += "\n" + strings.Join(rest, "\n")
	}

	tag := component.Tag{Title: title, Description: body}
	if !identTitles[title] && !typedTitles[title] {
		return tag, nil
	}

	typ, remainder, err := splitTypeExpression(body)
	if err != nil {
		return component.Tag{}, fmt.Errorf("doctags: parse @%s: %w", title, err)
	}
	tag.Type = typ

	if identTitles[title] {
		name, desc := splitIdentifier(remainder)
		if name == "" {
			return component.Tag{}, fmt.Errorf("doctags: parse @%s: missing identifier", title)
		}
		tag.Name = name
		tag.Description = desc
		return tag, nil
	}

	tag.Description = strings.TrimSpace(remainder)
	return tag, nil
}

// splitTagLine reports whether the line opens a tag section and, if so,
// returns the title and the remainder of the line.
func splitTagLine(line string) (title, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "@") {
		return "", "", false
	}
	trimmed = trimmed[1:]
	end := 0
	for end < len(trimmed) && isWordByte(trimmed[end]) {
		end++
	}
	if end == 0 {
		return "", "", false
	}
	return trimmed[:end], trimmed[end:], true
}

// splitTypeExpression consumes a leading {type} expression, honouring nested
// braces. Malformed annotation syntax is a hard parse failure.
func splitTypeExpression(s string) (typ, rest string, err error) {
	trimmed := strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(trimmed, "{") {
		return "", s, nil
	}
	depth := 0
	for idx, r := range trimmed {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return trimmed[1:idx], trimmed[idx+1:], nil
			}
		}
	}
	return "", "", errors.New("unterminated type expression")
}

// splitIdentifier takes the first whitespace-delimited token as the declared
// identifier and returns the remaining text as the description.
func splitIdentifier(s string) (name, desc string) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	cut := strings.IndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		return trimmed, ""
	}
	return trimmed[:cut], strings.TrimSpace(trimmed[cut:])
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
