// Package link implements the inline link and tag grammar.
//
// Link grammar:
//
//	[[identifier]]
//	[title] [[identifier]]
//
// A link's only semantic content is the identifier it carries. Recognition
// here is purely textual: whether an identifier currently resolves to a note
// is the resolver's concern, not the grammar's.
package link

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/zetkit/zet/internal/ident"
)

// tagRe matches inline classification tags like #tag-one.
var tagRe = regexp.MustCompile(`#[A-Za-z0-9_-]+`)

// Grammar recognizes link and tag syntax for one identifier configuration.
type Grammar struct {
	ident  ident.Config
	idRe   *regexp.Regexp
	linkRe *regexp.Regexp
}

// NewGrammar builds a Grammar for the given identifier configuration.
func NewGrammar(cfg ident.Config) (*Grammar, error) {
	src := cfg.PatternSource()

	idRe, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile identifier pattern: %w", err)
	}
	linkRe, err := regexp.Compile(`\[\[(` + src + `)\]\]`)
	if err != nil {
		return nil, fmt.Errorf("compile link pattern: %w", err)
	}

	return &Grammar{ident: cfg, idRe: idRe, linkRe: linkRe}, nil
}

// FormatLink renders the bare link form for an identifier.
func FormatLink(id string) string {
	return "[[" + id + "]]"
}

// FormatLinkWithTitle renders the titled link form.
func FormatLinkWithTitle(title, id string) string {
	if title == "" {
		return FormatLink(id)
	}
	return "[" + title + "] " + FormatLink(id)
}

// ExtractIdentifier extracts the first identifier substring from arbitrary
// text (a filename, a line, a clipboard paste). First match wins.
func (g *Grammar) ExtractIdentifier(text string) (string, bool) {
	m := g.idRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// IdentifierAt reports the identifier whose match touches the given byte
// offset, for follow-link-under-cursor. Returns false when no identifier
// touches the offset.
func (g *Grammar) IdentifierAt(text string, offset int) (string, bool) {
	if offset < 0 || offset > len(text) {
		return "", false
	}
	for _, m := range g.idRe.FindAllStringIndex(text, -1) {
		if m[0] > offset {
			break
		}
		if offset <= m[1] {
			return text[m[0]:m[1]], true
		}
	}
	return "", false
}

// ExtractLinks returns the identifiers of all [[...]] links in a note body,
// in order of appearance, duplicates included. Links inside code regions
// are ignored.
func (g *Grammar) ExtractLinks(body string) []string {
	masked := MaskCodeRegions(body)

	var ids []string
	for _, m := range g.linkRe.FindAllStringSubmatch(masked, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

// ExtractTags scans arbitrary text for tags, skipping code regions.
// The result is case-normalized, de-duplicated, and sorted; tag uniqueness
// exists only here, at enumeration time.
func ExtractTags(corpus string) []string {
	masked := MaskCodeRegions(corpus)

	seen := make(map[string]struct{})
	for _, tag := range tagRe.FindAllString(masked, -1) {
		seen[strings.ToLower(tag)] = struct{}{}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
