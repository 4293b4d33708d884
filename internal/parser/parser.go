// Package parser extracts wikilinks and heading-bounded sections from
// Markdown note text.
package parser

import (
	"regexp"
	"strings"
)

var wikilinkRe = regexp.MustCompile(`\[\[(.*?)\]\]`)

// imageExtensions are link targets that denote embedded media rather than
// note cross-references.
var imageExtensions = []string{".png", ".jpg"}

// Ref is a parsed wikilink reference. Alias text ([[target|alias]]) is
// display-only and already discarded; only the target governs resolution.
type Ref struct {
	Name    string
	Section string // empty when no #section anchor was present
}

// ParseRef splits a raw link target into note name and optional section
// anchor. The raw form is "name", "name#section" or "name|alias", with the
// section split taken first so "name#section|alias" keeps the full
// "section|alias" remainder out of the name part.
func ParseRef(raw string) Ref {
	name := raw
	section := ""
	if i := strings.Index(name, "#"); i >= 0 {
		section = name[i+1:]
		name = name[:i]
	}
	if i := strings.Index(name, "|"); i >= 0 {
		name = name[:i]
	}
	return Ref{Name: name, Section: section}
}

// StripExtension removes a single trailing ".md" from a user-supplied note
// name, so "ideas.md" and "ideas" resolve identically.
func StripExtension(name string) string {
	return strings.TrimSuffix(name, ".md")
}

// ExtractLinks returns the ordered, distinct raw wikilink targets found in
// text. The scan is left to right and non-overlapping; an opening "[[" with
// no matching "]]" before end of text is skipped. Targets whose
// alias/section-stripped stem ends in an image extension are excluded.
func ExtractLinks(text string) []string {
	matches := wikilinkRe.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		raw := m[1]
		if isImageTarget(raw) {
			continue
		}
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}
		out = append(out, raw)
	}
	return out
}

func isImageTarget(raw string) bool {
	stem := ParseRef(raw).Name
	for _, ext := range imageExtensions {
		if strings.HasSuffix(stem, ext) {
			return true
		}
	}
	return false
}
