// Package section finds named sections inside a posting's free-text body and
// extracts list items or paragraphs from them. Sections are delimited by
// header text, not by markup, so feeds that rename, reorder or omit headers
// still parse.
package section

import (
	"slices"
	"strings"
)

// Catalog lists every section header known to appear in the feed. It is the
// fallback boundary table when a section's expected successor is missing.
var Catalog = []string{
	"Who We Are",
	"What We Are Looking For",
	"What You'll Be Doing",
	"The Skills You Bring",
	"Skills and Training",
	"Minimum Qualifications",
	"Required Qualifications",
	"Desired Qualifications",
	"What We Offer",
}

// Match is a header found in the text.
type Match struct {
	Header string
	Index  int
}

// FindStart returns the first alias that occurs in text. Aliases are tried in
// priority order, each by its first occurrence, so an earlier alias wins even
// when a later one appears first in the text.
func FindStart(text string, aliases []string) (Match, bool) {
	return findFrom(text, 0, aliases)
}

func findFrom(text string, from int, aliases []string) (Match, bool) {
	if from > len(text) {
		return Match{}, false
	}
	for _, alias := range aliases {
		if alias == "" {
			continue
		}
		if i := strings.Index(text[from:], alias); i >= 0 {
			return Match{Header: alias, Index: from + i}, true
		}
	}
	return Match{}, false
}

// FindEnd returns where the section that begins at from stops. The first of
// next found after from wins; otherwise the earliest catalog header after from
// (ignoring own) ends the section; otherwise the text runs to its end.
func FindEnd(text string, from int, own, next []string) int {
	if m, ok := findFrom(text, from, next); ok {
		return m.Index
	}

	end := len(text)
	for _, header := range Catalog {
		if slices.Contains(own, header) {
			continue
		}
		if i := strings.Index(text[from:], header); i >= 0 && from+i < end {
			end = from + i
		}
	}
	return end
}

// Locate returns the body of the section introduced by one of start: the text
// after the matched header up to the boundary computed by FindEnd. ok is false
// when no start alias occurs.
func Locate(text string, start, next []string) (body string, ok bool) {
	m, found := FindStart(text, start)
	if !found {
		return "", false
	}
	from := m.Index + len(m.Header)
	end := FindEnd(text, from, start, next)
	return text[from:end], true
}
