// Package markup holds the small text helpers used to turn feed markup into
// plain text or into a restricted subset of HTML.
package markup

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	breakRegex   = regexp.MustCompile(`(?i)<br\s*/?>`)
)

var punctuation = strings.NewReplacer(
	"\u00a0", " ",
	"\u2018", "'",
	"\u2019", "'",
	"\u201c", `"`,
	"\u201d", `"`,
)

// DecodeEntities unescapes HTML/XML character references and folds curly
// quotes and non-breaking spaces to ASCII. Decoding repeats until the text is
// stable, so double-encoded input (&amp;lt;) comes out fully decoded and
// DecodeEntities(DecodeEntities(s)) == DecodeEntities(s).
func DecodeEntities(s string) string {
	for {
		next := punctuation.Replace(html.UnescapeString(s))
		if next == s {
			return next
		}
		s = next
	}
}

// StripTags removes every <...> tag, collapses whitespace runs (newlines
// included) to single spaces and trims the result.
func StripTags(s string) string {
	return CollapseSpace(htmlTagRegex.ReplaceAllString(s, ""))
}

// CollapseSpace collapses whitespace runs to a single space and trims.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PlainText turns sanitized rich text into a single line of plain text. Line
// breaks become spaces and escaped angle brackets are restored.
func PlainText(s string) string {
	s = breakRegex.ReplaceAllString(s, " ")
	s = htmlTagRegex.ReplaceAllString(s, "")
	return CollapseSpace(html.UnescapeString(s))
}
