package markup

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const lineBreak = "<br />"

var (
	brTagRe        = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloseRe   = regexp.MustCompile(`(?i)</(p|div)\s*>`)
	blockOpenRe    = regexp.MustCompile(`(?i)<(p|div)(\s[^>]*)?/?>`)
	emOpenRe       = regexp.MustCompile(`(?i)<(i|em)(\s[^>]*)?>`)
	emCloseRe      = regexp.MustCompile(`(?i)</(i|em)\s*>`)
	strongOpenRe   = regexp.MustCompile(`(?i)<(b|strong)(\s[^>]*)?>`)
	strongCloseRe  = regexp.MustCompile(`(?i)</(b|strong)\s*>`)
	repeatedBreaks = regexp.MustCompile(`(<br />\s*){3,}`)
	inlineSpaceRe  = regexp.MustCompile(`[ \t]+`)
	breakSpaceRe   = regexp.MustCompile(`\s*<br />\s*`)
)

// richTextPolicy keeps line breaks and emphasis only. Everything else is
// removed; script and style bodies are dropped together with their tags.
var richTextPolicy = bluemonday.NewPolicy().AllowElements("br", "em", "strong")

// textUnescaper undoes the quote and ampersand escaping bluemonday applies to
// text. Angle brackets stay escaped.
var textUnescaper = strings.NewReplacer(
	"&#39;", "'",
	"&#34;", `"`,
	"&quot;", `"`,
	"&amp;", "&",
)

// Sanitize reduces markup to <br />, <em> and <strong>. Paragraph and div
// boundaries become line breaks, <i>/<b> are folded into <em>/<strong>, runs of
// three or more breaks shrink to two and leading/trailing breaks are trimmed.
// Text keeps quotes and ampersands as written; only < and > in text come back
// escaped.
func Sanitize(s string) string {
	s = brTagRe.ReplaceAllString(s, lineBreak)
	s = blockCloseRe.ReplaceAllString(s, lineBreak)
	s = blockOpenRe.ReplaceAllString(s, "")
	s = emOpenRe.ReplaceAllString(s, "<em>")
	s = emCloseRe.ReplaceAllString(s, "</em>")
	s = strongOpenRe.ReplaceAllString(s, "<strong>")
	s = strongCloseRe.ReplaceAllString(s, "</strong>")

	s = textUnescaper.Replace(richTextPolicy.Sanitize(s))

	// bluemonday re-serialises <br /> as <br/>.
	s = brTagRe.ReplaceAllString(s, lineBreak)
	s = repeatedBreaks.ReplaceAllString(s, lineBreak+lineBreak)
	s = inlineSpaceRe.ReplaceAllString(s, " ")
	s = breakSpaceRe.ReplaceAllString(s, lineBreak)

	s = strings.TrimSpace(s)
	for strings.HasPrefix(s, lineBreak) {
		s = strings.TrimSpace(strings.TrimPrefix(s, lineBreak))
	}
	for strings.HasSuffix(s, lineBreak) {
		s = strings.TrimSpace(strings.TrimSuffix(s, lineBreak))
	}
	return s
}
