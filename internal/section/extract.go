package section

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/amishk599/careerfeed/internal/markup"
)

// minParagraphLen is the plain-text length a block must exceed to count as a
// paragraph; shorter blocks are labels or spacing.
const minParagraphLen = 20

// paragraphSeparator joins kept paragraphs in rich text.
const paragraphSeparator = "<br /><br />"

// ListItems returns the text of every <li> inside the section introduced by
// one of start, in document order. Items are plain text with whitespace
// collapsed; empty items are skipped. A missing section yields an empty,
// non-nil slice.
func ListItems(text string, start, next []string) []string {
	items := []string{}
	body, ok := Locate(text, start, next)
	if !ok {
		return items
	}
	doc, err := parseFragment(body)
	if err != nil {
		return items
	}

	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		// Nested lists are reported as items of their own.
		own := li.Clone()
		own.Find("ul, ol").Remove()
		if t := markup.CollapseSpace(own.Text()); t != "" {
			items = append(items, t)
		}
	})
	return items
}

// Text returns the paragraphs of the section introduced by one of start as
// limited rich text (see markup.Sanitize), joined by a blank line. Each <div>
// contributes its own text, without nested <div> blocks, when that text is
// longer than minParagraphLen; blocks that are nothing but an underlined label
// are skipped. A missing section yields "".
func Text(text string, start, next []string) string {
	body, ok := Locate(text, start, next)
	if !ok {
		return ""
	}
	doc, err := parseFragment(body)
	if err != nil {
		return ""
	}

	var paragraphs []string
	doc.Find("div").Each(func(_ int, div *goquery.Selection) {
		// Nested divs are visited on their own; only the block's own text counts here.
		own := div.Clone()
		own.Find("div").Remove()
		plain := markup.CollapseSpace(own.Text())
		if utf8.RuneCountInString(plain) <= minParagraphLen || isUnderlinedLabel(own, plain) {
			return
		}
		inner, err := own.Html()
		if err != nil {
			return
		}
		if p := markup.Sanitize(inner); p != "" {
			paragraphs = append(paragraphs, p)
		}
	})
	return strings.TrimSpace(strings.Join(paragraphs, paragraphSeparator))
}

// isUnderlinedLabel reports whether every character of the block sits inside
// <u> elements.
func isUnderlinedLabel(div *goquery.Selection, plain string) bool {
	u := div.Find("u")
	if u.Length() == 0 {
		return false
	}
	return markup.CollapseSpace(u.Text()) == plain
}

func parseFragment(body string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}
