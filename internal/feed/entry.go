package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// entryMarker opens every posting in the feed body.
const entryMarker = "<entry>"

const atomNamespace = "http://www.w3.org/2005/Atom"

// SplitEntries cuts the feed body into one fragment per posting. Text before
// the first marker (the feed header) is discarded and every fragment starts
// with the marker.
func SplitEntries(body string) []string {
	parts := strings.Split(body, entryMarker)
	if len(parts) <= 1 {
		return nil
	}
	fragments := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		fragments = append(fragments, entryMarker+p)
	}
	return fragments
}

// rawEntry is the untransformed content of one <entry>: Atom children keyed by
// local name, prefixed extension fields (newton:*) keyed by local name, the
// category term and the raw summary markup.
type rawEntry struct {
	atom     map[string]string
	ext      map[string]string
	category string
	summary  string
}

// scanEntry walks the fragment with a non-strict XML tokenizer. For each
// child of <entry> only the first occurrence is kept. Reading stops at the
// closing </entry>, so trailing feed markup is ignored.
func scanEntry(fragment string) (rawEntry, error) {
	e := rawEntry{
		atom: make(map[string]string),
		ext:  make(map[string]string),
	}

	d := xml.NewDecoder(strings.NewReader(fragment))
	d.Strict = false
	d.AutoClose = xml.HTMLAutoClose
	d.Entity = xml.HTMLEntity

	if err := openEntry(d); err != nil {
		return e, err
	}

	seenCategory := false
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return e, nil
		}
		if err != nil {
			return e, fmt.Errorf("reading entry: %w", err)
		}

		switch t := tok.(type) {
		case xml.EndElement:
			return e, nil
		case xml.StartElement:
			atom := t.Name.Space == "" || t.Name.Space == atomNamespace
			fields := e.atom
			if !atom {
				fields = e.ext
			}
			name := t.Name.Local

			switch {
			case atom && name == "summary":
				raw, err := innerMarkup(d, fragment)
				if err != nil {
					return e, fmt.Errorf("reading summary: %w", err)
				}
				if _, dup := fields[name]; !dup {
					fields[name] = ""
					e.summary = raw
				}
			case atom && name == "category":
				text, err := elementText(d)
				if err != nil {
					return e, fmt.Errorf("reading category: %w", err)
				}
				if !seenCategory {
					seenCategory = true
					e.category = categoryTerm(t, text)
				}
			default:
				text, err := elementText(d)
				if err != nil {
					return e, fmt.Errorf("reading %s: %w", name, err)
				}
				if _, dup := fields[name]; !dup {
					fields[name] = strings.TrimSpace(text)
				}
			}
		}
	}
}

func openEntry(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return fmt.Errorf("looking for entry: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Local != "entry" {
				return fmt.Errorf("fragment starts with <%s>, want <entry>", start.Name.Local)
			}
			return nil
		}
	}
}

// elementText consumes tokens up to the end of the element just opened and
// returns its character data.
func elementText(d *xml.Decoder) (string, error) {
	var b strings.Builder
	for depth := 1; depth > 0; {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(t)
		}
	}
	return b.String(), nil
}

// innerMarkup returns the source text between the element just opened and its
// closing tag, still entity-encoded, with any CDATA wrapper removed.
func innerMarkup(d *xml.Decoder, fragment string) (string, error) {
	start := d.InputOffset()
	if err := d.Skip(); err != nil {
		return "", err
	}
	end := d.InputOffset()
	if start >= end || end > int64(len(fragment)) {
		return "", nil
	}
	raw := fragment[start:end]
	if i := strings.LastIndex(raw, "</"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "<![CDATA[")
	raw = strings.TrimSuffix(raw, "]]>")
	return raw, nil
}

func categoryTerm(start xml.StartElement, text string) string {
	for _, a := range start.Attr {
		if a.Name.Local == "term" && strings.TrimSpace(a.Value) != "" {
			return strings.TrimSpace(a.Value)
		}
	}
	return strings.TrimSpace(text)
}
