package feed

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the recruiting system's career endpoint root.
const DefaultBaseURL = "https://recruitingbypaycor.com/career"

// Links builds the vendor URLs for one client account.
type Links struct {
	BaseURL  string
	ClientID string
	Language string
}

func (l Links) base() string {
	if l.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(l.BaseURL, "/")
}

// FeedURL is the Atom feed listing every open posting for the client.
func (l Links) FeedURL() string {
	return fmt.Sprintf("%s/CareerAtomFeed.action?clientId=%s", l.base(), url.QueryEscape(l.ClientID))
}

// ApplyURL is the candidate-facing application page for the entry id.
func (l Links) ApplyURL(id string) string {
	lang := l.Language
	if lang == "" {
		lang = "en"
	}
	return fmt.Sprintf("%s/JobIntroduction.action?clientId=%s&id=%s&source=&lang=%s",
		l.base(), url.QueryEscape(l.ClientID), url.QueryEscape(id), url.QueryEscape(lang))
}
