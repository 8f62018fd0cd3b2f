package feed

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/amishk599/careerfeed/internal/model"
)

const (
	maxSlugTitleLen = 60
	summaryLimit    = 200
	virtualLocation = "virtual"
	domesticCountry = "United States"
	virtualLabel    = "USA"
)

var slugSeparatorRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug builds the URL path segment for a posting: the lower-cased title with
// every run of other characters turned into one hyphen, trimmed, cut to 60
// characters and suffixed with -key (the requisition code).
func Slug(title, key string) string {
	s := slugSeparatorRe.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugTitleLen {
		s = strings.TrimRight(s[:maxSlugTitleLen], "-")
	}
	switch {
	case key == "":
		return s
	case s == "":
		return key
	}
	return s + "-" + key
}

// SlugKey returns the suffix for Slug: the requisition code, or, when the feed
// has none, the entry id folded into the same lower-case hyphenated form.
func SlugKey(jobID, id string) string {
	if jobID != "" {
		return jobID
	}
	return strings.Trim(slugSeparatorRe.ReplaceAllString(strings.ToLower(id), "-"), "-")
}

// ClassifyLocation decides where a posting is worked from. The feed's remote
// type field wins; the location and state strings are only a fallback.
func ClassifyLocation(remoteType, location, state string) model.LocationType {
	rt := strings.ToLower(remoteType)
	switch {
	case strings.Contains(rt, "remote"):
		return model.LocationRemote
	case strings.Contains(rt, "hybrid"):
		return model.LocationHybrid
	}

	loc := strings.ToLower(location)
	if loc == virtualLocation || strings.ToLower(state) == virtualLocation || strings.Contains(loc, "remote") {
		return model.LocationRemote
	}
	return model.LocationOnsite
}

// FormatLocation builds the display location. A real state is appended to the
// city; virtual postings show the country label; a foreign country replaces
// the state.
func FormatLocation(location, state, country string) string {
	formatted := location
	switch {
	case state != "" && !strings.EqualFold(state, virtualLocation):
		formatted = location + ", " + state
	case strings.EqualFold(state, virtualLocation) || strings.EqualFold(location, virtualLocation):
		formatted = virtualLabel
	}
	if country != "" && country != domesticCountry {
		formatted = location + ", " + country
	}
	return formatted
}

// Summarize returns the first limit characters of s, with "..." appended when
// s was longer.
func Summarize(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
