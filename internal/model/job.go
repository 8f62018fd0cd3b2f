package model

import (
	"context"
	"strings"
	"time"
)

// LocationType classifies where a posting is worked from.
type LocationType string

const (
	LocationOnsite LocationType = "Onsite"
	LocationRemote LocationType = "Remote"
	LocationHybrid LocationType = "Hybrid"
)

// EmploymentTypeFullTime is the only employment type the feed publishes.
const EmploymentTypeFullTime = "Full-Time"

// Job is one parsed posting from the careers feed, with list-view fields and
// the narrative sections used by the detail page.
type Job struct {
	ID           string       `json:"id"`    // opaque feed id
	Slug         string       `json:"slug"`  // derived from title + job id
	JobID        string       `json:"jobId"` // requisition code shown to candidates
	Title        string       `json:"title"`
	Department   string       `json:"department"`
	Type         string       `json:"type"`
	LocationType LocationType `json:"locationType"`
	Location     string       `json:"location"` // display string, see FormatLocation
	State        string       `json:"state"`
	Country      string       `json:"country"`
	PostalCode   string       `json:"postalCode"`
	ApplyURL     string       `json:"applyUrl"`
	Published    string       `json:"publishedDate"` // raw feed timestamp
	Updated      string       `json:"updatedDate"`   // raw feed timestamp
	Summary      string       `json:"summary"`

	WhoWeAre              string   `json:"whoWeAre"`      // limited rich text
	WhatWeLookFor         string   `json:"whatWeLookFor"` // limited rich text
	Responsibilities      []string `json:"responsibilities"`
	Skills                []string `json:"skills"`
	MinimumQualifications []string `json:"minimumQualifications"`
	DesiredQualifications []string `json:"desiredQualifications"`
	Benefits              []string `json:"benefits"`
}

// Valid reports whether the record carries the fields every consumer needs.
func (j Job) Valid() bool {
	return j.ID != "" && j.Title != ""
}

// LocationLabel is the "{location} ({locationType})" string used by the
// location filter.
func (j Job) LocationLabel() string {
	return j.Location + " (" + string(j.LocationType) + ")"
}

var publishedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PublishedAt parses the raw published timestamp. The second return value is
// false when the feed value is empty or in an unknown format.
func (j Job) PublishedAt() (time.Time, bool) {
	raw := strings.TrimSpace(j.Published)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FeedSource returns the raw body of the upstream careers feed.
type FeedSource interface {
	FetchFeed(ctx context.Context) ([]byte, error)
}

// JobFilter decides whether a job matches the caller's criteria.
type JobFilter interface {
	Match(job Job) bool
}
