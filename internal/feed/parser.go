package feed

import (
	"fmt"
	"log/slog"

	"github.com/amishk599/careerfeed/internal/markup"
	"github.com/amishk599/careerfeed/internal/model"
	"github.com/amishk599/careerfeed/internal/section"
)

// Stats counts what happened to the entries of one feed body.
type Stats struct {
	Entries int // fragments found after the header
	Parsed  int // valid records produced
	Invalid int // parsed but missing id or title
	Failed  int // fragments the tokenizer rejected
}

// Parser turns feed entries into job records.
type Parser struct {
	links           Links
	defaultWhoWeAre string
	logger          *slog.Logger
}

// NewParser creates a parser. defaultWhoWeAre, when non-empty, stands in for
// postings that have no "Who We Are" section.
func NewParser(links Links, defaultWhoWeAre string, logger *slog.Logger) *Parser {
	return &Parser{
		links:           links,
		defaultWhoWeAre: defaultWhoWeAre,
		logger:          logger,
	}
}

// ParseFeed parses every entry of a feed body. Entries that fail to parse or
// lack an id or title are logged and left out; they never stop the rest.
func (p *Parser) ParseFeed(body []byte) ([]model.Job, Stats) {
	fragments := SplitEntries(string(body))
	stats := Stats{Entries: len(fragments)}

	jobs := make([]model.Job, 0, len(fragments))
	for i, fragment := range fragments {
		job, err := p.ParseEntry(fragment)
		if err != nil {
			stats.Failed++
			p.logger.Warn("skipping unparseable entry", "index", i, "error", err)
			continue
		}
		if !job.Valid() {
			stats.Invalid++
			p.logger.Debug("skipping entry without id or title", "index", i, "id", job.ID)
			continue
		}
		jobs = append(jobs, job)
	}
	stats.Parsed = len(jobs)
	return jobs, stats
}

// ParseEntry parses one <entry> fragment. Missing optional fields become empty
// strings or empty lists; the caller checks Valid.
func (p *Parser) ParseEntry(fragment string) (model.Job, error) {
	raw, err := scanEntry(fragment)
	if err != nil {
		return model.Job{}, fmt.Errorf("parse entry: %w", err)
	}

	id := raw.atom["id"]
	title := markup.DecodeEntities(raw.atom["title"])

	department := raw.ext["department"]
	if department == "" {
		department = raw.category
	}
	department = markup.DecodeEntities(department)

	location := raw.ext["location"]
	state := raw.ext["state"]
	country := raw.ext["country"]
	jobID := raw.ext["jobId"]

	body := markup.DecodeEntities(raw.summary)
	content := section.ExtractAll(body, section.Narrative)

	whoWeAre := content.Text[section.WhoWeAre]
	if whoWeAre == "" {
		whoWeAre = p.defaultWhoWeAre
	}
	whatWeLookFor := content.Text[section.WhatWeLookFor]

	return model.Job{
		ID:           id,
		Slug:         Slug(title, SlugKey(jobID, id)),
		JobID:        jobID,
		Title:        title,
		Department:   department,
		Type:         model.EmploymentTypeFullTime,
		LocationType: ClassifyLocation(raw.ext["remotetype"], location, state),
		Location:     FormatLocation(location, state, country),
		State:        state,
		Country:      country,
		PostalCode:   raw.ext["postal_code"],
		ApplyURL:     p.links.ApplyURL(id),
		Published:    raw.atom["published"],
		Updated:      raw.atom["updated"],
		Summary:      Summarize(markup.PlainText(whatWeLookFor), summaryLimit),

		WhoWeAre:              whoWeAre,
		WhatWeLookFor:         whatWeLookFor,
		Responsibilities:      content.List(section.Responsibilities),
		Skills:                content.List(section.Skills),
		MinimumQualifications: content.List(section.MinimumQualifications),
		DesiredQualifications: content.List(section.DesiredQualifications),
		Benefits:              content.List(section.Benefits),
	}, nil
}
