package filter

import (
	"strings"

	"github.com/amishk599/careerfeed/internal/model"
)

// Sentinel option values meaning "no filter", as offered by the listing page.
const (
	AllDepartments = "All departments"
	AllLocations   = "All locations"
)

var _ model.JobFilter = Criteria{}

// Criteria narrows a job listing the way the careers page dropdowns and
// search box do. Empty fields and the "All ..." sentinels match everything.
type Criteria struct {
	Department string // exact department name, case-insensitive
	Location   string // "{location} ({locationType})" label from the location list
	Query      string // free text matched as one substring against searchable fields
}

// Match returns true if the job satisfies every non-empty criterion.
func (c Criteria) Match(job model.Job) bool {
	if d := strings.TrimSpace(c.Department); d != "" && d != AllDepartments {
		if !strings.EqualFold(job.Department, d) {
			return false
		}
	}

	if l := strings.TrimSpace(c.Location); l != "" && l != AllLocations {
		if !strings.EqualFold(job.LocationLabel(), l) {
			return false
		}
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" && !containsQuery(job, q) {
		return false
	}

	return true
}

// Apply returns the jobs that match f, preserving order. The result is never nil.
func Apply(jobs []model.Job, f model.JobFilter) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Match(j) {
			out = append(out, j)
		}
	}
	return out
}

// containsQuery reports whether the lower-cased query q occurs in any field a
// visitor can search by.
func containsQuery(job model.Job, q string) bool {
	fields := []string{
		job.Title,
		job.Department,
		job.Location,
		string(job.LocationType),
		string(job.Type),
		job.JobID,
		job.Summary,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
