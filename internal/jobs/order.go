package jobs

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/amishk599/careerfeed/internal/filter"
	"github.com/amishk599/careerfeed/internal/model"
)

// Order selects how a job listing is sorted.
type Order string

const (
	OrderTitle     Order = "title"     // listing pages
	OrderPublished Order = "published" // map page, newest first
)

// ParseOrder accepts "title" or "published"; empty means title.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderTitle:
		return OrderTitle, nil
	case OrderPublished:
		return OrderPublished, nil
	}
	return "", fmt.Errorf("unknown order %q (want %q or %q)", s, OrderTitle, OrderPublished)
}

// Sort orders jobs in place.
func Sort(jobs []model.Job, order Order) {
	if order == OrderPublished {
		SortByPublished(jobs)
		return
	}
	SortByTitle(jobs)
}

// SortByTitle orders jobs alphabetically by title using English collation,
// which compares case-insensitively first. Ties fall back to the id.
func SortByTitle(jobs []model.Job) {
	col := collate.New(language.English)
	slices.SortStableFunc(jobs, func(a, b model.Job) int {
		if c := col.CompareString(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// SortByPublished orders jobs newest first. Jobs without a parseable
// published date go last, keeping their relative order.
func SortByPublished(jobs []model.Job) {
	slices.SortStableFunc(jobs, func(a, b model.Job) int {
		ta, okA := a.PublishedAt()
		tb, okB := b.PublishedAt()
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
}

// Departments returns the distinct non-empty departments, sorted, behind the
// "All departments" option.
func Departments(jobs []model.Job) []string {
	return facet(filter.AllDepartments, jobs, func(j model.Job) string { return j.Department })
}

// Locations returns the distinct "{location} ({locationType})" labels,
// sorted, behind the "All locations" option.
func Locations(jobs []model.Job) []string {
	return facet(filter.AllLocations, jobs, model.Job.LocationLabel)
}

func facet(all string, jobs []model.Job, key func(model.Job) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, j := range jobs {
		v := key(j)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{all}, values...)
}

// Slugs returns the slug of every job, in order.
func Slugs(jobs []model.Job) []string {
	slugs := make([]string, 0, len(jobs))
	for _, j := range jobs {
		slugs = append(slugs, j.Slug)
	}
	return slugs
}

// FindBySlug returns the first job with the given slug.
func FindBySlug(jobs []model.Job, slug string) (model.Job, bool) {
	for _, j := range jobs {
		if j.Slug == slug {
			return j, true
		}
	}
	return model.Job{}, false
}
