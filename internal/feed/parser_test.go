package feed

import (
	"html"
	"strings"
	"testing"

	"github.com/amishk599/careerfeed/internal/model"
)

func TestParseEntry_Fields(t *testing.T) {
	fragment := entryXML("8a78abc", "Senior Software Engineer &amp; Architect", "SE123", "2024-05-01T10:00:00Z", chicagoHybrid)

	job, err := testParser().ParseEntry(fragment)
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}

	checks := map[string][2]string{
		"ID":         {job.ID, "8a78abc"},
		"Title":      {job.Title, "Senior Software Engineer & Architect"},
		"Slug":       {job.Slug, "senior-software-engineer-architect-SE123"},
		"JobID":      {job.JobID, "SE123"},
		"Department": {job.Department, "Technology"},
		"Location":   {job.Location, "Chicago, IL"},
		"State":      {job.State, "IL"},
		"Country":    {job.Country, "United States"},
		"PostalCode": {job.PostalCode, "60606"},
		"Published":  {job.Published, "2024-05-01T10:00:00Z"},
		"Updated":    {job.Updated, "2024-05-02T10:00:00Z"},
		"Type":       {job.Type, "Full-Time"},
		"ApplyURL":   {job.ApplyURL, "https://jobs.example.com/career/JobIntroduction.action?clientId=client1&id=8a78abc&source=&lang=en"},
	}
	for field, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", field, c[0], c[1])
		}
	}
	if job.LocationType != model.LocationHybrid {
		t.Errorf("LocationType = %q, want Hybrid", job.LocationType)
	}
}

func TestParseEntry_Narrative(t *testing.T) {
	job, err := testParser().ParseEntry(entryXML("1", "Engineer", "E1", "", chicagoHybrid))
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}

	if job.WhoWeAre != "We are an online brokerage focused on the ultimate trading experience." {
		t.Errorf("WhoWeAre = %q", job.WhoWeAre)
	}
	wantLook := "A backend engineer who likes <em>low-latency</em> systems & clear APIs."
	if job.WhatWeLookFor != wantLook {
		t.Errorf("WhatWeLookFor = %q, want %q", job.WhatWeLookFor, wantLook)
	}
	wantSummary := "A backend engineer who likes low-latency systems & clear APIs."
	if job.Summary != wantSummary {
		t.Errorf("Summary = %q, want %q", job.Summary, wantSummary)
	}

	lists := map[string][]string{
		"Responsibilities":      job.Responsibilities,
		"Skills":                job.Skills,
		"MinimumQualifications": job.MinimumQualifications,
		"Benefits":              job.Benefits,
	}
	want := map[string]string{
		"Responsibilities":      "Design order routing services|Mentor engineers",
		"Skills":                "Go|Kafka",
		"MinimumQualifications": "5+ years building distributed systems",
		"Benefits":              "Collaborative work environment|401(k) match",
	}
	for name, got := range lists {
		if strings.Join(got, "|") != want[name] {
			t.Errorf("%s = %q, want %q", name, got, want[name])
		}
	}
	if job.DesiredQualifications == nil || len(job.DesiredQualifications) != 0 {
		t.Errorf("DesiredQualifications = %#v, want empty non-nil", job.DesiredQualifications)
	}
}

func TestParseEntry_DepartmentFallsBackToCategory(t *testing.T) {
	job, err := testParser().ParseEntry(entryXML("1", "Engineer", "E1", "", ""))
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if job.Department != "Engineering" {
		t.Errorf("Department = %q, want Engineering (category term)", job.Department)
	}
	if job.LocationType != model.LocationOnsite || job.Location != "" {
		t.Errorf("location = %q (%s), want empty Onsite", job.Location, job.LocationType)
	}
}

func TestParseEntry_DefaultWhoWeAre(t *testing.T) {
	fragment := "<entry><id>x1</id><title>Analyst</title><summary>nothing here</summary></entry>"

	p := NewParser(Links{}, "We trade.", discardLogger())
	job, err := p.ParseEntry(fragment)
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if job.WhoWeAre != "We trade." {
		t.Errorf("WhoWeAre = %q, want default", job.WhoWeAre)
	}
	if job.Slug != "analyst-x1" {
		t.Errorf("Slug = %q, want analyst-x1 (lower-cased id when jobId missing)", job.Slug)
	}
	if job.Responsibilities == nil || job.Benefits == nil {
		t.Error("lists must be empty, not nil")
	}
}

func TestParseEntry_SlugFromURLIDWithoutJobID(t *testing.T) {
	fragment := "<entry><id>https://x.example/Job?id=ABC</id><title>Engineer</title></entry>"
	job, err := testParser().ParseEntry(fragment)
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	want := "engineer-https-x-example-job-id-abc"
	if job.Slug != want {
		t.Errorf("Slug = %q, want %q", job.Slug, want)
	}
}

func TestParseEntry_SummaryCutsPlainText(t *testing.T) {
	look := strings.Repeat("a", 197) + "'s team &amp; more"
	summary := html.EscapeString("<div><u>What We Are Looking For</u></div><div>" + look + "</div>")
	fragment := "<entry><id>s1</id><title>Engineer</title><summary>" + summary + "</summary></entry>"

	job, err := testParser().ParseEntry(fragment)
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	want := strings.Repeat("a", 197) + "'s ..."
	if job.Summary != want {
		t.Errorf("Summary = %q, want %q", job.Summary, want)
	}
	if strings.Contains(job.WhatWeLookFor, "&#39;") {
		t.Errorf("WhatWeLookFor = %q, quote must not be escaped", job.WhatWeLookFor)
	}
}

func TestParseEntry_FirstOccurrenceWins(t *testing.T) {
	fragment := "<entry><id>first</id><id>second</id><title>T</title></entry>"
	job, err := testParser().ParseEntry(fragment)
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if job.ID != "first" {
		t.Errorf("ID = %q, want first", job.ID)
	}
}

func TestParseEntry_RejectsNonEntry(t *testing.T) {
	if _, err := testParser().ParseEntry("<feed><id>1</id></feed>"); err == nil {
		t.Error("expected error for a fragment that is not an entry")
	}
}

func TestParseFeed_SkipsInvalidEntries(t *testing.T) {
	body := sampleFeed(
		entryXML("a1", "Data Engineer", "DE1", "2024-03-01T00:00:00Z", chicagoHybrid),
		entryXML("a2", "", "XX2", "2024-03-02T00:00:00Z", ""),
		entryXML("a3", "Account Manager", "AM3", "2024-03-03T00:00:00Z", "<newton:location>Virtual</newton:location>\n<newton:state>Virtual</newton:state>"),
	)

	jobs, stats := testParser().ParseFeed([]byte(body))

	if stats.Entries != 3 || stats.Parsed != 2 || stats.Invalid != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want 3 entries, 2 parsed, 1 invalid", stats)
	}
	if len(jobs) != 2 || jobs[0].ID != "a1" || jobs[1].ID != "a3" {
		t.Fatalf("jobs = %+v, want a1 and a3 in feed order", jobs)
	}
	if jobs[1].Location != "USA" || jobs[1].LocationType != model.LocationRemote {
		t.Errorf("virtual job location = %q (%s), want USA (Remote)", jobs[1].Location, jobs[1].LocationType)
	}
	for _, j := range jobs {
		if j.Title == "Careers Feed" {
			t.Error("feed header leaked into an entry")
		}
	}
}

func TestParseFeed_NoEntries(t *testing.T) {
	jobs, stats := testParser().ParseFeed([]byte(feedHeader + "</feed>"))
	if jobs == nil || len(jobs) != 0 || stats.Entries != 0 {
		t.Errorf("jobs = %#v, stats = %+v; want empty", jobs, stats)
	}
}

func TestSplitEntries(t *testing.T) {
	parts := SplitEntries("<feed><title>x</title><entry>a</entry><entry>b</entry></feed>")
	if len(parts) != 2 {
		t.Fatalf("len = %d, want 2", len(parts))
	}
	for _, p := range parts {
		if !strings.HasPrefix(p, "<entry>") {
			t.Errorf("fragment %q lacks marker", p)
		}
	}
	if SplitEntries("<feed></feed>") != nil {
		t.Error("expected nil without entries")
	}
}
