package filter

import (
	"testing"

	"github.com/amishk599/careerfeed/internal/model"
)

func job(title, department, location string, lt model.LocationType) model.Job {
	return model.Job{Title: title, Department: department, Location: location, LocationType: lt}
}

func TestCriteria_Match(t *testing.T) {
	tests := []struct {
		name      string
		criteria  Criteria
		job       model.Job
		wantMatch bool
	}{
		{
			name:      "zero criteria match everything",
			criteria:  Criteria{},
			job:       job("Software Engineer", "Engineering", "USA", model.LocationRemote),
			wantMatch: true,
		},
		{
			name:      "sentinels match everything",
			criteria:  Criteria{Department: AllDepartments, Location: AllLocations},
			job:       job("Account Manager", "Sales", "Chicago, IL", model.LocationOnsite),
			wantMatch: true,
		},
		{
			name:      "department case insensitive",
			criteria:  Criteria{Department: "engineering"},
			job:       job("Software Engineer", "Engineering", "USA", model.LocationRemote),
			wantMatch: true,
		},
		{
			name:      "department mismatch",
			criteria:  Criteria{Department: "Sales"},
			job:       job("Software Engineer", "Engineering", "USA", model.LocationRemote),
			wantMatch: false,
		},
		{
			name:      "location label match",
			criteria:  Criteria{Location: "Chicago, IL (Hybrid)"},
			job:       job("Data Engineer", "Engineering", "Chicago, IL", model.LocationHybrid),
			wantMatch: true,
		},
		{
			name:      "location type differs",
			criteria:  Criteria{Location: "Chicago, IL (Onsite)"},
			job:       job("Data Engineer", "Engineering", "Chicago, IL", model.LocationHybrid),
			wantMatch: false,
		},
		{
			name:      "query in title case insensitive",
			criteria:  Criteria{Query: "ENGINEER"},
			job:       job("Data Engineer", "Engineering", "USA", model.LocationRemote),
			wantMatch: true,
		},
		{
			name:      "query matched as one substring",
			criteria:  Criteria{Query: "engineer data"},
			job:       job("Data Engineer", "Engineering", "USA", model.LocationRemote),
			wantMatch: false,
		},
		{
			name:      "query in department",
			criteria:  Criteria{Query: "sales"},
			job:       job("Account Manager", "Sales", "Chicago, IL", model.LocationOnsite),
			wantMatch: true,
		},
		{
			name:      "query in location type",
			criteria:  Criteria{Query: "hybrid"},
			job:       job("Data Engineer", "Engineering", "Chicago, IL", model.LocationHybrid),
			wantMatch: true,
		},
		{
			name:      "query in job id",
			criteria:  Criteria{Query: "req-42"},
			job:       model.Job{Title: "Analyst", JobID: "REQ-42"},
			wantMatch: true,
		},
		{
			name:      "query in summary",
			criteria:  Criteria{Query: "low-latency"},
			job:       model.Job{Title: "Engineer", Summary: "Builds low-latency order routing."},
			wantMatch: true,
		},
		{
			name:      "query in employment type",
			criteria:  Criteria{Query: "full-time"},
			job:       model.Job{Title: "Engineer", Type: model.EmploymentTypeFullTime},
			wantMatch: true,
		},
		{
			name:      "query nowhere",
			criteria:  Criteria{Query: "devops"},
			job:       job("Data Engineer", "Engineering", "USA", model.LocationRemote),
			wantMatch: false,
		},
		{
			name:      "blank query ignored",
			criteria:  Criteria{Query: "   "},
			job:       job("Data Engineer", "Engineering", "USA", model.LocationRemote),
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Match(tt.job); got != tt.wantMatch {
				t.Errorf("Match() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestApply_PreservesOrderAndNeverNil(t *testing.T) {
	jobs := []model.Job{
		job("B Engineer", "Engineering", "USA", model.LocationRemote),
		job("Seller", "Sales", "USA", model.LocationRemote),
		job("A Engineer", "Engineering", "USA", model.LocationRemote),
	}

	got := Apply(jobs, Criteria{Department: "Engineering"})
	if len(got) != 2 || got[0].Title != "B Engineer" || got[1].Title != "A Engineer" {
		t.Errorf("Apply = %+v", got)
	}

	none := Apply(jobs, Criteria{Department: "Legal"})
	if none == nil || len(none) != 0 {
		t.Errorf("Apply with no match = %#v, want empty non-nil", none)
	}
}
