package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-match-engine/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func TestJobText_TitleCountedTwice(t *testing.T) {
	job := types.JobPosting{
		Title:       "Desktop Engineer",
		Description: "supports desktops",
	}

	blob := JobText(job)
	assert.Equal(t, 2, strings.Count(blob, "desktop engineer"))
}

func TestJobText_IncludesAllFields(t *testing.T) {
	job := types.JobPosting{
		Title:       "Support Analyst",
		Company:     "Initech",
		Location:    "Austin",
		Description: "frontline ticket triage",
		Skills:      "windows troubleshooting",
		Tags:        []string{"onsite", "full-time"},
	}

	blob := JobText(job)
	for _, want := range []string{"support analyst", "initech", "austin", "frontline ticket triage", "windows troubleshooting", "onsite", "full-time"} {
		assert.Contains(t, blob, want)
	}
}

func TestJobText_SalaryFragment(t *testing.T) {
	job := types.JobPosting{
		Title:       "Technician",
		Description: "fix things",
		SalaryMin:   floatPtr(55000),
		SalaryMax:   floatPtr(70000),
	}

	assert.Contains(t, JobText(job), "salary 55000 70000")
}

func TestJobText_MissingFieldsSkipped(t *testing.T) {
	job := types.JobPosting{Title: "Technician"}

	blob := JobText(job)
	assert.Equal(t, "technician technician", blob)
	assert.NotContains(t, blob, "salary")
}

func TestJobText_OutputIsNormalized(t *testing.T) {
	job := types.JobPosting{
		Title:       "IT   Support",
		Description: "Manage AD\naccounts",
	}

	blob := JobText(job)
	assert.Contains(t, blob, "information technology support")
	assert.Contains(t, blob, "active directory accounts")
}
