// Package features assembles the weighted text blob the similarity engine
// sees for each job posting.
package features

import (
	"strconv"
	"strings"

	"github.com/jonathan/job-match-engine/internal/normalize"
	"github.com/jonathan/job-match-engine/internal/types"
)

// JobText builds a single normalized text blob for a job posting. The title
// is included twice to bias the vector space toward title terms; empty or
// missing fields are silently skipped.
func JobText(job types.JobPosting) string {
	parts := make([]string, 0, 8)

	appendField := func(s string) {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}

	appendField(job.Title)
	appendField(job.Title)
	appendField(job.Description)
	appendField(job.Company)
	appendField(job.Location)
	appendField(job.Skills)
	if len(job.Tags) > 0 {
		appendField(strings.Join(job.Tags, " "))
	}
	if job.SalaryMin != nil && job.SalaryMax != nil {
		parts = append(parts, "salary "+formatSalary(*job.SalaryMin)+" "+formatSalary(*job.SalaryMax))
	}

	return normalize.Text(strings.Join(parts, " "))
}

// formatSalary renders a salary bound without a trailing ".0" for whole
// amounts.
func formatSalary(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
