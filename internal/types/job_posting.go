// Package types provides type definitions for structured data used throughout the job-match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a single job posting as produced by the job sourcing
// collaborator. Optional fields are pointers or zero values; a missing field
// is skipped by the engine, never an error. Unknown JSON fields are ignored
// on decode.
type JobPosting struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      string   `json:"skills,omitempty"`
	SalaryMin   *float64 `json:"salary_min,omitempty"`
	SalaryMax   *float64 `json:"salary_max,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	JobType     string   `json:"job_type,omitempty"`
}
