// Package types provides type definitions for structured data used throughout the job-match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Recognized section keys in a ResumeProfile. Upstream resume extraction is
// expected to populate every key, using an empty string when a section was
// not detected.
const (
	SectionSkills          = "skills"
	SectionExperience      = "experience"
	SectionEducation       = "education"
	SectionSummary         = "summary"
	SectionTechnicalSkills = "technical_skills"
)

// ResumeProfile represents extracted resume text as produced by the resume
// ingestion collaborator. The engine treats it as read-only for the duration
// of one matching or scoring call.
type ResumeProfile struct {
	FullText string            `json:"full_text"`
	Sections map[string]string `json:"sections"`
}

// Section returns the named section text, or an empty string when the
// section is missing or was not detected.
func (r *ResumeProfile) Section(key string) string {
	if r.Sections == nil {
		return ""
	}
	return r.Sections[key]
}
