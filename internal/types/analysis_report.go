// Package types provides type definitions for structured data used throughout the job-match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordTier distinguishes must-have technical keywords from generally
// positive resume language.
type KeywordTier string

// Keyword tiers.
const (
	TierCritical KeywordTier = "critical"
	TierGeneral  KeywordTier = "general"
)

// KeywordMatch is a single keyword with its configured weight.
type KeywordMatch struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
}

// ATSScoreResult represents the keyword compatibility score for one
// job/resume pair. Only keywords present in the job posting contribute to
// PossiblePoints, for both tiers.
type ATSScoreResult struct {
	ScorePercentage float64        `json:"score_percentage"` // 0-100, 1 decimal
	EarnedPoints    float64        `json:"earned_points"`
	PossiblePoints  float64        `json:"possible_points"`
	CriticalMatches []KeywordMatch `json:"critical_matches"`
	CriticalMisses  []KeywordMatch `json:"critical_misses"`
	GeneralMatches  []KeywordMatch `json:"general_matches"`
}

// MissingKeyword is a job keyword absent from the resume, with remediation
// advice.
type MissingKeyword struct {
	Keyword        string      `json:"keyword"`
	Importance     float64     `json:"importance"`
	Tier           KeywordTier `json:"tier"`
	Recommendation string      `json:"recommendation"`
}

// AnalysisReport is the terminal artifact of the ATS subsystem: one job
// analyzed against one resume. When upstream extraction produced no resume
// text, Error is set and every other analytical field is left empty — the
// engine never emits a partially scored report.
type AnalysisReport struct {
	ReportID        string           `json:"report_id"`
	JobTitle        string           `json:"job_title,omitempty"`
	Company         string           `json:"company,omitempty"`
	Location        string           `json:"location,omitempty"`
	ATS             *ATSScoreResult  `json:"ats_score,omitempty"`
	MissingKeywords []MissingKeyword `json:"missing_keywords,omitempty"`
	Bias            *BiasReport      `json:"bias_report,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`
	Error           string           `json:"error,omitempty"`
}
