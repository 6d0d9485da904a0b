// Package types provides type definitions for structured data used throughout the job-match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchQuality is a qualitative bucket for an enhanced match score.
type MatchQuality string

// Match quality labels, from best to worst.
const (
	MatchExcellent MatchQuality = "excellent"
	MatchGood      MatchQuality = "good"
	MatchFair      MatchQuality = "fair"
	MatchPoor      MatchQuality = "poor"
	MatchVeryPoor  MatchQuality = "very_poor"
)

// MaxKeyFactors caps the number of "why it matched" factors attached to a
// single match result.
const MaxKeyFactors = 5

// MatchResult represents one ranked job for a resume. Created fresh per
// matching call and never persisted by the engine.
type MatchResult struct {
	Rank       int          `json:"rank"`
	Score      float64      `json:"score"`      // 0.0-1.0 enhanced similarity
	Percentage float64      `json:"percentage"` // Score expressed as 0-100
	Quality    MatchQuality `json:"quality_label"`
	Job        JobPosting   `json:"job"`
	KeyFactors []string     `json:"key_factors"`
}
