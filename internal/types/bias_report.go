// Package types provides type definitions for structured data used throughout the job-match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BiasSeverity grades how strongly a flagged phrase signals exclusionary
// language.
type BiasSeverity string

// Bias severities.
const (
	SeverityMedium   BiasSeverity = "medium"
	SeverityHigh     BiasSeverity = "high"
	SeverityVeryHigh BiasSeverity = "very_high"
)

// BiasLevel is a qualitative bucket for a numeric bias score.
type BiasLevel string

// Bias levels, from best to worst.
const (
	BiasExcellent BiasLevel = "excellent"
	BiasGood      BiasLevel = "good"
	BiasFair      BiasLevel = "fair"
	BiasPoor      BiasLevel = "poor"
	BiasVeryPoor  BiasLevel = "very_poor"
)

// BiasFlag is one detected instance of potentially discriminatory language.
type BiasFlag struct {
	Category       string       `json:"category"`
	MatchedText    string       `json:"matched_text"`
	Severity       BiasSeverity `json:"severity"`
	Recommendation string       `json:"recommendation"`
}

// BiasReport summarizes the bias assessment of a single job posting's
// language. BiasScore is always >= 0.
type BiasReport struct {
	BiasScore           int        `json:"bias_score"`
	BiasLevel           BiasLevel  `json:"bias_level"`
	Flags               []BiasFlag `json:"bias_flags"`
	InclusiveIndicators []string   `json:"inclusive_indicators"`
	RedFlags            []string   `json:"red_flags"`
	Recommendation      string     `json:"recommendation"`
}
