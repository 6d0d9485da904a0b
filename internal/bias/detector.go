// Package bias scans job posting language for potentially discriminatory
// phrasing, inclusive-language indicators, and culture red flags.
package bias

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/types"
)

// Score formula weights. Each flag costs 10, each inclusive indicator
// refunds 5, each red flag costs 7; the score never drops below zero.
const (
	flagWeight      = 10
	inclusiveWeight = 5
	redFlagWeight   = 7
)

// Bias level thresholds on the numeric score.
const (
	goodMax = 10
	fairMax = 25
	poorMax = 50
)

// compiledCategory is one bias category with its patterns ready to match.
type compiledCategory struct {
	name           string
	patterns       []*regexp.Regexp
	severity       types.BiasSeverity
	recommendation string
}

// Detector matches job text against a compiled bias rule set. Safe for
// concurrent use; it holds no per-call state.
type Detector struct {
	categories       []compiledCategory
	inclusivePhrases []string
	redFlagPhrases   []string
}

// NewDetector compiles a bias rule set. Returns a ConfigurationError when
// the rules are malformed.
func NewDetector(rules *config.BiasRules) (*Detector, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	// Categories sorted by name so flag order is deterministic.
	names := make([]string, 0, len(rules.Categories))
	for name := range rules.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	d := &Detector{
		inclusivePhrases: rules.InclusivePhrases,
		redFlagPhrases:   rules.RedFlagPhrases,
	}
	for _, name := range names {
		rule := rules.Categories[name]
		cc := compiledCategory{
			name:           name,
			severity:       rule.Severity,
			recommendation: rule.Recommendation,
		}
		for _, pattern := range rule.Patterns {
			// Validate has already confirmed these compile.
			cc.patterns = append(cc.patterns, regexp.MustCompile(`(?i)`+pattern))
		}
		d.categories = append(d.categories, cc)
	}
	return d, nil
}

// Detect assesses a job posting's language. Every pattern occurrence
// produces one flag; the resume is irrelevant here.
func (d *Detector) Detect(jobText string) *types.BiasReport {
	report := &types.BiasReport{
		Flags:               []types.BiasFlag{},
		InclusiveIndicators: []string{},
		RedFlags:            []string{},
	}

	for _, cat := range d.categories {
		for _, pattern := range cat.patterns {
			for _, matched := range pattern.FindAllString(jobText, -1) {
				report.Flags = append(report.Flags, types.BiasFlag{
					Category:       cat.name,
					MatchedText:    matched,
					Severity:       cat.severity,
					Recommendation: cat.recommendation,
				})
			}
		}
	}

	lower := strings.ToLower(jobText)
	inclusiveCount := 0
	for _, phrase := range d.inclusivePhrases {
		if n := strings.Count(lower, strings.ToLower(phrase)); n > 0 {
			inclusiveCount += n
			report.InclusiveIndicators = append(report.InclusiveIndicators, phrase)
		}
	}
	redFlagCount := 0
	for _, phrase := range d.redFlagPhrases {
		if n := strings.Count(lower, strings.ToLower(phrase)); n > 0 {
			redFlagCount += n
			report.RedFlags = append(report.RedFlags, phrase)
		}
	}

	score := flagWeight*len(report.Flags) - inclusiveWeight*inclusiveCount + redFlagWeight*redFlagCount
	if score < 0 {
		score = 0
	}
	report.BiasScore = score
	report.BiasLevel = levelForScore(score)
	report.Recommendation = recommendationForLevel(report.BiasLevel)
	return report
}

func levelForScore(score int) types.BiasLevel {
	switch {
	case score == 0:
		return types.BiasExcellent
	case score <= goodMax:
		return types.BiasGood
	case score <= fairMax:
		return types.BiasFair
	case score <= poorMax:
		return types.BiasPoor
	default:
		return types.BiasVeryPoor
	}
}

func recommendationForLevel(level types.BiasLevel) string {
	switch level {
	case types.BiasExcellent:
		return "No biased language detected; the posting reads inclusively"
	case types.BiasGood:
		return "Minor wording concerns; consider softening the flagged phrases"
	case types.BiasFair:
		return "Several potentially exclusionary phrases; review the flagged categories"
	case types.BiasPoor:
		return "Significant biased language; qualified candidates may self-select out"
	default:
		return "Pervasive biased language; a rewrite of the posting is strongly recommended"
	}
}
