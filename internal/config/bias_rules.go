package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/jonathan/job-match-engine/internal/types"
)

// BiasCategoryRule is one category of potentially discriminatory language:
// the regex patterns that detect it, the fixed severity assigned to every
// match, and the remediation advice attached to each flag.
type BiasCategoryRule struct {
	Patterns       []string           `json:"patterns" validate:"min=1,dive,min=1"`
	Severity       types.BiasSeverity `json:"severity"`
	Recommendation string             `json:"recommendation"`
}

// BiasRules is the full bias detection rule set: categorized patterns plus
// the inclusive-language and culture red-flag phrase lists. Immutable after
// load.
type BiasRules struct {
	Categories       map[string]BiasCategoryRule `json:"categories" validate:"min=1"`
	InclusivePhrases []string                    `json:"inclusive_phrases"`
	RedFlagPhrases   []string                    `json:"red_flag_phrases"`
}

// DefaultBiasRules returns the built-in bias detection rule set.
func DefaultBiasRules() *BiasRules {
	return &BiasRules{
		Categories: map[string]BiasCategoryRule{
			"age": {
				Severity: types.SeverityHigh,
				Patterns: []string{
					`\byoung\b`,
					`\benergetic\b`,
					`digital native`,
					`recent graduates?\b`,
					`under (?:30|35|40)\b`,
				},
				Recommendation: "Remove age-coded language; describe the pace of the work, not the age of the worker",
			},
			"gender": {
				Severity: types.SeverityHigh,
				Patterns: []string{
					`rock\s?star`,
					`\bninja\b`,
					`\bguru\b`,
					`\bmanpower\b`,
					`\bchairman\b`,
					`\bsalesman\b`,
					`\baggressive\b`,
					`\bdominant\b`,
				},
				Recommendation: "Replace gender-coded terms with neutral role language such as 'expert' or 'specialist'",
			},
			"cultural": {
				Severity: types.SeverityVeryHigh,
				Patterns: []string{
					`native english speaker`,
					`native speaker`,
					`no accent`,
					`english only`,
					`cultur(?:e|al) fit`,
				},
				Recommendation: "State the actual language proficiency needed instead of nativeness or 'fit'",
			},
			"education": {
				Severity: types.SeverityMedium,
				Patterns: []string{
					`ivy league`,
					`top[- ]tier (?:university|school|college)`,
					`prestigious (?:university|school|college)`,
					`elite (?:university|college)`,
				},
				Recommendation: "Require the capability, not the pedigree of the institution",
			},
			"experience": {
				Severity: types.SeverityMedium,
				Patterns: []string{
					`\boverqualified\b`,
					`too much experience`,
					`no more than \d+ years`,
					`maximum of \d+ years`,
				},
				Recommendation: "Avoid screening out experienced candidates; describe the level of work instead",
			},
			"appearance": {
				Severity: types.SeverityHigh,
				Patterns: []string{
					`\battractive\b`,
					`well[- ]groomed`,
					`clean[- ]cut`,
					`professional appearance`,
				},
				Recommendation: "Drop appearance requirements unless they are a genuine occupational need",
			},
		},
		InclusivePhrases: []string{
			"equal opportunity",
			"inclusive",
			"diverse",
			"all backgrounds",
			"regardless of",
			"reasonable accommodations",
			"veterans",
			"people with disabilities",
			"parental leave",
			"flexible work",
		},
		RedFlagPhrases: []string{
			"work hard play hard",
			"fast-paced environment",
			"wear many hats",
			"like a family",
			"hustle culture",
			"high-pressure environment",
		},
	}
}

// LoadBiasRules reads a bias rule set from a JSON file and validates it.
func LoadBiasRules(path string) (*BiasRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bias rules %s: %w", path, err)
	}

	var rules BiasRules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, &ConfigurationError{Message: "bias rules are not valid JSON", Field: path, Cause: err}
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

// Validate checks that every category has at least one compilable pattern
// and a known severity.
func (r *BiasRules) Validate() error {
	if len(r.Categories) == 0 {
		return &ConfigurationError{Message: "no bias categories defined", Field: "categories"}
	}
	for name, rule := range r.Categories {
		if len(rule.Patterns) == 0 {
			return &ConfigurationError{Message: "category has no patterns", Field: name}
		}
		for _, pattern := range rule.Patterns {
			if pattern == "" {
				return &ConfigurationError{Message: "blank pattern", Field: name}
			}
			if _, err := regexp.Compile("(?i)" + pattern); err != nil {
				return &ConfigurationError{
					Message: fmt.Sprintf("invalid pattern %q", pattern),
					Field:   name,
					Cause:   err,
				}
			}
		}
		switch rule.Severity {
		case types.SeverityMedium, types.SeverityHigh, types.SeverityVeryHigh:
		default:
			return &ConfigurationError{
				Message: fmt.Sprintf("unknown severity %q", rule.Severity),
				Field:   name,
			}
		}
	}
	return nil
}
