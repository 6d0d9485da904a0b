// Package ats scores a single job/resume pair against the weighted keyword
// taxonomy, the way applicant tracking systems screen resumes.
package ats

import (
	"math"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/normalize"
	"github.com/jonathan/job-match-engine/internal/types"
)

// Score computes the keyword compatibility score for one job/resume pair.
// Both texts must already be normalized.
//
// Only keywords present in the job posting contribute to possible points,
// for both tiers. A job containing none of the table's keywords scores 0%
// with zero possible points — a valid degenerate case, not an error.
func Score(jobText, resumeText string, table *config.KeywordTable) *types.ATSScoreResult {
	jobWords := normalize.WordSet(jobText)
	resumeWords := normalize.WordSet(resumeText)

	result := &types.ATSScoreResult{
		CriticalMatches: []types.KeywordMatch{},
		CriticalMisses:  []types.KeywordMatch{},
		GeneralMatches:  []types.KeywordMatch{},
	}

	for _, kw := range table.CriticalKeywords() {
		if !normalize.ContainsAllWords(jobWords, kw.Keyword) {
			continue
		}
		result.PossiblePoints += kw.Weight
		match := types.KeywordMatch{Keyword: kw.Keyword, Weight: kw.Weight}
		if normalize.ContainsAllWords(resumeWords, kw.Keyword) {
			result.EarnedPoints += kw.Weight
			result.CriticalMatches = append(result.CriticalMatches, match)
		} else {
			result.CriticalMisses = append(result.CriticalMisses, match)
		}
	}

	for _, kw := range table.GeneralKeywords() {
		if !normalize.ContainsAllWords(jobWords, kw.Keyword) {
			continue
		}
		result.PossiblePoints += kw.Weight
		if normalize.ContainsAllWords(resumeWords, kw.Keyword) {
			result.EarnedPoints += kw.Weight
			result.GeneralMatches = append(result.GeneralMatches, types.KeywordMatch{Keyword: kw.Keyword, Weight: kw.Weight})
		}
	}

	if result.PossiblePoints > 0 {
		result.ScorePercentage = math.Round(result.EarnedPoints/result.PossiblePoints*1000) / 10
	}
	return result
}
