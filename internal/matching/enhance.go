// Package matching ranks job postings against a resume: TF-IDF similarity
// enhanced with bounded domain keyword boosts, sorted into labeled match
// results.
package matching

import (
	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/normalize"
)

// Enhancement constants. The cap is the anti-gaming bound: keyword stuffing
// can never contribute more than 0.15 on top of genuine semantic similarity.
const (
	keywordBoostPerWeight = 0.01
	supportRoleBonus      = 0.02
	seniorityBonus        = 0.01
	enhancementCap        = 0.15
)

// Phrase sets are written in normalized form: the normalizer expands "it"
// to "information technology" before any of these checks run.
var (
	supportRolePhrases = []string{
		"help desk",
		"service desk",
		"desktop support",
		"technical support",
		"information technology support",
	}
	supportGenericTerms = []string{"support", "troubleshooting", "customer"}

	entryLevelTerms = []string{"entry level", "entry-level", "junior"}
	seniorTerms     = []string{"senior", "lead", "principal"}
)

// Enhance adds a bounded, keyword-weighted boost on top of a raw similarity
// score. Both texts must already be normalized. The result is always >=
// base and <= 1.
func Enhance(base float64, jobText, resumeText string, table *config.KeywordTable) float64 {
	jobWords := normalize.WordSet(jobText)
	resumeWords := normalize.WordSet(resumeText)

	var boost float64
	for _, kw := range table.AllKeywords() {
		if normalize.ContainsAllWords(jobWords, kw.Keyword) &&
			normalize.ContainsAllWords(resumeWords, kw.Keyword) {
			boost += keywordBoostPerWeight * kw.Weight
		}
	}

	if anyPhrase(jobWords, supportRolePhrases) && anyPhrase(resumeWords, supportGenericTerms) {
		boost += supportRoleBonus
	}
	if anyPhrase(jobWords, entryLevelTerms) && anyPhrase(resumeWords, entryLevelTerms) {
		boost += seniorityBonus
	}
	if anyPhrase(jobWords, seniorTerms) && anyPhrase(resumeWords, seniorTerms) {
		boost += seniorityBonus
	}

	if boost > enhancementCap {
		boost = enhancementCap
	}

	score := base + boost
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func anyPhrase(words map[string]bool, phrases []string) bool {
	for _, p := range phrases {
		if normalize.ContainsAllWords(words, p) {
			return true
		}
	}
	return false
}
