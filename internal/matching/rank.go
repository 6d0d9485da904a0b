package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/normalize"
	"github.com/jonathan/job-match-engine/internal/types"
)

// Quality label thresholds on the enhanced score.
const (
	excellentThreshold = 0.8
	goodThreshold      = 0.6
	fairThreshold      = 0.4
	poorThreshold      = 0.2
)

// maxKeywordFactors caps how many matched-keyword factors lead the key
// factor list before the phrase-level factors are considered.
const maxKeywordFactors = 3

var enterpriseTerms = []string{"enterprise", "corporate"}
var helpDeskTerms = []string{"help desk", "service desk"}

// scoredJob pairs a job and its blob with the enhanced score during
// ranking.
type scoredJob struct {
	job     types.JobPosting
	jobText string
	score   float64
}

// rank sorts scored jobs by score descending (stable, so exact ties keep
// input order), truncates to topN, and attaches quality labels and key
// factors.
func rank(scored []scoredJob, resumeText string, table *config.KeywordTable, topN int) []types.MatchResult {
	ordered := make([]scoredJob, len(scored))
	copy(ordered, scored)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].score > ordered[j].score
	})

	if topN > 0 && len(ordered) > topN {
		ordered = ordered[:topN]
	}

	resumeWords := normalize.WordSet(resumeText)
	results := make([]types.MatchResult, len(ordered))
	for i, s := range ordered {
		results[i] = types.MatchResult{
			Rank:       i + 1,
			Score:      s.score,
			Percentage: math.Round(s.score*1000) / 10,
			Quality:    qualityForScore(s.score),
			Job:        s.job,
			KeyFactors: keyFactors(s.jobText, resumeWords, table),
		}
	}
	return results
}

func qualityForScore(score float64) types.MatchQuality {
	switch {
	case score >= excellentThreshold:
		return types.MatchExcellent
	case score >= goodThreshold:
		return types.MatchGood
	case score >= fairThreshold:
		return types.MatchFair
	case score >= poorThreshold:
		return types.MatchPoor
	default:
		return types.MatchVeryPoor
	}
}

// keyFactors re-scans one job/resume pair for human-readable match reasons,
// in fixed priority order: matched table keywords first, then the
// phrase-level alignments.
func keyFactors(jobText string, resumeWords map[string]bool, table *config.KeywordTable) []string {
	jobWords := normalize.WordSet(jobText)
	factors := make([]string, 0, types.MaxKeyFactors)

	for _, kw := range table.AllKeywords() {
		if len(factors) >= maxKeywordFactors {
			break
		}
		if normalize.ContainsAllWords(jobWords, kw.Keyword) &&
			normalize.ContainsAllWords(resumeWords, kw.Keyword) {
			factors = append(factors, fmt.Sprintf("Matching keyword: %s", kw.Keyword))
		}
	}

	if anyPhrase(jobWords, supportRolePhrases) && anyPhrase(resumeWords, supportGenericTerms) {
		factors = append(factors, "Support role alignment")
	}
	if anyPhrase(jobWords, helpDeskTerms) && anyPhrase(resumeWords, helpDeskTerms) {
		factors = append(factors, "Help desk experience")
	}
	if anyPhrase(jobWords, enterpriseTerms) && anyPhrase(resumeWords, enterpriseTerms) {
		factors = append(factors, "Enterprise environment experience")
	}

	if len(factors) > types.MaxKeyFactors {
		factors = factors[:types.MaxKeyFactors]
	}
	return factors
}
