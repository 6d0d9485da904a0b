package matching

import (
	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/features"
	"github.com/jonathan/job-match-engine/internal/normalize"
	"github.com/jonathan/job-match-engine/internal/similarity"
	"github.com/jonathan/job-match-engine/internal/types"
)

// RankJobs ranks the given postings against a resume and returns the top-N
// matches, best first. topN <= 0 returns all postings ranked.
//
// Each call is a self-contained pure computation: the vector space is fit
// over this resume and this job set, used once, and discarded.
func RankJobs(resume types.ResumeProfile, jobs []types.JobPosting, table *config.KeywordTable, topN int) ([]types.MatchResult, error) {
	resumeText := normalize.Text(resume.FullText)

	jobTexts := make([]string, len(jobs))
	for i, job := range jobs {
		jobTexts[i] = features.JobText(job)
	}

	baseScores, err := similarity.Scores(resumeText, jobTexts)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredJob, len(jobs))
	for i, job := range jobs {
		scored[i] = scoredJob{
			job:     job,
			jobText: jobTexts[i],
			score:   Enhance(baseScores[i], jobTexts[i], resumeText, table),
		}
	}

	return rank(scored, resumeText, table, topN), nil
}
