// Package report assembles the per-job analysis report: ATS compatibility,
// missing keywords, bias assessment, and rule-based recommendations.
package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/job-match-engine/internal/ats"
	"github.com/jonathan/job-match-engine/internal/bias"
	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/features"
	"github.com/jonathan/job-match-engine/internal/normalize"
	"github.com/jonathan/job-match-engine/internal/types"
)

// ATS percentage tiers for the recommendation line.
const (
	lowScoreMax      = 30
	moderateScoreMax = 60
)

// maxMissingKeywords caps the missing-keyword list carried in the report.
const maxMissingKeywords = 10

// maxCriticalInRecommendation caps how many missing critical keywords the
// recommendation line names.
const maxCriticalInRecommendation = 3

// Analyze scores one job posting against a resume and assembles the full
// analysis report.
//
// An empty resume is a terminal condition: the returned report carries only
// an identifier and the error message, never partial scores.
func Analyze(resume types.ResumeProfile, job types.JobPosting, table *config.KeywordTable, detector *bias.Detector) *types.AnalysisReport {
	reportID := uuid.NewString()

	// Guard on the normalized text: a resume of nothing but non-printable
	// characters is just as empty as a blank string.
	resumeText := normalize.Text(resume.FullText)
	if resumeText == "" {
		return &types.AnalysisReport{
			ReportID: reportID,
			Error:    "resume text is empty; nothing to score",
		}
	}

	jobText := features.JobText(job)

	atsResult := ats.Score(jobText, resumeText, table)

	missing := ats.Missing(jobText, resumeText, table)
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	// Bias patterns run against the posting's own wording, not the
	// normalized blob, so matched_text reflects what the posting says.
	biasReport := detector.Detect(job.Title + " " + job.Description)

	return &types.AnalysisReport{
		ReportID:        reportID,
		JobTitle:        job.Title,
		Company:         job.Company,
		Location:        job.Location,
		ATS:             atsResult,
		MissingKeywords: missing,
		Bias:            biasReport,
		Recommendations: recommendations(atsResult, missing, biasReport),
	}
}

// recommendations derives the fixed-rule advice list: one ATS tier comment,
// missing critical keywords if any, bias flag count if any, inclusive
// language count if any.
func recommendations(atsResult *types.ATSScoreResult, missing []types.MissingKeyword, biasReport *types.BiasReport) []string {
	recs := make([]string, 0, 4)

	switch {
	case atsResult.ScorePercentage < lowScoreMax:
		recs = append(recs, "Low ATS compatibility: the resume is missing most of the keywords this posting screens for")
	case atsResult.ScorePercentage < moderateScoreMax:
		recs = append(recs, "Moderate ATS compatibility: adding a few targeted keywords would improve screening odds")
	default:
		recs = append(recs, "Good ATS compatibility: the resume covers most of the posting's keywords")
	}

	var criticalMissing []string
	for _, m := range missing {
		if m.Tier == types.TierCritical {
			criticalMissing = append(criticalMissing, m.Keyword)
			if len(criticalMissing) >= maxCriticalInRecommendation {
				break
			}
		}
	}
	if len(criticalMissing) > 0 {
		recs = append(recs, fmt.Sprintf("Address the missing critical keywords first: %s", strings.Join(criticalMissing, ", ")))
	}

	if n := len(biasReport.Flags); n > 0 {
		recs = append(recs, fmt.Sprintf("The posting contains %d potentially biased phrase(s); weigh that in your evaluation of the employer", n))
	}
	if n := len(biasReport.InclusiveIndicators); n > 0 {
		recs = append(recs, fmt.Sprintf("The posting uses %d inclusive language indicator(s), a positive signal", n))
	}

	return recs
}
