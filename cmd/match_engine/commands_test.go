package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/types"
)

const testResumeJSON = `{
	"full_text": "Help desk technician with Windows 10, Active Directory and Office 365 troubleshooting experience",
	"sections": {
		"skills": "windows, active directory, office 365",
		"experience": "help desk technician",
		"education": "",
		"summary": "",
		"technical_skills": ""
	}
}`

const testJobsJSON = `[
	{
		"title": "IT Support Specialist",
		"company": "Initech",
		"location": "Austin, TX",
		"description": "Support Windows 10 users, manage Active Directory and Office 365, help desk ticket triage"
	},
	{
		"title": "Pastry Chef",
		"company": "Bakery",
		"description": "bake croissants and cakes daily"
	}
]`

func writeInputFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readOutputJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestRunMatch_WritesRankedResults(t *testing.T) {
	dir := t.TempDir()
	matchResume = writeInputFile(t, dir, "resume.json", testResumeJSON)
	matchJobs = writeInputFile(t, dir, "jobs.json", testJobsJSON)
	matchKeywordTable = ""
	matchTop = 10
	matchOutput = filepath.Join(dir, "out", "matches.json")
	matchVerbose = false

	require.NoError(t, runMatch(matchCmd, nil))

	var results []types.MatchResult
	readOutputJSON(t, matchOutput, &results)

	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "IT Support Specialist", results[0].Job.Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestRunMatch_MissingResumeFile(t *testing.T) {
	dir := t.TempDir()
	matchResume = filepath.Join(dir, "missing.json")
	matchJobs = writeInputFile(t, dir, "jobs.json", testJobsJSON)
	matchOutput = filepath.Join(dir, "matches.json")

	assert.Error(t, runMatch(matchCmd, nil))
}

func TestRunAnalyze_WritesReport(t *testing.T) {
	dir := t.TempDir()
	analyzeResume = writeInputFile(t, dir, "resume.json", testResumeJSON)
	analyzeJob = writeInputFile(t, dir, "job.json", `{
		"title": "IT Support Specialist",
		"company": "Initech",
		"description": "Windows, Active Directory, and Office 365 administration"
	}`)
	analyzeKeywordTable = ""
	analyzeBiasRules = ""
	analyzeOutput = filepath.Join(dir, "report.json")
	analyzeVerbose = false

	require.NoError(t, runAnalyze(analyzeCmd, nil))

	var result types.AnalysisReport
	readOutputJSON(t, analyzeOutput, &result)

	assert.NotEmpty(t, result.ReportID)
	assert.Equal(t, "IT Support Specialist", result.JobTitle)
	require.NotNil(t, result.ATS)
	assert.Greater(t, result.ATS.ScorePercentage, 0.0)
}

func TestRunAnalyze_EmptyResumeWritesReportAndFails(t *testing.T) {
	dir := t.TempDir()
	analyzeResume = writeInputFile(t, dir, "resume.json", `{"full_text": "  ", "sections": {}}`)
	analyzeJob = writeInputFile(t, dir, "job.json", `{"title": "IT Support", "description": "windows"}`)
	analyzeKeywordTable = ""
	analyzeBiasRules = ""
	analyzeOutput = filepath.Join(dir, "report.json")
	analyzeVerbose = false

	require.Error(t, runAnalyze(analyzeCmd, nil))

	// The report is still written so the caller can inspect the failure.
	var result types.AnalysisReport
	readOutputJSON(t, analyzeOutput, &result)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, result.ATS)
}

func TestRunBatchAnalyze_OutputOrderMatchesInput(t *testing.T) {
	dir := t.TempDir()
	batchResume = writeInputFile(t, dir, "resume.json", testResumeJSON)
	batchJobs = writeInputFile(t, dir, "jobs.json", `[
		{"title": "First", "description": "windows help desk"},
		{"title": "Second", "description": "active directory"},
		{"title": "Third", "description": "office 365 troubleshooting"}
	]`)
	batchKeywordTable = ""
	batchBiasRules = ""
	batchConcurrency = 2
	batchOutput = filepath.Join(dir, "reports.json")
	batchAnalyzeCmd.SetContext(context.Background())

	require.NoError(t, runBatchAnalyze(batchAnalyzeCmd, nil))

	var reports []types.AnalysisReport
	readOutputJSON(t, batchOutput, &reports)

	require.Len(t, reports, 3)
	assert.Equal(t, "First", reports[0].JobTitle)
	assert.Equal(t, "Second", reports[1].JobTitle)
	assert.Equal(t, "Third", reports[2].JobTitle)
}

func TestRunBatchAnalyze_EmptyJobList(t *testing.T) {
	dir := t.TempDir()
	batchResume = writeInputFile(t, dir, "resume.json", testResumeJSON)
	batchJobs = writeInputFile(t, dir, "jobs.json", `[]`)
	batchOutput = filepath.Join(dir, "reports.json")
	batchAnalyzeCmd.SetContext(context.Background())

	assert.Error(t, runBatchAnalyze(batchAnalyzeCmd, nil))
}

func TestLoadKeywordTable_DefaultOnEmptyPath(t *testing.T) {
	table, err := loadKeywordTable("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultKeywordTable(), table)
}

func TestLoadBiasRules_DefaultOnEmptyPath(t *testing.T) {
	rules, err := loadBiasRules("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBiasRules(), rules)
}
