package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/matching"
	"github.com/jonathan/job-match-engine/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a resume",
	Long:  "Ranks a list of job postings by semantic and keyword fit to a resume profile, producing match results sorted by enhanced similarity score.",
	RunE:  runMatch,
}

var (
	matchResume       string
	matchJobs         string
	matchKeywordTable string
	matchTop          int
	matchOutput       string
	matchVerbose      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to input ResumeProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobs, "jobs", "j", "", "Path to input job postings JSON file (required)")
	matchCmd.Flags().StringVarP(&matchKeywordTable, "keyword-table", "k", "", "Path to keyword table JSON file (default: built-in taxonomy)")
	matchCmd.Flags().IntVarP(&matchTop, "top", "n", 10, "Maximum number of matches to return")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output match results JSON file (required)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a human-readable summary of the matches")

	if err := matchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	resume, err := loadResumeProfile(matchResume)
	if err != nil {
		return err
	}

	jobs, err := loadJobPostings(matchJobs)
	if err != nil {
		return err
	}

	table, err := loadKeywordTable(matchKeywordTable)
	if err != nil {
		return err
	}

	matches, err := matching.RankJobs(*resume, jobs, table, matchTop)
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	if err := writeJSONOutput(matchOutput, matches); err != nil {
		return err
	}

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatches(matches)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d of %d postings to %s\n", len(matches), len(jobs), matchOutput)
	return nil
}
