package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-match-engine/internal/bias"
	"github.com/jonathan/job-match-engine/internal/report"
	"github.com/jonathan/job-match-engine/internal/types"
)

var batchAnalyzeCmd = &cobra.Command{
	Use:   "batch-analyze",
	Short: "Analyze every posting in a job list against a resume",
	Long:  "Produces one AnalysisReport per posting for a resume. Each analysis is an independent pure computation, so reports are produced concurrently; output order matches input order.",
	RunE:  runBatchAnalyze,
}

var (
	batchResume       string
	batchJobs         string
	batchKeywordTable string
	batchBiasRules    string
	batchConcurrency  int
	batchOutput       string
)

func init() {
	batchAnalyzeCmd.Flags().StringVarP(&batchResume, "resume", "r", "", "Path to input ResumeProfile JSON file (required)")
	batchAnalyzeCmd.Flags().StringVarP(&batchJobs, "jobs", "j", "", "Path to input job postings JSON file (required)")
	batchAnalyzeCmd.Flags().StringVarP(&batchKeywordTable, "keyword-table", "k", "", "Path to keyword table JSON file (default: built-in taxonomy)")
	batchAnalyzeCmd.Flags().StringVarP(&batchBiasRules, "bias-rules", "b", "", "Path to bias rules JSON file (default: built-in rule set)")
	batchAnalyzeCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 4, "Maximum number of postings analyzed in parallel")
	batchAnalyzeCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output reports JSON file (required)")

	if err := batchAnalyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := batchAnalyzeCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	if err := batchAnalyzeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(batchAnalyzeCmd)
}

func runBatchAnalyze(cmd *cobra.Command, _ []string) error {
	resume, err := loadResumeProfile(batchResume)
	if err != nil {
		return err
	}

	jobs, err := loadJobPostings(batchJobs)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("job postings file %s contains no postings", batchJobs)
	}

	table, err := loadKeywordTable(batchKeywordTable)
	if err != nil {
		return err
	}

	rules, err := loadBiasRules(batchBiasRules)
	if err != nil {
		return err
	}

	detector, err := bias.NewDetector(rules)
	if err != nil {
		return fmt.Errorf("failed to compile bias rules: %w", err)
	}

	reports := make([]*types.AnalysisReport, len(jobs))
	g, _ := errgroup.WithContext(cmd.Context())
	if batchConcurrency > 0 {
		g.SetLimit(batchConcurrency)
	}
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			reports[i] = report.Analyze(*resume, job, table, detector)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeJSONOutput(batchOutput, reports); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Analyzed %d postings to %s\n", len(reports), batchOutput)
	return nil
}
