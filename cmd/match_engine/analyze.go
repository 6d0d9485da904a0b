package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/bias"
	"github.com/jonathan/job-match-engine/internal/observability"
	"github.com/jonathan/job-match-engine/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one job posting against a resume",
	Long:  "Scores a single job/resume pair against the weighted keyword taxonomy, producing an analysis report with the ATS compatibility score, missing keywords with remediation advice, and a bias assessment of the posting's language.",
	RunE:  runAnalyze,
}

var (
	analyzeResume       string
	analyzeJob          string
	analyzeKeywordTable string
	analyzeBiasRules    string
	analyzeOutput       string
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to input ResumeProfile JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to input job posting JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeKeywordTable, "keyword-table", "k", "", "Path to keyword table JSON file (default: built-in taxonomy)")
	analyzeCmd.Flags().StringVarP(&analyzeBiasRules, "bias-rules", "b", "", "Path to bias rules JSON file (default: built-in rule set)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output AnalysisReport JSON file (required)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary of the report")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	resume, err := loadResumeProfile(analyzeResume)
	if err != nil {
		return err
	}

	job, err := loadJobPosting(analyzeJob)
	if err != nil {
		return err
	}

	table, err := loadKeywordTable(analyzeKeywordTable)
	if err != nil {
		return err
	}

	rules, err := loadBiasRules(analyzeBiasRules)
	if err != nil {
		return err
	}

	detector, err := bias.NewDetector(rules)
	if err != nil {
		return fmt.Errorf("failed to compile bias rules: %w", err)
	}

	result := report.Analyze(*resume, *job, table, detector)

	if err := writeJSONOutput(analyzeOutput, result); err != nil {
		return err
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintAnalysisReport(result)
	}

	if result.Error != "" {
		return fmt.Errorf("analysis failed: %s", result.Error)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Analyzed %q to %s\n", job.Title, analyzeOutput)
	return nil
}
