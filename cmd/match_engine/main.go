// Package main implements the match_engine CLI for resume-to-job matching
// and ATS-style compatibility analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_engine",
	Short: "Resume-to-job matching and scoring engine",
	Long:  "match_engine ranks job postings by semantic fit to a resume and scores individual job/resume pairs against a weighted keyword taxonomy, with missing-keyword remediation and a bias assessment of the posting's language.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
