// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatches outputs a human-readable summary of ranked job matches.
func (p *Printer) PrintMatches(matches []types.MatchResult) {
	if len(matches) == 0 {
		p.printBox("RANKED MATCHES", "No matches")
		return
	}

	var sb strings.Builder
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("%d. %s @ %s\n", m.Rank, m.Job.Title, m.Job.Company))
		sb.WriteString(fmt.Sprintf("   %.1f%% (%s)\n", m.Percentage, m.Quality))
		for _, factor := range m.KeyFactors {
			sb.WriteString(fmt.Sprintf("   • %s\n", factor))
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysisReport outputs a human-readable summary of a per-job
// analysis report.
func (p *Printer) PrintAnalysisReport(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	if report.Error != "" {
		p.printBox("ANALYSIS REPORT", "Error: "+report.Error)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n", report.JobTitle))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", report.Company))
	if report.ATS != nil {
		sb.WriteString(fmt.Sprintf("ATS:      %.1f%% (%.0f/%.0f points)\n",
			report.ATS.ScorePercentage, report.ATS.EarnedPoints, report.ATS.PossiblePoints))
	}
	if report.Bias != nil {
		sb.WriteString(fmt.Sprintf("Bias:     %d (%s)\n", report.Bias.BiasScore, report.Bias.BiasLevel))
	}

	if len(report.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(report.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := report.MissingKeywords[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %.0f)\n", m.Keyword, m.Tier, m.Importance))
		}
		if len(report.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingKeywords)-maxItemsToShow))
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("ANALYSIS REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
