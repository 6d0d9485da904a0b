package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/schemas"
	"github.com/jonathan/job-match-engine/internal/types"
)

// validateAgainstSchema runs an advisory schema check: a missing schema file
// is skipped, a failing document prints a warning but does not abort. Input
// contracts are enforced by the engine itself.
func validateAgainstSchema(schemaName, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName))
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s failed schema validation: %v\n", jsonPath, err)
	}
}

func loadResumeProfile(path string) (*types.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume profile %s: %w", path, err)
	}

	validateAgainstSchema("resume_profile.schema.json", path)

	var resume types.ResumeProfile
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume profile JSON: %w", err)
	}
	return &resume, nil
}

func loadJobPostings(path string) ([]types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job postings %s: %w", path, err)
	}

	validateAgainstSchema("job_postings.schema.json", path)

	var jobs []types.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job postings JSON: %w", err)
	}
	return jobs, nil
}

func loadJobPosting(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job posting %s: %w", path, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job posting JSON: %w", err)
	}
	return &job, nil
}

// loadKeywordTable returns the table at path, or the built-in default when
// path is empty.
func loadKeywordTable(path string) (*config.KeywordTable, error) {
	if path == "" {
		return config.DefaultKeywordTable(), nil
	}
	validateAgainstSchema("keyword_table.schema.json", path)
	return config.LoadKeywordTable(path)
}

// loadBiasRules returns the rule set at path, or the built-in default when
// path is empty.
func loadBiasRules(path string) (*config.BiasRules, error) {
	if path == "" {
		return config.DefaultBiasRules(), nil
	}
	validateAgainstSchema("bias_rules.schema.json", path)
	return config.LoadBiasRules(path)
}

// writeJSONOutput marshals v with indentation and writes it to path,
// creating parent directories as needed.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
