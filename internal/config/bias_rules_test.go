package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestDefaultBiasRules_IsValid(t *testing.T) {
	rules := DefaultBiasRules()
	require.NoError(t, rules.Validate())
	assert.NotEmpty(t, rules.Categories)
	assert.NotEmpty(t, rules.InclusivePhrases)
	assert.NotEmpty(t, rules.RedFlagPhrases)
}

func TestBiasRules_ValidateRejectsNoCategories(t *testing.T) {
	rules := &BiasRules{}

	err := rules.Validate()
	require.Error(t, err)

	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestBiasRules_ValidateRejectsEmptyPatternList(t *testing.T) {
	rules := &BiasRules{
		Categories: map[string]BiasCategoryRule{
			"age": {Severity: types.SeverityHigh},
		},
	}

	assert.Error(t, rules.Validate())
}

func TestBiasRules_ValidateRejectsBlankPattern(t *testing.T) {
	rules := &BiasRules{
		Categories: map[string]BiasCategoryRule{
			"age": {Patterns: []string{""}, Severity: types.SeverityHigh},
		},
	}

	assert.Error(t, rules.Validate())
}

func TestBiasRules_ValidateRejectsUncompilablePattern(t *testing.T) {
	rules := &BiasRules{
		Categories: map[string]BiasCategoryRule{
			"age": {Patterns: []string{"(unclosed"}, Severity: types.SeverityHigh},
		},
	}

	err := rules.Validate()
	require.Error(t, err)

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "age", confErr.Field)
}

func TestBiasRules_ValidateRejectsUnknownSeverity(t *testing.T) {
	rules := &BiasRules{
		Categories: map[string]BiasCategoryRule{
			"age": {Patterns: []string{`\byoung\b`}, Severity: "catastrophic"},
		},
	}

	assert.Error(t, rules.Validate())
}

func TestLoadBiasRules_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bias.json")
	content := `{
		"categories": {
			"age": {
				"patterns": ["\\byoung\\b"],
				"severity": "high",
				"recommendation": "Describe the pace of the work instead"
			}
		},
		"inclusive_phrases": ["equal opportunity"],
		"red_flag_phrases": ["wear many hats"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rules, err := LoadBiasRules(path)
	require.NoError(t, err)
	assert.Equal(t, types.SeverityHigh, rules.Categories["age"].Severity)
	assert.Equal(t, []string{"equal opportunity"}, rules.InclusivePhrases)
}

func TestLoadBiasRules_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bias.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0644))

	_, err := LoadBiasRules(path)
	require.Error(t, err)

	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}
