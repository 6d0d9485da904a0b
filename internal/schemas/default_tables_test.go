package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-engine/internal/config"
)

// The shipped defaults must conform to the schemas we ask users' files to
// conform to.

func loadSchema(t *testing.T, relativePath string) string {
	t.Helper()
	path := ResolveSchemaPath(relativePath)
	require.NotEmpty(t, path, "schema %s not found", relativePath)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestDefaultKeywordTable_MatchesSchema(t *testing.T) {
	schema := loadSchema(t, "schemas/keyword_table.schema.json")

	data, err := json.Marshal(config.DefaultKeywordTable())
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONString(schema, string(data)))
}

func TestDefaultBiasRules_MatchesSchema(t *testing.T) {
	schema := loadSchema(t, "schemas/bias_rules.schema.json")

	data, err := json.Marshal(config.DefaultBiasRules())
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONString(schema, string(data)))
}

func TestKeywordTableSchema_RejectsNegativeWeight(t *testing.T) {
	schema := loadSchema(t, "schemas/keyword_table.schema.json")

	err := ValidateJSONString(schema, `{"critical": {"windows": -3}, "general": {"teamwork": 3}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestJobPostingsSchema_AllowsUnknownFields(t *testing.T) {
	schema := loadSchema(t, "schemas/job_postings.schema.json")

	doc := `[{"title": "IT Support", "description": "windows", "scraped_at": "2026-09-01"}]`
	assert.NoError(t, ValidateJSONString(schema, doc))
}

func TestResumeProfileSchema_RequiresSectionKeys(t *testing.T) {
	schema := loadSchema(t, "schemas/resume_profile.schema.json")

	doc := `{"full_text": "help desk", "sections": {"skills": "windows"}}`
	err := ValidateJSONString(schema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
