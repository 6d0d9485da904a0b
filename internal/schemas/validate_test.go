package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["critical"],
	"properties": {
		"critical": {
			"type": "object",
			"additionalProperties": {"type": "number", "minimum": 0}
		}
	}
}`

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "table.schema.json", testSchema)
	docPath := writeTempFile(t, dir, "table.json", `{"critical": {"windows": 10}}`)

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "table.schema.json", testSchema)
	docPath := writeTempFile(t, dir, "table.json", `{"critical": {"windows": -1}}`)

	err := ValidateJSON(schemaPath, docPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "validation failed")
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "table.schema.json", testSchema)
	docPath := writeTempFile(t, dir, "table.json", `{}`)

	err := ValidateJSON(schemaPath, docPath)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSON_SchemaNotFound(t *testing.T) {
	dir := t.TempDir()
	docPath := writeTempFile(t, dir, "table.json", `{}`)

	err := ValidateJSON(filepath.Join(dir, "missing.schema.json"), docPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSON_DocumentNotFound(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "table.schema.json", testSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `{"critical": {"itil": 8}}`))
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{not json`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPath_FindsExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "found.schema.json", testSchema)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	resolved := ResolveSchemaPath("found.schema.json")
	require.NotEmpty(t, resolved)
	assert.True(t, filepath.IsAbs(resolved))
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("definitely/not/a/real/schema.json"))
}
