package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employeeListSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["employee_id"],
		"properties": {
			"employee_id": {"type": "string", "minLength": 1},
			"career_years": {"type": "integer", "minimum": 0}
		}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `[{"employee_id": "emp_001", "career_years": 5}]`
	assert.NoError(t, ValidateJSONString(employeeListSchema, doc))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `[{"career_years": 5}]`

	err := ValidateJSONString(employeeListSchema, doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	doc := `[{"employee_id": "emp_001", "career_years": "five"}]`

	err := ValidateJSONString(employeeListSchema, doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Contains(t, validationErr.Error(), "career_years")
}

func TestValidateJSON_Files(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(employeeListSchema), 0644))

	validPath := filepath.Join(tmpDir, "valid.json")
	require.NoError(t, os.WriteFile(validPath, []byte(`[{"employee_id": "emp_001"}]`), 0644))
	assert.NoError(t, ValidateJSON(schemaPath, validPath))

	invalidPath := filepath.Join(tmpDir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidPath, []byte(`[{}]`), 0644))
	err := ValidateJSON(schemaPath, invalidPath)
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	tmpDir := t.TempDir()
	jsonPath := filepath.Join(tmpDir, "doc.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[]`), 0644))

	err := ValidateJSON(filepath.Join(tmpDir, "absent.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentDocument(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(employeeListSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(tmpDir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Equal(t, "", ResolveSchemaPath("no/such/schema.json"))
}

func TestResolveSchemaPath_CurrentDirectory(t *testing.T) {
	resolved := ResolveSchemaPath("validate.go")
	assert.NotEqual(t, "", resolved)
	assert.True(t, filepath.IsAbs(resolved))
}
