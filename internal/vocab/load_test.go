package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/types"
)

func TestLoad_ValidFile(t *testing.T) {
	tables, err := Load(filepath.Join("testdata", "vocabulary.json"), DefaultSchemaPath)
	require.NoError(t, err)

	assert.Equal(t, "test-1", tables.Version)
	require.Len(t, tables.SectionKeywords, 2)
	assert.Equal(t, types.SectionExperience, tables.SectionKeywords[0].Label)
	assert.Len(t, tables.SkillPatterns, 1)
	assert.True(t, tables.SkillPatterns[0].MatchString("we write go here"))
	assert.True(t, tables.IsStopWord("and"))
	assert.False(t, tables.IsStopWord("of"))
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.json"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read vocabulary file")
}

func TestLoad_SchemaViolation(t *testing.T) {
	// Missing the required version field.
	path := filepath.Join(t.TempDir(), "vocab.json")
	content := `{
		"section_keywords": [{"label": "skills", "keywords": ["skills"]}],
		"skill_patterns": ["go"],
		"degree_pattern": "bachelor",
		"experience_patterns": ["(\\d+) years"],
		"field_names": [],
		"title_pattern": "engineer",
		"stop_words": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path, DefaultSchemaPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestLoad_InvalidPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	content := `{
		"version": "1",
		"section_keywords": [{"label": "skills", "keywords": ["skills"]}],
		"skill_patterns": ["(unclosed"],
		"degree_pattern": "bachelor",
		"experience_patterns": ["(\\d+) years"],
		"field_names": [],
		"title_pattern": "engineer",
		"stop_words": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path, DefaultSchemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid skill pattern")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path, "")
	require.Error(t, err)
}

func TestResolveSchemaPath(t *testing.T) {
	// The repo schema sits two levels up from this package.
	resolved := ResolveSchemaPath(DefaultSchemaPath)
	require.NotEmpty(t, resolved)
	assert.True(t, filepath.IsAbs(resolved))

	assert.Empty(t, ResolveSchemaPath(filepath.Join("no", "such", "schema.json")))
}
