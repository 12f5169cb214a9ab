package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/types"
)

func TestDefault_CompilesBuiltInTables(t *testing.T) {
	tables := Default()

	assert.Equal(t, "1", tables.Version)
	assert.Len(t, tables.SectionKeywords, 5)
	assert.NotEmpty(t, tables.SkillPatterns)
	assert.NotNil(t, tables.DegreePattern)
	assert.NotEmpty(t, tables.ExperiencePatterns)
	assert.NotNil(t, tables.TitlePattern)
	assert.NotEmpty(t, tables.FieldNames)
	assert.NotEmpty(t, tables.StopWords)
}

func TestDefault_SectionKeywordOrder(t *testing.T) {
	tables := Default()

	labels := make([]types.SectionLabel, 0, len(tables.SectionKeywords))
	for _, rule := range tables.SectionKeywords {
		labels = append(labels, rule.Label)
	}
	assert.Equal(t, []types.SectionLabel{
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
		types.SectionCertifications,
		types.SectionSummary,
	}, labels)
}

func TestIsStopWord(t *testing.T) {
	tables := Default()

	assert.True(t, tables.IsStopWord("the"))
	assert.True(t, tables.IsStopWord("with"))
	assert.False(t, tables.IsStopWord("python"))
}

func TestCompile_InvalidSkillPattern(t *testing.T) {
	file := defaultTables
	file.SkillPatterns = []string{`(unclosed`}

	_, err := file.compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid skill pattern")
}

func TestCompile_InvalidDegreePattern(t *testing.T) {
	file := defaultTables
	file.DegreePattern = `[a-`

	_, err := file.compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid degree pattern")
}

func TestDefault_TitlePatternIsCaseInsensitive(t *testing.T) {
	tables := Default()

	assert.True(t, tables.TitlePattern.MatchString("Software Engineer"))
	assert.True(t, tables.TitlePattern.MatchString("SENIOR developer"))
}
