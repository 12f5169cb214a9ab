package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("hello    \t world"))
}

func TestNormalize_ReplacesDisallowedCharacters(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("a@b#c"))
}

func TestNormalize_KeepsBasicPunctuation(t *testing.T) {
	assert.Equal(t, "skills: go, python - and more (really)!", Normalize("skills: go, python - and more (really)!"))
}

func TestNormalize_PreservesLineStructure(t *testing.T) {
	assert.Equal(t, "line1\nline2", Normalize("line1  \nline2"))
}

func TestNormalize_NormalizesCRLF(t *testing.T) {
	assert.Equal(t, "a\nb", Normalize("a\r\nb"))
}

func TestNormalize_CollapsesBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", Normalize("a\n\n\n\nb"))
}

func TestNormalize_TrimsEdges(t *testing.T) {
	assert.Equal(t, "text", Normalize("  \n text \n  "))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Summary\n\nExperienced engineer @ Acme!\n\n\nSkills:\npython, aws",
		"a\r\nb\tc   d",
		"plain text",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestNormalizeLower(t *testing.T) {
	assert.Equal(t, "hello world", NormalizeLower("HeLLo   World"))
}
