package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-matcher/internal/types"
)

func TestJobTitles_FromExperienceSection(t *testing.T) {
	sections := types.NewSectionMap()
	sections.Set(types.SectionExperience, "worked as senior developer and data scientist")

	titles := Default().JobTitles("director of everything", sections)

	// The experience section is authoritative; the full text is not scanned.
	assert.Equal(t, []string{"Data Scientist", "Developer", "Senior"}, titles)
}

func TestJobTitles_FallsBackToFullText(t *testing.T) {
	titles := Default().JobTitles("Software Engineer, later Engineering Manager", nil)

	assert.Equal(t, []string{"Manager", "Software Engineer"}, titles)
}

func TestJobTitles_Deduplicated(t *testing.T) {
	titles := Default().JobTitles("developer developer DEVELOPER", nil)

	assert.Equal(t, []string{"Developer"}, titles)
}

func TestJobTitles_NoMatches(t *testing.T) {
	assert.Empty(t, Default().JobTitles("gardener and baker", nil))
}
