package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		years float64
		found bool
	}{
		{"years of experience", "Engineer with 5 years of experience", 5, true},
		{"yrs abbreviation", "10+ yrs experience in backend work", 10, true},
		{"experience colon years", "Experience: 7 years in total", 7, true},
		{"case insensitive", "3 YEARS OF EXPERIENCE", 3, true},
		{"no phrasing", "a very experienced engineer", 0, false},
		{"empty", "", 0, false},
	}

	extractor := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, found := extractor.ExperienceYears(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.years, years)
		})
	}
}

func TestExperienceYears_PatternOrderWins(t *testing.T) {
	// Both phrasings present; the first pattern in table order decides.
	years, found := Default().ExperienceYears("experience: 3 years listed, but 9 years of experience overall")

	assert.True(t, found)
	assert.Equal(t, 9.0, years)
}
