package features

import (
	"github.com/jonathan/cv-matcher/internal/types"
)

// Extract runs every extractor over a document and returns the full FeatureSet.
func (e *Extractor) Extract(text string, sections *types.SectionMap) *types.FeatureSet {
	fs := &types.FeatureSet{
		Skills:    e.Skills(text, sections),
		Education: e.Education(sections),
		JobTitles: e.JobTitles(text, sections),
		Keywords:  e.Keywords(text, DefaultMinKeywordLen),
	}

	if years, ok := e.ExperienceYears(text); ok {
		fs.ExperienceYears = &years
	}

	return fs
}
