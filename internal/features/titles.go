package features

import (
	"sort"

	"github.com/jonathan/cv-matcher/internal/types"
)

// JobTitles extracts title and level words from the experience section, falling
// back to the whole text when no experience section is present. Matches are
// title-cased, deduplicated and sorted.
func (e *Extractor) JobTitles(text string, sections *types.SectionMap) []string {
	source := text
	if sections != nil {
		if experienceText, ok := sections.Get(types.SectionExperience); ok {
			source = experienceText
		}
	}

	seen := make(map[string]struct{})
	for _, match := range e.tables.TitlePattern.FindAllString(source, -1) {
		seen[titleCase(match)] = struct{}{}
	}

	titles := make([]string, 0, len(seen))
	for title := range seen {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	return titles
}
