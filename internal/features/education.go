package features

import (
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

// Education extracts education entries from the education section. Each
// non-empty line containing a recognized degree token contributes exactly one
// entry: the trimmed line as the degree, plus the first vocabulary field name
// found as a substring of the line (or empty). Returns an empty slice when the
// document has no education section.
func (e *Extractor) Education(sections *types.SectionMap) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if sections == nil {
		return entries
	}

	educationText, ok := sections.Get(types.SectionEducation)
	if !ok {
		return entries
	}

	for _, line := range strings.Split(educationText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !e.tables.DegreePattern.MatchString(strings.ToLower(line)) {
			continue
		}
		entries = append(entries, types.EducationEntry{
			Degree: strings.TrimSpace(line),
			Field:  e.fieldOfStudy(line),
		})
	}

	return entries
}

// fieldOfStudy returns the first vocabulary field name contained in the line,
// title-cased, or empty when none matches.
func (e *Extractor) fieldOfStudy(line string) string {
	lower := strings.ToLower(line)
	for _, field := range e.tables.FieldNames {
		if strings.Contains(lower, field) {
			return titleCase(field)
		}
	}
	return ""
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
