package features

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

// Reasonable bounds for a token from a skills section to count as a skill name.
const (
	minSkillLen = 3
	maxSkillLen = 49
)

var skillSplitRe = regexp.MustCompile(`[,•\-\n]`)

// Skills extracts the skill set from a document: the union of vocabulary
// pattern matches over the lowercased full text and, when a skills section is
// present, tokens split out of it on commas, bullets and newlines. The result
// is deduplicated, case-folded and sorted.
func (e *Extractor) Skills(text string, sections *types.SectionMap) []string {
	seen := make(map[string]struct{})
	lower := strings.ToLower(text)

	for _, pattern := range e.tables.SkillPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			seen[match] = struct{}{}
		}
	}

	if sections != nil {
		if skillsText, ok := sections.Get(types.SectionSkills); ok {
			for _, item := range skillSplitRe.Split(strings.ToLower(skillsText), -1) {
				item = strings.TrimSpace(item)
				if len(item) >= minSkillLen && len(item) <= maxSkillLen {
					seen[item] = struct{}{}
				}
			}
		}
	}

	skills := make([]string, 0, len(seen))
	for skill := range seen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills
}
