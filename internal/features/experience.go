package features

import (
	"strconv"
	"strings"
)

// ExperienceYears searches the text for "N years of experience" phrasings and
// returns the first numeric match, in pattern-table order then leftmost-match
// order. The second return is false when no pattern matched. Multiple matches
// are not reconciled; the first hit wins.
func (e *Extractor) ExperienceYears(text string) (float64, bool) {
	lower := strings.ToLower(text)

	for _, pattern := range e.tables.ExperiencePatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		years, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return years, true
	}

	return 0, false
}
