package features

import (
	"regexp"
	"sort"

	"github.com/jonathan/cv-matcher/internal/textproc"
	"github.com/jonathan/cv-matcher/internal/types"
)

// DefaultMinKeywordLen is the default minimum token length for keywords.
const DefaultMinKeywordLen = 3

// maxKeywords caps the keyword list at the 50 most frequent tokens.
const maxKeywords = 50

var wordRe = regexp.MustCompile(`\b\w+\b`)

// Keywords normalizes and lowercases the text, tokenizes it on word boundaries,
// drops stop words and tokens shorter than minLen, and returns up to 50
// (word, count) pairs ordered by descending count. Ties keep first-seen order,
// so the result is stable for a given input.
func (e *Extractor) Keywords(text string, minLen int) []types.KeywordCount {
	if minLen <= 0 {
		minLen = DefaultMinKeywordLen
	}

	normalized := textproc.NormalizeLower(text)

	counts := make(map[string]int)
	var order []string
	for _, word := range wordRe.FindAllString(normalized, -1) {
		if len(word) < minLen || e.tables.IsStopWord(word) {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	keywords := make([]types.KeywordCount, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, types.KeywordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return keywords
}
