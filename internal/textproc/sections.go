package textproc

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/jonathan/cv-matcher/internal/vocab"
)

// maxHeadingLen is the length cutoff for a heading candidate. Keyword hits in
// lines at or above this length are treated as body text, not headings.
const maxHeadingLen = 50

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Segmenter splits normalized text into labeled sections using an ordered
// heading-keyword table.
type Segmenter struct {
	rules []vocab.SectionKeywords
}

// NewSegmenter creates a Segmenter scanning the given tables' section keywords.
func NewSegmenter(tables *vocab.Tables) *Segmenter {
	return &Segmenter{rules: tables.SectionKeywords}
}

// DefaultSegmenter returns a Segmenter over the built-in vocabulary.
func DefaultSegmenter() *Segmenter {
	return NewSegmenter(vocab.Default())
}

// Segment processes text line by line and returns the ordered section map.
// Content lines accumulate under the current section label (initially "other");
// a heading line flushes the accumulator and switches the label. Content that
// accumulates under "other" is dropped unless no labeled section was found at
// all, in which case the whole text is returned under "other" so callers always
// receive at least one section.
func (s *Segmenter) Segment(text string) *types.SectionMap {
	sections := types.NewSectionMap()
	current := types.SectionOther
	var content []string

	flush := func() {
		if current != types.SectionOther && len(content) > 0 {
			sections.Set(current, strings.Join(content, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if label, ok := s.headingLabel(line); ok {
			flush()
			current = label
			content = nil
			continue
		}
		if strings.TrimSpace(line) != "" {
			content = append(content, line)
		}
	}
	flush()

	if sections.Len() == 0 {
		sections.Set(types.SectionOther, text)
	}

	return sections
}

// headingLabel reports whether line is a section heading and for which label.
// The heading candidate is the line with all non-word, non-space characters
// stripped, lowercased. Rules are scanned in table order; the first label with
// a matching keyword wins, so at most one heading decision is made per line.
func (s *Segmenter) headingLabel(line string) (types.SectionLabel, bool) {
	candidate := nonWordRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(line)), "")
	if len(candidate) >= maxHeadingLen {
		return "", false
	}

	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(candidate, keyword) {
				return rule.Label, true
			}
		}
	}

	return "", false
}
