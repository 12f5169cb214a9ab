// Package vocab holds the versioned vocabulary tables that drive feature
// extraction and section segmentation: section heading keywords, skill name
// patterns, degree tokens, field names, job title words and stop words.
// Tables can be loaded from a JSON file validated against the vocabulary
// schema, so the matching core stays agnostic to vocabulary growth.
package vocab

import (
	"fmt"
	"regexp"

	"github.com/jonathan/cv-matcher/internal/types"
)

// SectionKeywords binds a section label to the heading phrases that open it.
// The segmenter scans sets in slice order; the first matching label wins.
type SectionKeywords struct {
	Label    types.SectionLabel `json:"label"`
	Keywords []string           `json:"keywords"`
}

// Tables is a compiled vocabulary set ready for matching.
type Tables struct {
	Version            string
	SectionKeywords    []SectionKeywords
	SkillPatterns      []*regexp.Regexp
	DegreePattern      *regexp.Regexp
	ExperiencePatterns []*regexp.Regexp
	FieldNames         []string
	TitlePattern       *regexp.Regexp
	StopWords          map[string]struct{}
}

// tableFile is the JSON shape of an external vocabulary file.
type tableFile struct {
	Version            string            `json:"version"`
	SectionKeywords    []SectionKeywords `json:"section_keywords"`
	SkillPatterns      []string          `json:"skill_patterns"`
	DegreePattern      string            `json:"degree_pattern"`
	ExperiencePatterns []string          `json:"experience_patterns"`
	FieldNames         []string          `json:"field_names"`
	TitlePattern       string            `json:"title_pattern"`
	StopWords          []string          `json:"stop_words"`
}

// defaultTables is the built-in vocabulary, version "1".
var defaultTables = tableFile{
	Version: "1",
	SectionKeywords: []SectionKeywords{
		{Label: types.SectionExperience, Keywords: []string{"experience", "work experience", "employment", "employment history", "career", "professional experience"}},
		{Label: types.SectionEducation, Keywords: []string{"education", "academic", "qualifications", "degrees", "university", "college"}},
		{Label: types.SectionSkills, Keywords: []string{"skills", "technical skills", "competencies", "expertise", "proficiencies"}},
		{Label: types.SectionCertifications, Keywords: []string{"certifications", "certificates", "certified", "credentials"}},
		{Label: types.SectionSummary, Keywords: []string{"summary", "profile", "objective", "about", "overview"}},
	},
	SkillPatterns: []string{
		`\b(python|java|javascript|typescript|react|angular|vue|node\.?js|sql|mongodb|postgresql|mysql)\b`,
		`\b(machine learning|deep learning|ai|artificial intelligence|nlp|natural language processing)\b`,
		`\b(aws|azure|gcp|cloud|docker|kubernetes|ci/cd|devops)\b`,
		`\b(agile|scrum|kanban|project management|leadership|team management)\b`,
	},
	DegreePattern: `\b(bachelor|b\.?s\.?|b\.?a\.?|master|m\.?s\.?|m\.?a\.?|ph\.?d\.?|doctorate|mba)\b`,
	ExperiencePatterns: []string{
		`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`,
		`(?:experience|exp)[:\s]+(\d+)\+?\s*(?:years?|yrs?)`,
	},
	FieldNames: []string{
		"computer science", "engineering", "business", "mathematics",
		"physics", "chemistry", "biology", "economics",
	},
	TitlePattern: `(?i)\b(software engineer|developer|data scientist|analyst|manager|director|lead|senior|junior)\b`,
	StopWords: []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at",
		"to", "for", "of", "with", "by", "is", "are", "was", "were",
	},
}

// Default returns the compiled built-in vocabulary tables.
func Default() *Tables {
	t, err := defaultTables.compile()
	if err != nil {
		// The built-in tables are fixed; a compile failure is a programming error.
		panic(fmt.Sprintf("vocab: invalid built-in tables: %v", err))
	}
	return t
}

// compile turns a raw table file into a Tables with compiled patterns.
func (f *tableFile) compile() (*Tables, error) {
	t := &Tables{
		Version:         f.Version,
		SectionKeywords: f.SectionKeywords,
		FieldNames:      f.FieldNames,
		StopWords:       make(map[string]struct{}, len(f.StopWords)),
	}

	for _, pattern := range f.SkillPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid skill pattern %q: %w", pattern, err)
		}
		t.SkillPatterns = append(t.SkillPatterns, re)
	}

	degree, err := regexp.Compile(f.DegreePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid degree pattern %q: %w", f.DegreePattern, err)
	}
	t.DegreePattern = degree

	for _, pattern := range f.ExperiencePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid experience pattern %q: %w", pattern, err)
		}
		t.ExperiencePatterns = append(t.ExperiencePatterns, re)
	}

	title, err := regexp.Compile(f.TitlePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid title pattern %q: %w", f.TitlePattern, err)
	}
	t.TitlePattern = title

	for _, word := range f.StopWords {
		t.StopWords[word] = struct{}{}
	}

	return t, nil
}

// IsStopWord reports whether word is in the stop-word table.
func (t *Tables) IsStopWord(word string) bool {
	_, ok := t.StopWords[word]
	return ok
}
