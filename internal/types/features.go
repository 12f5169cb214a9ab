package types

// EducationEntry represents one recognized education line from a document.
type EducationEntry struct {
	Degree string `json:"degree"` // the full trimmed line containing the degree token
	Field  string `json:"field"`  // matched field of study, or empty
}

// KeywordCount is one (word, frequency) pair from keyword extraction.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FeatureSet holds the structured signals extracted from a single document.
type FeatureSet struct {
	Skills          []string         `json:"skills"`                     // deduplicated, case-folded, sorted
	ExperienceYears *float64         `json:"experience_years,omitempty"` // nil when no phrasing matched
	Education       []EducationEntry `json:"education"`
	JobTitles       []string         `json:"job_titles"`
	Keywords        []KeywordCount   `json:"keywords"` // descending frequency, capped at 50
}
