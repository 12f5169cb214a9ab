// Package types provides type definitions for structured data used throughout the cv-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionLabel identifies a labeled block of a document.
type SectionLabel string

// Known section labels, in the fixed order the segmenter scans its keyword table.
const (
	SectionExperience     SectionLabel = "experience"
	SectionEducation      SectionLabel = "education"
	SectionSkills         SectionLabel = "skills"
	SectionCertifications SectionLabel = "certifications"
	SectionSummary        SectionLabel = "summary"
	SectionOther          SectionLabel = "other"
)

// SectionMap is an ordered mapping from section label to section text.
// Labels appear in the order they were first encountered in the source document;
// each label appears at most once.
type SectionMap struct {
	labels []SectionLabel
	texts  map[SectionLabel]string
}

// NewSectionMap creates an empty SectionMap.
func NewSectionMap() *SectionMap {
	return &SectionMap{texts: make(map[SectionLabel]string)}
}

// Set stores text for a label. A repeated label keeps its original position
// but its text is replaced.
func (m *SectionMap) Set(label SectionLabel, text string) {
	if _, exists := m.texts[label]; !exists {
		m.labels = append(m.labels, label)
	}
	m.texts[label] = text
}

// Get returns the text for a label and whether the label is present.
func (m *SectionMap) Get(label SectionLabel) (string, bool) {
	text, ok := m.texts[label]
	return text, ok
}

// Text returns the text for a label, or the empty string if absent.
func (m *SectionMap) Text(label SectionLabel) string {
	return m.texts[label]
}

// Labels returns the labels in insertion order.
func (m *SectionMap) Labels() []SectionLabel {
	out := make([]SectionLabel, len(m.labels))
	copy(out, m.labels)
	return out
}

// Len returns the number of sections.
func (m *SectionMap) Len() int {
	return len(m.labels)
}

// Document pairs a raw text with its normalized form and section map.
// Documents are derived once and never mutated.
type Document struct {
	RawText        string      `json:"raw_text"`
	NormalizedText string      `json:"normalized_text"`
	Sections       *SectionMap `json:"-"`
}
