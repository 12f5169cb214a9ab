// Package features derives structured signals from document text: skill sets,
// years of experience, education entries, job titles and keyword frequencies.
// All matching vocabularies come from the vocab tables, so extraction behavior
// is fixed by the table version, not by code.
package features

import (
	"github.com/jonathan/cv-matcher/internal/vocab"
)

// Extractor extracts features using a vocabulary table set.
type Extractor struct {
	tables *vocab.Tables
}

// NewExtractor creates an Extractor over the given tables.
func NewExtractor(tables *vocab.Tables) *Extractor {
	return &Extractor{tables: tables}
}

// Default returns an Extractor over the built-in vocabulary.
func Default() *Extractor {
	return NewExtractor(vocab.Default())
}
