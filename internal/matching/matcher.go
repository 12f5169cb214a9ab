// Package matching wires the full document-matching pipeline: normalization,
// section segmentation, feature extraction, similarity and scoring.
package matching

import (
	"context"

	"github.com/jonathan/cv-matcher/internal/embedding"
	"github.com/jonathan/cv-matcher/internal/features"
	"github.com/jonathan/cv-matcher/internal/scoring"
	"github.com/jonathan/cv-matcher/internal/similarity"
	"github.com/jonathan/cv-matcher/internal/textproc"
	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/jonathan/cv-matcher/internal/vocab"
)

// Matcher runs match requests against a shared embedding provider and weight
// configuration. A Matcher is safe for concurrent use; independent requests
// share no other mutable state.
type Matcher struct {
	segmenter *textproc.Segmenter
	extractor *features.Extractor
	engine    *scoring.Engine
}

// New creates a Matcher over the given embedding provider. Nil tables select
// the built-in vocabulary.
func New(provider embedding.Provider, tables *vocab.Tables) *Matcher {
	if tables == nil {
		tables = vocab.Default()
	}
	segmenter := textproc.NewSegmenter(tables)
	extractor := features.NewExtractor(tables)
	sim := similarity.NewEngine(provider)

	return &Matcher{
		segmenter: segmenter,
		extractor: extractor,
		engine:    scoring.NewEngine(sim, extractor, segmenter),
	}
}

// Engine exposes the scoring engine, e.g. for weight reconfiguration.
func (m *Matcher) Engine() *scoring.Engine {
	return m.engine
}

// Prepare derives a Document from raw text: normalized text plus section map.
func (m *Matcher) Prepare(rawText string) *types.Document {
	normalized := textproc.Normalize(rawText)
	return &types.Document{
		RawText:        rawText,
		NormalizedText: normalized,
		Sections:       m.segmenter.Segment(normalized),
	}
}

// Match scores a CV against a job description and returns the full report:
// score breakdown, interpretation and both extracted feature sets.
func (m *Matcher) Match(ctx context.Context, cvRaw, jobRaw string) (*types.MatchResult, error) {
	cv := m.Prepare(cvRaw)
	job := m.Prepare(jobRaw)

	score, err := m.engine.Score(ctx, cv.NormalizedText, job.NormalizedText, cv.Sections, job.Sections)
	if err != nil {
		return nil, err
	}

	return &types.MatchResult{
		Score:          score,
		Interpretation: scoring.Interpret(score.FinalScore),
		CVFeatures:     m.extractor.Extract(cv.NormalizedText, cv.Sections),
		JobFeatures:    m.extractor.Extract(job.NormalizedText, job.Sections),
	}, nil
}
