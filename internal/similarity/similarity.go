// Package similarity computes cosine similarity between documents and between
// matching document sections, using an embedding provider for the vectors.
package similarity

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/cv-matcher/internal/embedding"
	"github.com/jonathan/cv-matcher/internal/types"
)

// Engine computes pairwise text similarity over an embedding provider.
type Engine struct {
	provider embedding.Provider
}

// NewEngine creates an Engine over the given provider.
func NewEngine(provider embedding.Provider) *Engine {
	return &Engine{provider: provider}
}

// Similarity returns the cosine similarity of two texts, clamped to [0,1].
// If either text is empty it returns 0 without calling the provider. Both
// texts are encoded in a single batch request.
func (e *Engine) Similarity(ctx context.Context, a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, nil
	}

	vectors, err := e.provider.Encode(ctx, []string{a, b}, true)
	if err != nil {
		return 0, fmt.Errorf("failed to encode texts: %w", err)
	}

	return clamp01(Cosine(vectors[0], vectors[1])), nil
}

// OverallSimilarity is Similarity applied to two full documents.
func (e *Engine) OverallSimilarity(ctx context.Context, cvText, jobText string) (float64, error) {
	return e.Similarity(ctx, cvText, jobText)
}

// SectionSimilarities computes per-label similarity over the union of labels
// present in either section map. A label with empty or missing text on either
// side scores 0.0 rather than being skipped; all remaining pairs are encoded
// in one batch request.
func (e *Engine) SectionSimilarities(ctx context.Context, cvSections, jobSections *types.SectionMap) (map[types.SectionLabel]float64, error) {
	similarities := make(map[types.SectionLabel]float64)
	if cvSections == nil || jobSections == nil {
		return similarities, nil
	}

	var pairLabels []types.SectionLabel
	var texts []string
	for _, label := range unionLabels(cvSections, jobSections) {
		cvText := cvSections.Text(label)
		jobText := jobSections.Text(label)
		if cvText == "" || jobText == "" {
			similarities[label] = 0.0
			continue
		}
		pairLabels = append(pairLabels, label)
		texts = append(texts, cvText, jobText)
	}

	if len(pairLabels) == 0 {
		return similarities, nil
	}

	vectors, err := e.provider.Encode(ctx, texts, true)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sections: %w", err)
	}

	for i, label := range pairLabels {
		similarities[label] = clamp01(Cosine(vectors[2*i], vectors[2*i+1]))
	}

	return similarities, nil
}

// unionLabels returns the labels of a followed by the labels of b not in a,
// each in insertion order.
func unionLabels(a, b *types.SectionMap) []types.SectionLabel {
	labels := a.Labels()
	seen := make(map[types.SectionLabel]struct{}, len(labels))
	for _, label := range labels {
		seen[label] = struct{}{}
	}
	for _, label := range b.Labels() {
		if _, ok := seen[label]; !ok {
			labels = append(labels, label)
		}
	}
	return labels
}

// Cosine returns the cosine similarity of two vectors as the normalized dot
// product, in [-1,1]. Mismatched or zero-length vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// clamp01 clamps v to [0,1], guarding against floating-point drift past 1.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
