// Package embedding wraps external text-embedding providers behind a small
// contract: text in, fixed-length vector out, optionally L2-normalized.
package embedding

import (
	"context"
	"math"
)

// Provider is an abstraction over embedding providers.
//
// Encode returns one vector per input text, in input order. Implementations
// must substitute a single whitespace character for empty inputs rather than
// failing, and must return L2-normalized vectors when normalize is true.
type Provider interface {
	Encode(ctx context.Context, texts []string, normalize bool) ([][]float32, error)
	// Close releases any resources held by the provider.
	Close() error
}

// ProviderError wraps a failure of the external embedding provider so callers
// can distinguish it from a genuinely low similarity score.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "embedding provider: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// EncodeSingle encodes one text through a provider.
func EncodeSingle(ctx context.Context, p Provider, text string, normalize bool) ([]float32, error) {
	vectors, err := p.Encode(ctx, []string{text}, normalize)
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// l2Normalize scales vec to unit length in place. A zero vector is left as is.
func l2Normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
