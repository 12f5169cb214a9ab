// Package scoring combines similarity and feature signals into a weighted
// composite match score with an explainable breakdown.
package scoring

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// weightSumTolerance is how far the weight sum may drift from 1.0.
const weightSumTolerance = 0.01

// Weights holds the scoring component weights. A valid weight set sums to 1.0
// within tolerance; SetWeights rejects anything else.
type Weights struct {
	OverallSimilarity float64 `json:"overall_similarity" validate:"gte=0,lte=1"`
	SkillsMatch       float64 `json:"skills_match" validate:"gte=0,lte=1"`
	ExperienceMatch   float64 `json:"experience_match" validate:"gte=0,lte=1"`
	EducationMatch    float64 `json:"education_match" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		OverallSimilarity: 0.4,
		SkillsMatch:       0.3,
		ExperienceMatch:   0.2,
		EducationMatch:    0.1,
	}
}

// Validate checks the individual weight bounds and the sum-to-1 invariant.
func (w Weights) Validate() error {
	validate := validator.New()
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid weights: %w", err)
	}

	sum := w.OverallSimilarity + w.SkillsMatch + w.ExperienceMatch + w.EducationMatch
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", sum)
	}

	return nil
}
