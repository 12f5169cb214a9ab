package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_Valid(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
}

func TestWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr string
	}{
		{
			name:    "valid custom split",
			weights: Weights{OverallSimilarity: 0.25, SkillsMatch: 0.25, ExperienceMatch: 0.25, EducationMatch: 0.25},
		},
		{
			name:    "sum within tolerance",
			weights: Weights{OverallSimilarity: 0.4, SkillsMatch: 0.3, ExperienceMatch: 0.2, EducationMatch: 0.105},
		},
		{
			name:    "sum too low",
			weights: Weights{OverallSimilarity: 0.4, SkillsMatch: 0.3, ExperienceMatch: 0.2},
			wantErr: "weights must sum to 1.0",
		},
		{
			name:    "negative component",
			weights: Weights{OverallSimilarity: 1.2, SkillsMatch: -0.2, ExperienceMatch: 0, EducationMatch: 0},
			wantErr: "invalid weights",
		},
		{
			name:    "component above one",
			weights: Weights{OverallSimilarity: 1.5, SkillsMatch: 0, ExperienceMatch: 0, EducationMatch: 0},
			wantErr: "invalid weights",
		},
		{
			name:    "zero weights",
			weights: Weights{},
			wantErr: "weights must sum to 1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
