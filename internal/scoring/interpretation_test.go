package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Excellent Match"},
		{90, "Excellent Match"},
		{89.99, "Good Match"},
		{75, "Good Match"},
		{74.99, "Moderate Match"},
		{60, "Moderate Match"},
		{59.99, "Weak Match"},
		{40, "Weak Match"},
		{39.99, "Poor Match"},
		{0, "Poor Match"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Interpret(tt.score), "score %.2f", tt.score)
	}
}
