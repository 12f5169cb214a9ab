package features

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/types"
)

func TestKeywords_CountsAndOrdering(t *testing.T) {
	keywords := Default().Keywords("gopher kubernetes kubernetes the the kubernetes", 0)

	require.Len(t, keywords, 2)
	assert.Equal(t, types.KeywordCount{Word: "kubernetes", Count: 3}, keywords[0])
	assert.Equal(t, types.KeywordCount{Word: "gopher", Count: 1}, keywords[1])
}

func TestKeywords_DropsShortTokensAndStopWords(t *testing.T) {
	keywords := Default().Keywords("go is the and or ml to", 0)

	// Every token is either a stop word or below the minimum length.
	assert.Empty(t, keywords)
}

func TestKeywords_CustomMinLength(t *testing.T) {
	keywords := Default().Keywords("go ml", 2)

	require.Len(t, keywords, 2)
}

func TestKeywords_TiesKeepFirstSeenOrder(t *testing.T) {
	keywords := Default().Keywords("alpha beta alpha beta", 0)

	require.Len(t, keywords, 2)
	assert.Equal(t, "alpha", keywords[0].Word)
	assert.Equal(t, "beta", keywords[1].Word)
}

func TestKeywords_CappedAtFifty(t *testing.T) {
	var words []string
	for i := 0; i < 60; i++ {
		words = append(words, fmt.Sprintf("word%02d", i))
	}
	keywords := Default().Keywords(strings.Join(words, " "), 0)

	assert.Len(t, keywords, 50)
}

func TestKeywords_NormalizesBeforeTokenizing(t *testing.T) {
	keywords := Default().Keywords("Python! PYTHON? python.", 0)

	require.Len(t, keywords, 1)
	assert.Equal(t, types.KeywordCount{Word: "python", Count: 3}, keywords[0])
}
