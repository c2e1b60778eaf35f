package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScoringWeights(t *testing.T) {
	w := DefaultScoringWeights()

	assert.Equal(t, 0.4, w.BlueOcean)
	assert.Equal(t, 0.3, w.MatchScore)
	assert.Equal(t, 0.2, w.MarketHeat)
	assert.Equal(t, 0.1, w.Feasibility)
	assert.True(t, w.IsNormalized())
}

func TestScoringWeights_IsNormalized(t *testing.T) {
	assert.True(t, ScoringWeights{0.25, 0.25, 0.25, 0.25}.IsNormalized())
	assert.False(t, ScoringWeights{0.5, 0.5, 0.5, 0.5}.IsNormalized())
	// Within the 0.01 tolerance.
	assert.True(t, ScoringWeights{0.4, 0.3, 0.2, 0.105}.IsNormalized())
}

func TestScoringWeights_Normalized(t *testing.T) {
	w := ScoringWeights{0.8, 0.6, 0.4, 0.2}.Normalized()

	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
	assert.InDelta(t, 0.4, w.BlueOcean, 1e-9)
	assert.InDelta(t, 0.3, w.MatchScore, 1e-9)
	assert.InDelta(t, 0.2, w.MarketHeat, 1e-9)
	assert.InDelta(t, 0.1, w.Feasibility, 1e-9)
}

func TestScoringWeights_NormalizedZeroSumFallsBack(t *testing.T) {
	w := ScoringWeights{}.Normalized()

	assert.Equal(t, DefaultScoringWeights(), w)
}
