// Package scoring computes the four dimension scores for a candidate
// project and combines them into one weighted comprehensive score. Every
// component is a deterministic heuristic over the candidate text and the
// user profile; no network calls happen here.
package scoring

import (
	"errors"

	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/types"
)

// Engine scores candidates against one user profile.
type Engine struct {
	profile *types.UserProfile
	weights types.ScoringWeights
	log     logging.Logger
}

// NewEngine creates an Engine. The profile's weights are used as given;
// normalization is the profile loader's responsibility.
func NewEngine(profile *types.UserProfile, log logging.Logger) (*Engine, error) {
	if profile == nil {
		return nil, errors.New("scoring: profile is required")
	}
	return &Engine{
		profile: profile,
		weights: profile.Weights(),
		log:     log.Named("scoring"),
	}, nil
}

// Weights returns the weight vector the engine applies.
func (e *Engine) Weights() types.ScoringWeights { return e.weights }

// Score computes all four dimensions for one candidate and their weighted
// sum. Scoring the same candidate twice yields the same result.
func (e *Engine) Score(candidate *types.CandidateProject) (*types.ComprehensiveScore, error) {
	if candidate == nil {
		return nil, errors.New("scoring: candidate is required")
	}
	if candidate.Name == "" {
		return nil, errors.New("scoring: candidate has no name")
	}

	blueOcean := BlueOcean(candidate.Name, candidate.Description, candidate.TrendScore)
	match := Match(candidate.Name, candidate.Description, e.profile)
	heat := MarketHeat(candidate.Name, candidate.Description, candidate.TrendScore)
	feasibility := Feasibility(candidate.Name, candidate.Description, e.profile)

	comprehensive := combine(e.weights,
		blueOcean.Composite, match.Composite, heat.Composite, feasibility.Composite)

	e.log.Debug("scored candidate",
		logging.String("candidate", candidate.Name),
		logging.Float64("comprehensive", comprehensive))

	score := &types.ComprehensiveScore{
		BlueOcean:     blueOcean,
		Match:         match,
		MarketHeat:    heat,
		Feasibility:   feasibility,
		Weights:       e.weights,
		Comprehensive: comprehensive,
	}
	return score, nil
}

// combine applies the weight vector to the four dimension composites.
func combine(w types.ScoringWeights, blueOcean, match, heat, feasibility float64) float64 {
	return blueOcean*w.BlueOcean + match*w.MatchScore + heat*w.MarketHeat + feasibility*w.Feasibility
}
