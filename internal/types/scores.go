package types

import "math"

// Each dimension's composite is the product of its three 0-100 components
// divided by 10000. One weak component drags the composite down
// disproportionately compared to an additive mean; that penalty is
// intentional.

// BlueOceanScore measures how uncontested the opportunity looks.
type BlueOceanScore struct {
	TrafficStability        float64 `json:"traffic_stability"`
	QualityGap              float64 `json:"quality_gap"`
	MonetizationFeasibility float64 `json:"monetization_feasibility"`
	Composite               float64 `json:"composite"`
}

// MatchDetails lists the skill and resource evidence behind a MatchScore.
type MatchDetails struct {
	RequiredSkills     []string `json:"required_skills"`
	AvailableSkills    []string `json:"available_skills"`
	MissingSkills      []string `json:"missing_skills"`
	RequiredResources  []string `json:"required_resources"`
	AvailableResources []string `json:"available_resources"`
	MissingResources   []string `json:"missing_resources"`
}

// MatchScore measures how well the candidate fits the user's background.
type MatchScore struct {
	SkillMatch      float64      `json:"skill_match"`
	ResourceMatch   float64      `json:"resource_match"`
	ExperienceMatch float64      `json:"experience_match"`
	Composite       float64      `json:"composite"`
	Details         MatchDetails `json:"details"`
}

// MarketHeatScore measures current market attention.
type MarketHeatScore struct {
	SocialMediaBuzz float64 `json:"social_media_buzz"`
	GitHubTrend     float64 `json:"github_trend"`
	ProductHuntHeat float64 `json:"product_hunt_heat"`
	Composite       float64 `json:"composite"`
}

// FeasibilityScore measures whether the user can realistically build it.
type FeasibilityScore struct {
	TechFamiliarity      float64 `json:"tech_familiarity"`
	DevTimeEstimate      float64 `json:"dev_time_estimate"`
	ResourceAvailability float64 `json:"resource_availability"`
	Composite            float64 `json:"composite"`
	// EstimatedWeeks is surfaced standalone for display.
	EstimatedWeeks int `json:"estimated_weeks"`
}

// ComprehensiveScore combines the four dimension composites through a
// weighted sum.
type ComprehensiveScore struct {
	BlueOcean     BlueOceanScore   `json:"blue_ocean"`
	Match         MatchScore       `json:"match"`
	MarketHeat    MarketHeatScore  `json:"market_heat"`
	Feasibility   FeasibilityScore `json:"feasibility"`
	Weights       ScoringWeights   `json:"weights"`
	Comprehensive float64          `json:"comprehensive"`
}

// ScoringWeights is the weight vector over the four dimensions. The scoring
// engine trusts these as given; normalization happens at profile load time.
type ScoringWeights struct {
	BlueOcean   float64 `json:"blue_ocean" yaml:"blue_ocean" validate:"gte=0"`
	MatchScore  float64 `json:"match_score" yaml:"match_score" validate:"gte=0"`
	MarketHeat  float64 `json:"market_heat" yaml:"market_heat" validate:"gte=0"`
	Feasibility float64 `json:"feasibility" yaml:"feasibility" validate:"gte=0"`
}

// DefaultScoringWeights returns the standard 0.4/0.3/0.2/0.1 split.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		BlueOcean:   0.4,
		MatchScore:  0.3,
		MarketHeat:  0.2,
		Feasibility: 0.1,
	}
}

// Sum returns the total of the four weights.
func (w ScoringWeights) Sum() float64 {
	return w.BlueOcean + w.MatchScore + w.MarketHeat + w.Feasibility
}

// IsNormalized reports whether the weights sum to 1.0 within tolerance.
func (w ScoringWeights) IsNormalized() bool {
	return math.Abs(w.Sum()-1.0) <= 0.01
}

// Normalized returns a copy scaled so the weights sum to 1.0. A zero-sum
// vector falls back to the defaults.
func (w ScoringWeights) Normalized() ScoringWeights {
	sum := w.Sum()
	if sum == 0 {
		return DefaultScoringWeights()
	}
	return ScoringWeights{
		BlueOcean:   w.BlueOcean / sum,
		MatchScore:  w.MatchScore / sum,
		MarketHeat:  w.MarketHeat / sum,
		Feasibility: w.Feasibility / sum,
	}
}
