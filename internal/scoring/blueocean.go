package scoring

import (
	"strings"

	"github.com/jonathan/trendscout/internal/textutil"
	"github.com/jonathan/trendscout/internal/types"
)

// BlueOcean scores how uncontested the opportunity looks. The composite is
// the product of traffic stability, competitor quality gap, and
// monetization feasibility, divided by 10000.
func BlueOcean(name, description string, trendScore float64) types.BlueOceanScore {
	trafficStability := clamp(trendScore, 30, 95)
	qualityGap := competitorQualityGap(name, description)
	monetization := monetizationFeasibility(description)

	return types.BlueOceanScore{
		TrafficStability:        trafficStability,
		QualityGap:              qualityGap,
		MonetizationFeasibility: monetization,
		Composite:               trafficStability * qualityGap * monetization / 10000,
	}
}

// competitorQualityGap estimates how far existing offerings lag, inferred
// from novelty versus crowded-market vocabulary.
func competitorQualityGap(name, description string) float64 {
	text := strings.ToLower(name + " " + description)

	score := 60.0
	score += float64(10 * textutil.CountMatches(text, blueOceanKeywords))
	score -= float64(20 * textutil.CountMatches(text, redOceanKeywords))

	return clamp(score, 20, 95)
}

// monetizationFeasibility estimates willingness to pay from commercial
// intent vocabulary in the description.
func monetizationFeasibility(description string) float64 {
	text := strings.ToLower(description)

	score := 60.0
	score += float64(8 * textutil.CountMatches(text, highCommercialIntent))
	score -= float64(15 * textutil.CountMatches(text, lowCommercialIntent))

	return clamp(score, 30, 95)
}
