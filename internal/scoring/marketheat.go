package scoring

import (
	"strings"

	"github.com/jonathan/trendscout/internal/textutil"
	"github.com/jonathan/trendscout/internal/types"
)

// MarketHeat scores current market attention. The composite is the product
// of social buzz, GitHub trend, and Product Hunt heat, divided by 10000.
func MarketHeat(name, description string, trendScore float64) types.MarketHeatScore {
	buzz := clamp(trendScore*0.8+20, 30, 95)
	github := buzzComponent(name, description, techBuzzKeywords)
	productHunt := buzzComponent(name, description, toolBuzzKeywords)

	return types.MarketHeatScore{
		SocialMediaBuzz: buzz,
		GitHubTrend:     github,
		ProductHuntHeat: productHunt,
		Composite:       buzz * github * productHunt / 10000,
	}
}

// buzzComponent starts at 50 and adds 10 per matched keyword, bounded to
// [40, 90].
func buzzComponent(name, description string, keywords []string) float64 {
	text := strings.ToLower(name + " " + description)
	score := 50.0 + float64(10*textutil.CountMatches(text, keywords))
	return clamp(score, 40, 90)
}
