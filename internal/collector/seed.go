package collector

import (
	"fmt"
	"net/url"
	"time"

	"github.com/jonathan/trendscout/internal/types"
)

// SeedPlatform marks synthetic items so downstream consumers can tell them
// apart from live signals.
const SeedPlatform = "seed"

const seedRelevanceScore = 50

// seedTopics back the fallback when every source fails or filters empty.
var seedTopics = []string{
	"AI writing assistant",
	"AI code generator",
	"Chrome productivity extension",
	"Notion template tool",
	"GitHub workflow enhancer",
	"AI image generator",
	"Markdown editor",
	"API debugging tool",
	"Database admin tool",
	"CI/CD pipeline visualizer",
}

// SeedProjects synthesizes a fixed set of candidate items from the seed
// topics, each with a neutral relevance score. The pipeline calls this when
// collection yields zero items so scoring and reporting always have
// something to work with.
func SeedProjects(projectTypes []string, now func() time.Time) *types.CollectionResult {
	if now == nil {
		now = time.Now
	}
	tags := projectTypes
	if tags == nil {
		tags = []string{}
	}

	items := make([]types.TrendItem, 0, len(seedTopics))
	for _, topic := range seedTopics {
		items = append(items, types.TrendItem{
			Title:          topic,
			Description:    fmt.Sprintf("Automation tooling built around %s to speed up everyday work", topic),
			URL:            "https://example.com/" + url.PathEscape(topic),
			Tags:           tags,
			Platform:       SeedPlatform,
			PublishedAt:    now().UTC(),
			RelevanceScore: seedRelevanceScore,
		})
	}

	return &types.CollectionResult{
		Items:       items,
		Warnings:    []string{"[INFO] generated candidates from seed topics"},
		SourceStats: map[string]int{SeedPlatform: len(items)},
	}
}
