// Package sources implements the trend source adapters. Each adapter
// normalizes one origin into TrendItems; orchestration, filtering, and
// fault isolation live in the collector package.
package sources

import (
	"context"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/types"
)

// Adapter produces a normalized list of trend items from one origin.
// Implementations must return an empty slice (not an error) when the origin
// simply has nothing; errors are reserved for transport-level failures,
// which the orchestrator records as warnings without aborting the run.
type Adapter interface {
	// Name identifies the source in statistics and warnings.
	Name() string
	// Fetch collects items, honoring the given time-range hint when the
	// origin supports one.
	Fetch(ctx context.Context, timeRange string) ([]types.TrendItem, error)
}

// DefaultAdapters returns the production adapter set in priority order:
// API-backed sources first, then RSS feeds. Warnings and statistics follow
// this order regardless of completion order.
func DefaultAdapters(client *fetch.Client, log logging.Logger) []Adapter {
	return []Adapter{
		NewProductHunt(client, log),
		NewReddit(client, log),
		NewHackerNews(client, log),
		NewGitHubTrending(client, log),
		NewIndieHackers(client, log),
		NewFeed("Ben's Bites", "https://www.bensbites.com/feed", bensBitesMaxItems, client, log),
		NewFeed("TLDR AI", "https://tldrai.com/rss", tldrMaxItems, client, log),
	}
}

// SkippedSourceWarnings describes origins that are intentionally not
// implemented because they require an authenticated session. The
// orchestrator appends these verbatim as informational warnings.
func SkippedSourceWarnings() []string {
	return []string{
		"[INFO] skipping Weibo trending (requires login)",
		"[INFO] skipping Xiaohongshu trending (requires login)",
		"[INFO] skipping Twitter trending (requires login)",
	}
}
