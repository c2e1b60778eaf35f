package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/types"
)

const (
	bensBitesMaxItems = 40
	tldrMaxItems      = 40
)

// Feed is a generic RSS/Atom adapter. The body is fetched through the
// shared retrying client and handed to gofeed, so feeds get the same
// timeout and backoff behavior as the API sources.
type Feed struct {
	name     string
	url      string
	maxItems int
	client   *fetch.Client
	parser   *gofeed.Parser
	log      logging.Logger
}

// NewFeed creates a feed adapter for one origin.
func NewFeed(name, url string, maxItems int, client *fetch.Client, log logging.Logger) *Feed {
	return &Feed{
		name:     name,
		url:      url,
		maxItems: maxItems,
		client:   client,
		parser:   gofeed.NewParser(),
		log:      log.Named("feed"),
	}
}

// Name implements Adapter.
func (f *Feed) Name() string { return f.name }

// Fetch implements Adapter. Entries without a link are dropped since the
// URL is the pipeline's identity key.
func (f *Feed) Fetch(ctx context.Context, _ string) ([]types.TrendItem, error) {
	result, err := f.client.Get(ctx, f.url)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	parsed, err := f.parser.ParseString(result.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	items := mapFeedItems(parsed.Items, f.name, f.maxItems)
	f.log.Info("fetched entries", logging.String("feed", f.name), logging.Int("count", len(items)))
	return items, nil
}

// mapFeedItems converts gofeed entries into trend items.
func mapFeedItems(entries []*gofeed.Item, platform string, maxItems int) []types.TrendItem {
	items := make([]types.TrendItem, 0, len(entries))
	for _, entry := range entries {
		if len(items) >= maxItems {
			break
		}
		if entry == nil || entry.Link == "" {
			continue
		}

		description := entry.Description
		if description == "" {
			description = entry.Content
		}

		publishedAt := time.Now().UTC()
		if entry.PublishedParsed != nil {
			publishedAt = entry.PublishedParsed.UTC()
		} else if entry.UpdatedParsed != nil {
			publishedAt = entry.UpdatedParsed.UTC()
		}

		tags := entry.Categories
		if tags == nil {
			tags = []string{}
		}

		items = append(items, types.TrendItem{
			Title:       entry.Title,
			Description: description,
			URL:         entry.Link,
			Tags:        tags,
			Platform:    platform,
			PublishedAt: publishedAt,
		})
	}
	return items
}
