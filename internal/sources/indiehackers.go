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
	indieHackersFeedURL  = "https://www.indiehackers.com/feed"
	indieHackersMaxItems = 40
)

// IndieHackers fetches community posts from the public feed.
type IndieHackers struct {
	client *fetch.Client
	parser *gofeed.Parser
	log    logging.Logger
	url    string
}

// NewIndieHackers creates the IndieHackers adapter.
func NewIndieHackers(client *fetch.Client, log logging.Logger) *IndieHackers {
	return &IndieHackers{
		client: client,
		parser: gofeed.NewParser(),
		log:    log.Named("indiehackers"),
		url:    indieHackersFeedURL,
	}
}

// Name implements Adapter.
func (i *IndieHackers) Name() string { return "IndieHackers" }

// Fetch implements Adapter.
func (i *IndieHackers) Fetch(ctx context.Context, _ string) ([]types.TrendItem, error) {
	result, err := i.client.Get(ctx, i.url)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	parsed, err := i.parser.ParseString(result.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	items := mapFeedItems(parsed.Items, "IndieHackers", indieHackersMaxItems)
	i.log.Info("fetched posts", logging.Int("count", len(items)))
	return items, nil
}

// parseTimeOrNow parses an RFC3339 timestamp, defaulting to now.
func parseTimeOrNow(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC()
	}
	return time.Now().UTC()
}
