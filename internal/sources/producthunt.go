package sources

import (
	"context"
	"fmt"
	"os"

	"github.com/mmcdole/gofeed"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/types"
)

const (
	productHuntFeedURL  = "https://www.producthunt.com/feed"
	productHuntAPIURL   = "https://api.producthunt.com/v2/posts"
	productHuntMaxItems = 30
)

// EnvProductHuntAPIKey names the optional API token. Without it the adapter
// falls back to the public feed, which needs no authentication.
const EnvProductHuntAPIKey = "PRODUCT_HUNT_API_KEY"

// ProductHunt fetches recent launches, preferring the authenticated API and
// degrading to the RSS feed.
type ProductHunt struct {
	client  *fetch.Client
	parser  *gofeed.Parser
	log     logging.Logger
	feedURL string
	apiURL  string
}

// NewProductHunt creates the Product Hunt adapter.
func NewProductHunt(client *fetch.Client, log logging.Logger) *ProductHunt {
	return &ProductHunt{
		client:  client,
		parser:  gofeed.NewParser(),
		log:     log.Named("producthunt"),
		feedURL: productHuntFeedURL,
		apiURL:  productHuntAPIURL,
	}
}

// Name implements Adapter.
func (p *ProductHunt) Name() string { return "Product Hunt" }

// Fetch implements Adapter.
func (p *ProductHunt) Fetch(ctx context.Context, _ string) ([]types.TrendItem, error) {
	if os.Getenv(EnvProductHuntAPIKey) == "" {
		p.log.Debug("no API key configured, using RSS feed")
		return p.fetchRSS(ctx)
	}
	items, err := p.fetchAPI(ctx)
	if err != nil {
		p.log.Warn("API fetch failed, falling back to RSS", logging.Err(err))
		return p.fetchRSS(ctx)
	}
	return items, nil
}

func (p *ProductHunt) fetchRSS(ctx context.Context) ([]types.TrendItem, error) {
	result, err := p.client.Get(ctx, p.feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	parsed, err := p.parser.ParseString(result.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	items := mapFeedItems(parsed.Items, "Product Hunt", productHuntMaxItems)
	p.log.Info("fetched launches", logging.Int("count", len(items)))
	return items, nil
}

type productHuntPost struct {
	Name      string   `json:"name"`
	Tagline   string   `json:"tagline"`
	URL       string   `json:"discussion_url"`
	Topics    []string `json:"topics"`
	CreatedAt string   `json:"created_at"`
}

func (p *ProductHunt) fetchAPI(ctx context.Context) ([]types.TrendItem, error) {
	apiClient := fetch.NewClient(&fetch.Options{
		Headers: map[string]string{
			"Authorization": "Bearer " + os.Getenv(EnvProductHuntAPIKey),
			"Accept":        "application/json",
		},
	})

	var payload struct {
		Posts []productHuntPost `json:"posts"`
	}
	if err := apiClient.GetJSON(ctx, p.apiURL, &payload); err != nil {
		return nil, err
	}

	items := make([]types.TrendItem, 0, len(payload.Posts))
	for _, post := range payload.Posts {
		if len(items) >= productHuntMaxItems {
			break
		}
		if post.URL == "" {
			continue
		}
		tags := post.Topics
		if tags == nil {
			tags = []string{}
		}
		items = append(items, types.TrendItem{
			Title:       post.Name,
			Description: post.Tagline,
			URL:         post.URL,
			Tags:        tags,
			Platform:    "Product Hunt",
			PublishedAt: parseTimeOrNow(post.CreatedAt),
		})
	}

	p.log.Info("fetched launches from API", logging.Int("count", len(items)))
	return items, nil
}
