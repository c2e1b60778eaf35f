package sources

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/types"
)

const redditPostLimit = 20

// defaultSubreddits are the communities polled for builder-oriented trends.
var defaultSubreddits = []string{
	"artificial",
	"MachineLearning",
	"SaaS",
	"Entrepreneur",
	"SideProject",
	"startups",
}

// Reddit fetches hot posts from a set of subreddits through the public JSON
// listings.
type Reddit struct {
	client     *fetch.Client
	log        logging.Logger
	subreddits []string
	baseURL    string
}

// NewReddit creates the Reddit adapter with the default subreddit set.
func NewReddit(client *fetch.Client, log logging.Logger) *Reddit {
	return &Reddit{
		client:     client,
		log:        log.Named("reddit"),
		subreddits: defaultSubreddits,
		baseURL:    "https://www.reddit.com",
	}
}

// Name implements Adapter.
func (r *Reddit) Name() string { return "Reddit" }

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title      string  `json:"title"`
				Selftext   string  `json:"selftext"`
				URL        string  `json:"url"`
				Permalink  string  `json:"permalink"`
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Fetch implements Adapter. Subreddit failures are isolated from each
// other; an error is returned only when every subreddit failed, so the
// orchestrator sees either items or one transport failure for the source.
func (r *Reddit) Fetch(ctx context.Context, _ string) ([]types.TrendItem, error) {
	var items []types.TrendItem
	var failures []error

	for _, subreddit := range r.subreddits {
		url := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", r.baseURL, subreddit, redditPostLimit)

		var listing redditListing
		if err := r.client.GetJSON(ctx, url, &listing); err != nil {
			r.log.Warn("subreddit fetch failed", logging.String("subreddit", subreddit), logging.Err(err))
			failures = append(failures, fmt.Errorf("r/%s: %w", subreddit, err))
			continue
		}

		for _, child := range listing.Data.Children {
			post := child.Data
			description := post.Selftext
			if description == "" {
				description = post.URL
			}
			items = append(items, types.TrendItem{
				Title:       post.Title,
				Description: description,
				URL:         "https://www.reddit.com" + post.Permalink,
				Tags:        []string{},
				Platform:    fmt.Sprintf("Reddit (r/%s)", subreddit),
				PublishedAt: time.Unix(int64(post.CreatedUTC), 0).UTC(),
			})
		}

		r.log.Info("fetched posts",
			logging.String("subreddit", subreddit),
			logging.Int("count", len(listing.Data.Children)))
	}

	if len(items) == 0 && len(failures) > 0 {
		return nil, errors.Join(failures...)
	}
	return items, nil
}
