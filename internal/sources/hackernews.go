package sources

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/textutil"
	"github.com/jonathan/trendscout/internal/types"
)

const (
	hackerNewsTopStoriesURL = "https://hacker-news.firebaseio.com/v0/topstories.json"
	hackerNewsItemURLFmt    = "https://hacker-news.firebaseio.com/v0/item/%d.json"
	hackerNewsStoryLimit    = 50
	// hackerNewsFanOut bounds concurrent per-story detail fetches. Each
	// fetch is independent and per-story failures are swallowed, so the
	// limit only affects throughput.
	hackerNewsFanOut = 5
	// hackerNewsMinRelevance is the prefilter threshold: stories below it
	// are not worth carrying into the pipeline.
	hackerNewsMinRelevance = 30
)

// aiKeywords drive the Hacker News prefilter; each hit adds 20 points.
var aiKeywords = []string{
	"ai", "gpt", "chatgpt", "openai", "claude", "gemini",
	"llm", "machine learning", "deep learning", "neural",
	"automation", "copilot", "agent",
}

// HackerNews fetches top stories from the Hacker News Firebase API.
type HackerNews struct {
	client *fetch.Client
	log    logging.Logger

	topStoriesURL string
	itemURLFmt    string
}

// NewHackerNews creates the Hacker News adapter.
func NewHackerNews(client *fetch.Client, log logging.Logger) *HackerNews {
	return &HackerNews{
		client:        client,
		log:           log.Named("hackernews"),
		topStoriesURL: hackerNewsTopStoriesURL,
		itemURLFmt:    hackerNewsItemURLFmt,
	}
}

// Name implements Adapter.
func (h *HackerNews) Name() string { return "Hacker News" }

type hackerNewsStory struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
	Time  int64  `json:"time"`
}

// Fetch implements Adapter. The top-stories listing failure propagates to
// the orchestrator; individual story fetch failures are skipped.
func (h *HackerNews) Fetch(ctx context.Context, _ string) ([]types.TrendItem, error) {
	var storyIDs []int
	if err := h.client.GetJSON(ctx, h.topStoriesURL, &storyIDs); err != nil {
		return nil, fmt.Errorf("fetching top stories: %w", err)
	}

	if len(storyIDs) > hackerNewsStoryLimit {
		storyIDs = storyIDs[:hackerNewsStoryLimit]
	}

	type indexed struct {
		index int
		item  types.TrendItem
	}

	var mu sync.Mutex
	var collected []indexed

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(hackerNewsFanOut)

	for i, id := range storyIDs {
		g.Go(func() error {
			var story hackerNewsStory
			url := fmt.Sprintf(h.itemURLFmt, id)
			if err := h.client.GetJSON(gCtx, url, &story); err != nil {
				h.log.Debug("skipping story", logging.Int("id", id), logging.Err(err))
				return nil
			}
			if story.Title == "" {
				return nil
			}

			relevance := aiRelevance(story.Title, story.Text)
			if relevance <= hackerNewsMinRelevance {
				return nil
			}

			storyURL := story.URL
			if storyURL == "" {
				storyURL = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", id)
			}

			mu.Lock()
			collected = append(collected, indexed{index: i, item: types.TrendItem{
				Title:          story.Title,
				Description:    story.Text,
				URL:            storyURL,
				Tags:           []string{},
				Platform:       "Hacker News",
				PublishedAt:    time.Unix(story.Time, 0).UTC(),
				RelevanceScore: relevance,
			}})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Restore listing order; completion order depends on fan-out timing.
	sort.Slice(collected, func(a, b int) bool { return collected[a].index < collected[b].index })

	items := make([]types.TrendItem, 0, len(collected))
	for _, c := range collected {
		items = append(items, c.item)
	}

	h.log.Info("fetched stories", logging.Int("count", len(items)))
	return items, nil
}

// aiRelevance scores a story 0-100 by AI keyword hits, 20 points each.
func aiRelevance(title, text string) float64 {
	haystack := strings.ToLower(title + " " + text)
	score := float64(20 * textutil.CountMatches(haystack, aiKeywords))
	if score > 100 {
		score = 100
	}
	return score
}
