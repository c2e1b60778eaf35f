package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/types"
)

const (
	githubTrendingURL  = "https://github.com/trending"
	githubRepoLimit    = 30
	githubTrendingName = "GitHub Trending"
)

// GitHubTrending scrapes the public trending page. There is no stable API
// for trending, so this parses the listing HTML with goquery. When the
// plain fetch comes back as a client-rendered shell, the page is re-fetched
// through a headless browser.
type GitHubTrending struct {
	client *fetch.Client
	log    logging.Logger
	url    string
	render func(ctx context.Context, url string) (string, error)
}

// NewGitHubTrending creates the GitHub trending adapter.
func NewGitHubTrending(client *fetch.Client, log logging.Logger) *GitHubTrending {
	return &GitHubTrending{
		client: client,
		log:    log.Named("github"),
		url:    githubTrendingURL,
		render: fetch.BrowserSimple,
	}
}

// Name implements Adapter.
func (g *GitHubTrending) Name() string { return githubTrendingName }

// Fetch implements Adapter.
func (g *GitHubTrending) Fetch(ctx context.Context, _ string) ([]types.TrendItem, error) {
	result, err := g.client.Get(ctx, g.url)
	if err != nil {
		return nil, fmt.Errorf("fetching trending page: %w", err)
	}

	items, err := parseTrendingHTML(result.Body)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 && needsBrowser(result.Body) {
		g.log.Info("trending page looks client-rendered, retrying with browser")
		rendered, err := g.render(ctx, g.url)
		if err != nil {
			return nil, fmt.Errorf("rendering trending page: %w", err)
		}
		items, err = parseTrendingHTML(rendered)
		if err != nil {
			return nil, err
		}
	}

	g.log.Info("fetched repositories", logging.Int("count", len(items)))
	return items, nil
}

// needsBrowser reports whether the listing HTML carries too little text to
// have been server-rendered.
func needsBrowser(html string) bool {
	text, err := fetch.ExtractMainText(html, fetch.DefaultTextSelectors())
	if err != nil {
		return false
	}
	return fetch.ShouldUseBrowser(text)
}

// parseTrendingHTML extracts repository entries from the trending listing.
// Each entry is an <article> with the repo path in the h2 link and the
// description in the following paragraph.
func parseTrendingHTML(html string) ([]types.TrendItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing trending HTML: %w", err)
	}

	now := time.Now().UTC()
	var items []types.TrendItem

	doc.Find("article").EachWithBreak(func(_ int, article *goquery.Selection) bool {
		href, ok := article.Find("h2 a").First().Attr("href")
		if !ok {
			return true
		}
		repoPath := strings.Trim(href, "/")
		if strings.Count(repoPath, "/") != 1 {
			return true
		}

		description := strings.TrimSpace(article.Find("p").First().Text())

		items = append(items, types.TrendItem{
			Title:       repoPath,
			Description: description,
			URL:         "https://github.com/" + repoPath,
			Tags:        []string{},
			Platform:    githubTrendingName,
			PublishedAt: now,
		})
		return len(items) < githubRepoLimit
	})

	return items, nil
}
