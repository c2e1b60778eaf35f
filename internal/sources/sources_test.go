package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/retry"
)

func testClient() *fetch.Client {
	return fetch.NewClient(&fetch.Options{
		Timeout: 5 * time.Second,
		Retry: retry.Policy{
			MaxAttempts:       1,
			InitialDelay:      time.Millisecond,
			MaxDelay:          time.Millisecond,
			BackoffMultiplier: 1.0,
		},
	})
}

func TestHackerNews_Fetch(t *testing.T) {
	stories := map[int]hackerNewsStory{
		1: {ID: 1, Title: "New LLM agent framework released", URL: "https://example.com/llm", Time: 1700000000},
		2: {ID: 2, Title: "Show HN: AI copilot for spreadsheets", URL: "https://example.com/copilot", Time: 1700000100},
		3: {ID: 3, Title: "Rust 2.0 roadmap discussion", URL: "https://example.com/rust", Time: 1700000200},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]int{1, 2, 3, 4})
	})
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		var id int
		_, _ = fmt.Sscanf(r.URL.Path, "/item/%d.json", &id)
		story, ok := stories[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(story)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	hn := NewHackerNews(testClient(), logging.Nop())
	hn.topStoriesURL = server.URL + "/topstories.json"
	hn.itemURLFmt = server.URL + "/item/%d.json"

	items, err := hn.Fetch(context.Background(), "7d")
	require.NoError(t, err)

	// The Rust story has no AI keywords and story 4 fails to fetch.
	require.Len(t, items, 2)
	assert.Equal(t, "New LLM agent framework released", items[0].Title)
	assert.Equal(t, "Show HN: AI copilot for spreadsheets", items[1].Title)
	assert.Equal(t, "Hacker News", items[0].Platform)
	assert.Equal(t, 40.0, items[0].RelevanceScore)
}

func TestHackerNews_Fetch_ListingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	hn := NewHackerNews(testClient(), logging.Nop())
	hn.topStoriesURL = server.URL + "/topstories.json"

	_, err := hn.Fetch(context.Background(), "7d")
	assert.Error(t, err)
}

func TestHackerNews_Fetch_MissingURLFallsBackToComments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]int{42})
	})
	mux.HandleFunc("/item/42.json", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(hackerNewsStory{
			ID:    42,
			Title: "Ask HN: best GPT automation workflows?",
			Time:  1700000000,
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	hn := NewHackerNews(testClient(), logging.Nop())
	hn.topStoriesURL = server.URL + "/topstories.json"
	hn.itemURLFmt = server.URL + "/item/%d.json"

	items, err := hn.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://news.ycombinator.com/item?id=42", items[0].URL)
}

func TestAIRelevance(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  float64
	}{
		{name: "no keywords", title: "Postgres tuning guide", want: 0},
		{name: "single keyword", title: "Machine learning in production", want: 20},
		{name: "multiple keywords", title: "OpenAI GPT agent", text: "an LLM copilot", want: 100},
		{name: "capped at 100", title: "ai gpt chatgpt openai claude gemini llm", want: 100},
		{name: "case insensitive", title: "CHATGPT NEWS", want: 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aiRelevance(tt.title, tt.text))
		})
	}
}

func TestReddit_Fetch_IsolatesSubredditFailures(t *testing.T) {
	listing := func(titles ...string) redditListing {
		var l redditListing
		for i, title := range titles {
			var child struct {
				Data struct {
					Title      string  `json:"title"`
					Selftext   string  `json:"selftext"`
					URL        string  `json:"url"`
					Permalink  string  `json:"permalink"`
					CreatedUTC float64 `json:"created_utc"`
				} `json:"data"`
			}
			child.Data.Title = title
			child.Data.URL = fmt.Sprintf("https://example.com/%d", i)
			child.Data.Permalink = fmt.Sprintf("/r/test/comments/%d/", i)
			child.Data.CreatedUTC = 1700000000
			l.Data.Children = append(l.Data.Children, child)
		}
		return l
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/r/golang/hot.json", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(listing("AI side project ideas"))
	})
	mux.HandleFunc("/r/broken/hot.json", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	r := NewReddit(testClient(), logging.Nop())
	r.baseURL = server.URL
	r.subreddits = []string{"golang", "broken"}

	items, err := r.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AI side project ideas", items[0].Title)
	assert.Equal(t, "Reddit (r/golang)", items[0].Platform)
	assert.Equal(t, "https://www.reddit.com/r/test/comments/0/", items[0].URL)
	// Posts without selftext carry the outbound URL as description.
	assert.Equal(t, "https://example.com/0", items[0].Description)
}

func TestReddit_Fetch_AllSubredditsFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	r := NewReddit(testClient(), logging.Nop())
	r.baseURL = server.URL
	r.subreddits = []string{"one", "two"}

	_, err := r.Fetch(context.Background(), "7d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "r/one")
	assert.Contains(t, err.Error(), "r/two")
}

const trendingHTML = `<!DOCTYPE html>
<html><body>
<article>
  <h2><a href="/openai/whisper">openai / whisper</a></h2>
  <p>Robust speech recognition via large-scale weak supervision</p>
</article>
<article>
  <h2><a href="/golang/go">golang / go</a></h2>
  <p>The Go programming language</p>
</article>
<article>
  <h2><a href="/not-a-repo">broken entry</a></h2>
</article>
</body></html>`

func TestParseTrendingHTML(t *testing.T) {
	items, err := parseTrendingHTML(trendingHTML)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "openai/whisper", items[0].Title)
	assert.Equal(t, "https://github.com/openai/whisper", items[0].URL)
	assert.Equal(t, "Robust speech recognition via large-scale weak supervision", items[0].Description)
	assert.Equal(t, "GitHub Trending", items[0].Platform)
	assert.Equal(t, "golang/go", items[1].Title)
}

func TestGitHubTrending_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(trendingHTML))
	}))
	defer server.Close()

	g := NewGitHubTrending(testClient(), logging.Nop())
	g.url = server.URL

	items, err := g.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

const clientRenderedShell = `<!DOCTYPE html><html><body><div id="app"></div></body></html>`

func TestGitHubTrending_Fetch_RendersClientSidePages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(clientRenderedShell))
	}))
	defer server.Close()

	g := NewGitHubTrending(testClient(), logging.Nop())
	g.url = server.URL

	var renderedURL string
	g.render = func(_ context.Context, url string) (string, error) {
		renderedURL = url
		return trendingHTML, nil
	}

	items, err := g.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, server.URL, renderedURL)
}

func TestGitHubTrending_Fetch_NoRenderForServerSidePages(t *testing.T) {
	// Plenty of body text but no repository entries: an empty listing, not
	// a client-rendered shell.
	page := "<html><body><main>" + strings.Repeat("no trending repositories today ", 30) + "</main></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	g := NewGitHubTrending(testClient(), logging.Nop())
	g.url = server.URL

	rendered := false
	g.render = func(context.Context, string) (string, error) {
		rendered = true
		return trendingHTML, nil
	}

	items, err := g.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, rendered)
}

func TestGitHubTrending_Fetch_RenderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(clientRenderedShell))
	}))
	defer server.Close()

	g := NewGitHubTrending(testClient(), logging.Nop())
	g.url = server.URL
	g.render = func(context.Context, string) (string, error) {
		return "", errors.New("no chrome installed")
	}

	_, err := g.Fetch(context.Background(), "7d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rendering trending page")
}

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example Feed</title>
  <item>
    <title>Launching an AI writing assistant</title>
    <link>https://example.com/posts/1</link>
    <description>How we built it</description>
    <pubDate>Mon, 02 Jan 2023 15:04:05 GMT</pubDate>
  </item>
  <item>
    <title>Entry without a link</title>
    <description>dropped</description>
  </item>
  <item>
    <title>Second post</title>
    <link>https://example.com/posts/2</link>
  </item>
</channel>
</rss>`

func TestFeed_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	f := NewFeed("Ben's Bites", server.URL, 40, testClient(), logging.Nop())

	items, err := f.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Launching an AI writing assistant", items[0].Title)
	assert.Equal(t, "How we built it", items[0].Description)
	assert.Equal(t, "https://example.com/posts/1", items[0].URL)
	assert.Equal(t, "Ben's Bites", items[0].Platform)
	assert.Equal(t, 2023, items[0].PublishedAt.Year())
	assert.Equal(t, "Second post", items[1].Title)
}

func TestFeed_Fetch_MaxItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	f := NewFeed("TLDR AI", server.URL, 1, testClient(), logging.Nop())

	items, err := f.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestProductHunt_Fetch_NoKeyUsesRSS(t *testing.T) {
	t.Setenv(EnvProductHuntAPIKey, "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	p := NewProductHunt(testClient(), logging.Nop())
	p.feedURL = server.URL

	items, err := p.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Product Hunt", items[0].Platform)
}

func TestProductHunt_Fetch_APIFailureFallsBackToRSS(t *testing.T) {
	t.Setenv(EnvProductHuntAPIKey, "test-token")

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/posts", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/feed", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	p := NewProductHunt(testClient(), logging.Nop())
	p.feedURL = server.URL + "/feed"
	p.apiURL = server.URL + "/v2/posts"

	items, err := p.Fetch(context.Background(), "7d")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDefaultAdapters_PriorityOrder(t *testing.T) {
	adapters := DefaultAdapters(testClient(), logging.Nop())

	names := make([]string, len(adapters))
	for i, adapter := range adapters {
		names[i] = adapter.Name()
	}
	assert.Equal(t, []string{
		"Product Hunt",
		"Reddit",
		"Hacker News",
		"GitHub Trending",
		"IndieHackers",
		"Ben's Bites",
		"TLDR AI",
	}, names)
}

func TestSkippedSourceWarnings(t *testing.T) {
	warnings := SkippedSourceWarnings()
	require.Len(t, warnings, 3)
	for _, warning := range warnings {
		assert.Contains(t, warning, "[INFO] skipping")
		assert.Contains(t, warning, "requires login")
	}
}

func TestParseTimeOrNow(t *testing.T) {
	parsed := parseTimeOrNow("2024-03-01T12:00:00Z")
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), parsed)

	fallback := parseTimeOrNow("not a timestamp")
	assert.WithinDuration(t, time.Now().UTC(), fallback, time.Minute)
}
