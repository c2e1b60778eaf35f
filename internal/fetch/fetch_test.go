package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/trendscout/internal/retry"
)

// fastRetry keeps test runs short.
func fastRetry(attempts int) retry.Policy {
	return retry.Policy{
		MaxAttempts:       attempts,
		InitialDelay:      time.Millisecond,
		MaxDelay:          2 * time.Millisecond,
		BackoffMultiplier: 2.0,
	}
}

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	client := NewClient(&Options{Retry: fastRetry(2)})
	result, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.Body, "hello")
	assert.Equal(t, "text/html", result.ContentType)
}

func TestGet_InvalidURL(t *testing.T) {
	client := NewClient(nil)

	_, err := client.Get(context.Background(), "not-a-url")

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestGet_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer server.Close()

	client := NewClient(&Options{Retry: fastRetry(3)})
	result, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "recovered", result.Body)
}

func TestGet_ExhaustedRetriesPropagateLastFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(&Options{Retry: fastRetry(2)})
	result, err := client.Get(context.Background(), server.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, retry.ErrMaxAttemptsExceeded)
	assert.Contains(t, err.Error(), "HTTP status 502")
	// The failed response is still surfaced for inspection.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusBadGateway, result.StatusCode)
}

func TestGet_SendsUserAgentAndHeaders(t *testing.T) {
	var gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(&Options{
		Retry:   fastRetry(1),
		Headers: map[string]string{"Accept": "application/json"},
	})
	_, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetJSON_DecodesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"title":"Show HN: something","score":42}`))
	}))
	defer server.Close()

	var payload struct {
		Title string `json:"title"`
		Score int    `json:"score"`
	}
	client := NewClient(&Options{Retry: fastRetry(1)})
	err := client.GetJSON(context.Background(), server.URL, &payload)

	require.NoError(t, err)
	assert.Equal(t, "Show HN: something", payload.Title)
	assert.Equal(t, 42, payload.Score)
}

func TestGetJSON_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	var payload map[string]any
	client := NewClient(&Options{Retry: fastRetry(1)})
	err := client.GetJSON(context.Background(), server.URL, &payload)

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "failed to decode JSON response", fetchErr.Message)
}

func TestExtractMainText_UsesContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>navigation junk</nav>
		<main>Real article text</main>
		<footer>footer junk</footer>
	</body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())

	require.NoError(t, err)
	assert.Contains(t, text, "Real article text")
	assert.NotContains(t, text, "navigation junk")
	assert.NotContains(t, text, "footer junk")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>plain content</div></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})

	require.NoError(t, err)
	assert.Contains(t, text, "plain content")
}

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url  string
		want Platform
	}{
		{"https://news.ycombinator.com/item?id=1", PlatformHackerNews},
		{"https://www.reddit.com/r/SaaS/comments/abc", PlatformReddit},
		{"https://github.com/owner/repo", PlatformGitHub},
		{"https://www.producthunt.com/posts/tool", PlatformProductHunt},
		{"https://www.indiehackers.com/post/xyz", PlatformIndieHackers},
		{"https://example.com/whatever", PlatformUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectPlatform(tc.url), tc.url)
	}
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))

	long := make([]byte, MinContentLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
