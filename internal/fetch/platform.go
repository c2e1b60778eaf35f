// Package fetch - platform.go provides origin-platform detection from URLs.
package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies a known trend-content origin.
type Platform string

const (
	// PlatformHackerNews is news.ycombinator.com.
	PlatformHackerNews Platform = "hackernews"
	// PlatformReddit is reddit.com.
	PlatformReddit Platform = "reddit"
	// PlatformGitHub is github.com.
	PlatformGitHub Platform = "github"
	// PlatformProductHunt is producthunt.com.
	PlatformProductHunt Platform = "producthunt"
	// PlatformIndieHackers is indiehackers.com.
	PlatformIndieHackers Platform = "indiehackers"
	// PlatformUnknown is an unrecognized origin.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the origin platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "ycombinator.com"):
		return PlatformHackerNews
	case strings.Contains(host, "reddit.com"):
		return PlatformReddit
	case strings.Contains(host, "github.com"):
		return PlatformGitHub
	case strings.Contains(host, "producthunt.com"):
		return PlatformProductHunt
	case strings.Contains(host, "indiehackers.com"):
		return PlatformIndieHackers
	}

	return PlatformUnknown
}
