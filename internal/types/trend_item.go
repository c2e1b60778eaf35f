// Package types defines the shared data model for the trend collection and
// scoring pipeline.
package types

import "time"

// TrendItem is one externally observed content signal, normalized by a
// source adapter. Downstream stages treat it as read-only except for
// RelevanceScore, which the relevance filter sets exactly once and the
// scoring engine later consumes as the trend-heat input.
type TrendItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	// URL is the identity key for deduplication. Exact string match, no
	// canonicalization.
	URL         string    `json:"url"`
	Tags        []string  `json:"tags"`
	Platform    string    `json:"platform"`
	PublishedAt time.Time `json:"published_at"`
	// RelevanceScore is 0-100, set by the relevance filter.
	RelevanceScore float64 `json:"relevance_score"`
}

// SearchText joins title, description, and tags into one lower-cased-ready
// haystack for keyword matching.
func (t *TrendItem) SearchText() string {
	text := t.Title + " " + t.Description
	for _, tag := range t.Tags {
		text += " " + tag
	}
	return text
}

// CollectionResult is the outcome of one collection run. It is immutable
// after construction.
type CollectionResult struct {
	// Items is the ordered post-filter, post-dedup item sequence.
	Items []TrendItem `json:"items"`
	// Warnings aggregates per-source failures and informational notes in
	// adapter invocation order.
	Warnings []string `json:"warnings"`
	// SourceStats maps source name to the number of items it contributed.
	SourceStats map[string]int `json:"source_stats"`
}

// SourceConfig is the input to a collection run.
type SourceConfig struct {
	// TimeRange is a hint passed through to adapters, e.g. "7d".
	TimeRange string `json:"time_range"`
	// ProjectTypes drives the relevance filter's keyword set.
	ProjectTypes []string `json:"project_types"`
}
