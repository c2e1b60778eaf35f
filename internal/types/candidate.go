package types

import "time"

// CandidateProject is a project idea derived from exactly one TrendItem.
// Candidates are never merged after creation.
type CandidateProject struct {
	// ID is unique per candidate, assigned at extraction time.
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// PainPoints holds at most five deduplicated pain vocabulary hits.
	PainPoints  []string `json:"pain_points"`
	TargetUsers []string `json:"target_users"`
	// SourcePlatform and SourceURL record provenance back to the trend item.
	SourcePlatform string `json:"source_platform"`
	SourceURL      string `json:"source_url"`
	// TrendScore carries the item's relevance score into scoring.
	TrendScore  float64   `json:"trend_score"`
	ProjectType string    `json:"project_type"`
	ExtractedAt time.Time `json:"extracted_at"`
}
