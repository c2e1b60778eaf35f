package collector

import (
	"strings"

	"github.com/jonathan/trendscout/internal/textutil"
	"github.com/jonathan/trendscout/internal/types"
)

const (
	relevancePerKeyword = 20
	relevanceCap        = 100
	relevanceThreshold  = 30
)

// FilterByProjectTypes scores every item against the keyword set derived
// from the configured project types and keeps items scoring above the
// threshold. The computed score is written back onto the item since the
// scoring engine later reuses it as the trend-heat input.
//
// An empty project-type list disables filtering: every item passes with a
// relevance score of zero.
func FilterByProjectTypes(items []types.TrendItem, projectTypes []string) []types.TrendItem {
	keywords := textutil.ExtractKeywords(strings.Join(projectTypes, " "))

	kept := make([]types.TrendItem, 0, len(items))
	for _, item := range items {
		text := strings.ToLower(item.SearchText())

		relevance := 0.0
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				relevance += relevancePerKeyword
			}
		}
		if relevance > relevanceCap {
			relevance = relevanceCap
		}
		item.RelevanceScore = relevance

		if relevance > relevanceThreshold || len(keywords) == 0 {
			kept = append(kept, item)
		}
	}
	return kept
}
