package collector

import "github.com/jonathan/trendscout/internal/types"

// Deduplicate collapses items sharing a URL, keeping the first occurrence.
// The match is exact: trailing slashes and query parameters are not
// canonicalized, so near-duplicate URLs survive as distinct items.
func Deduplicate(items []types.TrendItem) []types.TrendItem {
	seen := make(map[string]struct{}, len(items))
	deduplicated := make([]types.TrendItem, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item.URL]; ok {
			continue
		}
		seen[item.URL] = struct{}{}
		deduplicated = append(deduplicated, item)
	}
	return deduplicated
}
