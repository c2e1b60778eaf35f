// Package textutil provides small text helpers shared by the relevance
// filter, the candidate extractor, and the scoring engine.
package textutil

import "strings"

// stopWords are dropped during keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {},
}

// ExtractKeywords lower-cases text, splits on whitespace, drops stop words
// and tokens shorter than three characters, and deduplicates while
// preserving first-seen order.
func ExtractKeywords(text string) []string {
	seen := make(map[string]struct{})
	var keywords []string

	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}

	return keywords
}

// Truncate cuts text to maxLen runes, appending suffix only when something
// was actually cut.
func Truncate(text string, maxLen int, suffix string) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + suffix
}

// ContainsAny reports whether haystack (already lower-cased) contains any of
// the given lower-case needles.
func ContainsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// CountMatches returns how many of the needles appear in haystack as
// substrings. Both sides are expected lower-case.
func CountMatches(haystack string, needles []string) int {
	count := 0
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			count++
		}
	}
	return count
}
