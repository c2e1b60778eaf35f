// Package extractor turns collected trend items into candidate projects:
// one candidate per item, carrying derived pain points, inferred audience
// tags, a matched project type, and source provenance.
package extractor

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/textutil"
	"github.com/jonathan/trendscout/internal/types"
)

const (
	maxPainPoints = 5
	maxNameLen    = 60
	maxDescLen    = 200
	descSuffix    = "..."
	genericType   = "general tool"
	genericAudTag = "everyday users"
)

// painVocab groups the pain and need vocabulary matched against item text.
// Each matched word becomes one pain point, capped at maxPainPoints.
var painVocab = [][]string{
	{"problem", "pain", "difficult", "hard", "struggle", "challenge"},
	{"need", "want", "wish", "hope", "require"},
	{"issue", "bug", "error", "fail", "crash"},
	{"slow", "expensive", "complex", "complicated", "confusing"},
	{"time-consuming", "tedious", "repetitive", "boring"},
}

// audienceRule maps a trigger keyword to the audience tags it implies.
// Rules are ordered so inferred tags are deterministic.
type audienceRule struct {
	trigger string
	tags    []string
}

var audienceRules = []audienceRule{
	{"developer", []string{"developers", "programmers", "engineering teams"}},
	{"entrepreneur", []string{"founders", "indie hackers", "startup teams"}},
	{"business", []string{"businesses", "B2B customers", "companies"}},
	{"consumer", []string{genericAudTag, "consumers"}},
	{"student", []string{"students", "learners", "researchers"}},
	{"writer", []string{"writers", "content creators", "bloggers"}},
	{"marketer", []string{"marketers", "marketing teams", "advertisers"}},
}

// Extractor derives candidate projects from trend items. The identifier and
// clock functions are injectable so tests get deterministic output.
type Extractor struct {
	log   logging.Logger
	newID func() string
	now   func() time.Time
}

// New creates an Extractor with UUID identifiers and the wall clock.
func New(log logging.Logger) *Extractor {
	return &Extractor{
		log:   log.Named("extractor"),
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Extract converts each item into a candidate project. A failure deriving
// one candidate is logged and skipped; it never aborts the remaining items.
func (e *Extractor) Extract(items []types.TrendItem, projectTypes []string) []types.CandidateProject {
	e.log.Info("extracting candidates", logging.Int("items", len(items)))

	candidates := make([]types.CandidateProject, 0, len(items))
	for _, item := range items {
		candidate, err := e.extractOne(item, projectTypes)
		if err != nil {
			e.log.Warn("skipping item",
				logging.String("title", item.Title), logging.Err(err))
			continue
		}
		candidates = append(candidates, candidate)
	}

	e.log.Info("extracted candidates", logging.Int("count", len(candidates)))
	return candidates
}

func (e *Extractor) extractOne(item types.TrendItem, projectTypes []string) (types.CandidateProject, error) {
	if item.URL == "" {
		return types.CandidateProject{}, errors.New("item has no source URL")
	}
	if item.Title == "" {
		return types.CandidateProject{}, errors.New("item has no title")
	}

	description := item.Description
	if description == "" {
		description = item.Title
	}

	platform := item.Platform
	if platform == "" {
		platform = string(fetch.DetectPlatform(item.URL))
	}

	return types.CandidateProject{
		ID:             e.newID(),
		Name:           textutil.Truncate(item.Title, maxNameLen, ""),
		Description:    textutil.Truncate(description, maxDescLen, descSuffix),
		PainPoints:     extractPainPoints(item.Title, item.Description),
		TargetUsers:    inferTargetAudience(item.Title, item.Description),
		SourcePlatform: platform,
		SourceURL:      item.URL,
		TrendScore:     item.RelevanceScore,
		ProjectType:    matchProjectType(&item, projectTypes),
		ExtractedAt:    e.now().UTC(),
	}, nil
}

// extractPainPoints collects the pain vocabulary words found in the item
// text, deduplicated and capped.
func extractPainPoints(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	points := make([]string, 0, maxPainPoints)
	for _, family := range painVocab {
		for _, word := range family {
			if !strings.Contains(text, word) {
				continue
			}
			if len(points) == maxPainPoints {
				return points
			}
			points = append(points, word)
		}
	}
	return points
}

// inferTargetAudience maps trigger keywords in the item text to audience
// tags, defaulting to a single generic tag.
func inferTargetAudience(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	seen := make(map[string]struct{})
	var audiences []string
	for _, rule := range audienceRules {
		if !strings.Contains(text, rule.trigger) {
			continue
		}
		for _, tag := range rule.tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			audiences = append(audiences, tag)
		}
	}

	if len(audiences) == 0 {
		return []string{genericAudTag}
	}
	return audiences
}

// matchProjectType returns the first configured type found in the item
// text. The "ai", "saas", and "chrome" substrings match a type even when
// the full type name does not appear verbatim.
func matchProjectType(item *types.TrendItem, projectTypes []string) string {
	text := strings.ToLower(item.SearchText())

	for _, projectType := range projectTypes {
		typeLower := strings.ToLower(projectType)
		switch {
		case strings.Contains(text, typeLower):
			return projectType
		case strings.Contains(typeLower, "ai") && strings.Contains(text, "ai"):
			return projectType
		case strings.Contains(typeLower, "saas") && strings.Contains(text, "saas"):
			return projectType
		case strings.Contains(typeLower, "chrome") && strings.Contains(text, "chrome"):
			return projectType
		}
	}

	if len(projectTypes) > 0 {
		return projectTypes[0]
	}
	return genericType
}
