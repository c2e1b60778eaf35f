package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/types"
)

func scoredProject(name string, comprehensive float64) ScoredProject {
	return ScoredProject{
		Project: types.CandidateProject{
			ID:             "id-" + name,
			Name:           name,
			Description:    "description of " + name,
			SourcePlatform: "Hacker News",
			SourceURL:      "https://example.com/" + name,
			ProjectType:    "AI tool",
		},
		Score: &types.ComprehensiveScore{
			BlueOcean:     types.BlueOceanScore{TrafficStability: 60, QualityGap: 70, MonetizationFeasibility: 68, Composite: 28.56},
			Match:         types.MatchScore{SkillMatch: 80, ResourceMatch: 100, ExperienceMatch: 55, Composite: 44},
			MarketHeat:    types.MarketHeatScore{SocialMediaBuzz: 68, GitHubTrend: 60, ProductHuntHeat: 70, Composite: 28.56},
			Feasibility:   types.FeasibilityScore{TechFamiliarity: 75, DevTimeEstimate: 90, ResourceAvailability: 100, Composite: 67.5, EstimatedWeeks: 8},
			Weights:       types.DefaultScoringWeights(),
			Comprehensive: comprehensive,
		},
	}
}

func TestRank(t *testing.T) {
	scored := []ScoredProject{
		scoredProject("low", 20),
		scoredProject("high", 80),
		scoredProject("mid", 50),
	}

	ranked := Rank(scored)

	assert.Equal(t, "high", ranked[0].Project.Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "mid", ranked[1].Project.Name)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "low", ranked[2].Project.Name)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRank_StableOnTies(t *testing.T) {
	scored := []ScoredProject{
		scoredProject("first", 50),
		scoredProject("second", 50),
	}

	ranked := Rank(scored)

	assert.Equal(t, "first", ranked[0].Project.Name)
	assert.Equal(t, "second", ranked[1].Project.Name)
}

func TestGenerate_WritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, logging.Nop())
	g.now = func() time.Time {
		return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	}

	result, err := g.Generate([]ScoredProject{scoredProject("alpha", 50)}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "report-20240601-09-30-00.md", result.Filename)
	assert.Equal(t, filepath.Join(dir, result.Filename), result.Path)

	written, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, result.Markdown, string(written))
}

func TestGenerate_TopTenAndRemainder(t *testing.T) {
	scored := make([]ScoredProject, 0, 12)
	for i := 0; i < 12; i++ {
		scored = append(scored, scoredProject(fmt.Sprintf("project-%02d", i), float64(100-i)))
	}

	g := NewGenerator(t.TempDir(), logging.Nop())
	result, err := g.Generate(scored, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, result.Markdown, "## Top 10 Projects")
	assert.Contains(t, result.Markdown, "### #1 project-00")
	assert.Contains(t, result.Markdown, "### #10 project-09")
	assert.NotContains(t, result.Markdown, "### #11")
	assert.Contains(t, result.Markdown, "## Remaining Candidates")
	assert.Contains(t, result.Markdown, "| 11 | project-10 |")
	assert.Contains(t, result.Markdown, "| 12 | project-11 |")
}

func TestGenerate_IncludesProfileAndWarnings(t *testing.T) {
	profile := &types.UserProfile{
		Background: types.Background{Name: "Jordan", Role: "developer"},
	}
	warnings := []string{"[WARNING] Reddit failed: 502"}

	g := NewGenerator(t.TempDir(), logging.Nop())
	result, err := g.Generate([]ScoredProject{scoredProject("alpha", 50)}, profile, warnings)
	require.NoError(t, err)

	assert.Contains(t, result.Markdown, "Jordan (developer)")
	assert.Contains(t, result.Markdown, "## Warnings")
	assert.Contains(t, result.Markdown, "[WARNING] Reddit failed: 502")
}

func TestRender_ScoreBreakdownRows(t *testing.T) {
	markdown := render(
		[]ScoredProject{scoredProject("alpha", 50)},
		[]ScoredProject{scoredProject("alpha", 50)},
		nil, nil, time.Now())

	assert.Contains(t, markdown, "| Blue ocean | 28.6 | traffic 60 x quality gap 70 x monetization 68 / 10000 |")
	assert.Contains(t, markdown, "| Feasibility | 67.5 |")
	assert.Contains(t, markdown, "Estimated build time: 8 weeks")
}

func TestAssessRisks(t *testing.T) {
	healthy := scoredProject("alpha", 50).Score
	risks := assessRisks(healthy)
	require.Len(t, risks, 1)
	assert.Equal(t, "No significant risks", risks[0].name)

	risky := scoredProject("beta", 30).Score
	risky.Feasibility.TechFamiliarity = 40
	risky.BlueOcean.QualityGap = 30
	risky.Feasibility.EstimatedWeeks = 20
	risky.Match.Details.MissingResources = []string{"Database", "Stripe", "Email Service"}

	names := make([]string, 0, 4)
	for _, r := range assessRisks(risky) {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{
		"Unfamiliar tech stack",
		"Missing dependencies",
		"Crowded market",
		"Long build time",
	}, names)
}

func TestMainWeakness(t *testing.T) {
	score := scoredProject("alpha", 50).Score
	// Blue ocean and market heat tie at the bottom; blue ocean wins as the
	// first checked.
	assert.Equal(t, "low blue-ocean score", mainWeakness(score))

	score.MarketHeat.Composite = 10
	assert.Equal(t, "low market heat", mainWeakness(score))

	score.Feasibility.Composite = 5
	assert.Equal(t, "low feasibility", mainWeakness(score))
}

func TestNewGenerator_DefaultDir(t *testing.T) {
	g := NewGenerator("", logging.Nop())
	assert.True(t, strings.HasPrefix(g.outputDir, DefaultOutputDir))
}
