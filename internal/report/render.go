package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/trendscout/internal/types"
)

// risk is one row of a candidate's risk table.
type risk struct {
	name       string
	level      string
	mitigation string
}

func render(top, all []ScoredProject, profile *types.UserProfile, warnings []string, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Trend Scout Report\n\n")
	fmt.Fprintf(&b, "- **Generated**: %s\n", now.Format("2006-01-02 15:04:05 MST"))
	if profile != nil && profile.Background.Name != "" {
		fmt.Fprintf(&b, "- **Prepared for**: %s (%s)\n", profile.Background.Name, profile.Background.Role)
	}
	fmt.Fprintf(&b, "- **Candidates scored**: %d\n", len(all))
	fmt.Fprintf(&b, "- **Recommended**: top %d\n\n", len(top))

	fmt.Fprintf(&b, "## Top %d Projects\n\n", len(top))
	for _, item := range top {
		renderCard(&b, item)
	}

	if len(all) > len(top) {
		b.WriteString("## Remaining Candidates\n\n")
		b.WriteString("| Rank | Project | Score | Main weakness |\n")
		b.WriteString("|-----:|---------|------:|---------------|\n")
		for _, item := range all[len(top):] {
			fmt.Fprintf(&b, "| %d | %s | %.1f | %s |\n",
				item.Rank, item.Project.Name, item.Score.Comprehensive, mainWeakness(item.Score))
		}
		b.WriteString("\n")
	}

	if len(warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		b.WriteString("```\n")
		for _, warning := range warnings {
			b.WriteString(warning)
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}

	return b.String()
}

func renderCard(b *strings.Builder, item ScoredProject) {
	project := item.Project
	score := item.Score

	fmt.Fprintf(b, "### #%d %s\n\n", item.Rank, project.Name)
	fmt.Fprintf(b, "**Overall score: %.1f/100**\n\n", score.Comprehensive)
	fmt.Fprintf(b, "%s\n\n", project.Description)
	fmt.Fprintf(b, "- Source: [%s](%s)\n", project.SourcePlatform, project.SourceURL)
	fmt.Fprintf(b, "- Project type: %s\n", project.ProjectType)
	if len(project.PainPoints) > 0 {
		fmt.Fprintf(b, "- Pain points: %s\n", strings.Join(project.PainPoints, ", "))
	}
	if len(project.TargetUsers) > 0 {
		fmt.Fprintf(b, "- Target users: %s\n", strings.Join(project.TargetUsers, ", "))
	}
	b.WriteString("\n#### Score breakdown\n\n")
	b.WriteString("| Dimension | Score | Components |\n")
	b.WriteString("|-----------|------:|------------|\n")
	fmt.Fprintf(b, "| Blue ocean | %.1f | traffic %.0f x quality gap %.0f x monetization %.0f / 10000 |\n",
		score.BlueOcean.Composite,
		score.BlueOcean.TrafficStability, score.BlueOcean.QualityGap, score.BlueOcean.MonetizationFeasibility)
	fmt.Fprintf(b, "| Match | %.1f | skills %.0f x resources %.0f x experience %.0f / 10000 |\n",
		score.Match.Composite,
		score.Match.SkillMatch, score.Match.ResourceMatch, score.Match.ExperienceMatch)
	fmt.Fprintf(b, "| Market heat | %.1f | social %.0f x github %.0f x product hunt %.0f / 10000 |\n",
		score.MarketHeat.Composite,
		score.MarketHeat.SocialMediaBuzz, score.MarketHeat.GitHubTrend, score.MarketHeat.ProductHuntHeat)
	fmt.Fprintf(b, "| Feasibility | %.1f | familiarity %.0f x dev time %.0f x resources %.0f / 10000 |\n",
		score.Feasibility.Composite,
		score.Feasibility.TechFamiliarity, score.Feasibility.DevTimeEstimate, score.Feasibility.ResourceAvailability)
	fmt.Fprintf(b, "\nWeighted: %.1f x %.2g + %.1f x %.2g + %.1f x %.2g + %.1f x %.2g = **%.1f**\n\n",
		score.BlueOcean.Composite, score.Weights.BlueOcean,
		score.Match.Composite, score.Weights.MatchScore,
		score.MarketHeat.Composite, score.Weights.MarketHeat,
		score.Feasibility.Composite, score.Weights.Feasibility,
		score.Comprehensive)

	if len(score.Match.Details.MissingSkills) > 0 {
		fmt.Fprintf(b, "Skills to pick up: %s\n\n", strings.Join(score.Match.Details.MissingSkills, ", "))
	}
	if len(score.Match.Details.MissingResources) > 0 {
		fmt.Fprintf(b, "Resources to arrange: %s\n\n", strings.Join(score.Match.Details.MissingResources, ", "))
	}

	b.WriteString("#### Risks\n\n")
	b.WriteString("| Risk | Level | Mitigation |\n")
	b.WriteString("|------|-------|------------|\n")
	for _, r := range assessRisks(score) {
		fmt.Fprintf(b, "| %s | %s | %s |\n", r.name, r.level, r.mitigation)
	}
	fmt.Fprintf(b, "\nEstimated build time: %d weeks\n\n", score.Feasibility.EstimatedWeeks)
}

// assessRisks derives risk rows from weak score components.
func assessRisks(score *types.ComprehensiveScore) []risk {
	var risks []risk

	if score.Feasibility.TechFamiliarity < 60 {
		risks = append(risks, risk{
			name:       "Unfamiliar tech stack",
			level:      "high",
			mitigation: "budget learning time or find a technical partner",
		})
	}
	if len(score.Match.Details.MissingResources) > 2 {
		risks = append(risks, risk{
			name:       "Missing dependencies",
			level:      "medium",
			mitigation: "look for free alternatives or shrink the MVP scope",
		})
	}
	if score.BlueOcean.QualityGap < 50 {
		risks = append(risks, risk{
			name:       "Crowded market",
			level:      "medium",
			mitigation: "focus on a niche and differentiate",
		})
	}
	if score.Feasibility.EstimatedWeeks > 12 {
		risks = append(risks, risk{
			name:       "Long build time",
			level:      "medium",
			mitigation: "ship an MVP first and validate demand in stages",
		})
	}

	if len(risks) == 0 {
		risks = append(risks, risk{
			name:       "No significant risks",
			level:      "low",
			mitigation: "stay agile and keep validating assumptions",
		})
	}
	return risks
}

// mainWeakness names the lowest-scoring dimension.
func mainWeakness(score *types.ComprehensiveScore) string {
	name := "low blue-ocean score"
	min := score.BlueOcean.Composite

	if score.Match.Composite < min {
		name, min = "low match score", score.Match.Composite
	}
	if score.MarketHeat.Composite < min {
		name, min = "low market heat", score.MarketHeat.Composite
	}
	if score.Feasibility.Composite < min {
		name = "low feasibility"
	}
	return name
}
