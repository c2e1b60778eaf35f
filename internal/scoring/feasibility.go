package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/trendscout/internal/textutil"
	"github.com/jonathan/trendscout/internal/types"
)

const (
	// hoursPerComplexityPoint converts inferred complexity into effort.
	hoursPerComplexityPoint = 40
	// defaultWeeklyHours applies when the profile's time budget carries
	// no parseable hour count.
	defaultWeeklyHours = 15
)

var timeBudgetPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:hour|h)`)

// Feasibility scores whether the user can realistically build the
// candidate. The composite is the product of tech familiarity, dev-time
// viability, and resource availability, divided by 10000.
func Feasibility(name, description string, profile *types.UserProfile) types.FeasibilityScore {
	familiarity := techFamiliarity(name, description, profile)
	devTime := devTimeEstimate(name, description, profile)
	availability := resourceAvailability(description, profile)

	return types.FeasibilityScore{
		TechFamiliarity:      familiarity,
		DevTimeEstimate:      devTime,
		ResourceAvailability: availability,
		Composite:            familiarity * devTime * availability / 10000,
		EstimatedWeeks:       estimateWeeks(description, profile),
	}
}

// techFamiliarity averages the user's familiarity with each inferred
// technology. Unknown technologies score 20 for learning potential.
func techFamiliarity(name, description string, profile *types.UserProfile) float64 {
	required := inferRequiredTech(name, description)
	if len(required) == 0 {
		return 50
	}

	total := 0.0
	for _, tech := range required {
		userSkill := profile.FindSkill(tech)
		if userSkill == nil {
			total += 20
			continue
		}

		var base float64
		switch userSkill.Level {
		case types.SkillLevelExpert:
			base = 95
		case types.SkillLevelAdvanced:
			base = 80
		case types.SkillLevelIntermediate:
			base = 60
		case types.SkillLevelBeginner:
			base = 30
		default:
			base = 50
		}

		yearsBonus := float64(userSkill.Years * 5)
		if yearsBonus > 20 {
			yearsBonus = 20
		}
		total += math.Min(base+yearsBonus, 100)
	}
	return total / float64(len(required))
}

// inferRequiredTech derives the technology list from the candidate text.
func inferRequiredTech(name, description string) []string {
	text := strings.ToLower(name + " " + description)

	seen := make(map[string]struct{})
	var required []string
	for _, rule := range techRules {
		if !strings.Contains(text, rule.keyword) {
			continue
		}
		if _, ok := seen[rule.tech]; ok {
			continue
		}
		seen[rule.tech] = struct{}{}
		required = append(required, rule.tech)
	}
	return required
}

// devTimeEstimate scores viability of the build within the user's weekly
// time budget. Projects past four weeks lose 5 points per extra week, past
// twelve a further 3 per week.
func devTimeEstimate(name, description string, profile *types.UserProfile) float64 {
	complexity := projectComplexity(name, description)
	weeklyHours := parseTimeBudget(profile.Background.Constraints.TimeBudget)

	weeks := float64(complexity*hoursPerComplexityPoint) / float64(weeklyHours)

	score := 100.0
	if weeks > 4 {
		score -= (weeks - 4) * 5
	}
	if weeks > 12 {
		score -= (weeks - 12) * 3
	}
	return clamp(score, 40, 100)
}

// projectComplexity infers a 1-10 complexity from the candidate text.
func projectComplexity(name, description string) int {
	text := strings.ToLower(name + " " + description)

	complexity := 3
	if textutil.ContainsAny(text, []string{"ai", "ml"}) {
		complexity += 2
	}
	if textutil.ContainsAny(text, []string{"database", "backend"}) {
		complexity += 2
	}
	if textutil.ContainsAny(text, []string{"real-time", "websocket"}) {
		complexity++
	}
	if textutil.ContainsAny(text, []string{"authentication", "payment"}) {
		complexity++
	}
	if strings.Contains(text, "chrome extension") {
		complexity++
	}
	if textutil.ContainsAny(text, []string{"simple", "basic", "minimal"}) {
		complexity--
	}

	if complexity < 1 {
		return 1
	}
	if complexity > 10 {
		return 10
	}
	return complexity
}

// parseTimeBudget extracts the weekly hour count from the free-text budget.
func parseTimeBudget(budget string) int {
	match := timeBudgetPattern.FindStringSubmatch(budget)
	if match == nil {
		return defaultWeeklyHours
	}
	hours, err := strconv.Atoi(match[1])
	if err != nil || hours <= 0 {
		return defaultWeeklyHours
	}
	return hours
}

// estimateWeeks converts complexity into calendar weeks at the user's
// budget, rounded up. Complexity here ignores the candidate name so the
// estimate tracks the description alone.
func estimateWeeks(description string, profile *types.UserProfile) int {
	complexity := projectComplexity("", description)
	weeklyHours := parseTimeBudget(profile.Background.Constraints.TimeBudget)
	return int(math.Ceil(float64(complexity*hoursPerComplexityPoint) / float64(weeklyHours)))
}

// resourceAvailability is the raw fraction of required resources the user
// already has, scaled to 0-100.
func resourceAvailability(description string, profile *types.UserProfile) float64 {
	text := strings.ToLower(description)

	required := []string{"Hosting"}
	if textutil.ContainsAny(text, []string{"ai", "ml"}) {
		required = append(required, "OpenAI API")
	}
	if strings.Contains(text, "database") {
		required = append(required, "Database")
	}
	if strings.Contains(text, "payment") {
		required = append(required, "Stripe")
	}

	available := make([]string, 0, len(profile.AllResources()))
	for _, resource := range profile.AllResources() {
		available = append(available, strings.ToLower(resource))
	}

	covered := 0
	for _, req := range required {
		reqLower := strings.ToLower(req)
		for _, avail := range available {
			if strings.Contains(avail, reqLower) {
				covered++
				break
			}
		}
	}
	return float64(covered) / float64(len(required)) * 100
}
