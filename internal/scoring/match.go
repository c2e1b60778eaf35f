package scoring

import (
	"strings"

	"github.com/jonathan/trendscout/internal/textutil"
	"github.com/jonathan/trendscout/internal/types"
)

// Match scores how well the candidate fits the user's skills, resources,
// and experience. The composite is the product of the three components
// divided by 10000.
func Match(name, description string, profile *types.UserProfile) types.MatchScore {
	skill := analyzeSkillMatch(name, description, profile)
	resource := analyzeResourceMatch(description, profile)
	experience := analyzeExperienceMatch(description, profile)

	return types.MatchScore{
		SkillMatch:      skill.score,
		ResourceMatch:   resource.score,
		ExperienceMatch: experience,
		Composite:       skill.score * resource.score * experience / 10000,
		Details: types.MatchDetails{
			RequiredSkills:     skill.required,
			AvailableSkills:    skill.available,
			MissingSkills:      skill.missing,
			RequiredResources:  resource.required,
			AvailableResources: resource.available,
			MissingResources:   resource.missing,
		},
	}
}

type coverageResult struct {
	score     float64
	required  []string
	available []string
	missing   []string
}

func analyzeSkillMatch(name, description string, profile *types.UserProfile) coverageResult {
	required := inferRequiredSkills(name, description)

	available := make([]string, 0, len(profile.Background.Skills))
	availableLower := make([]string, 0, len(profile.Background.Skills))
	for _, skill := range profile.Background.Skills {
		available = append(available, skill.Name)
		availableLower = append(availableLower, strings.ToLower(skill.Name))
	}

	missing := missingEntries(required, availableLower)
	coverage := coverageRate(len(required), len(missing))

	// Proficiency and years on required skills raise the score beyond
	// plain coverage.
	levelBonus := 0.0
	for _, requiredSkill := range required {
		userSkill := profile.FindSkill(requiredSkill)
		if userSkill == nil {
			continue
		}
		switch userSkill.Level {
		case types.SkillLevelExpert:
			levelBonus += 15
		case types.SkillLevelAdvanced:
			levelBonus += 10
		case types.SkillLevelIntermediate:
			levelBonus += 5
		case types.SkillLevelBeginner:
			levelBonus += 2
		default:
			levelBonus += 5
		}
		yearsBonus := float64(userSkill.Years * 2)
		if yearsBonus > 10 {
			yearsBonus = 10
		}
		levelBonus += yearsBonus
	}

	return coverageResult{
		score:     clamp(coverage*100+levelBonus, 30, 100),
		required:  required,
		available: available,
		missing:   missing,
	}
}

// inferRequiredSkills derives the skill set a project needs from its text.
// Every project is assumed to need the baseline skills.
func inferRequiredSkills(name, description string) []string {
	text := strings.ToLower(name + " " + description)

	seen := make(map[string]struct{})
	var required []string
	add := func(skill string) {
		if _, ok := seen[skill]; ok {
			return
		}
		seen[skill] = struct{}{}
		required = append(required, skill)
	}

	for _, skill := range baselineSkills {
		add(skill)
	}
	for _, rule := range skillRules {
		if !strings.Contains(text, rule.keyword) {
			continue
		}
		for _, skill := range rule.skills {
			add(skill)
		}
	}
	return required
}

func analyzeResourceMatch(description string, profile *types.UserProfile) coverageResult {
	required := inferRequiredResources(description)

	availableLower := make([]string, 0, len(profile.AllResources()))
	for _, resource := range profile.AllResources() {
		availableLower = append(availableLower, strings.ToLower(resource))
	}

	missing := missingEntries(required, availableLower)
	coverage := coverageRate(len(required), len(missing))

	available := make([]string, 0, len(profile.Resources.Technical)+len(profile.Resources.Distribution))
	available = append(available, profile.Resources.Technical...)
	available = append(available, profile.Resources.Distribution...)

	return coverageResult{
		score:     clamp(coverage*100, 40, 100),
		required:  required,
		available: available,
		missing:   missing,
	}
}

// inferRequiredResources derives the external resources a project needs.
// Hosting and a domain are always assumed.
func inferRequiredResources(description string) []string {
	text := strings.ToLower(description)

	resources := []string{"Hosting", "Domain"}
	if textutil.ContainsAny(text, []string{"ai", "ml"}) {
		resources = append(resources, "OpenAI API")
	}
	if textutil.ContainsAny(text, []string{"saas", "database"}) {
		resources = append(resources, "Database")
	}
	if textutil.ContainsAny(text, []string{"payment", "subscription"}) {
		resources = append(resources, "Stripe")
	}
	if strings.Contains(text, "email") {
		resources = append(resources, "Email Service")
	}
	return resources
}

// analyzeExperienceMatch measures keyword overlap between the candidate
// description and the user's experience entries, with a role bonus for
// full-stack and senior backgrounds.
func analyzeExperienceMatch(description string, profile *types.UserProfile) float64 {
	experienceText := strings.ToLower(strings.Join(profile.Background.Experience, " "))
	experienceKeywords := textutil.ExtractKeywords(experienceText)
	projectKeywords := textutil.ExtractKeywords(strings.ToLower(description))

	matchRate := 0.5
	if len(projectKeywords) > 0 {
		overlap := 0
		known := make(map[string]struct{}, len(experienceKeywords))
		for _, keyword := range experienceKeywords {
			known[keyword] = struct{}{}
		}
		for _, keyword := range projectKeywords {
			if _, ok := known[keyword]; ok {
				overlap++
			}
		}
		matchRate = float64(overlap) / float64(len(projectKeywords))
	}

	roleBonus := 0.0
	role := strings.ToLower(profile.Background.Role)
	if textutil.ContainsAny(role, []string{"fullstack", "full-stack"}) {
		roleBonus = 10
	} else if strings.Contains(role, "senior") {
		roleBonus = 5
	}

	return clamp(matchRate*100+roleBonus, 40, 100)
}

// missingEntries returns the required entries no available entry contains
// as a substring. Both sides are compared lower-case.
func missingEntries(required, availableLower []string) []string {
	missing := make([]string, 0, len(required))
	for _, req := range required {
		reqLower := strings.ToLower(req)
		found := false
		for _, avail := range availableLower {
			if strings.Contains(avail, reqLower) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	return missing
}

// coverageRate is the fraction of required entries covered; a vacuous
// requirement counts as fully covered.
func coverageRate(required, missing int) float64 {
	if required == 0 {
		return 1
	}
	return float64(required-missing) / float64(required)
}
