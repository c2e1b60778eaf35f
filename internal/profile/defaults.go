package profile

import "github.com/jonathan/trendscout/internal/types"

// DefaultProfile returns the profile used when the user configures nothing.
func DefaultProfile() *types.UserProfile {
	weights := types.DefaultScoringWeights()
	return &types.UserProfile{
		ProjectTypes: []string{"AI SaaS tool", "Chrome extension"},
		Background: types.Background{
			Name: "Default User",
			Role: "Full-stack developer",
			Skills: []types.Skill{
				{Name: "JavaScript", Level: types.SkillLevelIntermediate, Years: 2},
				{Name: "React", Level: types.SkillLevelIntermediate, Years: 1},
			},
			Experience: []string{"2 years of web development experience"},
			Constraints: types.Constraints{
				TimeBudget:     "15 hours per week",
				MonetaryBudget: 2000,
			},
		},
		Resources: types.Resources{
			Technical:    []string{"Vercel free tier", "OpenAI API Key", "GitHub account"},
			Distribution: []string{"Twitter account", "Personal blog"},
			Other:        []string{},
		},
		ScoringWeights: &weights,
	}
}

// ApplyDefaults fills any missing profile sections from DefaultProfile.
// Present sections are kept as loaded.
func ApplyDefaults(loaded *types.UserProfile) *types.UserProfile {
	defaults := DefaultProfile()
	merged := *loaded

	if len(merged.ProjectTypes) == 0 {
		merged.ProjectTypes = defaults.ProjectTypes
	}
	if merged.Background.Name == "" {
		merged.Background.Name = defaults.Background.Name
	}
	if merged.Background.Role == "" {
		merged.Background.Role = defaults.Background.Role
	}
	if len(merged.Background.Skills) == 0 {
		merged.Background.Skills = defaults.Background.Skills
	}
	if len(merged.Background.Experience) == 0 {
		merged.Background.Experience = defaults.Background.Experience
	}
	if merged.Background.Constraints.TimeBudget == "" {
		merged.Background.Constraints.TimeBudget = defaults.Background.Constraints.TimeBudget
	}
	if merged.Background.Constraints.MonetaryBudget == 0 {
		merged.Background.Constraints.MonetaryBudget = defaults.Background.Constraints.MonetaryBudget
	}
	if len(merged.Resources.Technical) == 0 {
		merged.Resources.Technical = defaults.Resources.Technical
	}
	if len(merged.Resources.Distribution) == 0 {
		merged.Resources.Distribution = defaults.Resources.Distribution
	}
	if merged.Resources.Other == nil {
		merged.Resources.Other = defaults.Resources.Other
	}
	if merged.ScoringWeights == nil {
		merged.ScoringWeights = defaults.ScoringWeights
	}

	return &merged
}
