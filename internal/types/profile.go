package types

import "strings"

// Skill levels recognized in a user profile.
const (
	SkillLevelExpert       = "expert"
	SkillLevelAdvanced     = "advanced"
	SkillLevelIntermediate = "intermediate"
	SkillLevelBeginner     = "beginner"
)

// Skill is one declared user skill.
type Skill struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Level string `json:"level" yaml:"level" validate:"omitempty,oneof=expert advanced intermediate beginner"`
	Years int    `json:"years" yaml:"years" validate:"gte=0"`
}

// Constraints captures the user's time and monetary budget.
type Constraints struct {
	// TimeBudget is free text carrying an "<N> hours" pattern, e.g.
	// "15 hours per week".
	TimeBudget     string `json:"time_budget" yaml:"time_budget"`
	MonetaryBudget int    `json:"monetary_budget" yaml:"monetary_budget" validate:"gte=0"`
}

// Background describes who the user is and what they can do.
type Background struct {
	Name        string      `json:"name" yaml:"name"`
	Role        string      `json:"role" yaml:"role"`
	Skills      []Skill     `json:"skills" yaml:"skills" validate:"dive"`
	Experience  []string    `json:"experience" yaml:"experience"`
	Constraints Constraints `json:"constraints" yaml:"constraints"`
}

// Resources is the user's three categorized resource inventories.
type Resources struct {
	Technical    []string `json:"technical" yaml:"technical"`
	Distribution []string `json:"distribution" yaml:"distribution"`
	Other        []string `json:"other" yaml:"other"`
}

// UserProfile is the validated configuration object consumed read-only by
// the scoring engine.
type UserProfile struct {
	ProjectTypes []string   `json:"project_types" yaml:"project_types"`
	Background   Background `json:"background" yaml:"background"`
	Resources    Resources  `json:"resources" yaml:"resources"`
	// ScoringWeights overrides the default weight vector when present.
	ScoringWeights *ScoringWeights `json:"scoring_weights,omitempty" yaml:"scoring_weights,omitempty"`
}

// Weights returns the profile's weight vector, falling back to defaults.
func (p *UserProfile) Weights() ScoringWeights {
	if p.ScoringWeights != nil {
		return *p.ScoringWeights
	}
	return DefaultScoringWeights()
}

// AllResources flattens the three resource inventories in declaration order.
func (p *UserProfile) AllResources() []string {
	all := make([]string, 0, len(p.Resources.Technical)+len(p.Resources.Distribution)+len(p.Resources.Other))
	all = append(all, p.Resources.Technical...)
	all = append(all, p.Resources.Distribution...)
	all = append(all, p.Resources.Other...)
	return all
}

// FindSkill returns the declared skill whose name equals name
// case-insensitively, or nil.
func (p *UserProfile) FindSkill(name string) *Skill {
	for i := range p.Background.Skills {
		if strings.EqualFold(p.Background.Skills[i].Name, name) {
			return &p.Background.Skills[i]
		}
	}
	return nil
}
