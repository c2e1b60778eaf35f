package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/trendscout/internal/types"
)

var validate = validator.New()

// Validate checks a loaded profile and reports missing or malformed fields
// as structured warnings. It never fails: every finding is recoverable by
// defaulting.
func Validate(p *types.UserProfile) []Warning {
	var warnings []Warning

	if len(p.ProjectTypes) == 0 {
		warnings = append(warnings, Warning{
			Field:  "project_types",
			Reason: "missing or empty, defaults will be used",
		})
	}
	if len(p.Background.Skills) == 0 {
		warnings = append(warnings, Warning{
			Field:  "background.skills",
			Reason: "missing or empty, defaults will be used",
		})
	}
	if p.Background.Constraints.TimeBudget == "" {
		warnings = append(warnings, Warning{
			Field:  "background.constraints.time_budget",
			Reason: "missing, defaults will be used",
		})
	}
	if p.Background.Constraints.MonetaryBudget == 0 {
		warnings = append(warnings, Warning{
			Field:  "background.constraints.monetary_budget",
			Reason: "missing, defaults will be used",
		})
	}
	if len(p.Resources.Technical) == 0 && len(p.Resources.Distribution) == 0 && len(p.Resources.Other) == 0 {
		warnings = append(warnings, Warning{
			Field:  "resources",
			Reason: "missing, defaults will be used",
		})
	}

	warnings = append(warnings, validateStructTags(p)...)

	return warnings
}

// validateStructTags runs the declarative field constraints (skill levels,
// non-negative years and weights) and converts violations into warnings.
func validateStructTags(p *types.UserProfile) []Warning {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []Warning{{Field: "profile", Reason: err.Error()}}
	}

	warnings := make([]Warning, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		warnings = append(warnings, Warning{
			Field:  normalizeFieldPath(fieldErr.Namespace()),
			Reason: fmt.Sprintf("failed %q constraint (got %v)", fieldErr.Tag(), fieldErr.Value()),
		})
	}
	return warnings
}

// normalizeFieldPath strips the struct type prefix from a validator
// namespace, e.g. "UserProfile.Background.Skills[0].Level" becomes
// "background.skills[0].level".
func normalizeFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
