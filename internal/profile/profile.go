// Package profile provides loading, validation, and defaulting of the user
// profile that drives relevance filtering and scoring.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/trendscout/internal/types"
)

// EnvProfilePath is the environment variable pointing at a profile file.
const EnvProfilePath = "TRENDSCOUT_PROFILE"

// DefaultRelativePath is the fallback profile location under the working
// directory.
const DefaultRelativePath = "config/profile.yaml"

// Warning is one structured validation finding. Warnings never abort a run;
// missing sections fall back to defaults.
type Warning struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Reason)
}

// LoadResult is the outcome of loading a profile.
type LoadResult struct {
	Profile  *types.UserProfile
	Warnings []Warning
	// Path is the file actually read, empty when defaults were used.
	Path string
}

// fileSchema mirrors the on-disk YAML layout, which nests everything under a
// top-level "profile" key.
type fileSchema struct {
	Profile types.UserProfile `yaml:"profile"`
}

// ResolvePath picks the profile file: explicit path first, then the
// TRENDSCOUT_PROFILE environment variable, then config/profile.yaml.
func ResolvePath(customPath string) string {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath
		}
	}
	if envPath := os.Getenv(EnvProfilePath); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return customPath
	}
	defaultPath := filepath.Join(cwd, DefaultRelativePath)
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath
	}
	if customPath != "" {
		return customPath
	}
	return defaultPath
}

// Load reads, validates, and defaults a profile file. A missing file is not
// an error: the full default profile is returned with a warning. A file that
// exists but cannot be parsed is an error.
func Load(customPath string) (*LoadResult, error) {
	path := ResolvePath(customPath)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			p := DefaultProfile()
			return &LoadResult{
				Profile: p,
				Warnings: []Warning{
					{Field: "profile", Reason: fmt.Sprintf("profile file %s not found, using defaults", path)},
				},
			}, nil
		}
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes raw YAML into a validated, defaulted profile.
func Parse(data []byte, path string) (*LoadResult, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	loaded := schema.Profile
	warnings := Validate(&loaded)
	merged := ApplyDefaults(&loaded)

	// The scoring engine trusts its weight vector, so normalization must
	// happen here, at the only place profiles enter the system.
	if merged.ScoringWeights != nil && !merged.ScoringWeights.IsNormalized() {
		warnings = append(warnings, Warning{
			Field:  "scoring_weights",
			Reason: fmt.Sprintf("weights sum to %.2f, normalizing to 1.0", merged.ScoringWeights.Sum()),
		})
		normalized := merged.ScoringWeights.Normalized()
		merged.ScoringWeights = &normalized
	}

	return &LoadResult{Profile: merged, Warnings: warnings, Path: path}, nil
}
