// Package pipeline wires the full run together: profile loading,
// collection, seed fallback, candidate extraction, scoring, and report
// generation. Only a failure to produce the report itself is fatal; every
// other problem ends up in the warnings list of the generated report.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/trendscout/internal/collector"
	"github.com/jonathan/trendscout/internal/extractor"
	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/profile"
	"github.com/jonathan/trendscout/internal/report"
	"github.com/jonathan/trendscout/internal/scoring"
	"github.com/jonathan/trendscout/internal/sources"
	"github.com/jonathan/trendscout/internal/types"
)

// DefaultTimeRange is the collection window hint passed to adapters.
const DefaultTimeRange = "7d"

// Options configure one pipeline run.
type Options struct {
	// ProfilePath overrides the profile location resolution.
	ProfilePath string
	// OutputDir receives the generated report.
	OutputDir string
	// TimeRange is the adapter window hint, defaulting to DefaultTimeRange.
	TimeRange string
}

// Result summarizes a completed run.
type Result struct {
	ReportPath string
	Candidates int
	Scored     int
	Warnings   []string
	Elapsed    time.Duration

	// Profile is the loaded user profile; ProfilePath is where it came
	// from, empty when the built-in defaults were used.
	Profile     *types.UserProfile
	ProfilePath string
	// Collection is the post-filter, post-dedup collection outcome.
	Collection *types.CollectionResult
	// SourceOrder lists the source names in invocation order.
	SourceOrder []string
	// Ranked is the sorted, rank-annotated project list behind the report.
	Ranked []report.ScoredProject
}

// Runner executes the pipeline. Adapters are injectable for tests; when
// nil, the production adapter set is used.
type Runner struct {
	log      logging.Logger
	client   *fetch.Client
	adapters []sources.Adapter
	now      func() time.Time
}

// NewRunner creates a Runner with the production source adapters.
func NewRunner(client *fetch.Client, log logging.Logger) *Runner {
	return &Runner{
		log:      log.Named("pipeline"),
		client:   client,
		adapters: sources.DefaultAdapters(client, log),
		now:      time.Now,
	}
}

// Run executes every phase and writes the report. The returned error is
// reserved for fatal conditions: an unreadable profile file or a failure to
// write the report.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	start := r.now()

	if opts.TimeRange == "" {
		opts.TimeRange = DefaultTimeRange
	}

	loaded, err := profile.Load(opts.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	userProfile := loaded.Profile

	warnings := make([]string, 0, len(loaded.Warnings))
	for _, w := range loaded.Warnings {
		warnings = append(warnings, fmt.Sprintf("[WARNING] profile: %s", w))
	}

	orchestrator := collector.New(r.adapters, r.log)
	collected := orchestrator.Collect(ctx, types.SourceConfig{
		TimeRange:    opts.TimeRange,
		ProjectTypes: userProfile.ProjectTypes,
	})

	if len(collected.Items) == 0 {
		r.log.Warn("collection yielded nothing, falling back to seed topics")
		seeded := collector.SeedProjects(userProfile.ProjectTypes, r.now)
		seeded.Warnings = append(collected.Warnings, seeded.Warnings...)
		collected = seeded
	}
	warnings = append(warnings, collected.Warnings...)

	candidates := extractor.New(r.log).Extract(collected.Items, userProfile.ProjectTypes)

	engine, err := scoring.NewEngine(userProfile, r.log)
	if err != nil {
		return nil, err
	}

	scored := make([]report.ScoredProject, 0, len(candidates))
	for _, candidate := range candidates {
		score, err := engine.Score(&candidate)
		if err != nil {
			r.log.Warn("scoring failed",
				logging.String("candidate", candidate.Name), logging.Err(err))
			warnings = append(warnings,
				fmt.Sprintf("[WARNING] scoring %q failed: %v", candidate.Name, err))
			continue
		}
		scored = append(scored, report.ScoredProject{Project: candidate, Score: score})
	}

	generated, err := report.NewGenerator(opts.OutputDir, r.log).Generate(scored, userProfile, warnings)
	if err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}

	sourceOrder := make([]string, 0, len(r.adapters)+1)
	for _, adapter := range r.adapters {
		sourceOrder = append(sourceOrder, adapter.Name())
	}
	sourceOrder = append(sourceOrder, collector.SeedPlatform)

	result := &Result{
		ReportPath:  generated.Path,
		Candidates:  len(candidates),
		Scored:      len(scored),
		Warnings:    warnings,
		Elapsed:     r.now().Sub(start),
		Profile:     userProfile,
		ProfilePath: loaded.Path,
		Collection:  collected,
		SourceOrder: sourceOrder,
		Ranked:      scored,
	}

	r.log.Info("run finished",
		logging.String("report", result.ReportPath),
		logging.Int("scored", result.Scored),
		logging.Int("warnings", len(result.Warnings)))

	return result, nil
}
