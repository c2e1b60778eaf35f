// Package collector orchestrates the source adapters and turns their raw
// output into a single filtered, deduplicated CollectionResult. Fault
// isolation is the core invariant here: one adapter failing, timing out, or
// returning nothing never aborts the others.
package collector

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/sources"
	"github.com/jonathan/trendscout/internal/types"
)

// Orchestrator fans out across the configured adapters and accumulates one
// CollectionResult per run.
type Orchestrator struct {
	adapters []sources.Adapter
	log      logging.Logger

	// skippedWarnings are appended after the adapter warnings; they name
	// origins that are intentionally not fetched.
	skippedWarnings []string
}

// New creates an Orchestrator over the given adapters. Warnings and source
// statistics follow the adapter order given here, not completion order.
func New(adapters []sources.Adapter, log logging.Logger) *Orchestrator {
	return &Orchestrator{
		adapters:        adapters,
		log:             log.Named("collector"),
		skippedWarnings: sources.SkippedSourceWarnings(),
	}
}

// adapterOutcome holds one adapter's result until assembly. Outcomes are
// written concurrently but each goroutine owns exactly one slot.
type adapterOutcome struct {
	items []types.TrendItem
	err   error
}

// Collect runs every adapter concurrently, isolates individual failures as
// warnings, then filters and deduplicates the combined items. It never
// returns an error: total collection failure manifests as an empty item
// list, which the caller resolves through the seed fallback.
func (o *Orchestrator) Collect(ctx context.Context, cfg types.SourceConfig) *types.CollectionResult {
	o.log.Info("starting collection",
		logging.Int("sources", len(o.adapters)),
		logging.String("time_range", cfg.TimeRange))

	outcomes := make([]adapterOutcome, len(o.adapters))

	g, gCtx := errgroup.WithContext(ctx)
	for i, adapter := range o.adapters {
		g.Go(func() error {
			items, err := adapter.Fetch(gCtx, cfg.TimeRange)
			outcomes[i] = adapterOutcome{items: items, err: err}
			return nil
		})
	}
	// Goroutines always return nil; failures live in the outcome slots.
	_ = g.Wait()

	result := &types.CollectionResult{
		Warnings:    []string{},
		SourceStats: make(map[string]int),
	}

	var combined []types.TrendItem
	for i, adapter := range o.adapters {
		outcome := outcomes[i]
		switch {
		case outcome.err != nil:
			o.log.Warn("source failed",
				logging.String("source", adapter.Name()), logging.Err(outcome.err))
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("[WARNING] %s failed: %v", adapter.Name(), outcome.err))
		case len(outcome.items) == 0:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("[WARNING] %s returned no items", adapter.Name()))
		default:
			result.SourceStats[adapter.Name()] = len(outcome.items)
			combined = append(combined, outcome.items...)
		}
	}

	result.Warnings = append(result.Warnings, o.skippedWarnings...)

	filtered := FilterByProjectTypes(combined, cfg.ProjectTypes)
	o.log.Info("filtered by project types",
		logging.Int("before", len(combined)), logging.Int("after", len(filtered)))

	result.Items = Deduplicate(filtered)
	o.log.Info("collection finished",
		logging.Int("items", len(result.Items)),
		logging.Int("warnings", len(result.Warnings)))

	return result
}
