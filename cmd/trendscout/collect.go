package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/trendscout/internal/collector"
	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/pipeline"
	"github.com/jonathan/trendscout/internal/profile"
	"github.com/jonathan/trendscout/internal/sources"
	"github.com/jonathan/trendscout/internal/types"
)

var (
	collectProfilePath string
	collectTimeRange   string
	collectJSON        bool
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run collection only and print the results",
	Long: `Fetch trending items from every configured source, apply the relevance
filter and deduplication, and print the outcome without scoring.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringVar(&collectProfilePath, "profile", "", "Path to the profile YAML")
	collectCmd.Flags().StringVar(&collectTimeRange, "time-range", pipeline.DefaultTimeRange, "Collection window hint passed to sources")
	collectCmd.Flags().BoolVar(&collectJSON, "json", false, "Emit the full CollectionResult as JSON")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	loaded, err := profile.Load(collectProfilePath)
	if err != nil {
		return err
	}

	client := fetch.NewClient(nil)
	orchestrator := collector.New(sources.DefaultAdapters(client, log), log)

	result := orchestrator.Collect(cmd.Context(), types.SourceConfig{
		TimeRange:    collectTimeRange,
		ProjectTypes: loaded.Profile.ProjectTypes,
	})

	if collectJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Printf("Collected %d items from %d sources\n", len(result.Items), len(result.SourceStats))
	for source, count := range result.SourceStats {
		fmt.Printf("  %-16s %d\n", source, count)
	}
	for _, warning := range result.Warnings {
		fmt.Println(warning)
	}
	return nil
}
