package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/observability"
	"github.com/jonathan/trendscout/internal/pipeline"
)

var (
	runProfilePath string
	runOutputDir   string
	runTimeRange   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline and write a report",
	Long: `Collect trending items from every configured source, extract candidate
projects, score them against your profile, and write a ranked markdown report.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runProfilePath, "profile", "", "Path to the profile YAML (default: $TRENDSCOUT_PROFILE or config/profile.yaml)")
	runCmd.Flags().StringVar(&runOutputDir, "output", "", "Directory for generated reports (default: outputs)")
	runCmd.Flags().StringVar(&runTimeRange, "time-range", pipeline.DefaultTimeRange, "Collection window hint passed to sources, e.g. 7d")
	rootCmd.AddCommand(runCmd)
}

func newLogger() (logging.Logger, error) {
	level := flagLogLevel
	if flagVerbose {
		level = "debug"
	}
	return logging.New(logging.Config{Level: level, Development: true})
}

func runRun(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	runner := pipeline.NewRunner(fetch.NewClient(nil), log)

	result, err := runner.Run(cmd.Context(), pipeline.Options{
		ProfilePath: runProfilePath,
		OutputDir:   runOutputDir,
		TimeRange:   runTimeRange,
	})
	if err != nil {
		return err
	}

	if flagVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintProfileSummary(result.Profile, result.ProfilePath)
		printer.PrintCollectionResult(result.Collection, result.SourceOrder)
		printer.PrintTopProjects(result.Ranked)
		printer.PrintWarnings(result.Warnings)
	}

	fmt.Printf("Report written to %s\n", result.ReportPath)
	fmt.Printf("Scored %d of %d candidates in %.1fs\n",
		result.Scored, result.Candidates, result.Elapsed.Seconds())
	if len(result.Warnings) > 0 {
		fmt.Printf("%d warnings (see report appendix)\n", len(result.Warnings))
	}
	return nil
}
