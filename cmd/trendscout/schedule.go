package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonathan/trendscout/internal/fetch"
	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/pipeline"
)

var (
	scheduleSpec        string
	scheduleProfilePath string
	scheduleOutputDir   string
	scheduleTimeRange   string
	scheduleImmediate   bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the pipeline on a cron schedule",
	Long: `Keep the process alive and run the full pipeline on a cron schedule,
writing one report per run. The default schedule runs every morning at 09:00.`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleSpec, "cron", "0 9 * * *", "Cron expression for pipeline runs")
	scheduleCmd.Flags().StringVar(&scheduleProfilePath, "profile", "", "Path to the profile YAML")
	scheduleCmd.Flags().StringVar(&scheduleOutputDir, "output", "", "Directory for generated reports")
	scheduleCmd.Flags().StringVar(&scheduleTimeRange, "time-range", pipeline.DefaultTimeRange, "Collection window hint passed to sources")
	scheduleCmd.Flags().BoolVar(&scheduleImmediate, "immediate", false, "Also run once immediately on startup")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	runner := pipeline.NewRunner(fetch.NewClient(nil), log)
	opts := pipeline.Options{
		ProfilePath: scheduleProfilePath,
		OutputDir:   scheduleOutputDir,
		TimeRange:   scheduleTimeRange,
	}

	runOnce := func() {
		result, err := runner.Run(cmd.Context(), opts)
		if err != nil {
			log.Error("scheduled run failed", logging.Err(err))
			return
		}
		log.Info("scheduled run finished",
			logging.String("report", result.ReportPath),
			logging.Int("scored", result.Scored))
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(scheduleSpec, runOnce); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", scheduleSpec, err)
	}

	if scheduleImmediate {
		runOnce()
	}

	scheduler.Start()
	defer scheduler.Stop()

	fmt.Printf("Scheduler running (%s), press Ctrl-C to stop\n", scheduleSpec)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-cmd.Context().Done():
	}
	return nil
}
