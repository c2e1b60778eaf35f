package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/trendscout/internal/profile"
	"github.com/jonathan/trendscout/internal/scoring"
	"github.com/jonathan/trendscout/internal/types"
)

var (
	scoreProfilePath string
	scoreName        string
	scoreDescription string
	scoreTrend       float64
	scoreJSON        bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single candidate idea against your profile",
	Long: `Compute the four dimension scores and the weighted comprehensive score
for one candidate, described on the command line. Useful for checking how an
idea of your own would rank.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreProfilePath, "profile", "", "Path to the profile YAML")
	scoreCmd.Flags().StringVar(&scoreName, "name", "", "Candidate name")
	scoreCmd.Flags().StringVar(&scoreDescription, "description", "", "Candidate description")
	scoreCmd.Flags().Float64Var(&scoreTrend, "trend-score", 50, "Trend score carried into scoring (0-100)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the full score breakdown as JSON")
	_ = scoreCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	loaded, err := profile.Load(scoreProfilePath)
	if err != nil {
		return err
	}

	engine, err := scoring.NewEngine(loaded.Profile, log)
	if err != nil {
		return err
	}

	score, err := engine.Score(&types.CandidateProject{
		ID:          "adhoc",
		Name:        scoreName,
		Description: scoreDescription,
		TrendScore:  scoreTrend,
	})
	if err != nil {
		return err
	}

	if scoreJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(score)
	}

	fmt.Printf("Comprehensive score: %.1f/100\n\n", score.Comprehensive)
	fmt.Printf("  Blue ocean   %.1f (traffic %.0f, quality gap %.0f, monetization %.0f)\n",
		score.BlueOcean.Composite, score.BlueOcean.TrafficStability,
		score.BlueOcean.QualityGap, score.BlueOcean.MonetizationFeasibility)
	fmt.Printf("  Match        %.1f (skills %.0f, resources %.0f, experience %.0f)\n",
		score.Match.Composite, score.Match.SkillMatch,
		score.Match.ResourceMatch, score.Match.ExperienceMatch)
	fmt.Printf("  Market heat  %.1f (social %.0f, github %.0f, product hunt %.0f)\n",
		score.MarketHeat.Composite, score.MarketHeat.SocialMediaBuzz,
		score.MarketHeat.GitHubTrend, score.MarketHeat.ProductHuntHeat)
	fmt.Printf("  Feasibility  %.1f (familiarity %.0f, dev time %.0f, resources %.0f, ~%d weeks)\n",
		score.Feasibility.Composite, score.Feasibility.TechFamiliarity,
		score.Feasibility.DevTimeEstimate, score.Feasibility.ResourceAvailability,
		score.Feasibility.EstimatedWeeks)

	if len(score.Match.Details.MissingSkills) > 0 {
		fmt.Printf("\nMissing skills: %v\n", score.Match.Details.MissingSkills)
	}
	return nil
}
