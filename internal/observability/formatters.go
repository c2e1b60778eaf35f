// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/trendscout/internal/report"
	"github.com/jonathan/trendscout/internal/textutil"
	"github.com/jonathan/trendscout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		line = textutil.Truncate(line, boxWidth-7, "...")
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileSummary outputs the loaded profile's key facts so a verbose
// run shows what scoring was based on.
func (p *Printer) PrintProfileSummary(profile *types.UserProfile, path string) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if path == "" {
		path = "(built-in defaults)"
	}
	sb.WriteString(fmt.Sprintf("Source:   %s\n", path))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Background.Name))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", profile.Background.Role))
	sb.WriteString("\n")

	if len(profile.ProjectTypes) > 0 {
		sb.WriteString("Project types:\n")
		count := min(len(profile.ProjectTypes), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.ProjectTypes[i]))
		}
		if len(profile.ProjectTypes) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.ProjectTypes)-3))
		}
		sb.WriteString("\n")
	}

	if len(profile.Background.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Background.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := profile.Background.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill.Name))
			if skill.Level != "" {
				sb.WriteString(fmt.Sprintf(" (%s, %dy)", skill.Level, skill.Years))
			}
			sb.WriteString("\n")
		}
		if len(profile.Background.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Background.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	weights := profile.Weights()
	sb.WriteString(fmt.Sprintf("Weights:  %.2g / %.2g / %.2g / %.2g",
		weights.BlueOcean, weights.MatchScore, weights.MarketHeat, weights.Feasibility))

	p.printBox("USER PROFILE", sb.String())
}

// PrintCollectionResult outputs per-source counts followed by the warnings
// gathered during collection. Sources print in sourceOrder so the box is
// stable across runs.
func (p *Printer) PrintCollectionResult(result *types.CollectionResult, sourceOrder []string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Items collected: %d\n", len(result.Items)))

	if len(result.SourceStats) > 0 {
		sb.WriteString("\nPer source:\n")
		for _, source := range sourceOrder {
			count, ok := result.SourceStats[source]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("  • %-20s %d\n", source, count))
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("\nWarnings: %d\n", len(result.Warnings)))
		count := min(len(result.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			warning := textutil.Truncate(result.Warnings[i], 47, "...")
			sb.WriteString(fmt.Sprintf("  %s\n", warning))
		}
		if len(result.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Warnings)-maxItemsToShow))
		}
	}

	p.printBox("COLLECTION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopProjects outputs the top ranked projects with their dimension
// composites and any missing skills.
func (p *Printer) PrintTopProjects(ranked []report.ScoredProject) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total projects scored: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := ranked[i]
		name := textutil.Truncate(item.Project.Name, 41, "...")
		sb.WriteString(fmt.Sprintf("#%d  %s\n", item.Rank, name))
		sb.WriteString(fmt.Sprintf("    Score: %.1f", item.Score.Comprehensive))
		sb.WriteString(fmt.Sprintf(" (B %.1f M %.1f H %.1f F %.1f)\n",
			item.Score.BlueOcean.Composite,
			item.Score.Match.Composite,
			item.Score.MarketHeat.Composite,
			item.Score.Feasibility.Composite))
		if missing := item.Score.Match.Details.MissingSkills; len(missing) > 0 {
			skills := textutil.Truncate(strings.Join(missing, ", "), 37, "...")
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more projects", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED PROJECTS", sb.String())
}

// PrintWarnings outputs the non-fatal warnings accumulated across a run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Collected %d warnings:\n\n", len(warnings)))

	for i, warning := range warnings {
		warning = textutil.Truncate(warning, 47, "...")
		sb.WriteString(fmt.Sprintf("⚠ %s\n", warning))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RUN WARNINGS", sb.String())
}
