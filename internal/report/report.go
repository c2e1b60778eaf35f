// Package report ranks scored candidates and renders the run's outcome as
// a markdown document: the top ten as detailed cards, the remainder as a
// summary table, and the collected warnings as an appendix.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jonathan/trendscout/internal/logging"
	"github.com/jonathan/trendscout/internal/types"
)

// TopN is how many candidates get a full card in the report.
const TopN = 10

// DefaultOutputDir receives generated reports unless overridden.
const DefaultOutputDir = "outputs"

// ScoredProject pairs a candidate with its scores. Rank is assigned during
// ranking, 1-based.
type ScoredProject struct {
	Project types.CandidateProject    `json:"project"`
	Score   *types.ComprehensiveScore `json:"score"`
	Rank    int                       `json:"rank"`
}

// Result describes one generated report.
type Result struct {
	Markdown string
	Filename string
	Path     string
}

// Rank sorts the projects by comprehensive score, highest first, and
// assigns ranks. Sorting is stable so equal scores keep extraction order.
func Rank(scored []ScoredProject) []ScoredProject {
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score.Comprehensive > scored[b].Score.Comprehensive
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// Generator writes ranked reports to an output directory.
type Generator struct {
	outputDir string
	log       logging.Logger
	now       func() time.Time
}

// NewGenerator creates a Generator. An empty outputDir falls back to
// DefaultOutputDir.
func NewGenerator(outputDir string, log logging.Logger) *Generator {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return &Generator{
		outputDir: outputDir,
		log:       log.Named("report"),
		now:       time.Now,
	}
}

// Generate ranks the projects, renders the markdown document, and writes it
// to a timestamped file under the output directory.
func (g *Generator) Generate(scored []ScoredProject, profile *types.UserProfile, warnings []string) (*Result, error) {
	ranked := Rank(scored)

	top := ranked
	if len(top) > TopN {
		top = ranked[:TopN]
	}

	markdown := render(top, ranked, profile, warnings, g.now())

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	filename := fmt.Sprintf("report-%s.md", g.now().Format("20060102-15-04-05"))
	path := filepath.Join(g.outputDir, filename)
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	g.log.Info("report written",
		logging.String("path", path), logging.Int("candidates", len(ranked)))

	return &Result{Markdown: markdown, Filename: filename, Path: path}, nil
}
