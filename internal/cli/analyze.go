package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mingyun/ganzhi/internal/analyze"
	"github.com/mingyun/ganzhi/internal/chart"
	"github.com/mingyun/ganzhi/internal/harness"
)

// AnalyzeResult bundles the full analysis of one chart document.
type AnalyzeResult struct {
	TurningPoints []analyze.TurningPoint     `json:"turning_points"`
	Interaction   *analyze.InteractionReport `json:"interaction,omitempty"`
	TenGods       *analyze.TenGodsReport     `json:"ten_gods"`
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		chartPath string
		year      int
	)

	cmd := &cobra.Command{
		Use:   "analyze --chart <file>",
		Short: "Run the full analysis over a chart document",
		Long: `Run every analysis over a chart document: Dayun turning points,
the Liunian interaction report and the Ten-God relation report.

The Liunian year defaults to the first entry of the document's sequence;
pass --year to pick another one.`,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(rootOpts, chartPath, year, cmd)
		},
	}

	cmd.Flags().StringVar(&chartPath, "chart", "", "chart document file (YAML or JSON)")
	cmd.Flags().IntVar(&year, "year", 0, "Liunian year to analyze (default: first in sequence)")
	cmd.MarkFlagRequired("chart")

	return cmd
}

func runAnalyze(opts *RootOptions, chartPath string, year int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	doc, loadErrs := loadChartOrFail(formatter, chartPath)
	if len(loadErrs) > 0 {
		return loadErrs[0]
	}

	natal := doc.BaziData.Pillars
	formatter.VerboseLog("Chart loaded: day pillar %s, %d dayun, %d liunian",
		natal.Day, len(doc.Dayun), len(doc.Liunian))

	result := &AnalyzeResult{
		TurningPoints: analyze.TurningPoints(natal.Day, doc.Dayun),
		TenGods:       analyze.TenGods(doc.BaziData.Details),
	}
	if ln, ok := pickLiunian(doc.Liunian, year); ok {
		result.Interaction = analyze.Interaction(natal, ln)
	} else if year != 0 {
		formatter.Error(ErrCodeBadYear, fmt.Sprintf("year %d not present in liunian_sequence", year), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("year %d not in liunian sequence", year))
	}

	token := harness.UUIDv7Generator{}.Generate()
	if opts.Format == "json" {
		return formatter.Success(token, result)
	}
	return formatter.Success(token, renderAnalyzeText(result))
}

// pickLiunian selects the entry for year, or the first entry when year is 0.
func pickLiunian(liunian []chart.LiunianEntry, year int) (chart.LiunianEntry, bool) {
	if year == 0 {
		if len(liunian) == 0 {
			return chart.LiunianEntry{}, false
		}
		return liunian[0], true
	}
	for _, ln := range liunian {
		if ln.Year == year {
			return ln, true
		}
	}
	return chart.LiunianEntry{}, false
}

func renderAnalyzeText(r *AnalyzeResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "大运转折点（%d个）\n", len(r.TurningPoints))
	for _, tp := range r.TurningPoints {
		fmt.Fprintf(&b, "  %s\n", tp.Description)
	}

	if r.Interaction != nil {
		fmt.Fprintf(&b, "流年作用（%d年 %s）\n", r.Interaction.Year, r.Interaction.Liunian)
		for _, pi := range r.Interaction.Pillars {
			fmt.Fprintf(&b, "  %s柱 %s（%s）\n", pi.Pillar.Chinese(), pi.PillarGanzhi, pi.ImpactLevel)
			for _, rel := range pi.Interactions {
				fmt.Fprintf(&b, "    %s\n", rel.Description)
			}
		}
		for _, kf := range r.Interaction.KeyFindings {
			fmt.Fprintf(&b, "  %s\n", kf)
		}
	}

	fmt.Fprintf(&b, "十神（吉凶度%.2f，均衡度%.2f）\n", r.TenGods.AuspiciousDegree, r.TenGods.Balance)
	for _, rel := range r.TenGods.Relations {
		fmt.Fprintf(&b, "  %s\n", rel.Description)
	}
	for _, p := range r.TenGods.SpecialPatterns {
		fmt.Fprintf(&b, "  格局：%s（%s）\n", p.Name, p.Description)
	}

	return strings.TrimRight(b.String(), "\n")
}

// newFormatter builds the formatter every command shares. Verbose logs go to
// stderr so JSON output stays parseable.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadChartOrFail loads and validates the chart file, emitting every
// collected error through the formatter. On failure the returned error slice
// carries ExitErrors ready to hand back to cobra.
func loadChartOrFail(formatter *OutputFormatter, path string) (*chart.Document, []error) {
	doc, errs := LoadChart(path)
	if len(errs) == 0 {
		return doc, nil
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	code := ErrCodeGeneric
	var loadErr *LoadError
	if errors.As(errs[0], &loadErr) {
		code = loadErr.Code
	}
	formatter.Error(code, fmt.Sprintf("chart file %s failed validation", path), msgs)

	exitCode := ExitFailure
	if code == ErrCodeNotFound || code == ErrCodeReadFailed || code == ErrCodeBadFormat {
		exitCode = ExitCommandError
	}
	return nil, []error{NewExitError(exitCode, fmt.Sprintf("loading chart %s: %s", path, msgs[0]))}
}
