package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mingyun/ganzhi/internal/analyze"
	"github.com/mingyun/ganzhi/internal/harness"
)

// NewPredictCommand creates the predict command.
func NewPredictCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		chartPath  string
		yearsAhead int
		now        int
	)

	cmd := &cobra.Command{
		Use:   "predict --chart <file> --years <n>",
		Short: "Predict key time nodes in the coming years",
		Long: `Scan the chart's Dayun and Liunian sequences for the window
(now, now+years] and classify every qualifying year: Dayun turnings,
favorable years, unfavorable years and years echoing the natal chart.

--now pins the reference year; it defaults to the current calendar year.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(rootOpts, chartPath, yearsAhead, now, cmd)
		},
	}

	cmd.Flags().StringVar(&chartPath, "chart", "", "chart document file (YAML or JSON)")
	cmd.Flags().IntVar(&yearsAhead, "years", 10, "width of the prediction window in years")
	cmd.Flags().IntVar(&now, "now", 0, "reference year (default: current year)")
	cmd.MarkFlagRequired("chart")

	return cmd
}

func runPredict(opts *RootOptions, chartPath string, yearsAhead, now int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	if yearsAhead <= 0 {
		formatter.Error(ErrCodeBadYear, fmt.Sprintf("--years must be positive, got %d", yearsAhead), nil)
		return NewExitError(ExitCommandError, "invalid --years value")
	}
	if now == 0 {
		now = time.Now().Year()
	}

	doc, loadErrs := loadChartOrFail(formatter, chartPath)
	if len(loadErrs) > 0 {
		return loadErrs[0]
	}

	formatter.VerboseLog("Prediction window (%d, %d]", now, now+yearsAhead)

	report := analyze.KeyTimes(doc.BaziData.Pillars, doc.Dayun, doc.Liunian, yearsAhead, now)

	token := harness.UUIDv7Generator{}.Generate()
	if opts.Format == "json" {
		return formatter.Success(token, report)
	}
	return formatter.Success(token, renderPredictText(report))
}

func renderPredictText(r *analyze.KeyTimeReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "关键时间节点（%d个）\n", r.Summary.TotalEvents)
	for _, ev := range r.KeyTimes {
		fmt.Fprintf(&b, "  %d年 [%s] %s\n", ev.Year, ev.Category, ev.Description)
		for _, reason := range ev.Reasons {
			fmt.Fprintf(&b, "    - %s\n", reason)
		}
		fmt.Fprintf(&b, "    建议：%s\n", ev.Suggestion)
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "%s\n", rec)
	}

	return strings.TrimRight(b.String(), "\n")
}
