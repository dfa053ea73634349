package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ValidationIssue is one schema or field problem found in a chart document.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult holds validation results for one chart document.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var chartPath string

	cmd := &cobra.Command{
		Use:   "validate --chart <file>",
		Short: "Validate a chart document without analyzing it",
		Long: `Check a chart document against the input schema and the symbol
tables without running any analysis. All problems are collected and
reported together rather than stopping at the first one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateChart(rootOpts, chartPath, cmd)
		},
	}

	cmd.Flags().StringVar(&chartPath, "chart", "", "chart document file (YAML or JSON)")
	cmd.MarkFlagRequired("chart")

	return cmd
}

func runValidateChart(opts *RootOptions, chartPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	_, errs := LoadChart(chartPath)
	if len(errs) == 0 {
		result := &ValidationResult{Valid: true}
		if opts.Format == "json" {
			return formatter.Success("", result)
		}
		return formatter.Success("", fmt.Sprintf("%s: valid", chartPath))
	}

	result := &ValidationResult{}
	for _, err := range errs {
		issue := ValidationIssue{Code: ErrCodeGeneric, Message: err.Error()}
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			issue.Code = loadErr.Code
			issue.Message = loadErr.Message
		}
		result.Issues = append(result.Issues, issue)
	}

	// File access problems are command errors, not validation failures.
	exitCode := ExitFailure
	if result.Issues[0].Code == ErrCodeNotFound || result.Issues[0].Code == ErrCodeReadFailed {
		exitCode = ExitCommandError
	}

	if opts.Format == "json" {
		formatter.Error(result.Issues[0].Code, fmt.Sprintf("chart file %s failed validation", chartPath), result)
	} else {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %d problem(s)\n", chartPath, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, "  [%s] %s\n", issue.Code, issue.Message)
		}
		fmt.Fprint(formatter.Writer, b.String())
	}

	return NewExitError(exitCode, fmt.Sprintf("%d validation problem(s) in %s", len(result.Issues), chartPath))
}
