package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mingyun/ganzhi/internal/chart"
	"github.com/mingyun/ganzhi/internal/ganzhi"
	"github.com/mingyun/ganzhi/internal/relation"
)

// RelationResult is the output of the relation command.
type RelationResult struct {
	Mode      string              `json:"mode"`
	Subject   string              `json:"subject"`
	Reference string              `json:"reference"`
	Label     relation.Label      `json:"label,omitempty"`
	Relations []relation.Relation `json:"relations,omitempty"`
}

// NewRelationCommand creates the relation command.
func NewRelationCommand(rootOpts *RootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "relation <subject> <reference>",
		Short: "Classify the relationship between two ganzhi pairs",
		Long: `Classify the relationship between two stem-branch pairs, e.g.

  ganzhi relation 甲午 甲子

In day mode the reference is treated as a day pillar and a single
precedence-ordered label is reported (合, 冲, 同, 刑, 害 or 无). In pillar
mode every stem, branch and group relation between the two pairs is listed.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelation(rootOpts, mode, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "day", "classification mode (day|pillar)")

	return cmd
}

func runRelation(opts *RootOptions, mode, subjectArg, referenceArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	subject, err := parsePair(subjectArg)
	if err != nil {
		formatter.Error(ErrCodeBadSymbol, err.Error(), nil)
		return WrapExitError(ExitFailure, "invalid subject pair", err)
	}
	reference, err := parsePair(referenceArg)
	if err != nil {
		formatter.Error(ErrCodeBadSymbol, err.Error(), nil)
		return WrapExitError(ExitFailure, "invalid reference pair", err)
	}

	result := &RelationResult{
		Mode:      mode,
		Subject:   subject.String(),
		Reference: reference.String(),
	}
	switch mode {
	case "day":
		result.Label = relation.DayRelation(subject, reference)
	case "pillar":
		result.Relations = relation.PillarInteractions(reference, subject)
	default:
		formatter.Error(ErrCodeGeneric, fmt.Sprintf("invalid mode %q: must be day or pillar", mode), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid mode %q", mode))
	}

	if opts.Format == "json" {
		return formatter.Success("", result)
	}
	return formatter.Success("", renderRelationText(result))
}

// parsePair splits a two-rune ganzhi string into a validated pillar.
func parsePair(s string) (chart.Pillar, error) {
	runes := []rune(ganzhi.Norm(s))
	if len(runes) != 2 {
		return chart.Pillar{}, fmt.Errorf("ganzhi pair must be exactly two characters, got %q", s)
	}
	p := chart.Pillar{Stem: string(runes[0]), Branch: string(runes[1])}
	if !ganzhi.IsStem(p.Stem) {
		return chart.Pillar{}, fmt.Errorf("%q is not a heavenly stem", p.Stem)
	}
	if !ganzhi.IsBranch(p.Branch) {
		return chart.Pillar{}, fmt.Errorf("%q is not an earthly branch", p.Branch)
	}
	return p, nil
}

func renderRelationText(r *RelationResult) string {
	if r.Mode == "day" {
		return fmt.Sprintf("%s 与 %s：%s", r.Subject, r.Reference, r.Label)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s 与 %s：%d项关系\n", r.Subject, r.Reference, len(r.Relations))
	for _, rel := range r.Relations {
		fmt.Fprintf(&b, "  [%s/%s] %s\n", rel.Kind, rel.Impact, rel.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
