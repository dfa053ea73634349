package analyze

import (
	"fmt"

	"github.com/mingyun/ganzhi/internal/chart"
	"github.com/mingyun/ganzhi/internal/relation"
)

// Impact levels for a single pillar and for the whole chart.
const (
	ImpactStrongPositive = "strong_positive"
	ImpactPositive       = "positive"
	ImpactNeutral        = "neutral"
	ImpactNegative       = "negative"
	ImpactStrongNegative = "strong_negative"
)

// PillarInteraction collects every relation one natal pillar has with the
// moving Liunian, plus the pillar-level impact classification.
type PillarInteraction struct {
	Pillar       chart.PillarName    `json:"pillar"`
	PillarGanzhi string              `json:"pillar_ganzhi"`
	Interactions []relation.Relation `json:"interactions"`
	ImpactLevel  string              `json:"impact_level"`
}

// InteractionSummary aggregates relation counts over every individual
// relation object across all pillars.
type InteractionSummary struct {
	TotalInteractions int    `json:"total_interactions"`
	PositiveCount     int    `json:"positive_count"`
	NegativeCount     int    `json:"negative_count"`
	NeutralCount      int    `json:"neutral_count"`
	OverallImpact     string `json:"overall_impact"`
}

// InteractionReport is the structured interaction between one Liunian and the
// four natal pillars. Error is the soft error envelope: set only when the
// Liunian itself is incomplete, in which case every other field is zero.
type InteractionReport struct {
	Error       string              `json:"error,omitempty"`
	Year        int                 `json:"year,omitempty"`
	Liunian     string              `json:"liunian,omitempty"`
	Pillars     []PillarInteraction `json:"pillar_interactions,omitempty"`
	Summary     InteractionSummary  `json:"summary"`
	KeyFindings []string            `json:"key_findings,omitempty"`
}

// Interaction classifies one moving year against all four natal pillars.
// Natal pillars with an empty half are skipped; pillars whose classification
// yields no relations are omitted from the report.
func Interaction(natal chart.NatalChart, liunian chart.LiunianEntry) *InteractionReport {
	moving := liunian.Pillar()
	if !moving.Complete() {
		return &InteractionReport{Error: "流年干支信息不完整，无法分析"}
	}

	report := &InteractionReport{
		Year:    liunian.Year,
		Liunian: moving.String(),
	}

	for _, name := range chart.PillarNames {
		p := natal.Pillar(name)
		if !p.Complete() {
			continue
		}
		rels := relation.PillarInteractions(p, moving)
		if len(rels) == 0 {
			continue
		}

		var pos, neg int
		for _, r := range rels {
			switch r.Impact {
			case relation.Positive:
				pos++
				report.Summary.PositiveCount++
			case relation.Negative:
				neg++
				report.Summary.NegativeCount++
			default:
				report.Summary.NeutralCount++
			}
			report.Summary.TotalInteractions++
		}

		level := impactLevel(pos, neg)
		report.Pillars = append(report.Pillars, PillarInteraction{
			Pillar:       name,
			PillarGanzhi: p.String(),
			Interactions: rels,
			ImpactLevel:  level,
		})

		switch level {
		case ImpactStrongPositive:
			report.KeyFindings = append(report.KeyFindings,
				fmt.Sprintf("流年%s与%s柱产生强烈的正面作用", moving, name.Chinese()))
		case ImpactStrongNegative:
			report.KeyFindings = append(report.KeyFindings,
				fmt.Sprintf("流年%s与%s柱产生强烈的负面作用", moving, name.Chinese()))
		}
	}

	report.Summary.OverallImpact = overallImpact(report.Summary)
	return report
}

// impactLevel classifies one pillar from its positive/negative relation
// counts. Strong means better than two-to-one dominance.
func impactLevel(pos, neg int) string {
	switch {
	case pos > 2*neg:
		return ImpactStrongPositive
	case pos > neg:
		return ImpactPositive
	case neg > 2*pos:
		return ImpactStrongNegative
	case neg > pos:
		return ImpactNegative
	default:
		return ImpactNeutral
	}
}

// overallImpact is the majority vote of positive vs negative counts.
func overallImpact(s InteractionSummary) string {
	switch {
	case s.PositiveCount > s.NegativeCount:
		return ImpactPositive
	case s.NegativeCount > s.PositiveCount:
		return ImpactNegative
	default:
		return ImpactNeutral
	}
}
