package analyze

import (
	"fmt"
	"math"

	"github.com/mingyun/ganzhi/internal/chart"
	"github.com/mingyun/ganzhi/internal/ganzhi"
)

// TenGodRelation is one edge of the production/control graph over the Ten
// Gods present in a chart.
type TenGodRelation struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Type        string `json:"type"` // "produces" or "controls"
	Description string `json:"description"`
}

// Relation edge types.
const (
	RelationProduces = "produces"
	RelationControls = "controls"
)

// TenGodsReport scores the Ten-God configuration of a chart.
type TenGodsReport struct {
	TenGods          []string                `json:"ten_gods"`
	Counts           map[string]int          `json:"counts"`
	Relations        []TenGodRelation        `json:"relations"`
	AuspiciousDegree float64                 `json:"auspicious_degree"`
	SpecialPatterns  []ganzhi.SpecialPattern `json:"special_patterns,omitempty"`
	Balance          float64                 `json:"balance"`
}

// TenGods flattens the chart's Ten-God labels (year→month→day→hour, main star
// before hidden stars, duplicates preserved), builds the production/control
// relation list over the distinct labels, and scores auspiciousness and
// distribution balance. An empty label set yields a zeroed report.
func TenGods(details chart.Details) *TenGodsReport {
	report := &TenGodsReport{Counts: map[string]int{}}

	// Flatten the multiset, remembering first-occurrence order of distinct
	// labels so relation output is deterministic.
	var distinct []string
	present := map[string]bool{}
	for _, name := range chart.PillarNames {
		d := details.Detail(name)
		for _, god := range append([]string{d.MainStar}, d.HiddenStars...) {
			god = ganzhi.Norm(god)
			if god == "" {
				continue
			}
			report.TenGods = append(report.TenGods, god)
			report.Counts[god]++
			if !present[god] {
				present[god] = true
				distinct = append(distinct, god)
			}
		}
	}
	if len(report.TenGods) == 0 {
		return report
	}

	// Relation edges between distinct present labels, in table order.
	for _, god := range distinct {
		for _, target := range ganzhi.TenGodProduces(god) {
			if present[target] {
				report.Relations = append(report.Relations, TenGodRelation{
					From: god, To: target, Type: RelationProduces,
					Description: fmt.Sprintf("%s生%s", god, target),
				})
			}
		}
		for _, target := range ganzhi.TenGodControls(god) {
			if present[target] {
				report.Relations = append(report.Relations, TenGodRelation{
					From: god, To: target, Type: RelationControls,
					Description: fmt.Sprintf("%s克%s", god, target),
				})
			}
		}
	}

	report.AuspiciousDegree = auspiciousDegree(report.TenGods, report.Relations)

	for _, p := range ganzhi.SpecialPatterns {
		if p.Matches(present) {
			report.SpecialPatterns = append(report.SpecialPatterns, p)
		}
	}

	report.Balance = balance(report.Counts, len(report.TenGods))
	return report
}

// auspiciousDegree scores the overall Ten-God quality in [0,1].
//
// Base score weighs the multiset by partition (auspicious 1.0, neutral 0.5,
// inauspicious -0.5, averaged over the total count), then each control edge
// adjusts by ±0.1: an auspicious god restraining an inauspicious one helps,
// the reverse hurts.
func auspiciousDegree(gods []string, relations []TenGodRelation) float64 {
	var score float64
	for _, god := range gods {
		switch {
		case ganzhi.AuspiciousTenGods[god]:
			score += 1.0
		case ganzhi.NeutralTenGods[god]:
			score += 0.5
		case ganzhi.InauspiciousTenGods[god]:
			score -= 0.5
		}
	}
	degree := score / float64(len(gods))

	for _, r := range relations {
		if r.Type != RelationControls {
			continue
		}
		if ganzhi.AuspiciousTenGods[r.From] && ganzhi.InauspiciousTenGods[r.To] {
			degree += 0.1
		} else if ganzhi.InauspiciousTenGods[r.From] && ganzhi.AuspiciousTenGods[r.To] {
			degree -= 0.1
		}
	}

	return clamp01(degree)
}

// balance measures how evenly the Ten-God occurrences spread over the
// distinct labels present: Shannon entropy of the count distribution
// normalized by the maximum entropy for that many labels. One dominant label
// scores near zero, a uniform spread scores one; a single distinct label is
// defined as zero.
func balance(counts map[string]int, total int) float64 {
	if total == 0 || len(counts) < 2 {
		return 0
	}
	var entropy float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return clamp01(entropy / math.Log2(float64(len(counts))))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
