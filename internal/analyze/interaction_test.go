package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingyun/ganzhi/internal/chart"
	"github.com/mingyun/ganzhi/internal/relation"
)

func natalChart() chart.NatalChart {
	return chart.NatalChart{
		Year:  chart.Pillar{Stem: "庚", Branch: "午"},
		Month: chart.Pillar{Stem: "辛", Branch: "巳"},
		Day:   chart.Pillar{Stem: "甲", Branch: "子"},
		Hour:  chart.Pillar{Stem: "丙", Branch: "寅"},
	}
}

func TestInteraction_IncompleteLiunian(t *testing.T) {
	report := Interaction(natalChart(), chart.LiunianEntry{Year: 2025, Stem: "己"})
	require.NotEmpty(t, report.Error, "missing branch must produce the soft error envelope")
	assert.Empty(t, report.Pillars)
	assert.Zero(t, report.Summary.TotalInteractions)
}

func TestInteraction_StemHeWithDayPillar(t *testing.T) {
	// 己未 vs day pillar 甲子: 甲己 combine; 未 is the Hai partner of 子.
	report := Interaction(natalChart(), chart.LiunianEntry{Year: 2025, Stem: "己", Branch: "未"})
	require.Empty(t, report.Error)
	assert.Equal(t, 2025, report.Year)
	assert.Equal(t, "己未", report.Liunian)

	var dayInter *PillarInteraction
	for i := range report.Pillars {
		if report.Pillars[i].Pillar == chart.DayPillar {
			dayInter = &report.Pillars[i]
		}
	}
	require.NotNil(t, dayInter, "day pillar must interact")
	assert.Equal(t, "甲子", dayInter.PillarGanzhi)

	var foundHe bool
	for _, r := range dayInter.Interactions {
		if r.Kind == relation.KindStem && r.Label == relation.LabelHe {
			foundHe = true
			assert.Equal(t, relation.Positive, r.Impact)
		}
	}
	assert.True(t, foundHe, "expected a positive 合 stem relation on the day pillar")
}

func TestInteraction_SummaryCountsEveryRelation(t *testing.T) {
	report := Interaction(natalChart(), chart.LiunianEntry{Year: 2026, Stem: "壬", Branch: "申"})
	require.Empty(t, report.Error)

	// The summary counts relation objects, not pillars.
	total := 0
	for _, p := range report.Pillars {
		total += len(p.Interactions)
		assert.NotEmpty(t, p.Interactions, "pillars without relations are omitted")
	}
	assert.Equal(t, total, report.Summary.TotalInteractions)
	assert.Equal(t, report.Summary.TotalInteractions,
		report.Summary.PositiveCount+report.Summary.NegativeCount+report.Summary.NeutralCount)
}

func TestInteraction_OverallImpactMajorityVote(t *testing.T) {
	report := Interaction(natalChart(), chart.LiunianEntry{Year: 2025, Stem: "己", Branch: "未"})
	require.Empty(t, report.Error)
	switch {
	case report.Summary.PositiveCount > report.Summary.NegativeCount:
		assert.Equal(t, ImpactPositive, report.Summary.OverallImpact)
	case report.Summary.NegativeCount > report.Summary.PositiveCount:
		assert.Equal(t, ImpactNegative, report.Summary.OverallImpact)
	default:
		assert.Equal(t, ImpactNeutral, report.Summary.OverallImpact)
	}
}

func TestInteraction_SkipsIncompleteNatalPillars(t *testing.T) {
	natal := chart.NatalChart{
		Day: chart.Pillar{Stem: "甲", Branch: "子"},
		// Year/Month/Hour left empty.
	}
	report := Interaction(natal, chart.LiunianEntry{Year: 2025, Stem: "己", Branch: "未"})
	require.Empty(t, report.Error)
	require.Len(t, report.Pillars, 1)
	assert.Equal(t, chart.DayPillar, report.Pillars[0].Pillar)
}

func TestInteraction_KeyFindingsOnlyForStrongImpacts(t *testing.T) {
	// 庚申 vs 甲子 day: 庚 controls 甲 (受克, negative); 申子 share the
	// 申子辰 SanHe group (positive). Mixed, so no strong finding expected for
	// a pillar with balanced counts; strong ones must carry a finding.
	report := Interaction(natalChart(), chart.LiunianEntry{Year: 2027, Stem: "庚", Branch: "申"})
	require.Empty(t, report.Error)

	strong := 0
	for _, p := range report.Pillars {
		if p.ImpactLevel == ImpactStrongPositive || p.ImpactLevel == ImpactStrongNegative {
			strong++
		}
	}
	assert.Len(t, report.KeyFindings, strong)
}

func TestImpactLevel(t *testing.T) {
	tests := []struct {
		pos, neg int
		want     string
	}{
		{3, 1, ImpactStrongPositive},
		{2, 1, ImpactPositive},
		{1, 3, ImpactStrongNegative},
		{1, 2, ImpactNegative},
		{1, 1, ImpactNeutral},
		{0, 0, ImpactNeutral},
		{1, 0, ImpactStrongPositive}, // any positives with zero negatives dominate
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, impactLevel(tt.pos, tt.neg), "pos=%d neg=%d", tt.pos, tt.neg)
	}
}

func TestInteraction_Idempotent(t *testing.T) {
	ln := chart.LiunianEntry{Year: 2025, Stem: "己", Branch: "未"}
	assert.Equal(t, Interaction(natalChart(), ln), Interaction(natalChart(), ln))
}
