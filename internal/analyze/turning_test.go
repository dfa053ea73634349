package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingyun/ganzhi/internal/chart"
)

func intp(v int) *int { return &v }

func dayunEntry(stem, branch string, start, end int) chart.DayunEntry {
	return chart.DayunEntry{Stem: stem, Branch: branch, StartYear: intp(start), EndYear: intp(end)}
}

func TestTurningPoints_BranchOnlyChange(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}
	dayun := []chart.DayunEntry{
		dayunEntry("甲", "子", 1990, 2000),
		dayunEntry("甲", "午", 2000, 2010),
	}

	points := TurningPoints(day, dayun)
	require.Len(t, points, 1)

	tp := points[0]
	// Stems unchanged: no stem points despite matching the day stem.
	// Branch 子→午 changed (+40) and 子 matches the day branch (+10).
	assert.InDelta(t, 50, tp.TurningStrength, 1e-9)
	assert.Equal(t, BranchChange, tp.TurningType)
	assert.Equal(t, LevelOrdinary, tp.AuspiciousLevel)
	require.NotNil(t, tp.TurningYear)
	assert.Equal(t, 2000, *tp.TurningYear)
	assert.Equal(t, "甲子", tp.CurrentDayun)
	assert.Equal(t, "甲午", tp.NextDayun)
}

func TestTurningPoints_FullChange(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}
	dayun := []chart.DayunEntry{
		dayunEntry("甲", "子", 1990, 2000), // both halves match the day pillar
		dayunEntry("丙", "寅", 2000, 2010),
	}

	points := TurningPoints(day, dayun)
	require.Len(t, points, 1)

	tp := points[0]
	// +40+10 (stem, 甲 is the day stem) +40+10 (branch, 子 is the day branch)
	// and the coarse day relation flips 同→无 (+20); clamped to 100.
	assert.InDelta(t, 100, tp.TurningStrength, 1e-9)
	assert.Equal(t, StemAndBranchChange, tp.TurningType)
	assert.Equal(t, LevelMajor, tp.AuspiciousLevel)
}

func TestTurningPoints_RelationChangeOnly(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}
	dayun := []chart.DayunEntry{
		dayunEntry("丙", "寅", 2000, 2010),
		dayunEntry("丙", "寅", 2010, 2020),
	}

	points := TurningPoints(day, dayun)
	require.Len(t, points, 1)
	assert.Equal(t, RelationChange, points[0].TurningType)
	assert.InDelta(t, 0, points[0].TurningStrength, 1e-9)
	assert.Equal(t, LevelSmooth, points[0].AuspiciousLevel)
}

func TestTurningPoints_RelationBonus(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}
	dayun := []chart.DayunEntry{
		dayunEntry("丙", "寅", 2000, 2010), // 无 against the day pillar
		dayunEntry("己", "寅", 2010, 2020), // 甲己合 against the day pillar
	}

	points := TurningPoints(day, dayun)
	require.Len(t, points, 1)
	// Stem changed (+40, neither stem is the day stem) and the coarse
	// relation flips 无→合 (+20).
	assert.InDelta(t, 60, points[0].TurningStrength, 1e-9)
	assert.Equal(t, StemChange, points[0].TurningType)
	assert.Equal(t, LevelImportant, points[0].AuspiciousLevel)
}

func TestTurningPoints_StrengthAlwaysInRange(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}
	stems := []string{"甲", "乙", "丙", "己", "庚"}
	branches := []string{"子", "午", "寅", "未", "酉"}

	var dayun []chart.DayunEntry
	for i, s := range stems {
		dayun = append(dayun, dayunEntry(s, branches[i], 1990+10*i, 2000+10*i))
	}

	for _, tp := range TurningPoints(day, dayun) {
		assert.GreaterOrEqual(t, tp.TurningStrength, 0.0)
		assert.LessOrEqual(t, tp.TurningStrength, 100.0)
		assert.Contains(t, []TurningType{StemChange, BranchChange, StemAndBranchChange, RelationChange}, tp.TurningType)
	}
}

func TestTurningPoints_TurningYearFallbacks(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}

	// EndYear missing: StartYear + 10.
	dayun := []chart.DayunEntry{
		{Stem: "甲", Branch: "子", StartYear: intp(1990)},
		{Stem: "乙", Branch: "丑", StartYear: intp(2000)},
	}
	points := TurningPoints(day, dayun)
	require.Len(t, points, 1)
	require.NotNil(t, points[0].TurningYear)
	assert.Equal(t, 2000, *points[0].TurningYear)

	// Both missing: unknown.
	dayun = []chart.DayunEntry{
		{Stem: "甲", Branch: "子"},
		{Stem: "乙", Branch: "丑"},
	}
	points = TurningPoints(day, dayun)
	require.Len(t, points, 1)
	assert.Nil(t, points[0].TurningYear)
}

func TestTurningPoints_TooFewEntries(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}
	assert.Empty(t, TurningPoints(day, nil))
	assert.Empty(t, TurningPoints(day, []chart.DayunEntry{dayunEntry("甲", "子", 1990, 2000)}))
}

func TestTurningPoints_SkipsIncompleteEntries(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}
	dayun := []chart.DayunEntry{
		dayunEntry("甲", "子", 1990, 2000),
		{Stem: "", Branch: "丑", StartYear: intp(2000)}, // incomplete, skipped on both sides
		dayunEntry("丙", "寅", 2010, 2020),
	}

	points := TurningPoints(day, dayun)
	assert.Empty(t, points, "every adjacent pair touches the incomplete entry")
}

func TestTurningPoints_Idempotent(t *testing.T) {
	day := chart.Pillar{Stem: "甲", Branch: "子"}
	dayun := []chart.DayunEntry{
		dayunEntry("甲", "子", 1990, 2000),
		dayunEntry("甲", "午", 2000, 2010),
		dayunEntry("丁", "酉", 2010, 2020),
	}
	first := TurningPoints(day, dayun)
	second := TurningPoints(day, dayun)
	assert.Equal(t, first, second)
}
