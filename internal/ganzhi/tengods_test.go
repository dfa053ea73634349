package ganzhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenGodPartitions_CoverAllTen(t *testing.T) {
	// The three partitions must be disjoint and cover all ten labels.
	for _, god := range TenGods {
		n := 0
		if AuspiciousTenGods[god] {
			n++
		}
		if InauspiciousTenGods[god] {
			n++
		}
		if NeutralTenGods[god] {
			n++
		}
		assert.Equal(t, 1, n, "%s must be in exactly one partition", god)
	}
	assert.Len(t, TenGods, 10)
}

func TestTenGodGraph_ClosedOverLabels(t *testing.T) {
	// Every label has produce and control targets, and every target is a
	// known label.
	known := make(map[string]bool, len(TenGods))
	for _, god := range TenGods {
		known[god] = true
	}
	for _, god := range TenGods {
		prod := TenGodProduces(god)
		ctrl := TenGodControls(god)
		require.NotEmpty(t, prod, "%s produces", god)
		require.NotEmpty(t, ctrl, "%s controls", god)
		for _, tgt := range prod {
			assert.True(t, known[tgt], "%s produces unknown %s", god, tgt)
		}
		for _, tgt := range ctrl {
			assert.True(t, known[tgt], "%s controls unknown %s", god, tgt)
		}
	}
	assert.Nil(t, TenGodProduces("not-a-god"))
}

func TestTenGodGraph_GroupCycle(t *testing.T) {
	// 食神 is output, its wealth targets are the 财 pair.
	assert.ElementsMatch(t, []string{"偏财", "正财"}, TenGodProduces("食神"))
	// 食神 controls the officer pair (the basis of the 食神制杀 pattern).
	assert.ElementsMatch(t, []string{"七杀", "正官"}, TenGodControls("食神"))
	// Officers control peers.
	assert.ElementsMatch(t, []string{"比肩", "劫财"}, TenGodControls("正官"))
}

func TestSpecialPattern_Matches(t *testing.T) {
	present := map[string]bool{"食神": true, "七杀": true, "正财": true}

	var matched []string
	for _, p := range SpecialPatterns {
		if p.Matches(present) {
			matched = append(matched, p.Name)
		}
	}
	require.Contains(t, matched, "食神制杀")
	assert.NotContains(t, matched, "财官双美", "正官 missing")
}

func TestSpecialPattern_ShiShenZhiSha_Degree(t *testing.T) {
	for _, p := range SpecialPatterns {
		if p.Name == "食神制杀" {
			assert.InDelta(t, 0.8, p.AuspiciousDegree, 1e-9)
			assert.ElementsMatch(t, []string{"食神", "七杀"}, p.Required)
			return
		}
	}
	t.Fatal("食神制杀 pattern missing")
}
