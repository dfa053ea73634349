package relation

import (
	"fmt"

	"github.com/mingyun/ganzhi/internal/chart"
	"github.com/mingyun/ganzhi/internal/ganzhi"
)

// DayRelation classifies a moving pillar against the natal day pillar with
// the coarse single-label contract. Precedence is fixed: stem-He,
// branch-LiuHe, stem-equality, branch-Chong, branch-equality. A repeated day
// stem reads as 同 even when the branches clash; see DESIGN.md for the
// precedence decision. The first match wins; empty halves simply fail their
// checks and an entirely unmatched pair is 无.
func DayRelation(subject, day chart.Pillar) Label {
	switch {
	case ganzhi.StemsCombine(subject.Stem, day.Stem):
		return LabelHe
	case ganzhi.BranchesCombine(subject.Branch, day.Branch):
		return LabelHe
	case subject.Stem != "" && subject.Stem == day.Stem:
		return LabelTong
	case ganzhi.BranchesClash(subject.Branch, day.Branch):
		return LabelChong
	case subject.Branch != "" && subject.Branch == day.Branch:
		return LabelTong
	default:
		return LabelNone
	}
}

// PillarInteractions classifies a moving pair against one natal pillar with
// the fine multi-relation contract. Stem and branch relations are evaluated
// independently; every SanHe and SanHui group containing both branches adds
// one special relation. Relations are described from the natal pillar's
// perspective: 受克 means the natal stem's element is controlled by the
// moving stem's element.
func PillarInteractions(natal, moving chart.Pillar) []Relation {
	var out []Relation
	if r, ok := stemRelation(natal.Stem, moving.Stem); ok {
		out = append(out, r)
	}
	if r, ok := branchRelation(natal.Branch, moving.Branch); ok {
		out = append(out, r)
	}
	out = append(out, specialRelations(natal.Branch, moving.Branch)...)
	return out
}

// stemRelation resolves the stem half. Precedence: He, self-equal, then the
// five-element cycle between the two stems' elements. Stems of the same
// element (but not the same stem) have no cycle relation and yield nothing.
func stemRelation(natal, moving string) (Relation, bool) {
	if natal == "" || moving == "" {
		return Relation{}, false
	}
	if ganzhi.StemsCombine(natal, moving) {
		return Relation{
			Kind: KindStem, Label: LabelHe, From: natal, To: moving,
			Impact:      Positive,
			Description: fmt.Sprintf("天干%s与%s相合", natal, moving),
		}, true
	}
	if natal == moving {
		return Relation{
			Kind: KindStem, Label: LabelTong, From: natal, To: moving,
			Impact:      Negative,
			Description: fmt.Sprintf("天干%s伏吟重见", natal),
		}, true
	}
	ne, ok1 := ganzhi.StemElement(natal)
	me, ok2 := ganzhi.StemElement(moving)
	if !ok1 || !ok2 {
		return Relation{}, false
	}
	switch {
	case ganzhi.Produces(me, ne):
		return Relation{
			Kind: KindStem, Label: LabelSheng, From: moving, To: natal,
			Impact:      Positive,
			Description: fmt.Sprintf("天干%s生%s，得生扶", moving, natal),
		}, true
	case ganzhi.Produces(ne, me):
		return Relation{
			Kind: KindStem, Label: LabelXie, From: natal, To: moving,
			Impact:      Neutral,
			Description: fmt.Sprintf("天干%s生%s，泄气", natal, moving),
		}, true
	case ganzhi.Controls(ne, me):
		return Relation{
			Kind: KindStem, Label: LabelKeChu, From: natal, To: moving,
			Impact:      Positive,
			Description: fmt.Sprintf("天干%s克%s，克出", natal, moving),
		}, true
	case ganzhi.Controls(me, ne):
		return Relation{
			Kind: KindStem, Label: LabelShouKe, From: moving, To: natal,
			Impact:      Negative,
			Description: fmt.Sprintf("天干%s克%s，受克", moving, natal),
		}, true
	}
	return Relation{}, false
}

// branchRelation resolves the branch half. Precedence: LiuHe, Chong, Xing,
// Hai, self-equal. Branches with none of these yield nothing.
func branchRelation(natal, moving string) (Relation, bool) {
	if natal == "" || moving == "" {
		return Relation{}, false
	}
	switch {
	case ganzhi.BranchesCombine(natal, moving):
		return Relation{
			Kind: KindBranch, Label: LabelHe, From: natal, To: moving,
			Impact:      Positive,
			Description: fmt.Sprintf("地支%s与%s六合", natal, moving),
		}, true
	case ganzhi.BranchesClash(natal, moving):
		return Relation{
			Kind: KindBranch, Label: LabelChong, From: natal, To: moving,
			Impact:      Negative,
			Description: fmt.Sprintf("地支%s与%s相冲", natal, moving),
		}, true
	case ganzhi.BranchesPunish(natal, moving):
		return Relation{
			Kind: KindBranch, Label: LabelXing, From: natal, To: moving,
			Impact:      Negative,
			Description: fmt.Sprintf("地支%s与%s相刑", natal, moving),
		}, true
	case ganzhi.BranchesHarm(natal, moving):
		return Relation{
			Kind: KindBranch, Label: LabelHai, From: natal, To: moving,
			Impact:      Negative,
			Description: fmt.Sprintf("地支%s与%s相害", natal, moving),
		}, true
	case natal == moving:
		return Relation{
			Kind: KindBranch, Label: LabelTong, From: natal, To: moving,
			Impact:      Negative,
			Description: fmt.Sprintf("地支%s伏吟重见", natal),
		}, true
	}
	return Relation{}, false
}

// specialRelations emits one relation per SanHe/SanHui group containing both
// branches. All matching groups are emitted, not just the first.
func specialRelations(natal, moving string) []Relation {
	if natal == "" || moving == "" {
		return nil
	}
	var out []Relation
	for _, g := range ganzhi.SharedGroups(ganzhi.SanHeGroups, natal, moving) {
		out = append(out, Relation{
			Kind: KindSpecial, Label: LabelSanHe, From: natal, To: moving,
			Impact:      Positive,
			Description: fmt.Sprintf("地支%s与%s同属%s三合%s局", natal, moving, g.Name, g.Element),
		})
	}
	for _, g := range ganzhi.SharedGroups(ganzhi.SanHuiGroups, natal, moving) {
		out = append(out, Relation{
			Kind: KindSpecial, Label: LabelSanHui, From: natal, To: moving,
			Impact:      Positive,
			Description: fmt.Sprintf("地支%s与%s同属%s三会%s方", natal, moving, g.Name, g.Element),
		})
	}
	return out
}
