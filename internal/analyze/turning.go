package analyze

import (
	"fmt"

	"github.com/mingyun/ganzhi/internal/chart"
	"github.com/mingyun/ganzhi/internal/relation"
)

// TurningType classifies what changes across a Dayun transition.
type TurningType string

const (
	StemChange          TurningType = "StemChange"
	BranchChange        TurningType = "BranchChange"
	StemAndBranchChange TurningType = "StemAndBranchChange"
	RelationChange      TurningType = "RelationChange"
)

// Auspicious-level buckets, by strength threshold. The bucket encodes
// magnitude only; whether a turning is good or bad is decided downstream.
const (
	LevelMajor      = "重大转折"
	LevelImportant  = "重要转折"
	LevelOrdinary   = "一般转折"
	LevelSmooth     = "平稳过渡"
)

// TurningPoint describes the transition between two adjacent Dayun periods.
type TurningPoint struct {
	Index           int         `json:"index"`
	TurningYear     *int        `json:"turning_year,omitempty"`
	CurrentDayun    string      `json:"current_dayun"`
	NextDayun       string      `json:"next_dayun"`
	TurningStrength float64     `json:"turning_strength"`
	TurningType     TurningType `json:"turning_type"`
	AuspiciousLevel string      `json:"auspicious_level"`
	Description     string      `json:"description"`
}

var turningTypeText = map[TurningType]string{
	StemChange:          "天干变化",
	BranchChange:        "地支变化",
	StemAndBranchChange: "干支皆变",
	RelationChange:      "与日主关系变化",
}

var turningLevelText = map[string]string{
	LevelMajor:     "人生格局可能发生重大转变",
	LevelImportant: "运势走向出现重要调整",
	LevelOrdinary:  "运势有所起伏，整体可控",
	LevelSmooth:    "运势平稳过渡，变化温和",
}

// TurningPoints scores every adjacent Dayun pair against the day pillar.
// Needs at least two entries, otherwise the result is empty. Pairs with an
// incomplete stem/branch on either side are skipped.
func TurningPoints(day chart.Pillar, dayun []chart.DayunEntry) []TurningPoint {
	if len(dayun) < 2 {
		return nil
	}

	var out []TurningPoint
	for i := 0; i < len(dayun)-1; i++ {
		current, next := dayun[i], dayun[i+1]
		if !current.Pillar().Complete() || !next.Pillar().Complete() {
			continue
		}

		stemChanged := current.Stem != next.Stem
		branchChanged := current.Branch != next.Branch

		strength := 0.0
		if stemChanged {
			strength += 40
			if current.Stem == day.Stem || next.Stem == day.Stem {
				strength += 10
			}
		}
		if branchChanged {
			strength += 40
			if current.Branch == day.Branch || next.Branch == day.Branch {
				strength += 10
			}
		}
		if relation.DayRelation(current.Pillar(), day) != relation.DayRelation(next.Pillar(), day) {
			strength += 20
		}
		if strength > 100 {
			strength = 100
		}

		var turningType TurningType
		switch {
		case stemChanged && branchChanged:
			turningType = StemAndBranchChange
		case stemChanged:
			turningType = StemChange
		case branchChanged:
			turningType = BranchChange
		default:
			turningType = RelationChange
		}

		level := auspiciousLevel(strength)

		out = append(out, TurningPoint{
			Index:           i,
			TurningYear:     turningYear(current),
			CurrentDayun:    current.Pillar().String(),
			NextDayun:       next.Pillar().String(),
			TurningStrength: strength,
			TurningType:     turningType,
			AuspiciousLevel: level,
			Description: fmt.Sprintf("大运%s交替%s：%s，转折强度%.0f分，%s",
				current.Pillar(), next.Pillar(), turningTypeText[turningType], strength, turningLevelText[level]),
		})
	}
	return out
}

// auspiciousLevel buckets a turning strength. Pure threshold lookup.
func auspiciousLevel(strength float64) string {
	switch {
	case strength >= 80:
		return LevelMajor
	case strength >= 60:
		return LevelImportant
	case strength >= 40:
		return LevelOrdinary
	default:
		return LevelSmooth
	}
}

// turningYear resolves when the transition out of current happens:
// its end year if known, else start year plus the decade length, else unknown.
func turningYear(current chart.DayunEntry) *int {
	if current.EndYear != nil {
		y := *current.EndYear
		return &y
	}
	if current.StartYear != nil {
		y := *current.StartYear + 10
		return &y
	}
	return nil
}
