package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mingyun/ganzhi/internal/chart"
	"github.com/mingyun/ganzhi/internal/ganzhi"
)

// Key-time event types.
const (
	EventDayunTurning    = "dayun_turning"
	EventFavorableYear   = "favorable_year"
	EventUnfavorableYear = "unfavorable_year"
	EventSpecialYear     = "special_year"
)

// Importance grades.
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
)

// KeyTimeEvent is one bucketed future year.
type KeyTimeEvent struct {
	Year            int      `json:"year"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Reasons         []string `json:"reasons,omitempty"`
	SpecialFeatures []string `json:"special_features,omitempty"`
	Importance      string   `json:"importance"`
	Suggestion      string   `json:"suggestion"`
}

// KeyTimeSummary counts events per category.
type KeyTimeSummary struct {
	TotalEvents      int `json:"total_events"`
	DayunTurnings    int `json:"dayun_turning"`
	FavorableYears   int `json:"favorable_year"`
	UnfavorableYears int `json:"unfavorable_year"`
	SpecialYears     int `json:"special_year"`
}

// KeyTimeReport is the forward-looking classification of upcoming years.
type KeyTimeReport struct {
	KeyTimes        []KeyTimeEvent `json:"key_times"`
	Summary         KeyTimeSummary `json:"summary"`
	Recommendations []string       `json:"recommendations"`
}

// KeyTimes scans the strict future window (now, now+yearsAhead] of both
// moving sequences and buckets every qualifying year. Four independent scans
// append to one flat list which is then sorted by year. Entries with an empty
// stem or branch are skipped; an empty window yields an empty list and a
// zeroed summary, never an error.
//
// The day pillar drives the favorable/unfavorable rules; the special-year
// rule compares against all four natal pillars, which is why the whole chart
// is taken rather than the day pillar alone.
func KeyTimes(natal chart.NatalChart, dayun []chart.DayunEntry, liunian []chart.LiunianEntry, yearsAhead, now int) *KeyTimeReport {
	report := &KeyTimeReport{}
	day := natal.Day

	inWindow := func(year int) bool {
		return year > now && year <= now+yearsAhead
	}

	// Scan 1: Dayun transitions.
	for _, d := range dayun {
		if !d.Pillar().Complete() || d.StartYear == nil || !inWindow(*d.StartYear) {
			continue
		}
		report.KeyTimes = append(report.KeyTimes, KeyTimeEvent{
			Year:        *d.StartYear,
			Type:        EventDayunTurning,
			Category:    "大运转折",
			Description: fmt.Sprintf("%d年进入%s大运", *d.StartYear, d.Pillar()),
			Importance:  ImportanceHigh,
			Suggestion:  "大运交替之年，宜稳不宜进，适合调整规划",
		})
	}

	// Scan 2: favorable years. Every matched rule is listed, not just the first.
	for _, l := range liunian {
		if !l.Pillar().Complete() || !inWindow(l.Year) {
			continue
		}
		var reasons []string
		if ganzhi.StemsCombine(l.Stem, day.Stem) {
			reasons = append(reasons, "流年天干与日主相合")
		}
		if ganzhi.BranchesCombine(l.Branch, day.Branch) {
			reasons = append(reasons, "流年地支与日支六合")
		}
		if de, ok1 := ganzhi.StemElement(day.Stem); ok1 {
			if le, ok2 := ganzhi.StemElement(l.Stem); ok2 && ganzhi.Produces(de, le) {
				reasons = append(reasons, "日主生流年，气势流通")
			}
		}
		if len(reasons) == 0 {
			continue
		}
		report.KeyTimes = append(report.KeyTimes, KeyTimeEvent{
			Year:        l.Year,
			Type:        EventFavorableYear,
			Category:    "有利年份",
			Description: fmt.Sprintf("%d年（%s）为有利年份", l.Year, l.Pillar()),
			Reasons:     reasons,
			Importance:  ImportanceMedium,
			Suggestion:  "宜进取开拓，把握机遇",
		})
	}

	// Scan 3: unfavorable years.
	for _, l := range liunian {
		if !l.Pillar().Complete() || !inWindow(l.Year) {
			continue
		}
		var reasons []string
		if ganzhi.BranchesClash(l.Branch, day.Branch) {
			reasons = append(reasons, "流年地支冲日支")
		}
		if le, ok1 := ganzhi.StemElement(l.Stem); ok1 {
			if de, ok2 := ganzhi.StemElement(day.Stem); ok2 && ganzhi.Controls(le, de) {
				reasons = append(reasons, "流年克制日主")
			}
		}
		if l.Stem == day.Stem && l.Branch == day.Branch {
			reasons = append(reasons, "流年与日柱伏吟")
		}
		if len(reasons) == 0 {
			continue
		}
		report.KeyTimes = append(report.KeyTimes, KeyTimeEvent{
			Year:        l.Year,
			Type:        EventUnfavorableYear,
			Category:    "不利年份",
			Description: fmt.Sprintf("%d年（%s）需谨慎应对", l.Year, l.Pillar()),
			Reasons:     reasons,
			Importance:  ImportanceMedium,
			Suggestion:  "宜守不宜攻，谨慎行事",
		})
	}

	// Scan 4: special years — exact duplication of any natal pillar.
	for _, l := range liunian {
		if !l.Pillar().Complete() || !inWindow(l.Year) {
			continue
		}
		var features []string
		for _, name := range chart.PillarNames {
			p := natal.Pillar(name)
			if p.Complete() && l.Stem == p.Stem && l.Branch == p.Branch {
				features = append(features, fmt.Sprintf("与%s柱伏吟", name.Chinese()))
			}
		}
		if len(features) == 0 {
			continue
		}
		report.KeyTimes = append(report.KeyTimes, KeyTimeEvent{
			Year:            l.Year,
			Type:            EventSpecialYear,
			Category:        "特殊年份",
			Description:     fmt.Sprintf("%d年（%s）与原局呼应强烈", l.Year, l.Pillar()),
			SpecialFeatures: features,
			Importance:      ImportanceHigh,
			Suggestion:      "此年重要事件易于应期，凡事多留余地",
		})
	}

	sort.SliceStable(report.KeyTimes, func(i, j int) bool {
		return report.KeyTimes[i].Year < report.KeyTimes[j].Year
	})

	for _, e := range report.KeyTimes {
		report.Summary.TotalEvents++
		switch e.Type {
		case EventDayunTurning:
			report.Summary.DayunTurnings++
		case EventFavorableYear:
			report.Summary.FavorableYears++
		case EventUnfavorableYear:
			report.Summary.UnfavorableYears++
		case EventSpecialYear:
			report.Summary.SpecialYears++
		}
	}

	report.Recommendations = recommendations(report.KeyTimes, yearsAhead)
	return report
}

// recommendations assembles the template advice lines: top three favorable
// years, top three unfavorable years, and the high-importance event count.
func recommendations(events []KeyTimeEvent, yearsAhead int) []string {
	var favorable, unfavorable []string
	high := 0
	for _, e := range events {
		switch e.Type {
		case EventFavorableYear:
			if len(favorable) < 3 {
				favorable = append(favorable, fmt.Sprintf("%d年", e.Year))
			}
		case EventUnfavorableYear:
			if len(unfavorable) < 3 {
				unfavorable = append(unfavorable, fmt.Sprintf("%d年", e.Year))
			}
		}
		if e.Importance == ImportanceHigh {
			high++
		}
	}

	var out []string
	if len(favorable) > 0 {
		out = append(out, fmt.Sprintf("重点把握有利年份：%s", strings.Join(favorable, "、")))
	}
	if len(unfavorable) > 0 {
		out = append(out, fmt.Sprintf("谨慎应对不利年份：%s", strings.Join(unfavorable, "、")))
	}
	if high > 0 {
		out = append(out, fmt.Sprintf("未来%d年内共有%d个重要时间节点，宜提前规划", yearsAhead, high))
	}
	return out
}
