package chart

import "github.com/mingyun/ganzhi/internal/ganzhi"

// Pillar is one stem/branch pair of the natal chart or of a moving period.
type Pillar struct {
	Stem   string `json:"stem" yaml:"stem"`
	Branch string `json:"branch" yaml:"branch"`
}

// Complete reports whether both halves of the pillar are present.
// Incomplete pillars are skipped by every analyzer, never rejected.
func (p Pillar) Complete() bool {
	return p.Stem != "" && p.Branch != ""
}

// String renders the pillar as its ganzhi pair, e.g. "甲子".
func (p Pillar) String() string { return p.Stem + p.Branch }

// PillarDetail carries the Ten-God labels attached to one pillar: the main
// star plus the hidden-stem stars in their canonical order.
type PillarDetail struct {
	MainStar    string   `json:"main_star" yaml:"main_star"`
	HiddenStars []string `json:"hidden_stars" yaml:"hidden_stars"`
}

// PillarName identifies one of the four natal pillars.
type PillarName string

const (
	YearPillar  PillarName = "year"
	MonthPillar PillarName = "month"
	DayPillar   PillarName = "day"
	HourPillar  PillarName = "hour"
)

// PillarNames lists the four pillars in chart order. All per-pillar iteration
// follows this order so output is deterministic.
var PillarNames = []PillarName{YearPillar, MonthPillar, DayPillar, HourPillar}

// Chinese returns the conventional single-character pillar label.
func (n PillarName) Chinese() string {
	switch n {
	case YearPillar:
		return "年"
	case MonthPillar:
		return "月"
	case DayPillar:
		return "日"
	case HourPillar:
		return "时"
	}
	return string(n)
}

// NatalChart holds the four fixed pillars.
type NatalChart struct {
	Year  Pillar `json:"year" yaml:"year"`
	Month Pillar `json:"month" yaml:"month"`
	Day   Pillar `json:"day" yaml:"day"`
	Hour  Pillar `json:"hour" yaml:"hour"`
}

// Pillar returns the named pillar.
func (c NatalChart) Pillar(name PillarName) Pillar {
	switch name {
	case YearPillar:
		return c.Year
	case MonthPillar:
		return c.Month
	case DayPillar:
		return c.Day
	case HourPillar:
		return c.Hour
	}
	return Pillar{}
}

// Details holds the Ten-God labels for all four pillars.
type Details struct {
	Year  PillarDetail `json:"year" yaml:"year"`
	Month PillarDetail `json:"month" yaml:"month"`
	Day   PillarDetail `json:"day" yaml:"day"`
	Hour  PillarDetail `json:"hour" yaml:"hour"`
}

// Detail returns the named pillar's detail.
func (d Details) Detail(name PillarName) PillarDetail {
	switch name {
	case YearPillar:
		return d.Year
	case MonthPillar:
		return d.Month
	case DayPillar:
		return d.Day
	case HourPillar:
		return d.Hour
	}
	return PillarDetail{}
}

// DayunEntry is one decade-period of the moving sequence. StartYear and
// EndYear are optional; entries stay in supplied order and are never mutated.
type DayunEntry struct {
	Index     int    `json:"index" yaml:"index"`
	Stem      string `json:"stem" yaml:"stem"`
	Branch    string `json:"branch" yaml:"branch"`
	StartYear *int   `json:"start_year,omitempty" yaml:"start_year,omitempty"`
	EndYear   *int   `json:"end_year,omitempty" yaml:"end_year,omitempty"`
}

// Pillar returns the entry's stem/branch pair.
func (d DayunEntry) Pillar() Pillar { return Pillar{Stem: d.Stem, Branch: d.Branch} }

// LiunianEntry is one year-period of the moving sequence.
type LiunianEntry struct {
	Year   int    `json:"year" yaml:"year"`
	Stem   string `json:"stem" yaml:"stem"`
	Branch string `json:"branch" yaml:"branch"`
}

// Pillar returns the entry's stem/branch pair.
func (l LiunianEntry) Pillar() Pillar { return Pillar{Stem: l.Stem, Branch: l.Branch} }

// BaziData is the chart portion of the input document.
type BaziData struct {
	Pillars NatalChart `json:"bazi_pillars" yaml:"bazi_pillars"`
	Details Details    `json:"details" yaml:"details"`
}

// Document is the full input contract from the chart-computation service.
type Document struct {
	BaziData BaziData       `json:"bazi_data" yaml:"bazi_data"`
	Dayun    []DayunEntry   `json:"dayun_sequence" yaml:"dayun_sequence"`
	Liunian  []LiunianEntry `json:"liunian_sequence" yaml:"liunian_sequence"`
}

// Normalize canonicalizes every stem/branch symbol in place (NFC + trim).
// Parse calls this automatically; callers that build or unmarshal a Document
// themselves must call it before analysis.
func (doc *Document) Normalize() {
	normPillar := func(p *Pillar) {
		p.Stem = ganzhi.Norm(p.Stem)
		p.Branch = ganzhi.Norm(p.Branch)
	}
	normPillar(&doc.BaziData.Pillars.Year)
	normPillar(&doc.BaziData.Pillars.Month)
	normPillar(&doc.BaziData.Pillars.Day)
	normPillar(&doc.BaziData.Pillars.Hour)
	for i := range doc.Dayun {
		doc.Dayun[i].Stem = ganzhi.Norm(doc.Dayun[i].Stem)
		doc.Dayun[i].Branch = ganzhi.Norm(doc.Dayun[i].Branch)
	}
	for i := range doc.Liunian {
		doc.Liunian[i].Stem = ganzhi.Norm(doc.Liunian[i].Stem)
		doc.Liunian[i].Branch = ganzhi.Norm(doc.Liunian[i].Branch)
	}
}
