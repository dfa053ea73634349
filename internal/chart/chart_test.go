package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
bazi_data:
  bazi_pillars:
    year:  { stem: 庚, branch: 午 }
    month: { stem: 辛, branch: 巳 }
    day:   { stem: 甲, branch: 子 }
    hour:  { stem: 丙, branch: 寅 }
  details:
    day:
      main_star: 比肩
      hidden_stars: [正印]
dayun_sequence:
  - { stem: 壬, branch: 午, start_year: 1995, end_year: 2005 }
  - { stem: 癸, branch: 未, start_year: 2005, end_year: 2015 }
liunian_sequence:
  - { year: 2025, stem: 乙, branch: 巳 }
`

func TestParse_YAML(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, Pillar{Stem: "甲", Branch: "子"}, doc.BaziData.Pillars.Day)
	assert.Equal(t, "比肩", doc.BaziData.Details.Day.MainStar)
	require.Len(t, doc.Dayun, 2)
	require.NotNil(t, doc.Dayun[0].StartYear)
	assert.Equal(t, 1995, *doc.Dayun[0].StartYear)
	require.Len(t, doc.Liunian, 1)
	assert.Equal(t, 2025, doc.Liunian[0].Year)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{
		"bazi_data": {
			"bazi_pillars": {
				"day": {"stem": "甲", "branch": "子"}
			}
		},
		"liunian_sequence": [{"year": 2026, "stem": "丙", "branch": "午"}]
	}`)
	doc, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "甲子", doc.BaziData.Pillars.Day.String())
	assert.False(t, doc.BaziData.Pillars.Year.Complete(), "missing pillar stays incomplete")
}

func TestParse_NormalizesSymbols(t *testing.T) {
	doc, err := Parse([]byte(`{"bazi_data":{"bazi_pillars":{"day":{"stem":" 甲 ","branch":"子"}}}}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "甲", doc.BaziData.Pillars.Day.Stem, "symbols are trimmed and NFC-normalized at parse time")
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{`), FormatJSON)
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("chart.json"))
	assert.Equal(t, FormatYAML, DetectFormat("chart.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("chart.yml"))
	assert.Equal(t, FormatYAML, DetectFormat("chart"))
}

func TestValidate_CleanDocument(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, doc.Validate())
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	start, end := 2010, 2000
	doc := &Document{
		BaziData: BaziData{Pillars: NatalChart{
			Day: Pillar{Stem: "X", Branch: "Y"},
		}},
		Dayun: []DayunEntry{
			{Stem: "甲", Branch: "子", StartYear: &start, EndYear: &end},
		},
		Liunian: []LiunianEntry{
			{Stem: "乙", Branch: "丑"}, // missing year
		},
	}

	errs := doc.Validate()
	require.Len(t, errs, 4, "unknown stem, unknown branch, inverted range, missing year")

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Contains(t, fields, "bazi_data.bazi_pillars.day.stem")
	assert.Contains(t, fields, "bazi_data.bazi_pillars.day.branch")
	assert.Contains(t, fields, "dayun_sequence[0]")
	assert.Contains(t, fields, "liunian_sequence[0]")
}

func TestValidate_EmptyPillarIsNotAnError(t *testing.T) {
	// Incomplete entries are legal: analyzers skip them silently.
	doc := &Document{}
	assert.Empty(t, doc.Validate())
}

func TestPillarName_Chinese(t *testing.T) {
	assert.Equal(t, "年", YearPillar.Chinese())
	assert.Equal(t, "时", HourPillar.Chinese())
}
