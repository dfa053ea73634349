package harness

import (
	"encoding/json"
	"fmt"

	"github.com/mingyun/ganzhi/internal/analyze"
	"github.com/mingyun/ganzhi/internal/chart"
)

// Snapshot is the complete output of one scenario execution. Field order and
// sorted map keys make its JSON serialization deterministic.
type Snapshot struct {
	ScenarioName string         `json:"scenario_name"`
	ReportToken  string         `json:"report_token"`
	Sections     map[string]any `json:"sections"`
}

// MarshalIndent renders the snapshot as indented JSON for golden comparison
// and CLI output.
func (s *Snapshot) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Run executes every analysis the scenario requests against its document and
// collects the reports into one snapshot.
func Run(scenario *Scenario) (*Snapshot, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	doc := scenario.Document
	doc.Normalize()

	snapshot := &Snapshot{
		ScenarioName: scenario.Name,
		ReportToken:  scenario.ReportToken,
		Sections:     make(map[string]any, len(scenario.Analyses)),
	}

	for _, analysis := range scenario.Analyses {
		switch analysis {
		case AnalysisTurningPoints:
			snapshot.Sections[analysis] = analyze.TurningPoints(doc.BaziData.Pillars.Day, doc.Dayun)
		case AnalysisInteraction:
			snapshot.Sections[analysis] = analyze.Interaction(doc.BaziData.Pillars, selectLiunian(doc.Liunian, scenario.Options.LiunianYear))
		case AnalysisKeyTimes:
			snapshot.Sections[analysis] = analyze.KeyTimes(doc.BaziData.Pillars, doc.Dayun, doc.Liunian, scenario.Options.YearsAhead, scenario.Options.Now)
		case AnalysisTenGods:
			snapshot.Sections[analysis] = analyze.TenGods(doc.BaziData.Details)
		default:
			return nil, fmt.Errorf("unknown analysis %q", analysis)
		}
	}
	return snapshot, nil
}

// selectLiunian picks the entry for the given year, or the first entry when
// year is zero. A miss returns a zero entry, which the interaction analyzer
// reports through its soft error envelope.
func selectLiunian(liunian []chart.LiunianEntry, year int) chart.LiunianEntry {
	if year == 0 {
		if len(liunian) > 0 {
			return liunian[0]
		}
		return chart.LiunianEntry{}
	}
	for _, l := range liunian {
		if l.Year == year {
			return l
		}
	}
	return chart.LiunianEntry{}
}
