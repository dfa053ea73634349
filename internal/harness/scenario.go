package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mingyun/ganzhi/internal/chart"
)

// Analysis names accepted in a scenario's analyses list, in run order.
const (
	AnalysisTurningPoints = "turning_points"
	AnalysisInteraction   = "interaction"
	AnalysisKeyTimes      = "key_times"
	AnalysisTenGods       = "ten_gods"
)

// knownAnalyses guards against typos in scenario files.
var knownAnalyses = map[string]bool{
	AnalysisTurningPoints: true,
	AnalysisInteraction:   true,
	AnalysisKeyTimes:      true,
	AnalysisTenGods:       true,
}

// Options tunes the analyses that need more than the document itself.
type Options struct {
	// LiunianYear selects which Liunian entry the interaction analysis
	// uses. Zero means the first entry of the sequence.
	LiunianYear int `yaml:"liunian_year,omitempty"`

	// YearsAhead bounds the key-time prediction window.
	YearsAhead int `yaml:"years_ahead,omitempty"`

	// Now anchors the key-time window; entries at or before Now are ignored.
	Now int `yaml:"now,omitempty"`
}

// Scenario defines one conformance test case.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// ReportToken is an optional fixed token for deterministic snapshots.
	// Defaults to "test-report-default".
	ReportToken string `yaml:"report_token,omitempty"`

	// Document is the inline chart document under analysis.
	Document chart.Document `yaml:"document"`

	// Analyses lists which analyzers to run, in the given order.
	Analyses []string `yaml:"analyses"`

	// Options holds per-analysis tuning.
	Options Options `yaml:"options,omitempty"`
}

// Validate checks scenario well-formedness before running.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario missing name")
	}
	if len(s.Analyses) == 0 {
		return fmt.Errorf("scenario %q lists no analyses", s.Name)
	}
	for _, a := range s.Analyses {
		if !knownAnalyses[a] {
			return fmt.Errorf("scenario %q: unknown analysis %q", s.Name, a)
		}
	}
	return nil
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.ReportToken == "" {
		s.ReportToken = "test-report-default"
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
