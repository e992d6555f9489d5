// Package file provides file-based configuration adapters. Scenario
// definitions are TOML documents kept next to the data folders so analysts
// can edit and version them.
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

// scenarioFile is the on-disk TOML shape of a scenario.
type scenarioFile struct {
	Scenario       string                      `toml:"scenario"`
	HorizonEndYear int                         `toml:"horizon_end_year"`
	Indicators     map[string]indicatorSection `toml:"indicators"`
}

type indicatorSection struct {
	Method  string             `toml:"method"`
	Unit    string             `toml:"unit"`
	Options map[string]float64 `toml:"options"`
}

// LoadScenario reads scenario parameters from a TOML file.
func LoadScenario(path string) (domain.ScenarioParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ScenarioParameters{}, fmt.Errorf("read scenario file %s: %w", path, err)
	}

	var sf scenarioFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return domain.ScenarioParameters{}, fmt.Errorf("parse scenario file %s: %w", path, err)
	}

	params := domain.ScenarioParameters{
		ScenarioID:     sf.Scenario,
		HorizonEndYear: sf.HorizonEndYear,
		Indicators:     make(map[string]domain.IndicatorConfig, len(sf.Indicators)),
	}
	for id, sec := range sf.Indicators {
		params.Indicators[id] = domain.IndicatorConfig{
			Method:  sec.Method,
			Unit:    sec.Unit,
			Options: sec.Options,
		}
	}
	if err := params.Validate(); err != nil {
		return domain.ScenarioParameters{}, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return params, nil
}

// SaveScenario writes scenario parameters as TOML with restricted
// permissions. Used by init to lay down a stub analysts then edit.
func SaveScenario(path string, params domain.ScenarioParameters) error {
	sf := scenarioFile{
		Scenario:       params.ScenarioID,
		HorizonEndYear: params.HorizonEndYear,
		Indicators:     make(map[string]indicatorSection, len(params.Indicators)),
	}
	for id, cfg := range params.Indicators {
		sf.Indicators[id] = indicatorSection{Method: cfg.Method, Unit: cfg.Unit, Options: cfg.Options}
	}

	data, err := toml.Marshal(sf)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
