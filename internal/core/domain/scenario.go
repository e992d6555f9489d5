package domain

import "fmt"

// IndicatorConfig is the per-indicator slice of a scenario. The engine never
// interprets it; the capability registry consumes it when wiring methods.
type IndicatorConfig struct {
	// Method names the projection method for this indicator, e.g. "cagr".
	Method string

	// Unit is the measurement unit written into output series.
	Unit string

	// Options are method-specific numeric parameters, opaque to the engine.
	Options map[string]float64
}

// ScenarioParameters describe one scenario: horizon plus per-indicator
// configuration. Immutable for the duration of a run.
type ScenarioParameters struct {
	// ScenarioID names the scenario, e.g. "S1".
	ScenarioID string

	// HorizonEndYear is the last year every projected series must reach.
	HorizonEndYear int

	// Indicators maps indicator id to its configuration.
	Indicators map[string]IndicatorConfig
}

// Validate checks the scenario invariants.
func (p ScenarioParameters) Validate() error {
	if p.ScenarioID == "" {
		return fmt.Errorf("%w: scenario id is empty", ErrInvalidInput)
	}
	if p.HorizonEndYear <= 0 {
		return fmt.Errorf("%w: scenario %s has no horizon end year", ErrInvalidInput, p.ScenarioID)
	}
	if len(p.Indicators) == 0 {
		return fmt.Errorf("%w: scenario %s configures no indicators", ErrInvalidInput, p.ScenarioID)
	}
	return nil
}

// IndicatorIDs returns the configured indicator ids in unspecified order.
func (p ScenarioParameters) IndicatorIDs() []string {
	ids := make([]string, 0, len(p.Indicators))
	for id := range p.Indicators {
		ids = append(ids, id)
	}
	return ids
}

// RunConfig is the explicit configuration of one engine run. It is built by
// the CLI and passed in; the engine reads no ambient state.
type RunConfig struct {
	// Scenario holds the scenario parameters for this run.
	Scenario ScenarioParameters

	// IndicatorIDs selects the indicators to process. Empty means all
	// indicators configured in the scenario.
	IndicatorIDs []string

	// Overwrite re-projects indicators that already have a series in the
	// output document. When false such indicators are skipped.
	Overwrite bool

	// Figures enables figure rendering after persistence.
	Figures bool
}
