package driven

import "github.com/veldt-labs/prospekt-cli/internal/core/domain"

// Capability is one pluggable projection method. Capabilities are stateless
// pure functions over the series they receive: they own no persisted state
// and never mutate shared data.
type Capability interface {
	// Name identifies the method, e.g. "cagr".
	Name() string

	// Project extends one historical series to the scenario horizon,
	// returning the merged series with provenance tags. Computation
	// failures (insufficient data, non-finite extrapolation, a gap the
	// method cannot handle) are returned as errors wrapping
	// domain.ErrComputation, never as partial series.
	Project(historical domain.HistoricalSeries, params domain.ScenarioParameters) (domain.ProjectedSeries, error)
}

// CapabilityRegistry resolves the capability for an indicator within a
// scenario. Resolution is pure lookup; no computation happens here.
type CapabilityRegistry interface {
	// Resolve returns the capability registered for the indicator and
	// scenario, or an error wrapping domain.ErrNotImplemented.
	Resolve(scenarioID, indicatorID string) (Capability, error)
}
