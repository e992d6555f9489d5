// Package holdlast projects the last observed value flat to the horizon.
// Analysts configure it for indicators expected to stay at current levels.
package holdlast

import (
	"fmt"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure Capability implements the interface.
var _ driven.Capability = (*Capability)(nil)

// Capability is the hold-last-value projection method.
type Capability struct{}

// New creates a hold-last capability.
func New() *Capability {
	return &Capability{}
}

// Name identifies the method.
func (c *Capability) Name() string { return "holdlast" }

// Project carries the last observed value unchanged to the horizon.
func (c *Capability) Project(h domain.HistoricalSeries, params domain.ScenarioParameters) (domain.ProjectedSeries, error) {
	base, ok := h.LastObserved()
	if !ok {
		return domain.ProjectedSeries{}, fmt.Errorf("%w: %s/%s has no observed value",
			domain.ErrComputation, h.IndicatorID, h.Country)
	}

	future := make([]float64, 0, params.HorizonEndYear-h.LastYear())
	for year := h.LastYear() + 1; year <= params.HorizonEndYear; year++ {
		future = append(future, base.Value)
	}
	return domain.ExtendSeries(h, params.HorizonEndYear, future)
}
