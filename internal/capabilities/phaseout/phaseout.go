// Package phaseout projects a linear ramp from the last observed value down
// to zero across a configured window, modelling a regulatory phase-out.
package phaseout

import (
	"fmt"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure Capability implements the interface.
var _ driven.Capability = (*Capability)(nil)

// Options configure the phase-out window.
type Options struct {
	// StartYear is the first year of the decline.
	StartYear int

	// EndYear is the year the value reaches zero.
	EndYear int
}

// OptionsFromConfig reads the window from an indicator's option map.
func OptionsFromConfig(cfg domain.IndicatorConfig) (Options, error) {
	start, okStart := cfg.Options["start_year"]
	end, okEnd := cfg.Options["end_year"]
	if !okStart || !okEnd {
		return Options{}, fmt.Errorf("%w: phaseout requires start_year and end_year options", domain.ErrInvalidInput)
	}
	o := Options{StartYear: int(start), EndYear: int(end)}
	if o.EndYear < o.StartYear {
		return Options{}, fmt.Errorf("%w: phaseout end_year %d precedes start_year %d",
			domain.ErrInvalidInput, o.EndYear, o.StartYear)
	}
	return o, nil
}

// Capability is the linear phase-out projection method.
type Capability struct {
	opts Options
}

// New creates a phase-out capability.
func New(opts Options) *Capability {
	return &Capability{opts: opts}
}

// Name identifies the method.
func (c *Capability) Name() string { return "phaseout" }

// Project holds the last observed value until the window opens, declines
// linearly to zero at the window's end, and stays at zero afterwards.
func (c *Capability) Project(h domain.HistoricalSeries, params domain.ScenarioParameters) (domain.ProjectedSeries, error) {
	base, ok := h.LastObserved()
	if !ok {
		return domain.ProjectedSeries{}, fmt.Errorf("%w: %s/%s has no observed value",
			domain.ErrComputation, h.IndicatorID, h.Country)
	}

	window := float64(c.opts.EndYear - c.opts.StartYear + 1)
	future := make([]float64, 0, params.HorizonEndYear-h.LastYear())
	for year := h.LastYear() + 1; year <= params.HorizonEndYear; year++ {
		switch {
		case year < c.opts.StartYear:
			future = append(future, base.Value)
		case year <= c.opts.EndYear:
			v := base.Value * float64(c.opts.EndYear-year) / window
			if v < 0 {
				v = 0
			}
			future = append(future, v)
		default:
			future = append(future, 0)
		}
	}
	return domain.ExtendSeries(h, params.HorizonEndYear, future)
}
