// Package stepdown projects a short fractional wind-down of the last
// observed value: the first projected year keeps the full value, following
// years drop in equal fractions until zero.
package stepdown

import (
	"fmt"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure Capability implements the interface.
var _ driven.Capability = (*Capability)(nil)

// Options configure the wind-down length.
type Options struct {
	// Steps is the number of projected years until the value reaches zero.
	// Two steps yields factors 1, 1/2, 0...; three yields 1, 2/3, 1/3, 0...
	Steps int
}

// OptionsFromConfig reads the step count from an indicator's option map.
func OptionsFromConfig(cfg domain.IndicatorConfig) (Options, error) {
	v, ok := cfg.Options["steps"]
	if !ok {
		return Options{Steps: 2}, nil
	}
	o := Options{Steps: int(v)}
	if o.Steps < 1 {
		return Options{}, fmt.Errorf("%w: stepdown needs at least 1 step", domain.ErrInvalidInput)
	}
	return o, nil
}

// Capability is the step-down projection method.
type Capability struct {
	opts Options
}

// New creates a step-down capability.
func New(opts Options) *Capability {
	return &Capability{opts: opts}
}

// Name identifies the method.
func (c *Capability) Name() string { return "stepdown" }

// Project winds the last observed value down to zero over the configured
// number of steps and stays at zero to the horizon.
func (c *Capability) Project(h domain.HistoricalSeries, params domain.ScenarioParameters) (domain.ProjectedSeries, error) {
	base, ok := h.LastObserved()
	if !ok {
		return domain.ProjectedSeries{}, fmt.Errorf("%w: %s/%s has no observed value",
			domain.ErrComputation, h.IndicatorID, h.Country)
	}

	future := make([]float64, 0, params.HorizonEndYear-h.LastYear())
	step := 0
	for year := h.LastYear() + 1; year <= params.HorizonEndYear; year++ {
		factor := 1 - float64(step)/float64(c.opts.Steps)
		if factor < 0 {
			factor = 0
		}
		future = append(future, base.Value*factor)
		step++
	}
	return domain.ExtendSeries(h, params.HorizonEndYear, future)
}
