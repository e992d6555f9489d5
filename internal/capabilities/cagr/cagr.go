// Package cagr projects a series forward at its compound annual growth rate.
// The rate is fitted between the first and last usable observation and may
// be capped through the max_growth and max_decline options.
package cagr

import (
	"fmt"
	"math"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure Capability implements the interface.
var _ driven.Capability = (*Capability)(nil)

// Options configure the CAGR method.
type Options struct {
	// MaxGrowth caps the annual rate from above when HasMaxGrowth is set.
	MaxGrowth    float64
	HasMaxGrowth bool

	// MaxDecline caps the annual rate from below when HasMaxDecline is set.
	MaxDecline    float64
	HasMaxDecline bool
}

// OptionsFromConfig reads caps from an indicator's option map.
func OptionsFromConfig(cfg domain.IndicatorConfig) Options {
	var o Options
	if v, ok := cfg.Options["max_growth"]; ok {
		o.MaxGrowth, o.HasMaxGrowth = v, true
	}
	if v, ok := cfg.Options["max_decline"]; ok {
		o.MaxDecline, o.HasMaxDecline = v, true
	}
	return o
}

// Capability is the CAGR projection method.
type Capability struct {
	opts Options
}

// New creates a CAGR capability.
func New(opts Options) *Capability {
	return &Capability{opts: opts}
}

// Name identifies the method.
func (c *Capability) Name() string { return "cagr" }

// Project fits a growth rate over the usable (non-missing, positive) points
// and extends the series to the scenario horizon. Fewer than two usable
// points, a zero base, or a non-finite rate are computation errors.
func (c *Capability) Project(h domain.HistoricalSeries, params domain.ScenarioParameters) (domain.ProjectedSeries, error) {
	var usable []domain.Point
	for _, p := range h.Points {
		if !p.Missing && p.Value > 0 {
			usable = append(usable, p)
		}
	}
	if len(usable) < 2 {
		return domain.ProjectedSeries{}, fmt.Errorf("%w: %s/%s has %d usable points, cagr needs at least 2",
			domain.ErrComputation, h.IndicatorID, h.Country, len(usable))
	}

	first, last := usable[0], usable[len(usable)-1]
	span := last.Year - first.Year
	if span == 0 {
		return domain.ProjectedSeries{}, fmt.Errorf("%w: %s/%s usable points cover a single year",
			domain.ErrComputation, h.IndicatorID, h.Country)
	}
	rate := math.Pow(last.Value/first.Value, 1/float64(span)) - 1
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return domain.ProjectedSeries{}, fmt.Errorf("%w: %s/%s produced a non-finite growth rate",
			domain.ErrComputation, h.IndicatorID, h.Country)
	}
	if c.opts.HasMaxGrowth && rate > c.opts.MaxGrowth {
		rate = c.opts.MaxGrowth
	}
	if c.opts.HasMaxDecline && rate < c.opts.MaxDecline {
		rate = c.opts.MaxDecline
	}

	// Extrapolate from the most recent observation, not the fit endpoint,
	// so trailing missing cells do not shift the projection base.
	base, ok := h.LastObserved()
	if !ok {
		return domain.ProjectedSeries{}, fmt.Errorf("%w: %s/%s has no observed value",
			domain.ErrComputation, h.IndicatorID, h.Country)
	}

	future := make([]float64, 0, params.HorizonEndYear-h.LastYear())
	for year := h.LastYear() + 1; year <= params.HorizonEndYear; year++ {
		future = append(future, base.Value*math.Pow(1+rate, float64(year-base.Year)))
	}
	return domain.ExtendSeries(h, params.HorizonEndYear, future)
}
