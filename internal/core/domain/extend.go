package domain

import (
	"fmt"
	"math"
)

// ExtendSeries merges a historical series with future values into a
// ProjectedSeries reaching horizonEnd. future must hold exactly one value
// per year after the last historical year; non-finite values are rejected.
// Capabilities use this so every method produces the same merged shape.
func ExtendSeries(h HistoricalSeries, horizonEnd int, future []float64) (ProjectedSeries, error) {
	if err := h.Validate(); err != nil {
		return ProjectedSeries{}, err
	}
	want := horizonEnd - h.LastYear()
	if want < 0 {
		return ProjectedSeries{}, fmt.Errorf("%w: horizon %d precedes last historical year %d for %s/%s",
			ErrComputation, horizonEnd, h.LastYear(), h.IndicatorID, h.Country)
	}
	if len(future) != want {
		return ProjectedSeries{}, fmt.Errorf("%w: %s/%s needs %d projected values, got %d",
			ErrComputation, h.IndicatorID, h.Country, want, len(future))
	}

	out := ProjectedSeries{
		IndicatorID: h.IndicatorID,
		Country:     h.Country,
		Unit:        h.Unit,
		Points:      make([]ProjectedPoint, 0, len(h.Points)+len(future)),
	}
	for _, p := range h.Points {
		out.Points = append(out.Points, ProjectedPoint{
			Year:       p.Year,
			Value:      p.Value,
			Missing:    p.Missing,
			Provenance: ProvenanceHistorical,
		})
	}
	for i, v := range future {
		year := h.LastYear() + 1 + i
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ProjectedSeries{}, fmt.Errorf("%w: non-finite value for %s/%s at %d",
				ErrComputation, h.IndicatorID, h.Country, year)
		}
		out.Points = append(out.Points, ProjectedPoint{
			Year:       year,
			Value:      v,
			Provenance: ProvenanceProjected,
		})
	}
	return out, nil
}
