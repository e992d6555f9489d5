package domain

import "fmt"

// Provenance tags a data point as observed history or model output.
type Provenance string

const (
	// ProvenanceHistorical marks a value taken from the input workbook.
	ProvenanceHistorical Provenance = "historical"

	// ProvenanceProjected marks a value produced by a capability.
	ProvenanceProjected Provenance = "projected"
)

// Point is a single historical observation.
type Point struct {
	// Year the observation belongs to.
	Year int

	// Value of the observation. Meaningless when Missing is true.
	Value float64

	// Missing is true when the input cell was empty. The year is still
	// present so series stay contiguous.
	Missing bool
}

// HistoricalSeries is one indicator's observed values for one country.
type HistoricalSeries struct {
	// IndicatorID identifies the indicator this series belongs to.
	IndicatorID string

	// Country is the country code for this series.
	Country string

	// Unit is the measurement unit, e.g. "pelts" or "million EUR".
	Unit string

	// Points are the observations, ordered by year.
	Points []Point
}

// Validate checks the series invariants: at least one point, years strictly
// increasing with no gaps.
func (s HistoricalSeries) Validate() error {
	if s.IndicatorID == "" {
		return fmt.Errorf("%w: series has no indicator id", ErrInvalidInput)
	}
	if len(s.Points) == 0 {
		return fmt.Errorf("%w: series %s/%s has no points", ErrInvalidInput, s.IndicatorID, s.Country)
	}
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Year != s.Points[i-1].Year+1 {
			return fmt.Errorf("%w: series %s/%s has non-contiguous years %d and %d",
				ErrInvalidInput, s.IndicatorID, s.Country, s.Points[i-1].Year, s.Points[i].Year)
		}
	}
	return nil
}

// FirstYear returns the year of the earliest point.
func (s HistoricalSeries) FirstYear() int {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[0].Year
}

// LastYear returns the year of the latest point.
func (s HistoricalSeries) LastYear() int {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Year
}

// LastObserved returns the most recent non-missing point, or false when the
// series holds no usable observation.
func (s HistoricalSeries) LastObserved() (Point, bool) {
	for i := len(s.Points) - 1; i >= 0; i-- {
		if !s.Points[i].Missing {
			return s.Points[i], true
		}
	}
	return Point{}, false
}

// ProjectedPoint is a single point of a merged historical+projected series.
type ProjectedPoint struct {
	// Year the point belongs to.
	Year int

	// Value of the point. Meaningless when Missing is true.
	Value float64

	// Missing carries through empty historical cells.
	Missing bool

	// Provenance distinguishes observed from projected values.
	Provenance Provenance
}

// ProjectedSeries is one indicator's merged series for one country, covering
// every year from the first historical year to the scenario horizon.
type ProjectedSeries struct {
	// IndicatorID identifies the indicator this series belongs to.
	IndicatorID string

	// Country is the country code for this series.
	Country string

	// Unit is the measurement unit, carried over from the historical series.
	Unit string

	// Points are the merged values, ordered by year.
	Points []ProjectedPoint
}

// ValidateCoverage checks the projected-series invariant: contiguous years
// from firstYear through horizonEnd, historical provenance never appearing
// after a projected point.
func (s ProjectedSeries) ValidateCoverage(firstYear, horizonEnd int) error {
	if len(s.Points) == 0 {
		return fmt.Errorf("%w: projected series %s/%s is empty", ErrComputation, s.IndicatorID, s.Country)
	}
	if s.Points[0].Year != firstYear {
		return fmt.Errorf("%w: projected series %s/%s starts at %d, want %d",
			ErrComputation, s.IndicatorID, s.Country, s.Points[0].Year, firstYear)
	}
	last := s.Points[len(s.Points)-1].Year
	if last != horizonEnd {
		return fmt.Errorf("%w: projected series %s/%s ends at %d, want horizon %d",
			ErrComputation, s.IndicatorID, s.Country, last, horizonEnd)
	}
	seenProjected := false
	for i, p := range s.Points {
		if i > 0 && p.Year != s.Points[i-1].Year+1 {
			return fmt.Errorf("%w: projected series %s/%s has a gap between %d and %d",
				ErrComputation, s.IndicatorID, s.Country, s.Points[i-1].Year, p.Year)
		}
		switch p.Provenance {
		case ProvenanceHistorical:
			if seenProjected {
				return fmt.Errorf("%w: projected series %s/%s has historical point %d after projected points",
					ErrComputation, s.IndicatorID, s.Country, p.Year)
			}
		case ProvenanceProjected:
			seenProjected = true
		default:
			return fmt.Errorf("%w: projected series %s/%s has unknown provenance %q at %d",
				ErrComputation, s.IndicatorID, s.Country, p.Provenance, p.Year)
		}
	}
	return nil
}
