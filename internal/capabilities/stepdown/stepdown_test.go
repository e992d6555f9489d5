package stepdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

func series(firstYear int, values ...float64) domain.HistoricalSeries {
	s := domain.HistoricalSeries{IndicatorID: "pelts", Country: "LT"}
	for i, v := range values {
		s.Points = append(s.Points, domain.Point{Year: firstYear + i, Value: v})
	}
	return s
}

func params(horizon int) domain.ScenarioParameters {
	return domain.ScenarioParameters{
		ScenarioID:     "S1",
		HorizonEndYear: horizon,
		Indicators:     map[string]domain.IndicatorConfig{"pelts": {Method: "stepdown"}},
	}
}

func projectedValues(p domain.ProjectedSeries) []float64 {
	var out []float64
	for _, pt := range p.Points {
		if pt.Provenance == domain.ProvenanceProjected {
			out = append(out, pt.Value)
		}
	}
	return out
}

func TestProject_TwoSteps(t *testing.T) {
	h := series(2019, 100, 100)
	c := New(Options{Steps: 2})

	p, err := c.Project(h, params(2024))

	require.NoError(t, err)
	require.NoError(t, p.ValidateCoverage(2019, 2024))
	assert.Equal(t, []float64{100, 50, 0, 0}, projectedValues(p))
}

func TestProject_ThreeSteps(t *testing.T) {
	h := series(2020, 90)
	c := New(Options{Steps: 3})

	p, err := c.Project(h, params(2025))

	require.NoError(t, err)
	assert.Equal(t, []float64{90, 60, 30, 0, 0}, projectedValues(p))
}

func TestProject_NoObservedValue(t *testing.T) {
	h := domain.HistoricalSeries{
		IndicatorID: "pelts",
		Country:     "LT",
		Points:      []domain.Point{{Year: 2020, Missing: true}},
	}
	c := New(Options{Steps: 2})

	_, err := c.Project(h, params(2024))

	assert.ErrorIs(t, err, domain.ErrComputation)
}

func TestOptionsFromConfig_Default(t *testing.T) {
	o, err := OptionsFromConfig(domain.IndicatorConfig{})

	require.NoError(t, err)
	assert.Equal(t, 2, o.Steps)
}

func TestOptionsFromConfig_Explicit(t *testing.T) {
	o, err := OptionsFromConfig(domain.IndicatorConfig{Options: map[string]float64{"steps": 3}})

	require.NoError(t, err)
	assert.Equal(t, 3, o.Steps)
}

func TestOptionsFromConfig_TooFewSteps(t *testing.T) {
	_, err := OptionsFromConfig(domain.IndicatorConfig{Options: map[string]float64{"steps": 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
