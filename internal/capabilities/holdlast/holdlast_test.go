package holdlast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

func params(horizon int) domain.ScenarioParameters {
	return domain.ScenarioParameters{
		ScenarioID:     "S1",
		HorizonEndYear: horizon,
		Indicators:     map[string]domain.IndicatorConfig{"jobs": {Method: "holdlast"}},
	}
}

func TestProject_HoldsFlat(t *testing.T) {
	h := domain.HistoricalSeries{
		IndicatorID: "jobs",
		Country:     "DK",
		Points: []domain.Point{
			{Year: 2019, Value: 1200},
			{Year: 2020, Value: 1100},
		},
	}

	p, err := New().Project(h, params(2023))

	require.NoError(t, err)
	require.NoError(t, p.ValidateCoverage(2019, 2023))
	require.Len(t, p.Points, 5)
	for _, pt := range p.Points[2:] {
		assert.Equal(t, domain.ProvenanceProjected, pt.Provenance)
		assert.Equal(t, 1100.0, pt.Value)
	}
}

func TestProject_BaseSkipsTrailingMissing(t *testing.T) {
	h := domain.HistoricalSeries{
		IndicatorID: "jobs",
		Country:     "DK",
		Points: []domain.Point{
			{Year: 2019, Value: 1200},
			{Year: 2020, Missing: true},
		},
	}

	p, err := New().Project(h, params(2022))

	require.NoError(t, err)
	assert.Equal(t, 1200.0, p.Points[2].Value)
	assert.Equal(t, 1200.0, p.Points[3].Value)
}

func TestProject_NoObservedValue(t *testing.T) {
	h := domain.HistoricalSeries{
		IndicatorID: "jobs",
		Country:     "DK",
		Points:      []domain.Point{{Year: 2020, Missing: true}},
	}

	_, err := New().Project(h, params(2023))

	assert.ErrorIs(t, err, domain.ErrComputation)
}
