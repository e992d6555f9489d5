package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

type fakeCapability struct {
	name string
}

func (c *fakeCapability) Name() string { return c.name }

func (c *fakeCapability) Project(h domain.HistoricalSeries, params domain.ScenarioParameters) (domain.ProjectedSeries, error) {
	return domain.ProjectedSeries{}, nil
}

func TestCapabilityRegistry_Resolve(t *testing.T) {
	r := NewCapabilityRegistry()
	r.Register("S1", "pelts", &fakeCapability{name: "cagr"})

	c, err := r.Resolve("S1", "pelts")

	require.NoError(t, err)
	assert.Equal(t, "cagr", c.Name())
}

func TestCapabilityRegistry_Resolve_UnknownIndicator(t *testing.T) {
	r := NewCapabilityRegistry()

	_, err := r.Resolve("S1", "pelts")

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestCapabilityRegistry_Resolve_ScenarioScoped(t *testing.T) {
	r := NewCapabilityRegistry()
	r.Register("S1", "pelts", &fakeCapability{name: "cagr"})

	_, err := r.Resolve("S2", "pelts")

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestCapabilityRegistry_Populate(t *testing.T) {
	r := NewCapabilityRegistry()
	params := domain.ScenarioParameters{
		ScenarioID:     "S1",
		HorizonEndYear: 2040,
		Indicators: map[string]domain.IndicatorConfig{
			"pelts":     {Method: "fake"},
			"companies": {Method: "unknown"},
			"jobs":      {},
		},
	}
	builders := map[string]CapabilityBuilder{
		"fake": func(cfg domain.IndicatorConfig) (driven.Capability, error) {
			return &fakeCapability{name: "fake"}, nil
		},
	}

	require.NoError(t, r.Populate(params, builders))

	_, err := r.Resolve("S1", "pelts")
	assert.NoError(t, err)

	// Unknown or absent methods stay unbound and fail at resolution.
	_, err = r.Resolve("S1", "companies")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = r.Resolve("S1", "jobs")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestCapabilityRegistry_Populate_BuilderError(t *testing.T) {
	r := NewCapabilityRegistry()
	params := domain.ScenarioParameters{
		ScenarioID:     "S1",
		HorizonEndYear: 2040,
		Indicators: map[string]domain.IndicatorConfig{
			"pelts": {Method: "broken"},
		},
	}
	buildErr := errors.New("bad options")
	builders := map[string]CapabilityBuilder{
		"broken": func(cfg domain.IndicatorConfig) (driven.Capability, error) {
			return nil, buildErr
		},
	}

	err := r.Populate(params, builders)

	assert.ErrorIs(t, err, buildErr)
}
