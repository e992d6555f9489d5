package gg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

func figureSeries() []domain.ProjectedSeries {
	return []domain.ProjectedSeries{
		{
			IndicatorID: "pelts",
			Country:     "DE",
			Unit:        "thousand pelts",
			Points: []domain.ProjectedPoint{
				{Year: 2019, Value: 100, Provenance: domain.ProvenanceHistorical},
				{Year: 2020, Value: 105, Provenance: domain.ProvenanceHistorical},
				{Year: 2021, Value: 110, Provenance: domain.ProvenanceProjected},
				{Year: 2022, Value: 115, Provenance: domain.ProvenanceProjected},
			},
		},
		{
			IndicatorID: "pelts",
			Country:     "PL",
			Unit:        "thousand pelts",
			Points: []domain.ProjectedPoint{
				{Year: 2019, Value: 250, Provenance: domain.ProvenanceHistorical},
				{Year: 2020, Missing: true, Provenance: domain.ProvenanceHistorical},
				{Year: 2021, Value: 230, Provenance: domain.ProvenanceProjected},
				{Year: 2022, Value: 220, Provenance: domain.ProvenanceProjected},
			},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	err := r.Render(context.Background(), "pelts", "S1", figureSeries(), DefaultTheme())

	require.NoError(t, err)

	path := filepath.Join(dir, "pelts_S1.png")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// PNG signature.
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, data[:8])
}

func TestRenderer_Render_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")
	r := NewRenderer(dir)

	err := r.Render(context.Background(), "pelts", "S1", figureSeries(), DefaultTheme())

	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "pelts_S1.png"))
	assert.NoError(t, err)
}

func TestRenderer_Render_NoSeries(t *testing.T) {
	r := NewRenderer(t.TempDir())

	err := r.Render(context.Background(), "pelts", "S1", nil, DefaultTheme())

	assert.Error(t, err)
}

func TestRenderer_Render_SingleYear(t *testing.T) {
	r := NewRenderer(t.TempDir())
	series := []domain.ProjectedSeries{
		{
			IndicatorID: "pelts",
			Country:     "DE",
			Points:      []domain.ProjectedPoint{{Year: 2020, Value: 100, Provenance: domain.ProvenanceHistorical}},
		},
	}

	err := r.Render(context.Background(), "pelts", "S1", series, DefaultTheme())

	assert.Error(t, err)
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, 1000, theme.Width)
	assert.Equal(t, 600, theme.Height)
	assert.NotEmpty(t, theme.Palette)
}
