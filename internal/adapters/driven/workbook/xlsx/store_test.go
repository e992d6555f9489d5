package xlsx

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

func sampleDocument() *domain.OutputDocument {
	doc := domain.NewOutputDocument("S1")
	doc.PutSeries("pelts", []domain.ProjectedSeries{
		{
			IndicatorID: "pelts",
			Country:     "DE",
			Unit:        "thousand pelts",
			Points: []domain.ProjectedPoint{
				{Year: 2019, Value: 100, Provenance: domain.ProvenanceHistorical},
				{Year: 2020, Value: 105, Provenance: domain.ProvenanceHistorical},
				{Year: 2021, Value: 110.25, Provenance: domain.ProvenanceProjected},
			},
		},
		{
			IndicatorID: "pelts",
			Country:     "PL",
			Unit:        "thousand pelts",
			Points: []domain.ProjectedPoint{
				{Year: 2019, Value: 250, Provenance: domain.ProvenanceHistorical},
				{Year: 2020, Missing: true, Provenance: domain.ProvenanceHistorical},
				{Year: 2021, Value: 0, Provenance: domain.ProvenanceProjected},
			},
		},
	})
	doc.AppendLog(domain.LogEntry{
		RunID:       "run-1",
		IndicatorID: "pelts",
		ScenarioID:  "S1",
		Timestamp:   time.Date(2026, 8, 27, 10, 30, 0, 0, time.Local),
		Status:      domain.StatusSuccess,
		Rows:        6,
	})
	return doc
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projected_data.xlsx")
	s := NewStore(path)

	require.NoError(t, s.Save(context.Background(), sampleDocument()))

	got, err := s.Load(context.Background(), "S1")
	require.NoError(t, err)

	series, err := got.Series("pelts")
	require.NoError(t, err)
	require.Len(t, series, 2)

	de := series[0]
	assert.Equal(t, "DE", de.Country)
	assert.Equal(t, "thousand pelts", de.Unit)
	require.Len(t, de.Points, 3)
	assert.Equal(t, domain.ProvenanceHistorical, de.Points[0].Provenance)
	assert.Equal(t, domain.ProvenanceProjected, de.Points[2].Provenance)
	assert.InDelta(t, 110.25, de.Points[2].Value, 0.0001)

	pl := series[1]
	assert.True(t, pl.Points[1].Missing)
	assert.False(t, pl.Points[2].Missing)

	log := got.Log()
	require.Len(t, log, 1)
	assert.Equal(t, "run-1", log[0].RunID)
	assert.Equal(t, domain.StatusSuccess, log[0].Status)
	assert.Equal(t, 6, log[0].Rows)
	assert.Equal(t, time.Date(2026, 8, 27, 10, 30, 0, 0, time.Local), log[0].Timestamp)
}

func TestStore_Load_MissingFileYieldsEmptyDocument(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent.xlsx"))

	doc, err := s.Load(context.Background(), "S1")

	require.NoError(t, err)
	assert.Empty(t, doc.IndicatorIDs())
	assert.Empty(t, doc.Log())
}

func TestStore_Save_ReplacesPreviousWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projected_data.xlsx")
	s := NewStore(path)
	require.NoError(t, s.Save(context.Background(), sampleDocument()))

	doc := sampleDocument()
	doc.AppendLog(domain.LogEntry{
		RunID:       "run-2",
		IndicatorID: "pelts",
		ScenarioID:  "S1",
		Timestamp:   time.Date(2026, 8, 27, 11, 0, 0, 0, time.Local),
		Status:      domain.StatusSkipped,
	})
	require.NoError(t, s.Save(context.Background(), doc))

	got, err := s.Load(context.Background(), "S1")
	require.NoError(t, err)

	log := got.Log()
	require.Len(t, log, 2)
	assert.Equal(t, domain.StatusSkipped, log[1].Status)
}

func TestStore_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "projected_data.xlsx"))

	require.NoError(t, s.Save(context.Background(), sampleDocument()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "projected_data.xlsx", entries[0].Name())
}

func TestStore_Save_FailedLogEntryRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projected_data.xlsx")
	s := NewStore(path)

	doc := domain.NewOutputDocument("S1")
	doc.AppendLog(domain.LogEntry{
		RunID:       "run-1",
		IndicatorID: "companies",
		ScenarioID:  "S1",
		Timestamp:   time.Date(2026, 8, 27, 10, 30, 0, 0, time.Local),
		Status:      domain.StatusFailed,
		Err:         "computation failed: no observed value",
	})
	require.NoError(t, s.Save(context.Background(), doc))

	got, err := s.Load(context.Background(), "S1")
	require.NoError(t, err)

	log := got.Log()
	require.Len(t, log, 1)
	assert.Equal(t, domain.StatusFailed, log[0].Status)
	assert.Equal(t, "computation failed: no observed value", log[0].Err)
	assert.Zero(t, log[0].Rows)
}

func TestInitWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")

	require.NoError(t, InitWorkbook(path, []string{"pelts", "companies"}))

	r := NewReader(path, nil)
	_, err := r.Load(context.Background(), []string{"pelts", "companies"})
	// Tabs exist but hold no data rows yet.
	assert.ErrorIs(t, err, domain.ErrSchemaValidation)
}

func TestInitWorkbook_ExistingFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	writeInputWorkbook(t, path, map[string][][]any{
		"pelts": {
			{"Year", "DE"},
			{2019, 100},
		},
	})
	before, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, InitWorkbook(path, []string{"pelts", "companies"}))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.Size(), after.Size())

	// The original single tab is still the whole workbook.
	r := NewReader(path, nil)
	_, err = r.Load(context.Background(), []string{"companies"})
	assert.ErrorIs(t, err, domain.ErrMissingIndicatorTab)
}
