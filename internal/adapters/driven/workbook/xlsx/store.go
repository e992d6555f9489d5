package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.OutputStore = (*Store)(nil)

// logSheet is the reserved tab holding the append-only projection log.
const logSheet = "projection_log"

// timestampLayout is the log timestamp format in the workbook.
const timestampLayout = "2006-01-02 15:04:05"

// Store persists the output document as a per-scenario xlsx workbook.
// Saves are whole-document and atomic: the new workbook is written to a
// temp file in the same directory and renamed over the previous one, so a
// failed write never corrupts the last valid output.
type Store struct {
	path string
}

// NewStore creates a store writing to the workbook at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the output workbook path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted document. A missing file yields an empty
// document: init creates the workbook, but a run against a fresh scenario
// directory must still work.
func (s *Store) Load(_ context.Context, scenarioID string) (*domain.OutputDocument, error) {
	doc := domain.NewOutputDocument(scenarioID)

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, fmt.Errorf("open output workbook %s: %w", s.path, err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		if sheet == logSheet {
			entries, err := s.loadLog(f)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				doc.AppendLog(e)
			}
			continue
		}
		series, err := s.loadSeriesSheet(f, sheet)
		if err != nil {
			return nil, err
		}
		if len(series) > 0 {
			doc.PutSeries(sheet, series)
		}
	}
	return doc, nil
}

// Save writes the complete document and atomically replaces the previous
// workbook. All failures wrap domain.ErrPersistence.
func (s *Store) Save(_ context.Context, doc *domain.OutputDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, id := range doc.IndicatorIDs() {
		series, err := doc.Series(id)
		if err != nil {
			return fmt.Errorf("%w: collect series %s: %v", domain.ErrPersistence, id, err)
		}
		if err := writeSeriesSheet(f, id, series); err != nil {
			return fmt.Errorf("%w: write sheet %s: %v", domain.ErrPersistence, id, err)
		}
	}
	if err := writeLogSheet(f, doc.Log()); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, logSheet, err)
	}
	// Drop the default sheet excelize creates with every new file.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: create output folder: %v", domain.ErrPersistence, err)
	}
	tmp, err := os.CreateTemp(dir, ".projected-*.xlsx")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", domain.ErrPersistence, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := f.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write temp workbook: %v", domain.ErrPersistence, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: replace %s: %v", domain.ErrPersistence, s.path, err)
	}
	return nil
}

func writeSeriesSheet(f *excelize.File, indicatorID string, series []domain.ProjectedSeries) error {
	if _, err := f.NewSheet(indicatorID); err != nil {
		return err
	}
	header := []any{"Country", "Year", "Value", "Unit", "Provenance"}
	if err := f.SetSheetRow(indicatorID, "A1", &header); err != nil {
		return err
	}
	rowNum := 2
	for _, s := range series {
		for _, p := range s.Points {
			var value any
			if !p.Missing {
				value = p.Value
			}
			row := []any{s.Country, p.Year, value, s.Unit, string(p.Provenance)}
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(indicatorID, cell, &row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func writeLogSheet(f *excelize.File, entries []domain.LogEntry) error {
	if _, err := f.NewSheet(logSheet); err != nil {
		return err
	}
	header := []any{"RunID", "Indicator", "Scenario", "Timestamp", "Status", "Rows", "Error"}
	if err := f.SetSheetRow(logSheet, "A1", &header); err != nil {
		return err
	}
	for i, e := range entries {
		row := []any{
			e.RunID,
			e.IndicatorID,
			e.ScenarioID,
			e.Timestamp.Format(timestampLayout),
			string(e.Status),
			e.Rows,
			e.Err,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(logSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// loadSeriesSheet reads one long-format indicator sheet back into series,
// grouped by country in row order.
func (s *Store) loadSeriesSheet(f *excelize.File, sheet string) ([]domain.ProjectedSeries, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	byCountry := make(map[string]*domain.ProjectedSeries)
	var order []string
	for _, row := range rows[1:] {
		if len(row) < 5 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		country := strings.TrimSpace(row[0])
		year, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("sheet %s has a non-integer year %q: %w", sheet, row[1], err)
		}
		point := domain.ProjectedPoint{Year: year, Provenance: domain.Provenance(strings.TrimSpace(row[4]))}
		if raw := strings.TrimSpace(row[2]); raw == "" {
			point.Missing = true
		} else {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("sheet %s has a non-numeric value %q: %w", sheet, row[2], err)
			}
			point.Value = v
		}

		cs, ok := byCountry[country]
		if !ok {
			cs = &domain.ProjectedSeries{IndicatorID: sheet, Country: country, Unit: strings.TrimSpace(row[3])}
			byCountry[country] = cs
			order = append(order, country)
		}
		cs.Points = append(cs.Points, point)
	}

	out := make([]domain.ProjectedSeries, 0, len(order))
	for _, country := range order {
		out = append(out, *byCountry[country])
	}
	return out, nil
}

func (s *Store) loadLog(f *excelize.File) ([]domain.LogEntry, error) {
	rows, err := f.GetRows(logSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", logSheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}
	var entries []domain.LogEntry
	for _, row := range rows[1:] {
		if len(row) < 5 || strings.TrimSpace(row[1]) == "" {
			continue
		}
		e := domain.LogEntry{
			RunID:       strings.TrimSpace(row[0]),
			IndicatorID: strings.TrimSpace(row[1]),
			ScenarioID:  strings.TrimSpace(row[2]),
			Status:      domain.RunStatus(strings.TrimSpace(row[4])),
		}
		if ts, err := time.ParseInLocation(timestampLayout, strings.TrimSpace(row[3]), time.Local); err == nil {
			e.Timestamp = ts
		}
		if len(row) > 5 {
			if n, err := strconv.Atoi(strings.TrimSpace(row[5])); err == nil {
				e.Rows = n
			}
		}
		if len(row) > 6 {
			e.Err = row[6]
		}
		entries = append(entries, e)
	}
	return entries, nil
}
