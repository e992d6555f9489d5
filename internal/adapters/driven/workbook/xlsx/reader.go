package xlsx

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.HistoryLoader = (*Reader)(nil)

// Reader loads historical series from the input workbook.
type Reader struct {
	path  string
	units map[string]string
}

// NewReader creates a reader for the workbook at path. units maps indicator
// id to measurement unit (from the scenario configuration) and may be nil.
func NewReader(path string, units map[string]string) *Reader {
	return &Reader{path: path, units: units}
}

// Load reads one tab per expected indicator and returns the per-country
// series. Read-only: the workbook is never modified.
func (r *Reader) Load(_ context.Context, indicatorIDs []string) (map[string][]domain.HistoricalSeries, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open input workbook %s: %w", r.path, err)
	}
	defer f.Close()

	tabs := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		tabs[name] = true
	}

	out := make(map[string][]domain.HistoricalSeries, len(indicatorIDs))
	for _, id := range indicatorIDs {
		if !tabs[id] {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingIndicatorTab, id)
		}
		series, err := r.loadTab(f, id)
		if err != nil {
			return nil, err
		}
		out[id] = series
	}
	return out, nil
}

// loadTab parses one wide-format tab: header row "Year" plus country
// columns, then one row per year with numeric or empty cells.
func (r *Reader) loadTab(f *excelize.File, indicatorID string) ([]domain.HistoricalSeries, error) {
	rows, err := f.GetRows(indicatorID)
	if err != nil {
		return nil, fmt.Errorf("read tab %s: %w", indicatorID, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: tab %s has no data rows", domain.ErrSchemaValidation, indicatorID)
	}

	header := rows[0]
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "Year") {
		return nil, fmt.Errorf("%w: tab %s must start with a Year column followed by country columns",
			domain.ErrSchemaValidation, indicatorID)
	}
	countries := make([]string, 0, len(header)-1)
	for i, name := range header[1:] {
		name = strings.TrimSpace(name)
		if name == "" {
			cell, _ := excelize.CoordinatesToCellName(i+2, 1)
			return nil, fmt.Errorf("%w: tab %s has an empty country header at %s",
				domain.ErrSchemaValidation, indicatorID, cell)
		}
		countries = append(countries, name)
	}

	points := make([][]domain.Point, len(countries))
	prevYear := 0
	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			return nil, fmt.Errorf("%w: tab %s has a non-integer year at %s",
				domain.ErrSchemaValidation, indicatorID, cell)
		}
		if prevYear != 0 && year != prevYear+1 {
			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			return nil, fmt.Errorf("%w: tab %s has non-contiguous years %d and %d at %s",
				domain.ErrSchemaValidation, indicatorID, prevYear, year, cell)
		}
		prevYear = year

		for col := range countries {
			var raw string
			if col+1 < len(row) {
				raw = strings.TrimSpace(row[col+1])
			}
			point := domain.Point{Year: year}
			if raw == "" {
				point.Missing = true
			} else {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					cell, _ := excelize.CoordinatesToCellName(col+2, rowNum)
					return nil, fmt.Errorf("%w: tab %s has a non-numeric cell at %s (column %s)",
						domain.ErrSchemaValidation, indicatorID, cell, countries[col])
				}
				point.Value = v
			}
			points[col] = append(points[col], point)
		}
	}

	series := make([]domain.HistoricalSeries, 0, len(countries))
	for i, country := range countries {
		s := domain.HistoricalSeries{
			IndicatorID: indicatorID,
			Country:     country,
			Unit:        r.units[indicatorID],
			Points:      points[i],
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%w: tab %s column %s: %v", domain.ErrSchemaValidation, indicatorID, country, err)
		}
		series = append(series, s)
	}
	return series, nil
}
