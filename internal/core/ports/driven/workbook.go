package driven

import (
	"context"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

// HistoryLoader reads historical data from the input workbook.
// Backed by an xlsx file with one tab per indicator.
type HistoryLoader interface {
	// Load returns the historical series for the expected indicators, one
	// series per country column, keyed by indicator id. It fails with
	// domain.ErrMissingIndicatorTab when a tab is absent and with
	// domain.ErrSchemaValidation when a tab does not match the expected
	// schema. Loading is read-only.
	Load(ctx context.Context, indicatorIDs []string) (map[string][]domain.HistoricalSeries, error)
}

// OutputStore persists the output document. Backed by a per-scenario xlsx
// workbook; the projection log lives in the same document.
type OutputStore interface {
	// Load reads the currently persisted document. A store with nothing
	// persisted yet returns an empty document, not an error.
	Load(ctx context.Context, scenarioID string) (*domain.OutputDocument, error)

	// Save durably replaces the persisted document with doc. The write is
	// whole-document and atomic: on failure the previously persisted
	// document must remain intact. Failures wrap domain.ErrPersistence.
	Save(ctx context.Context, doc *domain.OutputDocument) error
}
