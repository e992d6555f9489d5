// Package memory provides in-memory driven adapters for tests and dry runs.
package memory

import (
	"context"
	"sync"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure OutputStore implements the interface.
var _ driven.OutputStore = (*OutputStore)(nil)

// OutputStore is an in-memory implementation of driven.OutputStore.
// Save replaces the whole snapshot, mirroring the workbook store's
// whole-document semantics.
type OutputStore struct {
	mu   sync.RWMutex
	docs map[string]*domain.OutputDocument

	// FailSave makes the next Save fail, for persistence-failure tests.
	FailSave error
}

// NewOutputStore creates an empty in-memory output store.
func NewOutputStore() *OutputStore {
	return &OutputStore{docs: make(map[string]*domain.OutputDocument)}
}

// Load returns a copy of the stored document, or an empty document when
// nothing was saved for the scenario yet.
func (s *OutputStore) Load(_ context.Context, scenarioID string) (*domain.OutputDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[scenarioID]
	if !ok {
		return domain.NewOutputDocument(scenarioID), nil
	}
	return copyDocument(doc), nil
}

// Save stores a snapshot of doc, replacing the previous one. When FailSave
// is set the stored snapshot is left untouched, mirroring the atomic
// replace guarantee of the workbook store.
func (s *OutputStore) Save(_ context.Context, doc *domain.OutputDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	s.docs[doc.ScenarioID] = copyDocument(doc)
	return nil
}

func copyDocument(doc *domain.OutputDocument) *domain.OutputDocument {
	out := domain.NewOutputDocument(doc.ScenarioID)
	for _, id := range doc.IndicatorIDs() {
		series, err := doc.Series(id)
		if err != nil {
			continue
		}
		out.PutSeries(id, series)
	}
	for _, e := range doc.Log() {
		out.AppendLog(e)
	}
	return out
}
