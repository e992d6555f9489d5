package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driving"
	"github.com/veldt-labs/prospekt-cli/internal/logger"
)

// Ensure ProjectionService implements the interface.
var _ driving.ProjectionRunner = (*ProjectionService)(nil)

// ProjectionService is the projection execution engine. It drives the
// per-indicator loop, isolating failures to the indicator that caused them,
// and owns the output document exclusively for the duration of a run.
type ProjectionService struct {
	loader   driven.HistoryLoader
	registry driven.CapabilityRegistry
	store    driven.OutputStore
	renderer driven.FigureRenderer
	theme    driven.FigureTheme

	// now is swappable for deterministic log timestamps in tests.
	now func() time.Time
}

// NewProjectionService creates a projection service. The renderer is
// optional - when nil, runs complete without producing figures.
func NewProjectionService(
	loader driven.HistoryLoader,
	registry driven.CapabilityRegistry,
	store driven.OutputStore,
	renderer driven.FigureRenderer,
	theme driven.FigureTheme,
) *ProjectionService {
	return &ProjectionService{
		loader:   loader,
		registry: registry,
		store:    store,
		renderer: renderer,
		theme:    theme,
		now:      time.Now,
	}
}

// Run executes one projection run.
func (s *ProjectionService) Run(ctx context.Context, cfg domain.RunConfig) (*driving.RunResult, error) {
	if err := cfg.Scenario.Validate(); err != nil {
		return nil, fmt.Errorf("validate scenario: %w", err)
	}

	// 1. Fix the indicator selection and order. Lexicographic order keeps
	// run output and log diffable across reruns.
	selected := cfg.IndicatorIDs
	if len(selected) == 0 {
		selected = cfg.Scenario.IndicatorIDs()
	}
	selected = append([]string(nil), selected...)
	sort.Strings(selected)

	// 2. Load historical data for the full selection. Input problems are
	// fatal: no safe partial processing without valid history.
	history, err := s.loader.Load(ctx, selected)
	if err != nil {
		return nil, fmt.Errorf("load input workbook: %w", err)
	}

	// 3. Load the previously persisted document. The run mutates this copy
	// in memory; the persisted file is untouched until step 5.
	doc, err := s.store.Load(ctx, cfg.Scenario.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("load output document: %w", err)
	}

	result := &driving.RunResult{
		RunID:        uuid.NewString(),
		ScenarioID:   cfg.Scenario.ScenarioID,
		FigureErrors: make(map[string]string),
	}
	logger.Info("Starting run %s for scenario %s (%d indicators)",
		result.RunID, cfg.Scenario.ScenarioID, len(selected))

	// 4. Per-indicator loop. Failures here never abort the run.
	for _, id := range selected {
		outcome := s.processOneIndicator(cfg, doc, history, id)
		doc.AppendLog(domain.LogEntry{
			RunID:       result.RunID,
			IndicatorID: id,
			ScenarioID:  cfg.Scenario.ScenarioID,
			Timestamp:   s.now(),
			Status:      outcome.Status,
			Rows:        outcome.Rows,
			Err:         outcome.Err,
		})
		result.Outcomes = append(result.Outcomes, outcome)
	}

	// 5. Persist the whole document. Fatal on failure: the previously
	// persisted output remains authoritative.
	if err := s.store.Save(ctx, doc); err != nil {
		logger.Error("Persist failed for run %s: %v", result.RunID, err)
		return nil, fmt.Errorf("persist output document: %w", err)
	}

	// 6. Render figures for successful indicators. Non-fatal boundary.
	if cfg.Figures && s.renderer != nil {
		s.renderFigures(ctx, doc, result)
	}

	succeeded, skipped, failed := result.Counts()
	logger.Info("Run %s complete: %d succeeded, %d skipped, %d failed",
		result.RunID, succeeded, skipped, failed)
	return result, nil
}

// processOneIndicator handles one indicator: skip check, capability
// resolution, per-country projection, coverage validation, document update.
func (s *ProjectionService) processOneIndicator(
	cfg domain.RunConfig,
	doc *domain.OutputDocument,
	history map[string][]domain.HistoricalSeries,
	indicatorID string,
) driving.IndicatorOutcome {
	// 1. SKIP when a projection already exists and overwrite is off.
	if !cfg.Overwrite && doc.HasSeries(indicatorID) {
		logger.Debug("Skipping %s: projection already present", indicatorID)
		return driving.IndicatorOutcome{IndicatorID: indicatorID, Status: domain.StatusSkipped}
	}

	// 2. RESOLVE the capability. Missing capabilities fail the indicator,
	// not the run.
	capability, err := s.registry.Resolve(cfg.Scenario.ScenarioID, indicatorID)
	if err != nil {
		logger.Warn("Indicator %s failed: %v", indicatorID, err)
		return driving.IndicatorOutcome{IndicatorID: indicatorID, Status: domain.StatusFailed, Err: err.Error()}
	}

	// 3. PROJECT each country series and validate coverage before accepting.
	series := history[indicatorID]
	if len(series) == 0 {
		err := fmt.Errorf("%w: no historical series for %s", domain.ErrComputation, indicatorID)
		logger.Warn("Indicator %s failed: %v", indicatorID, err)
		return driving.IndicatorOutcome{IndicatorID: indicatorID, Status: domain.StatusFailed, Err: err.Error()}
	}

	projected := make([]domain.ProjectedSeries, 0, len(series))
	rows := 0
	for _, h := range series {
		p, err := capability.Project(h, cfg.Scenario)
		if err == nil {
			err = p.ValidateCoverage(h.FirstYear(), cfg.Scenario.HorizonEndYear)
		}
		if err != nil {
			logger.Warn("Indicator %s failed for %s: %v", indicatorID, h.Country, err)
			return driving.IndicatorOutcome{
				IndicatorID: indicatorID,
				Status:      domain.StatusFailed,
				Err:         fmt.Sprintf("%s: %v", h.Country, err),
			}
		}
		projected = append(projected, p)
		rows += len(p.Points)
	}

	// 4. WRITE into the document, replacing any prior series.
	doc.PutSeries(indicatorID, projected)
	logger.Debug("Projected %s: %d rows across %d countries", indicatorID, rows, len(projected))
	return driving.IndicatorOutcome{IndicatorID: indicatorID, Status: domain.StatusSuccess, Rows: rows}
}

// renderFigures draws one figure per successful indicator. Rendering runs
// only after persistence succeeded; failures are recorded, never propagated.
func (s *ProjectionService) renderFigures(ctx context.Context, doc *domain.OutputDocument, result *driving.RunResult) {
	for _, outcome := range result.Outcomes {
		if outcome.Status != domain.StatusSuccess {
			continue
		}
		series, err := doc.Series(outcome.IndicatorID)
		if err != nil {
			result.FigureErrors[outcome.IndicatorID] = err.Error()
			continue
		}
		if err := s.renderer.Render(ctx, outcome.IndicatorID, result.ScenarioID, series, s.theme); err != nil {
			logger.Warn("Figure for %s failed: %v", outcome.IndicatorID, err)
			result.FigureErrors[outcome.IndicatorID] = err.Error()
		}
	}
}
