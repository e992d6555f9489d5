package driving

import (
	"context"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

// ProjectionRunner executes projection runs for a scenario.
type ProjectionRunner interface {
	// Run processes the selected indicators of cfg in a fixed deterministic
	// order, persists the updated output document, and renders figures for
	// successful indicators. Per-indicator failures are isolated and
	// reported in the result; only input loading and persistence failures
	// return an error.
	Run(ctx context.Context, cfg domain.RunConfig) (*RunResult, error)
}

// IndicatorOutcome is the per-indicator result of one run.
type IndicatorOutcome struct {
	// IndicatorID names the indicator.
	IndicatorID string

	// Status is the outcome: success, skipped, or failed.
	Status domain.RunStatus

	// Rows is the number of series points written on success.
	Rows int

	// Err is the failure message when Status is failed.
	Err string
}

// RunResult summarises one projection run.
type RunResult struct {
	// RunID is the unique id minted for this run.
	RunID string

	// ScenarioID names the scenario that was run.
	ScenarioID string

	// Outcomes holds one entry per selected indicator, in processing order.
	Outcomes []IndicatorOutcome

	// FigureErrors holds non-fatal figure rendering failures, keyed by
	// indicator id.
	FigureErrors map[string]string
}

// Counts returns the number of successful, skipped, and failed indicators.
func (r *RunResult) Counts() (succeeded, skipped, failed int) {
	for _, o := range r.Outcomes {
		switch o.Status {
		case domain.StatusSuccess:
			succeeded++
		case domain.StatusSkipped:
			skipped++
		case domain.StatusFailed:
			failed++
		}
	}
	return succeeded, skipped, failed
}
