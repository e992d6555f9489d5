package domain

import "time"

// RunStatus is the outcome of one indicator within one run.
type RunStatus string

const (
	// StatusSuccess means a projection was computed and written.
	StatusSuccess RunStatus = "success"

	// StatusSkipped means a prior projection existed and overwrite was off.
	StatusSkipped RunStatus = "skipped"

	// StatusFailed means resolution or computation failed for the indicator.
	StatusFailed RunStatus = "failed"
)

// LogEntry is one append-only projection log record. One entry is written
// per selected indicator per run, in processing order.
type LogEntry struct {
	// RunID groups the entries of a single run.
	RunID string

	// IndicatorID names the processed indicator.
	IndicatorID string

	// ScenarioID names the scenario of the run.
	ScenarioID string

	// Timestamp is when the indicator was processed.
	Timestamp time.Time

	// Status is the indicator outcome.
	Status RunStatus

	// Rows is the number of series points written. Zero unless Status is
	// StatusSuccess.
	Rows int

	// Err holds the failure message when Status is StatusFailed.
	Err string
}
