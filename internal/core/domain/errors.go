package domain

import "errors"

// Domain errors represent projection business failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Input workbook errors. Both are fatal to a run: without valid
	// historical data there is no safe partial processing.

	// ErrMissingIndicatorTab indicates the input workbook has no tab for an
	// expected indicator.
	ErrMissingIndicatorTab = errors.New("missing indicator tab")

	// ErrSchemaValidation indicates an input tab does not match the expected
	// schema (year column, country columns, numeric cells).
	ErrSchemaValidation = errors.New("schema validation failed")

	// Per-indicator errors. Recovered inside the run loop: the indicator is
	// logged as failed and the run continues.

	// ErrNotImplemented indicates an indicator has no capability registered
	// for the requested scenario.
	ErrNotImplemented = errors.New("indicator not implemented")

	// ErrComputation indicates a capability could not produce a valid
	// projection (insufficient data, non-finite extrapolation, or a series
	// that fails year-coverage validation).
	ErrComputation = errors.New("projection computation failed")

	// ErrPersistence indicates the output document could not be replaced.
	// Fatal to the run; the previously persisted output stays authoritative.
	ErrPersistence = errors.New("output persistence failed")
)
