// Package domain defines the core business entities for Prospekt.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - HistoricalSeries: One indicator's observed values for one country
//   - ProjectedSeries: A merged historical+projected series with provenance
//   - ScenarioParameters: Horizon and per-indicator configuration for a run
//   - OutputDocument: Per-indicator series plus the append-only projection log
//   - LogEntry: One projection log record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
