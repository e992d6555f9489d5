// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - HistoryLoader: Reads historical series from the input workbook
//   - OutputStore: Loads and atomically replaces the output document
//   - Capability: One indicator projection method
//   - CapabilityRegistry: Resolves capabilities per indicator and scenario
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - FigureRenderer: Renders one chart per projected indicator. Without it,
//     runs complete but produce no figures.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or capability package
package driven
