package domain

import "sort"

// OutputDocument is the single mutable resource of a run: one set of
// per-country projected series per indicator, plus the cumulative projection
// log. It is scenario-scoped and exclusively owned by the execution engine
// for the duration of a run.
type OutputDocument struct {
	// ScenarioID names the scenario this document belongs to.
	ScenarioID string

	series map[string][]ProjectedSeries
	log    []LogEntry
}

// NewOutputDocument creates an empty document for a scenario.
func NewOutputDocument(scenarioID string) *OutputDocument {
	return &OutputDocument{
		ScenarioID: scenarioID,
		series:     make(map[string][]ProjectedSeries),
	}
}

// HasSeries reports whether the document already holds a projection for the
// indicator.
func (d *OutputDocument) HasSeries(indicatorID string) bool {
	_, ok := d.series[indicatorID]
	return ok
}

// Series returns the projected series for an indicator, one per country,
// or ErrNotFound.
func (d *OutputDocument) Series(indicatorID string) ([]ProjectedSeries, error) {
	s, ok := d.series[indicatorID]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// PutSeries replaces the indicator's projection. Series are stored sorted by
// country so persisted output is stable across reruns.
func (d *OutputDocument) PutSeries(indicatorID string, series []ProjectedSeries) {
	sorted := make([]ProjectedSeries, len(series))
	copy(sorted, series)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Country < sorted[j].Country })
	d.series[indicatorID] = sorted
}

// IndicatorIDs returns the ids with stored series, sorted.
func (d *OutputDocument) IndicatorIDs() []string {
	ids := make([]string, 0, len(d.series))
	for id := range d.series {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AppendLog appends one projection log entry. The log is append-only; prior
// entries are never rewritten.
func (d *OutputDocument) AppendLog(entry LogEntry) {
	d.log = append(d.log, entry)
}

// Log returns the full projection log in append order.
func (d *OutputDocument) Log() []LogEntry {
	out := make([]LogEntry, len(d.log))
	copy(out, d.log)
	return out
}
