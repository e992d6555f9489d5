package driven

import (
	"context"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

// FigureTheme is the styling configuration passed to every render call.
// An explicit value, never process-wide state.
type FigureTheme struct {
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int

	// Background is the canvas colour as a hex string, e.g. "#FFFFFF".
	Background string

	// Palette holds line colours cycled per country.
	Palette []string

	// GridColor is the colour of axis grid lines.
	GridColor string

	// TextColor is the colour of titles and labels.
	TextColor string
}

// FigureRenderer draws one chart per indicator from its projected series.
// Failures at this boundary are non-fatal to a projection run.
type FigureRenderer interface {
	// Render produces one image artifact keyed by indicator id and scenario
	// id from the indicator's per-country series.
	Render(ctx context.Context, indicatorID, scenarioID string, series []domain.ProjectedSeries, theme FigureTheme) error
}
