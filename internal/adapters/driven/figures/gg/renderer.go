// Package gg renders projection figures as PNG files using fogleman/gg.
// One image is produced per indicator and scenario: a line per country over
// the merged series, with the projected span marked.
package gg

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.FigureRenderer = (*Renderer)(nil)

// DefaultTheme returns the styling used when a scenario does not override it.
func DefaultTheme() driven.FigureTheme {
	return driven.FigureTheme{
		Width:      1000,
		Height:     600,
		Background: "#FFFFFF",
		Palette: []string{
			"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728",
			"#9467BD", "#8C564B", "#E377C2", "#7F7F7F",
		},
		GridColor: "#DDDDDD",
		TextColor: "#333333",
	}
}

// Renderer writes figures into a directory.
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer writing PNG files under dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render draws one figure for the indicator and writes it to
// <dir>/<indicator>_<scenario>.png.
func (r *Renderer) Render(_ context.Context, indicatorID, scenarioID string, series []domain.ProjectedSeries, theme driven.FigureTheme) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to render for %s", indicatorID)
	}
	if err := os.MkdirAll(r.dir, 0700); err != nil {
		return fmt.Errorf("create figures folder: %w", err)
	}

	minYear, maxYear, maxVal, projStart := bounds(series)
	if maxYear <= minYear {
		return fmt.Errorf("series for %s covers no year range", indicatorID)
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	const (
		marginLeft   = 80.0
		marginRight  = 160.0
		marginTop    = 50.0
		marginBottom = 50.0
	)
	dc := gg.NewContext(theme.Width, theme.Height)
	dc.SetHexColor(theme.Background)
	dc.Clear()

	plotW := float64(theme.Width) - marginLeft - marginRight
	plotH := float64(theme.Height) - marginTop - marginBottom
	x := func(year int) float64 {
		return marginLeft + plotW*float64(year-minYear)/float64(maxYear-minYear)
	}
	y := func(v float64) float64 {
		return marginTop + plotH*(1-v/maxVal)
	}

	// Grid and year labels every five years.
	dc.SetHexColor(theme.GridColor)
	dc.SetLineWidth(1)
	for year := minYear; year <= maxYear; year++ {
		if (year-minYear)%5 != 0 && year != maxYear {
			continue
		}
		dc.DrawLine(x(year), marginTop, x(year), marginTop+plotH)
		dc.Stroke()
	}
	dc.SetHexColor(theme.TextColor)
	for year := minYear; year <= maxYear; year++ {
		if (year-minYear)%5 != 0 && year != maxYear {
			continue
		}
		dc.DrawStringAnchored(fmt.Sprintf("%d", year), x(year), marginTop+plotH+16, 0.5, 0.5)
	}
	for i := 0; i <= 4; i++ {
		v := maxVal * float64(i) / 4
		dc.DrawStringAnchored(formatTick(v), marginLeft-8, y(v), 1, 0.5)
	}

	// Projection boundary marker.
	if projStart > minYear && projStart <= maxYear {
		dc.SetHexColor(theme.TextColor)
		dc.SetDash(4, 4)
		dc.DrawLine(x(projStart), marginTop, x(projStart), marginTop+plotH)
		dc.Stroke()
		dc.SetDash()
		dc.DrawStringAnchored("projected", x(projStart)+4, marginTop+10, 0, 0.5)
	}

	// One line per country.
	for i, s := range series {
		color := theme.Palette[i%len(theme.Palette)]
		dc.SetHexColor(color)
		dc.SetLineWidth(2)
		started := false
		for _, p := range s.Points {
			if p.Missing {
				continue
			}
			if !started {
				dc.MoveTo(x(p.Year), y(p.Value))
				started = true
			} else {
				dc.LineTo(x(p.Year), y(p.Value))
			}
		}
		dc.Stroke()

		// Legend entry.
		ly := marginTop + float64(i)*18
		dc.DrawRectangle(marginLeft+plotW+12, ly-4, 10, 10)
		dc.Fill()
		dc.SetHexColor(theme.TextColor)
		dc.DrawStringAnchored(s.Country, marginLeft+plotW+28, ly, 0, 0.5)
	}

	// Title and axes.
	dc.SetHexColor(theme.TextColor)
	dc.DrawStringAnchored(fmt.Sprintf("%s (%s)", indicatorID, scenarioID), float64(theme.Width)/2, marginTop/2, 0.5, 0.5)
	unit := series[0].Unit
	if unit != "" {
		dc.DrawStringAnchored(unit, marginLeft, marginTop-12, 0, 0.5)
	}

	path := filepath.Join(r.dir, fmt.Sprintf("%s_%s.png", indicatorID, scenarioID))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save figure %s: %w", path, err)
	}
	return nil
}

// bounds computes the year range, value ceiling, and first projected year
// across all series of an indicator.
func bounds(series []domain.ProjectedSeries) (minYear, maxYear int, maxVal float64, projStart int) {
	minYear = math.MaxInt32
	projStart = math.MaxInt32
	for _, s := range series {
		for _, p := range s.Points {
			if p.Year < minYear {
				minYear = p.Year
			}
			if p.Year > maxYear {
				maxYear = p.Year
			}
			if !p.Missing && p.Value > maxVal {
				maxVal = p.Value
			}
			if p.Provenance == domain.ProvenanceProjected && p.Year < projStart {
				projStart = p.Year
			}
		}
	}
	if projStart == math.MaxInt32 {
		projStart = 0
	}
	return minYear, maxYear, maxVal, projStart
}

func formatTick(v float64) string {
	if v >= 1000000 {
		return fmt.Sprintf("%.1fM", v/1000000)
	}
	if v >= 1000 {
		return fmt.Sprintf("%.0fk", v/1000)
	}
	return fmt.Sprintf("%.0f", v)
}
