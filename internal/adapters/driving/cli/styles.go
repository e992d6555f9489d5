package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driving"
)

// summaryStyles holds the lipgloss styles for the run summary.
type summaryStyles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Skipped lipgloss.Style
	Failed  lipgloss.Style
	Muted   lipgloss.Style
}

func newSummaryStyles() summaryStyles {
	return summaryStyles{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Skipped: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// renderSummary formats the per-indicator outcome table for the terminal.
func renderSummary(result *driving.RunResult) string {
	s := newSummaryStyles()
	var b strings.Builder

	succeeded, skipped, failed := result.Counts()
	b.WriteString(s.Title.Render(fmt.Sprintf("Scenario %s: %d succeeded, %d skipped, %d failed",
		result.ScenarioID, succeeded, skipped, failed)))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("run " + result.RunID))
	b.WriteString("\n")

	width := 0
	for _, o := range result.Outcomes {
		if len(o.IndicatorID) > width {
			width = len(o.IndicatorID)
		}
	}
	for _, o := range result.Outcomes {
		id := fmt.Sprintf("%-*s", width, o.IndicatorID)
		switch o.Status {
		case domain.StatusSuccess:
			b.WriteString(fmt.Sprintf("  %s  %s  %d rows\n", id, s.Success.Render("success"), o.Rows))
		case domain.StatusSkipped:
			b.WriteString(fmt.Sprintf("  %s  %s\n", id, s.Skipped.Render("skipped")))
		case domain.StatusFailed:
			b.WriteString(fmt.Sprintf("  %s  %s   %s\n", id, s.Failed.Render("failed"), s.Muted.Render(o.Err)))
		}
	}

	if len(result.FigureErrors) > 0 {
		b.WriteString(s.Failed.Render(fmt.Sprintf("%d figure(s) failed to render", len(result.FigureErrors))))
		b.WriteString("\n")
		for id, msg := range result.FigureErrors {
			b.WriteString(s.Muted.Render(fmt.Sprintf("  %s: %s", id, msg)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
