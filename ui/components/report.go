package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/TextValidator/internal/models"
	"github.com/Rorical/TextValidator/ui/styles"
)

// FormatScore renders a score with the fixed "/100" suffix.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + "/100"
}

// RenderReport returns "" when there is no report to show.
func RenderReport(report *models.QualityReport, usage *models.Usage, width int) string {
	if report == nil {
		return ""
	}

	lines := []string{
		styles.LabelStyle().Render("Quality Report"),
		styles.ScoreStyle().Render(FormatScore(report.HumanQualityScore)),
		styles.ReasoningStyle().Render(report.Reasoning),
	}
	if usage != nil {
		lines = append(lines, styles.PlaceholderStyle().Render(fmt.Sprintf("Usage: %d/%d", usage.Count, usage.Limit)))
	}

	return styles.ReportStyle(width).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
