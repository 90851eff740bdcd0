package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/TextValidator/ui/styles"
)

func RenderStatus(status string, loading bool, loadingDots int, width int) string {
	statusStyle := styles.StatusStyle(width)

	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}

	return statusStyle.Render(statusContent)
}

func RenderHelp(preview bool) string {
	mode := "raw"
	if preview {
		mode = "markdown"
	}
	return styles.HelpStyle().Render("ctrl+s validate • ctrl+y copy • ctrl+r view: " + mode + " • pgup/pgdn scroll • ctrl+c quit")
}

func RenderHeader(width int) string {
	title := styles.TitleStyle().Render("Text Validator")
	subtitle := styles.SubtitleStyle().Render("Clean, normalize and score your text in one step.")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, title, subtitle))
}
