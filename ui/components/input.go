package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/TextValidator/internal/models"
	"github.com/Rorical/TextValidator/ui/styles"
)

func RenderInput(editor string, width int) string {
	label := styles.LabelStyle().Render("Paste your text here")
	return lipgloss.JoinVertical(lipgloss.Left, label, styles.PaneStyle(width).Render(editor))
}

// RenderTrigger draws the validate button, disabled while loading.
func RenderTrigger(loading bool, width int) string {
	label := models.ValidateLabel
	if loading {
		label = models.ValidatingLabel
	}
	button := styles.ButtonStyle(!loading).Render(label)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, button)
}
