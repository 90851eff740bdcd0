package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/TextValidator/ui/styles"
)

// RenderAlert draws a blocking prompt centered in the terminal.
func RenderAlert(message string, width, height int) string {
	box := styles.AlertStyle(width).Render(message + "\n\n" + styles.HelpStyle().Render("press enter to continue"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
