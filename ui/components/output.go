package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Rorical/TextValidator/internal/models"
	"github.com/Rorical/TextValidator/ui/styles"
)

const outputPlaceholder = "The result will appear here..."

// OutputContent is the text placed in the output viewport. The raw output
// is shown as-is, wrapped to width, unless preview is on and the output is
// a real result.
func OutputContent(view models.ViewState, preview bool, width int) string {
	if view.Output == "" {
		return styles.PlaceholderStyle().Render(outputPlaceholder)
	}
	if preview && !view.Loading && !view.Failed {
		if rendered, err := RenderMarkdown(view.Output, width); err == nil {
			return rendered
		}
	}
	return ansi.Wrap(view.Output, max(width, 1), "")
}

// RenderMarkdown renders text with glamour's dark style, wrapped to width.
func RenderMarkdown(text string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(text)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// RenderOutput frames the viewport with its label and the copy button.
func RenderOutput(viewport string, view models.ViewState, width int) string {
	label := styles.LabelStyle().Render("Normalized Text")
	button := styles.SmallButtonStyle(view.CanCopy()).Render(view.CopyLabel)

	gap := max(width-4-lipgloss.Width(label)-lipgloss.Width(button), 1)
	header := label + strings.Repeat(" ", gap) + button

	return lipgloss.JoinVertical(lipgloss.Left, header, styles.OutputPaneStyle(width, view.Failed).Render(viewport))
}
