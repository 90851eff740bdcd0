package styles

import "github.com/charmbracelet/lipgloss"

const (
	accent   = lipgloss.Color("39")
	muted    = lipgloss.Color("241")
	disabled = lipgloss.Color("238")
	success  = lipgloss.Color("78")
	danger   = lipgloss.Color("203")
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Padding(0, 1)
}

func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")).
		Bold(true)
}

func PaneStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func OutputPaneStyle(width int, failed bool) lipgloss.Style {
	style := PaneStyle(width)
	if failed {
		style = style.BorderForeground(danger)
	}
	return style
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)
}

func ButtonStyle(enabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true)
	if enabled {
		return style.
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("27"))
	}
	return style.
		Foreground(muted).
		Background(disabled)
}

func SmallButtonStyle(enabled bool) lipgloss.Style {
	return ButtonStyle(enabled).Padding(0, 1).Bold(false)
}

func ReportStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 2).
		Width(max(width-4, 10))
}

func ScoreStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(success).
		Bold(true)
}

func ReasoningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Italic(true)
}

func AlertStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(danger).
		Foreground(lipgloss.Color("255")).
		Padding(1, 3).
		Align(lipgloss.Center).
		Width(min(max(width-8, 20), 60))
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Padding(0, 1)
}
