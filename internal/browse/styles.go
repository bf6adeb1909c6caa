package browse

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5A3FB8")).
			Bold(true)

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	propNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#43BF6D"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	paneTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Bold(true)
)
