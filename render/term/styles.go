package term

import "github.com/charmbracelet/lipgloss"

var (
	colorMissing = lipgloss.Color("#45475A") // unoccupied cells
	colorLabel   = lipgloss.Color("#A6ADC8") // axis labels

	missingStyle = lipgloss.NewStyle().Foreground(colorMissing)
	labelStyle   = lipgloss.NewStyle().Foreground(colorLabel)

	darkText  = lipgloss.Color("#1E1E2E")
	lightText = lipgloss.Color("#CDD6F4")
)
