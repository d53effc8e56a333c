package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C678DD")).
			Bold(true)

	gallowsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ABB2BF")).
			PaddingLeft(2)

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#61AFEF")).
			Bold(true).
			Padding(1, 0)

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E06C75"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98C379"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5C6370"))
)
