package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("190")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("190")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	affixStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("236")).Padding(0, 1)
	activeAffix  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("190")).Padding(0, 1)
	radioChecked = "◉"
	radioEmpty   = "○"
)

func panelStyle(active bool) lipgloss.Style {
	color := lipgloss.Color("8")
	if active {
		color = lipgloss.Color("190")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}

func affix(text string, active bool) string {
	if active {
		return activeAffix.Render(text)
	}
	return affixStyle.Render(text)
}
