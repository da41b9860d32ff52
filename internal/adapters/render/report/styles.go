package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	rule    lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	timing  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	path    lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		timing:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
