package screen

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	detail     lipgloss.Style
	faint      lipgloss.Style
	accent     lipgloss.Style
	selected   lipgloss.Style
	badge      lipgloss.Style
	section    lipgloss.Style
	payload    lipgloss.Style
	hint       lipgloss.Style
	errNotice  lipgloss.Style
	okNotice   lipgloss.Style
	fatal      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	spinner    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:      lipgloss.NewStyle().Faint(true),
		accent:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section:    lipgloss.NewStyle().MarginTop(1),
		payload:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		hint:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		errNotice:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		okNotice:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		fatal:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		spinner:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
