package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	foreground lipgloss.Color
	muted      lipgloss.Color
	accent     lipgloss.Color
	errorFg    lipgloss.Color
	border     lipgloss.Color
}

var (
	lightPalette = palette{
		foreground: lipgloss.Color("#1F2937"),
		muted:      lipgloss.Color("#6B7280"),
		accent:     lipgloss.Color("#2563EB"),
		errorFg:    lipgloss.Color("#B91C1C"),
		border:     lipgloss.Color("#D1D5DB"),
	}
	darkPalette = palette{
		foreground: lipgloss.Color("#F3F4F6"),
		muted:      lipgloss.Color("#9CA3AF"),
		accent:     lipgloss.Color("#60A5FA"),
		errorFg:    lipgloss.Color("#FCA5A5"),
		border:     lipgloss.Color("#4B5563"),
	}
)

type styles struct {
	title   lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	temp    lipgloss.Style
	banner  lipgloss.Style
	card    lipgloss.Style
	spinner lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		text:    lipgloss.NewStyle().Foreground(p.foreground),
		muted:   lipgloss.NewStyle().Foreground(p.muted),
		temp:    lipgloss.NewStyle().Bold(true).Foreground(p.foreground),
		banner:  lipgloss.NewStyle().Foreground(p.errorFg).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(p.errorFg).PaddingLeft(1),
		card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		spinner: lipgloss.NewStyle().Foreground(p.accent),
	}
}
