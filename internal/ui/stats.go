package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

var cardStyles = struct {
	badge   lipgloss.Style
	face    lipgloss.Style
	label   lipgloss.Style
	meta    lipgloss.Style
	screen  lipgloss.Style
	flash   lipgloss.Style
	pulse   lipgloss.Style
	bars    map[string]lipgloss.Style
	trackBg lipgloss.Style
}{
	badge: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(lipgloss.Color("#9BBC0F")).
		Padding(0, 1),

	face: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0F380F")).
		Padding(0, 2, 0, 0),

	label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#306230")).
		Width(8),

	meta: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#306230")).
		Italic(true),

	screen: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#8BAC0F")).
		Background(lipgloss.Color("#C4CFA1")).
		Padding(1, 2),

	flash: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#E8F5C8")).
		Padding(1, 2),

	pulse: lipgloss.NewStyle().Bold(true),

	bars: map[string]lipgloss.Style{
		SeverityOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("#306230")),
		SeverityWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("#C8A400")),
		SeverityBad:  lipgloss.NewStyle().Foreground(lipgloss.Color("#C0392B")),
	},

	trackBg: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BAC0F")),
}

// Card options for transient effects.
type CardOptions struct {
	Flash   bool
	Pulsing func(key string) bool
}

// RenderCard draws the pet screen: header badges, face, bars and meta line.
func RenderCard(v View, opts CardOptions) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyles.badge.Render("reddy-pet"),
		" ",
		cardStyles.badge.Render(fmt.Sprintf("Stage %d", v.Stage)),
	)

	var rows []string
	for _, s := range v.Stats {
		pulsing := opts.Pulsing != nil && opts.Pulsing(s.Key)
		rows = append(rows, cardStyles.label.Render(s.Label)+renderBar(s, pulsing))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyles.face.Render(v.AsciiArt),
		strings.Join(rows, "\n"),
	)

	meta := cardStyles.meta.Render(fmt.Sprintf("★ Stage %d • EGG-%s • Day %d", v.Stage, v.EggID, v.Day))

	screen := cardStyles.screen
	if opts.Flash {
		screen = cardStyles.flash
	}
	return screen.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", meta))
}

func renderBar(s Stat, pulsing bool) string {
	filled := s.Percent * barWidth / 100
	style := cardStyles.bars[s.Severity]
	if pulsing {
		style = style.Inherit(cardStyles.pulse)
	}
	bar := style.Render(strings.Repeat("█", filled)) +
		cardStyles.trackBg.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("[%s] %3d%%", bar, s.Percent)
}
