package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reddypet/internal/pet"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menuBox lipgloss.Style
	prompt  lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#306230")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#306230")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	prompt: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#0F380F")),
}

var menuLabels = map[pet.Action]string{
	pet.ActionFeed:   "[F] Feed",
	pet.ActionPlay:   "[P] Play",
	pet.ActionClean:  "[C] Clean",
	pet.ActionSleep:  "[S] Sleep",
	pet.ActionRename: "[N] Name",
	pet.ActionReset:  "[R] Reset",
	menuQuit:         "[Q] Quit",
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	v := m.currentView()
	now := pet.TimeNow()
	card := RenderCard(v, CardOptions{
		Flash:   m.Flash.Active,
		Pulsing: func(key string) bool { return m.pulses.Active(key, now) },
	})

	sections := []string{
		gameStyles.title.Render(v.Name),
		card,
	}

	if m.Message != "" && now.Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	if m.Renaming {
		sections = append(sections,
			"",
			gameStyles.prompt.Render("Name your pet: "+m.NameInput+"█"),
			gameStyles.status.Render("enter to confirm • esc to cancel"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render("Use arrows to move • enter to select • q to quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderMenu() string {
	var items []string
	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		items = append(items, fmt.Sprintf("%s %s", cursor, menuLabels[choice]))
	}
	return gameStyles.menuBox.Render(strings.Join(items, "\n"))
}
