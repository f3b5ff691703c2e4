package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reddypet/internal/pet"
)

// Menu entries beyond the pet actions
const menuQuit pet.Action = "quit"

var menuChoices = append(append([]pet.Action{}, pet.Actions...), menuQuit)

// Model is the interactive pet screen.
type Model struct {
	ctx      context.Context
	ctrl     *pet.Controller
	clicker  *Clicker
	interval time.Duration
	pulses   *Pulses

	Choice         int
	Quitting       bool
	Renaming       bool
	NameInput      string
	Blink          bool
	Flash          Flash
	Message        string
	MessageExpires time.Time
}

type tickMsg time.Time
type blinkMsg struct{}
type unblinkMsg struct{}
type flashDoneMsg struct {
	started time.Time
}

// NewModel creates the screen around a loaded controller. interval is the
// decay tick period.
func NewModel(ctx context.Context, ctrl *pet.Controller, clicker *Clicker, interval time.Duration) Model {
	m := Model{
		ctx:      ctx,
		ctrl:     ctrl,
		clicker:  clicker,
		interval: interval,
		pulses:   NewPulses(),
	}
	m.pulses.Observe(m.currentView().Stats, pet.TimeNow())
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), blinkTick())
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func blinkTick() tea.Cmd {
	return tea.Tick(BlinkInterval, func(time.Time) tea.Msg {
		return blinkMsg{}
	})
}

func unblinkTick() tea.Cmd {
	return tea.Tick(BlinkDuration, func(time.Time) tea.Msg {
		return unblinkMsg{}
	})
}

func flashTick(start time.Time) tea.Cmd {
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Renaming {
			return m.updateRename(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < len(menuChoices)-1 {
				m.Choice++
			}
		case "enter", " ":
			if menuChoices[m.Choice] == menuQuit {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.choose(menuChoices[m.Choice])
		case "f":
			return m.choose(pet.ActionFeed)
		case "p":
			return m.choose(pet.ActionPlay)
		case "c":
			return m.choose(pet.ActionClean)
		case "s":
			return m.choose(pet.ActionSleep)
		case "n":
			return m.choose(pet.ActionRename)
		case "r":
			return m.choose(pet.ActionReset)
		}

	case tickMsg:
		m.ctrl.Tick(m.ctx)
		m.observe()
		return m, tick(m.interval)

	case blinkMsg:
		m.Blink = true
		return m, tea.Batch(unblinkTick(), blinkTick())

	case unblinkMsg:
		m.Blink = false
		return m, nil

	case flashDoneMsg:
		// Drop flashes superseded by a newer action
		if m.Flash.Active && m.Flash.StartTime.Equal(msg.started) {
			m.Flash = Flash{}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.Quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.Renaming = false
		m.NameInput = ""
		return m, nil
	case tea.KeyEnter:
		name := m.NameInput
		m.Renaming = false
		m.NameInput = ""
		before := m.ctrl.Pet().Name
		m.ctrl.Rename(m.ctx, name)
		if m.ctrl.Pet().Name == before {
			return m, nil
		}
		m.setMessage("✏️ Renamed to " + m.ctrl.Pet().Name)
		return m, m.startFlash()
	case tea.KeyBackspace:
		if r := []rune(m.NameInput); len(r) > 0 {
			m.NameInput = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.NameInput += " "
	case tea.KeyRunes:
		m.NameInput += string(msg.Runes)
	}
	return m, nil
}

// choose plays the click and applies an action.
func (m Model) choose(action pet.Action) (tea.Model, tea.Cmd) {
	m.clicker.Click()

	switch action {
	case pet.ActionRename:
		m.Renaming = true
		m.NameInput = m.ctrl.Pet().Name
		return m, nil
	case pet.ActionFeed:
		m.ctrl.Feed(m.ctx)
		m.setMessage("🍖 Yum!")
	case pet.ActionPlay:
		m.ctrl.Play(m.ctx)
		m.setMessage("🎾 Wheee!")
	case pet.ActionClean:
		m.ctrl.Clean(m.ctx)
		m.setMessage("🫧 Squeaky clean!")
	case pet.ActionSleep:
		m.ctrl.Sleep(m.ctx)
		m.setMessage("😴 Zzz...")
	case pet.ActionReset:
		m.ctrl.Reset(m.ctx)
		m.setMessage("🥚 A new egg hatched!")
	}
	m.observe()
	return m, m.startFlash()
}

func (m *Model) startFlash() tea.Cmd {
	m.Flash = Flash{Active: true, StartTime: pet.TimeNow()}
	return flashTick(m.Flash.StartTime)
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = pet.TimeNow().Add(3 * time.Second)
}

func (m Model) observe() {
	m.pulses.Observe(m.currentView().Stats, pet.TimeNow())
}

func (m Model) currentView() View {
	return BuildView(m.ctrl.Projection(), m.Blink)
}

// Run starts the interactive screen and blocks until the user quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
