// Package tui is the keyboard slider panel, the terminal stand-in for
// the old slider window. It drives the running instance over IPC and
// never touches the controller directly.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/dankdim/internal/ipc"
	"github.com/AvengeMedia/dankdim/internal/levels"
	"github.com/AvengeMedia/dankdim/internal/profiles"
)

const refreshEvery = 2 * time.Second

type focusArea int

const (
	focusDim focusArea = iota
	focusWarm
	focusPresets
)

type stateMsg ipc.State

type errMsg struct{ err error }

type tickMsg time.Time

// Model is the panel's bubbletea model.
type Model struct {
	client *ipc.Client
	state  ipc.State

	focus     focusArea
	presetIdx int
	presets   []preset

	dimBar  progress.Model
	warmBar progress.Model
	help    help.Model
	keys    KeyMap
	styles  Styles

	err error
}

type preset struct {
	id    string
	label string
}

// NewModel creates the panel over a connected client.
func NewModel(client *ipc.Client) Model {
	theme := TealTheme()

	presets := []preset{{id: profiles.Pause, label: "Pause"}}
	for _, p := range profiles.Table {
		presets = append(presets, preset{id: p.ID, label: p.Label})
	}

	bar := func() progress.Model {
		b := progress.New(progress.WithSolidFill(theme.Primary))
		b.Width = 40
		b.ShowPercentage = false
		return b
	}

	return Model{
		client:  client,
		presets: presets,
		dimBar:  bar(),
		warmBar: bar(),
		help:    help.New(),
		keys:    defaultKeys(),
		styles:  NewStyles(theme),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh, tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) refresh() tea.Msg {
	s, err := m.client.GetState()
	if err != nil {
		return errMsg{err}
	}
	return stateMsg(s)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = ipc.State(msg)
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.refresh, tick())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % 3
			return m, nil

		case key.Matches(msg, m.keys.Decrease):
			return m, m.adjust(-1)

		case key.Matches(msg, m.keys.Increase):
			return m, m.adjust(+1)

		case key.Matches(msg, m.keys.Apply):
			if m.focus == focusPresets {
				id := m.presets[m.presetIdx].id
				return m, m.do(func() error { return m.client.ApplyProfile(id) })
			}
			return m, nil

		case key.Matches(msg, m.keys.Break):
			enabled := !m.state.BreakEnabled
			return m, m.do(func() error { return m.client.ToggleBreak(enabled) })
		}
	}

	return m, nil
}

func (m *Model) adjust(delta int) tea.Cmd {
	switch m.focus {
	case focusDim:
		level := int(m.state.Dim) + delta
		return m.do(func() error { return m.client.SetDim(level, false) })
	case focusWarm:
		level := int(m.state.Warm) + delta
		return m.do(func() error { return m.client.SetWarm(level, false) })
	case focusPresets:
		m.presetIdx += delta
		if m.presetIdx < 0 {
			m.presetIdx = len(m.presets) - 1
		}
		if m.presetIdx >= len(m.presets) {
			m.presetIdx = 0
		}
	}
	return nil
}

// do runs a client call off the update loop, then refreshes.
func (m Model) do(fn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(); err != nil {
			return errMsg{err}
		}
		return m.refresh()
	}
}

func (m Model) View() string {
	s := m.styles

	brightness := 100 - m.state.Dim.Percent()
	kelvin := m.state.Warm.Kelvin()
	warmth := float64(levels.NeutralKelvin-kelvin) / float64(levels.NeutralKelvin-levels.MinKelvin)

	var b []string
	b = append(b, s.Title.Render("DankDim Control"))

	b = append(b, m.section(focusDim, "Brightness", fmt.Sprintf("%d%%", brightness)))
	b = append(b, m.dimBar.ViewAs(float64(brightness)/100))
	b = append(b, "")

	b = append(b, m.section(focusWarm, "Color Temperature", fmt.Sprintf("%dK", kelvin)))
	b = append(b, m.warmBar.ViewAs(warmth))
	b = append(b, "")

	b = append(b, m.section(focusPresets, "Presets", m.state.Match))
	b = append(b, m.presetRow())
	b = append(b, "")

	breakState := "off"
	if m.state.BreakEnabled {
		breakState = "every 20 min"
	}
	b = append(b, s.Subtle.Render("Break reminder: ")+s.Value.Render(breakState))

	if m.err != nil {
		b = append(b, "", s.Error.Render(m.err.Error()))
	}

	b = append(b, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func (m Model) section(area focusArea, title, value string) string {
	s := m.styles
	t := s.SectionTitle
	if m.focus == area {
		t = s.Focused
	}
	return t.Render(title) + "  " + s.Value.Render(value)
}

func (m Model) presetRow() string {
	var row []string
	for i, p := range m.presets {
		style := m.styles.Preset
		switch {
		case m.focus == focusPresets && i == m.presetIdx:
			style = m.styles.PresetCursor
		case p.id == m.state.Match:
			style = m.styles.PresetActive
		}
		row = append(row, style.Render(p.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}
