// Package tui provides a bubbletea picker for disambiguation questions,
// used when classify runs with --tui.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// KeyMap defines the picker's keyboard shortcuts.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "skip"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Skip}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Skip, k.Quit}}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D9BF8"))
	reasonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Model is the picker's bubbletea model.
type Model struct {
	question model.Question
	keys     KeyMap
	help     help.Model
	cursor   int
	choice   int
	skipped  bool
	done     bool
}

// NewModel creates a picker for one question.
func NewModel(q model.Question) Model {
	return Model{
		question: q,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		choice:   -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.question.Options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.choice = m.cursor
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Skip), key.Matches(keyMsg, m.keys.Quit):
		m.skipped = true
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.question.Text))
	if m.question.Reasoning != "" {
		b.WriteString("\n")
		b.WriteString(reasonStyle.Render(m.question.Reasoning))
	}
	b.WriteString("\n\n")

	for i, opt := range m.question.Options {
		cursor := "  "
		label := opt.Label
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, label))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return frameStyle.Render(b.String())
}

// Choice returns the selected option index, or -1 when skipped.
func (m Model) Choice() int {
	if m.skipped {
		return -1
	}
	return m.choice
}
