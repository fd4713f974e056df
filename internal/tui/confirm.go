package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is a yes/no prompt.
//
// Navigation: left/right/tab/shift+tab move focus between the Yes and No
// buttons. Enter answers with the focused button. y/n are shortcut
// accelerators; esc cancels.
type confirmModel struct {
	title    string
	focusYes bool // true = Yes focused, false = No focused.

	done    bool
	aborted bool
}

func newConfirmModel(title string, def bool) confirmModel {
	return confirmModel{title: title, focusYes: def}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Yes):
		m.focusYes = true
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.No):
		m.focusYes = false
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Enter):
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Left), key.Matches(keyMsg, keys.Right):
		m.focusYes = !m.focusYes
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	yes, no := buttonStyle.Render("Yes"), activeButtonStyle.Render("No")
	if m.focusYes {
		yes, no = activeButtonStyle.Render("Yes"), buttonStyle.Render("No")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no)

	return lipgloss.JoinVertical(lipgloss.Left,
		promptTitleStyle.Render(m.title),
		"",
		buttons,
		"",
		mutedStyle.Render("y/n to answer, esc to cancel"),
	) + "\n"
}
