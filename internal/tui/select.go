package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a vertical list prompt. In multi mode each row carries a
// checkbox toggled with space; otherwise enter picks the row under the
// cursor.
type selectModel struct {
	title   string
	options []Option
	cursor  int
	multi   bool
	help    help.Model

	done    bool
	aborted bool
}

func newSelectModel(title string, options []Option, multi bool) selectModel {
	opts := make([]Option, len(options))
	copy(opts, options)
	return selectModel{title: title, options: opts, multi: multi, help: help.New()}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}

	case m.multi && key.Matches(keyMsg, keys.Toggle):
		if len(m.options) > 0 {
			m.options[m.cursor].Checked = !m.options[m.cursor].Checked
		}

	case m.multi && key.Matches(keyMsg, keys.ToggleAll):
		all := m.allChecked()
		for i := range m.options {
			m.options[i].Checked = !all
		}

	case key.Matches(keyMsg, keys.Enter):
		if !m.multi && len(m.options) == 0 {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) allChecked() bool {
	for _, o := range m.options {
		if !o.Checked {
			return false
		}
	}
	return true
}

func (m selectModel) checkedValues() []string {
	values := []string{}
	for _, o := range m.options {
		if o.Checked {
			values = append(values, o.Value)
		}
	}
	return values
}

func (m selectModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptTitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, o := range m.options {
		prefix := "  "
		style := normalItemStyle
		if i == m.cursor {
			prefix = "> "
			style = selectedItemStyle
		}
		box := ""
		if m.multi {
			box = "[ ] "
			if o.Checked {
				box = checkedStyle.Render("[x]") + " "
			}
		}
		b.WriteString(prefix + box + style.Render(o.Label) + "\n")
	}

	b.WriteString("\n")
	if m.multi {
		b.WriteString(m.help.View(multiSelectHelpKeyMap{}))
	} else {
		b.WriteString(m.help.View(selectHelpKeyMap{}))
	}
	b.WriteString("\n")
	return b.String()
}
