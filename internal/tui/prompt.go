package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrNonInteractive is returned when a prompt is needed but no terminal
	// is attached.
	ErrNonInteractive = errors.New("interactive input required; pass the value with a flag instead")

	// ErrAborted is returned when the user cancels a prompt.
	ErrAborted = errors.New("aborted")
)

// Option is one choice in a select prompt.
type Option struct {
	Label   string
	Value   string
	Checked bool
}

// Prompter asks the user for input.
type Prompter interface {
	Select(title string, options []Option) (string, error)
	MultiSelect(title string, options []Option) ([]string, error)
	Confirm(title string, def bool) (bool, error)
	Input(title, placeholder string, validate func(string) error) (string, error)
}

// TeaPrompter runs each prompt as a small bubbletea program.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter returns a prompter reading keys from in and drawing to out.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

func (p *TeaPrompter) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

// Select asks for exactly one option and returns its value.
func (p *TeaPrompter) Select(title string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options to choose from")
	}
	final, err := p.run(newSelectModel(title, options, false))
	if err != nil {
		return "", err
	}
	m := final.(selectModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.options[m.cursor].Value, nil
}

// MultiSelect asks for any number of options and returns the checked values
// in option order.
func (p *TeaPrompter) MultiSelect(title string, options []Option) ([]string, error) {
	final, err := p.run(newSelectModel(title, options, true))
	if err != nil {
		return nil, err
	}
	m := final.(selectModel)
	if m.aborted {
		return nil, ErrAborted
	}
	return m.checkedValues(), nil
}

// Confirm asks a yes/no question.
func (p *TeaPrompter) Confirm(title string, def bool) (bool, error) {
	final, err := p.run(newConfirmModel(title, def))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.focusYes, nil
}

// Input asks for a line of text. validate, when set, must accept the value
// before the prompt completes.
func (p *TeaPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	final, err := p.run(newInputModel(title, placeholder, validate))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.value(), nil
}

// NonInteractive is used when stdin is not a terminal. Every prompt fails
// with ErrNonInteractive.
type NonInteractive struct{}

func (NonInteractive) Select(string, []Option) (string, error)        { return "", ErrNonInteractive }
func (NonInteractive) MultiSelect(string, []Option) ([]string, error) { return nil, ErrNonInteractive }
func (NonInteractive) Confirm(string, bool) (bool, error)             { return false, ErrNonInteractive }
func (NonInteractive) Input(string, string, func(string) error) (string, error) {
	return "", ErrNonInteractive
}
