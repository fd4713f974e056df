package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const defaultWrap = 80

// RenderMarkdown renders an agent body for the terminal. Plain mode uses
// glamour's no-tty style so no escape sequences reach the output.
func RenderMarkdown(body string, width int, plain bool) (string, error) {
	if width <= 0 {
		width = defaultWrap
	}
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(body)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
