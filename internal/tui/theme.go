package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#A78BFA") // Light purple
	colorSuccess   = lipgloss.Color("#10B981") // Green
	colorDanger    = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorInfo      = lipgloss.Color("#3B82F6") // Blue
	colorText      = lipgloss.Color("#F3F4F6")
	colorAccent    = lipgloss.Color("#22D3EE") // Cyan
)

// Shared styles used by the printer and the prompts.
var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorDanger)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	textStyle    = lipgloss.NewStyle().Foreground(colorText)
	accentStyle  = lipgloss.NewStyle().Foreground(colorAccent)

	// Section header: "Installed Agents:"
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	// Prompt title line.
	promptTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	// Cursor row in a select prompt.
	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Confirm buttons.
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(colorMuted).
			Padding(0, 2)

	activeButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF7DB")).
				Background(colorPrimary).
				Padding(0, 2).
				Bold(true)
)

// agentColors maps the color names agents declare in their metadata to
// terminal colors.
var agentColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#EF4444"),
	"blue":   lipgloss.Color("#3B82F6"),
	"green":  lipgloss.Color("#10B981"),
	"yellow": lipgloss.Color("#EAB308"),
	"purple": lipgloss.Color("#A855F7"),
	"cyan":   lipgloss.Color("#22D3EE"),
	"orange": lipgloss.Color("#FFA500"),
	"pink":   lipgloss.Color("#FFC0CB"),
	"gray":   lipgloss.Color("#6B7280"),
}

// AgentStyle returns the style for an agent's declared color, plain text for
// unknown colors.
func AgentStyle(color string) lipgloss.Style {
	c, ok := agentColors[color]
	if !ok {
		return textStyle
	}
	return lipgloss.NewStyle().Foreground(c)
}
