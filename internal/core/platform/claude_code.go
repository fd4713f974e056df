package platform

// ClaudeCode returns the descriptor for Claude Code.
func ClaudeCode() Platform {
	return Platform{
		ID:          "claude",
		Name:        "Claude Code",
		DisplayName: "Claude Code",
		Emoji:       "🤖",
		Directory:   ".claude",
		AgentsPath:  ".claude/agents",
	}
}
