package platform

// Cursor returns the descriptor for the Cursor editor.
func Cursor() Platform {
	return Platform{
		ID:          "cursor",
		Name:        "Cursor",
		DisplayName: "Cursor",
		Emoji:       "🖱️",
		Directory:   ".cursor",
		AgentsPath:  ".cursor/agents",
	}
}
