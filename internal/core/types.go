// Package core provides the business logic for claude-agents: name
// sanitization, path resolution, structural validation and template
// installation. It has zero UI dependencies and never writes to the
// terminal.
package core

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Config represents the configuration stored at ~/.claude-agents/config.json.
type Config struct {
	Settings Settings `json:"settings"`
}

// Settings holds user preferences. Empty values mean "ask or use the
// built-in default".
type Settings struct {
	DefaultPlatform string `json:"defaultPlatform,omitempty"`
	DefaultScope    string `json:"defaultScope,omitempty"`
	DefaultModel    string `json:"defaultModel,omitempty"`
	DefaultColor    string `json:"defaultColor,omitempty"`
}

// Metadata choices offered for custom agents.
var (
	Models = []string{"sonnet", "opus", "haiku"}
	Colors = []string{"red", "blue", "green", "yellow", "purple", "cyan", "orange", "pink", "gray"}
)

// Defaults substituted into the custom agent template.
const (
	DefaultDescription = "Custom agent"
	DefaultModel       = "sonnet"
	DefaultColor       = "gray"

	MinDescriptionLen = 10
	MaxDescriptionLen = 500
)

// AgentMetadata is what a user supplies when creating a custom agent.
type AgentMetadata struct {
	Description string
	Model       string
	Color       string
}

// withDefaults fills empty fields with the template defaults.
func (m AgentMetadata) withDefaults() AgentMetadata {
	if m.Description == "" {
		m.Description = DefaultDescription
	}
	if m.Model == "" {
		m.Model = DefaultModel
	}
	if m.Color == "" {
		m.Color = DefaultColor
	}
	return m
}

// Validate checks user-supplied metadata. Empty model and color are allowed
// and fall back to the defaults.
func (m AgentMetadata) Validate() error {
	if err := ValidateDescription(m.Description); err != nil {
		return err
	}
	if m.Model != "" && !slices.Contains(Models, m.Model) {
		return fmt.Errorf("unknown model %q; available: %s", m.Model, strings.Join(Models, ", "))
	}
	if m.Color != "" && !slices.Contains(Colors, m.Color) {
		return fmt.Errorf("unknown color %q; available: %s", m.Color, strings.Join(Colors, ", "))
	}
	return nil
}

// ValidateDescription enforces the description length bounds.
func ValidateDescription(s string) error {
	n := utf8.RuneCountInString(s)
	if n > MaxDescriptionLen {
		return fmt.Errorf("description must be less than %d characters", MaxDescriptionLen)
	}
	if n < MinDescriptionLen {
		return fmt.Errorf("description must be at least %d characters", MinDescriptionLen)
	}
	return nil
}

// AgentResult reports the outcome for one agent in a batch operation.
type AgentResult struct {
	Name string
	Path string // written file, set on success
	Err  error
}

// Failed returns the results that carry an error.
func Failed(results []AgentResult) []AgentResult {
	var failed []AgentResult
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
