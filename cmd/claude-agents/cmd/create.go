package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/tui"
)

var createCmd = &cobra.Command{
	Use:   "create <agent-name>",
	Short: "Create a custom agent from the template",
	Long: `Create a new agent file from the custom agent template.

The name is upper-cased and runs of whitespace become hyphens, so
"code reviewer" is written as CODE-REVIEWER.md. Names may only contain
letters, digits, hyphens and underscores.

Metadata comes from --description, --model and --color. Any of them left
unset is asked for when running in a terminal, otherwise the defaults
(the defaultModel and defaultColor settings, then sonnet and gray) apply.

Examples:
  claude-agents create code reviewer
  claude-agents create API-DESIGNER -g --model opus --color blue \
    --description "Designs consistent REST APIs"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		raw := strings.Join(args, " ")
		if strings.TrimSpace(raw) == "" {
			d.printer.Info("Usage: claude-agents create <agent-name>")
			return fmt.Errorf("agent name is required")
		}
		name, err := core.SanitizeAgentName(core.NormalizeAgentName(raw))
		if err != nil {
			return err
		}

		d.printer.Header("🎨 Create Custom Agent")
		d.printer.Info("Creating agent: %s", name)
		d.printer.Newline()

		p, err := resolvePlatform(cmd, d, true)
		if err != nil {
			return promptErr(d, err)
		}
		scope, err := resolveScope(cmd, d, p, true)
		if err != nil {
			return promptErr(d, err)
		}

		exists, err := d.resolver.AgentExists(scope, p.ID, name)
		if err != nil {
			return err
		}
		if exists && !force {
			d.printer.Warn("Agent %s already exists", name)
			ok, err := confirm(d, fmt.Sprintf("Overwrite %s?", name), false)
			if errors.Is(err, tui.ErrNonInteractive) {
				return fmt.Errorf("agent %s already exists; rerun with --force to overwrite: %w", name, err)
			} else if err != nil {
				return promptErr(d, err)
			}
			if !ok {
				d.printer.Info("Operation cancelled.")
				return nil
			}
		}

		meta, err := customAgentMetadata(cmd, d, name)
		if err != nil {
			return promptErr(d, err)
		}
		if err := meta.Validate(); err != nil {
			return err
		}

		path, err := d.installer.CreateCustomAgent(name, scope, p.ID, meta)
		if err != nil {
			return err
		}

		d.printer.Newline()
		d.printer.Success("Custom Agent Created!")
		d.printer.Newline()
		d.printer.Info("📁 Agent name: %s", name)
		d.printer.Info("📂 Location: %s", path)
		d.printer.Info("📝 Description: %s", meta.Description)
		d.printer.Info("🤖 Model: %s", meta.Model)
		d.printer.Info("🎨 Color: %s", meta.Color)
		d.printer.Newline()

		d.printer.Header("📚 Next Steps:")
		d.printer.Item("Edit %s.md to customize agent behavior", name)
		d.printer.Item("Define Purpose, Duty, Instructions, and Limits")
		d.printer.Item("Add specific capabilities and knowledge requirements")
		d.printer.Item("Define integration with other agents")
		d.printer.Item("Test your agent with %s", p.DisplayName)
		d.printer.Newline()
		return nil
	},
}

// customAgentMetadata collects description, model and color from flags,
// prompting for the ones not given when a terminal is attached.
func customAgentMetadata(cmd *cobra.Command, d *deps, name string) (core.AgentMetadata, error) {
	meta := core.AgentMetadata{
		Description: core.DefaultDescription,
		Model:       firstNonEmpty(d.settings.DefaultModel, core.DefaultModel),
		Color:       firstNonEmpty(d.settings.DefaultColor, core.DefaultColor),
	}

	flags := cmd.Flags()
	ask := func(flag string) bool { return d.interactive && !flags.Changed(flag) }

	if flags.Changed("description") {
		meta.Description, _ = flags.GetString("description")
		meta.Description = strings.TrimSpace(meta.Description)
	} else if ask("description") {
		d.printer.Info("Configure your custom agent:")
		desc, err := d.prompter.Input(
			"Description:",
			fmt.Sprintf("What does %s do?", name),
			core.ValidateDescription,
		)
		if err != nil {
			return meta, err
		}
		meta.Description = desc
	}

	if flags.Changed("model") {
		meta.Model, _ = flags.GetString("model")
	} else if ask("model") {
		model, err := d.prompter.Select("Model:", choices(core.Models, meta.Model))
		if err != nil {
			return meta, err
		}
		meta.Model = model
	}

	if flags.Changed("color") {
		meta.Color, _ = flags.GetString("color")
	} else if ask("color") {
		color, err := d.prompter.Select("Color:", choices(core.Colors, meta.Color))
		if err != nil {
			return meta, err
		}
		meta.Color = color
	}
	return meta, nil
}

// choices builds select options with def listed first.
func choices(values []string, def string) []tui.Option {
	opts := []tui.Option{{Label: def + " (default)", Value: def}}
	for _, v := range values {
		if v != def {
			opts = append(opts, tui.Option{Label: v, Value: v})
		}
	}
	return opts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	addScopeFlags(createCmd)
	addPlatformFlag(createCmd)
	createCmd.Flags().String("description", "", "What the agent does (10-500 characters)")
	createCmd.Flags().String("model", "", "Model: "+strings.Join(core.Models, ", "))
	createCmd.Flags().String("color", "", "Color: "+strings.Join(core.Colors, ", "))
	createCmd.Flags().BoolP("force", "y", false, "Overwrite an existing agent without prompting")

	rootCmd.AddCommand(createCmd)
}
