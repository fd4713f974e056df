package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/tui"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Overwrite installed agents with the bundled templates",
	Long: `Replace installed agents with the versions bundled in this release.

Only agents that are already installed in the chosen scope are updated.
Local edits to those files are overwritten. Agents created with
"claude-agents create" have no bundled template and are reported as
failures if selected.

Examples:
  claude-agents update --yes
  claude-agents update -g -a ARCHITECT`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		p, err := resolvePlatform(cmd, d, !yes)
		if err != nil {
			return promptErr(d, err)
		}
		d.printer.Header("🔄 Update %s Agents", p.DisplayName)

		scope, err := resolveScope(cmd, d, p, !yes)
		if err != nil {
			return promptErr(d, err)
		}

		installed, err := d.installer.InstalledAgents(scope, p.ID)
		if err != nil {
			return err
		}
		if len(installed) == 0 {
			dir, err := d.resolver.AgentsDir(scope, p.ID)
			if err != nil {
				return err
			}
			d.printer.Warn("No agents found at %s", dir)
			d.printer.Info(`Run "claude-agents init --platform %s" to install agents.`, p.ID)
			return nil
		}
		d.printer.Info("Found %d installed agents", len(installed))
		d.printer.Newline()

		selected, err := selectUpdateAgents(cmd, d, installed, yes)
		if err != nil {
			return promptErr(d, err)
		}
		if len(selected) == 0 {
			d.printer.Warn("No agents selected.")
			return nil
		}

		d.printer.Info("Selected %d agent(s) for update", len(selected))
		if !yes {
			ok, err := confirm(d, fmt.Sprintf("Update %d agent(s)?", len(selected)), true)
			if errors.Is(err, tui.ErrNonInteractive) {
				return fmt.Errorf("confirmation required; rerun with --yes: %w", err)
			} else if err != nil {
				return promptErr(d, err)
			}
			if !ok {
				d.printer.Info("Update cancelled.")
				return nil
			}
		}

		results := d.installer.UpdateAgents(selected, scope, p.ID)
		failErr := reportFailures(d, "update", results)
		updated := succeeded(results)

		d.printer.Newline()
		if failErr == nil {
			d.printer.Success("Successfully updated %d agent(s)", len(updated))
		} else {
			d.printer.Warn("Updated %d agent(s), %d failed", len(updated), len(results)-len(updated))
		}
		if len(updated) > 0 {
			d.printer.Newline()
			d.printer.Header("Updated Agents:")
			for _, name := range updated {
				d.printer.Agent(name, agentColor(d, name), "")
			}
		}
		d.printer.Newline()
		return failErr
	},
}

// selectUpdateAgents resolves which installed agents to update.
func selectUpdateAgents(cmd *cobra.Command, d *deps, installed []string, yes bool) ([]string, error) {
	if requested := agentsFromFlag(cmd); len(requested) > 0 {
		var selected []string
		for _, name := range requested {
			if slices.Contains(installed, name) {
				selected = append(selected, name)
			} else {
				d.printer.Warn("Skipping %s: not installed", name)
			}
		}
		if len(selected) == 0 {
			d.printer.Info("Installed agents: %s", joinStrings(installed))
			return nil, fmt.Errorf("none of the specified agents are installed")
		}
		return selected, nil
	}
	if yes {
		return installed, nil
	}
	if !d.interactive {
		return nil, fmt.Errorf("choose agents with --agents or pass --yes for all: %w", tui.ErrNonInteractive)
	}

	opts := make([]tui.Option, 0, len(installed))
	for _, name := range installed {
		opts = append(opts, tui.Option{Label: name, Value: name, Checked: true})
	}
	return d.prompter.MultiSelect("Which agents do you want to update?", opts)
}

// agentColor returns the catalog color for a bundled agent.
func agentColor(d *deps, name string) string {
	if e, ok := d.catalog.Get(name); ok {
		return e.Color
	}
	return ""
}

func init() {
	addScopeFlags(updateCmd)
	addPlatformFlag(updateCmd)
	addAgentsFlag(updateCmd, "Installed agents to update (repeatable or comma-separated)")
	updateCmd.Flags().BoolP("yes", "y", false, "Update all installed agents without prompting")

	rootCmd.AddCommand(updateCmd)
}
