package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/core/platform"
	"github.com/technioz/claude-agents/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the bundled agents",
	Long: `Install bundled agents and the agents protocol document.

The scope comes from --global/--local, then the defaultScope setting, then a
prompt. Without a terminal (or with --yes) the project directory is used.

Agents are chosen with --agents (repeat the flag or separate names with
commas). --yes installs every bundled agent and overwrites existing files
without asking.

Examples:
  claude-agents init
  claude-agents init --global --yes
  claude-agents init -p cursor -a ARCHITECT,DEVELOPER`,
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

		d.printer.Header("%s %s Agents Setup", p.Emoji, p.DisplayName)
		d.printer.Newline()

		scope, err := resolveScope(cmd, d, p, !yes)
		if err != nil {
			return promptErr(d, err)
		}
		d.printer.Debugf("scope=%s platform=%s", scope, p.ID)

		selected, err := selectInitAgents(cmd, d, yes)
		if err != nil {
			return promptErr(d, err)
		}
		if len(selected) == 0 {
			d.printer.Warn("No agents selected.")
			return nil
		}

		var existing []string
		for _, name := range selected {
			ok, err := d.resolver.AgentExists(scope, p.ID, name)
			if err != nil {
				return err
			}
			if ok {
				existing = append(existing, name)
			}
		}
		if len(existing) > 0 && !yes {
			d.printer.Warn("The following agents already exist: %s", joinStrings(existing))
			ok, err := confirm(d, "Overwrite existing agents?", false)
			if errors.Is(err, tui.ErrNonInteractive) {
				return fmt.Errorf("agents already exist; rerun with --yes to overwrite: %w", err)
			} else if err != nil {
				return promptErr(d, err)
			}
			if !ok {
				d.printer.Info("Installation cancelled.")
				return nil
			}
		}

		dir, err := d.installer.EnsureAgentsDir(scope, p.ID)
		if err != nil {
			return err
		}
		d.printer.Debugf("agents dir: %s", dir)

		results := d.installer.InstallAgents(selected, dir)
		failErr := reportFailures(d, "install", results)

		_, protoErr := d.installer.InstallProtocol(scope, p.ID)
		if protoErr != nil {
			d.printer.Error("Failed to install %s: %v", platform.ProtocolFileName, protoErr)
		}

		installed := succeeded(results)
		showInitSummary(d, p, scope, dir, installed)
		return errors.Join(failErr, protoErr)
	},
}

// selectInitAgents resolves which bundled agents to install.
func selectInitAgents(cmd *cobra.Command, d *deps, yes bool) ([]string, error) {
	if requested := agentsFromFlag(cmd); len(requested) > 0 {
		known, unknown := d.catalog.Filter(requested)
		if len(unknown) > 0 {
			d.printer.Warn("Skipping unknown agents: %s", joinStrings(unknown))
		}
		if len(known) == 0 {
			d.printer.Info("Available agents: %s", joinStrings(d.catalog.Names()))
			return nil, fmt.Errorf("no valid agents specified")
		}
		return known, nil
	}
	if yes {
		return d.catalog.Names(), nil
	}
	if !d.interactive {
		return nil, fmt.Errorf("choose agents with --agents or pass --yes for all: %w", tui.ErrNonInteractive)
	}

	opts := make([]tui.Option, 0, len(d.catalog))
	for _, e := range d.catalog {
		opts = append(opts, tui.Option{
			Label:   fmt.Sprintf("%s - %s", e.Name, e.Summary),
			Value:   e.Name,
			Checked: true,
		})
	}
	return d.prompter.MultiSelect("Which agents do you want to install?", opts)
}

func showInitSummary(d *deps, p platform.Platform, scope core.Scope, dir string, agents []string) {
	d.printer.Newline()
	d.printer.Success("Setup Complete!")
	d.printer.Newline()

	d.printer.Info("📁 Installation location: %s", scope.Label())
	d.printer.Info("📂 Path: %s", dir)
	d.printer.Info("📦 Agents installed: %d", len(agents))
	d.printer.Newline()

	d.printer.Header("Installed Agents:")
	rows := make([][2]string, 0, len(agents))
	for _, name := range agents {
		rows = append(rows, [2]string{name, d.catalog.Summary(name)})
	}
	d.printer.Table([2]string{"AGENT", "ROLE"}, rows)

	d.printer.Newline()
	d.printer.Header("📚 Next Steps:")
	d.printer.Item("Review agents in %s/", p.AgentsPath)
	d.printer.Item("Read %s for usage guide", platform.ProtocolFileName)
	d.printer.Item("Start using agents with %s", p.DisplayName)
	d.printer.Newline()
}

func init() {
	addScopeFlags(initCmd)
	addPlatformFlag(initCmd)
	addAgentsFlag(initCmd, "Agents to install (repeatable or comma-separated)")
	initCmd.Flags().BoolP("yes", "y", false, "Install all agents and overwrite without prompting")

	rootCmd.AddCommand(initCmd)
}
