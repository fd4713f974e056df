package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/tui"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [agent...]",
	Short: "Remove installed agents",
	Long: `Remove agent files from the chosen scope and platform. With --all every
installed agent is removed. The agents directory is deleted once empty.

Examples:
  claude-agents uninstall DESIGNER
  claude-agents uninstall --all --global --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		if len(args) == 0 && !all {
			return fmt.Errorf("specify an agent name or use --all\n\nUsage:\n  claude-agents uninstall <agent>\n  claude-agents uninstall --all")
		}

		p, err := resolvePlatform(cmd, d, false)
		if err != nil {
			return err
		}
		scope, err := resolveScope(cmd, d, p, false)
		if err != nil {
			return err
		}

		names := args
		if all {
			names, err = d.installer.InstalledAgents(scope, p.ID)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				d.printer.Warn("No %s agents installed", scope)
				return nil
			}
		}

		if !yes {
			ok, err := confirm(d, fmt.Sprintf("Remove %d agent(s)?", len(names)), false)
			if errors.Is(err, tui.ErrNonInteractive) {
				return fmt.Errorf("confirmation required; rerun with --yes: %w", err)
			} else if err != nil {
				return promptErr(d, err)
			}
			if !ok {
				d.printer.Info("Operation cancelled.")
				return nil
			}
		}

		results := core.NewRemover(d.resolver).RemoveAll(names, scope, p.ID)
		failErr := reportFailures(d, "remove", results)
		for _, r := range results {
			if r.Err == nil {
				d.printer.Success("Removed: %s", r.Name)
				d.printer.Debugf("deleted %s", r.Path)
			}
		}
		return failErr
	},
}

func init() {
	addScopeFlags(uninstallCmd)
	addPlatformFlag(uninstallCmd)
	uninstallCmd.Flags().Bool("all", false, "Remove every installed agent")
	uninstallCmd.Flags().BoolP("yes", "y", false, "Remove without prompting")

	rootCmd.AddCommand(uninstallCmd)
}
