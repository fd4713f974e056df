package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "claude-agents",
	Short: "Install and manage markdown agents for Claude Code and Cursor",
	Long: `claude-agents scaffolds a team of markdown agent definitions into the
agents directory of Claude Code or Cursor, either globally (~/.claude/agents)
or for the current project (./.claude/agents).

Install the bundled agents, refresh them from the bundled templates, create
your own from a template, and check that agent files have the structure the
tools expect.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "claude-agents %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("config", "", "Configuration directory (default ~/.claude-agents)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
