package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/core/agentfile"
	"github.com/technioz/claude-agents/internal/core/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundled or installed agents",
	Long: `List the agents bundled with claude-agents, or with --installed the
agents found in the project and global directories of a platform.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		d.printer.Header("📋 Claude Agents")
		d.printer.Newline()

		if installed, _ := cmd.Flags().GetBool("installed"); installed {
			p, err := resolvePlatform(cmd, d, false)
			if err != nil {
				return err
			}
			return listInstalled(d, p)
		}
		listBundled(d)
		return nil
	},
}

func listBundled(d *deps) {
	d.printer.Info("Available agents for installation:")
	d.printer.Newline()

	rows := make([][2]string, 0, len(d.catalog))
	for _, e := range d.catalog {
		rows = append(rows, [2]string{e.Name, e.Description})
	}
	d.printer.Table([2]string{"AGENT", "DESCRIPTION"}, rows)

	d.printer.Newline()
	d.printer.Info("Total: %d agents available", len(d.catalog))
	d.printer.Info("To install agents, run: claude-agents init")
}

func listInstalled(d *deps, p platform.Platform) error {
	total := 0
	for _, scope := range []core.Scope{core.ScopeLocal, core.ScopeGlobal} {
		dir, err := d.resolver.AgentsDir(scope, p.ID)
		if err != nil {
			return err
		}
		names, err := core.ListAgentFiles(dir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			d.printer.Warn("No %s agents installed", scope)
			d.printer.Newline()
			continue
		}

		total += len(names)
		d.printer.Header("%s Agents (%s):", scope.Label(), dir)
		for _, name := range names {
			color, desc := describeInstalled(d, filepath.Join(dir, name+".md"))
			d.printer.Agent(name, color, desc)
		}
		d.printer.Newline()
	}

	if total == 0 {
		d.printer.Info("To install agents, run: claude-agents init --platform %s", p.ID)
	}
	return nil
}

// describeInstalled reads an agent's declared color and description. Files
// that fail to parse are listed without them.
func describeInstalled(d *deps, path string) (color, description string) {
	doc, err := agentfile.ParseFile(path)
	if err != nil {
		d.printer.Debugf("%v", err)
		return "", ""
	}
	if desc := doc.Description(); desc != "" {
		description = "- " + desc
	}
	return doc.Color(), description
}

func init() {
	listCmd.Flags().BoolP("installed", "i", false, "Show installed agents instead of bundled ones")
	addPlatformFlag(listCmd)

	rootCmd.AddCommand(listCmd)
}
