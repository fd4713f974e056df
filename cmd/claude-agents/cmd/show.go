package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/core/agentfile"
	"github.com/technioz/claude-agents/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <agent>",
	Short: "Display an installed agent",
	Long: `Display an installed agent with its metadata and rendered body.

Without --global or --local the project directory is searched first, then
the global one. --raw prints the file unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		name, err := core.SanitizeAgentName(args[0])
		if err != nil {
			return err
		}
		p, err := resolvePlatform(cmd, d, false)
		if err != nil {
			return err
		}

		scopes := []core.Scope{core.ScopeLocal, core.ScopeGlobal}
		if scope, ok := scopeFromFlags(cmd); ok {
			scopes = []core.Scope{scope}
		}

		var path string
		for _, scope := range scopes {
			ok, err := d.resolver.AgentExists(scope, p.ID, name)
			if err != nil {
				return err
			}
			if ok {
				path, _ = d.resolver.AgentFilePath(scope, p.ID, name)
				break
			}
		}
		if path == "" {
			return fmt.Errorf("agent %s is not installed for %s", name, p.DisplayName)
		}
		d.printer.Debugf("showing %s", path)

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			_, err = d.printer.Out().Write(data)
			return err
		}

		doc, err := agentfile.ParseFile(path)
		if err != nil {
			return err
		}

		title := doc.Name()
		if title == "" {
			title = name
		}
		d.printer.Header("%s", title)
		d.printer.Muted("%s", path)
		if v := doc.Description(); v != "" {
			d.printer.Info("📝 Description: %s", v)
		}
		if v := doc.Model(); v != "" {
			d.printer.Info("🤖 Model: %s", v)
		}
		if v := doc.Color(); v != "" {
			d.printer.Info("🎨 Color: %s", v)
		}

		width, _ := cmd.Flags().GetInt("width")
		body, err := tui.RenderMarkdown(doc.Body, width, d.printer.Plain())
		if err != nil {
			return err
		}
		fmt.Fprint(d.printer.Out(), body)
		return nil
	},
}

func init() {
	addScopeFlags(showCmd)
	addPlatformFlag(showCmd)
	showCmd.Flags().Bool("raw", false, "Print the file without rendering")
	showCmd.Flags().Int("width", 80, "Wrap rendered output at this width")

	rootCmd.AddCommand(showCmd)
}
