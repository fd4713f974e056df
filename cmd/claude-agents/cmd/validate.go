package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/core/agentfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check agent files for metadata and required sections",
	Long: `Check that agent files carry metadata and the Purpose, Duty and
Instructions sections.

With file arguments only those files are checked. Otherwise every .md file
in --path, or in the agents directory of the chosen scope and platform, is
checked. --strict additionally checks the metadata values against the rules
used by "create". The command exits non-zero when any file is invalid.

Examples:
  claude-agents validate
  claude-agents validate --global --platform cursor
  claude-agents validate ./agents/REVIEWER.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		d.printer.Header("✅ Validate Agent Configuration")

		files := args
		if len(files) == 0 {
			dir, err := validateDir(cmd, d)
			if err != nil {
				return err
			}
			if !core.DirExists(dir) {
				d.printer.Info(`Run "claude-agents init" to install agents.`)
				return fmt.Errorf("directory not found: %s", dir)
			}

			names, err := core.ListAgentFiles(dir)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				d.printer.Warn("No agent files found in %s", dir)
				return nil
			}
			d.printer.Info("Validating agents in: %s", dir)
			for _, name := range names {
				files = append(files, filepath.Join(dir, name+".md"))
			}
		}
		d.printer.Newline()

		strict, _ := cmd.Flags().GetBool("strict")

		var valid, invalid int
		for _, f := range files {
			name := strings.TrimSuffix(filepath.Base(f), ".md")
			res, err := checkAgentFile(f, strict)
			if err != nil {
				invalid++
				d.printer.Error("%s: %v", name, err)
				continue
			}
			if res.Valid {
				valid++
				d.printer.Success("%s", name)
				continue
			}
			invalid++
			d.printer.Error("%s: %s", name, strings.Join(res.Errors, "; "))
		}

		d.printer.Newline()
		d.printer.Header("Summary:")
		d.printer.Item("Valid: %d", valid)
		d.printer.Item("Invalid: %d", invalid)
		d.printer.Newline()

		if invalid > 0 {
			return fmt.Errorf("%d of %d agent file(s) failed validation", invalid, len(files))
		}
		d.printer.Success("All agents are valid!")
		return nil
	},
}

// checkAgentFile runs the structural checks and, in strict mode, the
// metadata checks on one file.
func checkAgentFile(path string, strict bool) (core.ValidationResult, error) {
	res, err := core.ValidateAgentFile(path)
	if err != nil {
		return res, err
	}
	if strict && len(res.Errors) == 0 {
		issues, err := metadataIssues(path)
		if err != nil {
			return res, err
		}
		res.Errors = append(res.Errors, issues...)
		res.Valid = len(res.Errors) == 0
	}
	return res, nil
}

// metadataIssues checks the frontmatter of a structurally valid file
// against the metadata rules used by create.
func metadataIssues(path string) ([]string, error) {
	doc, err := agentfile.ParseFile(path)
	if err != nil {
		return []string{"Invalid metadata: " + err.Error()}, nil
	}
	issues, err := doc.CheckMetadata()
	if err != nil {
		return nil, err
	}
	msgs := make([]string, 0, len(issues))
	for _, i := range issues {
		msgs = append(msgs, "Invalid metadata: "+i.String())
	}
	return msgs, nil
}

// validateDir picks the directory to scan: --path, else the agents
// directory for the scope and platform.
func validateDir(cmd *cobra.Command, d *deps) (string, error) {
	if path, _ := cmd.Flags().GetString("path"); path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", path, err)
		}
		return abs, nil
	}

	p, err := resolvePlatform(cmd, d, false)
	if err != nil {
		return "", err
	}
	scope, err := resolveScope(cmd, d, p, false)
	if err != nil {
		return "", err
	}
	return d.resolver.AgentsDir(scope, p.ID)
}

func init() {
	validateCmd.Flags().String("path", "", "Directory of agent files to validate")
	validateCmd.Flags().Bool("strict", false, "Also check metadata values (model, color, description length)")
	addScopeFlags(validateCmd)
	addPlatformFlag(validateCmd)

	rootCmd.AddCommand(validateCmd)
}
