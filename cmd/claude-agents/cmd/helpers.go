package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/core/platform"
	"github.com/technioz/claude-agents/internal/tui"
)

// addScopeFlags adds the mutually exclusive --global and --local flags.
func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("global", "g", false, "Use the global agents directory (~/.claude/agents)")
	cmd.Flags().BoolP("local", "l", false, "Use the project agents directory (./.claude/agents)")
	cmd.MarkFlagsMutuallyExclusive("global", "local")
}

// addPlatformFlag adds --platform.
func addPlatformFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("platform", "p", "", "Target platform (claude, cursor)")
}

// addAgentsFlag adds --agents, accepted repeated or comma-separated.
func addAgentsFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringSliceP("agents", "a", nil, usage)
}

// scopeFromFlags returns the scope set on the command line, if any.
func scopeFromFlags(cmd *cobra.Command) (core.Scope, bool) {
	if global, _ := cmd.Flags().GetBool("global"); global {
		return core.ScopeGlobal, true
	}
	if local, _ := cmd.Flags().GetBool("local"); local {
		return core.ScopeLocal, true
	}
	return "", false
}

// resolveScope picks the scope: flag, then config, then a prompt when
// interactive and prompt is set, then local.
func resolveScope(cmd *cobra.Command, d *deps, p platform.Platform, prompt bool) (core.Scope, error) {
	if scope, ok := scopeFromFlags(cmd); ok {
		return scope, nil
	}
	if d.settings.DefaultScope != "" {
		return core.ParseScope(d.settings.DefaultScope)
	}
	if !prompt || !d.interactive {
		return core.ScopeLocal, nil
	}

	value, err := d.prompter.Select("Where should the agents live?", []tui.Option{
		{Label: fmt.Sprintf("Local (./%s)", p.AgentsPath), Value: string(core.ScopeLocal)},
		{Label: fmt.Sprintf("Global (~/%s)", p.AgentsPath), Value: string(core.ScopeGlobal)},
	})
	if err != nil {
		return "", err
	}
	return core.ParseScope(value)
}

// resolvePlatform picks the platform: flag, then config, then a prompt when
// interactive, then the registry default.
func resolvePlatform(cmd *cobra.Command, d *deps, prompt bool) (platform.Platform, error) {
	id, _ := cmd.Flags().GetString("platform")
	switch {
	case id != "":
	case d.settings.DefaultPlatform != "":
		id = d.settings.DefaultPlatform
	case prompt && d.interactive:
		opts := make([]tui.Option, 0, len(d.platforms.IDs()))
		for _, p := range d.platforms.All() {
			opts = append(opts, tui.Option{Label: p.Emoji + " " + p.DisplayName, Value: p.ID})
		}
		choice, err := d.prompter.Select("Which platform?", opts)
		if err != nil {
			return platform.Platform{}, err
		}
		id = choice
	default:
		id = d.platforms.Default()
	}
	return d.platforms.Lookup(id)
}

// agentsFromFlag returns the trimmed, non-empty --agents values.
func agentsFromFlag(cmd *cobra.Command) []string {
	raw, _ := cmd.Flags().GetStringSlice("agents")
	var names []string
	for _, n := range raw {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// confirm asks a yes/no question. Without a terminal there is nobody to ask,
// so the caller gets tui.ErrNonInteractive.
func confirm(d *deps, title string, def bool) (bool, error) {
	if !d.interactive {
		return false, tui.ErrNonInteractive
	}
	return d.prompter.Confirm(title, def)
}

// promptErr turns the user backing out of a prompt into a clean exit and
// passes every other error through.
func promptErr(d *deps, err error) error {
	if errors.Is(err, tui.ErrAborted) {
		d.printer.Info("Operation cancelled.")
		return nil
	}
	return err
}

// reportFailures prints each failed result and returns an error summarizing
// them, or nil when every result succeeded.
func reportFailures(d *deps, verb string, results []core.AgentResult) error {
	failed := core.Failed(results)
	for _, r := range failed {
		d.printer.Error("Failed to %s %s: %v", verb, r.Name, r.Err)
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d agent(s) failed to %s", len(failed), len(results), verb)
}

// succeeded returns the names of the results without an error.
func succeeded(results []core.AgentResult) []string {
	var names []string
	for _, r := range results {
		if r.Err == nil {
			names = append(names, r.Name)
		}
	}
	return names
}

// joinStrings concatenates string slices with ", " separator.
func joinStrings(ss []string) string {
	return strings.Join(ss, ", ")
}

