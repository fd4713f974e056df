package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/core/platform"
	"github.com/technioz/claude-agents/internal/templates"
	"github.com/technioz/claude-agents/internal/tui"
)

// deps holds shared dependencies for CLI commands.
type deps struct {
	config      *core.ConfigManager
	settings    core.Settings
	platforms   *platform.Registry
	resolver    *core.Resolver
	installer   *core.Installer
	catalog     core.Catalog
	printer     *tui.Printer
	prompter    tui.Prompter
	interactive bool
}

// newDeps creates shared dependencies. Called lazily by commands that need them.
func newDeps(cmd *cobra.Command) (*deps, error) {
	printer := newPrinter(cmd)

	config, err := newConfigManager(cmd)
	if err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	printer.Debugf("config: %s", config.ConfigPath())

	platforms := platform.Builtin()
	if p := cfg.Settings.DefaultPlatform; p != "" && !platforms.Has(p) {
		return nil, fmt.Errorf("config %s: %w", config.ConfigPath(), &platform.UnknownPlatformError{ID: p, Supported: platforms.IDs()})
	}

	fsys := templates.FS()
	catalog, err := core.LoadCatalog(fsys)
	if err != nil {
		return nil, fmt.Errorf("loading agent catalog: %w", err)
	}

	resolver := core.NewResolver(platforms)

	interactive := isTerminal(os.Stdin)
	var prompter tui.Prompter = tui.NonInteractive{}
	if interactive {
		prompter = tui.NewTeaPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	printer.Debugf("interactive: %v", interactive)

	return &deps{
		config:      config,
		settings:    cfg.Settings,
		platforms:   platforms,
		resolver:    resolver,
		installer:   core.NewInstaller(resolver, fsys),
		catalog:     catalog,
		printer:     printer,
		prompter:    prompter,
		interactive: interactive,
	}, nil
}

func newConfigManager(cmd *cobra.Command) (*core.ConfigManager, error) {
	if dir, _ := cmd.Flags().GetString("config"); dir != "" {
		return core.NewConfigManagerWithDir(dir), nil
	}
	return core.NewConfigManager()
}

// newPrinter builds the printer from the persistent flags and environment.
// Color is off with --no-color, with NO_COLOR set, or when stdout is not a
// terminal.
func newPrinter(cmd *cobra.Command) *tui.Printer {
	noColor, _ := cmd.Flags().GetBool("no-color")
	plain := noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout)
	return tui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), plain, debugEnabled(cmd))
}

// debugEnabled reports whether debug output was requested by flag or by one
// of the environment switches.
func debugEnabled(cmd *cobra.Command) bool {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return true
	}
	return os.Getenv("CLAUDE_AGENTS_DEBUG") != "" ||
		os.Getenv("DEBUG") != "" ||
		os.Getenv("NODE_ENV") == "development"
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
