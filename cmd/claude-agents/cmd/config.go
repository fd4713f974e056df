package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/technioz/claude-agents/internal/core"
	"github.com/technioz/claude-agents/internal/core/platform"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and change default settings",
	Long: `Read and change the defaults used when flags are not given.

Settings:
  defaultPlatform  claude or cursor
  defaultScope     global or local
  defaultModel     model written into new custom agents
  defaultColor     color written into new custom agents

The file is JSON and may contain comments, which "config set" preserves.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			v, err := settings.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		}
		for _, key := range core.SettingKeys {
			v, _ := settings.Get(key)
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, v)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting (an empty value removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := newConfigManager(cmd)
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		platforms := platform.Builtin()
		if key == "defaultPlatform" && value != "" && !platforms.Has(value) {
			return &platform.UnknownPlatformError{ID: value, Supported: platforms.IDs()}
		}
		if err := config.Set(key, value); err != nil {
			return err
		}

		printer := newPrinter(cmd)
		if value == "" {
			printer.Success("Removed %s", key)
		} else {
			printer.Success("Set %s = %s", key, value)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := newConfigManager(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.ConfigPath())
		return nil
	},
}

// loadSettings reads the settings without rejecting bad values so that
// get and set keep working on a file the other commands refuse.
func loadSettings(cmd *cobra.Command) (core.Settings, error) {
	config, err := newConfigManager(cmd)
	if err != nil {
		return core.Settings{}, err
	}
	cfg, err := config.LoadUnchecked()
	if err != nil {
		return core.Settings{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg.Settings, nil
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
