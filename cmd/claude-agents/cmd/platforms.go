package cmd

import (
	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		def := d.platforms.Default()
		if d.settings.DefaultPlatform != "" {
			def = d.settings.DefaultPlatform
		}

		rows := make([][2]string, 0, len(d.platforms.IDs()))
		for _, p := range d.platforms.All() {
			id := p.ID
			if id == def {
				id += " (default)"
			}
			rows = append(rows, [2]string{id, p.Emoji + " " + p.DisplayName + "  " + p.AgentsPath})
		}

		d.printer.Header("Supported Platforms:")
		d.printer.Newline()
		d.printer.Table([2]string{"ID", "PLATFORM"}, rows)
		d.printer.Newline()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}
