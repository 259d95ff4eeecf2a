// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/extkit/extkit/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `extkit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect extkit configuration",
		Long: `Inspect extkit configuration.

Configuration is read from the first of:
  - the --config flag
  - Linux: ~/.config/extkit/config.cue
    macOS: ~/Library/Application Support/extkit/config.cue
    Windows: %APPDATA%\extkit\config.cue
  - ./extkit.cue

EXTKIT_* environment variables override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			source := SubtitleStyle.Render("(using defaults)")
			if cfg.SourcePath != "" {
				source = cfg.SourcePath
			}
			if _, err := fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration")); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(app.stdout, "%s: %s\n\n", CmdStyle.Render("Config file"), source); err != nil {
				return err
			}
			_, err = fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(app.stdout, dir)
			return err
		},
	})

	return cfgCmd
}
