// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/extkit/extkit/internal/config"
	"github.com/extkit/extkit/internal/issue"

	"github.com/spf13/cobra"
)

func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [issue]",
		Short: "Explain a documented issue",
		Long: `Explain a documented issue in detail. Without arguments, list the
issue names accepted by this command. Error messages name the issue to
look up.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := make([]string, 0, len(issue.Values()))
			for _, i := range issue.Values() {
				names = append(names, i.Name())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, i := range issue.Values() {
					if _, err := fmt.Fprintln(app.stdout, CmdStyle.Render(i.Name())); err != nil {
						return err
					}
				}
				return nil
			}

			found, ok := issue.Lookup(args[0])
			if !ok {
				return usageError(fmt.Errorf("unknown issue %q; run 'extkit explain' to list them", args[0]))
			}

			// A broken config must not prevent explaining config errors.
			style := config.ColorSchemeAuto
			if cfg, err := app.loadConfig(cmd.Context()); err == nil {
				style = cfg.UI.ColorScheme
			}

			rendered, err := found.Render(style.String())
			if err != nil {
				return fmt.Errorf("render issue %s: %w", found.Name(), err)
			}
			_, err = fmt.Fprint(app.stdout, rendered)
			return err
		},
	}
}
