// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/extkit/extkit/internal/issue"
	"github.com/extkit/extkit/pkg/types"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newPkgConfigCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pkgconfig <package>",
		Short: "Print the resolved configuration of a package as TOML",
		Long: `Print the configuration a package declares for the build environment:
the base 'config' block deep-merged with the matching 'env' block, with keys
normalized to snake_case.

The environment comes from --env, the 'env' config field, or 'development'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.PackageID(args[0])
			if err := id.Validate(); err != nil {
				return usageError(err)
			}
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}

			m, found, err := s.store.Manifest(id)
			if err != nil {
				return explainError(err, "resolve package config")
			}
			if !found {
				return issue.NewErrorContext().
					WithOperation("resolve package config").
					WithResource(id.String()).
					WithSuggestion("Check that " + s.cfg.ManifestRoot.Join(id.String()).String() + " holds a package manifest").
					WithIssue(issue.UnknownPackageId).
					BuildError()
			}

			out, err := toml.Marshal(m.ResolvedConfig(s.cfg.Env))
			if err != nil {
				return fmt.Errorf("encode config of %s: %w", id, err)
			}
			_, err = app.stdout.Write(out)
			return err
		},
	}
}
