// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/extkit/extkit/pkg/introspect"
	"github.com/extkit/extkit/pkg/types"

	"github.com/spf13/cobra"
)

func newAppsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apps [package...]",
		Short: "List the packages reachable from the given packages",
		Long: `List every package reachable from the given packages through declared
dependencies, in discovery order. System packages are not expanded into.

Without arguments the walk starts from the current package (--package or
current_package), or else from every active package.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := parseSeeds(args)
			if err != nil {
				return err
			}
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}

			var pkgs []types.PackageID
			if len(args) == 0 {
				pkgs, err = s.walker.Applications(s.build, s.registry)
			} else {
				pkgs, err = s.walker.Closure(seeds)
			}
			if err != nil {
				return explainError(err, "list applications")
			}
			return printLines(app.stdout, pkgs)
		},
	}
}

func newModulesCommand(app *App) *cobra.Command {
	var byPackage bool

	modulesCmd := &cobra.Command{
		Use:   "modules [package...]",
		Short: "List the modules owned by every reachable package",
		Long: `List the modules owned by every package reachable from the given packages,
flattened in package discovery order.

Without arguments the walk seeds like 'extkit apps'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := parseSeeds(args)
			if err != nil {
				return err
			}
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}
			if byPackage {
				if len(args) == 0 {
					if seeds, err = s.walker.Seeds(s.build, s.registry); err != nil {
						return explainError(err, "list modules")
					}
				}
				owned, err := s.walker.Ownership(seeds)
				if err != nil {
					return explainError(err, "list modules")
				}
				return printOwnership(app.stdout, owned)
			}

			var mods []types.ModuleID
			if len(args) == 0 {
				mods, err = s.walker.Modules(s.build, s.registry)
			} else {
				mods, err = s.walker.ModulesOf(seeds)
			}
			if err != nil {
				return explainError(err, "list modules")
			}
			return printLines(app.stdout, mods)
		},
	}

	modulesCmd.Flags().BoolVar(&byPackage, "by-package", false, "group modules under the package owning them")
	return modulesCmd
}

func newOrderCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "order [package...]",
		Short: "Print the dependency-first load order",
		Long: `Print the reachable packages ordered so that every package comes after
all of its dependencies. Fails when the dependency graph contains a cycle.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := parseSeeds(args)
			if err != nil {
				return err
			}
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				if seeds, err = s.walker.Seeds(s.build, s.registry); err != nil {
					return explainError(err, "compute load order")
				}
			}

			order, err := s.walker.LoadOrder(seeds)
			if err != nil {
				return explainError(err, "compute load order")
			}
			return printLines(app.stdout, order)
		},
	}
}

func parseSeeds(args []string) ([]types.PackageID, error) {
	seeds, err := types.ParsePackageIDs(args)
	if err != nil {
		return nil, usageError(err)
	}
	return seeds, nil
}

func printLines[S fmt.Stringer](w io.Writer, items []S) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return err
		}
	}
	return nil
}

func printOwnership(w io.Writer, owned []introspect.Ownership) error {
	for _, o := range owned {
		header := TitleStyle.Render(o.Package.String())
		if !o.Known {
			header += " " + WarningStyle.Render("(unknown)")
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		for _, m := range o.Modules {
			if _, err := fmt.Fprintln(w, moduleStyle.Render(SuccessStyle.Render(m.String()))); err != nil {
				return err
			}
		}
	}
	return nil
}
