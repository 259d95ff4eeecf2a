// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/extkit/extkit/internal/issue"
	"github.com/extkit/extkit/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the extkit command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "extkit",
		Short: "Inspect package dependency graphs",
		Long: TitleStyle.Render("extkit") + SubtitleStyle.Render(" - Inspect package dependency graphs") + `

extkit reads one manifest per package (package.cue or package.toml) from
a manifest root and answers questions about the declared dependency graph:
which packages an application pulls in, which modules they own, and in
which order they load.

` + SubtitleStyle.Render("Examples:") + `
  extkit apps web            Packages reachable from 'web'
  extkit modules             Modules of the current application
  extkit order web api       Load order for 'web' and 'api'
  extkit pkgconfig web       Resolved config of 'web' for the build env
  extkit explain             List the documented issues`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/extkit/config.cue)")
	flags.StringVar(&app.flags.manifestRoot, "manifest-root", "", "directory holding package manifests")
	flags.StringVar(&app.flags.env, "env", "", "build environment (development, test, production)")
	flags.StringVar(&app.flags.pkg, "package", "", "current package seeding no-argument walks")

	rootCmd.AddCommand(
		newAppsCommand(app),
		newModulesCommand(app),
		newOrderCommand(app),
		newPkgConfigCommand(app),
		newCaseCommand(app),
		newConfigCommand(app),
		newExplainCommand(app),
	)

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with the resulting status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, app.flags.verbose))
		}),
	); err != nil {
		os.Exit(int(exitCodeOf(err)))
	}
}

// exitCodeOf maps an error to the process exit status.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil {
		return exitErr.Code
	}
	return types.ExitFailure
}

// formatErrorForDisplay uses ActionableError.Format when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
