// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/extkit/extkit/internal/config"
	"github.com/extkit/extkit/internal/issue"
	"github.com/extkit/extkit/pkg/introspect"
	"github.com/extkit/extkit/pkg/pkgmanifest"
	"github.com/extkit/extkit/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// App wires CLI services and shared dependencies. All command handlers
	// receive an App reference.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer
		flags  rootFlags
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// rootFlags holds the persistent flags shared by every command.
	rootFlags struct {
		configPath   string
		manifestRoot string
		env          string
		pkg          string
		verbose      bool
	}

	// session is everything one command invocation needs, resolved from
	// config and flags.
	session struct {
		cfg      *config.Config
		logger   *log.Logger
		store    *pkgmanifest.DirStore
		walker   *introspect.Walker
		build    introspect.BuildContext
		registry introspect.Registry
	}
)

// NewApp builds an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// loadConfig loads the configuration and applies flag overrides on top.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(a.flags.configPath),
	})
	if err != nil {
		return nil, err
	}

	if a.flags.manifestRoot != "" {
		cfg.ManifestRoot = types.FilesystemPath(a.flags.manifestRoot)
	}
	if a.flags.env != "" {
		env := types.Env(a.flags.env)
		if err := env.Validate(); err != nil {
			return nil, usageError(issue.NewErrorContext().
				WithOperation("select build environment").
				WithIssue(issue.InvalidEnvId).
				Wrap(err).
				Build())
		}
		cfg.Env = env
	}
	if a.flags.pkg != "" {
		id := types.PackageID(a.flags.pkg)
		if err := id.Validate(); err != nil {
			return nil, usageError(err)
		}
		cfg.CurrentPackage = id
	}
	if a.flags.verbose {
		cfg.UI.Verbose = true
	}
	return cfg, nil
}

// newSession resolves config and builds the manifest store and walker.
func (a *App) newSession(ctx context.Context) (*session, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	logger := newLogger(a.stderr, cfg)
	store := pkgmanifest.NewDirStore(cfg.ManifestRoot.String(),
		pkgmanifest.WithLogger(logger),
		pkgmanifest.WithInterner(types.NewInterner()),
	)

	opts := []introspect.Option{introspect.WithLogger(logger)}
	if len(cfg.Exclude) > 0 {
		opts = append(opts, introspect.WithExclusions(cfg.Exclude...))
	}

	var registry introspect.Registry = introspect.ListerRegistry{Lister: store}
	if len(cfg.ActivePackages) > 0 {
		registry = introspect.StaticRegistry(cfg.ActivePackages)
	}

	logger.Debug("session ready",
		"manifest_root", cfg.ManifestRoot,
		"env", cfg.Env,
		"current_package", cfg.CurrentPackage,
		"config", cfg.SourcePath,
	)

	return &session{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		walker:   introspect.New(store, opts...),
		build:    introspect.BuildContext{Env: cfg.Env, Package: cfg.CurrentPackage},
		registry: registry,
	}, nil
}

// newLogger builds the stderr logger. Verbose mode forces debug level.
func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel.String())
	if err != nil {
		level = log.InfoLevel
	}
	if cfg.UI.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// explainError converts walker and store failures into actionable errors.
func explainError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var loadErr *pkgmanifest.LoadError
	switch {
	case errors.As(err, &loadErr):
		return issue.NewErrorContext().
			WithOperation(operation).
			WithResource(loadErr.Path).
			WithSuggestion("Fix or remove the manifest of package " + loadErr.Package.String()).
			WithIssue(issue.ManifestParseErrorId).
			Wrap(err).
			BuildError()
	case errors.Is(err, introspect.ErrDependencyCycle):
		return issue.NewErrorContext().
			WithOperation(operation).
			WithIssue(issue.DependencyCycleId).
			Wrap(err).
			BuildError()
	case errors.Is(err, fs.ErrNotExist):
		return issue.NewErrorContext().
			WithOperation(operation).
			WithSuggestion("Set manifest_root in the config file or pass --manifest-root").
			WithIssue(issue.ManifestNotFoundId).
			Wrap(err).
			BuildError()
	default:
		return issue.WrapWithContext(err, operation, "")
	}
}
