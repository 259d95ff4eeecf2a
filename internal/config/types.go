// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/extkit/extkit/pkg/types"
)

const (
	// LogLevelDebug logs manifest loads and walk steps.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn only reports recoverable problems.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError only reports failures.
	LogLevelError LogLevel = "error"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultManifestRoot is the manifest directory used when none is configured.
	DefaultManifestRoot types.FilesystemPath = "deps"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum severity written by the CLI logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// ColorScheme selects the glamour style used for rendered Markdown.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError collects every field-level validation error of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ManifestRoot is the directory holding per-package manifests.
		ManifestRoot types.FilesystemPath `json:"manifest_root" mapstructure:"manifest_root"`
		// Env is the build environment tag.
		Env types.Env `json:"env" mapstructure:"env"`
		// CurrentPackage seeds no-argument walks when set.
		CurrentPackage types.PackageID `json:"current_package" mapstructure:"current_package"`
		// ActivePackages seeds no-argument walks when CurrentPackage is empty.
		// An empty list means "every package under ManifestRoot".
		ActivePackages []types.PackageID `json:"active_packages" mapstructure:"active_packages"`
		// Exclude replaces the default system package set when non-empty.
		Exclude []types.PackageID `json:"exclude" mapstructure:"exclude"`
		// LogLevel is the minimum level written to stderr.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`

		// SourcePath is the file the configuration was read from, empty for defaults.
		SourcePath string `json:"-" mapstructure:"-"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme selects the Markdown rendering style.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		ManifestRoot:   DefaultManifestRoot,
		Env:            types.DefaultEnv,
		ActivePackages: []types.PackageID{},
		Exclude:        []types.PackageID{},
		LogLevel:       LogLevelInfo,
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Validate returns an error if the LogLevel is not recognized.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns an error if the ColorScheme is not recognized.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate checks every field. Environment overrides bypass the CUE schema,
// so this runs after the merge.
func (c *Config) Validate() error {
	var errs []error
	if err := c.ManifestRoot.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Env.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.CurrentPackage != "" {
		if err := c.CurrentPackage.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, id := range c.ActivePackages {
		if err := id.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("active_packages: %w", err))
		}
	}
	for _, id := range c.Exclude {
		if err := id.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("exclude: %w", err))
		}
	}
	if err := c.LogLevel.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
