// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

const (
	// EnvDevelopment is the run mode of a local development build.
	EnvDevelopment Env = "development"
	// EnvTest is the run mode while a test suite is executing.
	EnvTest Env = "test"
	// EnvProduction is the run mode of a released build.
	EnvProduction Env = "production"

	// DefaultEnv is used when no environment tag is configured.
	DefaultEnv = EnvDevelopment
)

// ErrInvalidEnv is the sentinel error wrapped by InvalidEnvError.
var ErrInvalidEnv = errors.New("invalid env")

type (
	// Env is the precomputed build-environment tag the current process runs
	// under. Detection happens outside this module; only the tag flows in.
	Env string

	// InvalidEnvError is returned when an Env value is not recognized.
	InvalidEnvError struct {
		Value Env
	}
)

// String returns the string representation of the Env.
func (e Env) String() string { return string(e) }

// Validate returns an error if the Env is not one of the known run modes.
func (e Env) Validate() error {
	switch e {
	case EnvDevelopment, EnvTest, EnvProduction:
		return nil
	default:
		return &InvalidEnvError{Value: e}
	}
}

// OrDefault returns DefaultEnv when e is the zero value.
func (e Env) OrDefault() Env {
	if e == "" {
		return DefaultEnv
	}
	return e
}

// Error implements the error interface for InvalidEnvError.
func (e *InvalidEnvError) Error() string {
	return fmt.Sprintf("invalid env %q (valid: %s, %s, %s)", e.Value, EnvDevelopment, EnvTest, EnvProduction)
}

// Unwrap returns ErrInvalidEnv for errors.Is() compatibility.
func (e *InvalidEnvError) Unwrap() error { return ErrInvalidEnv }
