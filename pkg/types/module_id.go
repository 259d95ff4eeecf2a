// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidModuleID is the sentinel error wrapped by InvalidModuleIDError.
var ErrInvalidModuleID = errors.New("invalid module id")

type (
	// ModuleID identifies one named code unit owned by a package, for example
	// "Web.Router". A valid ModuleID is non-empty and contains no whitespace.
	ModuleID string

	// InvalidModuleIDError is returned when a ModuleID value is empty or
	// contains whitespace.
	InvalidModuleIDError struct {
		Value ModuleID
	}
)

// String returns the string representation of the ModuleID.
func (m ModuleID) String() string { return string(m) }

// Validate returns an error if the ModuleID is empty or contains whitespace.
func (m ModuleID) Validate() error {
	if m == "" || strings.IndexFunc(string(m), unicode.IsSpace) >= 0 {
		return &InvalidModuleIDError{Value: m}
	}
	return nil
}

// Error implements the error interface for InvalidModuleIDError.
func (e *InvalidModuleIDError) Error() string {
	return fmt.Sprintf("invalid module id %q: must be non-empty and contain no whitespace", e.Value)
}

// Unwrap returns ErrInvalidModuleID for errors.Is() compatibility.
func (e *InvalidModuleIDError) Unwrap() error { return ErrInvalidModuleID }
