// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidPackageID is the sentinel error wrapped by InvalidPackageIDError.
var ErrInvalidPackageID = errors.New("invalid package id")

type (
	// PackageID identifies one unit of distributable code. Equality is plain
	// string equality. A valid PackageID is non-empty and contains neither
	// whitespace nor path separators, so it can double as a directory name.
	PackageID string

	// InvalidPackageIDError is returned when a PackageID value is empty or
	// contains whitespace or path separators.
	InvalidPackageIDError struct {
		Value  PackageID
		Reason string
	}
)

// String returns the string representation of the PackageID.
func (p PackageID) String() string { return string(p) }

// Validate returns an error if the PackageID is not usable as an identifier.
func (p PackageID) Validate() error {
	if p == "" {
		return &InvalidPackageIDError{Value: p, Reason: "must not be empty"}
	}
	for _, r := range string(p) {
		switch {
		case unicode.IsSpace(r):
			return &InvalidPackageIDError{Value: p, Reason: "must not contain whitespace"}
		case r == '/' || r == '\\':
			return &InvalidPackageIDError{Value: p, Reason: "must not contain path separators"}
		}
	}
	if p == "." || p == ".." {
		return &InvalidPackageIDError{Value: p, Reason: "must not be a relative path element"}
	}
	return nil
}

// Error implements the error interface for InvalidPackageIDError.
func (e *InvalidPackageIDError) Error() string {
	return fmt.Sprintf("invalid package id %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidPackageID for errors.Is() compatibility.
func (e *InvalidPackageIDError) Unwrap() error { return ErrInvalidPackageID }

// ParsePackageIDs converts raw strings to validated package identifiers,
// trimming surrounding whitespace. All invalid entries are reported.
func ParsePackageIDs(raw []string) ([]PackageID, error) {
	ids := make([]PackageID, 0, len(raw))
	var errs []error
	for _, s := range raw {
		id := PackageID(strings.TrimSpace(s))
		if err := id.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		ids = append(ids, id)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ids, nil
}
