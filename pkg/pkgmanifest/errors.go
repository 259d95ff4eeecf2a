// SPDX-License-Identifier: MPL-2.0

package pkgmanifest

import (
	"errors"
	"fmt"

	"github.com/extkit/extkit/pkg/types"
)

var (
	// ErrManifestLoad is the sentinel error wrapped by LoadError.
	ErrManifestLoad = errors.New("manifest load failed")
	// ErrInvalidManifest is the sentinel error wrapped by InvalidManifestError.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrDuplicatePackage is returned by NewStatic when two manifests share a name.
	ErrDuplicatePackage = errors.New("duplicate package")
)

type (
	// LoadError reports that a package manifest exists but could not be read
	// or parsed. It matches both ErrManifestLoad and the underlying cause.
	LoadError struct {
		Package types.PackageID
		Path    string
		Err     error
	}

	// InvalidManifestError lists the problems found in one manifest.
	InvalidManifestError struct {
		Path     string
		Problems []error
	}
)

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load manifest for package %q (%s): %v", e.Package, e.Path, e.Err)
}

// Unwrap exposes ErrManifestLoad and the underlying cause.
func (e *LoadError) Unwrap() []error { return []error{ErrManifestLoad, e.Err} }

// Error implements the error interface for InvalidManifestError.
func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("invalid manifest %s: %v", e.Path, errors.Join(e.Problems...))
}

// Unwrap exposes ErrInvalidManifest and every individual problem.
func (e *InvalidManifestError) Unwrap() []error {
	return append([]error{ErrInvalidManifest}, e.Problems...)
}
