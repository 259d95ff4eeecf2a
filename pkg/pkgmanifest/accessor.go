// SPDX-License-Identifier: MPL-2.0

package pkgmanifest

import "github.com/extkit/extkit/pkg/types"

type (
	// Accessor answers dependency and module queries for one package.
	// found is false for packages the accessor does not know; that is not an
	// error. A non-nil error means the accessor itself failed and the caller
	// should give up. Repeated calls with the same identifier return the same
	// result.
	Accessor interface {
		Dependencies(id types.PackageID) (deps []types.PackageID, found bool, err error)
		Modules(id types.PackageID) (mods []types.ModuleID, found bool, err error)
	}

	// Loader returns whole manifests.
	Loader interface {
		Manifest(id types.PackageID) (m *Manifest, found bool, err error)
	}

	// Lister enumerates every package an accessor knows, sorted by name.
	Lister interface {
		Packages() ([]types.PackageID, error)
	}
)

// dependencies and modules implement Accessor on top of a Loader. They return
// copies so callers cannot mutate cached manifests.
func dependencies(l Loader, id types.PackageID) ([]types.PackageID, bool, error) {
	m, found, err := l.Manifest(id)
	if err != nil || !found {
		return nil, found, err
	}
	return append([]types.PackageID(nil), m.Deps...), true, nil
}

func modules(l Loader, id types.PackageID) ([]types.ModuleID, bool, error) {
	m, found, err := l.Manifest(id)
	if err != nil || !found {
		return nil, found, err
	}
	return append([]types.ModuleID(nil), m.Modules...), true, nil
}
