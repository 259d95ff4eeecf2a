// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"fmt"
	"slices"

	"github.com/extkit/extkit/pkg/pkgmanifest"
	"github.com/extkit/extkit/pkg/types"
)

type (
	// PackageResolver resolves the package the current build belongs to.
	// ok is false when running outside any build or project context.
	PackageResolver interface {
		CurrentPackage() (id types.PackageID, ok bool)
	}

	// Registry reports the packages active in the running process. It is
	// consulted only when no current package can be resolved.
	Registry interface {
		ActivePackages() ([]types.PackageID, error)
	}

	// BuildContext is the explicit build context handed to the no-seed entry
	// points. The zero value resolves no package.
	BuildContext struct {
		// Env is the precomputed environment tag of the build.
		Env types.Env
		// Package is the current package; empty outside a project.
		Package types.PackageID
	}

	// StaticRegistry is a Registry over a fixed list.
	StaticRegistry []types.PackageID

	// ListerRegistry treats every package a Lister knows as active, which
	// is what a fully started application with an installed dependency tree
	// looks like.
	ListerRegistry struct {
		Lister pkgmanifest.Lister
	}
)

// CurrentPackage implements PackageResolver.
func (b BuildContext) CurrentPackage() (types.PackageID, bool) {
	return b.Package, b.Package != ""
}

// ActivePackages implements Registry.
func (r StaticRegistry) ActivePackages() ([]types.PackageID, error) {
	return slices.Clone([]types.PackageID(r)), nil
}

// ActivePackages implements Registry.
func (r ListerRegistry) ActivePackages() ([]types.PackageID, error) {
	return r.Lister.Packages()
}

// Seeds returns the seed set used when no explicit seeds are given: the
// current package from res if it resolves, otherwise the active packages of
// reg minus the exclusion set. Either argument may be nil.
func (w *Walker) Seeds(res PackageResolver, reg Registry) ([]types.PackageID, error) {
	if res != nil {
		if id, ok := res.CurrentPackage(); ok {
			w.logger.Debug("seeding from current package", "package", id)
			return []types.PackageID{id}, nil
		}
	}
	if reg == nil {
		return []types.PackageID{}, nil
	}

	active, err := reg.ActivePackages()
	if err != nil {
		return nil, fmt.Errorf("list active packages: %w", err)
	}
	seeds := w.exclude.Without(active)
	w.logger.Debug("seeding from active packages", "active", len(active), "seeds", len(seeds))
	return seeds, nil
}

// Applications is Closure over the seeds chosen by Seeds.
func (w *Walker) Applications(res PackageResolver, reg Registry) ([]types.PackageID, error) {
	seeds, err := w.Seeds(res, reg)
	if err != nil {
		return nil, err
	}
	return w.Closure(seeds)
}

// Modules is ModulesOf over the seeds chosen by Seeds.
func (w *Walker) Modules(res PackageResolver, reg Registry) ([]types.ModuleID, error) {
	seeds, err := w.Seeds(res, reg)
	if err != nil {
		return nil, err
	}
	return w.ModulesOf(seeds)
}
