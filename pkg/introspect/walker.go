// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"io"
	"slices"

	"github.com/extkit/extkit/pkg/pkgmanifest"
	"github.com/extkit/extkit/pkg/types"

	"github.com/charmbracelet/log"
)

// DefaultSystemPackages are the packages excluded from traversal unless
// configured otherwise.
var DefaultSystemPackages = []types.PackageID{"kernel", "stdlib", "runtime", "compiler", "logger"}

type (
	// Walker computes package closures and module listings over an Accessor.
	// A Walker holds no per-call state and is safe for concurrent use when
	// its Accessor is.
	Walker struct {
		acc     pkgmanifest.Accessor
		exclude *types.PackageSet
		logger  *log.Logger
	}

	// Option configures a Walker.
	Option func(*Walker)

	// Ownership pairs a visited package with the modules it owns.
	Ownership struct {
		Package types.PackageID
		Modules []types.ModuleID
		// Known is false when the accessor did not recognize the package.
		Known bool
	}

	// expandFunc loads one package during a traversal and returns its
	// declared dependencies.
	expandFunc func(id types.PackageID) ([]types.PackageID, error)
)

// WithExclusions replaces the exclusion set. Passing no identifiers disables
// exclusion entirely.
func WithExclusions(ids ...types.PackageID) Option {
	return func(w *Walker) {
		w.exclude = types.NewPackageSet(ids...)
	}
}

// WithLogger sets the logger used for traversal tracing.
func WithLogger(logger *log.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Walker over acc.
func New(acc pkgmanifest.Accessor, opts ...Option) *Walker {
	w := &Walker{
		acc:     acc,
		exclude: types.NewPackageSet(DefaultSystemPackages...),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Exclusions returns the exclusion set in configuration order.
func (w *Walker) Exclusions() []types.PackageID {
	return w.exclude.Slice()
}

// Closure returns every package reachable from seeds, seeds included, in
// first-discovery order: seeds in the order given, then dependencies
// breadth-first. Duplicate seeds collapse.
func (w *Walker) Closure(seeds []types.PackageID) ([]types.PackageID, error) {
	visited, err := w.walk(seeds, func(id types.PackageID) ([]types.PackageID, error) {
		deps, _, err := w.acc.Dependencies(id)
		return deps, err
	})
	if err != nil {
		return nil, err
	}
	return visited.Slice(), nil
}

// Ownership walks like Closure and pairs each visited package with the
// modules it owns, in visitation order. Unknown packages own no modules.
func (w *Walker) Ownership(seeds []types.PackageID) ([]Ownership, error) {
	owned := []Ownership{}
	_, err := w.walk(seeds, func(id types.PackageID) ([]types.PackageID, error) {
		deps, _, err := w.acc.Dependencies(id)
		if err != nil {
			return nil, err
		}
		mods, known, err := w.acc.Modules(id)
		if err != nil {
			return nil, err
		}
		owned = append(owned, Ownership{Package: id, Modules: slices.Clip(mods), Known: known})
		return deps, nil
	})
	if err != nil {
		return nil, err
	}
	return owned, nil
}

// ModulesOf returns the modules owned by every package in the closure of
// seeds: packages in visitation order, each package's modules in the order
// its manifest declares them. Modules reported by more than one package
// appear once per package.
func (w *Walker) ModulesOf(seeds []types.PackageID) ([]types.ModuleID, error) {
	owned, err := w.Ownership(seeds)
	if err != nil {
		return nil, err
	}
	mods := []types.ModuleID{}
	for _, o := range owned {
		mods = append(mods, o.Modules...)
	}
	return mods, nil
}

// walk is the breadth-first traversal shared by every operation. expand runs
// exactly once per distinct package, in visitation order. An expand error
// aborts the walk and is returned unchanged.
func (w *Walker) walk(seeds []types.PackageID, expand expandFunc) (*types.PackageSet, error) {
	visited := types.NewPackageSet()
	queue := slices.Clone(seeds)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited.Has(id) {
			continue
		}

		deps, err := expand(id)
		if err != nil {
			w.logger.Debug("manifest query failed", "package", id, "error", err)
			return nil, err
		}

		fresh := w.exclude.Without(deps)
		if skipped := len(deps) - len(fresh); skipped > 0 {
			w.logger.Debug("excluded system dependencies", "package", id, "count", skipped)
		}
		queue = append(queue, fresh...)
		visited.Add(id)
	}

	w.logger.Debug("traversal complete", "seeds", len(seeds), "visited", visited.Len())
	return visited, nil
}
