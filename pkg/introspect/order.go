// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"errors"
	"fmt"

	"github.com/extkit/extkit/internal/dag"
	"github.com/extkit/extkit/pkg/types"
)

// ErrDependencyCycle is returned by LoadOrder when the closure has no
// dependencies-first order. The wrapped *dag.CycleError names the packages
// involved.
var ErrDependencyCycle = errors.New("dependency cycle")

// LoadOrder returns the closure of seeds ordered so that every package comes
// after the packages it depends on. Ties keep first-discovery order.
// Unlike Closure, it fails on cycles, self-dependencies included.
func (w *Walker) LoadOrder(seeds []types.PackageID) ([]types.PackageID, error) {
	type expansion struct {
		id   types.PackageID
		deps []types.PackageID
	}
	var expanded []expansion

	visited, err := w.walk(seeds, func(id types.PackageID) ([]types.PackageID, error) {
		deps, _, err := w.acc.Dependencies(id)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, expansion{id: id, deps: deps})
		return deps, nil
	})
	if err != nil {
		return nil, err
	}

	g := dag.New[types.PackageID]()
	for _, id := range visited.Slice() {
		g.AddNode(id)
	}
	// Edges come from the raw dependency lists: an excluded package that is
	// in the closure as a seed still orders before its dependents.
	for _, e := range expanded {
		for _, dep := range e.deps {
			if visited.Has(dep) {
				g.AddEdge(dep, e.id)
			}
		}
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDependencyCycle, err)
	}
	if order == nil {
		order = []types.PackageID{}
	}
	return order, nil
}
