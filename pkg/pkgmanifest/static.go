// SPDX-License-Identifier: MPL-2.0

package pkgmanifest

import (
	"fmt"
	"maps"
	"slices"

	"github.com/extkit/extkit/pkg/types"
)

// Static serves manifests held in memory. It is read-only after construction
// and safe for concurrent use.
type Static struct {
	manifests map[types.PackageID]*Manifest
}

// NewStatic validates manifests and indexes them by name.
func NewStatic(manifests ...Manifest) (*Static, error) {
	s := &Static{manifests: make(map[types.PackageID]*Manifest, len(manifests))}
	for i := range manifests {
		m := manifests[i]
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.manifests[m.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePackage, m.Name)
		}
		s.manifests[m.Name] = &m
	}
	return s, nil
}

// Manifest implements Loader.
func (s *Static) Manifest(id types.PackageID) (*Manifest, bool, error) {
	m, ok := s.manifests[id]
	return m, ok, nil
}

// Dependencies implements Accessor.
func (s *Static) Dependencies(id types.PackageID) ([]types.PackageID, bool, error) {
	return dependencies(s, id)
}

// Modules implements Accessor.
func (s *Static) Modules(id types.PackageID) ([]types.ModuleID, bool, error) {
	return modules(s, id)
}

// Packages implements Lister.
func (s *Static) Packages() ([]types.PackageID, error) {
	return slices.Sorted(maps.Keys(s.manifests)), nil
}
