// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"errors"
	"sync"
	"testing"

	"github.com/extkit/extkit/pkg/pkgmanifest"
	"github.com/extkit/extkit/pkg/types"
)

// graph describes a manifest set compactly: package -> deps, and
// package -> modules.
type graph struct {
	deps map[types.PackageID][]types.PackageID
	mods map[types.PackageID][]types.ModuleID
}

func newStatic(t *testing.T, g graph) *pkgmanifest.Static {
	t.Helper()
	names := map[types.PackageID]bool{}
	for id := range g.deps {
		names[id] = true
	}
	for id := range g.mods {
		names[id] = true
	}
	manifests := make([]pkgmanifest.Manifest, 0, len(names))
	for id := range names {
		manifests = append(manifests, pkgmanifest.Manifest{Name: id, Deps: g.deps[id], Modules: g.mods[id]})
	}
	s, err := pkgmanifest.NewStatic(manifests...)
	if err != nil {
		t.Fatalf("NewStatic() error: %v", err)
	}
	return s
}

func ids(s ...string) []types.PackageID {
	out := make([]types.PackageID, len(s))
	for i, v := range s {
		out[i] = types.PackageID(v)
	}
	return out
}

func mods(s ...string) []types.ModuleID {
	out := make([]types.ModuleID, len(s))
	for i, v := range s {
		out[i] = types.ModuleID(v)
	}
	return out
}

var errDiskGone = errors.New("disk gone")

// countingAccessor records how often each package is queried. Dependencies
// fails for the packages listed in fail, Modules for those in failModules.
type countingAccessor struct {
	inner       pkgmanifest.Accessor
	fail        map[types.PackageID]error
	failModules map[types.PackageID]error

	mu    sync.Mutex
	calls map[types.PackageID]int
}

func newCounting(inner pkgmanifest.Accessor) *countingAccessor {
	return &countingAccessor{
		inner:       inner,
		fail:        map[types.PackageID]error{},
		failModules: map[types.PackageID]error{},
		calls:       map[types.PackageID]int{},
	}
}

func (c *countingAccessor) Dependencies(id types.PackageID) ([]types.PackageID, bool, error) {
	c.mu.Lock()
	c.calls[id]++
	c.mu.Unlock()
	if err := c.fail[id]; err != nil {
		return nil, false, err
	}
	return c.inner.Dependencies(id)
}

func (c *countingAccessor) Modules(id types.PackageID) ([]types.ModuleID, bool, error) {
	if err := c.failModules[id]; err != nil {
		return nil, false, err
	}
	return c.inner.Modules(id)
}

func (c *countingAccessor) count(id types.PackageID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[id]
}
