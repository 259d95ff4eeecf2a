// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"errors"
	"slices"
	"testing"

	"github.com/extkit/extkit/pkg/types"
)

type failingRegistry struct{}

func (failingRegistry) ActivePackages() ([]types.PackageID, error) { return nil, errDiskGone }

func TestBuildContext_CurrentPackage(t *testing.T) {
	t.Parallel()

	if _, ok := (BuildContext{}).CurrentPackage(); ok {
		t.Error("zero BuildContext should not resolve a package")
	}
	id, ok := BuildContext{Env: types.EnvTest, Package: "web"}.CurrentPackage()
	if !ok || id != "web" {
		t.Errorf("CurrentPackage() = %q, %v", id, ok)
	}
}

func TestApplications_CurrentPackageMatchesClosure(t *testing.T) {
	t.Parallel()

	w := New(newStatic(t, webGraph(t)))
	want, err := w.Closure(ids("db"))
	if err != nil {
		t.Fatal(err)
	}

	// The registry must be ignored when a current package resolves.
	got, err := w.Applications(BuildContext{Package: "db"}, failingRegistry{})
	if err != nil {
		t.Fatalf("Applications() error: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("Applications() = %v, want Closure([db]) = %v", got, want)
	}
}

func TestApplications_RegistryFallback(t *testing.T) {
	t.Parallel()

	w := New(newStatic(t, webGraph(t)))
	reg := StaticRegistry(ids("kernel", "pool", "stdlib", "web"))

	got, err := w.Applications(BuildContext{Env: types.EnvProduction}, reg)
	if err != nil {
		t.Fatalf("Applications() error: %v", err)
	}
	want, err := w.Closure(ids("pool", "web"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("Applications() = %v, want %v", got, want)
	}
	if slices.Contains(got, "kernel") {
		t.Errorf("active system package leaked into seeds: %v", got)
	}
}

func TestApplications_NilCollaborators(t *testing.T) {
	t.Parallel()

	w := New(newStatic(t, webGraph(t)))
	got, err := w.Applications(nil, nil)
	if err != nil || len(got) != 0 {
		t.Errorf("Applications(nil, nil) = %v, %v; want empty", got, err)
	}

	got, err = w.Applications(nil, StaticRegistry(ids("pool")))
	if err != nil || !slices.Equal(got, ids("pool")) {
		t.Errorf("Applications(nil, [pool]) = %v, %v", got, err)
	}
}

func TestApplications_RegistryFailure(t *testing.T) {
	t.Parallel()

	w := New(newStatic(t, webGraph(t)))
	if _, err := w.Applications(BuildContext{}, failingRegistry{}); !errors.Is(err, errDiskGone) {
		t.Errorf("expected registry failure, got %v", err)
	}
	if _, err := w.Modules(BuildContext{}, failingRegistry{}); !errors.Is(err, errDiskGone) {
		t.Errorf("expected registry failure, got %v", err)
	}
}

func TestModules_NoSeed(t *testing.T) {
	t.Parallel()

	acc := newStatic(t, webGraph(t))
	w := New(acc)

	got, err := w.Modules(BuildContext{Package: "http"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := mods("Http.Server", "Http.Conn"); !slices.Equal(got, want) {
		t.Errorf("Modules(http) = %v, want %v", got, want)
	}

	// Every known package is active; system packages drop out of the seeds.
	got, err = w.Modules(BuildContext{}, ListerRegistry{Lister: acc})
	if err != nil {
		t.Fatal(err)
	}
	// Seeds sorted by name: db, http, pool, web.
	want := mods("Db.Repo", "Http.Server", "Http.Conn", "Pool", "Web", "Web.Router")
	if !slices.Equal(got, want) {
		t.Errorf("Modules(registry) = %v, want %v", got, want)
	}
}

func TestStaticRegistry_ReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := StaticRegistry(ids("a"))
	got, _ := reg.ActivePackages()
	got[0] = "b"
	if reg[0] != "a" {
		t.Error("ActivePackages exposed the backing slice")
	}
}
