// SPDX-License-Identifier: MPL-2.0

package pkgmanifest

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/extkit/extkit/internal/testutil"
	"github.com/extkit/extkit/pkg/types"
)

func TestDirStore_Load(t *testing.T) {
	t.Parallel()

	root := testutil.WriteManifests(t, map[string]string{
		"web/package.cue":   `name: "web", deps: ["db", "logger"], modules: ["Web.Router"]`,
		"db/package.toml":   "name = \"db\"\nmodules = [\"Db.Repo\", \"Db.Pool\"]\n",
		"both/package.cue":  `name: "both", modules: ["FromCUE"]`,
		"both/package.toml": "name = \"both\"\nmodules = [\"FromTOML\"]\n",
		"empty/README":      "no manifest here",
	})
	s := NewDirStore(root)

	deps, found, err := s.Dependencies("web")
	if err != nil || !found || !slices.Equal(deps, []types.PackageID{"db", "logger"}) {
		t.Errorf("Dependencies(web) = %v, %v, %v", deps, found, err)
	}
	mods, found, err := s.Modules("db")
	if err != nil || !found || !slices.Equal(mods, []types.ModuleID{"Db.Repo", "Db.Pool"}) {
		t.Errorf("Modules(db) = %v, %v, %v", mods, found, err)
	}
	mods, _, _ = s.Modules("both")
	if !slices.Equal(mods, []types.ModuleID{"FromCUE"}) {
		t.Errorf("CUE manifest should win over TOML, got %v", mods)
	}

	for _, unknown := range []types.PackageID{"logger", "empty", "../web", "a b", ""} {
		_, found, err := s.Dependencies(unknown)
		if found || err != nil {
			t.Errorf("Dependencies(%q) found=%v err=%v, want unknown", unknown, found, err)
		}
	}

	pkgs, err := s.Packages()
	if err != nil {
		t.Fatalf("Packages() error: %v", err)
	}
	if !slices.Equal(pkgs, []types.PackageID{"both", "db", "web"}) {
		t.Errorf("Packages() = %v", pkgs)
	}
}

func TestDirStore_LoadErrorIsCached(t *testing.T) {
	t.Parallel()

	root := testutil.WriteManifests(t, map[string]string{
		"broken/package.cue": `name: "broken", deps: [1]`,
		"liar/package.cue":   `name: "someone_else"`,
	})
	s := NewDirStore(root)

	_, _, err := s.Dependencies("broken")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrManifestLoad) || loadErr.Package != "broken" {
		t.Errorf("unexpected load error: %v", err)
	}

	// Fixing the file does not change the answer within the store lifetime.
	testutil.MustWriteFile(t, filepath.Join(root, "broken", CUEFileName), `name: "broken"`)
	if _, _, again := s.Dependencies("broken"); !errors.Is(again, ErrManifestLoad) {
		t.Errorf("second query should return the cached failure, got %v", again)
	}

	_, _, err = s.Modules("liar")
	if !errors.Is(err, ErrInvalidManifest) {
		t.Errorf("name mismatch should be ErrInvalidManifest, got %v", err)
	}
}

func TestDirStore_EnsureLoadedOnce(t *testing.T) {
	t.Parallel()

	root := testutil.WriteManifests(t, map[string]string{
		"web/package.cue": `name: "web", deps: ["db"]`,
	})
	s := NewDirStore(root)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if deps, found, err := s.Dependencies("web"); err != nil || !found || len(deps) != 1 {
				t.Errorf("Dependencies(web) = %v, %v, %v", deps, found, err)
			}
		}()
	}
	wg.Wait()

	// Remove the file: the cached manifest keeps answering.
	if err := os.RemoveAll(filepath.Join(root, "web")); err != nil {
		t.Fatal(err)
	}
	if _, found, err := s.Dependencies("web"); !found || err != nil {
		t.Errorf("cached manifest lost: found=%v err=%v", found, err)
	}
}

func TestDirStore_Interning(t *testing.T) {
	t.Parallel()

	root := testutil.WriteManifests(t, map[string]string{
		"a/package.cue": `name: "a", deps: ["shared"]`,
		"b/package.cue": `name: "b", deps: ["shared"]`,
	})
	in := types.NewInterner()
	s := NewDirStore(root, WithInterner(in), WithLogger(nil))

	if _, _, err := s.Dependencies("a"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Dependencies("b"); err != nil {
		t.Fatal(err)
	}
	// a, b, shared
	if in.Len() != 3 {
		t.Errorf("interner holds %d values, want 3", in.Len())
	}
}

func TestDirStore_PackagesMissingRoot(t *testing.T) {
	t.Parallel()

	s := NewDirStore(filepath.Join(t.TempDir(), "missing"))
	if _, err := s.Packages(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if _, found, err := s.Dependencies("web"); found || err != nil {
		t.Errorf("missing root should make packages unknown, got found=%v err=%v", found, err)
	}
}
