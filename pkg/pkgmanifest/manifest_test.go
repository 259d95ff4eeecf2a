// SPDX-License-Identifier: MPL-2.0

package pkgmanifest

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/extkit/extkit/pkg/types"
)

func TestParseCUE(t *testing.T) {
	t.Parallel()

	data := []byte(`
name:    "web"
deps:    ["http", "logger"]
modules: ["Web.Router", "Web.Endpoint"]
config:  {poolSize: 10, Repo: {maxConns: 2}}
env: production: {poolSize: 50}
`)
	m, err := ParseCUE(data, "web/package.cue")
	if err != nil {
		t.Fatalf("ParseCUE() error: %v", err)
	}
	if m.Name != "web" || m.FilePath != "web/package.cue" {
		t.Errorf("unexpected name/path: %q %q", m.Name, m.FilePath)
	}
	if !slices.Equal(m.Deps, []types.PackageID{"http", "logger"}) {
		t.Errorf("Deps = %v", m.Deps)
	}
	if !slices.Equal(m.Modules, []types.ModuleID{"Web.Router", "Web.Endpoint"}) {
		t.Errorf("Modules = %v", m.Modules)
	}
}

func TestParseCUE_Minimal(t *testing.T) {
	t.Parallel()

	m, err := ParseCUE([]byte(`name: "leaf"`), "leaf/package.cue")
	if err != nil {
		t.Fatalf("ParseCUE() error: %v", err)
	}
	if len(m.Deps) != 0 || len(m.Modules) != 0 {
		t.Errorf("expected no deps or modules, got %v %v", m.Deps, m.Modules)
	}
}

func TestParseCUE_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"missing name", `deps: []`},
		{"name with slash", `name: "a/b"`},
		{"module with space", `name: "a", modules: ["A B"]`},
		{"unknown field", `name: "a", version: "1.0"`},
		{"unknown env", `name: "a", env: staging: {x: 1}`},
		{"duplicate dep", `name: "a", deps: ["b", "b"]`},
		{"not cue", `name: [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseCUE([]byte(tt.data), "a/package.cue"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseTOML(t *testing.T) {
	t.Parallel()

	data := []byte(`
name = "db"
deps = ["pool", "logger"]
modules = ["Db.Repo"]

[config]
poolSize = 10

[env.test]
poolSize = 1
`)
	m, err := ParseTOML(data, "db/package.toml")
	if err != nil {
		t.Fatalf("ParseTOML() error: %v", err)
	}
	if m.Name != "db" || !slices.Equal(m.Deps, []types.PackageID{"pool", "logger"}) {
		t.Errorf("unexpected manifest: %+v", m)
	}
	cfg := m.ResolvedConfig(types.EnvTest)
	if fmt.Sprint(cfg["pool_size"]) != "1" {
		t.Errorf("ResolvedConfig(test) pool_size = %v, want 1", cfg["pool_size"])
	}
}

func TestParseTOML_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		is   error
	}{
		{"unknown key", "name = \"a\"\nversion = \"1\"\n", nil},
		{"bad syntax", "name = \n", nil},
		{"empty name", "name = \"\"\n", ErrInvalidManifest},
		{"bad env", "name = \"a\"\n[env.staging]\nx = 1\n", types.ErrInvalidEnv},
		{"dup dep", "name = \"a\"\ndeps = [\"b\", \"b\"]\n", ErrInvalidManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseTOML([]byte(tt.data), "a/package.toml")
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error %v should match %v", err, tt.is)
			}
			if !strings.Contains(err.Error(), "a/package.toml") {
				t.Errorf("error should name the file: %v", err)
			}
		})
	}
}

func TestManifest_ResolvedConfig(t *testing.T) {
	t.Parallel()

	m := Manifest{
		Name: "web",
		Config: map[string]any{
			"poolSize": 10,
			"Repo":     map[string]any{"maxConns": 2, "timeout": 5},
		},
		Env: map[string]map[string]any{
			"production": {"pool_size": 50, "repo": map[string]any{"MaxConns": 20}},
		},
	}

	prod := m.ResolvedConfig(types.EnvProduction)
	if prod["pool_size"] != 50 {
		t.Errorf("production pool_size = %v, want 50", prod["pool_size"])
	}
	repo, ok := prod["repo"].(map[string]any)
	if !ok {
		t.Fatalf("repo should be a map, got %T", prod["repo"])
	}
	if repo["max_conns"] != 20 || repo["timeout"] != 5 {
		t.Errorf("production repo = %v", repo)
	}

	dev := m.ResolvedConfig("")
	if dev["pool_size"] != 10 {
		t.Errorf("default env pool_size = %v, want 10", dev["pool_size"])
	}
	if m.Config["poolSize"] != 10 {
		t.Error("ResolvedConfig must not mutate the manifest")
	}
}

func TestManifest_Validate(t *testing.T) {
	t.Parallel()

	m := Manifest{Name: "", Deps: []types.PackageID{"ok", "bad dep"}, Modules: []types.ModuleID{""}}
	err := m.Validate()
	var invalid *InvalidManifestError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidManifestError, got %T", err)
	}
	if len(invalid.Problems) != 3 {
		t.Errorf("expected 3 problems, got %d: %v", len(invalid.Problems), invalid.Problems)
	}
	if !errors.Is(err, types.ErrInvalidPackageID) || !errors.Is(err, types.ErrInvalidModuleID) {
		t.Errorf("error should expose identifier sentinels: %v", err)
	}

	// Self-dependencies are legal; the walker absorbs them.
	self := Manifest{Name: "loop", Deps: []types.PackageID{"loop"}}
	if err := self.Validate(); err != nil {
		t.Errorf("self dependency rejected: %v", err)
	}
}

func TestManifest_ValidateEnvTagsSorted(t *testing.T) {
	t.Parallel()

	m := Manifest{
		Name: "a",
		Env: map[string]map[string]any{
			"staging":    {"x": 1},
			"production": {"x": 2},
			"qa":         {"x": 3},
		},
	}

	err := m.Validate()
	var invalid *InvalidManifestError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() = %v, want *InvalidManifestError", err)
	}
	if len(invalid.Problems) != 2 {
		t.Fatalf("Problems = %v, want 2 entries", invalid.Problems)
	}
	for i, want := range []string{"env.qa", "env.staging"} {
		if !strings.HasPrefix(invalid.Problems[i].Error(), want) {
			t.Errorf("Problems[%d] = %v, want prefix %q", i, invalid.Problems[i], want)
		}
		if !errors.Is(invalid.Problems[i], types.ErrInvalidEnv) {
			t.Errorf("Problems[%d] should wrap ErrInvalidEnv", i)
		}
	}
}
