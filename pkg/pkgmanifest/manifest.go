// SPDX-License-Identifier: MPL-2.0

package pkgmanifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"slices"

	"github.com/extkit/extkit/pkg/cueutil"
	"github.com/extkit/extkit/pkg/maputil"
	"github.com/extkit/extkit/pkg/reduce"
	"github.com/extkit/extkit/pkg/strcase"
	"github.com/extkit/extkit/pkg/types"

	"github.com/pelletier/go-toml/v2"
)

const (
	// CUEFileName is the manifest file name in CUE form.
	CUEFileName = "package.cue"
	// TOMLFileName is the manifest file name in TOML form.
	TOMLFileName = "package.toml"
)

//go:embed manifest_schema.cue
var manifestSchema string

// Manifest is the declared metadata of one package.
type Manifest struct {
	// Name must match the directory holding the manifest.
	Name types.PackageID `json:"name" toml:"name"`
	// Deps lists direct dependencies in declaration order.
	Deps []types.PackageID `json:"deps,omitempty" toml:"deps,omitempty"`
	// Modules lists owned modules in declaration order.
	Modules []types.ModuleID `json:"modules,omitempty" toml:"modules,omitempty"`
	// Config is the base application configuration.
	Config map[string]any `json:"config,omitempty" toml:"config,omitempty"`
	// Env holds per-environment overrides of Config, keyed by env tag.
	Env map[string]map[string]any `json:"env,omitempty" toml:"env,omitempty"`

	// FilePath is where the manifest was read from (empty for in-memory ones).
	FilePath string `json:"-" toml:"-"`
}

// ParseCUE parses a manifest in CUE form.
func ParseCUE(data []byte, path string) (*Manifest, error) {
	result, err := cueutil.ParseAndDecodeString[Manifest](
		manifestSchema,
		data,
		"#Manifest",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	m := result.Value
	m.FilePath = path
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseTOML parses a manifest in TOML form. Unknown keys are rejected, as the
// closed CUE schema does for CUE manifests.
func ParseTOML(data []byte, path string) (*Manifest, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.FilePath = path
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks identifiers, duplicate dependencies and env tags.
func (m *Manifest) Validate() error {
	var problems []error

	if err := m.Name.Validate(); err != nil {
		problems = append(problems, fmt.Errorf("name: %w", err))
	}

	seen := make(map[types.PackageID]int, len(m.Deps))
	for i, dep := range m.Deps {
		if err := dep.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("deps[%d]: %w", i, err))
			continue
		}
		if first, dup := seen[dep]; dup {
			problems = append(problems, fmt.Errorf("deps[%d]: duplicate of deps[%d] (%q)", i, first, dep))
			continue
		}
		seen[dep] = i
	}

	for i, mod := range m.Modules {
		if err := mod.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("modules[%d]: %w", i, err))
		}
	}

	badEnvs, _ := reduce.Lossy2(maps.All(m.Env), []string{}, func(acc []string, env string, _ map[string]any) ([]string, error) {
		if types.Env(env).Validate() == nil {
			return nil, reduce.ErrSkip
		}
		return append(acc, env), nil
	})
	slices.Sort(badEnvs)
	for _, env := range badEnvs {
		problems = append(problems, fmt.Errorf("env.%s: %w", env, types.Env(env).Validate()))
	}

	if len(problems) > 0 {
		path := m.FilePath
		if path == "" {
			path = string(m.Name)
		}
		return &InvalidManifestError{Path: path, Problems: problems}
	}
	return nil
}

// ResolvedConfig returns the package configuration for env: the base config
// deep-merged with the env overrides. Keys are normalized to snake_case at
// every depth, so poolSize and pool_size name the same setting.
func (m *Manifest) ResolvedConfig(env types.Env) map[string]any {
	base := maputil.AtomizeKeys(m.Config, strcase.Underscore)
	over := maputil.AtomizeKeys(m.Env[string(env.OrDefault())], strcase.Underscore)
	return maputil.Merge(base, over)
}

// intern returns a copy of m whose identifiers come from in.
func (m *Manifest) intern(in *types.Interner) *Manifest {
	out := *m
	out.Name = in.Package(m.Name)
	out.Deps = make([]types.PackageID, len(m.Deps))
	for i, d := range m.Deps {
		out.Deps[i] = in.Package(d)
	}
	out.Modules = make([]types.ModuleID, len(m.Modules))
	for i, mod := range m.Modules {
		out.Modules[i] = in.Module(mod)
	}
	return &out
}
