// SPDX-License-Identifier: MPL-2.0

package pkgmanifest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"syscall"

	"github.com/extkit/extkit/pkg/reduce"
	"github.com/extkit/extkit/pkg/types"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

type (
	// DirStore loads manifests from a directory tree laid out as
	// <root>/<package>/package.cue or <root>/<package>/package.toml.
	//
	// Loading is lazy and happens at most once per package: the first query
	// reads and parses the manifest and every later query, including
	// concurrent ones racing the first, observes the same cached outcome.
	DirStore struct {
		root     string
		interner *types.Interner
		logger   *log.Logger

		mu    sync.RWMutex
		cache map[types.PackageID]loadResult
		group singleflight.Group
	}

	// DirStoreOption configures a DirStore.
	DirStoreOption func(*DirStore)

	loadResult struct {
		manifest *Manifest
		err      error
	}
)

// WithLogger sets the logger used for load tracing.
func WithLogger(logger *log.Logger) DirStoreOption {
	return func(s *DirStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithInterner shares an identifier table between stores.
func WithInterner(in *types.Interner) DirStoreOption {
	return func(s *DirStore) {
		if in != nil {
			s.interner = in
		}
	}
}

// NewDirStore creates a store rooted at root. Nothing is read until the
// first query.
func NewDirStore(root string, opts ...DirStoreOption) *DirStore {
	s := &DirStore{
		root:     root,
		interner: types.NewInterner(),
		logger:   log.New(io.Discard),
		cache:    make(map[types.PackageID]loadResult),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory the store reads from.
func (s *DirStore) Root() string { return s.root }

// Manifest implements Loader. Identifiers that cannot name a directory are
// reported as unknown.
func (s *DirStore) Manifest(id types.PackageID) (*Manifest, bool, error) {
	res := s.ensureLoaded(id)
	if res.err != nil {
		return nil, false, res.err
	}
	return res.manifest, res.manifest != nil, nil
}

// Dependencies implements Accessor.
func (s *DirStore) Dependencies(id types.PackageID) ([]types.PackageID, bool, error) {
	return dependencies(s, id)
}

// Modules implements Accessor.
func (s *DirStore) Modules(id types.PackageID) ([]types.ModuleID, bool, error) {
	return modules(s, id)
}

// Packages implements Lister: every direct subdirectory of the root holding a
// manifest whose name is a valid package identifier.
func (s *DirStore) Packages() ([]types.PackageID, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list packages in %s: %w", s.root, err)
	}

	ids, err := reduce.Lossy(slices.Values(entries), []types.PackageID{}, func(acc []types.PackageID, e fs.DirEntry) ([]types.PackageID, error) {
		if !e.IsDir() {
			return nil, reduce.ErrSkip
		}
		id := types.PackageID(e.Name())
		if id.Validate() != nil {
			return nil, reduce.ErrSkip
		}
		if _, _, ok, err := s.locate(id); err != nil {
			return nil, err
		} else if !ok {
			return nil, reduce.ErrSkip
		}
		return append(acc, s.interner.Package(id)), nil
	})
	if err != nil {
		return nil, fmt.Errorf("list packages in %s: %w", s.root, err)
	}
	return ids, nil
}

// ensureLoaded returns the cached outcome for id, loading it first if needed.
func (s *DirStore) ensureLoaded(id types.PackageID) loadResult {
	s.mu.RLock()
	res, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return res
	}

	v, _, _ := s.group.Do(string(id), func() (any, error) {
		s.mu.RLock()
		cached, ok := s.cache[id]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		loaded := s.load(id)

		s.mu.Lock()
		s.cache[id] = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	return v.(loadResult)
}

func (s *DirStore) load(id types.PackageID) loadResult {
	if id.Validate() != nil {
		s.logger.Debug("package id is not a directory name, treating as unknown", "package", id)
		return loadResult{}
	}

	path, parse, ok, err := s.locate(id)
	if err != nil {
		return loadResult{err: &LoadError{Package: id, Path: filepath.Join(s.root, string(id)), Err: err}}
	}
	if !ok {
		s.logger.Debug("no manifest found", "package", id)
		return loadResult{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return loadResult{err: &LoadError{Package: id, Path: path, Err: err}}
	}

	m, err := parse(data, path)
	if err != nil {
		return loadResult{err: &LoadError{Package: id, Path: path, Err: err}}
	}
	if m.Name != id {
		return loadResult{err: &LoadError{
			Package: id,
			Path:    path,
			Err:     fmt.Errorf("%w: manifest declares name %q", ErrInvalidManifest, m.Name),
		}}
	}

	s.logger.Debug("loaded manifest", "package", id, "path", path, "deps", len(m.Deps), "modules", len(m.Modules))
	return loadResult{manifest: m.intern(s.interner)}
}

// locate finds the manifest file for id. CUE wins over TOML when both exist.
func (s *DirStore) locate(id types.PackageID) (string, func([]byte, string) (*Manifest, error), bool, error) {
	dir := filepath.Join(s.root, string(id))
	candidates := []struct {
		name  string
		parse func([]byte, string) (*Manifest, error)
	}{
		{CUEFileName, ParseCUE},
		{TOMLFileName, ParseTOML},
	}

	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
			continue
		case err != nil:
			return "", nil, false, err
		case info.IsDir():
			continue
		}
		return path, c.parse, true, nil
	}
	return "", nil, false, nil
}
