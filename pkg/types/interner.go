// SPDX-License-Identifier: MPL-2.0

package types

import "sync"

// Interner is an explicit identifier registry. Intern returns one canonical
// string per distinct value for the lifetime of the Interner, so identifiers
// decoded from many manifests share storage. Safe for concurrent use.
type Interner struct {
	mu    sync.RWMutex
	table map[string]string
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]string)}
}

// Intern returns the canonical instance of s.
func (in *Interner) Intern(s string) string {
	in.mu.RLock()
	canon, ok := in.table[s]
	in.mu.RUnlock()
	if ok {
		return canon
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if canon, ok = in.table[s]; ok {
		return canon
	}
	in.table[s] = s
	return s
}

// Package interns a package identifier.
func (in *Interner) Package(id PackageID) PackageID {
	return PackageID(in.Intern(string(id)))
}

// Module interns a module identifier.
func (in *Interner) Module(id ModuleID) ModuleID {
	return ModuleID(in.Intern(string(id)))
}

// Len reports the number of distinct interned values.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.table)
}
