// SPDX-License-Identifier: MPL-2.0

package types

// PackageSet is an insertion-ordered set of package identifiers.
// The zero value is ready to use. Not safe for concurrent mutation.
type PackageSet struct {
	order []PackageID
	index map[PackageID]struct{}
}

// NewPackageSet creates a set holding ids in first-occurrence order.
func NewPackageSet(ids ...PackageID) *PackageSet {
	s := &PackageSet{}
	s.Add(ids...)
	return s
}

// Add inserts ids not yet present and returns how many were new.
func (s *PackageSet) Add(ids ...PackageID) int {
	if s.index == nil {
		s.index = make(map[PackageID]struct{}, len(ids))
	}
	added := 0
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.order = append(s.order, id)
		added++
	}
	return added
}

// Has reports whether id is in the set.
func (s *PackageSet) Has(id PackageID) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Len returns the number of elements.
func (s *PackageSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Slice returns a copy of the elements in insertion order.
func (s *PackageSet) Slice() []PackageID {
	if s == nil {
		return []PackageID{}
	}
	out := make([]PackageID, len(s.order))
	copy(out, s.order)
	return out
}

// Without returns ids, in order, minus the members of s.
func (s *PackageSet) Without(ids []PackageID) []PackageID {
	out := make([]PackageID, 0, len(ids))
	for _, id := range ids {
		if !s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
