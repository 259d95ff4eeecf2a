// SPDX-License-Identifier: MPL-2.0

package types

import (
	"slices"
	"sync"
	"testing"
)

func TestPackageSet_InsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewPackageSet("b", "a", "b")
	if n := s.Add("c", "a"); n != 1 {
		t.Errorf("Add() = %d, want 1", n)
	}
	if !slices.Equal(s.Slice(), []PackageID{"b", "a", "c"}) {
		t.Errorf("Slice() = %v", s.Slice())
	}
	if !s.Has("c") || s.Has("z") {
		t.Error("Has() returned wrong membership")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestPackageSet_ZeroAndNil(t *testing.T) {
	t.Parallel()

	var zero PackageSet
	zero.Add("x")
	if !zero.Has("x") {
		t.Error("zero value should accept Add")
	}

	var nilSet *PackageSet
	if nilSet.Has("x") || nilSet.Len() != 0 || len(nilSet.Slice()) != 0 {
		t.Error("nil set should behave as empty")
	}
	if got := nilSet.Without([]PackageID{"a"}); !slices.Equal(got, []PackageID{"a"}) {
		t.Errorf("Without() on nil set = %v", got)
	}
}

func TestPackageSet_Without(t *testing.T) {
	t.Parallel()

	s := NewPackageSet("kernel", "stdlib")
	got := s.Without([]PackageID{"web", "kernel", "db", "stdlib"})
	if !slices.Equal(got, []PackageID{"web", "db"}) {
		t.Errorf("Without() = %v, want [web db]", got)
	}
}

func TestInterner(t *testing.T) {
	t.Parallel()

	in := NewInterner()
	a := in.Package("web")
	b := in.Package(PackageID([]byte("web")))
	if a != b {
		t.Fatalf("interned values differ: %q vs %q", a, b)
	}
	in.Module("Web.Router")
	if in.Len() != 2 {
		t.Errorf("Len() = %d, want 2", in.Len())
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in.Intern("shared")
		}()
	}
	wg.Wait()
	if in.Len() != 3 {
		t.Errorf("Len() after concurrent interning = %d, want 3", in.Len())
	}
}
