// SPDX-License-Identifier: MPL-2.0

// Package maputil provides transforms over the loosely typed maps produced by
// decoding CUE and TOML documents: deep merge, nested get and delete, and key
// rewriting.
//
// Nested maps are expected as map[string]any. Values of other map types are
// treated as opaque leaves, except by StringifyKeys which exists to convert
// them.
package maputil

import "fmt"

// Merge returns a new map holding dst deep-merged with src. On conflicting
// keys src wins, unless both values are maps, in which case they are merged
// recursively. Neither input is modified.
func Merge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = cloneValue(v)
	}
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := out[k].(map[string]any); ok {
				out[k] = Merge(dstMap, srcMap)
				continue
			}
		}
		out[k] = cloneValue(v)
	}
	return out
}

// Get walks path through nested maps and returns the value found there.
// An empty path returns m itself.
func Get(m map[string]any, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Delete removes the value at path in place and reports whether something
// was removed. Intermediate maps left empty are kept.
func Delete(m map[string]any, path ...string) bool {
	if len(path) == 0 {
		return false
	}
	parent, ok := Get(m, path[:len(path)-1]...)
	if !ok {
		return false
	}
	node, ok := parent.(map[string]any)
	if !ok {
		return false
	}
	last := path[len(path)-1]
	if _, ok := node[last]; !ok {
		return false
	}
	delete(node, last)
	return true
}

// AtomizeKeys returns a copy of m with every key, at every depth, rewritten
// through fn. Maps nested in slices are rewritten too. When two keys collapse
// onto the same rewritten key the lexically later original wins.
func AtomizeKeys(m map[string]any, fn func(string) string) map[string]any {
	out := make(map[string]any, len(m))
	winners := make(map[string]string, len(m))
	for k, v := range m {
		nk := fn(k)
		if prev, dup := winners[nk]; dup && prev > k {
			continue
		}
		winners[nk] = k
		out[nk] = atomizeValue(v, fn)
	}
	return out
}

func atomizeValue(v any, fn func(string) string) any {
	switch tv := v.(type) {
	case map[string]any:
		return AtomizeKeys(tv, fn)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = atomizeValue(e, fn)
		}
		return out
	default:
		return v
	}
}

// StringifyKeys converts a map with arbitrary keys into a map[string]any,
// recursively. Non-string keys are rendered with fmt.Sprint.
func StringifyKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key, ok := k.(string)
		if !ok {
			key = fmt.Sprint(k)
		}
		out[key] = stringifyValue(v)
	}
	return out
}

func stringifyValue(v any) any {
	switch tv := v.(type) {
	case map[any]any:
		return StringifyKeys(tv)
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, e := range tv {
			out[k] = stringifyValue(e)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = stringifyValue(e)
		}
		return out
	default:
		return v
	}
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return Merge(tv, nil)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
