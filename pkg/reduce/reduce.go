// SPDX-License-Identifier: MPL-2.0

// Package reduce implements a lazy, lossy left fold over iterator sequences.
//
// The fold pulls one element at a time, so a sequence backed by I/O is read
// only as far as the reduction needs. The reducer signals control flow through
// its error result:
//
//   - nil continues with the returned accumulator
//   - ErrSkip drops the element, keeping the previous accumulator
//   - ErrHalt stops early and returns the previous accumulator without error
//   - any other error stops and is returned with the previous accumulator
package reduce

import (
	"errors"
	"iter"
)

var (
	// ErrSkip tells Lossy to ignore the current element and continue.
	ErrSkip = errors.New("reduce: skip element")
	// ErrHalt tells Lossy to stop without reporting an error.
	ErrHalt = errors.New("reduce: halt")
)

// Lossy folds seq into acc with fn. See the package documentation for how
// fn's error result steers the fold.
func Lossy[T, A any](seq iter.Seq[T], acc A, fn func(A, T) (A, error)) (A, error) {
	for item := range seq {
		next, err := fn(acc, item)
		switch {
		case err == nil:
			acc = next
		case errors.Is(err, ErrSkip):
			continue
		case errors.Is(err, ErrHalt):
			return acc, nil
		default:
			return acc, err
		}
	}
	return acc, nil
}

// Lossy2 is Lossy over a key/value sequence.
func Lossy2[K, V, A any](seq iter.Seq2[K, V], acc A, fn func(A, K, V) (A, error)) (A, error) {
	for k, v := range seq {
		next, err := fn(acc, k, v)
		switch {
		case err == nil:
			acc = next
		case errors.Is(err, ErrSkip):
			continue
		case errors.Is(err, ErrHalt):
			return acc, nil
		default:
			return acc, err
		}
	}
	return acc, nil
}
