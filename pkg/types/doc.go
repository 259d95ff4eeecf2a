// SPDX-License-Identifier: MPL-2.0

// Package types defines the identifier value types shared by the manifest
// accessor and the introspection walker: package and module identifiers, the
// build environment tag, an insertion-ordered package set, an explicit
// identifier interning table, and the path and exit-code values used by the
// command line.
//
// This package is a leaf dependency: it imports only the standard library.
package types
