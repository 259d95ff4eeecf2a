// SPDX-License-Identifier: MPL-2.0

// Package pkgmanifest reads package manifests: for each package, the list of
// packages it directly depends on and the modules it owns.
//
// Accessor is the read-only contract consumed by the introspection walker.
// Two implementations ship with the package:
//
//   - Static serves manifests held in memory.
//   - DirStore loads <root>/<package>/package.cue (or package.toml) on first
//     access and caches the outcome, including "not found", for the lifetime
//     of the store.
//
// Both are safe for concurrent readers.
//
// A manifest in CUE form:
//
//	name:    "web"
//	deps:    ["http", "logger"]
//	modules: ["Web.Router", "Web.Endpoint"]
//	config:  {poolSize: 10}
//	env: production: {poolSize: 50}
package pkgmanifest
