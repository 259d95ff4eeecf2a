// SPDX-License-Identifier: MPL-2.0

// Package introspect discovers which packages and modules make up an
// application by walking the declared dependency graph.
//
// A Walker performs a breadth-first traversal from a seed set, asking a
// pkgmanifest.Accessor for each package's direct dependencies. Every package
// is expanded at most once, so cycles and self-dependencies terminate.
// Packages in the exclusion set (by default DefaultSystemPackages) are never
// queued as discovered dependencies; a package passed explicitly as a seed is
// kept and expanded even if it is in the exclusion set.
//
// Packages the accessor does not know are kept as leaves. The only error a
// traversal returns is one produced by the accessor itself, unchanged.
//
// Without explicit seeds, Applications and Modules derive the seed set from
// an injected build context: the current package when one is resolvable,
// otherwise the active packages reported by a runtime registry, minus the
// exclusion set.
package introspect
