// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for extkit.
//
// Every command handler receives an App, the composition root that owns the
// configuration provider and the output streams. Handlers build a session per
// invocation holding the loaded config, the manifest store, and the walker.
package cmd
