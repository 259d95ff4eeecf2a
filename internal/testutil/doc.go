// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on error instead
// of returning it: directory and file creation, manifest trees for the
// package manifest store, and config-home isolation.
package testutil
