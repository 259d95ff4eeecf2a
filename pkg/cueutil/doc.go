// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the CUE decoding flow shared by package manifests and
// the extkit configuration file:
//
//  1. compile the embedded schema
//  2. compile the user document and unify it with the schema definition
//  3. validate and decode into a Go value
//
// Errors carry the file name and a JSON-style path to the offending field,
// e.g. "web/package.cue: deps[1]: conflicting values".
package cueutil
