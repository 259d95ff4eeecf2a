// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is looked up in the --config path, then <ConfigDir>/config.cue
// (XDG_CONFIG_HOME on Linux, ~/Library/Application Support on macOS, %APPDATA%
// on Windows), then ./extkit.cue. Files are validated against the embedded
// config_schema.cue, and EXTKIT_* environment variables override file values.
package config
