// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries remediation hints for CLI output, and the issue
// catalog holds Markdown explanations rendered by `extkit explain`.
package issue
