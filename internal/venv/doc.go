// SPDX-License-Identifier: MPL-2.0

// Package venv provisions isolated Python environments through an
// acquired uv handle: environment creation for a chosen runtime version,
// manifest installation against the environment's interpreter, and
// activation-script generation. It also owns the static per-platform
// runtime version catalog.
package venv
