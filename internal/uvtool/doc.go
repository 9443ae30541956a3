// SPDX-License-Identifier: MPL-2.0

// Package uvtool locates or acquires the uv package-manager executable.
//
// Acquisition runs an ordered fallback chain: a system PATH lookup via
// which/where, extraction of a platform-matched embedded binary into the
// per-user cache, and finally downloading and running the official
// installer script directed at the same cache. The first strategy to
// succeed wins; a Handle records the resulting path and its provenance.
package uvtool
