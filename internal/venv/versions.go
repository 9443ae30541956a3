// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"sort"

	"golang.org/x/mod/semver"

	"pywand-cli/internal/platform"
)

// DefaultEnvDir is the conventional project-relative environment
// directory.
const DefaultEnvDir = ".venv"

// fallbackVersion is offered when no catalog entry matches the
// requested platform.
const fallbackVersion = "3.10.11"

// versionCatalog maps "<os>/<arch>" onto the Python versions uv can
// provision for that platform. Export targets (windows7, windows10, ...)
// share the table with the live platforms. An empty arch key matches
// any architecture.
var versionCatalog = map[string][]string{
	"windows/x64":       {"3.8.10", "3.9.13", "3.10.11", "3.11.7", "3.12.1"},
	"windows10/x64":     {"3.8.10", "3.9.13", "3.10.11", "3.11.7", "3.12.1"},
	"windows11/x64":     {"3.8.10", "3.9.13", "3.10.11", "3.11.7", "3.12.1"},
	"windowsserver/x64": {"3.8.10", "3.9.13", "3.10.11", "3.11.7", "3.12.1"},
	"windows/x86":       {"3.8.10", "3.9.13", "3.10.11"},
	"windows10/x86":     {"3.8.10", "3.9.13", "3.10.11"},
	"windows7/x86":      {"3.8.10", "3.9.13", "3.10.11"},
	"windows7/x64":      {"3.8.10", "3.9.13"},
	"macos/x64":         {"3.8.10", "3.9.13", "3.10.11", "3.11.7", "3.12.1"},
	"macos/arm64":       {"3.9.13", "3.10.11", "3.11.7", "3.12.1"},
	"linux/":            {"3.8.10", "3.9.13", "3.10.11", "3.11.7", "3.12.1"},
}

// SupportedVersions returns the catalog versions for the given platform,
// newest first. Versions are immutable once selected for a run; the
// returned slice is a fresh copy each call.
func SupportedVersions(osType, arch string) []string {
	versions, ok := versionCatalog[osType+"/"+arch]
	if !ok {
		// Linux builds run the same catalog on every architecture.
		versions, ok = versionCatalog[osType+"/"]
	}
	if !ok {
		return []string{fallbackVersion}
	}

	out := make([]string, len(versions))
	copy(out, versions)
	sort.Slice(out, func(i, j int) bool {
		return semver.Compare("v"+out[i], "v"+out[j]) > 0
	})
	return out
}

// DefaultVersion returns the newest supported version for the platform,
// used when no interactive selection takes place.
func DefaultVersion(facts platform.Facts) string {
	return SupportedVersions(facts.OS, facts.Arch)[0]
}
