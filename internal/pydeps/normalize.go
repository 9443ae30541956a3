// SPDX-License-Identifier: MPL-2.0

package pydeps

import "strings"

// packageAliases maps import-time module names onto their published
// package names where the two differ.
var packageAliases = map[string]string{
	"yaml":    "PyYAML",
	"PIL":     "Pillow",
	"bs4":     "beautifulsoup4",
	"sklearn": "scikit-learn",
}

// noiseTokens are generic English words and numeric literals the import
// pattern can spuriously capture from comments and docstrings.
var noiseTokens = map[string]struct{}{
	"name": {}, "the": {}, "header": {}, "REPL": {}, "code": {},
	"types": {}, "stat": {}, "line": {}, "inline": {}, "another": {},
	"all": {}, "values": {}, "its": {}, "regular": {}, "each": {},
	"within": {}, "working": {}, "source": {}, "on": {}, "what": {},
	"an": {}, "multiple": {}, "being": {}, "that": {}, "this": {},
	"inside": {}, "one": {}, "floats": {}, "those": {},
	"limited_api1": {}, "limited_api_latest": {}, "limited_api2": {},
	"array_interface_testing": {}, "mem_policy": {}, "checks": {},
	"1": {}, "0": {}, "left": {}, "lowest": {}, "pairs": {}, "t2": {},
	"it": {}, "outside": {}, "running": {},
}

// Normalize maps a raw module name onto its installable package name,
// or rejects it as noise. The function is pure and total: every input
// yields either a package name or a definitive rejection.
//
// Resolution order: alias table first, then the rejection filter
// (too short, underscore-prefixed, standard library, known noise),
// then the name itself unchanged.
func Normalize(name string) (string, bool) {
	if pkg, ok := packageAliases[name]; ok {
		return pkg, true
	}

	switch {
	case len(name) <= 1:
		return "", false
	case strings.HasPrefix(name, "_"):
		return "", false
	case IsStandardLibrary(name):
		return "", false
	}
	if _, noisy := noiseTokens[name]; noisy {
		return "", false
	}

	return name, true
}

// NormalizeAll maps a raw extracted set onto the final package-name set,
// dropping rejected candidates. Insertion order is preserved; two raw
// names aliasing onto the same package collapse into one entry at the
// first one's position.
func NormalizeAll(raw *DependencySet) *DependencySet {
	out := NewDependencySet()
	for _, name := range raw.Names() {
		if pkg, ok := Normalize(name); ok {
			out.Add(pkg)
		}
	}
	return out
}
