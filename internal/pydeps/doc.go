// SPDX-License-Identifier: MPL-2.0

// Package pydeps turns Python source files into an installable dependency
// manifest. It extracts import declarations with a lexical pattern match,
// filters out standard-library and noise names, maps import names onto
// their published package names, and serializes the result as an
// unpinned requirements.txt.
//
// The import match is deliberately approximate: a line inside a docstring
// that looks like an import will be captured. That lossy profile is part
// of the contract: output must stay comparable across versions.
package pydeps
