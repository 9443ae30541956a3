// SPDX-License-Identifier: MPL-2.0

// Package export assembles offline development bundles: the scanned
// Python sources, the generated manifest, target-platform setup and
// activation scripts, and a README, packed into a tar.gz archive named
// after the target OS, architecture, and Python version.
package export
