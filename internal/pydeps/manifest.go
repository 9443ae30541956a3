// SPDX-License-Identifier: MPL-2.0

package pydeps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ManifestName is the fixed manifest filename.
const ManifestName = "requirements.txt"

// WriteManifest serializes the set to <targetDir>/requirements.txt, one
// package name per line in insertion order, no version pins, trailing
// newline after the last entry. An existing file is overwritten
// unconditionally. The caller is responsible for targetDir existing.
//
// Returns the manifest path on success.
func WriteManifest(deps *DependencySet, targetDir string) (string, error) {
	var content strings.Builder
	for _, name := range deps.Names() {
		content.WriteString(name)
		content.WriteString("\n")
	}

	path := filepath.Join(targetDir, ManifestName)
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing manifest %s: %w", path, err)
	}

	return path, nil
}
