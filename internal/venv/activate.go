// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"fmt"
	"os"
	"path/filepath"

	"pywand-cli/internal/platform"
)

// WriteActivationScript emits a one-line wrapper next to the project
// that sources the environment's own activation machinery, exposing the
// environment's binaries on the caller's search path for the rest of
// that shell session. Returns the script path.
func WriteActivationScript(targetDir, envDir string, facts platform.Facts) (string, error) {
	if facts.IsWindows() {
		path := filepath.Join(targetDir, "activate.bat")
		content := fmt.Sprintf("@echo off\r\ncall %s\\Scripts\\activate.bat\r\n", envDir)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		return path, nil
	}

	path := filepath.Join(targetDir, "activate.sh")
	content := fmt.Sprintf("#!/bin/sh\n. %s/bin/activate\n", envDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o755); err != nil {
		return "", fmt.Errorf("marking %s executable: %w", path, err)
	}
	return path, nil
}
