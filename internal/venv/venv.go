// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pywand-cli/internal/platform"
	"pywand-cli/internal/uvtool"
)

type (
	// Provisioner creates environments and installs manifests through an
	// acquired uv handle.
	Provisioner struct {
		facts platform.Facts

		// run is a test seam over Handle.Run.
		run func(ctx context.Context, tool uvtool.Handle, args ...string) error
	}
)

// NewProvisioner creates a Provisioner for the given platform.
func NewProvisioner(facts platform.Facts) *Provisioner {
	return &Provisioner{
		facts: facts,
		run: func(ctx context.Context, tool uvtool.Handle, args ...string) error {
			return tool.Run(ctx, args...)
		},
	}
}

// CreateEnvironment invokes uv's environment-creation subcommand for dir
// with the requested runtime version. A non-zero exit surfaces as
// *uvtool.ExecError carrying the exit code.
func (p *Provisioner) CreateEnvironment(ctx context.Context, dir, version string, tool uvtool.Handle) error {
	slog.Info("creating environment", "dir", dir, "python", version)
	if err := p.run(ctx, tool, "venv", dir, "--python="+version); err != nil {
		return fmt.Errorf("creating environment %s: %w", dir, err)
	}
	return nil
}

// InstallDependencies installs the manifest into the environment,
// pointed at the environment's interpreter. A missing manifest is a
// no-op success (an empty project has nothing to install) and no
// process is spawned.
func (p *Provisioner) InstallDependencies(ctx context.Context, manifestPath, envDir string, tool uvtool.Handle) error {
	if _, err := os.Stat(manifestPath); err != nil {
		slog.Info("no manifest found, skipping dependency install", "path", manifestPath)
		return nil
	}

	python := p.InterpreterPath(envDir)
	slog.Info("installing dependencies", "manifest", manifestPath, "python", python)
	if err := p.run(ctx, tool, "pip", "install", "-r", manifestPath, "--python", python); err != nil {
		return fmt.Errorf("installing dependencies from %s: %w", manifestPath, err)
	}
	return nil
}

// InterpreterPath returns the platform-specific interpreter location
// inside an environment directory.
func (p *Provisioner) InterpreterPath(envDir string) string {
	if p.facts.IsWindows() {
		return filepath.Join(envDir, "Scripts", "python.exe")
	}
	return filepath.Join(envDir, "bin", "python")
}
