// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pywand-cli/internal/issue"
	"pywand-cli/internal/platform"
	"pywand-cli/internal/pydeps"
	"pywand-cli/internal/scan"
	"pywand-cli/internal/uvtool"
	"pywand-cli/internal/venv"
)

// projectDeps is the result of scanning a project tree.
type projectDeps struct {
	// Files are the discovered Python source paths.
	Files []string
	// Deps are the normalized third-party dependencies.
	Deps *pydeps.DependencySet
}

// collectDependencies scans root for Python sources and extracts their
// normalized third-party dependencies.
func collectDependencies(root string) (*projectDeps, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project path %q: %w", root, err)
	}
	if info, statErr := os.Stat(abs); statErr != nil || !info.IsDir() {
		return nil, issue.NewContext().
			WithOperation("scan project").
			WithResource(root).
			WithSuggestion("Verify the directory exists").
			WithSuggestion("Pass the project directory with --path").
			Wrap(fmt.Errorf("not a directory: %s", abs)).
			BuildError()
	}

	scanner := scan.New(scan.Options{
		Exclude: scan.CompileExcludes(cfg.Scan.Exclude),
	})
	files := scanner.Python(abs)

	raw := pydeps.Extract(files)
	return &projectDeps{
		Files: files,
		Deps:  pydeps.NormalizeAll(raw),
	}, nil
}

// newToolProvisioner builds the uv provisioner, honoring the configured
// cache directory override.
func newToolProvisioner() *uvtool.Provisioner {
	var opts []uvtool.Option
	if cfg.CacheDir != "" {
		opts = append(opts, uvtool.WithCacheDir(cfg.CacheDir))
	}
	return uvtool.New(platform.Current(), uvtool.DefaultResources, opts...)
}

// ensureTool acquires the uv binary, printing its provenance.
func ensureTool(ctx context.Context) (uvtool.Handle, error) {
	handle, err := newToolProvisioner().EnsureAvailable(ctx)
	if err != nil {
		return uvtool.Handle{}, err
	}
	fmt.Println(SubtitleStyle.Render(fmt.Sprintf("using uv (%s): %s", handle.Provenance, handle.Path)))
	return handle, nil
}

// writeProjectManifest scans the project and writes requirements.txt into it.
// It returns the manifest path and the scan result.
func writeProjectManifest(root string) (string, *projectDeps, error) {
	project, err := collectDependencies(root)
	if err != nil {
		return "", nil, err
	}

	manifest, err := pydeps.WriteManifest(project.Deps, root)
	if err != nil {
		return "", nil, err
	}
	return manifest, project, nil
}

// setupLocalDev runs the full local pipeline for root: write the manifest,
// provision uv, create the virtual environment for version, install the
// manifest, and drop an activation script next to the sources.
func setupLocalDev(ctx context.Context, root, version string) error {
	manifest, project, err := writeProjectManifest(root)
	if err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render("✓ ") + "wrote " + ItemStyle.Render(manifest) +
		fmt.Sprintf(" (%d dependencies from %d files)", project.Deps.Len(), len(project.Files)))

	tool, err := ensureTool(ctx)
	if err != nil {
		return err
	}

	facts := platform.Current()
	provisioner := venv.NewProvisioner(facts)
	envDir := filepath.Join(root, venv.DefaultEnvDir)

	if err := provisioner.CreateEnvironment(ctx, envDir, version, tool); err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render("✓ ") + "created environment " + ItemStyle.Render(envDir) +
		" (python " + version + ")")

	if err := provisioner.InstallDependencies(ctx, manifest, envDir, tool); err != nil {
		return err
	}

	script, err := venv.WriteActivationScript(root, envDir, facts)
	if err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render("✓ ") + "activation script: " + ItemStyle.Render(script))

	return nil
}

// pickVersion chooses the Python version for the current platform,
// prompting when interaction is allowed and defaulting to the newest
// supported version otherwise.
func pickVersion(facts platform.Facts) (string, error) {
	versions := venv.SupportedVersions(facts.OS, facts.Arch)
	if !interactiveAllowed() {
		return versions[0], nil
	}
	return selectString("Python version", versions)
}
