// SPDX-License-Identifier: MPL-2.0

package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"pywand-cli/internal/pydeps"
)

// BundleOptions describes one export bundle.
type BundleOptions struct {
	// Files are the Python source paths to include, as returned by the
	// scanner.
	Files []string
	// Root is the scan root; source paths are stored in the archive
	// relative to it.
	Root string
	// Deps is the normalized dependency set written to the bundle
	// manifest.
	Deps *pydeps.DependencySet
	// Target is the destination platform.
	Target Target
	// Version is the Python version the bundle targets.
	Version string
	// OutputDir is where the archive is written. Empty means the
	// current directory.
	OutputDir string
}

// ArchiveName returns the bundle file name for a target platform and
// Python version.
func ArchiveName(t Target, version string) string {
	return fmt.Sprintf("pywand_export_%s_%s_%s.tar.gz",
		t.OSType, t.Arch, strings.ReplaceAll(version, ".", "_"))
}

// Bundle stages the sources, manifest, setup scripts and README in a
// temporary directory and packs them into a tar.gz archive. It returns
// the archive path.
func Bundle(opts BundleOptions) (string, error) {
	staging, err := os.MkdirTemp("", "pywand-export-")
	if err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(staging); rmErr != nil {
			slog.Warn("could not remove staging directory", "dir", staging, "error", rmErr)
		}
	}()

	if err := stageSources(staging, opts.Root, opts.Files); err != nil {
		return "", err
	}

	if _, err := pydeps.WriteManifest(opts.Deps, staging); err != nil {
		return "", err
	}

	if err := writeSetupScripts(staging, opts.Version, opts.Target.OSType, opts.Target.Arch); err != nil {
		return "", err
	}
	if err := writeReadme(staging, opts.Version, opts.Target.Label); err != nil {
		return "", err
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	outPath := filepath.Join(outDir, ArchiveName(opts.Target, opts.Version))
	if err := createArchive(staging, outPath); err != nil {
		return "", err
	}

	if info, statErr := os.Stat(outPath); statErr == nil {
		slog.Info("export bundle created",
			"path", outPath,
			"size", humanize.Bytes(uint64(info.Size())),
			"sources", len(opts.Files),
			"dependencies", opts.Deps.Len())
	}
	return outPath, nil
}

// stageSources copies the source files under <staging>/src, preserving
// their layout relative to root. Files outside root keep only their
// base name.
func stageSources(staging, root string, files []string) error {
	srcDir := filepath.Join(staging, "src")
	for _, file := range files {
		rel, relErr := filepath.Rel(root, file)
		if relErr != nil || strings.HasPrefix(rel, "..") {
			rel = filepath.Base(file)
		}

		dest := filepath.Join(srcDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("staging %s: %w", file, err)
		}
		if err := copyFile(file, dest); err != nil {
			return fmt.Errorf("staging %s: %w", file, err)
		}
	}
	return nil
}

func copyFile(src, dest string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
