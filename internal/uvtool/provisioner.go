// SPDX-License-Identifier: MPL-2.0

package uvtool

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"pywand-cli/internal/platform"
)

// BinaryBaseName is the tool's canonical binary name before the platform
// executable suffix is applied.
const BinaryBaseName = "uv"

// Provenance values for an acquired Handle.
const (
	// ProvenanceSystem means the binary was found on the system PATH.
	ProvenanceSystem Provenance = iota
	// ProvenanceEmbedded means the binary came from the embedded
	// resource table (or was already cached from a prior extraction).
	ProvenanceEmbedded
	// ProvenanceDownloaded means the binary was installed by the
	// network installer script.
	ProvenanceDownloaded
)

type (
	// Provenance records how a Handle's binary was acquired.
	Provenance int

	// Handle is an absolute path to a usable uv executable plus its
	// provenance. It is re-derived each invocation; only the extracted
	// binary itself persists on disk as a cache.
	Handle struct {
		Path       string
		Provenance Provenance
	}

	// Provisioner acquires the uv executable. The lookup and installer
	// fields are test seams; production construction via New wires the
	// real implementations.
	Provisioner struct {
		facts     platform.Facts
		resources ResourceTable
		cacheDir  string

		lookup       func(ctx context.Context, binary string) (string, error)
		runInstaller func(ctx context.Context, scriptPath string, env []string) error
		fetch        func(ctx context.Context, url, dest string) error

		// handle caches the acquisition result for the process lifetime.
		handle *Handle
	}

	// Option configures a Provisioner during construction.
	Option func(*Provisioner)
)

// String returns a human-readable provenance name.
func (p Provenance) String() string {
	switch p {
	case ProvenanceSystem:
		return "system"
	case ProvenanceEmbedded:
		return "embedded"
	case ProvenanceDownloaded:
		return "downloaded"
	default:
		return "unknown"
	}
}

// WithCacheDir overrides the per-user cache directory.
func WithCacheDir(dir string) Option {
	return func(p *Provisioner) { p.cacheDir = dir }
}

// WithLookup overrides the system PATH lookup.
func WithLookup(fn func(ctx context.Context, binary string) (string, error)) Option {
	return func(p *Provisioner) { p.lookup = fn }
}

// WithInstaller overrides the installer-script execution.
func WithInstaller(fn func(ctx context.Context, scriptPath string, env []string) error) Option {
	return func(p *Provisioner) { p.runInstaller = fn }
}

// WithFetcher overrides the installer-script download.
func WithFetcher(fn func(ctx context.Context, url, dest string) error) Option {
	return func(p *Provisioner) { p.fetch = fn }
}

// New creates a Provisioner for the given platform and resource table.
func New(facts platform.Facts, resources ResourceTable, opts ...Option) *Provisioner {
	p := &Provisioner{
		facts:     facts,
		resources: resources,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.lookup == nil {
		p.lookup = func(ctx context.Context, binary string) (string, error) {
			return systemLookup(ctx, facts, binary)
		}
	}
	if p.runInstaller == nil {
		p.runInstaller = func(ctx context.Context, scriptPath string, env []string) error {
			return runInstallerScript(ctx, facts, scriptPath, env)
		}
	}
	if p.fetch == nil {
		p.fetch = fetchToFile
	}
	return p
}

// EnsureAvailable returns a Handle for a usable uv executable, acquiring
// one if necessary. Three strategies are tried in order within a single
// call (system lookup, embedded extraction, network install) and the
// first success short-circuits the rest. The result is cached for the
// process lifetime.
func (p *Provisioner) EnsureAvailable(ctx context.Context) (Handle, error) {
	if p.handle != nil {
		return *p.handle, nil
	}

	binary := p.facts.ExecutableName(BinaryBaseName)
	var attempts []error

	// Strategy 1: system PATH lookup via which/where.
	path, lookupErr := p.lookup(ctx, binary)
	if lookupErr == nil {
		slog.Debug("found uv on system", "path", path)
		return p.remember(Handle{Path: path, Provenance: ProvenanceSystem}), nil
	}
	attempts = append(attempts, fmt.Errorf("system lookup: %w", lookupErr))

	// Strategy 2: embedded extraction into the per-user cache. Skipped
	// when a previous invocation already extracted the binary.
	cachePath, err := p.cachedBinaryPath(binary)
	if err != nil {
		attempts = append(attempts, fmt.Errorf("resolving cache: %w", err))
		return Handle{}, &AcquisitionError{Attempts: attempts}
	}

	if _, statErr := os.Stat(cachePath); statErr == nil {
		slog.Debug("reusing cached uv", "path", cachePath)
		return p.remember(Handle{Path: cachePath, Provenance: ProvenanceEmbedded}), nil
	}

	extractErr := p.extractEmbedded(binary, cachePath)
	if extractErr == nil {
		return p.remember(Handle{Path: cachePath, Provenance: ProvenanceEmbedded}), nil
	}
	attempts = append(attempts, fmt.Errorf("embedded extraction: %w", extractErr))

	// Strategy 3: download and run the official installer script,
	// directed at the cache bin directory.
	installErr := p.networkInstall(ctx, cachePath)
	if installErr == nil {
		return p.remember(Handle{Path: cachePath, Provenance: ProvenanceDownloaded}), nil
	}
	attempts = append(attempts, fmt.Errorf("network install: %w", installErr))

	return Handle{}, &AcquisitionError{Attempts: attempts}
}

// remember caches the handle for subsequent EnsureAvailable calls.
func (p *Provisioner) remember(h Handle) Handle {
	p.handle = &h
	return h
}

// CacheDir returns the resolved cache directory, defaulting to
// <home>/.pywand or a randomized temp directory when no home directory
// is resolvable.
func (p *Provisioner) CacheDir() (string, error) {
	if p.cacheDir != "" {
		return p.cacheDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		tmp, tmpErr := os.MkdirTemp("", "pywand-")
		if tmpErr != nil {
			return "", fmt.Errorf("no home directory and no temp directory: %w", tmpErr)
		}
		slog.Warn("home directory unavailable, using temp cache", "dir", tmp, "cause", err)
		p.cacheDir = tmp
		return tmp, nil
	}

	p.cacheDir = filepath.Join(home, ".pywand")
	return p.cacheDir, nil
}

// cachedBinaryPath resolves <cache>/bin/<binary>, creating the bin
// directory if needed.
func (p *Provisioner) cachedBinaryPath(binary string) (string, error) {
	cacheDir, err := p.CacheDir()
	if err != nil {
		return "", err
	}
	binDir := filepath.Join(cacheDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache bin directory: %w", err)
	}
	return filepath.Join(binDir, binary), nil
}

// extractEmbedded writes the platform-matched embedded blob to dest and
// marks it executable. This path never consults the network.
func (p *Provisioner) extractEmbedded(binary, dest string) error {
	key := p.facts.ResourceKey(binary)
	blob, ok := p.resources.Lookup(key)
	if !ok {
		return fmt.Errorf("no embedded binary for %s", key)
	}

	if err := os.WriteFile(dest, blob, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if !p.facts.IsWindows() {
		if err := os.Chmod(dest, 0o755); err != nil {
			return fmt.Errorf("marking %s executable: %w", dest, err)
		}
	}

	slog.Info("extracted embedded uv", "path", dest, "size", humanize.Bytes(uint64(len(blob))))
	return nil
}

// systemLookup resolves binary through the platform's executable-search
// utility: where on Windows, which elsewhere. A missing utility is
// indistinguishable from "tool not found" and triggers the same
// fallback.
func systemLookup(ctx context.Context, facts platform.Facts, binary string) (string, error) {
	finder := "which"
	if facts.IsWindows() {
		finder = "where"
	}

	out, err := exec.CommandContext(ctx, finder, binary).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", finder, binary, err)
	}

	// where may print multiple matches; the first line wins.
	line, _, _ := bytes.Cut(bytes.TrimSpace(out), []byte("\n"))
	path := string(bytes.TrimSpace(line))
	if path == "" {
		return "", fmt.Errorf("%s %s: empty result", finder, binary)
	}
	return path, nil
}
