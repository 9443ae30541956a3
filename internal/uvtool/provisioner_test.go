// SPDX-License-Identifier: MPL-2.0

package uvtool

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"pywand-cli/internal/platform"
)

var linuxFacts = platform.Facts{OS: platform.OSLinux, Arch: platform.ArchX64}

// failingLookup simulates "uv not on PATH".
func failingLookup(context.Context, string) (string, error) {
	return "", errors.New("not found")
}

// failOnNetwork fails the test if any network strategy runs.
func failOnNetwork(t *testing.T) Option {
	t.Helper()
	return WithFetcher(func(context.Context, string, string) error {
		t.Fatal("network fetch invoked, want short-circuit before network fallback")
		return nil
	})
}

func TestEnsureAvailableSystemLookupWins(t *testing.T) {
	t.Parallel()

	p := New(linuxFacts, MapResources{},
		WithCacheDir(t.TempDir()),
		WithLookup(func(context.Context, string) (string, error) {
			return "/usr/bin/uv", nil
		}),
		failOnNetwork(t),
	)

	h, err := p.EnsureAvailable(context.Background())
	if err != nil {
		t.Fatalf("EnsureAvailable: %v", err)
	}
	if h.Path != "/usr/bin/uv" || h.Provenance != ProvenanceSystem {
		t.Errorf("handle = %+v, want system /usr/bin/uv", h)
	}
}

func TestEnsureAvailableFallsBackToEmbeddedWithoutNetwork(t *testing.T) {
	t.Parallel()

	cache := t.TempDir()
	resources := MapResources{"linux-x64/uv": []byte("fake-binary")}

	p := New(linuxFacts, resources,
		WithCacheDir(cache),
		WithLookup(failingLookup),
		failOnNetwork(t),
		WithInstaller(func(context.Context, string, []string) error {
			t.Fatal("installer invoked, want embedded extraction")
			return nil
		}),
	)

	h, err := p.EnsureAvailable(context.Background())
	if err != nil {
		t.Fatalf("EnsureAvailable: %v", err)
	}
	if h.Provenance != ProvenanceEmbedded {
		t.Errorf("provenance = %v, want embedded", h.Provenance)
	}

	want := filepath.Join(cache, "bin", "uv")
	if h.Path != want {
		t.Errorf("path = %s, want %s", h.Path, want)
	}
	content, err := os.ReadFile(h.Path)
	if err != nil || string(content) != "fake-binary" {
		t.Errorf("extracted content = %q, %v", content, err)
	}
	info, err := os.Stat(h.Path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Error("extracted binary is not executable")
	}
}

func TestEnsureAvailableReusesCachedBinary(t *testing.T) {
	t.Parallel()

	cache := t.TempDir()
	binDir := filepath.Join(cache, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "uv"), []byte("cached"), 0o755); err != nil {
		t.Fatal(err)
	}

	var lookups int
	p := New(linuxFacts, MapResources{}, // empty table: cache must win
		WithCacheDir(cache),
		WithLookup(func(context.Context, string) (string, error) {
			lookups++
			return "", errors.New("not found")
		}),
		failOnNetwork(t),
	)

	h, err := p.EnsureAvailable(context.Background())
	if err != nil {
		t.Fatalf("EnsureAvailable: %v", err)
	}
	if h.Provenance != ProvenanceEmbedded {
		t.Errorf("provenance = %v, want embedded (cached)", h.Provenance)
	}

	// Second call must return the process-cached handle without
	// re-running the lookup.
	if _, err := p.EnsureAvailable(context.Background()); err != nil {
		t.Fatalf("second EnsureAvailable: %v", err)
	}
	if lookups != 1 {
		t.Errorf("lookup ran %d times, want 1", lookups)
	}
}

func TestEnsureAvailableNetworkFallback(t *testing.T) {
	t.Parallel()

	cache := t.TempDir()
	var fetchedURL string

	p := New(linuxFacts, MapResources{},
		WithCacheDir(cache),
		WithLookup(failingLookup),
		WithFetcher(func(_ context.Context, url, dest string) error {
			fetchedURL = url
			return os.WriteFile(dest, []byte("#!/bin/sh\n"), 0o644)
		}),
		WithInstaller(func(_ context.Context, _ string, env []string) error {
			// The installer drops the binary where the env var points.
			for _, e := range env {
				const prefix = installDirEnv + "="
				if len(e) > len(prefix) && e[:len(prefix)] == prefix {
					return os.WriteFile(filepath.Join(e[len(prefix):], "uv"), []byte("dl"), 0o755)
				}
			}
			t.Fatalf("%s not present in installer env", installDirEnv)
			return nil
		}),
	)

	h, err := p.EnsureAvailable(context.Background())
	if err != nil {
		t.Fatalf("EnsureAvailable: %v", err)
	}
	if h.Provenance != ProvenanceDownloaded {
		t.Errorf("provenance = %v, want downloaded", h.Provenance)
	}
	if fetchedURL != installerURLUnix {
		t.Errorf("fetched %s, want %s", fetchedURL, installerURLUnix)
	}
}

func TestEnsureAvailableAllStrategiesExhausted(t *testing.T) {
	t.Parallel()

	p := New(linuxFacts, MapResources{},
		WithCacheDir(t.TempDir()),
		WithLookup(failingLookup),
		WithFetcher(func(context.Context, string, string) error {
			return errors.New("network down")
		}),
	)

	_, err := p.EnsureAvailable(context.Background())
	if err == nil {
		t.Fatal("EnsureAvailable succeeded with every strategy failing")
	}
	if !errors.Is(err, ErrToolUnavailable) {
		t.Errorf("error %v does not match ErrToolUnavailable", err)
	}

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("error %T is not *AcquisitionError", err)
	}
	if len(acqErr.Attempts) != 3 {
		t.Errorf("recorded %d attempts, want 3", len(acqErr.Attempts))
	}
}

func TestEnsureAvailableNetworkInstallMissingBinaryFails(t *testing.T) {
	t.Parallel()

	p := New(linuxFacts, MapResources{},
		WithCacheDir(t.TempDir()),
		WithLookup(failingLookup),
		WithFetcher(func(_ context.Context, _ string, dest string) error {
			return os.WriteFile(dest, []byte("#!/bin/sh\n"), 0o644)
		}),
		// Installer runs cleanly but produces nothing.
		WithInstaller(func(context.Context, string, []string) error { return nil }),
	)

	if _, err := p.EnsureAvailable(context.Background()); !errors.Is(err, ErrToolUnavailable) {
		t.Errorf("EnsureAvailable = %v, want ErrToolUnavailable", err)
	}
}

func TestFSResourcesLookup(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"linux-x64/uv": &fstest.MapFile{Data: []byte("bin")},
	}
	table := NewFSResources(fsys)

	if blob, ok := table.Lookup("linux-x64/uv"); !ok || string(blob) != "bin" {
		t.Errorf("Lookup hit = (%q, %v), want (bin, true)", blob, ok)
	}
	if _, ok := table.Lookup("windows-x64/uv.exe"); ok {
		t.Error("Lookup miss reported ok")
	}
}

func TestWindowsBinaryNameAndResourceKey(t *testing.T) {
	t.Parallel()

	winFacts := platform.Facts{OS: platform.OSWindows, Arch: platform.ArchX64}
	resources := MapResources{"windows-x64/uv.exe": []byte("exe")}

	cache := t.TempDir()
	p := New(winFacts, resources,
		WithCacheDir(cache),
		WithLookup(failingLookup),
		failOnNetwork(t),
	)

	h, err := p.EnsureAvailable(context.Background())
	if err != nil {
		t.Fatalf("EnsureAvailable: %v", err)
	}
	if filepath.Base(h.Path) != "uv.exe" {
		t.Errorf("binary name = %s, want uv.exe", filepath.Base(h.Path))
	}
}
