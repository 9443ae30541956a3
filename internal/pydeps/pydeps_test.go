// SPDX-License-Identifier: MPL-2.0

package pydeps

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestExtractStandardLibraryOnlyYieldsEmptySet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := writeSource(t, dir, "plain.py", "import os\nimport sys\n")

	if got := Extract([]string{f}); got.Len() != 0 {
		t.Errorf("stdlib-only file yielded %v, want empty set", got.Names())
	}
}

func TestExtractDeduplicatesAcrossBatchInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeSource(t, dir, "a.py", "import requests\n")
	b := writeSource(t, dir, "b.py", "import requests\nimport numpy\n")

	got := Extract([]string{a, b}).Names()
	want := []string{"requests", "numpy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractMatchesImportAndFromWithLeadingWhitespace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := "import flask\n    from django import forms\n\tfrom pandas import DataFrame\nx = 1 # import notreally\n"
	f := writeSource(t, dir, "mixed.py", src)

	got := Extract([]string{f}).Names()
	want := []string{"flask", "django", "pandas"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractSkipsUnreadableFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ok := writeSource(t, dir, "ok.py", "import scipy\n")
	missing := filepath.Join(dir, "gone.py")

	got := Extract([]string{missing, ok}).Names()
	if !reflect.DeepEqual(got, []string{"scipy"}) {
		t.Errorf("Extract with unreadable file = %v, want [scipy]", got)
	}
}

func TestNormalizeAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"yaml", "PyYAML"},
		{"bs4", "beautifulsoup4"},
		{"sklearn", "scikit-learn"},
		{"PIL", "Pillow"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := Normalize(tt.in)
			if !ok || got != tt.want {
				t.Errorf("Normalize(%q) = (%q, %v), want (%q, true)", tt.in, got, ok, tt.want)
			}
		})
	}
}

func TestNormalizeRejections(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"_", "a", "the", "_private", "os", "1", ""} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got, ok := Normalize(name); ok {
				t.Errorf("Normalize(%q) = (%q, true), want rejection", name, got)
			}
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"requests", "yaml", "the", "_x", "numpy"} {
		first, okFirst := Normalize(name)
		second, okSecond := Normalize(name)
		if first != second || okFirst != okSecond {
			t.Errorf("Normalize(%q) not deterministic: (%q,%v) vs (%q,%v)", name, first, okFirst, second, okSecond)
		}
	}
}

func TestNormalizePassesOrdinaryNamesThrough(t *testing.T) {
	t.Parallel()

	got, ok := Normalize("requests")
	if !ok || got != "requests" {
		t.Errorf("Normalize(requests) = (%q, %v), want passthrough", got, ok)
	}
}

func TestWriteManifestFormat(t *testing.T) {
	t.Parallel()

	deps := NewDependencySet()
	deps.Add("requests")
	deps.Add("numpy")

	dir := t.TempDir()
	path, err := WriteManifest(deps, dir)
	if err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	if filepath.Base(path) != ManifestName {
		t.Errorf("manifest path = %s, want base %s", path, ManifestName)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if want := "requests\nnumpy\n"; string(content) != want {
		t.Errorf("manifest content = %q, want %q", content, want)
	}
}

func TestWriteManifestOverwritesExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stale := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(stale, []byte("old-content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deps := NewDependencySet()
	deps.Add("flask")
	if _, err := WriteManifest(deps, dir); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	content, _ := os.ReadFile(stale)
	if string(content) != "flask\n" {
		t.Errorf("manifest not overwritten, content = %q", content)
	}
}

func TestWriteManifestUnwritableDirFails(t *testing.T) {
	t.Parallel()

	deps := NewDependencySet()
	deps.Add("flask")
	if _, err := WriteManifest(deps, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("WriteManifest into a missing directory succeeded, want error")
	}
}

func TestPipelineIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "app.py", "import yaml\nimport requests\nimport yaml\n")

	run := func(out string) []byte {
		t.Helper()
		deps := NormalizeAll(Extract([]string{src}))
		path, err := WriteManifest(deps, out)
		if err != nil {
			t.Fatalf("WriteManifest: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		return content
	}

	first := run(t.TempDir())
	second := run(t.TempDir())
	if !bytes.Equal(first, second) {
		t.Errorf("pipeline not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
	if want := "PyYAML\nrequests\n"; string(first) != want {
		t.Errorf("manifest = %q, want %q", first, want)
	}
}
