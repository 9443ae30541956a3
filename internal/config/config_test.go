// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)
	return dir
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Verbose {
		t.Error("verbose should default to false")
	}
	if !cfg.UI.Interactive {
		t.Error("interactive should default to true")
	}
	if cfg.UI.Language != "en" {
		t.Errorf("language = %q, want en", cfg.UI.Language)
	}
	if cfg.CacheDir != "" {
		t.Errorf("cache_dir should default to empty, got %q", cfg.CacheDir)
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := useTempConfigDir(t)

	content := `
cache_dir: "/opt/pywand-cache"
scan: exclude: ["generated_*", "*.tmp"]
ui: {
	verbose: true
	language: "ru"
}
`
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CacheDir != "/opt/pywand-cache" {
		t.Errorf("cache_dir = %q", cfg.CacheDir)
	}
	if len(cfg.Scan.Exclude) != 2 || cfg.Scan.Exclude[0] != "generated_*" {
		t.Errorf("scan.exclude = %v", cfg.Scan.Exclude)
	}
	if !cfg.UI.Verbose {
		t.Error("verbose should be true")
	}
	if cfg.UI.Language != "ru" {
		t.Errorf("language = %q", cfg.UI.Language)
	}
	// Unset keys keep their defaults.
	if !cfg.UI.Interactive {
		t.Error("interactive should keep its default")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	useTempConfigDir(t)

	path := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(path, []byte(`ui: verbose: true`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("verbose should be true")
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	useTempConfigDir(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.cue"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "load configuration") {
		t.Fatalf("error should describe the operation: %v", err)
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	dir := useTempConfigDir(t)

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(`ui: verbose: "yes"`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Fatal("expected validation error for non-bool verbose")
	}
}

func TestLoadRejectsInvalidSyntax(t *testing.T) {
	dir := useTempConfigDir(t)

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(`ui: { unterminated`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for invalid CUE syntax")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.UI.Language = "ru"
	cfg.Scan.Exclude = []string{"vendor_*"}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.UI.Language != "ru" {
		t.Errorf("language = %q, want ru", loaded.UI.Language)
	}
	if len(loaded.Scan.Exclude) != 1 || loaded.Scan.Exclude[0] != "vendor_*" {
		t.Errorf("scan.exclude = %v", loaded.Scan.Exclude)
	}
}

func TestGenerateCUEValidatesAgainstSchema(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheDir = "/tmp/cache"
	cfg.Scan.Exclude = []string{"a*", "b*"}

	out := GenerateCUE(cfg)
	if !strings.Contains(out, `cache_dir: "/tmp/cache"`) {
		t.Errorf("missing cache_dir in output:\n%s", out)
	}
	if !strings.Contains(out, `language: "en"`) {
		t.Errorf("missing language in output:\n%s", out)
	}
}
