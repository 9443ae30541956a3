// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// DefaultMaxDepth bounds recursive traversal. Depth counts path segments
// below the scan root, so files directly in the root are at depth 1.
// The bound guards against pathological trees and symlink cycles.
const DefaultMaxDepth = 10

// SourceSuffix is the file extension accepted by the scanner.
const SourceSuffix = ".py"

// excludedDirNames are pruned wherever they appear in the tree. Matching
// is by base name only, never by full path.
var excludedDirNames = map[string]struct{}{
	".git":          {},
	".venv":         {},
	"venv":          {},
	"env":           {},
	"__pycache__":   {},
	"node_modules":  {},
	".idea":         {},
	".vscode":       {},
	"dist":          {},
	"build":         {},
	"target":        {},
	".pytest_cache": {},
}

type (
	// Options configures a scan. The zero value scans with DefaultMaxDepth,
	// the fixed exclusion set, and no progress reporting.
	Options struct {
		// MaxDepth overrides DefaultMaxDepth when positive.
		MaxDepth int
		// Exclude holds extra directory-name patterns to prune, on top of
		// the fixed exclusion set. Patterns match base names only.
		Exclude []glob.Glob
		// Progress, when non-nil, is called once per accepted file with
		// its path. Used by the CLI for spinner/progress output.
		Progress func(path string)
	}

	// Scanner walks directory trees for Python sources.
	Scanner struct {
		opts Options
	}
)

// CompileExcludes turns user-configured pattern strings into globs.
// Invalid patterns are skipped with a warning rather than failing the
// scan; a broken config entry should not make the tool unusable.
func CompileExcludes(patterns []string) []glob.Glob {
	var globs []glob.Glob
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			slog.Warn("ignoring invalid exclude pattern", "pattern", p, "error", err)
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// New creates a Scanner with the given options.
func New(opts Options) *Scanner {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Scanner{opts: opts}
}

// Python returns the Python source files under root in traversal order.
// The ordering follows the directory walk, not lexical sorting.
//
// Unreadable directories and permission-denied entries are skipped with
// a log entry; the scan reports partial results rather than aborting.
// A missing root yields an empty result for the same reason.
func (s *Scanner) Python(root string) []string {
	// The exclusion filter applies to every directory including the root:
	// scanning a tree literally named "build" yields nothing.
	if s.excluded(filepath.Base(filepath.Clean(root))) {
		return nil
	}

	var files []string
	s.walk(root, 0, &files)
	return files
}

// walk descends into dir at the given depth, appending accepted files.
func (s *Scanner) walk(dir string, depth int, files *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("skipping unreadable directory", "dir", dir, "error", err)
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if depth+1 >= s.opts.MaxDepth {
				continue
			}
			if s.excluded(entry.Name()) {
				continue
			}
			s.walk(path, depth+1, files)
			continue
		}

		if filepath.Ext(entry.Name()) != SourceSuffix {
			continue
		}

		*files = append(*files, path)
		if s.opts.Progress != nil {
			s.opts.Progress(path)
		}
	}
}

// excluded reports whether a directory base name is pruned, either by
// the fixed set or by a user-configured pattern.
func (s *Scanner) excluded(name string) bool {
	if _, ok := excludedDirNames[name]; ok {
		return true
	}
	for _, g := range s.opts.Exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}
