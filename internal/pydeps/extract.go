// SPDX-License-Identifier: MPL-2.0

package pydeps

import (
	"log/slog"
	"os"
	"regexp"

	"github.com/dustin/go-humanize"
)

// importPattern matches import declarations at the start of a line,
// allowing leading whitespace, and captures the first dot-free identifier
// after "import" or "from". Purely lexical, no grammar parsing.
var importPattern = regexp.MustCompile(`(?m)^\s*(?:import|from)\s+([a-zA-Z0-9_]+)`)

// Extract reads each file and collects the external module names imported
// across the whole batch, deduplicated in first-seen order. Names from
// the standard-library table are discarded immediately.
//
// Unreadable files are skipped with a log entry; a single bad file must
// not abort the batch.
func Extract(files []string) *DependencySet {
	raw := NewDependencySet()

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			slog.Warn("skipping unreadable source file", "file", file, "error", err)
			continue
		}
		slog.Debug("extracting imports", "file", file, "size", humanize.Bytes(uint64(len(content))))

		for _, match := range importPattern.FindAllSubmatch(content, -1) {
			name := string(match[1])
			if IsStandardLibrary(name) {
				continue
			}
			raw.Add(name)
		}
	}

	return raw
}
