// SPDX-License-Identifier: MPL-2.0

package uvtool

import "io/fs"

type (
	// ResourceTable is a read-only lookup of embedded binary blobs keyed
	// by "<os>-<arch>/<binary-name>". The table is supplied to the
	// Provisioner at construction so the acquisition logic stays
	// platform-agnostic and testable with fakes.
	ResourceTable interface {
		Lookup(key string) ([]byte, bool)
	}

	// MapResources is an in-memory ResourceTable.
	MapResources map[string][]byte

	// FSResources adapts an fs.FS (typically an embed.FS subtree laid
	// out as <os>-<arch>/<binary-name>) into a ResourceTable.
	FSResources struct {
		fsys fs.FS
	}
)

// Lookup implements ResourceTable.
func (m MapResources) Lookup(key string) ([]byte, bool) {
	blob, ok := m[key]
	return blob, ok
}

// NewFSResources wraps fsys as a ResourceTable.
func NewFSResources(fsys fs.FS) FSResources {
	return FSResources{fsys: fsys}
}

// Lookup implements ResourceTable. A read failure is indistinguishable
// from an absent entry; the provisioner falls through to the next
// acquisition strategy either way.
func (r FSResources) Lookup(key string) ([]byte, bool) {
	blob, err := fs.ReadFile(r.fsys, key)
	if err != nil {
		return nil, false
	}
	return blob, true
}

// DefaultResources is the table compiled into this binary. Source builds
// carry no embedded uv binaries, so the network fallback covers
// acquisition; release packaging substitutes a populated table.
var DefaultResources ResourceTable = MapResources{}
