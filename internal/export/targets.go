// SPDX-License-Identifier: MPL-2.0

package export

import "pywand-cli/internal/platform"

type (
	// Target describes an offline-export destination platform. OSType
	// and Arch feed the version catalog and the bundle name; Label is
	// what the user picks from.
	Target struct {
		Label  string
		OSType string
		Arch   string
	}
)

// Targets returns the supported export destinations in menu order.
func Targets() []Target {
	return []Target{
		{Label: "Windows 7 (32-bit)", OSType: "windows7", Arch: platform.ArchX86},
		{Label: "Windows 7 (64-bit)", OSType: "windows7", Arch: platform.ArchX64},
		{Label: "Windows 10 (32-bit)", OSType: "windows10", Arch: platform.ArchX86},
		{Label: "Windows 10 (64-bit)", OSType: "windows10", Arch: platform.ArchX64},
		{Label: "Windows 11 (64-bit)", OSType: "windows11", Arch: platform.ArchX64},
		{Label: "Windows Server (64-bit)", OSType: "windowsserver", Arch: platform.ArchX64},
	}
}
