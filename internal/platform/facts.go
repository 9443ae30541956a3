// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS family names as they appear in resource keys and the version catalog.
const (
	OSWindows = "windows"
	OSMacOS   = "macos"
	OSLinux   = "linux"
)

// Architecture names as they appear in resource keys and the version catalog.
const (
	ArchX64     = "x64"
	ArchX86     = "x86"
	ArchARM64   = "arm64"
	ArchUnknown = "unknown"
)

type (
	// Facts holds the operating-system family and CPU architecture of a
	// target platform. The zero value is not meaningful; use Current for
	// the running process or construct explicitly for export targets.
	Facts struct {
		// OS is the operating-system family ("windows", "macos", "linux").
		OS string
		// Arch is the CPU architecture ("x64", "x86", "arm64", "unknown").
		Arch string
	}
)

// Current returns the Facts for the running process, derived from
// runtime.GOOS and runtime.GOARCH.
func Current() Facts {
	return Facts{
		OS:   osFamily(runtime.GOOS),
		Arch: archName(runtime.GOARCH),
	}
}

// IsWindows reports whether the platform is in the Windows family.
func (f Facts) IsWindows() bool {
	return f.OS == OSWindows
}

// ResourceKey builds the lookup key for an embedded binary resource,
// in the form "<os>-<arch>/<binary-name>".
func (f Facts) ResourceKey(binaryName string) string {
	return f.OS + "-" + f.Arch + "/" + binaryName
}

// ExecutableName appends the platform executable suffix to a base name
// ("uv" becomes "uv.exe" on Windows, stays "uv" elsewhere).
func (f Facts) ExecutableName(base string) string {
	if f.IsWindows() {
		return base + ".exe"
	}
	return base
}

// osFamily maps a runtime.GOOS value onto the OS family name. Anything
// that is neither Windows nor macOS is treated as Linux, matching how
// the version catalog groups platforms.
func osFamily(goos string) string {
	switch goos {
	case "windows":
		return OSWindows
	case "darwin":
		return OSMacOS
	default:
		return OSLinux
	}
}

// archName maps a runtime.GOARCH value onto the architecture name used
// in resource keys.
func archName(goarch string) string {
	switch goarch {
	case "amd64":
		return ArchX64
	case "386":
		return ArchX86
	case "arm64":
		return ArchARM64
	default:
		return ArchUnknown
	}
}
