// SPDX-License-Identifier: MPL-2.0

// Package platform supplies operating-system family and CPU architecture
// facts as the opaque strings used in resource keys, version-catalog
// lookups, and export bundle names.
package platform
