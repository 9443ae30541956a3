// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/pywand/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/pywand/config.cue on macOS, %APPDATA%\pywand\config.cue
// on Windows). The package covers the tool cache location, scan exclusion patterns, and
// UI settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
