// SPDX-License-Identifier: MPL-2.0

// Package scan walks a directory tree and collects Python source files,
// pruning well-known noise directories (version control, virtualenvs,
// caches, IDE metadata, build output) by base name at any depth.
package scan
