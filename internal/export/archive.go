// SPDX-License-Identifier: MPL-2.0

package export

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// createArchive packs the staging directory into a gzip-compressed tar
// file at outPath. Entry names are relative to the staging root and use
// forward slashes.
func createArchive(stagingDir, outPath string) (err error) {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating archive file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing archive file: %w", closeErr)
		}
	}()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	walkErr := filepath.WalkDir(stagingDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(stagingDir, path)
		if relErr != nil {
			return relErr
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}

		hdr, hdrErr := tar.FileInfoHeader(info, "")
		if hdrErr != nil {
			return hdrErr
		}
		hdr.Name = filepath.ToSlash(rel)

		if writeErr := tw.WriteHeader(hdr); writeErr != nil {
			return writeErr
		}

		f, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		_, copyErr := io.Copy(tw, f)
		if closeErr := f.Close(); copyErr == nil {
			copyErr = closeErr
		}
		return copyErr
	})
	if walkErr != nil {
		return fmt.Errorf("archiving %s: %w", stagingDir, walkErr)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("finalizing tar stream: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("finalizing gzip stream: %w", err)
	}
	return nil
}
