// SPDX-License-Identifier: MPL-2.0

package uvtool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"pywand-cli/internal/platform"
)

const (
	// installerURLUnix is the official uv installer script for
	// Linux/macOS.
	installerURLUnix = "https://astral.sh/uv/install.sh"
	// installerURLWindows is the official uv installer script for
	// Windows.
	installerURLWindows = "https://github.com/astral-sh/uv/releases/latest/download/uv-installer.ps1"

	// installDirEnv directs the installer's install location into the
	// cache bin directory.
	installDirEnv = "UV_INSTALL_PATH"

	// downloadTimeout bounds the installer-script fetch. The script
	// itself runs without a timeout, matching the rest of the tool's
	// blocking external invocations.
	downloadTimeout = 2 * time.Minute
)

// networkInstall downloads the platform installer script into the cache
// directory, marks it executable, and runs it with the install location
// pointed at the cache bin directory. After execution the expected
// binary must exist at dest. No retries: the first failure is final.
func (p *Provisioner) networkInstall(ctx context.Context, dest string) error {
	cacheDir, err := p.CacheDir()
	if err != nil {
		return err
	}

	url := installerURLUnix
	scriptName := "uv-installer.sh"
	if p.facts.IsWindows() {
		url = installerURLWindows
		scriptName = "uv-installer.ps1"
	}
	scriptPath := filepath.Join(cacheDir, scriptName)

	slog.Info("downloading uv installer", "url", url)
	if err := p.fetch(ctx, url, scriptPath); err != nil {
		return fmt.Errorf("downloading installer: %w", err)
	}

	if !p.facts.IsWindows() {
		if err := os.Chmod(scriptPath, 0o755); err != nil {
			return fmt.Errorf("marking installer executable: %w", err)
		}
	}

	env := append(os.Environ(), installDirEnv+"="+filepath.Dir(dest))
	if err := p.runInstaller(ctx, scriptPath, env); err != nil {
		return fmt.Errorf("running installer: %w", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		return fmt.Errorf("installer did not produce %s: %w", dest, err)
	}
	slog.Info("installed uv", "path", dest, "size", humanize.Bytes(uint64(info.Size())))
	return nil
}

// fetchToFile downloads url into dest with a bounded timeout.
func fetchToFile(ctx context.Context, url, dest string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }() // read-only HTTP response body

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if _, err := io.Copy(f, resp.Body); err != nil {
		// Best-effort removal of the partially written script.
		_ = os.Remove(dest)
		return fmt.Errorf("saving %s: %w", dest, err)
	}

	return nil
}

// runInstallerScript executes the downloaded installer: powershell with
// execution policy bypassed on Windows, sh elsewhere. Output streams to
// the user's terminal; the call blocks until the child exits.
func runInstallerScript(ctx context.Context, facts platform.Facts, scriptPath string, env []string) error {
	var cmd *exec.Cmd
	if facts.IsWindows() {
		cmd = exec.CommandContext(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-File", scriptPath)
	} else {
		cmd = exec.CommandContext(ctx, "sh", scriptPath)
	}
	cmd.Env = env
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("installer script %s: %w", scriptPath, err)
	}
	return nil
}
