// SPDX-License-Identifier: MPL-2.0

package uvtool

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

//nolint:gochecknoglobals // Test seam for exec.CommandContext.
var commandContext = exec.CommandContext

// Run invokes the tool with the given arguments, streaming stdio to the
// caller's terminal. The call blocks until the child process exits. A
// non-zero exit is surfaced as *ExecError carrying the exit code.
func (h Handle) Run(ctx context.Context, args ...string) error {
	cmd := commandContext(ctx, h.Path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecError{Args: args, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("invoking uv: %w", err)
	}
	return nil
}
