// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pywand-cli/internal/platform"
	"pywand-cli/internal/uvtool"
	"pywand-cli/internal/venv"
)

// runCmd executes a script inside the project environment, bootstrapping
// the environment first when it does not exist yet.
var runCmd = &cobra.Command{
	Use:   "run SCRIPT [ARGS...]",
	Short: "Run a Python script inside the project environment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		facts := platform.Current()
		envDir := filepath.Join(scanPath, venv.DefaultEnvDir)

		if _, err := os.Stat(envDir); os.IsNotExist(err) {
			version, pickErr := pickVersion(facts)
			if pickErr != nil {
				return pickErr
			}
			if setupErr := setupLocalDev(cmd.Context(), scanPath, version); setupErr != nil {
				return setupErr
			}
		}

		tool, err := ensureTool(cmd.Context())
		if err != nil {
			return err
		}

		interpreter := venv.NewProvisioner(facts).InterpreterPath(envDir)
		uvArgs := append([]string{"run", "--python", interpreter}, args...)
		if err := tool.Run(cmd.Context(), uvArgs...); err != nil {
			var execErr *uvtool.ExecError
			if errors.As(err, &execErr) {
				return &ExitError{Code: execErr.Code, Err: err}
			}
			return err
		}
		return nil
	},
}
