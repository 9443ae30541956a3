// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pywand-cli/internal/issue"
	"pywand-cli/internal/platform"
	"pywand-cli/internal/uvtool"
	"pywand-cli/internal/venv"
)

// pipCmd installs packages into the project environment.
var pipCmd = &cobra.Command{
	Use:   "pip PACKAGE...",
	Short: "Install packages into the project environment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		envDir := filepath.Join(scanPath, venv.DefaultEnvDir)
		if _, err := os.Stat(envDir); os.IsNotExist(err) {
			return issue.NewContext().
				WithOperation("install packages").
				WithResource(envDir).
				WithSuggestion("Run 'pywand localdev' to create the environment first").
				Wrap(fmt.Errorf("project environment not found")).
				BuildError()
		}

		tool, err := ensureTool(cmd.Context())
		if err != nil {
			return err
		}

		interpreter := venv.NewProvisioner(platform.Current()).InterpreterPath(envDir)
		uvArgs := append([]string{"pip", "install", "--python", interpreter}, args...)
		if err := tool.Run(cmd.Context(), uvArgs...); err != nil {
			var execErr *uvtool.ExecError
			if errors.As(err, &execErr) {
				return &ExitError{Code: execErr.Code, Err: err}
			}
			return err
		}

		fmt.Println(SuccessStyle.Render("✓ ") + fmt.Sprintf("installed %d package(s)", len(args)))
		return nil
	},
}
