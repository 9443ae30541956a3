// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"pywand-cli/internal/uvtool"
)

// uvCmd forwards its arguments verbatim to the provisioned uv binary.
var uvCmd = &cobra.Command{
	Use:                "uv [ARGS...]",
	Short:              "Run the provisioned uv binary directly",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := ensureTool(cmd.Context())
		if err != nil {
			return err
		}
		if err := tool.Run(cmd.Context(), args...); err != nil {
			var execErr *uvtool.ExecError
			if errors.As(err, &execErr) {
				return &ExitError{Code: execErr.Code, Err: err}
			}
			return err
		}
		return nil
	},
}
