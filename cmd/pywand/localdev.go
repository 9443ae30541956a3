// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pywand-cli/internal/platform"
)

var localdevVersion string

// localdevCmd runs the full local pipeline: manifest, uv, venv, install.
var localdevCmd = &cobra.Command{
	Use:   "localdev",
	Short: "Create a ready-to-use local environment for the project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := localdevVersion
		if version == "" {
			picked, err := pickVersion(platform.Current())
			if err != nil {
				return err
			}
			version = picked
		}

		if err := setupLocalDev(cmd.Context(), scanPath, version); err != nil {
			return err
		}
		fmt.Println(SuccessStyle.Render("Local environment ready."))
		return nil
	},
}

func init() {
	localdevCmd.Flags().StringVar(&localdevVersion, "python", "", "Python version for the environment (default: pick interactively, newest otherwise)")
}
