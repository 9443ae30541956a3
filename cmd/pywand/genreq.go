// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pywand-cli/internal/pydeps"
)

var genreqOutputDir string

// genreqCmd writes the requirements.txt manifest for the project.
var genreqCmd = &cobra.Command{
	Use:   "genreq",
	Short: "Scan the project and write requirements.txt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := collectDependencies(scanPath)
		if err != nil {
			return err
		}

		outDir := genreqOutputDir
		if outDir == "" {
			outDir = scanPath
		}
		manifest, err := pydeps.WriteManifest(project.Deps, outDir)
		if err != nil {
			return err
		}

		fmt.Println(SuccessStyle.Render("✓ ") + "wrote " + ItemStyle.Render(manifest) +
			fmt.Sprintf(" (%d dependencies from %d files)", project.Deps.Len(), len(project.Files)))
		return nil
	},
}

func init() {
	genreqCmd.Flags().StringVarP(&genreqOutputDir, "output", "o", "", "directory to write requirements.txt into (default: the project directory)")
}
