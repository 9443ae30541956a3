// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// analyzeCmd reports the discovered dependencies without writing anything.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Scan the project and report its third-party dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := collectDependencies(scanPath)
		if err != nil {
			return err
		}

		fmt.Println(TitleStyle.Render("Dependency analysis"))
		fmt.Printf("  Python files: %d\n", len(project.Files))
		fmt.Printf("  Dependencies: %d\n", project.Deps.Len())

		for _, name := range project.Deps.Names() {
			fmt.Println("  " + ItemStyle.Render(name))
		}
		if project.Deps.Len() == 0 {
			fmt.Println(SubtitleStyle.Render("  no third-party imports found"))
		}
		return nil
	},
}
