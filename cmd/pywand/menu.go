// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"pywand-cli/internal/platform"
)

// Menu entries shown when pywand runs without a subcommand.
const (
	menuAnalyze  = "Analyze dependencies"
	menuGenreq   = "Generate requirements.txt"
	menuLocaldev = "Create local environment"
	menuExport   = "Build export bundle"
	menuExit     = "Exit"
)

// runMenu drives the interactive top-level menu. Without a terminal it
// falls back to printing the dependency report.
func runMenu(ctx context.Context) error {
	if !interactiveAllowed() {
		return analyzeCmd.RunE(analyzeCmd, nil)
	}

	for {
		choice, err := selectString("What would you like to do?", []string{
			menuAnalyze,
			menuGenreq,
			menuLocaldev,
			menuExport,
			menuExit,
		})
		if err != nil {
			return err
		}

		switch choice {
		case menuAnalyze:
			err = analyzeCmd.RunE(analyzeCmd, nil)
		case menuGenreq:
			err = genreqCmd.RunE(genreqCmd, nil)
		case menuLocaldev:
			version, pickErr := pickVersion(platform.Current())
			if pickErr != nil {
				return pickErr
			}
			err = setupLocalDev(ctx, scanPath, version)
		case menuExport:
			err = exportCmd.RunE(exportCmd, nil)
		case menuExit:
			return nil
		}
		if err != nil {
			fmt.Println(ErrorStyle.Render("Error: ") + formatErrorForDisplay(err, verbose))
		}
		fmt.Println()
	}
}
