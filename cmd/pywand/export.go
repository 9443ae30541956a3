// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pywand-cli/internal/export"
	"pywand-cli/internal/issue"
	"pywand-cli/internal/venv"
)

var (
	exportOutputDir string
	exportTarget    string
	exportVersion   string
)

// exportCmd builds an offline bundle for another machine.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build an offline export bundle for a target platform",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget()
		if err != nil {
			return err
		}

		version := exportVersion
		if version == "" {
			versions := venv.SupportedVersions(target.OSType, target.Arch)
			if interactiveAllowed() {
				version, err = selectString("Python version for the bundle", versions)
				if err != nil {
					return err
				}
			} else {
				version = versions[0]
			}
		}

		project, err := collectDependencies(scanPath)
		if err != nil {
			return err
		}

		outDir := exportOutputDir
		if outDir == "" {
			outDir = scanPath
		}
		path, err := export.Bundle(export.BundleOptions{
			Files:     project.Files,
			Root:      scanPath,
			Deps:      project.Deps,
			Target:    target,
			Version:   version,
			OutputDir: outDir,
		})
		if err != nil {
			return err
		}

		fmt.Println(SuccessStyle.Render("✓ ") + "export bundle: " + ItemStyle.Render(path))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputDir, "output", "o", "", "directory to write the bundle into (default: the project directory)")
	exportCmd.Flags().StringVar(&exportTarget, "target", "", "target platform id, e.g. windows10-x64 (default: pick interactively)")
	exportCmd.Flags().StringVar(&exportVersion, "python", "", "Python version for the bundle (default: pick interactively, newest otherwise)")
}

// targetID is the stable flag value for a target platform.
func targetID(t export.Target) string {
	return t.OSType + "-" + t.Arch
}

// resolveTarget picks the export destination from the --target flag or an
// interactive prompt.
func resolveTarget() (export.Target, error) {
	targets := export.Targets()

	if exportTarget != "" {
		for _, t := range targets {
			if targetID(t) == exportTarget {
				return t, nil
			}
		}
		ids := make([]string, len(targets))
		for i, t := range targets {
			ids[i] = targetID(t)
		}
		return export.Target{}, issue.NewContext().
			WithOperation("resolve export target").
			WithResource(exportTarget).
			WithSuggestion("Valid targets: " + strings.Join(ids, ", ")).
			Wrap(fmt.Errorf("unknown target platform: %s", exportTarget)).
			BuildError()
	}

	if !interactiveAllowed() {
		return export.Target{}, issue.NewContext().
			WithOperation("resolve export target").
			WithSuggestion("Pass --target when running without a terminal").
			Wrap(fmt.Errorf("no target platform selected")).
			BuildError()
	}

	labels := make([]string, len(targets))
	byLabel := make(map[string]export.Target, len(targets))
	for i, t := range targets {
		labels[i] = t.Label
		byLabel[t.Label] = t
	}
	label, err := selectString("Target platform", labels)
	if err != nil {
		return export.Target{}, err
	}
	return byLabel[label], nil
}
