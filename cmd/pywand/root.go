// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pywand.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pywand-cli/internal/config"
	"pywand-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// scanPath is the project directory commands operate on
	scanPath string

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pywand",
		Short: "Python dependency manifests and environments from plain source trees",
		Long: TitleStyle.Render("pywand") + SubtitleStyle.Render(" - Python project provisioning") + `

pywand scans a Python source tree for imports, turns them into a
requirements.txt manifest, and provisions a ready-to-use virtual
environment backed by the uv package manager. It can also build
offline export bundles for machines without network access.

` + SubtitleStyle.Render("Examples:") + `
  pywand                    Interactive menu for the current directory
  pywand genreq             Write requirements.txt for the current directory
  pywand localdev           Create .venv and install all detected dependencies
  pywand export             Build an offline bundle for another machine
  pywand run main.py        Run a script inside the project environment`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context())
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pywand/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&scanPath, "path", "p", ".", "project directory to operate on")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(genreqCmd)
	rootCmd.AddCommand(localdevCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(uvCmd)
	rootCmd.AddCommand(pipCmd)
	rootCmd.AddCommand(langCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the config file and installs the process-wide logger.
func initRootConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		// Config problems must never block the tool; warn and run on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix: config.AppName,
	})
	if verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	slog.SetDefault(slog.New(logger))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// interactiveAllowed reports whether prompts may be shown: stdin must be a
// terminal and the config must not disable interaction.
func interactiveAllowed() bool {
	if !cfg.UI.Interactive {
		return false
	}
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
