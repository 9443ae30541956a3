// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pywand-cli/internal/config"
)

var langCode string

// langCmd persists the interface language preference.
var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Show or set the interface language preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if langCode == "" {
			fmt.Println("language: " + ItemStyle.Render(cfg.UI.Language))
			return nil
		}

		cfg.UI.Language = langCode
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println(SuccessStyle.Render("✓ ") + "language preference saved: " + ItemStyle.Render(langCode))
		return nil
	},
}

func init() {
	langCmd.Flags().StringVar(&langCode, "code", "", "language code to persist (e.g. en, ru)")
}
