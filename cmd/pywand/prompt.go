// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// selectString shows a single-select prompt and returns the chosen option.
func selectString(title string, options []string) (string, error) {
	huhOpts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOpts[i] = huh.NewOption(opt, opt)
	}

	var result string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huhOpts...).
			Value(&result),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection aborted: %w", err)
	}
	return result, nil
}
