// SPDX-License-Identifier: MPL-2.0

// pywand turns a plain Python source tree into a dependency manifest and
// a ready-to-use virtual environment.
package main

import cmd "pywand-cli/cmd/pywand"

func main() {
	cmd.Execute()
}
