// SPDX-License-Identifier: MPL-2.0

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// writeSetupScripts emits the target-platform setup and activation
// scripts into dir. Windows targets get a setup.bat that downloads the
// matching python.org installer; everything else gets a setup.sh that
// assumes a system Python.
func writeSetupScripts(dir, version, osType, arch string) error {
	if strings.HasPrefix(osType, "windows") {
		installerArch := "amd64"
		if arch == "x86" {
			installerArch = "win32"
		}
		setup := fmt.Sprintf(`@echo off
echo Installing Python %[1]s...
powershell -Command "Invoke-WebRequest -Uri 'https://www.python.org/ftp/python/%[1]s/python-%[1]s-%[2]s.exe' -OutFile 'python-installer.exe'"

echo Installing Python...
python-installer.exe /quiet InstallAllUsers=0 PrependPath=1 Include_test=0 Include_pip=1

echo Creating virtual environment...
python -m venv .venv

echo Activating virtual environment...
call .venv\Scripts\activate.bat

echo Installing dependencies...
pip install -r requirements.txt

echo Setup complete.
echo To activate the environment, run: .venv\Scripts\activate.bat
`, version, installerArch)

		if err := os.WriteFile(filepath.Join(dir, "setup.bat"), []byte(setup), 0o644); err != nil {
			return fmt.Errorf("writing setup.bat: %w", err)
		}

		activate := "@echo off\r\ncall .venv\\Scripts\\activate.bat\r\n"
		if err := os.WriteFile(filepath.Join(dir, "activate.bat"), []byte(activate), 0o644); err != nil {
			return fmt.Errorf("writing activate.bat: %w", err)
		}
		return nil
	}

	setup := fmt.Sprintf(`#!/bin/bash
echo "Setting up Python %[1]s environment..."

python3 -m venv .venv
. .venv/bin/activate
pip install -r requirements.txt

echo "Setup complete."
echo "To activate the environment, run: source .venv/bin/activate"
`, version)

	if err := os.WriteFile(filepath.Join(dir, "setup.sh"), []byte(setup), 0o755); err != nil {
		return fmt.Errorf("writing setup.sh: %w", err)
	}

	activate := "#!/bin/bash\n. .venv/bin/activate\n"
	if err := os.WriteFile(filepath.Join(dir, "activate.sh"), []byte(activate), 0o755); err != nil {
		return fmt.Errorf("writing activate.sh: %w", err)
	}
	return nil
}

// writeReadme emits the bundle README describing setup on the target.
func writeReadme(dir, version, osLabel string) error {
	readme := fmt.Sprintf(`# pywand export bundle

This bundle contains Python sources and their dependency manifest for
offline development.

## Requirements

- Operating system: %[1]s
- Python version: %[2]s

## Setup

### Windows

1. Run setup.bat to install Python and create the virtual environment
2. Run activate.bat to activate the environment
3. Run your Python scripts inside the activated environment

### Linux/macOS

1. Make sure Python %[2]s is installed
2. Run chmod +x setup.sh activate.sh
3. Run ./setup.sh to create the virtual environment
4. Run 'source activate.sh' to activate it

## Contents

- src/ - Python source files
- requirements.txt - dependency manifest
- setup.bat / setup.sh - setup scripts
- activate.bat / activate.sh - activation scripts

## Troubleshooting

- Verify the installed Python version matches the one above
- Check that the operating system is compatible
- Initial setup needs network access to install dependencies
`, osLabel, version)

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(readme), 0o644); err != nil {
		return fmt.Errorf("writing README.md: %w", err)
	}
	return nil
}
