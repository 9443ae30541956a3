// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the root application configuration.
	Config struct {
		// CacheDir overrides the default tool cache location
		// (~/.pywand) when set.
		CacheDir string `mapstructure:"cache_dir"`
		// Scan holds source scanning settings.
		Scan ScanConfig `mapstructure:"scan"`
		// UI holds user interface settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// ScanConfig controls source tree scanning.
	ScanConfig struct {
		// Exclude lists glob patterns pruned from scans, in addition
		// to the built-in exclusions.
		Exclude []string `mapstructure:"exclude"`
	}

	// UIConfig controls terminal interaction.
	UIConfig struct {
		// Verbose enables debug-level logging.
		Verbose bool `mapstructure:"verbose"`
		// Interactive allows prompts on a TTY.
		Interactive bool `mapstructure:"interactive"`
		// Language is the preferred interface language code.
		Language string `mapstructure:"language"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose:     false,
			Interactive: true,
			Language:    "en",
		},
	}
}
