// Package config loads mindful settings from the config file and command-line
// flags
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ayoisaiah/mindful/internal/catalog"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		Profiles      []catalog.Profile  `mapstructure:"profiles"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// SettingsConfig holds breathing and sound settings.
	SettingsConfig struct {
		Animal      string  `mapstructure:"animal"`
		Sound       string  `mapstructure:"sound"`
		SoundsDir   string  `mapstructure:"sounds_dir"`
		CycleGoal   int     `mapstructure:"cycle_goal"`
		SoundVolume float64 `mapstructure:"sound_volume"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Theme string `mapstructure:"theme"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only come from the command line.
	CLIConfig struct {
		Theme   string
		NoColor bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

// Stdout is where commands write their output.
var Stdout io.Writer = os.Stdout

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Catalog returns the built-in catalog extended with the custom profiles.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	cat, err := catalog.New(c.Profiles)
	if err != nil {
		return nil, fmt.Errorf("loading custom profiles: %w", err)
	}

	return cat, nil
}
