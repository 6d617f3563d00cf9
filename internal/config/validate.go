package config

import (
	"strings"
)

var (
	maxCycleGoal = 100

	minVolume = -5.0
	maxVolume = 5.0

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	cat, err := c.Catalog()
	if err != nil {
		return err
	}

	if _, ok := cat.Profiles.Get(c.Settings.Animal); !ok {
		return errUnknownAnimal.Fmt(c.Settings.Animal)
	}

	if c.Settings.Sound != "" {
		if _, ok := cat.Sounds.Get(c.Settings.Sound); !ok {
			return errUnknownSound.Fmt(c.Settings.Sound)
		}
	}

	for _, theme := range []string{c.Display.Theme, c.CLI.Theme} {
		if theme == "" {
			continue
		}

		if _, ok := cat.Themes.Get(theme); !ok {
			return errUnknownTheme.Fmt(theme)
		}
	}

	if c.Settings.CycleGoal < 0 || c.Settings.CycleGoal > maxCycleGoal {
		return errInvalidCycleGoal.Fmt(maxCycleGoal)
	}

	if c.Settings.SoundVolume < minVolume || c.Settings.SoundVolume > maxVolume {
		return errInvalidVolume.Fmt(minVolume, maxVolume)
	}

	return c.validateLog()
}

func (c *Config) validateLog() error {
	if c.Log.Level == "" {
		return nil
	}

	level := strings.ToLower(c.Log.Level)

	for _, l := range logLevels {
		if l == level {
			return nil
		}
	}

	return errInvalidLogLevel.Fmt(c.Log.Level)
}
