package config

import (
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/ayoisaiah/mindful/internal/catalog"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyAnimal               = "settings.animal"
	keySound                = "settings.sound"
	keySoundsDir            = "settings.sounds_dir"
	keyCycleGoal            = "settings.cycle_goal"
	keySoundVolume          = "settings.sound_volume"
	keyNotificationsEnabled = "notifications.enabled"
	keyTheme                = "display.theme"
	keyLogLevel             = "log.level"
	keyProfiles             = "profiles"
)

// WithViperConfig returns an Option that loads configuration from the file at
// configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath, soundsDir string) Option {
	return func(c *Config) error {
		v := newViper(configPath, soundsDir)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func newViper(configPath, soundsDir string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setupViper(v, soundsDir)

	return v
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper, soundsDir string) {
	v.SetDefault(keyAnimal, "bear")
	v.SetDefault(keySound, "")
	v.SetDefault(keySoundsDir, soundsDir)
	v.SetDefault(keyCycleGoal, 0)
	v.SetDefault(keySoundVolume, 0)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyTheme, catalog.DefaultTheme)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyProfiles, []catalog.Profile{})
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}

// reloadDelay is how long the config file must stay quiet before a change is
// read. Editors and os.WriteFile truncate before writing, so the first event
// of a save often sees an empty file.
var reloadDelay = 100 * time.Millisecond

// Watch reloads the custom animal profiles whenever the config file changes
// and hands them to onChange. onChange runs on a background goroutine and is
// never called for a file that is empty or fails validation.
func Watch(configPath string, onChange func([]catalog.Profile)) {
	v := newViper(configPath, "")

	if err := v.ReadInConfig(); err != nil {
		slog.Warn("config watch disabled", slog.Any("error", err))
		return
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	reload := func() {
		profiles, err := readProfiles(configPath)
		if err != nil {
			slog.Warn("ignoring config change", slog.Any("error", err))
			return
		}

		if profiles == nil {
			return
		}

		slog.Info("custom profiles reloaded",
			slog.String("file", configPath),
			slog.Int("count", len(profiles)),
		)

		onChange(profiles)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}

		timer = time.AfterFunc(reloadDelay, reload)
	})

	v.WatchConfig()
}

// readProfiles reads and validates the custom profiles in the config file.
// It returns nil profiles without an error when the file is empty, which
// happens partway through a save.
func readProfiles(configPath string) ([]catalog.Profile, error) {
	info, err := os.Stat(configPath)
	if err != nil {
		return nil, errReadConfig.Wrap(err)
	}

	if info.Size() == 0 {
		return nil, nil
	}

	v := newViper(configPath, "")

	if err := v.ReadInConfig(); err != nil {
		return nil, errReadConfig.Wrap(err)
	}

	var c Config

	if err := loadViperConfig(v, &c); err != nil {
		return nil, err
	}

	if _, err := catalog.New(c.Profiles); err != nil {
		return nil, err
	}

	if c.Profiles == nil {
		c.Profiles = []catalog.Profile{}
	}

	return c.Profiles, nil
}
