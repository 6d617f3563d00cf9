package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mindful/internal/catalog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultsAreWrittenOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path, "/tmp/sounds"))
	require.NoError(t, err)

	want := Config{
		Settings: SettingsConfig{
			Animal:    "bear",
			SoundsDir: "/tmp/sounds",
		},
		Notifications: NotificationConfig{Enabled: true},
		Display:       DisplayConfig{Theme: catalog.DefaultTheme},
		Log:           LogConfig{Level: "info"},
	}

	if diff := cmp.Diff(want, *cfg, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config should be written to disk")
}

func TestReadExistingConfig(t *testing.T) {
	path := writeConfig(t, `
settings:
  animal: owl
  cycle_goal: 5
  sound: rain
  sound_volume: -1.5
notifications:
  enabled: false
display:
  theme: ocean
log:
  level: debug
profiles:
  - name: owl
    emoji: "🦉"
    inhale: 5
    hold: 5
    exhale: 5
`)

	cfg, err := New(WithViperConfig(path, ""))
	require.NoError(t, err)

	assert.Equal(t, "owl", cfg.Settings.Animal)
	assert.Equal(t, 5, cfg.Settings.CycleGoal)
	assert.Equal(t, "rain", cfg.Settings.Sound)
	assert.InDelta(t, -1.5, cfg.Settings.SoundVolume, 0.001)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "ocean", cfg.Display.Theme)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())

	require.Len(t, cfg.Profiles, 1)
	assert.Equal(t, catalog.Profile{
		Name: "owl", Emoji: "🦉", Inhale: 5, Hold: 5, Exhale: 5,
	}, cfg.Profiles[0])

	cat, err := cfg.Catalog()
	require.NoError(t, err)

	_, ok := cat.Profiles.Get("owl")
	assert.True(t, ok)
}

var validationTestCases = []struct {
	Name    string
	Content string
	Err     error
}{
	{
		Name:    "unknown animal",
		Content: "settings:\n  animal: dragon\n",
		Err:     errUnknownAnimal,
	},
	{
		Name:    "unknown theme",
		Content: "display:\n  theme: neon\n",
		Err:     errUnknownTheme,
	},
	{
		Name:    "unknown sound",
		Content: "settings:\n  sound: thunder\n",
		Err:     errUnknownSound,
	},
	{
		Name:    "cycle goal too large",
		Content: "settings:\n  cycle_goal: 1000\n",
		Err:     errInvalidCycleGoal,
	},
	{
		Name:    "volume out of range",
		Content: "settings:\n  sound_volume: 9\n",
		Err:     errInvalidVolume,
	},
	{
		Name:    "bad log level",
		Content: "log:\n  level: loud\n",
		Err:     errInvalidLogLevel,
	},
}

func TestValidation(t *testing.T) {
	for _, tc := range validationTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			path := writeConfig(t, tc.Content)

			_, err := New(WithViperConfig(path, ""))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.Err), "got %v", err)
			assert.True(t, errors.Is(err, errConfigValidation))
		})
	}
}

func TestInvalidCustomProfile(t *testing.T) {
	path := writeConfig(t, `
profiles:
  - name: sloth
    inhale: 0
    exhale: 3
`)

	_, err := New(WithViperConfig(path, ""))
	assert.Error(t, err)
}

func TestApplyCLIOptions(t *testing.T) {
	cfg := Config{
		Settings: SettingsConfig{
			Animal:    "bear",
			Sound:     "rain",
			CycleGoal: 3,
		},
		Notifications: NotificationConfig{Enabled: true},
	}

	applyCLIOptions(&cfg, CLIOptions{
		Animal:        "lion",
		Sound:         "off",
		Theme:         "forest",
		CycleGoal:     -1,
		DisableNotify: true,
	})

	assert.Equal(t, "lion", cfg.Settings.Animal)
	assert.Empty(t, cfg.Settings.Sound)
	assert.Equal(t, 3, cfg.Settings.CycleGoal)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "forest", cfg.CLI.Theme)

	applyCLIOptions(&cfg, CLIOptions{CycleGoal: 0, Sound: "chimes"})

	assert.Equal(t, 0, cfg.Settings.CycleGoal)
	assert.Equal(t, "chimes", cfg.Settings.Sound)
	assert.Equal(t, "lion", cfg.Settings.Animal)
}

func TestLogLevel(t *testing.T) {
	for level, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cfg := Config{Log: LogConfig{Level: level}}
		assert.Equal(t, want, cfg.LogLevel(), level)
	}
}

const owlProfile = `
profiles:
  - name: owl
    inhale: 5
    hold: 5
    exhale: 5
`

func TestReadProfilesSkipsEmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	profiles, err := readProfiles(path)
	require.NoError(t, err)
	assert.Nil(t, profiles)

	require.NoError(t, os.WriteFile(path, []byte("settings:\n  animal: bear\n"), 0o600))

	profiles, err = readProfiles(path)
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestWatchReloadsProfiles(t *testing.T) {
	path := writeConfig(t, "settings:\n  animal: bear\n")

	changes := make(chan []catalog.Profile, 10)

	Watch(path, func(p []catalog.Profile) {
		changes <- p
	})

	expect := func(t *testing.T, names ...string) {
		t.Helper()

		select {
		case got := <-changes:
			gotNames := make([]string, 0, len(got))
			for _, p := range got {
				gotNames = append(gotNames, p.Name)
			}

			assert.Equal(t, names, gotNames)
		case <-time.After(3 * time.Second):
			t.Fatal("no reload after config change")
		}
	}

	expectNone := func(t *testing.T) {
		t.Helper()

		select {
		case got := <-changes:
			t.Fatalf("unexpected reload: %+v", got)
		case <-time.After(5 * reloadDelay):
		}
	}

	t.Run("valid edit", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(owlProfile), 0o600))
		expect(t, "owl")
		expectNone(t)
	})

	t.Run("built-in name is rejected", func(t *testing.T) {
		content := "profiles:\n  - name: bear\n    inhale: 2\n    exhale: 2\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		expectNone(t)
	})

	t.Run("truncate then write", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		content := owlProfile + "  - name: fox\n    inhale: 3\n    exhale: 3\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		expect(t, "owl", "fox")
		expectNone(t)
	})
}
