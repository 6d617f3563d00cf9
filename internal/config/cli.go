package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Animal        string
	Theme         string
	Sound         string
	CycleGoal     int
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Animal:        ctx.String("animal"),
			Theme:         ctx.String("theme"),
			Sound:         ctx.String("sound"),
			CycleGoal:     -1,
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		if ctx.IsSet("cycle-goal") {
			opts.CycleGoal = ctx.Int("cycle-goal")
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Animal != "" {
		c.Settings.Animal = opts.Animal
	}

	if opts.Sound != "" {
		if opts.Sound == "off" {
			c.Settings.Sound = ""
		} else {
			c.Settings.Sound = opts.Sound
		}
	}

	if opts.CycleGoal >= 0 {
		c.Settings.CycleGoal = opts.CycleGoal
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.Theme = opts.Theme
	c.CLI.NoColor = opts.NoColor
}
