package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	animalFlag = &cli.StringFlag{
		Name:    "animal",
		Aliases: []string{"a"},
		Usage:   "Animal breathing pattern to start with (default: bear). Run 'mindful animals' to list them",
	}

	themeFlag = &cli.StringFlag{
		Name:  "theme",
		Usage: "Colour theme for this run only: light, forest, ocean or sunset",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Ambient sound to play on start: rain, forest, wave or chimes. Disable sound by setting to 'off'",
	}

	cycleGoalFlag = &cli.IntFlag{
		Name:    "cycle-goal",
		Aliases: []string{"g"},
		Usage:   "Send a notification every time this many breaths are completed (0 disables it)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a breathing goal is reached",
	}

	boxFlag = &cli.BoolFlag{
		Name:    "box",
		Aliases: []string{"b"},
		Usage:   "Practise box breathing instead of an animal pattern",
	}

	cyclesFlag = &cli.IntFlag{
		Name:    "cycles",
		Aliases: []string{"c"},
		Usage:   "Stop after this many breaths (0 breathes until interrupted)",
	}
)
