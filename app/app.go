// Package app wires the mindful command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mindful/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the mindful app instance.
func Get() *cli.App {
	mindfulApp := &cli.App{
		Name: "mindful",
		Usage: `
		Mindful is a calm corner for kids in the terminal: animal breathing,
		box breathing, mood check-ins, short stories and ambient sounds.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "breathe",
				Usage: "Follow a breathing pattern without the full interface",
				Flags: []cli.Flag{
					animalFlag,
					boxFlag,
					cyclesFlag,
					cycleGoalFlag,
					disableNotificationFlag,
				},
				Action: breatheAction,
			},
			{
				Name:   "animals",
				Usage:  "List the animal breathing patterns",
				Action: animalsAction,
			},
			{
				Name:      "mood",
				Usage:     "Check in with how you feel",
				ArgsUsage: "[name]",
				Action:    moodAction,
			},
			{
				Name:      "story",
				Usage:     "Read a short mindfulness story",
				ArgsUsage: "[key]",
				Action:    storyAction,
			},
			{
				Name:      "theme",
				Usage:     "Show or change the saved colour theme",
				ArgsUsage: "[name]",
				Action:    themeAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the ambient sounds and the audio files found for them",
				Action: soundsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			animalFlag,
			themeFlag,
			soundFlag,
			cycleGoalFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return mindfulApp
}
