package app

import (
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/mindful/internal/catalog"
)

func selectMood(cat *catalog.Catalog) (string, error) {
	opts := make([]huh.Option[string], 0, cat.Moods.Len())

	for _, m := range cat.Moods.All() {
		opts = append(opts, huh.NewOption(m.Emoji+" "+m.Name, m.Name))
	}

	var name string

	err := huh.NewSelect[string]().
		Title("How are you feeling today?").
		Options(opts...).
		Value(&name).
		Run()

	return name, err
}

func selectStory(cat *catalog.Catalog) (string, error) {
	opts := make([]huh.Option[string], 0, cat.Stories.Len())

	for _, s := range cat.Stories.All() {
		opts = append(opts, huh.NewOption(s.Icon+" "+s.Title, s.Key))
	}

	var key string

	err := huh.NewSelect[string]().
		Title("Choose a story").
		Options(opts...).
		Value(&key).
		Run()

	return key, err
}

func selectTheme(cat *catalog.Catalog, current string) (string, error) {
	opts := make([]huh.Option[string], 0, cat.Themes.Len())

	for _, t := range cat.Themes.All() {
		opts = append(opts, huh.NewOption(t.Name, t.Name).Selected(t.Name == current))
	}

	name := current

	err := huh.NewSelect[string]().
		Title("Choose your colours").
		Options(opts...).
		Value(&name).
		Run()

	return name, err
}
