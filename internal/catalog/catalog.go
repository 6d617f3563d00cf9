// Package catalog holds the static lookup tables used across mindful: animal
// breathing profiles, moods, stories, themes and ambient sounds. The built-in
// tables are embedded as YAML and never change at runtime.
package catalog

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/mindful/internal/apperr"
	"github.com/ayoisaiah/mindful/internal/phase"
)

//go:embed data/*.yml
var data embed.FS

// DefaultTheme is used when no theme preference has been saved.
const DefaultTheme = "light"

var (
	errDecodeTable = &apperr.Error{
		Message: "decoding %s table failed",
	}

	errDuplicateKey = &apperr.Error{
		Message: "duplicate %s entry: %s",
	}

	errShadowedProfile = &apperr.Error{
		Message: "custom profile %q conflicts with a built-in animal",
	}

	errUnnamedProfile = &apperr.Error{
		Message: "custom profile has no name",
	}

	errInvalidProfile = &apperr.Error{
		Message: "profile %q: inhale and exhale must be between 1 and %d seconds, hold between 0 and %d",
	}
)

// MaxPhaseSeconds bounds every phase duration in a profile.
const MaxPhaseSeconds = 60

type (
	// Profile is a named animal breathing pattern.
	Profile struct {
		Name   string `yaml:"name"   mapstructure:"name"`
		Emoji  string `yaml:"emoji"  mapstructure:"emoji"`
		Desc   string `yaml:"desc"   mapstructure:"desc"`
		Inhale int    `yaml:"inhale" mapstructure:"inhale"`
		Hold   int    `yaml:"hold"   mapstructure:"hold"`
		Exhale int    `yaml:"exhale" mapstructure:"exhale"`
	}

	// Mood is a mood card and the message shown when it is picked.
	Mood struct {
		Name    string `yaml:"name"`
		Emoji   string `yaml:"emoji"`
		Message string `yaml:"message"`
	}

	// Story is a short mindfulness exercise.
	Story struct {
		Key   string `yaml:"key"`
		Icon  string `yaml:"icon"`
		Color string `yaml:"color"`
		Title string `yaml:"title"`
		Text  string `yaml:"text"`
	}

	// Theme is a colour palette.
	Theme struct {
		Name       string `yaml:"name"`
		Swatch     string `yaml:"swatch"`
		Background string `yaml:"background"`
		Foreground string `yaml:"foreground"`
		Accent     string `yaml:"accent"`
		Muted      string `yaml:"muted"`
	}

	// Particle describes the visual spawned alongside an ambient sound.
	Particle struct {
		Emoji      string `yaml:"emoji"`
		MinSize    int    `yaml:"min_size"`
		MaxSize    int    `yaml:"max_size"`
		IntervalMS int    `yaml:"interval_ms"`
		DurationMS int    `yaml:"duration_ms"`
		Rotate     bool   `yaml:"rotate"`
		Rise       bool   `yaml:"rise"`
		Scale      bool   `yaml:"scale"`
	}

	// Sound is an ambient sound and its paired visual.
	Sound struct {
		Name     string   `yaml:"name"`
		File     string   `yaml:"file"`
		Color    string   `yaml:"color"`
		Particle Particle `yaml:"particle"`
	}
)

// Sequence builds the phase sequence for the profile. The hold phase is only
// included when it lasts at least one second.
func (p Profile) Sequence() phase.Sequence {
	seq := phase.Sequence{{Label: phase.Inhale, Seconds: p.Inhale}}

	if p.Hold > 0 {
		seq = append(seq, phase.Phase{Label: phase.Hold, Seconds: p.Hold})
	}

	return append(seq, phase.Phase{Label: phase.Exhale, Seconds: p.Exhale})
}

// Validate checks that the profile is named and every phase is schedulable.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errUnnamedProfile
	}

	if p.Inhale < 1 || p.Inhale > MaxPhaseSeconds ||
		p.Exhale < 1 || p.Exhale > MaxPhaseSeconds ||
		p.Hold < 0 || p.Hold > MaxPhaseSeconds {
		return errInvalidProfile.Fmt(p.Name, MaxPhaseSeconds, MaxPhaseSeconds)
	}

	return nil
}

// Interval returns the spawn interval of the particle.
func (p Particle) Interval() time.Duration {
	return time.Duration(p.IntervalMS) * time.Millisecond
}

// Lifetime returns how long a spawned particle stays on screen.
func (p Particle) Lifetime() time.Duration {
	return time.Duration(p.DurationMS) * time.Millisecond
}

// Catalog bundles every lookup table.
type Catalog struct {
	Profiles Table[Profile]
	Moods    Table[Mood]
	Stories  Table[Story]
	Themes   Table[Theme]
	Sounds   Table[Sound]
}

var builtin *Catalog

func init() {
	var err error

	builtin, err = load()
	if err != nil {
		panic(err)
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return builtin
}

// New returns the built-in catalog extended with custom animal profiles.
func New(custom []Profile) (*Catalog, error) {
	c := *builtin

	if len(custom) == 0 {
		return &c, nil
	}

	profiles := append([]Profile{}, builtin.Profiles.All()...)

	for _, p := range custom {
		if _, ok := builtin.Profiles.Get(p.Name); ok {
			return nil, errShadowedProfile.Fmt(p.Name)
		}

		if err := p.Validate(); err != nil {
			return nil, err
		}

		if p.Emoji == "" {
			p.Emoji = "🫧"
		}

		profiles = append(profiles, p)
	}

	table, err := newTable("profile", profiles, func(p Profile) string {
		return p.Name
	})
	if err != nil {
		return nil, err
	}

	c.Profiles = table

	return &c, nil
}

func load() (*Catalog, error) {
	var (
		c   Catalog
		err error
	)

	c.Profiles, err = loadTable("profiles", func(p Profile) string { return p.Name })
	if err != nil {
		return nil, err
	}

	c.Moods, err = loadTable("moods", func(m Mood) string { return m.Name })
	if err != nil {
		return nil, err
	}

	c.Stories, err = loadTable("stories", func(s Story) string { return s.Key })
	if err != nil {
		return nil, err
	}

	c.Themes, err = loadTable("themes", func(t Theme) string { return t.Name })
	if err != nil {
		return nil, err
	}

	c.Sounds, err = loadTable("sounds", func(s Sound) string { return s.Name })
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func loadTable[T any](name string, key func(T) string) (Table[T], error) {
	b, err := data.ReadFile(fmt.Sprintf("data/%s.yml", name))
	if err != nil {
		return Table[T]{}, errDecodeTable.Fmt(name).Wrap(err)
	}

	var items []T

	if err := yaml.Unmarshal(b, &items); err != nil {
		return Table[T]{}, errDecodeTable.Fmt(name).Wrap(err)
	}

	return newTable(name, items, key)
}
