// Package ui implements the interactive terminal interface: a tabbed
// bubbletea program hosting the mood check-in, both breathing features,
// ambient sounds, stories and themes.
package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/mindful/internal/ambience"
	"github.com/ayoisaiah/mindful/internal/breathing"
	"github.com/ayoisaiah/mindful/internal/catalog"
)

type tab int

const (
	tabMood tab = iota
	tabBubble
	tabBox
	tabSounds
	tabStories
	tabThemes
)

var tabNames = []string{"Mood", "Bubble", "Box", "Sounds", "Stories", "Themes"}

func (t tab) String() string {
	return tabNames[t]
}

const (
	frameInterval = 100 * time.Millisecond
	maxWidth      = 64
	padding       = 2
)

// ThemeStore persists the selected theme.
type ThemeStore interface {
	SetTheme(name string) error
}

// Options holds everything the model needs from the outside world. Player is
// required.
type Options struct {
	Catalog   *catalog.Catalog
	Store     ThemeStore
	Player    ambience.Player
	Notifier  breathing.Notifier
	Now       func() time.Time
	Animal    string
	Theme     string
	Sound     string
	CycleGoal int
}

// ProfilesMsg replaces the catalog after the custom animal profiles change.
type ProfilesMsg struct {
	Catalog *catalog.Catalog
}

type frameMsg time.Time

// Model is the root bubbletea model.
type Model struct {
	cat      *catalog.Catalog
	store    ThemeStore
	clock    *Clock
	bubble   *breathing.Bubble
	box      *breathing.Box
	amb      *ambience.Ambience
	now      func() time.Time
	styles   Styles
	theme    catalog.Theme
	keys     keymap
	help     help.Model
	progress progress.Model
	story    viewport.Model
	status   string
	active   tab

	// selection cursors per tab
	mood      int
	animal    int
	sound     int
	storyIdx  int
	themeIdx  int
	moodShown bool
	storyOpen bool
}

// New builds the model. Unknown names in opts fall back to the first entry
// of the matching table.
func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	m := &Model{
		cat:      cat,
		store:    opts.Store,
		clock:    NewClock(),
		now:      opts.Now,
		keys:     defaultKeymap,
		help:     help.New(),
		story:    viewport.New(maxWidth-padding*4, 10),
		active:   tabBubble,
		animal:   max(cat.Profiles.IndexOf(opts.Animal), 0),
		themeIdx: max(cat.Themes.IndexOf(opts.Theme), 0),
	}

	var breathOpts []breathing.Option
	if opts.Notifier != nil && opts.CycleGoal > 0 {
		breathOpts = append(breathOpts, breathing.WithGoal(opts.CycleGoal, opts.Notifier))
	}

	m.bubble = breathing.NewBubble(m.clock, cat.Profiles.At(m.animal), breathOpts...)
	m.box = breathing.NewBox(m.clock, append(breathOpts, breathing.WithNow(m.now))...)

	spawner := ambience.NewSpawner(m.clock, ambience.WithClockNow(m.now))
	m.amb = ambience.New(opts.Player, spawner, cat.Sounds)

	m.applyTheme(cat.Themes.At(m.themeIdx))

	if opts.Sound != "" {
		m.sound = max(cat.Sounds.IndexOf(opts.Sound), 0)
		m.amb.Play(opts.Sound)
	}

	return m
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.clock.Flush(), frameTick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, m.clock.Update(msg)

	case frameMsg:
		return m, frameTick()

	case ProfilesMsg:
		slog.Debug(spew.Sdump(msg))

		m.setCatalog(msg.Catalog)

		return m, m.clock.Flush()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		m.progress.Width = max(min(msg.Width-padding*2-4, maxWidth), 10)
		m.story.Width = min(msg.Width-padding*4, maxWidth)
		m.story.Height = max(msg.Height/2, 5)

		return m, nil

	case tea.KeyMsg:
		slog.Debug(spew.Sdump(msg))

		cmd := m.handleKey(msg)

		return m, tea.Batch(cmd, m.clock.Flush())
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.quit) {
		m.shutdown()
		return tea.Quit
	}

	if m.storyOpen {
		if key.Matches(msg, m.keys.esc) {
			m.storyOpen = false
			return nil
		}

		var cmd tea.Cmd
		m.story, cmd = m.story.Update(msg)

		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case key.Matches(msg, m.keys.nextTab):
		m.active = (m.active + 1) % tab(len(tabNames))
		return nil

	case key.Matches(msg, m.keys.prevTab):
		m.active = (m.active + tab(len(tabNames)) - 1) % tab(len(tabNames))
		return nil

	case key.Matches(msg, m.keys.jumpTab):
		m.active = tab(msg.Runes[0] - '1')
		return nil
	}

	switch m.active {
	case tabMood:
		m.updateMood(msg)
	case tabBubble:
		m.updateBubble(msg)
	case tabBox:
		m.updateBox(msg)
	case tabSounds:
		m.updateSounds(msg)
	case tabStories:
		m.updateStories(msg)
	case tabThemes:
		m.updateThemes(msg)
	}

	return nil
}

func (m *Model) updateMood(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.left):
		m.mood = wrap(m.mood-1, m.cat.Moods.Len())
		m.moodShown = false
	case key.Matches(msg, m.keys.right):
		m.mood = wrap(m.mood+1, m.cat.Moods.Len())
		m.moodShown = false
	case key.Matches(msg, m.keys.enter):
		m.moodShown = true
	}
}

func (m *Model) updateBubble(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.left):
		m.selectAnimal(m.animal - 1)
	case key.Matches(msg, m.keys.right):
		m.selectAnimal(m.animal + 1)
	case key.Matches(msg, m.keys.start):
		m.bubble.Start()
	case key.Matches(msg, m.keys.pause):
		m.bubble.Pause()
	}
}

func (m *Model) selectAnimal(i int) {
	m.animal = wrap(i, m.cat.Profiles.Len())
	m.bubble.Select(m.cat.Profiles.At(m.animal))
}

func (m *Model) updateBox(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.start):
		m.box.Start()
	case key.Matches(msg, m.keys.pause):
		m.box.Pause()
	}
}

func (m *Model) updateSounds(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.up):
		m.sound = wrap(m.sound-1, m.cat.Sounds.Len())
	case key.Matches(msg, m.keys.down):
		m.sound = wrap(m.sound+1, m.cat.Sounds.Len())
	case key.Matches(msg, m.keys.enter):
		name := m.cat.Sounds.At(m.sound).Name
		if !m.amb.Play(name) {
			m.status = "Unable to play " + name
			return
		}

		m.status = ""
	case key.Matches(msg, m.keys.stop):
		m.amb.Stop()
		m.status = ""
	}
}

func (m *Model) updateStories(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.up):
		m.storyIdx = wrap(m.storyIdx-1, m.cat.Stories.Len())
	case key.Matches(msg, m.keys.down):
		m.storyIdx = wrap(m.storyIdx+1, m.cat.Stories.Len())
	case key.Matches(msg, m.keys.enter):
		m.openStory(m.cat.Stories.At(m.storyIdx))
	}
}

func (m *Model) openStory(s catalog.Story) {
	m.story.SetContent(m.styles.Text.Width(m.story.Width).Render(s.Text))
	m.story.GotoTop()
	m.storyOpen = true
}

func (m *Model) updateThemes(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.left):
		m.themeIdx = wrap(m.themeIdx-1, m.cat.Themes.Len())
	case key.Matches(msg, m.keys.right):
		m.themeIdx = wrap(m.themeIdx+1, m.cat.Themes.Len())
	case key.Matches(msg, m.keys.enter):
		theme := m.cat.Themes.At(m.themeIdx)

		m.applyTheme(theme)

		if m.store == nil {
			return
		}

		if err := m.store.SetTheme(theme.Name); err != nil {
			slog.Error("saving theme failed", slog.Any("error", err))
			m.status = "Theme applied but not saved"

			return
		}

		m.status = ""
	}
}

func (m *Model) applyTheme(theme catalog.Theme) {
	width := m.progress.Width
	if width == 0 {
		width = maxWidth - padding*2
	}

	m.theme = theme
	m.styles = NewStyles(theme)
	m.progress = progress.New(
		progress.WithSolidFill(theme.Accent),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	m.progress.EmptyColor = theme.Muted
}

// setCatalog swaps in a catalog with updated profiles. The selected animal is
// kept when it still exists, and reapplied if its pattern changed.
func (m *Model) setCatalog(cat *catalog.Catalog) {
	current := m.bubble.Animal()

	m.cat = cat

	i := cat.Profiles.IndexOf(current.Name)
	if i < 0 {
		m.selectAnimal(0)
		return
	}

	m.animal = i

	if updated := cat.Profiles.At(i); updated != current {
		m.bubble.Select(updated)
	}
}

func (m *Model) shutdown() {
	m.amb.Stop()
	m.bubble.Pause()
	m.box.Pause()
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}

	return ((i % n) + n) % n
}
