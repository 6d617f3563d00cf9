package ui

import (
	"errors"
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mindful/internal/catalog"
)

type fakePlayer struct {
	played []string
	fail   bool
	stops  int
}

func (f *fakePlayer) Play(file string) error {
	if f.fail {
		return errors.New("no audio device")
	}

	f.played = append(f.played, file)

	return nil
}

func (f *fakePlayer) Stop() {
	f.stops++
}

type fakeStore struct {
	themes []string
}

func (f *fakeStore) SetTheme(name string) error {
	f.themes = append(f.themes, name)
	return nil
}

func newTestModel(t *testing.T) (*Model, *fakePlayer, *fakeStore) {
	t.Helper()

	player := &fakePlayer{}
	store := &fakeStore{}
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	m := New(Options{
		Player: player,
		Store:  store,
		Now:    func() time.Time { return now },
		Animal: "bear",
		Theme:  catalog.DefaultTheme,
	})

	return m, player, store
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd

	for _, k := range keys {
		var msg tea.KeyMsg

		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		_, cmd = m.Update(msg)
	}

	return cmd
}

// tick delivers one firing to every live tick source, n times.
func tick(m *Model, n int) {
	for range n {
		tokens := make([]int, 0, len(m.clock.sources))
		for token := range m.clock.sources {
			tokens = append(tokens, token)
		}

		slices.Sort(tokens)

		for _, token := range tokens {
			m.Update(TickMsg{ID: m.clock.ID(), token: token})
		}
	}
}

func TestClockFiresLiveSourcesOnly(t *testing.T) {
	c := NewClock()

	var fired int

	src := c.Every(time.Second, func() { fired++ })

	assert.NotNil(t, c.Flush())
	assert.Nil(t, c.Flush(), "pending commands are only returned once")

	assert.NotNil(t, c.Update(TickMsg{ID: c.ID(), token: 1}), "live source is re-armed")
	assert.Equal(t, 1, fired)

	assert.Nil(t, c.Update(TickMsg{ID: c.ID() + 1, token: 1}))
	assert.Equal(t, 1, fired, "ticks from another clock are ignored")

	src.Stop()
	src.Stop()

	assert.Nil(t, c.Update(TickMsg{ID: c.ID(), token: 1}))
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, c.Active())
}

func TestClockSourceStoppedByItsCallback(t *testing.T) {
	c := NewClock()

	var src interface{ Stop() }

	src = c.Every(time.Second, func() { src.Stop() })
	c.Flush()

	assert.Nil(t, c.Update(TickMsg{ID: c.ID(), token: 1}))
	assert.Equal(t, 0, c.Active())
}

func TestBubbleTab(t *testing.T) {
	m, _, _ := newTestModel(t)

	require.Equal(t, tabBubble, m.active)
	assert.Contains(t, m.View(), "Ready")

	cmd := press(m, "s")
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.clock.Active())
	assert.Contains(t, m.View(), "Inhale...")

	tick(m, 4)
	assert.Contains(t, m.View(), "Hold...")

	press(m, "p")
	assert.Equal(t, 0, m.clock.Active())
	assert.Contains(t, m.View(), "Paused")
}

func TestSelectAnimal(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "right")
	assert.Equal(t, "cat", m.bubble.Animal().Name)

	press(m, "left", "left")
	assert.Equal(t, "lion", m.bubble.Animal().Name)

	press(m, "s", "right")
	assert.Equal(t, "bear", m.bubble.Animal().Name)
	assert.True(t, m.bubble.Running())
	assert.Equal(t, 1, m.clock.Active())
}

func TestBoxTab(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "3", "s")
	require.Equal(t, tabBox, m.active)
	assert.Contains(t, m.View(), "Inhale...")

	tick(m, 4)
	assert.Equal(t, 1, m.box.View(m.now()).Index)

	// both features share the clock but keep their own tick sources
	press(m, "2", "s")
	assert.Equal(t, 2, m.clock.Active())

	press(m, "3", "p")
	assert.Equal(t, 1, m.clock.Active())
	assert.Contains(t, m.View(), "Stopped")
}

func TestSoundsTab(t *testing.T) {
	m, player, _ := newTestModel(t)

	press(m, "4", "down", "enter")

	assert.Equal(t, []string{"forest.mp3"}, player.played)
	assert.Equal(t, "forest", m.amb.Current())
	assert.Contains(t, m.View(), "playing")

	press(m, "x")
	assert.Empty(t, m.amb.Current())
	assert.Equal(t, 0, m.clock.Active())

	player.fail = true

	press(m, "enter")
	assert.Empty(t, m.amb.Current())
	assert.Contains(t, m.View(), "Unable to play forest")
}

func TestStoryModal(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "5", "down", "enter")
	require.True(t, m.storyOpen)

	forest := m.cat.Stories.At(1)
	assert.Contains(t, m.View(), forest.Title)

	// tab keys are swallowed while the modal is open
	press(m, "tab")
	assert.Equal(t, tabStories, m.active)

	press(m, "esc")
	assert.False(t, m.storyOpen)
}

func TestThemeIsPersisted(t *testing.T) {
	m, _, store := newTestModel(t)

	press(m, "6", "right", "enter")

	assert.Equal(t, []string{"forest"}, store.themes)
	assert.Equal(t, "forest", m.theme.Name)
}

func TestMoodTab(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "1", "right", "enter")

	okay, ok := m.cat.Moods.Get("okay")
	require.True(t, ok)
	assert.Contains(t, m.View(), okay.Message)
}

func TestProfilesMsg(t *testing.T) {
	m, _, _ := newTestModel(t)

	cat, err := catalog.New([]catalog.Profile{
		{Name: "owl", Emoji: "🦉", Inhale: 5, Hold: 5, Exhale: 5},
	})
	require.NoError(t, err)

	press(m, "s")
	m.Update(ProfilesMsg{Catalog: cat})

	assert.Equal(t, "bear", m.bubble.Animal().Name)
	assert.True(t, m.bubble.Running())

	press(m, "left")
	assert.Equal(t, "owl", m.bubble.Animal().Name)
}

func TestQuitStopsEverything(t *testing.T) {
	m, player, _ := newTestModel(t)

	press(m, "s", "4", "enter")
	require.Equal(t, 2, m.clock.Active())

	cmd := press(m, "q")
	require.NotNil(t, cmd)

	assert.Equal(t, 0, m.clock.Active())
	assert.Positive(t, player.stops)
}
