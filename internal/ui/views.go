package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	title = "Mindful Kids"

	// bubble size at rest, in cells
	bubbleWidth  = 18
	bubbleHeight = 5

	boxAnimal = "🐢"
)

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.styles.Title.Render(title) + "\n\n")
	s.WriteString(m.tabsView() + "\n\n")

	if m.storyOpen {
		s.WriteString(m.storyView())
	} else {
		s.WriteString(m.tabView())
	}

	if m.amb.Current() != "" {
		s.WriteString("\n\n" + drawParticles(m.amb.Particles(m.now()), m.now()))
	}

	if m.status != "" {
		s.WriteString("\n\n" + m.styles.Hint.Render(m.status))
	}

	s.WriteString("\n\n" + m.help.View(keyHelp{keys: m.keys, tab: m.active}))

	return m.styles.App.Render(s.String())
}

func (m *Model) tabsView() string {
	tabs := make([]string, len(tabNames))

	for i, name := range tabNames {
		if tab(i) == m.active {
			tabs[i] = m.styles.ActiveTab.Render(name)
			continue
		}

		tabs[i] = m.styles.Tab.Render(name)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) tabView() string {
	switch m.active {
	case tabMood:
		return m.moodView()
	case tabBubble:
		return m.bubbleView()
	case tabBox:
		return m.boxView()
	case tabSounds:
		return m.soundsView()
	case tabStories:
		return m.storiesView()
	case tabThemes:
		return m.themesView()
	}

	return ""
}

func (m *Model) moodView() string {
	var s strings.Builder

	s.WriteString(m.styles.Text.Render("How are you feeling today?") + "\n\n")

	cards := make([]string, 0, m.cat.Moods.Len())

	for i, mood := range m.cat.Moods.All() {
		if i == m.mood {
			cards = append(cards, m.styles.Selected.Render("["+mood.Emoji+"]"))
			continue
		}

		cards = append(cards, " "+mood.Emoji+" ")
	}

	s.WriteString(strings.Join(cards, " ") + "\n\n")

	mood := m.cat.Moods.At(m.mood)

	if m.moodShown {
		s.WriteString(m.styles.Accent.Render(mood.Message))
	} else {
		s.WriteString(m.styles.Hint.Render(capitalize(mood.Name)))
	}

	return s.String()
}

func (m *Model) bubbleView() string {
	v := m.bubble.View()

	var s strings.Builder

	animals := make([]string, 0, m.cat.Profiles.Len())

	for i, p := range m.cat.Profiles.All() {
		if i == m.animal {
			animals = append(animals, m.styles.Selected.Render("["+p.Emoji+"]"))
			continue
		}

		animals = append(animals, " "+p.Emoji+" ")
	}

	s.WriteString(strings.Join(animals, " ") + "\n")
	s.WriteString(m.styles.Hint.Render(
		fmt.Sprintf("%s: %s", capitalize(v.Animal.Name), v.Animal.Desc),
	) + "\n\n")

	bubble := m.styles.Bubble.
		Width(int(bubbleWidth * v.Scale)).
		Height(int(bubbleHeight * v.Scale)).
		Render(v.Animal.Emoji + "\n\n" + v.Text)

	s.WriteString(bubble + "\n\n")
	s.WriteString(m.progress.ViewAs(v.Progress()) + "\n")
	s.WriteString(m.styles.Hint.Render(m.counter(v.Running, v.Remaining, v.Cycle)))

	return s.String()
}

func (m *Model) boxView() string {
	v := m.box.View(m.now())

	var s strings.Builder

	s.WriteString(drawBox(v, m.styles) + "\n\n")
	s.WriteString(boxAnimal + " " + m.styles.Accent.Render(v.Text) + "\n\n")
	s.WriteString(m.progress.ViewAs(v.Progress) + "\n")
	s.WriteString(m.styles.Hint.Render(m.counter(v.Running, v.Remaining, v.Cycle)))

	return s.String()
}

func (m *Model) counter(running bool, remaining, cycle int) string {
	if !running {
		return "Press s to start"
	}

	return fmt.Sprintf("%ds left · %d breaths", remaining, cycle)
}

func (m *Model) soundsView() string {
	var s strings.Builder

	s.WriteString(m.styles.Text.Render("Pick a calm sound") + "\n\n")

	for i, sound := range m.cat.Sounds.All() {
		cursor := "  "
		if i == m.sound {
			cursor = m.styles.Accent.Render("> ")
		}

		name := lipgloss.NewStyle().
			Foreground(lipgloss.Color(sound.Color)).
			Render(sound.Particle.Emoji + " " + capitalize(sound.Name))

		if sound.Name == m.amb.Current() {
			name += m.styles.Hint.Render("  ♪ playing")
		}

		s.WriteString(cursor + name + "\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (m *Model) storiesView() string {
	var s strings.Builder

	s.WriteString(m.styles.Text.Render("Choose a story") + "\n\n")

	for i, story := range m.cat.Stories.All() {
		cursor := "  "
		if i == m.storyIdx {
			cursor = m.styles.Accent.Render("> ")
		}

		s.WriteString(cursor + story.Icon + " " + story.Title + "\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (m *Model) storyView() string {
	story := m.cat.Stories.At(m.storyIdx)

	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(story.Color)).
		Render(story.Icon + " " + story.Title)

	return m.styles.Modal.Render(heading + "\n\n" + m.story.View())
}

func (m *Model) themesView() string {
	var s strings.Builder

	s.WriteString(m.styles.Text.Render("Choose your colours") + "\n\n")

	swatches := make([]string, 0, m.cat.Themes.Len())
	labels := make([]string, 0, m.cat.Themes.Len())

	for i, theme := range m.cat.Themes.All() {
		swatches = append(swatches, m.styles.Swatch(theme.Swatch).Render("      "))

		label := fmt.Sprintf("%-6s", capitalize(theme.Name))

		switch {
		case i == m.themeIdx:
			label = m.styles.Selected.Render(label)
		case theme.Name == m.theme.Name:
			label = m.styles.Accent.Render(label)
		default:
			label = m.styles.Hint.Render(label)
		}

		labels = append(labels, label)
	}

	s.WriteString(strings.Join(swatches, "  ") + "\n")
	s.WriteString(strings.Join(labels, "  "))

	return s.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
