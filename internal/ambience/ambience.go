package ambience

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/mindful/internal/catalog"
)

// Ambience pairs an ambient sound with its particle visual.
type Ambience struct {
	player  Player
	spawner *Spawner
	sounds  catalog.Table[catalog.Sound]
	current string
}

// New returns an idle Ambience.
func New(player Player, spawner *Spawner, sounds catalog.Table[catalog.Sound]) *Ambience {
	return &Ambience{
		player:  player,
		spawner: spawner,
		sounds:  sounds,
	}
}

// Play stops the current sound and visual, then starts the named pair. Any
// playback failure is swallowed: nothing starts and Play reports false.
func (a *Ambience) Play(name string) bool {
	a.Stop()

	sound, ok := a.sounds.Get(name)
	if !ok {
		return false
	}

	if err := a.player.Play(sound.File); err != nil {
		slog.Debug("ambient sound unavailable",
			slog.String("sound", name),
			slog.Any("error", err),
		)

		return false
	}

	a.spawner.Start(sound.Particle)
	a.current = name

	slog.Debug("ambient sound started", slog.String("sound", name))

	return true
}

// Stop silences the current sound and clears its visual.
func (a *Ambience) Stop() {
	a.player.Stop()
	a.spawner.Stop()
	a.current = ""
}

// Current returns the name of the playing sound, if any.
func (a *Ambience) Current() string {
	return a.current
}

// Particles returns the visual particles alive at now.
func (a *Ambience) Particles(now time.Time) []Particle {
	return a.spawner.Particles(now)
}
