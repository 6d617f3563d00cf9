package breathing

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/mindful/internal/phase"
)

// Notifier is told when a breathing goal is reached.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends system notifications.
type DesktopNotifier struct {
	Icon string
}

// Notify displays the notification without blocking the caller.
func (d DesktopNotifier) Notify(title, message string) error {
	go func() {
		if err := beeep.Notify(title, message, d.Icon); err != nil {
			slog.Warn("unable to display notification", slog.Any("error", err))
		}
	}()

	return nil
}

// goal fires the notifier every time a multiple of target cycles completes.
type goal struct {
	notifier Notifier
	feature  string
	target   int
}

func (g *goal) observe(t phase.Transition) {
	if g.notifier == nil || g.target <= 0 {
		return
	}

	if t.Index != 0 || t.Cycle == 0 || t.Cycle%g.target != 0 {
		return
	}

	msg := fmt.Sprintf("You finished %d %s breaths. Great job!", t.Cycle, g.feature)

	if err := g.notifier.Notify("Breathing goal reached", msg); err != nil {
		slog.Warn("goal notification failed",
			slog.String("feature", g.feature),
			slog.Any("error", err),
		)
	}
}
