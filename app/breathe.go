package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mindful/internal/breathing"
	"github.com/ayoisaiah/mindful/internal/config"
	"github.com/ayoisaiah/mindful/internal/phase"
	"github.com/ayoisaiah/mindful/internal/timeutil"
	"github.com/ayoisaiah/mindful/internal/ui"
)

// practice is a breathing feature driven from the terminal.
type practice struct {
	start func()
	pause func()

	// position reports the current phase index and completed cycles
	position func() (index, cycle int)
	seq      phase.Sequence
	icon     string
	name     string
}

func bubblePractice(b *breathing.Bubble) practice {
	animal := b.Animal()

	return practice{
		start: b.Start,
		pause: b.Pause,
		position: func() (int, int) {
			v := b.View()
			return v.Index, v.Cycle
		},
		seq:  animal.Sequence(),
		icon: animal.Emoji,
		name: animal.Name,
	}
}

func boxPractice(b *breathing.Box) practice {
	return practice{
		start: b.Start,
		pause: b.Pause,
		position: func() (int, int) {
			v := b.View(time.Now())
			return v.Index, v.Cycle
		},
		seq:  breathing.BoxSequence(),
		icon: "🐢",
		name: "box",
	}
}

// breatheAction runs a breathing pattern in the terminal until the requested
// number of cycles completes or the user interrupts it.
func breatheAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	var opts []breathing.Option

	if n := notifier(cfg); n != nil && cfg.Settings.CycleGoal > 0 {
		opts = append(opts, breathing.WithGoal(cfg.Settings.CycleGoal, n))
	}

	clock := phase.NewLoopClock()

	var p practice

	if ctx.Bool("box") {
		p = boxPractice(breathing.NewBox(clock, opts...))
	} else {
		animal, ok := cat.Profiles.Get(cfg.Settings.Animal)
		if !ok {
			return errUnknownAnimal.Fmt(cfg.Settings.Animal)
		}

		p = bubblePractice(breathing.NewBubble(clock, animal, opts...))
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runPractice(sigCtx, clock, p, ctx.Int("cycles"))
}

func runPractice(
	ctx context.Context,
	clock *phase.LoopClock,
	p practice,
	cycles int,
) error {
	started := time.Now()

	pterm.Fprintln(config.Stdout, fmt.Sprintf(
		"%s %s breathing. Press Ctrl-C to stop.\n", p.icon, ui.Highlight(p.name),
	))

	p.start()

	index, cycle := p.position()
	printPhase(p.seq[index])

	defer func() {
		p.pause()

		elapsed := timeutil.Clock(time.Since(started))

		pterm.Fprintln(config.Stdout, fmt.Sprintf(
			"\nYou breathed for %s and finished %d breaths.", elapsed, cycle,
		))

		slog.Info("breathing practice finished",
			slog.String("pattern", p.name),
			slog.Int("cycles", cycle),
			slog.String("elapsed", elapsed),
		)
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case fire := <-clock.C():
			fire()
		}

		i, c := p.position()
		if i == index && c == cycle {
			continue
		}

		index, cycle = i, c

		if cycles > 0 && cycle >= cycles {
			return nil
		}

		printPhase(p.seq[index])
	}
}

func printPhase(ph phase.Phase) {
	pterm.Fprintln(config.Stdout, fmt.Sprintf(
		"%s %s",
		ui.PhaseColor(ph.Label, fmt.Sprintf("%-8s", ph.Label+"...")),
		ui.Highlight(fmt.Sprintf("%ds", ph.Seconds)),
	))
}
