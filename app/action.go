package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mindful/internal/ambience"
	"github.com/ayoisaiah/mindful/internal/apperr"
	"github.com/ayoisaiah/mindful/internal/breathing"
	"github.com/ayoisaiah/mindful/internal/catalog"
	"github.com/ayoisaiah/mindful/internal/config"
	"github.com/ayoisaiah/mindful/internal/osutil"
	"github.com/ayoisaiah/mindful/internal/pathutil"
	"github.com/ayoisaiah/mindful/internal/ui"
	"github.com/ayoisaiah/mindful/store"
)

const (
	envNoColor        = "NO_COLOR"
	envMindfulNoColor = "MINDFUL_NO_COLOR"
)

const paragraphWidth = 72

var (
	errUnknownAnimal = &apperr.Error{
		Message: "unknown animal: %s",
	}

	errUnknownMood = &apperr.Error{
		Message: "unknown mood: %s",
	}

	errUnknownStory = &apperr.Error{
		Message: "unknown story: %s",
	}

	errUnknownTheme = &apperr.Error{
		Message: "unknown theme: %s",
	}
)

// logFile is closed once the command finishes.
var logFile io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig resolves the application paths, reads the config file and
// applies the command-line flags on top. It also starts file logging.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath(), pathutil.SoundsDir()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	if logFile == nil {
		logFile = cfg.SetupLogger(pathutil.LogFilePath())
	}

	slog.Info("mindful started",
		slog.Any("args", ctx.Args().Slice()),
		slog.String("config", pathutil.ConfigFilePath()),
	)

	return cfg, nil
}

// notifier returns the desktop notifier when notifications are enabled.
func notifier(cfg *config.Config) breathing.Notifier {
	if !cfg.Notifications.Enabled {
		return nil
	}

	return breathing.DesktopNotifier{}
}

// defaultAction launches the interactive interface.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	theme := cfg.CLI.Theme
	if theme == "" {
		theme, err = db.ThemeOr(cfg.Display.Theme)
		if err != nil {
			slog.Warn("using configured theme", slog.Any("error", err))
		}
	}

	player := ambience.NewBeepPlayer(cfg.Settings.SoundsDir, cfg.Settings.SoundVolume)

	model := ui.New(ui.Options{
		Catalog:   cat,
		Store:     db,
		Player:    player,
		Notifier:  notifier(cfg),
		Animal:    cfg.Settings.Animal,
		Theme:     theme,
		Sound:     cfg.Settings.Sound,
		CycleGoal: cfg.Settings.CycleGoal,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx.Context))

	config.Watch(pathutil.ConfigFilePath(), func(profiles []catalog.Profile) {
		cat, err := catalog.New(profiles)
		if err != nil {
			return
		}

		p.Send(ui.ProfilesMsg{Catalog: cat})
	})

	_, err = p.Run()

	player.Stop()

	return err
}

// animalsAction prints the breathing patterns, custom ones included.
func animalsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	data := [][]string{
		{"Animal", "Inhale", "Hold", "Exhale", "Description"},
	}

	for _, p := range cat.Profiles.All() {
		name := p.Emoji + " " + p.Name
		if p.Name == cfg.Settings.Animal {
			name = ui.Green(name + " *")
		}

		data = append(data, []string{
			name,
			strconv.Itoa(p.Inhale) + "s",
			strconv.Itoa(p.Hold) + "s",
			strconv.Itoa(p.Exhale) + "s",
			p.Desc,
		})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

// moodAction prints the message for a mood, asking for one if needed.
func moodAction(ctx *cli.Context) error {
	cat := catalog.Default()

	name := ctx.Args().First()
	if name == "" {
		var err error

		name, err = selectMood(cat)
		if err != nil {
			return err
		}
	}

	mood, ok := cat.Moods.Get(name)
	if !ok {
		return errUnknownMood.Fmt(name)
	}

	pterm.Fprintln(config.Stdout, mood.Emoji+"  "+ui.Highlight(mood.Message))

	return nil
}

// storyAction prints a story, asking for one if needed.
func storyAction(ctx *cli.Context) error {
	cat := catalog.Default()

	key := ctx.Args().First()
	if key == "" {
		var err error

		key, err = selectStory(cat)
		if err != nil {
			return err
		}
	}

	story, ok := cat.Stories.Get(key)
	if !ok {
		return errUnknownStory.Fmt(key)
	}

	pterm.Fprintln(config.Stdout, story.Icon+"  "+ui.Hex(story.Color, story.Title))
	pterm.Fprintln(config.Stdout)
	pterm.Fprintln(
		config.Stdout,
		pterm.DefaultParagraph.WithMaxWidth(paragraphWidth).Sprint(story.Text),
	)

	return nil
}

// themeStore is the part of the preference store the theme command needs.
type themeStore interface {
	ThemeOr(fallback string) (string, error)
	SetTheme(name string) error
}

// themeAction prints the saved theme, or saves a new one.
func themeAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	theme, err := changeTheme(db, catalog.Default(), cfg.Display.Theme, ctx.Args().First())
	if err != nil {
		return err
	}

	pterm.Fprintln(config.Stdout, "Theme: "+ui.Hex(theme.Swatch, theme.Name))

	return nil
}

// changeTheme saves name as the theme preference. An empty name prompts for
// one, starting from the saved theme or fallback when nothing is saved.
func changeTheme(
	db themeStore,
	cat *catalog.Catalog,
	fallback, name string,
) (catalog.Theme, error) {
	current, err := db.ThemeOr(fallback)
	if err != nil {
		return catalog.Theme{}, err
	}

	if name == "" {
		name, err = selectTheme(cat, current)
		if err != nil {
			return catalog.Theme{}, err
		}
	}

	theme, ok := cat.Themes.Get(name)
	if !ok {
		return catalog.Theme{}, errUnknownTheme.Fmt(name)
	}

	if theme.Name != current {
		if err := db.SetTheme(theme.Name); err != nil {
			return catalog.Theme{}, err
		}
	}

	return theme, nil
}

// soundsAction lists the ambient sounds and whether their files exist.
func soundsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	files, err := ambience.Available(cfg.Settings.SoundsDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	found := make(map[string]bool, len(files))
	for _, f := range files {
		found[f] = true
	}

	data := [][]string{{"Sound", "File", "Found"}}

	for _, s := range catalog.Default().Sounds.All() {
		status := ui.Red("no")
		if found[s.File] {
			status = ui.Green("yes")
		}

		data = append(data, []string{
			s.Particle.Emoji + " " + s.Name,
			pathutil.StripExtension(s.File),
			status,
		})
	}

	ui.PrintTable(data, config.Stdout)

	pterm.Fprintln(config.Stdout, "Sound files are read from "+cfg.Settings.SoundsDir)

	return nil
}

// editConfigAction handles the edit-config command which opens the mindful
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MINDFUL_NO_COLOR is set
	if _, exists := os.LookupEnv(envMindfulNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	// commands that never load the config do not log
	if logFile == nil {
		return nil
	}

	slog.InfoContext(ctx.Context, "exiting mindful")

	if err := logFile.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}

	logFile = nil

	return nil
}
