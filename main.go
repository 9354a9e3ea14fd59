package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"mazter/pkg/engine/terminal"
	"mazter/pkg/game/achievements"
	"mazter/pkg/game/audio"
	"mazter/pkg/game/config"
	"mazter/pkg/game/devtools"
	"mazter/pkg/game/gameplay"
	"mazter/pkg/game/generator"
	"mazter/pkg/game/menu"
	"mazter/pkg/game/renderer"
	"mazter/pkg/game/renderer/ebiten"
	"mazter/pkg/game/renderer/tui"
	"mazter/pkg/game/specs"
)

// args are the command line arguments
type args struct {
	build       bool
	reset       bool
	hof         bool
	keys        bool
	level       int
	levels      int
	user        string
	screenSaver bool
	gui         bool
	dump        bool
	seed        int64
}

func main() {
	var a args
	flag.BoolVar(&a.build, "build", false, "print a maze instead of playing (the level given by --level, or one fitting the terminal)")
	flag.BoolVar(&a.reset, "reset", false, "remove the achievements of the user, printing them")
	flag.BoolVar(&a.hof, "hof", false, "print the hall of fame")
	flag.BoolVar(&a.keys, "keys", false, "print the key bindings")
	flag.IntVar(&a.level, "level", 0, "level to play or build, default is the first level not won")
	flag.IntVar(&a.levels, "levels", 0, "quit after winning this many levels")
	flag.StringVar(&a.user, "user", os.Getenv("USER"), "name of the player")
	flag.BoolVar(&a.screenSaver, "screen-saver", false, "let the computer play, forever")
	flag.BoolVar(&a.gui, "gui", false, "play in a window instead of the terminal")
	flag.BoolVar(&a.dump, "dump", false, "with --build, also write the maze to map.txt")
	flag.Int64Var(&a.seed, "seed", 0, "random seed, overrides MAZTER_SEED")
	flag.Parse()

	if err := run(a); err != nil {
		fmt.Fprintln(os.Stderr, renderer.ColorDenied.Sprint(err))
		os.Exit(1)
	}
}

func run(a args) error {
	cfg := config.Load()
	if a.seed != 0 {
		cfg.Seed = a.seed
	}
	playing := !a.build && !a.reset && !a.hof && !a.keys
	var fallback io.Writer = os.Stderr
	if playing {
		// the terminal belongs to the game
		fallback = nil
	}
	closeLog, err := cfg.SetupLog(fallback)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()
	cfg.InitLocale()

	seed := cfg.SeedOrNow()
	rng := rand.New(rand.NewSource(seed))

	store, err := achievements.Open(cfg.AchievementsPath(achievements.FileName))
	if err != nil {
		return err
	}

	switch {
	case a.keys:
		menu.PrintBindings(os.Stdout)
		return nil
	case a.hof:
		renderer.PrintHallOfFame(os.Stdout, store.HallOfFame())
		return nil
	case a.reset:
		return resetUser(store, a.user)
	case a.build:
		return buildMaze(store, rng, a, seed)
	}

	session, err := gameplay.NewSession(gameplay.Options{
		User:        a.user,
		Level:       a.level,
		Levels:      a.levels,
		ScreenSaver: a.screenSaver,
		Seed:        seed,
		DumpDir:     cfg.DataDir,
	}, store, generator.NewGrowth(rng), audio.NewPlayer(cfg.Sound))
	if err != nil {
		return err
	}
	var frontend renderer.Frontend = tui.New(cfg.Tick)
	if a.gui {
		frontend = ebiten.New(cfg.Tick)
	} else if !terminal.IsTerminal() {
		return fmt.Errorf("playing needs a terminal, use --build to print a maze")
	}
	return renderer.Run(frontend, session)
}

func resetUser(store *achievements.Store, user string) error {
	if err := achievements.ValidateUser(user); err != nil {
		return err
	}
	n, err := store.Reset(user, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, renderer.FormatString("TITLE{%d} GT{achievements removed}", n))
	return nil
}

func buildMaze(store *achievements.Store, rng *rand.Rand, a args, seed int64) error {
	var sp specs.Specs
	if a.level > 0 {
		if !store.CanPlay(a.user, a.level) {
			return fmt.Errorf("%w: user %q must win the previous levels before seeing level %d",
				achievements.ErrLevelLocked, a.user, a.level)
		}
		sp = specs.ForLevel(a.level)
	} else {
		sp = specs.ForTerminal(rng, terminal.Dim())
	}
	m, err := generator.NewGrowth(rng).Generate(sp)
	if err != nil {
		return err
	}
	renderer.PrintMaze(os.Stdout, m, sp.LocalizedStatus())
	if !a.dump {
		return nil
	}
	info := devtools.DumpInfo{Level: a.level, Seed: seed, User: a.user}
	path, err := devtools.DumpMazeToFile(".", m, info)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, renderer.FormatString("GT{Map dumped to} %s", path))
	if path, err = devtools.SaveScreenshotHTML(".", m, info); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, renderer.FormatString("GT{Screenshot saved to} %s", path))
	return nil
}
