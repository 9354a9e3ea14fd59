// Package gameplay runs a play session: it picks levels, applies player
// intents to the maze and records achievements.
package gameplay

import (
	"fmt"
	"log"
	"time"

	"mazter/pkg/game/achievements"
	"mazter/pkg/game/audio"
	"mazter/pkg/game/generator"
	"mazter/pkg/game/specs"
	"mazter/pkg/game/state"
)

// ScreenSaverPause is how long a lost screen saver game stays displayed
const ScreenSaverPause = 2 * time.Second

// Options are the settings of a session
type Options struct {
	User        string
	Level       int // 0 for the first level not won
	Levels      int // stop after this many wins, 0 for never
	ScreenSaver bool
	Seed        int64
	DumpDir     string // where F9 writes map.txt
}

// Session is a sequence of levels played by a user
type Session struct {
	Game  *state.Game
	opts  Options
	store *achievements.Store
	gen   generator.GridGenerator
	sound *audio.Player
}

// NewSession checks the user may play the requested level and prepares the game
func NewSession(opts Options, store *achievements.Store, gen generator.GridGenerator, sound *audio.Player) (*Session, error) {
	user := achievements.ScreenSaverUser
	if !opts.ScreenSaver {
		if err := achievements.ValidateUser(opts.User); err != nil {
			return nil, err
		}
		user = opts.User
	}
	var level int
	switch {
	case opts.Level > 0:
		if !opts.ScreenSaver && !store.CanPlay(user, opts.Level) {
			return nil, fmt.Errorf("%w: user %q must win the previous levels before trying level %d",
				achievements.ErrLevelLocked, user, opts.Level)
		}
		level = opts.Level
	case opts.ScreenSaver:
		level = 1
	default:
		level = store.FirstNotWon(user)
	}
	g := state.NewGame(user, level, opts.ScreenSaver)
	g.Seed = opts.Seed
	return &Session{Game: g, opts: opts, store: store, gen: gen, sound: sound}, nil
}

// StartLevel builds the maze of the current level
func (s *Session) StartLevel() error {
	sp := specs.ForLevel(s.Game.Level)
	m, err := s.gen.Generate(sp)
	if err != nil {
		return fmt.Errorf("building level %d: %w", s.Game.Level, err)
	}
	s.Game.SetMaze(m)
	log.Printf("[MAZTER] [INFO] user %q starts level %d (%dx%d)", s.Game.User, s.Game.Level, m.Dim().W, m.Dim().H)
	return nil
}

// Finish closes a won or lost level. A win is recorded and moves to the next
// level not won; a loss shows the way from the start to the exit and the
// level is retried. It returns true when the session is over.
func (s *Session) Finish() (bool, error) {
	g := s.Game
	m := g.Maze
	if !m.IsWon() {
		if start, ok := m.Start(); ok {
			m.HighlightPathToExit(start)
		}
		log.Printf("[MAZTER] [INFO] user %q lost level %d", g.User, g.Level)
		return false, nil
	}
	s.sound.Play(audio.CueWin)
	g.LevelsWon++
	log.Printf("[MAZTER] [INFO] user %q won level %d", g.User, g.Level)
	if s.opts.Levels > 0 && g.LevelsWon >= s.opts.Levels {
		return true, nil
	}
	if g.ScreenSaver {
		g.Level++
		return false, nil
	}
	next, err := s.store.Advance(achievements.Achievement{User: g.User, Level: g.Level})
	if err != nil {
		return false, fmt.Errorf("saving achievement: %w", err)
	}
	g.Level = next
	return false, nil
}

// AutoContinue tells whether the next level starts by itself after a finished
// one, and after which delay. Otherwise the front-end waits for a key.
func (s *Session) AutoContinue() (time.Duration, bool) {
	if !s.Game.ScreenSaver {
		return 0, false
	}
	if s.Game.Maze != nil && s.Game.Maze.IsWon() {
		return 0, true
	}
	return ScreenSaverPause, true
}

// Options returns the session settings
func (s *Session) Options() Options {
	return s.opts
}
