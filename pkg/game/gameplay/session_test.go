package gameplay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	engineinput "mazter/pkg/engine/input"
	"mazter/pkg/engine/world"
	"mazter/pkg/game/achievements"
	"mazter/pkg/game/maze"
	"mazter/pkg/game/specs"
)

// corridorGen builds every level as a monster-less corridor: start at 1,1
// and exit five steps east
type corridorGen struct{}

func (corridorGen) Name() string { return "corridor" }

func (corridorGen) Generate(sp specs.Specs) (*maze.Maze, error) {
	m := maze.New(sp.Name, world.NewDim(7, 4))
	for x := 1; x <= 5; x++ {
		m.OpenRoom(world.NewPos(x, 1))
	}
	m.SetStart(world.NewPos(1, 1))
	m.SetExit(world.NewPos(6, 1))
	m.SetMaxMonsters(0)
	m.SetLives(sp.Lives)
	return m, nil
}

func openStore(t *testing.T) *achievements.Store {
	t.Helper()
	s, err := achievements.Open(filepath.Join(t.TempDir(), achievements.FileName))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	return s
}

func newSession(t *testing.T, opts Options, store *achievements.Store) *Session {
	t.Helper()
	s, err := NewSession(opts, store, corridorGen{}, nil)
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}
	if err := s.StartLevel(); err != nil {
		t.Fatalf("StartLevel error: %v", err)
	}
	return s
}

func apply(s *Session, a engineinput.Action, times int) {
	for i := 0; i < times; i++ {
		s.Apply(engineinput.Intent{Action: a})
	}
}

func TestNewSession_InvalidUser(t *testing.T) {
	_, err := NewSession(Options{User: " "}, openStore(t), corridorGen{}, nil)
	if !errors.Is(err, achievements.ErrInvalidUser) {
		t.Errorf("NewSession error = %v, want ErrInvalidUser", err)
	}
}

func TestNewSession_LockedLevel(t *testing.T) {
	_, err := NewSession(Options{User: "alice", Level: 3}, openStore(t), corridorGen{}, nil)
	if !errors.Is(err, achievements.ErrLevelLocked) {
		t.Errorf("NewSession error = %v, want ErrLevelLocked", err)
	}
}

func TestNewSession_StartsAtFirstNotWon(t *testing.T) {
	store := openStore(t)
	if err := store.Save(achievements.Achievement{User: "alice", Level: 1}); err != nil {
		t.Fatal(err)
	}
	s := newSession(t, Options{User: "alice"}, store)
	if s.Game.Level != 2 {
		t.Errorf("Level = %d, want 2", s.Game.Level)
	}
}

func TestSession_WinAdvances(t *testing.T) {
	store := openStore(t)
	s := newSession(t, Options{User: "alice"}, store)
	apply(s, engineinput.ActionMoveEast, 5)
	if !s.Game.Maze.IsWon() {
		t.Fatal("maze not won after walking to the exit")
	}
	done, err := s.Finish()
	if err != nil || done {
		t.Fatalf("Finish = %v, %v, want false, nil", done, err)
	}
	if s.Game.Level != 2 {
		t.Errorf("Level = %d, want 2", s.Game.Level)
	}
	if store.FirstNotWon("alice") != 2 {
		t.Errorf("FirstNotWon = %d, want 2", store.FirstNotWon("alice"))
	}
	if _, auto := s.AutoContinue(); auto {
		t.Error("AutoContinue = true for a human player")
	}
}

func TestSession_LevelsLimit(t *testing.T) {
	s := newSession(t, Options{User: "alice", Levels: 1}, openStore(t))
	apply(s, engineinput.ActionMoveEast, 5)
	done, err := s.Finish()
	if err != nil || !done {
		t.Errorf("Finish = %v, %v, want true, nil", done, err)
	}
}

func TestSession_LossShowsPath(t *testing.T) {
	s := newSession(t, Options{User: "alice"}, openStore(t))
	apply(s, engineinput.ActionGiveUp, 1)
	if !s.Game.Maze.IsLost() {
		t.Fatal("maze not lost after giving up")
	}
	apply(s, engineinput.ActionMoveEast, 1)
	if p, _ := s.Game.Maze.Player(); p != world.NewPos(1, 1) {
		t.Errorf("player moved to %v after the game ended", p)
	}
	done, err := s.Finish()
	if err != nil || done {
		t.Fatalf("Finish = %v, %v, want false, nil", done, err)
	}
	if s.Game.Level != 1 {
		t.Errorf("Level = %d, want the same level", s.Game.Level)
	}
	for x := 2; x <= 6; x++ {
		if !s.Game.Maze.IsHighlighted(world.NewPos(x, 1)) {
			t.Errorf("%d,1 not highlighted after a loss", x)
		}
	}
}

func TestSession_ScreenSaver(t *testing.T) {
	store := openStore(t)
	s := newSession(t, Options{ScreenSaver: true, Level: 4}, store)
	if s.Game.User != achievements.ScreenSaverUser {
		t.Errorf("User = %q, want %q", s.Game.User, achievements.ScreenSaverUser)
	}
	apply(s, engineinput.ActionAutoMove, 5)
	if !s.Game.Maze.IsWon() {
		t.Fatal("auto moves didn't reach the exit")
	}
	if delay, auto := s.AutoContinue(); !auto || delay != 0 {
		t.Errorf("AutoContinue = %v, %v, want 0, true", delay, auto)
	}
	if _, err := s.Finish(); err != nil {
		t.Fatalf("Finish error: %v", err)
	}
	if s.Game.Level != 5 {
		t.Errorf("Level = %d, want 5", s.Game.Level)
	}
	if len(store.Records()) != 0 {
		t.Errorf("screen saver saved %d records", len(store.Records()))
	}
}

func TestApply_HintToggles(t *testing.T) {
	s := newSession(t, Options{User: "alice"}, openStore(t))
	exit := world.NewPos(6, 1)
	apply(s, engineinput.ActionHint, 1)
	if !s.Game.HintShown || !s.Game.Maze.IsHighlighted(exit) {
		t.Fatal("hint not shown")
	}
	if s.Game.Maze.Turn() != 0 {
		t.Errorf("hint took a turn")
	}
	apply(s, engineinput.ActionHint, 1)
	if s.Game.HintShown || s.Game.Maze.IsHighlighted(exit) {
		t.Error("second hint didn't hide the path")
	}
	apply(s, engineinput.ActionHint, 1)
	apply(s, engineinput.ActionMoveEast, 1)
	if s.Game.HintShown {
		t.Error("hint still shown after a move")
	}
}

func TestApply_WaitAndQuit(t *testing.T) {
	s := newSession(t, Options{User: "alice"}, openStore(t))
	apply(s, engineinput.ActionWait, 2)
	if s.Game.Maze.Turn() != 2 {
		t.Errorf("Turn = %d, want 2", s.Game.Maze.Turn())
	}
	apply(s, engineinput.ActionQuit, 1)
	if !s.Game.Quit {
		t.Error("Quit = false after the quit intent")
	}
}

func TestApply_DevMap(t *testing.T) {
	dir := t.TempDir()
	s := newSession(t, Options{User: "alice", DumpDir: dir}, openStore(t))
	apply(s, engineinput.ActionDevMap, 1)
	if _, err := os.Stat(filepath.Join(dir, "map.txt")); err != nil {
		t.Fatalf("map.txt not written: %v", err)
	}
	msgs := strings.Join(s.Game.Messages, "\n")
	if !strings.Contains(msgs, "map.txt") || !strings.Contains(msgs, ".html") {
		t.Errorf("Messages = %q, want the dump and screenshot paths", msgs)
	}
}
