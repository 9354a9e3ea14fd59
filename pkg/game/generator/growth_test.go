package generator

import (
	"errors"
	"math/rand"
	"testing"

	"mazter/pkg/engine/world"
	"mazter/pkg/game/maze"
	"mazter/pkg/game/specs"
)

func TestGenerate_Levels(t *testing.T) {
	g := NewGrowth(rand.New(rand.NewSource(1)))
	for level := 1; level <= 12; level++ {
		m, err := g.Generate(specs.ForLevel(level))
		if err != nil {
			t.Fatalf("Generate(level %d) error: %v", level, err)
		}
		if _, ok := m.Exit(); !ok {
			t.Errorf("level %d: no exit", level)
		}
		if m.Name() != specs.ForLevel(level).Name {
			t.Errorf("level %d: Name = %q", level, m.Name())
		}
	}
}

func TestGenerate_RetriesOnNoExit(t *testing.T) {
	calls := 0
	g := NewGrowth(rand.New(rand.NewSource(1))).WithBuild(func(sp specs.Specs, rng *rand.Rand) (*maze.Maze, error) {
		calls++
		m := maze.New(sp.Name, sp.Dim)
		if calls < 3 {
			return m, maze.ErrNoExit
		}
		m.SetStart(world.NewPos(2, 2))
		m.SetExit(world.NewPos(0, 2))
		return m, nil
	})
	m, err := g.Generate(specs.ForLevel(1))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if calls != 3 {
		t.Errorf("build called %d times, want 3", calls)
	}
	if _, ok := m.Exit(); !ok {
		t.Error("returned maze has no exit")
	}
}

func TestGenerate_GivesUp(t *testing.T) {
	calls := 0
	g := NewGrowth(nil).WithBuild(func(sp specs.Specs, rng *rand.Rand) (*maze.Maze, error) {
		calls++
		return maze.New(sp.Name, sp.Dim), maze.ErrNoExit
	})
	m, err := g.Generate(specs.ForLevel(2))
	if !errors.Is(err, ErrUnplayable) || !errors.Is(err, maze.ErrNoExit) {
		t.Fatalf("Generate error = %v, want ErrUnplayable wrapping ErrNoExit", err)
	}
	if m == nil {
		t.Error("Generate returned no maze")
	}
	if calls != MaxAttempts {
		t.Errorf("build called %d times, want %d", calls, MaxAttempts)
	}
}

func TestGenerate_OtherErrorsStop(t *testing.T) {
	boom := errors.New("boom")
	g := NewGrowth(nil).WithBuild(func(sp specs.Specs, rng *rand.Rand) (*maze.Maze, error) {
		return nil, boom
	})
	if _, err := g.Generate(specs.ForLevel(3)); !errors.Is(err, boom) {
		t.Errorf("Generate error = %v, want %v", err, boom)
	}
}
