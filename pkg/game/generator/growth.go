package generator

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"mazter/pkg/game/maze"
	"mazter/pkg/game/specs"
)

// MaxAttempts is the number of builds tried before giving up on a level
const MaxAttempts = 5

// ErrUnplayable is returned when no attempt produced a maze with an exit
var ErrUnplayable = errors.New("unplayable maze")

// BuildFunc builds one maze. maze.Build is the default.
type BuildFunc func(sp specs.Specs, rng *rand.Rand) (*maze.Maze, error)

// GrowthGenerator grows mazes from a single start cell, retrying when the
// result has no exit
type GrowthGenerator struct {
	rng   *rand.Rand
	build BuildFunc
}

// NewGrowth creates a growth generator drawing from rng, or from a time
// seeded source when rng is nil
func NewGrowth(rng *rand.Rand) *GrowthGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GrowthGenerator{rng: rng, build: maze.Build}
}

// WithBuild replaces the single maze builder
func (g *GrowthGenerator) WithBuild(build BuildFunc) *GrowthGenerator {
	g.build = build
	return g
}

// Name returns the name of this generator
func (g *GrowthGenerator) Name() string {
	return "Growth"
}

// Generate builds a maze for the specs. The last unplayable maze is returned
// along with ErrUnplayable when every attempt failed.
func (g *GrowthGenerator) Generate(sp specs.Specs) (*maze.Maze, error) {
	var last *maze.Maze
	var err error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		last, err = g.build(sp, g.rng)
		if err == nil {
			return last, nil
		}
		if !errors.Is(err, maze.ErrNoExit) {
			return nil, err
		}
		log.Printf("[MAZTER] [WARN] %s: attempt %d/%d: %v", sp.Name, attempt, MaxAttempts, err)
	}
	return last, fmt.Errorf("%w: %s after %d attempts: %w", ErrUnplayable, sp.Name, MaxAttempts, err)
}
