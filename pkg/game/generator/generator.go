// Package generator turns level specs into playable mazes.
package generator

import (
	"mazter/pkg/game/maze"
	"mazter/pkg/game/specs"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(sp specs.Specs) (*maze.Maze, error)
	Name() string
}
