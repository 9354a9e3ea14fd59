// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"fmt"
	"math"
)

// Pos is a cell position in a grid. X grows to the east, Y to the south.
type Pos struct {
	X int
	Y int
}

// NewPos creates a position
func NewPos(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns "x,y"
func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// ManhattanDistance returns |ax-bx| + |ay-by|
func ManhattanDistance(a, b Pos) int {
	return absDiff(a.X, b.X) + absDiff(a.Y, b.Y)
}

// SqEuclideanDistance returns the squared straight-line distance between a and b
func SqEuclideanDistance(a, b Pos) int {
	w := absDiff(a.X, b.X)
	h := absDiff(a.Y, b.Y)
	return w*w + h*h
}

// EuclideanDistance returns the straight-line distance between a and b
func EuclideanDistance(a, b Pos) float64 {
	return math.Sqrt(float64(SqEuclideanDistance(a, b)))
}

// Sides tells whether a and b are orthogonally adjacent
func Sides(a, b Pos) bool {
	return ManhattanDistance(a, b) == 1
}

// InDir returns the position one step away in the given direction.
// Stepping North from y=0 or West from x=0 fails; the other edges are
// the owning grid's concern (see Dim.InDir).
func (p Pos) InDir(dir Direction) (Pos, bool) {
	switch dir {
	case North:
		if p.Y == 0 {
			return p, false
		}
	case West:
		if p.X == 0 {
			return p, false
		}
	}
	if !dir.IsValid() {
		return p, false
	}
	dx, dy := dir.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}, true
}

// DirTo returns the direction from p to q when both are aligned on a row or
// a column. It fails for equal or unaligned positions.
func (p Pos) DirTo(q Pos) (Direction, bool) {
	switch {
	case p == q:
		return North, false
	case p.X == q.X && q.Y < p.Y:
		return North, true
	case p.X == q.X:
		return South, true
	case p.Y == q.Y && q.X > p.X:
		return East, true
	case p.Y == q.Y:
		return West, true
	default:
		return North, false
	}
}

// StepDirTo returns the direction from p to q only when q is adjacent to p
func (p Pos) StepDirTo(q Pos) (Direction, bool) {
	if !Sides(p, q) {
		return North, false
	}
	return p.DirTo(q)
}
