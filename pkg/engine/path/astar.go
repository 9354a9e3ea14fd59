// Package path finds shortest routes on grid graphs.
package path

import (
	"math"

	"github.com/zyedidia/generic/heap"

	"mazter/pkg/engine/world"
)

// Graph is a grid whose cells can be entered or not
type Graph interface {
	Dim() world.Dim
	// EnterableNeighbours returns the orthogonal neighbours of p a mover can step onto
	EnterableNeighbours(p world.Pos) []world.Pos
}

type node struct {
	pos world.Pos
	f   int
}

// heuristic doubles the truncated euclidean distance. It overestimates, so
// paths are short but not always the shortest.
func heuristic(a, b world.Pos) int {
	return 2 * int(world.EuclideanDistance(a, b))
}

// FindPath returns a route from start to goal, excluding start and ending
// with goal, and whether one exists. The goal cell itself doesn't need to be
// enterable: the search stops on the first enterable cell siding it.
func FindPath(g Graph, start, goal world.Pos) ([]world.Pos, bool) {
	if start == goal {
		return []world.Pos{}, true
	}
	if world.Sides(start, goal) {
		return []world.Pos{goal}, true
	}
	dim := g.Dim()
	closed := world.NewPosSet(dim)
	cameFrom := world.NewPosMap(dim, world.Pos{X: -1, Y: -1})
	gScore := world.NewPosMap(dim, math.MaxInt)
	open := heap.New(func(a, b node) bool {
		return a.f < b.f
	})
	gScore.Set(start, 0)
	open.Push(node{pos: start, f: heuristic(start, goal)})
	for {
		cur, ok := open.Pop()
		if !ok {
			return nil, false
		}
		current := cur.pos
		if closed.Get(current) {
			continue
		}
		closed.Set(current, true)
		for _, n := range g.EnterableNeighbours(current) {
			if world.Sides(n, goal) {
				return reconstruct(cameFrom, start, current, n, goal), true
			}
			if closed.Get(n) {
				continue
			}
			tentative := gScore.Get(current) + 1
			if tentative < gScore.Get(n) {
				cameFrom.Set(n, current)
				gScore.Set(n, tentative)
				open.Push(node{pos: n, f: tentative + heuristic(n, goal)})
			}
		}
	}
}

func reconstruct(cameFrom *world.PosMap[world.Pos], start, current, n, goal world.Pos) []world.Pos {
	var chain []world.Pos
	for p := current; p != start; p = cameFrom.Get(p) {
		chain = append(chain, p)
	}
	path := make([]world.Pos, 0, len(chain)+2)
	for i := len(chain) - 1; i >= 0; i-- {
		path = append(path, chain[i])
	}
	return append(path, n, goal)
}
