package gameplay

import (
	"mazter/pkg/game/state"
)

// ShowHint highlights the way from the player to the exit, or hides it when
// already shown. It's cosmetic and doesn't take a turn.
func ShowHint(g *state.Game) {
	if g.HintShown {
		clearHint(g)
		return
	}
	player, ok := g.Maze.Player()
	if !ok {
		return
	}
	g.Maze.HighlightPathToExit(player)
	g.HintShown = true
	logMessage(g, "Follow the highlighted path")
}

func clearHint(g *state.Game) {
	if g.HintShown {
		g.Maze.ClearHighlight()
		g.HintShown = false
	}
}
