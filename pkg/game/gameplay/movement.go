package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	engineinput "mazter/pkg/engine/input"
	"mazter/pkg/engine/world"
	"mazter/pkg/game/state"
)

// directionFor returns the direction of a movement action
func directionFor(a engineinput.Action) (world.Direction, bool) {
	switch a {
	case engineinput.ActionMoveNorth:
		return world.North, true
	case engineinput.ActionMoveEast:
		return world.East, true
	case engineinput.ActionMoveSouth:
		return world.South, true
	case engineinput.ActionMoveWest:
		return world.West, true
	default:
		return world.North, false
	}
}

// MovePlayer tries a player step. A blocked step doesn't take a turn.
func MovePlayer(g *state.Game, dir world.Direction) {
	clearHint(g)
	g.Maze.TryMove(dir, &g.Events)
}

// Wait lets the monsters play
func Wait(g *state.Game) {
	clearHint(g)
	g.Maze.EndPlayerTurn(&g.Events)
}

// dynamicGet translates message ids that aren't literals at the call site
var dynamicGet = gotext.Get

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(dynamicGet(msg), a...))
}
