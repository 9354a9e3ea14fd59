package gameplay

import (
	engineinput "mazter/pkg/engine/input"
	"mazter/pkg/game/devtools"
	"mazter/pkg/game/state"
)

// Apply handles a high-level input intent on the current maze
func (s *Session) Apply(intent engineinput.Intent) {
	g := s.Game
	if g.Maze == nil {
		return
	}
	if intent.Action == engineinput.ActionQuit {
		g.Quit = true
		return
	}
	if g.IsOver() {
		return
	}
	livesBefore := g.Maze.Lives()
	ProcessIntent(g, intent)
	if intent.Action == engineinput.ActionDevMap {
		s.dumpMap()
	}
	s.sound.PlayEvents(&g.Events, livesBefore, g.Maze.Lives())
}

// ProcessIntent applies an intent to the maze of the game
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if intent.IsMove() {
		dir, _ := directionFor(intent.Action)
		MovePlayer(g, dir)
		return
	}
	switch intent.Action {
	case engineinput.ActionWait:
		Wait(g)
	case engineinput.ActionGiveUp:
		clearHint(g)
		g.Maze.GiveUp()
	case engineinput.ActionAutoMove:
		g.Maze.MovePlayerAuto(&g.Events)
	case engineinput.ActionHint:
		ShowHint(g)
	}
}

func (s *Session) dumpMap() {
	g := s.Game
	info := devtools.DumpInfo{Level: g.Level, Seed: g.Seed, User: g.User}
	path, err := devtools.DumpMazeToFile(s.opts.DumpDir, g.Maze, info)
	if err != nil {
		logMessage(g, "Map dump failed: %v", err)
		return
	}
	logMessage(g, "Map dumped to %s", path)
	if path, err = devtools.SaveScreenshotHTML(s.opts.DumpDir, g.Maze, info); err != nil {
		logMessage(g, "Screenshot failed: %v", err)
		return
	}
	logMessage(g, "Screenshot saved to %s", path)
}
