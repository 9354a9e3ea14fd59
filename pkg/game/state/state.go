// Package state holds the state of a play session.
package state

import (
	"mazter/pkg/game/events"
	"mazter/pkg/game/maze"
)

// Game represents the game state for mazter
type Game struct {
	User        string
	ScreenSaver bool

	Level     int // Current level number
	LevelsWon int // Levels won since launch
	Seed      int64

	Maze   *maze.Maze
	Events events.List // What happened since the last render

	Messages []string

	HintShown bool
	Quit      bool
}

// NewGame creates a new game instance
func NewGame(user string, level int, screenSaver bool) *Game {
	return &Game{
		User:        user,
		ScreenSaver: screenSaver,
		Level:       level,
		Messages:    make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// LastMessage returns the latest message, or an empty string
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// IsOver tells whether the current maze is won or lost
func (g *Game) IsOver() bool {
	return g.Maze != nil && (g.Maze.IsWon() || g.Maze.IsLost())
}

// SetMaze installs the maze of a new level and resets level-specific state
func (g *Game) SetMaze(m *maze.Maze) {
	g.Maze = m
	g.Events.Clear()
	g.HintShown = false
	g.ClearMessages()
}
