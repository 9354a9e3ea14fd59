// Package events records what happened during a turn so front-ends can animate it.
package events

import (
	"mazter/pkg/engine/world"
	gameworld "mazter/pkg/game/world"
)

// Event is a Move or a Teleport
type Event interface {
	isEvent()
}

// Move is a one cell step of a player or a monster
type Move struct {
	Start           world.Pos
	Dir             world.Direction
	Moving          gameworld.Nature
	StartBackground gameworld.Nature
	DestBackground  gameworld.Nature
}

// Dest returns the arrival cell of the move
func (m Move) Dest() world.Pos {
	dest, _ := m.Start.InDir(m.Dir)
	return dest
}

// Teleport is a jump of the player after being hit by a monster
type Teleport struct {
	Start         world.Pos
	PossibleJumps []world.Pos
	Arrival       world.Pos
}

func (Move) isEvent()     {}
func (Teleport) isEvent() {}

// List is the ordered log of the events of a turn. The owner clears it once rendered.
type List struct {
	events []Event
}

// AddPlayerMove records a player step
func (l *List) AddPlayerMove(start world.Pos, dir world.Direction, destBackground gameworld.Nature) {
	l.events = append(l.events, Move{
		Start:           start,
		Dir:             dir,
		Moving:          gameworld.Player,
		StartBackground: gameworld.Room,
		DestBackground:  destBackground,
	})
}

// AddMonsterMove records a monster step. When something already recorded left
// the destination, that mover is drawn as the destination background.
func (l *List) AddMonsterMove(start world.Pos, dir world.Direction, destBackground gameworld.Nature) {
	dest, ok := start.InDir(dir)
	if !ok {
		return
	}
	for _, e := range l.events {
		if m, ok := e.(Move); ok && m.Start == dest {
			destBackground = m.Moving
			break
		}
	}
	l.events = append(l.events, Move{
		Start:           start,
		Dir:             dir,
		Moving:          gameworld.Monster,
		StartBackground: gameworld.Room,
		DestBackground:  destBackground,
	})
}

// AddTeleport records a player jump
func (l *List) AddTeleport(start world.Pos, possibleJumps []world.Pos, arrival world.Pos) {
	l.events = append(l.events, Teleport{
		Start:         start,
		PossibleJumps: possibleJumps,
		Arrival:       arrival,
	})
}

// Events returns the recorded events, oldest first
func (l *List) Events() []Event {
	return l.events
}

// Len returns the number of recorded events
func (l *List) Len() int {
	return len(l.events)
}

// IsEmpty returns true when nothing was recorded
func (l *List) IsEmpty() bool {
	return len(l.events) == 0
}

// Clear forgets every event
func (l *List) Clear() {
	l.events = l.events[:0]
}
