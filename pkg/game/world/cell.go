// Package world provides game-specific world extensions for mazter.
// It names what can be seen on a cell of the engine/world grid.
package world

// Nature is what a cell looks like to the player
type Nature int

const (
	Room Nature = iota
	Wall
	// InvisibleWall is a wall with no room in its 8-neighbourhood, rendered as background
	InvisibleWall
	Player
	Monster
	Potion
	Highlight
)

// String returns the name of the nature
func (n Nature) String() string {
	switch n {
	case Room:
		return "Room"
	case Wall:
		return "Wall"
	case InvisibleWall:
		return "InvisibleWall"
	case Player:
		return "Player"
	case Monster:
		return "Monster"
	case Potion:
		return "Potion"
	case Highlight:
		return "Highlight"
	default:
		return "Unknown"
	}
}

// Glyph returns the character used for this nature in text dumps
func (n Nature) Glyph() rune {
	switch n {
	case Wall:
		return '#'
	case InvisibleWall:
		return ' '
	case Player:
		return '@'
	case Monster:
		return 'M'
	case Potion:
		return '+'
	case Highlight:
		return '*'
	default:
		return '.'
	}
}
