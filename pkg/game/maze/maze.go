// Package maze holds a maze and the state of a game played in it: player,
// monsters, potions, lives and the turn counter. It builds mazes from specs
// and resolves the turns.
package maze

import (
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"mazter/pkg/engine/world"
	gameworld "mazter/pkg/game/world"
)

const (
	// MinJump is the minimal manhattan distance of a teleport
	MinJump = 2
	// BlastRadius is the half side of the square a teleported player lands in
	BlastRadius = 4
	// DefaultMaxMonsters is the monster cap of a maze not built from specs
	DefaultMaxMonsters = 10
)

// dynamicGet translates the status hints carried by specs
var dynamicGet = gotext.Get

// Messages shown when the game is over
const (
	StatusWon  = "You win. Hit any key for next level"
	StatusLost = "You lost. Hit any key to try again"
)

// Maze is a grid of rooms and walls along with the game state
type Maze struct {
	name string
	dim  world.Dim

	rooms          *world.PosSet
	invisibleWalls *world.PosSet
	highlights     *world.PosSet
	potions        *world.PosSet
	openings       []world.Pos
	cuts           []world.Pos
	monsters       []world.Pos

	start, exit, player          world.Pos
	hasStart, hasExit, hasPlayer bool

	turn           int
	nextMonster    int
	monstersPeriod int
	maxMonsters    int
	lives          int

	defaultStatus string
	squaredRadius int // 0 when the maze isn't a disk

	rng *rand.Rand
}

// New creates a maze with only walls. The height is rounded down to an even number.
func New(name string, dim world.Dim) *Maze {
	dim = world.NewDim(dim.W, (dim.H/2)*2)
	return &Maze{
		name:           name,
		dim:            dim,
		rooms:          world.NewPosSet(dim),
		invisibleWalls: world.NewPosSet(dim),
		highlights:     world.NewPosSet(dim),
		potions:        world.NewPosSet(dim),
		nextMonster:    min(50, (dim.W+dim.H)/3),
		monstersPeriod: dim.W + dim.H - 3,
		maxMonsters:    DefaultMaxMonsters,
		lives:          1,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Name returns the name of the maze, usually the level
func (m *Maze) Name() string { return m.name }

// Dim returns the dimensions of the maze
func (m *Maze) Dim() world.Dim { return m.dim }

// Lives returns the remaining lives of the player
func (m *Maze) Lives() int { return m.lives }

// Turn returns the number of turns played
func (m *Maze) Turn() int { return m.turn }

// Player returns the position of the player, if any
func (m *Maze) Player() (world.Pos, bool) { return m.player, m.hasPlayer }

// Start returns the position the player started from, if any
func (m *Maze) Start() (world.Pos, bool) { return m.start, m.hasStart }

// Exit returns the position of the exit, if any
func (m *Maze) Exit() (world.Pos, bool) { return m.exit, m.hasExit }

// Monsters returns a copy of the monster positions, oldest first
func (m *Maze) Monsters() []world.Pos {
	out := make([]world.Pos, len(m.monsters))
	copy(out, m.monsters)
	return out
}

// Cuts returns a copy of the walls opened after growth
func (m *Maze) Cuts() []world.Pos {
	out := make([]world.Pos, len(m.cuts))
	copy(out, m.cuts)
	return out
}

// MaxMonsters returns the monster cap
func (m *Maze) MaxMonsters() int { return m.maxMonsters }

// NextMonster returns the turn at which the next monster should appear
func (m *Maze) NextMonster() int { return m.nextMonster }

// MonstersPeriod returns the current delay between two spawns
func (m *Maze) MonstersPeriod() int { return m.monstersPeriod }

// IsRoom returns true when p can be entered
func (m *Maze) IsRoom(p world.Pos) bool { return m.rooms.Get(p) }

// IsWall returns true when p can't be entered
func (m *Maze) IsWall(p world.Pos) bool { return !m.rooms.Get(p) }

// IsInvisibleWall returns true for walls drawn as background
func (m *Maze) IsInvisibleWall(p world.Pos) bool { return m.invisibleWalls.Get(p) }

// IsPotion returns true when a potion lies on p
func (m *Maze) IsPotion(p world.Pos) bool { return m.potions.Get(p) }

// IsHighlighted returns true when p is highlighted
func (m *Maze) IsHighlighted(p world.Pos) bool { return m.highlights.Get(p) }

// IsWon returns true when the player stands on the exit
func (m *Maze) IsWon() bool {
	return m.hasPlayer && m.hasExit && m.player == m.exit
}

// IsLost returns true when the player has no life left
func (m *Maze) IsLost() bool {
	return m.lives < 1
}

// Status returns the message to display under the maze
func (m *Maze) Status() string {
	switch {
	case m.IsWon():
		return gotext.Get(StatusWon)
	case m.IsLost():
		return gotext.Get(StatusLost)
	case m.defaultStatus == "":
		return ""
	default:
		return dynamicGet(m.defaultStatus)
	}
}

// GiveUp ends the game as lost
func (m *Maze) GiveUp() {
	m.lives = 0
}

func (m *Maze) hasMonster(p world.Pos) bool {
	for _, monster := range m.monsters {
		if monster == p {
			return true
		}
	}
	return false
}

func (m *Maze) monsterSet() mapset.Set[world.Pos] {
	set := mapset.New[world.Pos]()
	for _, monster := range m.monsters {
		set.Put(monster)
	}
	return set
}

// VisibleNature returns what is seen on p. Several things may be there: the
// most visible one wins.
func (m *Maze) VisibleNature(p world.Pos) gameworld.Nature {
	switch {
	case !m.rooms.Get(p):
		if m.invisibleWalls.Get(p) {
			return gameworld.InvisibleWall
		}
		return gameworld.Wall
	case m.hasMonster(p):
		return gameworld.Monster
	case m.hasPlayer && p == m.player:
		return gameworld.Player
	case m.potions.Get(p):
		return gameworld.Potion
	case m.highlights.Get(p):
		return gameworld.Highlight
	default:
		return gameworld.Room
	}
}

// EnterableNeighbours returns the orthogonal neighbours of p which are rooms,
// clockwise from north
func (m *Maze) EnterableNeighbours(p world.Pos) []world.Pos {
	list := make([]world.Pos, 0, 4)
	for _, dir := range world.AllDirections() {
		if q, ok := m.dim.InDir(p, dir); ok && m.rooms.Get(q) {
			list = append(list, q)
		}
	}
	return list
}

// insideNeighbours returns the orthogonal neighbours of p, border excluded
func (m *Maze) insideNeighbours(p world.Pos) []world.Pos {
	list := make([]world.Pos, 0, 4)
	if p.Y > 1 {
		list = append(list, world.NewPos(p.X, p.Y-1))
	}
	if p.X < m.dim.W-2 {
		list = append(list, world.NewPos(p.X+1, p.Y))
	}
	if p.Y < m.dim.H-2 {
		list = append(list, world.NewPos(p.X, p.Y+1))
	}
	if p.X > 1 {
		list = append(list, world.NewPos(p.X-1, p.Y))
	}
	return list
}

// neighbours8 returns the neighbours of p including diagonals
func (m *Maze) neighbours8(p world.Pos) []world.Pos {
	list := make([]world.Pos, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := world.NewPos(p.X+dx, p.Y+dy)
			if m.dim.Contains(q) {
				list = append(list, q)
			}
		}
	}
	return list
}

// SetHighlights replaces the highlighted cells
func (m *Maze) SetHighlights(cells []world.Pos) {
	m.highlights.Clear()
	for _, p := range cells {
		m.highlights.Set(p, true)
	}
}

// ClearHighlight removes all highlights and tells whether there was any
func (m *Maze) ClearHighlight() bool {
	if m.highlights.IsEmpty() {
		return false
	}
	m.highlights.Clear()
	return true
}

// HighlightStart highlights the start position
func (m *Maze) HighlightStart() {
	if m.hasStart {
		m.highlights.Set(m.start, true)
	}
}

// Test and scenario hooks. They bypass the generator, so callers are
// responsible for the consistency of what they build.

// OpenRoom makes p a room
func (m *Maze) OpenRoom(p world.Pos) {
	m.rooms.Set(p, true)
}

// SetStart puts the player on p, which becomes a room and the start position
func (m *Maze) SetStart(p world.Pos) {
	m.start, m.hasStart = p, true
	m.player, m.hasPlayer = p, true
	m.open(p)
}

// SetExit makes p the exit, and a room
func (m *Maze) SetExit(p world.Pos) {
	m.exit, m.hasExit = p, true
	m.rooms.Set(p, true)
}

// AddMonster puts a monster on p. It's ignored when p is a wall or already holds one.
func (m *Maze) AddMonster(p world.Pos) {
	if m.IsWall(p) || m.hasMonster(p) {
		return
	}
	m.monsters = append(m.monsters, p)
}

// AddPotion puts a potion on p
func (m *Maze) AddPotion(p world.Pos) {
	m.potions.Set(p, true)
}

// SetLives sets the remaining lives
func (m *Maze) SetLives(n int) {
	m.lives = n
}

// SetSchedule sets the turn of the next spawn and the current spawn period
func (m *Maze) SetSchedule(next, period int) {
	m.nextMonster = next
	m.monstersPeriod = period
}

// SetMaxMonsters sets the monster cap
func (m *Maze) SetMaxMonsters(n int) {
	m.maxMonsters = n
}

// SetRand replaces the random source of teleports and generation
func (m *Maze) SetRand(rng *rand.Rand) {
	m.rng = rng
}
