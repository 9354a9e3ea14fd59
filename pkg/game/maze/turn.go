package maze

import (
	"log"

	"mazter/pkg/engine/path"
	"mazter/pkg/engine/world"
	"mazter/pkg/game/events"
	gameworld "mazter/pkg/game/world"
)

// spawnPeriodIncrement returns how much the spawn period grows once the maze
// holds the given number of monsters
func spawnPeriodIncrement(monsters int) int {
	switch monsters {
	case 1:
		return 105
	case 2:
		return 60
	default:
		return 35
	}
}

// PossibleJumps returns the rooms a player hit on p may be teleported to: free
// rooms in a square around p, at least MinJump away. The square is shifted
// inward near the borders.
func (m *Maze) PossibleJumps(p world.Pos) []world.Pos {
	r := max(min(BlastRadius, m.dim.W/2-3, m.dim.H/2-3), 1)
	c := world.NewPos(
		min(max(p.X, r+1), m.dim.W-r-1),
		min(max(p.Y, r+1), m.dim.H-r-1),
	)
	monsters := m.monsterSet()
	var jumps []world.Pos
	for x := c.X - r; x <= c.X+r; x++ {
		for y := c.Y - r; y <= c.Y+r; y++ {
			d := world.NewPos(x, y)
			if !m.dim.Contains(d) || m.IsWall(d) || monsters.Has(d) {
				continue
			}
			if world.ManhattanDistance(p, d) >= MinJump {
				jumps = append(jumps, d)
			}
		}
	}
	return jumps
}

// KillPlayer removes a life and, if some are left, teleports the player to a
// random possible jump. Landing on a potion gives back a life.
func (m *Maze) KillPlayer(evts *events.List) {
	m.lives--
	if !m.hasPlayer {
		m.lives = 0
		return
	}
	if m.lives > 0 {
		jumps := m.PossibleJumps(m.player)
		if len(jumps) == 0 {
			m.lives = 0
		} else {
			dest := jumps[m.rng.Intn(len(jumps))]
			evts.AddTeleport(m.player, jumps, dest)
			m.player = dest
			if m.potions.Remove(dest) {
				m.lives++
			}
		}
	}
	log.Printf("[MAZTER] [DEBUG] remaining lives: %d", m.lives)
}

// TryMove moves the player one cell in the given direction when it's a room,
// then lets the world play. Nothing happens when the move is impossible.
func (m *Maze) TryMove(dir world.Direction, evts *events.List) {
	if !m.hasPlayer {
		return
	}
	dest, ok := m.dim.InDir(m.player, dir)
	if !ok || !m.IsRoom(dest) {
		return
	}
	evts.AddPlayerMove(m.player, dir, m.VisibleNature(dest))
	m.player = dest
	m.playerMoved(evts)
}

func (m *Maze) playerMoved(evts *events.List) {
	if m.hasPlayer {
		if m.hasMonster(m.player) {
			m.KillPlayer(evts)
		} else if m.potions.Remove(m.player) {
			m.lives++
		}
	}
	m.EndPlayerTurn(evts)
}

// MovePlayerAuto moves the player one step toward the exit, or waits when a
// monster blocks the way
func (m *Maze) MovePlayerAuto(evts *events.List) {
	if !m.hasPlayer || !m.hasExit {
		return
	}
	route, ok := path.FindPath(m, m.player, m.exit)
	if !ok {
		m.KillPlayer(evts)
		m.EndPlayerTurn(evts)
		return
	}
	if len(route) == 0 {
		return
	}
	dest := route[0]
	if m.hasMonster(dest) {
		m.EndPlayerTurn(evts)
		return
	}
	if dir, ok := m.player.StepDirTo(dest); ok {
		m.TryMove(dir, evts)
	}
}

// EndPlayerTurn moves the world: every monster steps toward the player, then
// a monster may appear on the exit. The first monster reaching the player
// hits it and the others stay still.
func (m *Maze) EndPlayerTurn(evts *events.List) {
	m.turn++
	if !m.hasPlayer || !m.hasExit {
		return
	}
	player := m.player
	for i := range m.monsters {
		monster := m.monsters[i]
		if dir, ok := monster.StepDirTo(player); ok {
			if m.hasMonster(player) {
				continue
			}
			evts.AddMonsterMove(monster, dir, gameworld.Player)
			m.monsters[i] = player
			m.KillPlayer(evts)
			break
		}
		route, ok := path.FindPath(m, monster, player)
		if !ok || len(route) == 0 {
			continue
		}
		dest := route[0]
		if m.hasMonster(dest) {
			continue
		}
		dir, _ := monster.StepDirTo(dest)
		evts.AddMonsterMove(monster, dir, m.VisibleNature(dest))
		m.monsters[i] = dest
		m.potions.Set(dest, false)
		if dest == player {
			m.KillPlayer(evts)
			break
		}
	}
	m.spawnMonster()
}

func (m *Maze) spawnMonster() {
	if len(m.monsters) >= m.maxMonsters || m.turn != m.nextMonster {
		return
	}
	if m.exit == m.player || m.hasMonster(m.exit) {
		// the exit is taken: try again next turn
		m.nextMonster++
		return
	}
	m.monsters = append(m.monsters, m.exit)
	if len(m.monsters) < DefaultMaxMonsters {
		m.nextMonster = m.turn + m.monstersPeriod
		m.monstersPeriod += spawnPeriodIncrement(len(m.monsters))
	}
}
