package maze

import (
	"errors"
	"log"
	"math/rand"

	"mazter/pkg/engine/path"
	"mazter/pkg/engine/world"
	"mazter/pkg/game/specs"
)

// ErrNoExit is returned along with a maze whose border offers no exit
var ErrNoExit = errors.New("no exit can be placed")

// fillBatch is the number of openings tried per growth round in fill mode
const fillBatch = 10

// Build grows a maze from specs. On ErrNoExit, the returned maze is complete
// but can't be won.
func Build(sp specs.Specs, rng *rand.Rand) (*Maze, error) {
	m := New(sp.Name, sp.Dim)
	m.rng = rng
	w, h := m.dim.W, m.dim.H
	if sp.Disk {
		if d := min(w, h) / 2; d > 10 {
			m.squaredRadius = (d + 1) * (d + 1)
		}
	}
	m.lives = sp.Lives
	for {
		start := world.NewPos(
			w/6+rng.Intn(w*5/6-w/6),
			h/6+rng.Intn(h*5/6-h/6),
		)
		if m.squaredRadius > 0 && world.SqEuclideanDistance(start, m.dim.Center())+2 > m.squaredRadius {
			// growing from there could be impossible
			continue
		}
		m.SetStart(start)
		break
	}
	if sp.Fill {
		for m.grow(fillBatch) > 0 {
		}
	} else {
		n := w * h / 3
		for m.grow(n) > 0 && !m.canPlaceExit() {
		}
	}
	m.addCuts(sp.Cuts)
	m.addPotions(sp.Potions)
	m.maxMonsters = sp.Monsters
	m.tryMakeExit()
	m.growInvisibleWalls()
	m.changeUnreachableRoomsIntoInvisibleWalls()
	m.defaultStatus = sp.Status
	log.Printf("[MAZTER] [DEBUG] built %q %dx%d: %d rooms, %d cuts, %d potions",
		m.name, w, h, m.rooms.Count(), len(m.cuts), m.potions.Count())
	if !m.hasExit {
		return m, ErrNoExit
	}
	return m, nil
}

func (m *Maze) outOfDisk(p world.Pos) bool {
	return m.squaredRadius > 0 && world.SqEuclideanDistance(p, m.dim.Center()) > m.squaredRadius
}

// open makes p a room and registers its walled inside neighbours as openings
func (m *Maze) open(p world.Pos) {
	m.rooms.Set(p, true)
	for _, n := range m.insideNeighbours(p) {
		if m.IsWall(n) && !m.outOfDisk(n) {
			m.openings = append(m.openings, n)
		}
	}
}

// seekOpen opens one opening touching exactly one room. The opening is picked
// near the end of the list, so growth mostly extends the latest corridor.
func (m *Maze) seekOpen() bool {
	for len(m.openings) > 0 {
		n := len(m.openings)
		var tail int
		switch n % 35 {
		case 0:
			tail = n
		case 1:
			tail = min(n, 15)
		default:
			tail = min(n, 4)
		}
		idx := n - m.rng.Intn(tail) - 1
		opening := m.openings[idx]
		m.openings[idx] = m.openings[n-1]
		m.openings = m.openings[:n-1]
		rooms := 0
		for _, q := range m.insideNeighbours(opening) {
			if m.IsRoom(q) {
				rooms++
			}
		}
		if rooms != 1 {
			continue
		}
		m.open(opening)
		return true
	}
	return false
}

// grow opens up to limit cells and returns how many were opened
func (m *Maze) grow(limit int) int {
	for n := 0; n < limit; n++ {
		if !m.seekOpen() {
			return n
		}
	}
	return limit
}

func (m *Maze) canPlaceExit() bool {
	w, h := m.dim.W, m.dim.H
	for x := 1; x < w-1; x++ {
		if m.IsRoom(world.NewPos(x, 1)) || m.IsRoom(world.NewPos(x, h-2)) {
			return true
		}
	}
	for y := 1; y < h-1; y++ {
		if m.IsRoom(world.NewPos(1, y)) || m.IsRoom(world.NewPos(w-2, y)) {
			return true
		}
	}
	return false
}

// possibleExits returns the border walls which, when opened, make an exit
func (m *Maze) possibleExits() []world.Pos {
	var exits []world.Pos
	w, h := m.dim.W, m.dim.H
	for x := 1; x < w-1; x++ {
		if m.IsRoom(world.NewPos(x, 1)) {
			exits = append(exits, world.NewPos(x, 0))
		}
		if m.IsRoom(world.NewPos(x, h-2)) {
			exits = append(exits, world.NewPos(x, h-1))
		}
	}
	for y := 1; y < h-1; y++ {
		if m.IsRoom(world.NewPos(1, y)) {
			exits = append(exits, world.NewPos(0, y))
		}
		if m.IsRoom(world.NewPos(w-2, y)) {
			exits = append(exits, world.NewPos(w-1, y))
		}
	}
	return exits
}

func (m *Maze) lenToPlayer(p world.Pos) int {
	if !m.hasPlayer {
		return 0
	}
	route, ok := path.FindPath(m, m.player, p)
	if !ok {
		return 0
	}
	return len(route)
}

// tryMakeExit opens the candidate exit farthest from the player. Ties go to
// the last candidate.
func (m *Maze) tryMakeExit() {
	if m.hasExit {
		m.rooms.Set(m.exit, true)
	}
	m.hasExit = false
	best := -1
	for _, p := range m.possibleExits() {
		if l := m.lenToPlayer(p); l >= best {
			best = l
			m.exit, m.hasExit = p, true
		}
	}
	if m.hasExit {
		m.rooms.Set(m.exit, true)
	}
}

func (m *Maze) possibleCuts() []world.Pos {
	var cuts []world.Pos
	for x := 1; x < m.dim.W-1; x++ {
		for y := 1; y < m.dim.H-1; y++ {
			p := world.NewPos(x, y)
			if m.outOfDisk(p) {
				continue
			}
			if m.IsWall(p) && !(m.hasPlayer && p == m.player) {
				cuts = append(cuts, p)
			}
		}
	}
	return cuts
}

func (m *Maze) emptyRooms() []world.Pos {
	monsters := m.monsterSet()
	var rooms []world.Pos
	for x := 1; x < m.dim.W-1; x++ {
		for y := 1; y < m.dim.H-1; y++ {
			p := world.NewPos(x, y)
			if m.IsRoom(p) && !(m.hasPlayer && p == m.player) && !m.potions.Get(p) && !monsters.Has(p) {
				rooms = append(rooms, p)
			}
		}
	}
	return rooms
}

// pickRandom removes and returns a random element of list
func pickRandom(rng *rand.Rand, list []world.Pos) (world.Pos, []world.Pos) {
	idx := rng.Intn(len(list))
	p := list[idx]
	list[idx] = list[len(list)-1]
	return p, list[:len(list)-1]
}

// addCuts opens up to n random walls, creating loops
func (m *Maze) addCuts(n int) {
	candidates := m.possibleCuts()
	for added := 0; added < n && len(candidates) > 0; added++ {
		var cut world.Pos
		cut, candidates = pickRandom(m.rng, candidates)
		m.cuts = append(m.cuts, cut)
		m.rooms.Set(cut, true)
	}
}

// addPotions drops up to n potions on random empty rooms
func (m *Maze) addPotions(n int) {
	candidates := m.emptyRooms()
	for added := 0; added < n && len(candidates) > 0; added++ {
		var potion world.Pos
		potion, candidates = pickRandom(m.rng, candidates)
		m.potions.Set(potion, true)
	}
}

// growInvisibleWalls flags the walls with no room around them. They're only
// cosmetic. Call it once growth is over and the exit set.
func (m *Maze) growInvisibleWalls() {
	seen := world.NewPosSet(m.dim)
	var candidates []world.Pos
	m.rooms.ForEach(func(p world.Pos, room bool) {
		if !room {
			candidates = append(candidates, p)
			seen.Set(p, true)
		}
	})
	for len(candidates) > 0 {
		candidate := candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
		allWalls := true
		for _, n := range m.neighbours8(candidate) {
			if m.rooms.Get(n) {
				allWalls = false
			} else if !seen.Get(n) {
				candidates = append(candidates, n)
				seen.Set(n, true)
			}
		}
		if allWalls {
			m.invisibleWalls.Set(candidate, true)
		}
	}
}

// changeUnreachableRoomsIntoInvisibleWalls removes the rooms cut from the exit,
// which can happen when growth stopped early, so that nothing lands there.
func (m *Maze) changeUnreachableRoomsIntoInvisibleWalls() {
	if !m.hasExit {
		return
	}
	reached := world.NewPosSet(m.dim)
	reached.Set(m.exit, true)
	stack := []world.Pos{m.exit}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range m.EnterableNeighbours(p) {
			if !reached.Get(n) {
				reached.Set(n, true)
				stack = append(stack, n)
			}
		}
	}
	var cut []world.Pos
	m.rooms.ForEach(func(p world.Pos, room bool) {
		if room && !reached.Get(p) {
			cut = append(cut, p)
		}
	})
	for _, p := range cut {
		m.rooms.Set(p, false)
		m.invisibleWalls.Set(p, true)
	}
}

// HighlightPathToExit highlights the route from the given position to the exit
func (m *Maze) HighlightPathToExit(from world.Pos) {
	if !m.hasExit {
		return
	}
	if route, ok := path.FindPath(m, from, m.exit); ok {
		for _, p := range route {
			m.highlights.Set(p, true)
		}
	}
	m.highlights.Set(m.exit, true)
}
