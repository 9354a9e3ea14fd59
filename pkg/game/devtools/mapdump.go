// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazter/pkg/engine/world"
	"mazter/pkg/game/maze"
	gameworld "mazter/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// DumpInfo is the context of a dump not held by the maze
type DumpInfo struct {
	Level int
	Seed  int64
	User  string
}

func cellSymbol(m *maze.Maze, p world.Pos) rune {
	if exit, ok := m.Exit(); ok && exit == p {
		return 'E'
	}
	if start, ok := m.Start(); ok && start == p && m.VisibleNature(p) == gameworld.Room {
		return 'S'
	}
	return m.VisibleNature(p).Glyph()
}

// writeMapGrid writes the maze, one character per cell
func writeMapGrid(w io.Writer, m *maze.Maze) {
	dim := m.Dim()
	for y := 0; y < dim.H; y++ {
		for x := 0; x < dim.W; x++ {
			fmt.Fprintf(w, "%c", cellSymbol(m, world.NewPos(x, y)))
		}
		fmt.Fprintln(w)
	}
}

func formatPos(p world.Pos, ok bool) string {
	if !ok {
		return "none"
	}
	return p.String()
}

// DumpMaze writes a debug dump of the maze: metadata, legend, grid and
// entity lists. Format is human readable (sections, key: value).
func DumpMaze(w io.Writer, m *maze.Maze, info DumpInfo) {
	dim := m.Dim()
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (maze layout and game state) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "name: %s\n", m.Name())
	fmt.Fprintf(w, "level: %d\n", info.Level)
	fmt.Fprintf(w, "seed: %d\n", info.Seed)
	if info.User != "" {
		fmt.Fprintf(w, "user: %s\n", info.User)
	}
	fmt.Fprintf(w, "width: %d\n", dim.W)
	fmt.Fprintf(w, "height: %d\n", dim.H)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "player: %s\n", formatPos(m.Player()))
	fmt.Fprintf(w, "start: %s\n", formatPos(m.Start()))
	fmt.Fprintf(w, "exit: %s\n", formatPos(m.Exit()))
	fmt.Fprintf(w, "lives: %d\n", m.Lives())
	fmt.Fprintf(w, "turn: %d\n", m.Turn())
	fmt.Fprintf(w, "next_monster: %d\n", m.NextMonster())
	fmt.Fprintf(w, "monsters_period: %d\n", m.MonstersPeriod())
	fmt.Fprintf(w, "max_monsters: %d\n", m.MaxMonsters())
	fmt.Fprintf(w, "won: %v\n", m.IsWon())
	fmt.Fprintf(w, "lost: %v\n", m.IsLost())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = room  # = wall  (space) = invisible wall  @ = player  M = monster  + = potion  * = highlight  S = start  E = exit")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, m)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Entities ---")
	fmt.Fprintln(w, "Monsters:")
	for i, p := range m.Monsters() {
		fmt.Fprintf(w, "  index: %d x: %d y: %d\n", i, p.X, p.Y)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Potions:")
	for y := 0; y < dim.H; y++ {
		for x := 0; x < dim.W; x++ {
			if m.IsPotion(world.NewPos(x, y)) {
				fmt.Fprintf(w, "  x: %d y: %d\n", x, y)
			}
		}
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Cuts:")
	for _, p := range m.Cuts() {
		fmt.Fprintf(w, "  x: %d y: %d\n", p.X, p.Y)
	}
}

// DumpMazeToFile writes the dump to map.txt in dir (the working directory
// when empty) and returns its absolute path
func DumpMazeToFile(dir string, m *maze.Maze, info DumpInfo) (string, error) {
	if m == nil {
		return "", fmt.Errorf("no maze")
	}
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	DumpMaze(f, m, info)
	return absPath, f.Close()
}
