package tui

import (
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"mazter/pkg/engine/world"
	"mazter/pkg/game/achievements"
	"mazter/pkg/game/events"
	"mazter/pkg/game/gameplay"
	"mazter/pkg/game/maze"
	"mazter/pkg/game/specs"
	gameworld "mazter/pkg/game/world"
)

type corridorGen struct{}

func (corridorGen) Name() string { return "corridor" }

func (corridorGen) Generate(sp specs.Specs) (*maze.Maze, error) {
	m := maze.New("Corridor", world.NewDim(7, 4))
	for x := 1; x <= 5; x++ {
		m.OpenRoom(world.NewPos(x, 1))
	}
	m.SetStart(world.NewPos(1, 1))
	m.SetExit(world.NewPos(6, 1))
	m.SetMaxMonsters(0)
	return m, nil
}

func newTestTUI(t *testing.T) (*TUI, *gameplay.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 8)

	store, err := achievements.Open(filepath.Join(t.TempDir(), achievements.FileName))
	if err != nil {
		t.Fatal(err)
	}
	s, err := gameplay.NewSession(gameplay.Options{User: "alice"}, store, corridorGen{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.StartLevel(); err != nil {
		t.Fatal(err)
	}
	return &TUI{screen: screen}, s
}

func TestNatureColor(t *testing.T) {
	if natureColor(gameworld.InvisibleWall) != natureColor(gameworld.Room) {
		t.Error("invisible walls must look like rooms")
	}
	if natureColor(gameworld.Player) == natureColor(gameworld.Monster) {
		t.Error("player and monsters share a color")
	}
}

func TestDraw(t *testing.T) {
	ui, s := newTestTUI(t)
	ui.draw(s)

	var header []rune
	for x := 0; x < len("Corridor"); x++ {
		r, _, _, _ := ui.screen.GetContent(x, 0)
		header = append(header, r)
	}
	if string(header) != "Corridor" {
		t.Errorf("header = %q, want %q", string(header), "Corridor")
	}

	ox, oy := ui.origin(s.Game.Maze)
	if ox != 6 || oy != 2 {
		t.Fatalf("origin = %d,%d, want 6,2", ox, oy)
	}
	r, _, style, _ := ui.screen.GetContent(ox+1, oy)
	if r != '▀' {
		t.Errorf("maze cell = %q, want a half block", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != natureColor(gameworld.Wall) || bg != natureColor(gameworld.Player) {
		t.Errorf("cell holding the player = %v on %v, want wall on player colors", fg, bg)
	}
}

func cellColor(t *testing.T, ui *TUI, m *maze.Maze, p world.Pos) tcell.Color {
	t.Helper()
	ox, oy := ui.origin(m)
	_, _, style, _ := ui.screen.GetContent(ox+p.X, oy+p.Y/2)
	fg, bg, _ := style.Decompose()
	if p.Y%2 == 0 {
		return fg
	}
	return bg
}

func TestDrawMoves(t *testing.T) {
	tests := []struct {
		name string
		move events.Move
	}{
		{
			name: "player going east",
			move: events.Move{Start: world.NewPos(1, 1), Dir: world.East, Moving: gameworld.Player, StartBackground: gameworld.Room, DestBackground: gameworld.Potion},
		},
		{
			name: "monster going south in one block",
			move: events.Move{Start: world.NewPos(2, 2), Dir: world.South, Moving: gameworld.Monster, StartBackground: gameworld.Room, DestBackground: gameworld.Room},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, s := newTestTUI(t)
			m := s.Game.Maze
			ui.draw(s)
			moves := []events.Move{tt.move}

			ui.drawMoves(m, moves, false)
			if got := cellColor(t, ui, m, tt.move.Start); got != natureColor(tt.move.Moving) {
				t.Errorf("before: start = %v, want the mover", got)
			}
			if got := cellColor(t, ui, m, tt.move.Dest()); got != natureColor(tt.move.DestBackground) {
				t.Errorf("before: dest = %v, want its background", got)
			}

			ui.drawMoves(m, moves, true)
			if got := cellColor(t, ui, m, tt.move.Start); got != natureColor(tt.move.StartBackground) {
				t.Errorf("after: start = %v, want its background", got)
			}
			if got := cellColor(t, ui, m, tt.move.Dest()); got != natureColor(tt.move.Moving) {
				t.Errorf("after: dest = %v, want the mover", got)
			}
		})
	}
}

func TestHelpLine(t *testing.T) {
	if helpLine(true) == helpLine(false) {
		t.Error("screen saver help is the player help")
	}
}
