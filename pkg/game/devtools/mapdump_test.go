package devtools

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"mazter/pkg/engine/world"
	"mazter/pkg/game/maze"
)

func testMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m := maze.New("dump", world.NewDim(6, 4))
	for x := 1; x <= 4; x++ {
		m.OpenRoom(world.NewPos(x, 1))
	}
	m.SetStart(world.NewPos(1, 1))
	m.SetExit(world.NewPos(5, 1))
	m.AddMonster(world.NewPos(3, 1))
	m.AddPotion(world.NewPos(2, 1))
	return m
}

func TestDumpMaze(t *testing.T) {
	var buf bytes.Buffer
	DumpMaze(&buf, testMaze(t), DumpInfo{Level: 4, Seed: 7})
	out := buf.String()
	for _, want := range []string{"level: 4", "seed: 7", "player: 1,1", "exit: 5,1", "#@+M.E", "  index: 0 x: 3 y: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump misses %q:\n%s", want, out)
		}
	}
}

func TestDumpMazeToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpMazeToFile(dir, testMaze(t), DumpInfo{Level: 1})
	if err != nil {
		t.Fatalf("DumpMazeToFile error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "--- Map ---") {
		t.Error("dump file has no map section")
	}
	if _, err := DumpMazeToFile(dir, nil, DumpInfo{}); err == nil {
		t.Error("DumpMazeToFile(nil) succeeded")
	}
}

func TestScreenshotHTML(t *testing.T) {
	page := ScreenshotHTML(testMaze(t), DumpInfo{Level: 4, Seed: 7, User: "<bob>"})
	if got := strings.Count(page, `class="map-row"`); got != 4 {
		t.Errorf("screenshot has %d rows, want 4", got)
	}
	for _, want := range []string{`<span class="player">`, `<span class="monster">`, `<span class="potion">`, "&lt;bob&gt;"} {
		if !strings.Contains(page, want) {
			t.Errorf("screenshot misses %q", want)
		}
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	path, err := SaveScreenshotHTML(t.TempDir(), testMaze(t), DumpInfo{})
	if err != nil {
		t.Fatalf("SaveScreenshotHTML error: %v", err)
	}
	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path = %q, want an html file", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}
}
