package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mazter/pkg/engine/world"
	"mazter/pkg/game/maze"
	gameworld "mazter/pkg/game/world"
)

// natureClass returns the CSS class of a nature
func natureClass(n gameworld.Nature) string {
	switch n {
	case gameworld.Wall:
		return "wall"
	case gameworld.Player:
		return "player"
	case gameworld.Monster:
		return "monster"
	case gameworld.Potion:
		return "potion"
	case gameworld.Highlight:
		return "highlight"
	default:
		return "room"
	}
}

// ScreenshotHTML renders the maze as an HTML page, one colored square per cell
func ScreenshotHTML(m *maze.Maze, info DumpInfo) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>mazter - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .status { color: #888; margin-top: 10px; }
        .map-row { display: flex; }
        .map-row span { width: 10px; height: 10px; }
        .wall { background-color: #878787; }
        .room { background-color: #0f0f1a; }
        .player { background-color: #ffaf00; }
        .monster { background-color: #ff0000; }
        .potion { background-color: #00af5f; }
        .highlight { background-color: #00d7ff; }
    </style>
</head>
<body>
`)

	sb.WriteString(fmt.Sprintf(`    <div class="header">%s (level %d, seed %d, user %s, lives %d)</div>`+"\n",
		html.EscapeString(m.Name()), info.Level, info.Seed, html.EscapeString(info.User), m.Lives()))

	dim := m.Dim()
	for y := 0; y < dim.H; y++ {
		sb.WriteString(`    <div class="map-row">`)
		for x := 0; x < dim.W; x++ {
			class := natureClass(m.VisibleNature(world.NewPos(x, y)))
			sb.WriteString(fmt.Sprintf(`<span class="%s"></span>`, class))
		}
		sb.WriteString("</div>\n")
	}

	if status := m.Status(); status != "" {
		sb.WriteString(fmt.Sprintf(`    <div class="status">%s</div>`+"\n", html.EscapeString(status)))
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// SaveScreenshotHTML writes the HTML screenshot in dir (the working
// directory when empty) and returns its path
func SaveScreenshotHTML(dir string, m *maze.Maze, info DumpInfo) (string, error) {
	if m == nil {
		return "", fmt.Errorf("no maze")
	}
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))
	if err := os.WriteFile(path, []byte(ScreenshotHTML(m, info)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
