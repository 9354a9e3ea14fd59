// Package renderer holds what the front-ends share: colors, markup and the
// plain terminal printing used outside of play (built mazes, hall of fame).
package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazter/pkg/engine/world"
	"mazter/pkg/game/achievements"
	"mazter/pkg/game/maze"
	gameworld "mazter/pkg/game/world"
)

// HalfBlock draws two maze cells in one terminal cell: the upper one as
// foreground, the lower one as background
const HalfBlock = "▀"

var (
	ColorTitle       color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorSubtle      color.Style
	ColorSuccess     color.Style
	ColorLives       color.Style

	regexpStringFunctions *regexp.Regexp
)

func init() {
	InitColors()
}

// InitColors initializes the color styles
func InitColors() {
	ColorTitle = color.Style{color.FgCyan, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
	ColorSuccess = color.Style{color.FgGreen, color.OpBold}
	ColorLives = color.Style{color.FgRed}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:?!'-]+)}`)
}

// dynamicGet looks up message ids found in markup at runtime
var dynamicGet = gotext.Get

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	switch style {
	case StyleTitle:
		return ColorTitle.Sprint(text)
	case StyleAction:
		return ColorAction.Sprint(text)
	case StyleActionShort:
		return ColorActionShort.Sprint(text)
	case StyleDenied:
		return ColorDenied.Sprint(text)
	case StyleSubtle:
		return ColorSubtle.Sprint(text)
	case StyleSuccess:
		return ColorSuccess.Sprint(text)
	case StyleLives:
		return ColorLives.Sprint(text)
	default:
		return text
	}
}

// FormatString formats a string with markup: GT{id} is translated and
// ACTION{word} shows its first letter as the key to press.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		case "TITLE":
			val = ColorTitle.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// natureColor returns the 256-color palette index of a nature
func natureColor(n gameworld.Nature) uint8 {
	switch n {
	case gameworld.Wall:
		return 102
	case gameworld.Player:
		return 214
	case gameworld.Monster:
		return 196
	case gameworld.Potion:
		return 35
	case gameworld.Highlight:
		return 45
	default:
		return 0
	}
}

// MazeLines renders the maze with half blocks, one string per pair of rows
func MazeLines(m *maze.Maze) []string {
	dim := m.Dim()
	lines := make([]string, 0, dim.H/2)
	for y := 0; y+1 < dim.H; y += 2 {
		var sb strings.Builder
		for x := 0; x < dim.W; x++ {
			fg := natureColor(m.VisibleNature(world.NewPos(x, y)))
			bg := natureColor(m.VisibleNature(world.NewPos(x, y+1)))
			sb.WriteString(color.S256(fg, bg).Sprint(HalfBlock))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// PrintMaze writes the maze with its name, then the status line unless empty.
// A printed maze isn't played, so its status is the level hint and not the
// game's.
func PrintMaze(w io.Writer, m *maze.Maze, status string) {
	fmt.Fprintln(w, ColorTitle.Sprint(m.Name()))
	for _, line := range MazeLines(m) {
		fmt.Fprintln(w, line)
	}
	if status != "" {
		fmt.Fprintln(w, ColorSubtle.Sprint(status))
	}
}

// PrintHallOfFame writes the hall of fame as a two-column table
func PrintHallOfFame(w io.Writer, hof []achievements.Entry) {
	if len(hof) == 0 {
		fmt.Fprintln(w, ColorSubtle.Sprint(gotext.Get("Nobody won a level yet")))
		return
	}
	userHeader, levelHeader := gotext.Get("User"), gotext.Get("Level")
	width := len(userHeader)
	for _, e := range hof {
		width = max(width, len(e.User))
	}
	fmt.Fprintln(w, ColorTitle.Sprint(gotext.Get("Hall of Fame")))
	fmt.Fprintf(w, "%s  %s\n", ColorTitle.Sprintf("%-*s", width, userHeader), ColorTitle.Sprint(levelHeader))
	for _, e := range hof {
		fmt.Fprintf(w, "%-*s  %s\n", width, e.User, ColorSuccess.Sprintf("%d", e.Level))
	}
}
