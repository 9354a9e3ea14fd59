// Package ebiten is the graphical front-end: the maze drawn as colored tiles
// in an Ebiten window.
package ebiten

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	engineinput "mazter/pkg/engine/input"
	"mazter/pkg/engine/world"
	"mazter/pkg/game/events"
	"mazter/pkg/game/gameplay"
	gameworld "mazter/pkg/game/world"
)

// FrameDuration is how long a teleport stays drawn
const FrameDuration = 120 * time.Millisecond

// EbitenRenderer plays a session in a window. It implements ebiten.Game.
type EbitenRenderer struct {
	session *gameplay.Session
	tick    time.Duration

	width, height int

	lastTick   time.Time
	waiting    bool      // the level is over, a key starts the next one
	continueAt time.Time // zero when the user must hit a key
	jumps      []world.Pos
	arrival    world.Pos
	animUntil  time.Time
	err        error

	windowOpenedLogged bool
}

// New creates the graphical front-end
func New(tick time.Duration) *EbitenRenderer {
	return &EbitenRenderer{
		tick:   tick,
		width:  WindowWidth,
		height: WindowHeight,
	}
}

// Run opens the window and plays the session until it's closed or over
func (e *EbitenRenderer) Run(s *gameplay.Session) error {
	e.session = s
	e.lastTick = time.Now()
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("mazter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(e); err != nil && err != ebiten.Termination {
		return err
	}
	return e.err
}

// natureColor returns the tile color of a nature
func natureColor(n gameworld.Nature) color.Color {
	switch n {
	case gameworld.Wall:
		return colorWall
	case gameworld.Player:
		return colorPlayer
	case gameworld.Monster:
		return colorMonster
	case gameworld.Potion:
		return colorPotion
	case gameworld.Highlight:
		return colorHighlight
	default:
		return colorRoom
	}
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("[MAZTER] [INFO] window opened (%dx%d)", w, h)
	}
	now := time.Now()
	if now.Before(e.animUntil) {
		return nil
	}
	e.jumps = nil

	if e.waiting {
		return e.updateWaiting(now)
	}

	intent := e.checkGamepadInput()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}
	if intent.Action == engineinput.ActionNone && e.session.Game.ScreenSaver && now.Sub(e.lastTick) >= e.tick {
		e.lastTick = now
		intent = engineinput.Resolve(engineinput.RawInput{Device: engineinput.DeviceTimer, Code: "tick", Timestamp: now})
	}
	if intent.Action == engineinput.ActionNone {
		return nil
	}
	return e.apply(intent, now)
}

func (e *EbitenRenderer) apply(intent engineinput.Intent, now time.Time) error {
	s := e.session
	s.Apply(intent)
	if s.Game.Quit {
		return ebiten.Termination
	}
	for _, ev := range s.Game.Events.Events() {
		if tp, ok := ev.(events.Teleport); ok {
			e.jumps, e.arrival = tp.PossibleJumps, tp.Arrival
			e.animUntil = now.Add(FrameDuration)
		}
	}
	s.Game.Events.Clear()
	if !s.Game.IsOver() {
		return nil
	}

	done, err := s.Finish()
	if err != nil {
		e.err = err
		return ebiten.Termination
	}
	if done {
		return ebiten.Termination
	}
	e.waiting = true
	e.continueAt = time.Time{}
	if delay, auto := s.AutoContinue(); auto {
		e.continueAt = now.Add(delay)
	}
	return nil
}

func (e *EbitenRenderer) updateWaiting(now time.Time) error {
	if e.quitRequested() {
		return ebiten.Termination
	}
	if e.continueAt.IsZero() && !e.anyKeyJustPressed() {
		return nil
	}
	if !e.continueAt.IsZero() && now.Before(e.continueAt) {
		return nil
	}
	e.waiting = false
	if err := e.session.StartLevel(); err != nil {
		e.err = err
		return ebiten.Termination
	}
	return nil
}

// cellSize returns the side of a tile, fitting the maze under the text lines
func cellSize(width, height int, dim world.Dim) int {
	size := min(width/max(dim.W, 1), (height-TextRows*LineHeight)/max(dim.H, 1))
	return max(MinCellSize, min(size, MaxCellSize))
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g := e.session.Game
	m := g.Maze
	if m == nil {
		return
	}

	dim := m.Dim()
	size := cellSize(e.width, e.height, dim)
	ox := float32(max((e.width-size*dim.W)/2, 0))
	oy := float32(LineHeight + 4)
	fill := func(p world.Pos, c color.Color) {
		vector.DrawFilledRect(screen, ox+float32(p.X*size), oy+float32(p.Y*size), float32(size), float32(size), c, false)
	}
	for y := 0; y < dim.H; y++ {
		for x := 0; x < dim.W; x++ {
			p := world.NewPos(x, y)
			fill(p, natureColor(m.VisibleNature(p)))
		}
	}
	for _, p := range e.jumps {
		fill(p, colorHighlight)
	}
	if e.jumps != nil {
		fill(e.arrival, colorPlayer)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s   %s %d", m.Name(), gotext.Get("Lives:"), m.Lives()), 4, 2)
	status := m.Status()
	if !g.IsOver() && g.LastMessage() != "" {
		status = g.LastMessage()
	}
	textY := int(oy) + size*dim.H + 4
	ebitenutil.DebugPrintAt(screen, status, 4, textY)
	ebitenutil.DebugPrintAt(screen, gotext.Get("arrows: move  w: wait  a: give up  ?: hint  q: quit"), 4, textY+LineHeight)
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
