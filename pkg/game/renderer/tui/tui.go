// Package tui is the terminal front-end, drawing the maze with half blocks
// on a tcell screen.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"mazter/pkg/engine/input"
	"mazter/pkg/engine/world"
	"mazter/pkg/game/events"
	"mazter/pkg/game/gameplay"
	"mazter/pkg/game/maze"
	gameworld "mazter/pkg/game/world"
)

// FrameDuration is how long an animation frame stays on screen
const FrameDuration = 120 * time.Millisecond

// Layout margins
const (
	HeaderRows = 1
	FooterRows = 2
)

var (
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleLives  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// TUI plays sessions in the terminal
type TUI struct {
	screen tcell.Screen
	tick   time.Duration // delay between automatic moves of the screen saver
}

// New creates a terminal front-end
func New(tick time.Duration) *TUI {
	return &TUI{tick: tick}
}

// natureColor returns the color of a nature
func natureColor(n gameworld.Nature) tcell.Color {
	switch n {
	case gameworld.Wall:
		return tcell.PaletteColor(102)
	case gameworld.Player:
		return tcell.PaletteColor(214)
	case gameworld.Monster:
		return tcell.PaletteColor(196)
	case gameworld.Potion:
		return tcell.PaletteColor(35)
	case gameworld.Highlight:
		return tcell.PaletteColor(45)
	default:
		return tcell.ColorBlack
	}
}

// keyCode returns the binding code of a key event, "" when unbound
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyCtrlQ:
		return "ctrl_q"
	case tcell.KeyF9:
		return "f9"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// Run plays the session until the user quits or the levels are done
func (t *TUI) Run(s *gameplay.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	t.screen = screen
	defer screen.Fini()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	return t.loop(s, eventChan)
}

func (t *TUI) loop(s *gameplay.Session, eventChan <-chan tcell.Event) error {
	var autoMoves <-chan time.Time
	if s.Game.ScreenSaver {
		ticker := time.NewTicker(t.tick)
		defer ticker.Stop()
		autoMoves = ticker.C
	}
	var (
		waiting    bool // the level is over, the user must hit a key
		continueAt <-chan time.Time
	)
	nextLevel := func() error {
		waiting, continueAt = false, nil
		if err := s.StartLevel(); err != nil {
			return err
		}
		t.draw(s)
		return nil
	}

	t.draw(s)
	for {
		var intent input.Intent
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
				t.draw(s)
				continue
			case *tcell.EventKey:
				code := keyCode(ev)
				if waiting {
					if code == "ctrl_c" || code == "ctrl_q" {
						return nil
					}
					if err := nextLevel(); err != nil {
						return err
					}
					continue
				}
				intent = input.Resolve(input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: ev.When()})
			default:
				continue
			}
		case <-autoMoves:
			if waiting {
				continue
			}
			intent = input.Resolve(input.RawInput{Device: input.DeviceTimer, Code: "tick", Timestamp: time.Now()})
		case <-continueAt:
			if err := nextLevel(); err != nil {
				return err
			}
			continue
		}

		if intent.Action == input.ActionNone {
			continue
		}
		s.Apply(intent)
		if s.Game.Quit {
			return nil
		}
		t.animate(s.Game.Maze, &s.Game.Events)
		s.Game.Events.Clear()
		if !s.Game.IsOver() {
			t.draw(s)
			continue
		}

		done, err := s.Finish()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		t.draw(s)
		waiting = true
		if delay, auto := s.AutoContinue(); auto {
			if delay == 0 {
				if err := nextLevel(); err != nil {
					return err
				}
				continue
			}
			continueAt = time.After(delay)
		}
	}
}

// origin returns where the top left corner of the maze is drawn
func (t *TUI) origin(m *maze.Maze) (int, int) {
	w, h := t.screen.Size()
	dim := m.Dim()
	x := max((w-dim.W)/2, 0)
	y := HeaderRows + max((h-HeaderRows-FooterRows-dim.H/2)/2, 0)
	return x, y
}

// setPos draws the half block holding p, with p colored by c. The other half
// keeps what is on screen.
func (t *TUI) setPos(m *maze.Maze, p world.Pos, c tcell.Color) {
	ox, oy := t.origin(m)
	x, y := ox+p.X, oy+p.Y/2
	_, _, style, _ := t.screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	if p.Y%2 == 0 {
		fg = c
	} else {
		bg = c
	}
	t.screen.SetContent(x, y, '▀', nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

func (t *TUI) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// draw renders the whole screen
func (t *TUI) draw(s *gameplay.Session) {
	t.screen.Clear()
	g := s.Game
	m := g.Maze
	if m == nil {
		t.screen.Show()
		return
	}
	w, h := t.screen.Size()

	t.drawText(0, 0, m.Name(), styleHeader)
	lives := fmt.Sprintf("%s %d", gotext.Get("Lives:"), m.Lives())
	t.drawText(max(w-len([]rune(lives)), 0), 0, lives, styleLives)

	dim := m.Dim()
	for y := 0; y < dim.H; y++ {
		for x := 0; x < dim.W; x++ {
			p := world.NewPos(x, y)
			t.setPos(m, p, natureColor(m.VisibleNature(p)))
		}
	}

	status := m.Status()
	if !g.IsOver() && g.LastMessage() != "" {
		status = g.LastMessage()
	}
	t.drawText(0, h-2, status, styleStatus)
	t.drawText(0, h-1, helpLine(g.ScreenSaver), styleHelp)
	t.screen.Show()
}

func helpLine(screenSaver bool) string {
	if screenSaver {
		return gotext.Get("q: quit")
	}
	return gotext.Get("arrows: move  w: wait  a: give up  ?: hint  q: quit")
}

// drawMoves draws the movers on their start cell, or on their destination
// once done
func (t *TUI) drawMoves(m *maze.Maze, moves []events.Move, done bool) {
	for _, mv := range moves {
		if done {
			t.setPos(m, mv.Start, natureColor(mv.StartBackground))
			t.setPos(m, mv.Dest(), natureColor(mv.Moving))
		} else {
			t.setPos(m, mv.Dest(), natureColor(mv.DestBackground))
			t.setPos(m, mv.Start, natureColor(mv.Moving))
		}
	}
}

// animate plays the events of the turn. Consecutive moves share their frames,
// a teleport shows the possible jumps then the arrival.
func (t *TUI) animate(m *maze.Maze, list *events.List) {
	if m == nil || list.IsEmpty() {
		return
	}
	var moves []events.Move
	flush := func() {
		if len(moves) == 0 {
			return
		}
		t.drawMoves(m, moves, false)
		t.screen.Show()
		time.Sleep(FrameDuration / 2)
		t.drawMoves(m, moves, true)
		t.screen.Show()
		time.Sleep(FrameDuration / 2)
		moves = moves[:0]
	}
	for _, ev := range list.Events() {
		switch ev := ev.(type) {
		case events.Move:
			moves = append(moves, ev)
		case events.Teleport:
			flush()
			log.Printf("[MAZTER] [DEBUG] teleport %v -> %v", ev.Start, ev.Arrival)
			for _, p := range ev.PossibleJumps {
				t.setPos(m, p, natureColor(gameworld.Highlight))
			}
			t.setPos(m, ev.Arrival, natureColor(gameworld.Player))
			t.screen.Show()
			time.Sleep(FrameDuration)
		}
	}
	flush()
}
