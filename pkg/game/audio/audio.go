// Package audio plays short tones on game events.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"mazter/pkg/game/events"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a sound played on a game event
type Cue struct {
	Freq     float64
	Duration time.Duration
}

// Cues of the game
var (
	CueTeleport = Cue{Freq: 220, Duration: 120 * time.Millisecond}
	CuePotion   = Cue{Freq: 880, Duration: 50 * time.Millisecond}
	CueWin      = Cue{Freq: 660, Duration: 200 * time.Millisecond}
)

// Player plays cues. A zero Player is silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker when enabled. Failing is not fatal: the
// returned player is silent and the error is logged.
func NewPlayer(enabled bool) *Player {
	p := &Player{}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[MAZTER] [WARN] Audio initialization failed: %v", err)
		return p
	}
	p.enabled = true
	return p
}

// Enabled tells whether cues are audible
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Play plays a cue without waiting for its end
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	sine, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		log.Printf("[MAZTER] [WARN] tone %v: %v", c.Freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(c.Duration), sine))
}

// CuesFor returns the cues matching a turn's events: a teleport for every
// jump of the player, a potion when a life was gained.
func CuesFor(list *events.List, livesBefore, livesAfter int) []Cue {
	var cues []Cue
	teleports := 0
	for _, e := range list.Events() {
		if _, ok := e.(events.Teleport); ok {
			cues = append(cues, CueTeleport)
			teleports++
		}
	}
	// a teleport costs a life, so count what the potions gave back
	if livesAfter-livesBefore+teleports > 0 {
		cues = append(cues, CuePotion)
	}
	return cues
}

// PlayEvents plays the cues of a turn
func (p *Player) PlayEvents(list *events.List, livesBefore, livesAfter int) {
	for _, c := range CuesFor(list, livesBefore, livesAfter) {
		p.Play(c)
	}
}
