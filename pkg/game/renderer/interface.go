package renderer

import (
	"mazter/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleSuccess
	StyleLives
)

// Frontend plays a session on a display until the user quits or the
// session is over. Implementations are the terminal (tcell) and the
// graphical (Ebiten) front-ends.
type Frontend interface {
	Run(s *gameplay.Session) error
}

// Run plays the session on the given front-end, starting the first level
func Run(f Frontend, s *gameplay.Session) error {
	if err := s.StartLevel(); err != nil {
		return err
	}
	return f.Run(s)
}
