// Package terminal queries the terminal the program writes to.
package terminal

import (
	"os"

	"golang.org/x/term"

	"mazter/pkg/engine/world"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Dim returns the terminal size as a dimension
func Dim() world.Dim {
	return world.NewDim(GetSize())
}

// IsTerminal tells whether stdout is a terminal rather than a file or a pipe
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
