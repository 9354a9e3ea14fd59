// Package menu lists the key bindings of the game.
package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "mazter/pkg/engine/input"
	"mazter/pkg/game/renderer"
)

// dynamicGet translates action names, which come from a lookup table
var dynamicGet = gotext.Get

// BindingItem is a line of the bindings list.
type BindingItem struct {
	Action engineinput.Action
	Codes  []string
	Fixed  bool // played by the game, not by a key
}

// GetLabel returns the display label of the binding.
func (b BindingItem) GetLabel() string {
	name := dynamicGet(engineinput.ActionName(b.Action))
	if b.Fixed {
		return fmt.Sprintf("%s: %s", renderer.StyleText(name, renderer.StyleSubtle), gotext.Get("(automatic)"))
	}
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = gotext.Get("(unbound)")
	}
	return fmt.Sprintf("%s: %s", renderer.StyleText(name, renderer.StyleAction), codeText)
}

// listedActions are the actions shown, in display order
var listedActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionWait,
	engineinput.ActionGiveUp,
	engineinput.ActionHint,
	engineinput.ActionDevMap,
	engineinput.ActionQuit,
	engineinput.ActionAutoMove,
}

// GetBindingItems returns the bindings of the listed actions.
func GetBindingItems() []BindingItem {
	byAction := engineinput.GetBindingsByAction()
	items := make([]BindingItem, len(listedActions))
	for i, action := range listedActions {
		items[i] = BindingItem{
			Action: action,
			Codes:  byAction[action],
			Fixed:  isAutomatic(action),
		}
	}
	return items
}

// isAutomatic checks if an action is triggered by the game's timer.
func isAutomatic(action engineinput.Action) bool {
	return action == engineinput.ActionAutoMove
}

// PrintBindings writes the bindings list
func PrintBindings(w io.Writer) {
	fmt.Fprintln(w, renderer.StyleText(gotext.Get("Key bindings"), renderer.StyleTitle))
	for _, item := range GetBindingItems() {
		fmt.Fprintln(w, "  "+item.GetLabel())
	}
}
