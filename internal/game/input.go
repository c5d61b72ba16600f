package game

import (
	"grid-inventory/internal/cursor"
	"grid-inventory/internal/inventory"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionRotate
	ActionInteract
	ActionToggleDebug
	ActionToggleHelp
	ActionToggleMute
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEnter:
		return ActionInteract
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		return ActionMoveN
	case 'j', 'J', 's', 'S':
		return ActionMoveS
	case 'l', 'L', 'd', 'D':
		return ActionMoveE
	case 'h', 'H', 'a', 'A':
		return ActionMoveW
	case ' ', 'e', 'E':
		return ActionInteract
	case 'r', 'R':
		return ActionRotate
	case 'g', 'G':
		return ActionToggleDebug
	case '?':
		return ActionToggleHelp
	case 'm', 'M':
		return ActionToggleMute
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToCommand converts an action to an inventory command. ok is false
// for actions the host handles itself.
func actionToCommand(a Action) (cmd inventory.Command, ok bool) {
	switch a {
	case ActionMoveN:
		return inventory.Navigate(cursor.Up), true
	case ActionMoveS:
		return inventory.Navigate(cursor.Down), true
	case ActionMoveE:
		return inventory.Navigate(cursor.Right), true
	case ActionMoveW:
		return inventory.Navigate(cursor.Left), true
	case ActionRotate:
		return inventory.Rotate(), true
	case ActionInteract:
		return inventory.Action(), true
	}
	return inventory.Command{}, false
}
