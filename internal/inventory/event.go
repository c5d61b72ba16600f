package inventory

import "grid-inventory/internal/cursor"

// State is the interaction state of the selector.
type State uint8

const (
	StateIdle     State = iota // nothing hovered, nothing carried
	StateHovering              // cursor locked onto a placed item
	StateCarrying              // an item is detached and follows the cursor
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovering:
		return "hovering"
	case StateCarrying:
		return "carrying"
	}
	return "unknown"
}

// Event is a notification emitted by a transition for audio/visual
// collaborators. Events carry no payload.
type Event uint8

const (
	EventNavigate Event = iota + 1
	EventNavigateWithItem
	EventGrab
	EventDrop
)

func (e Event) String() string {
	switch e {
	case EventNavigate:
		return "navigate"
	case EventNavigateWithItem:
		return "navigate-with-item"
	case EventGrab:
		return "grab"
	case EventDrop:
		return "drop"
	}
	return "unknown"
}

// CommandKind selects which transition a Command triggers.
type CommandKind uint8

const (
	CommandNone CommandKind = iota
	CommandNavigate
	CommandRotate
	CommandAction
)

// Command is an abstract input event. Dir is only read for CommandNavigate.
type Command struct {
	Kind CommandKind
	Dir  cursor.Direction
}

// Navigate returns a navigation command in direction d.
func Navigate(d cursor.Direction) Command { return Command{Kind: CommandNavigate, Dir: d} }

// Rotate returns a rotate command.
func Rotate() Command { return Command{Kind: CommandRotate} }

// Action returns an action (grab/drop) command.
func Action() Command { return Command{Kind: CommandAction} }
