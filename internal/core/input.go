package core

// Action represents a semantic game action, abstracted from physical key presses.
// This lets the game work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPause          // P, Esc
	ActionRestart        // R - start over with a fresh seed
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a directional action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// ActionFor returns the directional action matching d.
func ActionFor(d Direction) Action {
	switch d {
	case DirUp:
		return ActionUp
	case DirDown:
		return ActionDown
	case DirLeft:
		return ActionLeft
	default:
		return ActionRight
	}
}

// EventKind distinguishes the two events an input source can deliver.
type EventKind int

const (
	EventKey EventKind = iota
	EventQuit
)

// Event is one discrete input event: either a quit request or a directional
// key press.
type Event struct {
	Kind EventKind
	Dir  Direction
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyEvent returns a directional key press.
func KeyEvent(d Direction) Event {
	return Event{Kind: EventKey, Dir: d}
}

// InputFrame holds the actions drained during one simulation tick, in the
// order they arrived. Order matters: each directional press is validated
// against the committed direction, and the last accepted one wins.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameFromEvents converts polled key events into an input frame.
// Quit events are not part of a frame; callers handle them before stepping.
func FrameFromEvents(events []Event) InputFrame {
	frame := NewInputFrame()
	for _, ev := range events {
		if ev.Kind == EventKey {
			frame.Set(ActionFor(ev.Dir))
		}
	}
	return frame
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Directions returns the directional actions of the frame in arrival order.
func (f InputFrame) Directions() []Direction {
	var dirs []Direction
	for _, a := range f.Actions {
		if d, ok := a.Direction(); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Actions = append(clone.Actions, f.Actions...)
	return clone
}
