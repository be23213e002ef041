package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionJump           // Space - jump
	ActionShoot          // Left Ctrl (window), F/X (terminal) - fire
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C, window close - exit
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputEvent is a single key transition mapped to an action.
type InputEvent struct {
	Action Action
	Down   bool // true for key-down, false for key-up
	Repeat bool // key-down generated by auto-repeat while held
}

// InputFrame holds the input events drained during one simulation tick,
// in arrival order.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Events: make([]InputEvent, 0, 4),
	}
}

// Set records a key-down for the action.
func (f *InputFrame) Set(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Down: true})
}

// Repeat records an auto-repeat key-down for the action.
func (f *InputFrame) Repeat(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Down: true, Repeat: true})
}

// Release records a key-up for the action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Down: false})
}

// Has returns true if a fresh (non-repeat) key-down for the action
// arrived this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && e.Down && !e.Repeat {
			return true
		}
	}
	return false
}

// Released returns true if a key-up for the action arrived this frame.
func (f InputFrame) Released(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && !e.Down {
			return true
		}
	}
	return false
}

// Empty reports whether no events were recorded.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets all events for the next frame, keeping capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]InputEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
