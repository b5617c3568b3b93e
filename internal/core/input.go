package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate keys into actions so the match never sees raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space (world 0), Up (world 1 in versus)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - leave the match
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
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

// InputFrame is the set of actions one player triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// MultiInputFrame holds per-world input for one tick plus actions that
// apply to the whole session (pause, restart, back).
type MultiInputFrame struct {
	ByWorld map[int]InputFrame
	Global  InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByWorld: make(map[int]InputFrame),
		Global:  NewInputFrame(),
	}
}

// World returns the input frame for a world index.
// Returns an empty frame if that world has no input.
func (m MultiInputFrame) World(i int) InputFrame {
	if frame, ok := m.ByWorld[i]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetWorld marks an action for a world index.
func (m *MultiInputFrame) SetWorld(i int, a Action) {
	if m.ByWorld == nil {
		m.ByWorld = make(map[int]InputFrame)
	}
	frame := m.ByWorld[i]
	frame.Set(a)
	m.ByWorld[i] = frame
}

// Clear resets all inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	clear(m.ByWorld)
	clear(m.Global.Actions)
}
