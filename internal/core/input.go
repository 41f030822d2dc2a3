package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionThrust         // Space, Up, W, mouse button - fly
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
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

// InputFrame represents the input state for a single simulation tick.
// Actions holds edge-triggered presses that happened during the tick.
// Held holds level-triggered controls that are down for the whole tick.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetHeld records whether a continuous control is down for this frame.
func (f *InputFrame) SetHeld(a Action, down bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if down {
		f.Held[a] = true
	} else {
		delete(f.Held, a)
	}
}

// IsHeld returns true if the given continuous control is down.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets the edge-triggered actions for the next frame.
// Held state is owned by the caller and survives a Clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HoldLatch turns discrete key presses into a held control.
// Terminals report key repeats but not releases, so a press keeps the
// control down for a fixed number of ticks and each repeat re-arms it.
// Explicit press/release pairs (mouse buttons) bypass the countdown.
type HoldLatch struct {
	window    int
	remaining int
	pinned    bool
}

// NewHoldLatch creates a latch that stays down for window ticks after a press.
func NewHoldLatch(window int) *HoldLatch {
	if window < 1 {
		window = 1
	}
	return &HoldLatch{window: window}
}

// Press re-arms the countdown.
func (h *HoldLatch) Press() {
	h.remaining = h.window
}

// Pin holds the control down until Release.
func (h *HoldLatch) Pin() {
	h.pinned = true
}

// Release drops the control immediately.
func (h *HoldLatch) Release() {
	h.pinned = false
	h.remaining = 0
}

// Down reports whether the control is currently held.
func (h *HoldLatch) Down() bool {
	return h.pinned || h.remaining > 0
}

// Tick advances the countdown by one simulation tick.
func (h *HoldLatch) Tick() {
	if h.remaining > 0 {
		h.remaining--
	}
}
