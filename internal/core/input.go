package core

// Action is a semantic input, decoupled from the physical key that produced
// it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Menu navigation
	ActionDown           // Menu navigation
	ActionLeft           // Rotate aim left
	ActionRight          // Rotate aim right
	ActionFire           // Launch the loaded block
	ActionConfirm        // Enter
	ActionBack           // Leave to the menu
	ActionRestart        // Start a new round after game over
	ActionQuit
	ActionPause
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered during one tick. Held keys
// repeat, so the same action may be counted more than once per frame.
type InputFrame struct {
	counts map[Action]int
}

// NewInputFrame creates an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{counts: make(map[Action]int)}
}

// Set records one occurrence of a.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.counts == nil {
		f.counts = make(map[Action]int)
	}
	f.counts[a]++
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.counts[a] > 0
}

// Count returns how many times a was triggered this frame.
func (f InputFrame) Count(a Action) int {
	return f.counts[a]
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return len(f.counts) == 0
}

// Clear drops every recorded action.
func (f *InputFrame) Clear() {
	clear(f.counts)
}
