package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - left paddle up
	ActionLeftDown         // S - left paddle down
	ActionRightUp          // Up arrow - right paddle up (two-player)
	ActionRightDown        // Down arrow - right paddle down (two-player)
	ActionServe            // Space - start, pause, resume, restart
	ActionToggleAI         // P - switch between vs CPU and two-player
	ActionEasy             // 1 - easy AI
	ActionMedium           // 2 - medium AI
	ActionHard             // 3 - hard AI
	ActionMute             // M - toggle audio
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionServe:
		return "Serve"
	case ActionToggleAI:
		return "ToggleAI"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is a held paddle direction.
func (a Action) IsMovement() bool {
	return a >= ActionLeftUp && a <= ActionRightDown
}

// opposite returns the paddle direction that cancels a.
func (a Action) opposite() Action {
	switch a {
	case ActionLeftUp:
		return ActionLeftDown
	case ActionLeftDown:
		return ActionLeftUp
	case ActionRightUp:
		return ActionRightDown
	case ActionRightDown:
		return ActionRightUp
	default:
		return ActionNone
	}
}

// InputFrame represents the input state during one simulation tick.
// Movement actions are present while their key is held; the others are
// present only on the tick their key was pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Default hold windows for KeyState. The initial window must outlast the
// terminal's auto-repeat delay; the repeat window only bridges repeats.
const (
	DefaultInitialHold = 350 * time.Millisecond
	DefaultRepeatHold  = 90 * time.Millisecond
)

// KeyState tracks which movement keys are held.
// Terminals deliver presses and auto-repeats but never releases, so a key
// counts as held until its hold window lapses without another press.
type KeyState struct {
	initialHold time.Duration
	repeatHold  time.Duration
	until       map[Action]time.Time
}

// NewKeyState creates a tracker with the given hold windows.
func NewKeyState(initialHold, repeatHold time.Duration) *KeyState {
	return &KeyState{
		initialHold: initialHold,
		repeatHold:  repeatHold,
		until:       make(map[Action]time.Time),
	}
}

// Press records a key press (or auto-repeat) at time now.
// Pressing a direction releases the opposite direction of the same paddle.
func (k *KeyState) Press(a Action, now time.Time) {
	if !a.IsMovement() {
		return
	}
	delete(k.until, a.opposite())

	hold := k.initialHold
	if k.Held(a, now) {
		hold = k.repeatHold
	}
	deadline := now.Add(hold)
	if prev, ok := k.until[a]; ok && prev.After(deadline) {
		deadline = prev
	}
	k.until[a] = deadline
}

// Held reports whether the action's key is considered down at time now.
func (k *KeyState) Held(a Action, now time.Time) bool {
	deadline, ok := k.until[a]
	return ok && now.Before(deadline)
}

// Release forgets a held key.
func (k *KeyState) Release(a Action) {
	delete(k.until, a)
}

// Reset forgets all held keys.
func (k *KeyState) Reset() {
	for a := range k.until {
		delete(k.until, a)
	}
}

// Apply sets every held movement action on the frame and drops expired keys.
func (k *KeyState) Apply(frame *InputFrame, now time.Time) {
	for a, deadline := range k.until {
		if now.Before(deadline) {
			frame.Set(a)
		} else {
			delete(k.until, a)
		}
	}
}
