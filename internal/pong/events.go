package pong

// Event is something the platform should react to with sound or music.
// The game itself never touches audio.
type Event int

const (
	EventNone Event = iota
	EventPaddleHit
	EventWallBounce
	EventScore
	EventGameStart
	EventGameOver
	EventMusicStart
	EventMusicStop
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPaddleHit:
		return "PaddleHit"
	case EventWallBounce:
		return "WallBounce"
	case EventScore:
		return "Score"
	case EventGameStart:
		return "GameStart"
	case EventGameOver:
		return "GameOver"
	case EventMusicStart:
		return "MusicStart"
	case EventMusicStop:
		return "MusicStop"
	default:
		return "None"
	}
}

// State is the match state.
type State int

const (
	StateWaiting State = iota
	StatePlaying
	StatePaused
	StateOver
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// StepResult contains the outcome of a single simulation step.
type StepResult struct {
	State  State
	Events []Event // In the order they happened; nil when nothing happened
}

// Has reports whether the step produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
