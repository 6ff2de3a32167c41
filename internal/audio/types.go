// Package audio synthesizes the game's sound effects and owns the output
// device. Every sound is an oscillator whose frequency and gain follow
// scheduled automation, mixed through gopxl/beep.
package audio

import (
	"errors"
)

// Sound identifies one of the fixed sound-effect patches.
type Sound int

const (
	SoundPaddleHit  Sound = iota // Ball meets a paddle
	SoundWallBounce              // Ball meets the top or bottom wall
	SoundScore                   // A point is scored
	SoundGameStart               // Rising arpeggio on serve
	SoundGameOver                // Falling sweep at match end
	soundCount
)

var soundNames = [soundCount]string{
	SoundPaddleHit:  "paddleHit",
	SoundWallBounce: "wallBounce",
	SoundScore:      "score",
	SoundGameStart:  "gameStart",
	SoundGameOver:   "gameOver",
}

// String returns the patch name.
func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrNoDevice     = errors.New("audio: no output device")
	ErrUnknownSound = errors.New("audio: unknown sound")
)
