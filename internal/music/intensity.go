// Package music generates the adaptive background track. A control loop feeds
// it an intensity derived from the match; intensity sets the tempo and decides
// which of the four voices play.
package music

import "math"

// Intensity weights
const (
	baseIntensity   = 0.3
	scoreGapWeight  = 0.1
	matchPointBonus = 0.3
	ballSpeedWeight = 0.05
	drumThreshold   = 0.4
	leadThreshold   = 0.6
	arpThreshold    = 0.8
)

// Intensity derives the music intensity in [0, 1] from the match state.
// It rises with the score gap and the ball speed, and jumps at match point.
func Intensity(scoreLeft, scoreRight, winningScore int, ballSpeed, initialSpeed float64) float64 {
	i := baseIntensity
	i += scoreGapWeight * math.Abs(float64(scoreLeft-scoreRight))
	if max(scoreLeft, scoreRight) >= winningScore-1 {
		i += matchPointBonus
	}
	i += ballSpeedWeight * (ballSpeed - initialSpeed)
	return math.Max(0, math.Min(1, i))
}
