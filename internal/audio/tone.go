package audio

import (
	"fmt"

	"github.com/gopxl/beep"
)

// Note frequencies used by the patches
const (
	NoteC4 = 261.63
	NoteE4 = 329.63
	NoteG4 = 392.00
	NoteC5 = 523.25
)

// Tone is a one-shot voice: an oscillator through an automated gain,
// stopped after a fixed length. It implements beep.Streamer.
type Tone struct {
	osc    *Oscillator
	gain   *Param
	rate   beep.SampleRate
	pos    int
	length int
}

// NewTone creates a tone of the given length in seconds. The caller schedules
// automation on Frequency() and Gain() before streaming.
func NewTone(wave WaveType, length float64, rate beep.SampleRate) *Tone {
	return &Tone{
		osc:    NewOscillator(wave, 440),
		gain:   NewParam(1),
		rate:   rate,
		length: int(length * float64(rate)),
	}
}

// Frequency returns the oscillator frequency parameter.
func (t *Tone) Frequency() *Param { return t.osc.Frequency }

// Gain returns the output gain parameter.
func (t *Tone) Gain() *Param { return t.gain }

// Wave returns the oscillator's wave shape.
func (t *Tone) Wave() WaveType { return t.osc.Wave }

// Len returns the tone length in samples.
func (t *Tone) Len() int { return t.length }

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(t.rate)
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		now := float64(t.pos) / rate
		val := t.osc.Next(now, rate) * t.gain.ValueAt(now)

		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// patch builds the automation for one sound effect.
type patch struct {
	wave   WaveType
	length float64 // Seconds
	setup  func(freq, gain *Param)
}

var patches = [soundCount]patch{
	SoundPaddleHit: {
		wave:   WaveSquare,
		length: 0.1,
		setup: func(freq, gain *Param) {
			freq.SetValueAtTime(400, 0)
			freq.ExponentialRampToValueAtTime(600, 0.1)
			gain.SetValueAtTime(0.3, 0)
			gain.ExponentialRampToValueAtTime(0.01, 0.1)
		},
	},
	SoundWallBounce: {
		wave:   WaveTriangle,
		length: 0.15,
		setup: func(freq, gain *Param) {
			freq.SetValueAtTime(200, 0)
			freq.ExponentialRampToValueAtTime(100, 0.15)
			gain.SetValueAtTime(0.2, 0)
			gain.ExponentialRampToValueAtTime(0.01, 0.15)
		},
	},
	SoundScore: {
		wave:   WaveSawtooth,
		length: 0.5,
		setup: func(freq, gain *Param) {
			freq.SetValueAtTime(100, 0)
			freq.LinearRampToValueAtTime(50, 0.5)
			gain.SetValueAtTime(0.3, 0)
			gain.ExponentialRampToValueAtTime(0.01, 0.5)
		},
	},
	SoundGameStart: {
		wave:   WaveSquare,
		length: 0.4,
		setup: func(freq, gain *Param) {
			freq.SetValueAtTime(NoteC4, 0)
			freq.SetValueAtTime(NoteE4, 0.1)
			freq.SetValueAtTime(NoteG4, 0.2)
			freq.SetValueAtTime(NoteC5, 0.3)
			gain.SetValueAtTime(0.2, 0)
			gain.SetValueAtTime(0.2, 0.3)
			gain.ExponentialRampToValueAtTime(0.01, 0.4)
		},
	},
	SoundGameOver: {
		wave:   WaveSquare,
		length: 0.4,
		setup: func(freq, gain *Param) {
			freq.SetValueAtTime(400, 0)
			freq.LinearRampToValueAtTime(100, 0.4)
			gain.SetValueAtTime(0.25, 0)
			gain.ExponentialRampToValueAtTime(0.01, 0.4)
		},
	},
}

// NewSound creates a fresh streamer for a sound-effect patch.
func NewSound(s Sound, rate beep.SampleRate) (*Tone, error) {
	if s < 0 || s >= soundCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, int(s))
	}
	p := patches[s]
	tone := NewTone(p.wave, p.length, rate)
	p.setup(tone.Frequency(), tone.Gain())
	return tone, nil
}
