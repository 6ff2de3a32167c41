package audio

import "math"

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSawtooth
)

// String returns the wave name.
func (w WaveType) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	case WaveSawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Sample returns the wave's value at phase in [0, 1).
// Every shape starts at zero or its positive half and stays within [-1, 1].
func (w WaveType) Sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		switch {
		case phase < 0.25:
			return 4 * phase
		case phase < 0.75:
			return 2 - 4*phase
		default:
			return 4*phase - 4
		}
	case WaveSawtooth:
		return 2 * (phase - math.Floor(phase+0.5))
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Oscillator is a free-running wave generator with an automated frequency.
type Oscillator struct {
	Wave      WaveType
	Frequency *Param
	phase     float64
}

// NewOscillator creates an oscillator starting at freq Hz.
func NewOscillator(wave WaveType, freq float64) *Oscillator {
	return &Oscillator{Wave: wave, Frequency: NewParam(freq)}
}

// Next returns the sample at time t and advances by one sample period.
func (o *Oscillator) Next(t, rate float64) float64 {
	val := o.Wave.Sample(o.phase)

	o.phase += o.Frequency.ValueAt(t) / rate
	o.phase -= math.Floor(o.phase) // Keep in [0, 1)
	return val
}
