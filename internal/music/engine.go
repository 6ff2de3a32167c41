package music

import (
	"math"
	"sync"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-pong/internal/audio"
	"github.com/vovakirdan/neon-pong/internal/config"
)

// Patterns, in Hz. A zero in the lead line is a rest.
var (
	bassNotes = [8]float64{55, 55, 82.41, 55, 55, 82.41, 73.42, 73.42}
	leadNotes = [8]float64{440, 0, 523.25, 440, 392, 0, 349.23, 392}
	arpNotes  = [4]float64{880, 1046.5, 1318.5, 1046.5}
)

// Voice levels and envelopes
const (
	bassLevel  = 0.3
	leadLevel  = 0.15
	arpLevel   = 0.1
	arpRate    = 8 // Arpeggio notes per second
	kickFreq   = 60
	kickLevel  = 0.5
	kickDecay  = 0.1
	snareFreq  = 200
	snareLevel = 0.3
	snareDecay = 0.05
	drumFloor  = 0.01
	fadeFloor  = 0.001
	fadeTime   = 0.5
)

// voice is an always-running oscillator behind its own gain.
type voice struct {
	osc  *audio.Oscillator
	gain *audio.Param
}

func newVoice(wave audio.WaveType) voice {
	return voice{osc: audio.NewOscillator(wave, 440), gain: audio.NewParam(0)}
}

func (v voice) next(t, rate float64) float64 {
	return v.osc.Next(t, rate) * v.gain.ValueAt(t)
}

func (v voice) prune(t float64) {
	v.osc.Frequency.Prune(t)
	v.gain.Prune(t)
}

// Engine is the adaptive music generator. It implements beep.Streamer and is
// safe to stream from the speaker goroutine while the game calls Update.
// Time is the engine's own sample clock, so scheduled changes land on the
// next buffer the speaker pulls.
type Engine struct {
	mu   sync.Mutex
	cfg  config.MusicConfig
	rate float64
	pos  int64 // Samples streamed

	bass voice
	lead voice
	drum voice
	arp  voice

	playing    bool
	tempo      float64
	beats      float64 // Beats elapsed since Start, accumulated at the tempo in effect
	lastUpdate float64
	intensity  float64
}

// NewEngine creates a stopped engine rendering at rate.
func NewEngine(cfg config.MusicConfig, rate beep.SampleRate) *Engine {
	return &Engine{
		cfg:   cfg,
		rate:  float64(rate),
		bass:  newVoice(audio.WaveSawtooth),
		lead:  newVoice(audio.WaveSquare),
		drum:  newVoice(audio.WaveTriangle),
		arp:   newVoice(audio.WaveSine),
		tempo: cfg.BaseTempo,
	}
}

func (e *Engine) now() float64 {
	return float64(e.pos) / e.rate
}

// Start begins playback at the given intensity. Starting a playing engine
// does nothing.
func (e *Engine) Start(intensity float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.playing {
		return
	}
	e.playing = true
	e.beats = 0
	e.lastUpdate = e.now()
	e.update(intensity)
}

// Stop fades every voice out over half a second. Stopping a stopped engine
// does nothing.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.playing {
		return
	}
	e.playing = false

	end := e.now() + fadeTime
	for _, v := range e.voices() {
		v.gain.ExponentialRampToValueAtTime(fadeFloor, end)
	}
}

// Playing reports whether the engine is started.
func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// Update is the control step, called every update interval while playing.
// Nothing happens until the stream has advanced since the last step.
func (e *Engine) Update(intensity float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.playing || e.now() == e.lastUpdate {
		return
	}
	e.update(intensity)
}

func (e *Engine) update(intensity float64) {
	now := e.now()
	e.beats += (now - e.lastUpdate) * e.tempo / 60
	e.lastUpdate = now
	beat := int(e.beats)

	intensity = math.Max(0, math.Min(1, intensity))
	e.intensity = intensity
	e.tempo = e.cfg.BaseTempo + e.cfg.TempoRange*intensity

	// Bass always plays
	e.bass.osc.Frequency.SetValueAtTime(bassNotes[beat%len(bassNotes)], now)
	e.bass.gain.SetValueAtTime(bassLevel*intensity, now)

	// Kick on 1, snare on 3; the drum rings down between hits
	if intensity > drumThreshold {
		switch beat % 4 {
		case 0:
			e.hit(kickFreq, kickLevel, kickDecay, now)
		case 2:
			e.hit(snareFreq, snareLevel, snareDecay, now)
		}
	} else {
		e.drum.gain.SetValueAtTime(0, now)
	}

	if intensity > leadThreshold {
		if note := leadNotes[beat%len(leadNotes)]; note > 0 {
			e.lead.osc.Frequency.SetValueAtTime(note, now)
			e.lead.gain.SetValueAtTime(leadLevel*intensity, now)
		} else {
			e.lead.gain.SetValueAtTime(0, now)
		}
	} else {
		e.lead.gain.SetValueAtTime(0, now)
	}

	if intensity > arpThreshold {
		note := arpNotes[int(now*arpRate)%len(arpNotes)]
		e.arp.osc.Frequency.SetValueAtTime(note, now)
		e.arp.gain.SetValueAtTime(arpLevel*intensity, now)
	} else {
		e.arp.gain.SetValueAtTime(0, now)
	}

	for _, v := range e.voices() {
		v.prune(now)
	}
}

func (e *Engine) hit(freq, level, decay, now float64) {
	e.drum.osc.Frequency.SetValueAtTime(freq, now)
	e.drum.gain.SetValueAtTime(level, now)
	e.drum.gain.ExponentialRampToValueAtTime(drumFloor, now+decay)
}

func (e *Engine) voices() [4]voice {
	return [4]voice{e.bass, e.lead, e.drum, e.arp}
}

// Tempo returns the current tempo in BPM.
func (e *Engine) Tempo() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tempo
}

// Beat returns the current beat number since Start.
func (e *Engine) Beat() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int(e.beats)
}

// Intensity returns the intensity from the last update.
func (e *Engine) Intensity() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.intensity
}

// Stream renders the mix. It never drains.
func (e *Engine) Stream(samples [][2]float64) (n int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	gain := e.cfg.Volume
	for i := range samples {
		t := e.now()
		val := e.bass.next(t, e.rate) + e.lead.next(t, e.rate) +
			e.drum.next(t, e.rate) + e.arp.next(t, e.rate)
		val *= gain

		samples[i][0] = val
		samples[i][1] = val
		e.pos++
	}
	return len(samples), true
}

func (e *Engine) Err() error { return nil }
