package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neon-pong/internal/config"
)

// Engine mixes sound effects and any attached long-running streams (music)
// into the speaker. When no device is available it stays silent and every
// call becomes a no-op, so the game never depends on audio.
type Engine struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	master *effects.Volume
	logger *log.Logger

	live  bool // Output is running
	muted bool
}

// NewEngine creates an engine. Call Init to open the device.
func NewEngine(cfg config.AudioConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	mixer := &beep.Mixer{}
	return &Engine{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  mixer,
		master: newVolume(mixer, cfg.MasterVolume),
		logger: logger,
	}
}

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Init opens the output device and starts playback.
// Failure leaves the engine in silent mode; the returned error wraps
// ErrNoDevice and is only worth logging.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.live {
		return nil
	}
	if !e.cfg.Enabled {
		e.logger.Info("audio disabled by configuration")
		return nil
	}

	buffer := e.rate.N(time.Duration(e.cfg.BufferMs) * time.Millisecond)
	if err := speaker.Init(e.rate, buffer); err != nil {
		e.logger.Warn("audio device unavailable, running silent", "err", err)
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	speaker.Play(e.master)
	e.live = true
	e.logger.Debug("audio started", "rate", int(e.rate), "buffer", buffer)
	return nil
}

// Live reports whether sound is reaching a device.
func (e *Engine) Live() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live
}

// SampleRate returns the output sample rate.
func (e *Engine) SampleRate() beep.SampleRate {
	return e.rate
}

// Play starts a sound effect. Overlapping plays mix.
func (e *Engine) Play(s Sound) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.live {
		return
	}
	tone, err := NewSound(s, e.rate)
	if err != nil {
		e.logger.Error("cannot play sound", "err", err)
		return
	}

	speaker.Lock()
	e.mixer.Add(tone)
	speaker.Unlock()
}

// Attach adds a long-running stream to the mix. The stream must be safe to
// pull from the speaker goroutine.
func (e *Engine) Attach(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.live {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or restores all output.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = muted
	silent := muted || e.cfg.MasterVolume <= 0
	if e.live {
		speaker.Lock()
		e.master.Silent = silent
		speaker.Unlock()
	} else {
		e.master.Silent = silent
	}
}

// ToggleMute flips the mute state and returns the new one.
func (e *Engine) ToggleMute() bool {
	muted := !e.Muted()
	e.SetMuted(muted)
	return muted
}

// Muted reports whether output is muted.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close stops playback and releases the device.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.live {
		return
	}
	speaker.Clear()
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.live = false
}
