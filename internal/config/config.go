// Package config provides YAML-based game configuration loading and the
// named difficulty presets for the AI opponent.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for configurations the game cannot run with.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all configuration for Neon Pong.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Music      MusicConfig      `yaml:"music"`
}

// FieldConfig defines the logical playfield in pixels.
// The renderer scales it to whatever the terminal offers.
type FieldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	GridSize float64 `yaml:"grid_size"`
}

// PaddleConfig defines paddle geometry and the per-point resizing rule.
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	InitialHeight float64 `yaml:"initial_height"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
	SizeChange    float64 `yaml:"size_change"` // Pixels gained/lost per point
	Speed         float64 `yaml:"speed"`       // Pixels per frame
	Offset        float64 `yaml:"offset"`      // Distance from the side wall
}

// BallConfig defines ball physics.
type BallConfig struct {
	Size         float64 `yaml:"size"`
	InitialSpeed float64 `yaml:"initial_speed"`
	SpeedUp      float64 `yaml:"speed_up"`      // dx multiplier per paddle hit
	MaxDeflect   float64 `yaml:"max_deflect"`   // dy at the paddle tip
	TrailLength  int     `yaml:"trail_length"`
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinningScore  int  `yaml:"winning_score"`
	ParticleCount int  `yaml:"particle_count"`
	AIEnabled     bool `yaml:"ai_enabled"`
}

// DifficultyConfig holds the AI presets and the one selected at start.
type DifficultyConfig struct {
	Default string                   `yaml:"default"`
	Presets map[PresetName]AIProfile `yaml:"presets"`
}

// InputConfig tunes how key presses become held keys.
type InputConfig struct {
	InitialHoldMs int `yaml:"initial_hold_ms"`
	RepeatHoldMs  int `yaml:"repeat_hold_ms"`
}

// InitialHold returns the initial hold window as a duration.
func (c InputConfig) InitialHold() time.Duration {
	return time.Duration(c.InitialHoldMs) * time.Millisecond
}

// RepeatHold returns the auto-repeat hold window as a duration.
func (c InputConfig) RepeatHold() time.Duration {
	return time.Duration(c.RepeatHoldMs) * time.Millisecond
}

// AudioConfig defines output and effect levels.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0-1.0
	SampleRate   int     `yaml:"sample_rate"`
	BufferMs     int     `yaml:"buffer_ms"`
}

// MusicConfig defines the adaptive music engine.
type MusicConfig struct {
	Enabled          bool    `yaml:"enabled"`
	Volume           float64 `yaml:"volume"` // Master gain of the music bus
	BaseTempo        float64 `yaml:"base_tempo"`
	TempoRange       float64 `yaml:"tempo_range"` // BPM added at full intensity
	UpdateIntervalMs int     `yaml:"update_interval_ms"`
}

// UpdateInterval returns the music control period as a duration.
func (c MusicConfig) UpdateInterval() time.Duration {
	return time.Duration(c.UpdateIntervalMs) * time.Millisecond
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have positive size", ErrInvalid)
	case c.Paddle.MinHeight <= 0 || c.Paddle.MinHeight > c.Paddle.MaxHeight:
		return fmt.Errorf("%w: paddle min_height must be in (0, max_height]", ErrInvalid)
	case c.Paddle.InitialHeight < c.Paddle.MinHeight || c.Paddle.InitialHeight > c.Paddle.MaxHeight:
		return fmt.Errorf("%w: paddle initial_height must be within [min_height, max_height]", ErrInvalid)
	case c.Paddle.MaxHeight > c.Field.Height:
		return fmt.Errorf("%w: paddle max_height exceeds field height", ErrInvalid)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive", ErrInvalid)
	case c.Ball.Size <= 0 || c.Ball.InitialSpeed <= 0:
		return fmt.Errorf("%w: ball size and initial_speed must be positive", ErrInvalid)
	case c.Ball.TrailLength < 0:
		return fmt.Errorf("%w: ball trail_length must not be negative", ErrInvalid)
	case c.Gameplay.WinningScore <= 0:
		return fmt.Errorf("%w: winning_score must be positive", ErrInvalid)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master_volume must be within [0, 1]", ErrInvalid)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate must be positive", ErrInvalid)
	case c.Music.UpdateIntervalMs <= 0:
		return fmt.Errorf("%w: music update_interval_ms must be positive", ErrInvalid)
	}

	for _, name := range PresetOrder {
		if _, ok := c.Difficulty.Presets[name]; !ok {
			return fmt.Errorf("%w: missing difficulty preset %q", ErrInvalid, name)
		}
	}
	if _, err := ParsePreset(c.Difficulty.Default); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
