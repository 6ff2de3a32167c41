package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/pong.yaml and backs it up if the embed fails to parse.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:    800,
			Height:   400,
			GridSize: 40,
		},
		Paddle: PaddleConfig{
			Width:         15,
			InitialHeight: 80,
			MinHeight:     30,
			MaxHeight:     150,
			SizeChange:    10,
			Speed:         5,
			Offset:        30,
		},
		Ball: BallConfig{
			Size:         12,
			InitialSpeed: 4,
			SpeedUp:      1.05,
			MaxDeflect:   5,
			TrailLength:  10,
		},
		Gameplay: GameplayConfig{
			WinningScore:  5,
			ParticleCount: 20,
			AIEnabled:     true,
		},
		Difficulty: DifficultyConfig{
			Default: string(PresetMedium),
			Presets: DefaultPresets(),
		},
		Input: InputConfig{
			InitialHoldMs: 350,
			RepeatHoldMs:  90,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			SampleRate:   44100,
			BufferMs:     50,
		},
		Music: MusicConfig{
			Enabled:          true,
			Volume:           0.15,
			BaseTempo:        120,
			TempoRange:       80,
			UpdateIntervalMs: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
