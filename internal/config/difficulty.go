package config

import (
	"fmt"
	"strings"
)

// PresetName identifies an AI difficulty preset.
type PresetName string

const (
	PresetEasy   PresetName = "easy"
	PresetMedium PresetName = "medium"
	PresetHard   PresetName = "hard"
)

// PresetOrder lists the presets in the order of their selection keys (1, 2, 3).
var PresetOrder = []PresetName{PresetEasy, PresetMedium, PresetHard}

// AIProfile holds the AI opponent's tuning for one preset.
type AIProfile struct {
	Speed         float64 `yaml:"ai_speed"`          // Fraction of paddle speed, also scales the prediction
	Error         float64 `yaml:"ai_error"`          // Width of the random aim error in pixels
	ReactionDelay int     `yaml:"ai_reaction_delay"` // Frames between target re-evaluations
	Label         string  `yaml:"label"`
	Color         string  `yaml:"color"`
}

// ParsePreset converts a user-supplied name to a PresetName.
func ParsePreset(s string) (PresetName, error) {
	switch PresetName(strings.ToLower(strings.TrimSpace(s))) {
	case PresetEasy:
		return PresetEasy, nil
	case PresetMedium, "normal":
		return PresetMedium, nil
	case PresetHard:
		return PresetHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Profile returns the AI profile for a preset, falling back to medium.
func (c *Config) Profile(name PresetName) AIProfile {
	if p, ok := c.Difficulty.Presets[name]; ok {
		return p
	}
	return DefaultPresets()[PresetMedium]
}

// DefaultPreset returns the configured starting preset.
func (c *Config) DefaultPreset() PresetName {
	name, err := ParsePreset(c.Difficulty.Default)
	if err != nil {
		return PresetMedium
	}
	return name
}

// DefaultPresets returns the built-in AI presets.
func DefaultPresets() map[PresetName]AIProfile {
	return map[PresetName]AIProfile{
		PresetEasy: {
			Speed:         0.5,
			Error:         30,
			ReactionDelay: 15,
			Label:         "EASY",
			Color:         "#00ff00",
		},
		PresetMedium: {
			Speed:         0.75,
			Error:         15,
			ReactionDelay: 8,
			Label:         "MEDIUM",
			Color:         "#ffff00",
		},
		PresetHard: {
			Speed:         0.95,
			Error:         5,
			ReactionDelay: 2,
			Label:         "HARD",
			Color:         "#ff0000",
		},
	}
}
