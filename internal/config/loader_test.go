package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only finds what the test writes.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, env := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSampleRate, EnvDifficulty} {
		t.Setenv(env, "")
	}
	return home
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultConfig()

	if cfg.Field != def.Field || cfg.Paddle != def.Paddle || cfg.Ball != def.Ball {
		t.Errorf("Embedded geometry differs from DefaultConfig():\n%+v\n%+v", cfg, def)
	}
	if cfg.Gameplay != def.Gameplay || cfg.Audio != def.Audio || cfg.Music != def.Music || cfg.Input != def.Input {
		t.Error("Embedded rules differ from DefaultConfig()")
	}
	for _, name := range PresetOrder {
		if cfg.Difficulty.Presets[name] != def.Difficulty.Presets[name] {
			t.Errorf("Preset %s differs: %+v vs %+v", name, cfg.Difficulty.Presets[name], def.Difficulty.Presets[name])
		}
	}
}

func TestLoadEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Gameplay.WinningScore != 5 {
		t.Errorf("WinningScore = %d, expected 5", cfg.Gameplay.WinningScore)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "pong.yaml"), []byte("gameplay:\n  winning_score: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != filepath.Join("configs", "pong.yaml") || cfg.Gameplay.WinningScore != 7 {
		t.Errorf("Expected local config, got source=%q score=%d", source, cfg.Gameplay.WinningScore)
	}
	// Unset keys keep their defaults
	if cfg.Paddle.InitialHeight != 80 {
		t.Errorf("InitialHeight = %v, expected default 80", cfg.Paddle.InitialHeight)
	}

	// User config wins over the local one
	userDir := filepath.Join(home, ".neonpong")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := filepath.Join(userDir, "config.yaml")
	if err := os.WriteFile(userPath, []byte("gameplay:\n  winning_score: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != userPath || cfg.Gameplay.WinningScore != 9 {
		t.Errorf("Expected user config, got source=%q score=%d", source, cfg.Gameplay.WinningScore)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	if err := os.WriteFile(path, []byte("difficulty:\n  default: hard\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if source != path || cfg.DefaultPreset() != PresetHard {
		t.Errorf("source=%q preset=%q", source, cfg.DefaultPreset())
	}

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load with malformed YAML should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "invalid.yaml")

	if err := os.WriteFile(path, []byte("paddle:\n  min_height: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero field", func(c *Config) { c.Field.Width = 0 }, false},
		{"initial below min", func(c *Config) { c.Paddle.InitialHeight = 10 }, false},
		{"max taller than field", func(c *Config) { c.Paddle.MaxHeight = 500 }, false},
		{"no paddle speed", func(c *Config) { c.Paddle.Speed = 0 }, false},
		{"negative trail", func(c *Config) { c.Ball.TrailLength = -1 }, false},
		{"no trail", func(c *Config) { c.Ball.TrailLength = 0 }, true},
		{"zero winning score", func(c *Config) { c.Gameplay.WinningScore = 0 }, false},
		{"loud master", func(c *Config) { c.Audio.MasterVolume = 1.5 }, false},
		{"missing preset", func(c *Config) { delete(c.Difficulty.Presets, PresetHard) }, false},
		{"unknown default", func(c *Config) { c.Difficulty.Default = "nightmare" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvSampleRate, "-1")
	t.Setenv(EnvDifficulty, "EASY")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)

	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by env")
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("MasterVolume = %v, expected clamp to 1", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, invalid override should be ignored", cfg.Audio.SampleRate)
	}
	if cfg.DefaultPreset() != PresetEasy {
		t.Errorf("DefaultPreset() = %q, expected easy", cfg.DefaultPreset())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Round-tripped config invalid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    PresetName
		wantErr bool
	}{
		{"easy", PresetEasy, false},
		{" Medium ", PresetMedium, false},
		{"normal", PresetMedium, false},
		{"HARD", PresetHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestProfileFallback(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Profile(PresetHard).ReactionDelay != 2 {
		t.Errorf("Hard reaction delay = %d, expected 2", cfg.Profile(PresetHard).ReactionDelay)
	}
	if cfg.Profile("nightmare").Label != "MEDIUM" {
		t.Error("Unknown preset should fall back to medium")
	}
}
