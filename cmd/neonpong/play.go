package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pong/internal/audio"
	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/music"
	"github.com/vovakirdan/neon-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in the terminal.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle (two-player mode)
  Space      - Start, pause, resume, play again
  P          - Toggle computer opponent / two-player
  1/2/3      - Easy / medium / hard (vs computer, before the serve)
  M          - Mute
  Q/Ctrl+C   - Quit

Examples:
  neonpong play
  neonpong play --difficulty easy
  neonpong play --config ./my-pong.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
	}
	defer closeLog()
	logger.Info("starting neonpong", "config", source, "difficulty", cfg.Difficulty.Default, "ai", cfg.Gameplay.AIEnabled)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sfx := audio.NewEngine(cfg.Audio, logger)
	// A missing device is logged by the engine; the game runs silent
	_ = sfx.Init()
	defer sfx.Close()
	sfx.SetMuted(flagMute)

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Sound:  sfx,
		Logger: logger,
	}
	// The track's clock runs on pulled samples, so it needs a live device
	if cfg.Music.Enabled && sfx.Live() {
		track := music.NewEngine(cfg.Music, sfx.SampleRate())
		sfx.Attach(track)
		opts.Music = track
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("bye")
	return nil
}

// loadConfig resolves the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		name, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.Config{}, "", err
		}
		cfg.Difficulty.Default = string(name)
	}
	if flags.Changed("two-player") {
		cfg.Gameplay.AIEnabled = !flagTwoPlayer
	}
	if flagFPS <= 0 {
		return config.Config{}, "", fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return cfg, source, nil
}
