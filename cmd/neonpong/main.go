// neonpong is a neon-styled Pong for the terminal, with an AI opponent,
// procedural sound effects and adaptive music.
//
// Usage:
//
//	neonpong                 - Play (same as neonpong play)
//	neonpong play            - Play a match
//	neonpong presets         - Show the AI difficulty presets
//	neonpong config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config file
//	--difficulty <name>   - Starting AI preset: easy, medium, hard
//	--two-player          - Start in two-player mode
//	--mute                - Start with audio muted
//	--log-file <path>     - Log destination (default: ~/.neonpong/neonpong.log)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagTwoPlayer  bool
	flagMute       bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonpong",
	Short: "Neon Pong - Pong with synthwave lights and sound in your terminal",
	Long: `Neon Pong is a terminal Pong against a computer opponent or a friend.
Rallies speed the ball up, every point shrinks the loser's paddle and grows
the winner's, and the music picks up as the match gets tense.

Available commands:
  play     - Play a match (default)
  presets  - Show AI difficulty presets
  config   - Print the effective configuration

Examples:
  neonpong
  neonpong --difficulty hard
  neonpong --two-player --mute
  neonpong config > ~/.neonpong/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "AI preset: easy, medium, hard")
	rootCmd.PersistentFlags().BoolVar(&flagTwoPlayer, "two-player", false, "Start in two-player mode")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with audio muted")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.neonpong/neonpong.log", "Log file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
