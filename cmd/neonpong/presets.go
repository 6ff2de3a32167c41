package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show AI difficulty presets",
	Long: `Lists the computer opponent's difficulty presets from the effective
configuration. Press 1, 2 or 3 before the serve to pick one in game.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printPresets(os.Stdout, cfg)
}

func printPresets(w io.Writer, cfg config.Config) {
	start := cfg.DefaultPreset()

	fmt.Fprintln(w, "Difficulty presets:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-3s  %-8s  %-8s  %-8s  %-8s\n", "Key", "Preset", "Speed", "Error", "Delay")
	fmt.Fprintf(w, "  %-3s  %-8s  %-8s  %-8s  %-8s\n", "---", "------", "-----", "-----", "-----")

	for i, name := range config.PresetOrder {
		p := cfg.Profile(name)
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(fmt.Sprintf("%-8s", p.Label))
		marker := ""
		if name == start {
			marker = "  (default)"
		}
		fmt.Fprintf(w, "  %-3d  %s  %-8.2f  %-8.0f  %-8s%s\n",
			i+1, label, p.Speed, p.Error, fmt.Sprintf("%d fr", p.ReactionDelay), marker)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'neonpong --difficulty <preset>' to start with a preset.")
}
