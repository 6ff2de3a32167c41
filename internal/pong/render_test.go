package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-pong/internal/core"
)

func TestRenderWaiting(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"NEON PONG", "MEDIUM Mode - Press SPACE to Start", "YOU  0", "0  CPU"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if strings.Contains(scr.String(), "NEON PONG") {
		t.Error("Overlay drawn while playing")
	}

	// 80x23 field cells: 0.1 cols and 0.0575 rows per pixel, below one HUD row
	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"ball", 40, 12, BallChar, core.ColorYellow},
		{"left paddle", 3, 12, PaddleChar, core.ColorCyan},
		{"right paddle", 75, 12, PaddleChar, core.ColorMagenta},
		{"difficulty label", 37, 2, 'M', core.ColorYellow},
		{"player label", 1, 0, 'Y', core.ColorCyan},
	}

	for _, tc := range tests {
		cell := scr.GetCell(tc.x, tc.y)
		if cell.Rune != tc.rune || cell.Color != tc.color {
			t.Errorf("%s at (%d,%d) = %q/%v, expected %q/%v", tc.name, tc.x, tc.y, cell.Rune, cell.Color, tc.rune, tc.color)
		}
	}
}

func TestRenderNet(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	g.ball.X = 100
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	dashes, gaps := 0, 0
	for y := 1; y < scr.Height(); y++ {
		if scr.Get(40, y) == NetChar {
			dashes++
		} else {
			gaps++
		}
	}
	if dashes == 0 || gaps == 0 {
		t.Errorf("Net is not dashed: %d dashes, %d gaps", dashes, gaps)
	}
}

func TestRenderPaddleSizeHints(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	g.left.Height = 120
	g.right.Height = 50
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if cell := scr.GetCell(2, 12); cell.Rune != GlowChar || cell.Color != core.ColorGreen {
		t.Errorf("Grown paddle has no glow: %q/%v", cell.Rune, cell.Color)
	}

	r := g.viewport(scr).cells(g.right.Box())
	if cell := scr.GetCell(r.X, r.Y); cell.Color != core.ColorRed {
		t.Errorf("Shrunk paddle cap color = %v, expected red", cell.Color)
	}
}

func TestRenderTwoPlayerHidesDifficulty(t *testing.T) {
	g := newTestGame(t)
	g.aiEnabled = false
	g.state = StatePlaying
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	if strings.Contains(out, "MEDIUM") {
		t.Error("Difficulty label drawn in two-player mode")
	}
	if !strings.Contains(out, "P1  0") || !strings.Contains(out, "0  P2") {
		t.Error("Expected P1/P2 labels")
	}
}

func TestRenderFadesTrailAndParticles(t *testing.T) {
	g := newTestGame(t)
	g.state = StatePlaying
	g.ball.Trail = []Point{{X: 100, Y: 100}}
	g.particles = []Particle{{X: 600, Y: 300, Life: 0.25, Size: 5, Color: core.ColorRed}}
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	trail := scr.GetCell(10, 1+5) // 100 * 23/400 = 5.75
	if trail.Rune != TrailChar || trail.Fade != core.FadeLevels-1 {
		t.Errorf("Oldest trail point = %q fade %d, expected faintest", trail.Rune, trail.Fade)
	}

	spark := scr.GetCell(60, 1+17) // 300 * 23/400 = 17.25
	if spark.Rune != SparkChar || spark.Fade != core.FadeFor(0.25) {
		t.Errorf("Particle = %q fade %d, expected %q fade %d", spark.Rune, spark.Fade, SparkChar, core.FadeFor(0.25))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(12, 4)
	g.Render(scr)

	if !strings.HasPrefix(scr.Row(0), "Terminal") {
		t.Errorf("Expected size warning, got %q", scr.Row(0))
	}
}
