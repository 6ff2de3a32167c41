package tui

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/neon-pong/internal/core"
)

func mustHex(t *testing.T, s string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(s)
	if err != nil {
		t.Fatalf("colorful.Hex(%q): %v", s, err)
	}
	return c
}

func TestFadeHexFullBrightness(t *testing.T) {
	r := NewRenderer()
	if got := r.FadeHex(core.ColorCyan, 0); got != "#00ffff" {
		t.Errorf("FadeHex(cyan, 0) = %s, expected #00ffff", got)
	}
}

func TestFadeHexApproachesBackground(t *testing.T) {
	r := NewRenderer()
	bg := mustHex(t, core.Background)

	prev := mustHex(t, core.ColorYellow.Hex()).DistanceRgb(bg)
	for fade := uint8(1); fade < core.FadeLevels; fade++ {
		d := mustHex(t, r.FadeHex(core.ColorYellow, fade)).DistanceRgb(bg)
		if d >= prev {
			t.Errorf("Fade %d distance to background %v, expected below %v", fade, d, prev)
		}
		prev = d
	}
	if prev == 0 {
		t.Error("Deepest fade should still be visible")
	}
}

func TestFadeHexClampsLevel(t *testing.T) {
	r := NewRenderer()
	deepest := r.FadeHex(core.ColorRed, core.FadeLevels-1)
	if got := r.FadeHex(core.ColorRed, 200); got != deepest {
		t.Errorf("FadeHex beyond range = %s, expected %s", got, deepest)
	}
}

func TestRenderScreen(t *testing.T) {
	r := NewRenderer()
	s := core.NewScreen(20, 3)
	s.DrawText(2, 1, "PONG", core.ColorCyan)
	s.SetCell(10, 2, core.Cell{Rune: '*', Color: core.ColorCyan, Fade: 3})

	out := r.RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("Rendered %d lines, expected 3", len(lines))
	}
	if !strings.Contains(out, "PONG") {
		t.Error("Rendered output missing text")
	}

	// Default, full cyan and faded cyan
	if len(r.styles) != 3 {
		t.Errorf("Cached %d styles, expected 3", len(r.styles))
	}

	r.RenderScreen(s)
	if len(r.styles) != 3 {
		t.Errorf("Second render grew the cache to %d", len(r.styles))
	}
}
