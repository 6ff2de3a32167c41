package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/neon-pong/internal/core"
)

type styleKey struct {
	color core.Color
	fade  uint8
}

// Renderer converts Screen buffers to styled strings. Styles are built on
// first use and cached per color and fade step.
type Renderer struct {
	bg     colorful.Color
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer that paints on the field background.
func NewRenderer() *Renderer {
	bg, err := colorful.Hex(core.Background)
	if err != nil {
		bg = colorful.Color{}
	}
	return &Renderer{
		bg:     bg,
		styles: make(map[styleKey]lipgloss.Style),
	}
}

// FadeHex returns c dimmed by fade steps toward the background.
func (r *Renderer) FadeHex(c core.Color, fade uint8) string {
	if fade == 0 {
		return c.Hex()
	}
	fg, err := colorful.Hex(c.Hex())
	if err != nil {
		return c.Hex()
	}
	t := float64(min(fade, core.FadeLevels-1)) / float64(core.FadeLevels)
	return fg.BlendRgb(r.bg, t).Clamped().Hex()
}

func (r *Renderer) style(c core.Color, fade uint8) lipgloss.Style {
	k := styleKey{c, fade}
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(r.FadeHex(c, fade))).
		Background(lipgloss.Color(core.Background))
	r.styles[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color and fade to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Fade != start.Fade {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start.Color, start.Fade).Render(run.String()))
		}
	}
	return sb.String()
}
