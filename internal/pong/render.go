package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '█'
	BallChar     = '●'
	TrailChar    = '•'
	NetChar      = '┃'
	GridChar     = '·'
	GlowChar     = '░'
	SparkChar    = '*'
	SmallSpark   = '·'
	hudRows      = 1
	netDash      = 20 // Pixels drawn per net segment
	netGap       = 15
	labelOffsetY = 30 // Difficulty label position in field pixels
	gridFade     = core.FadeLevels - 2
	trailAlpha   = 0.5
)

// viewport maps field pixels onto screen cells.
type viewport struct {
	top    int // First screen row of the field
	cols   int
	rows   int
	sx, sy float64 // Cells per pixel
}

func (g *Game) viewport(dst *core.Screen) viewport {
	rows := dst.Height() - hudRows
	return viewport{
		top:  hudRows,
		cols: dst.Width(),
		rows: rows,
		sx:   float64(dst.Width()) / g.cfg.Field.Width,
		sy:   float64(rows) / g.cfg.Field.Height,
	}
}

func (v viewport) col(px float64) int {
	return core.Clamp(int(px*v.sx), 0, v.cols-1)
}

func (v viewport) row(py float64) int {
	return v.top + core.Clamp(int(py*v.sy), 0, v.rows-1)
}

// cells returns the screen rectangle covering b; at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := core.Clamp(int(math.Ceil(b.Right()*v.sx))-1, 0, v.cols-1)
	y1 := v.top + core.Clamp(int(math.Ceil(b.Bottom()*v.sy))-1, 0, v.rows-1)
	return core.NewRect(x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 6 {
		dst.DrawText(0, 0, "Terminal too small", core.ColorRed)
		return
	}

	v := g.viewport(dst)
	g.drawGrid(dst, v)
	g.drawNet(dst, v)
	g.drawDifficulty(dst, v)
	g.drawPaddle(dst, v, g.left, core.ColorCyan)
	g.drawPaddle(dst, v, g.right, core.ColorMagenta)
	g.drawBall(dst, v)
	g.drawParticles(dst, v)
	g.drawHUD(dst)

	if title, subtitle := g.Message(); title != "" {
		g.drawCenteredMessage(dst, title, subtitle)
	}
}

func (g *Game) drawGrid(dst *core.Screen, v viewport) {
	step := g.cfg.Field.GridSize
	if step <= 0 {
		return
	}
	dot := core.Cell{Rune: GridChar, Color: core.ColorGrid, Fade: gridFade}
	for y := 0.0; y <= g.cfg.Field.Height; y += step {
		for x := 0.0; x <= g.cfg.Field.Width; x += step {
			dst.SetCell(v.col(x), v.row(y), dot)
		}
	}
}

// drawNet draws the dashed center line.
func (g *Game) drawNet(dst *core.Screen, v viewport) {
	x := v.col(g.cfg.Field.Width / 2)
	for r := range v.rows {
		py := (float64(r) + 0.5) / v.sy
		if math.Mod(py, netDash+netGap) < netDash {
			dst.SetColor(x, v.top+r, NetChar, core.ColorMagenta)
		}
	}
}

func (g *Game) drawDifficulty(dst *core.Screen, v viewport) {
	if !g.aiEnabled {
		return
	}
	dst.DrawTextCentered(v.row(labelOffsetY), g.profile.Label, core.ColorFromHex(g.profile.Color))
}

// drawPaddle draws a paddle. Shrunk paddles get red caps, grown paddles a
// green glow on both sides.
func (g *Game) drawPaddle(dst *core.Screen, v viewport, p Paddle, c core.Color) {
	r := v.cells(p.Box())
	initial := g.cfg.Paddle.InitialHeight

	if p.Height > initial {
		glow := core.Cell{Rune: GlowChar, Color: core.ColorGreen, Fade: 2}
		dst.DrawRect(core.NewRect(r.X-1, r.Y, r.W+2, r.H), glow)
	}

	dst.DrawRect(r, core.Cell{Rune: PaddleChar, Color: c})

	if p.Height < initial {
		dst.DrawRect(core.NewRect(r.X, r.Y, r.W, 1), core.Cell{Rune: PaddleChar, Color: core.ColorRed})
		dst.DrawRect(core.NewRect(r.X, r.Bottom()-1, r.W, 1), core.Cell{Rune: PaddleChar, Color: core.ColorRed})
	}
}

// drawBall draws the trail, oldest and faintest first, then the ball.
func (g *Game) drawBall(dst *core.Screen, v viewport) {
	n := float64(g.cfg.Ball.TrailLength)
	for i, pt := range g.ball.Trail {
		alpha := float64(i) / n * trailAlpha
		dst.SetCell(v.col(pt.X), v.row(pt.Y), core.Cell{Rune: TrailChar, Color: core.ColorYellow, Fade: core.FadeFor(alpha)})
	}
	dst.SetColor(v.col(g.ball.X), v.row(g.ball.Y), BallChar, core.ColorYellow)
}

func (g *Game) drawParticles(dst *core.Screen, v viewport) {
	for _, p := range g.particles {
		if p.X < 0 || p.X > g.cfg.Field.Width || p.Y < 0 || p.Y > g.cfg.Field.Height {
			continue
		}
		ch := SmallSpark
		if p.Size >= particleMinSz+particleSzVar/2 {
			ch = SparkChar
		}
		dst.SetCell(v.col(p.X), v.row(p.Y), core.Cell{Rune: ch, Color: p.Color, Fade: core.FadeFor(p.Life)})
	}
}

// drawHUD draws labels and scores on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	leftLabel, rightLabel := g.Labels()
	left := fmt.Sprintf("%s  %d", leftLabel, g.scoreLeft)
	right := fmt.Sprintf("%d  %s", g.scoreRight, rightLabel)

	dst.DrawText(1, 0, left, core.ColorCyan)
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right, core.ColorMagenta)

	if !g.aiEnabled {
		dst.DrawTextCentered(0, "2 PLAYERS", core.ColorWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))
	boxW := min(max(titleW, subtitleW)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorMagenta)

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle, core.ColorCyan)
}
