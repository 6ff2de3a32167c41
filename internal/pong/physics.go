package pong

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Paddle is one player's bat. Y is the top edge in field pixels.
type Paddle struct {
	X, Y   float64
	DY     float64 // Movement applied last frame
	Width  float64
	Height float64
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Point is a position in field pixels.
type Point struct {
	X, Y float64
}

// Ball is the ball. X and Y are its center.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Trail  []Point // Oldest first; the last entry is the current position
}

func (g *Game) ballBox() core.Box {
	s := g.cfg.Ball.Size
	return core.BoxAround(g.ball.X, g.ball.Y, s, s)
}

// movePaddle applies dy and keeps the paddle inside the field.
func (g *Game) movePaddle(p *Paddle, dy float64) {
	p.DY = dy
	p.Y += dy
	p.Y = core.ClampF(p.Y, 0, g.cfg.Field.Height-p.Height)
}

// inputDY returns the paddle velocity for a pair of held keys. Up wins.
func (g *Game) inputDY(in core.InputFrame, up, down core.Action) float64 {
	switch {
	case in.Has(up):
		return -g.cfg.Paddle.Speed
	case in.Has(down):
		return g.cfg.Paddle.Speed
	default:
		return 0
	}
}

func (g *Game) updatePaddles(in core.InputFrame) {
	g.movePaddle(&g.left, g.inputDY(in, core.ActionLeftUp, core.ActionLeftDown))

	if g.aiEnabled {
		g.updateAI()
	} else {
		g.movePaddle(&g.right, g.inputDY(in, core.ActionRightUp, core.ActionRightDown))
	}
}

// updateBall moves the ball and resolves walls, paddles and goals.
func (g *Game) updateBall() {
	b := &g.ball
	b.X += b.DX
	b.Y += b.DY

	half := g.cfg.Ball.Size / 2
	if (b.Y-half <= 0 && b.DY < 0) || (b.Y+half >= g.cfg.Field.Height && b.DY > 0) {
		b.DY = -b.DY
		g.explode(b.X, b.Y, core.ColorGreen)
		g.emit(EventWallBounce)
	}

	g.checkPaddleCollision()
	g.pushTrail()

	switch {
	case b.X < 0:
		g.scoreRight++
		g.goal(0, &g.left, &g.right)
	case b.X > g.cfg.Field.Width:
		g.scoreLeft++
		g.goal(g.cfg.Field.Width, &g.right, &g.left)
	}
}

func (g *Game) checkPaddleCollision() {
	ball := g.ballBox()
	b := &g.ball

	if b.DX < 0 && ball.Touches(g.left.Box()) {
		b.DX = math.Abs(b.DX) * g.cfg.Ball.SpeedUp
		b.DY = g.deflection(g.left)
		g.explode(b.X, b.Y, core.ColorCyan)
		g.emit(EventPaddleHit)
	}

	if b.DX > 0 && ball.Touches(g.right.Box()) {
		b.DX = -math.Abs(b.DX) * g.cfg.Ball.SpeedUp
		b.DY = g.deflection(g.right)
		g.explode(b.X, b.Y, core.ColorMagenta)
		g.emit(EventPaddleHit)
	}
}

// deflection returns the new dy for a ball leaving the paddle: zero at the
// center, MaxDeflect at either tip, pointing away from the center.
func (g *Game) deflection(p Paddle) float64 {
	relative := (p.CenterY() - g.ball.Y) / (p.Height / 2)
	return -relative * g.cfg.Ball.MaxDeflect
}

func (g *Game) pushTrail() {
	b := &g.ball
	b.Trail = append(b.Trail, Point{X: b.X, Y: b.Y})
	if n := g.cfg.Ball.TrailLength; len(b.Trail) > n {
		b.Trail = b.Trail[len(b.Trail)-n:]
	}
}

// goal handles a point: burst at the goal line, resize paddles, re-serve and
// check for a winner.
func (g *Game) goal(lineX float64, loser, winner *Paddle) {
	g.explode(lineX, g.ball.Y, core.ColorRed)
	g.emit(EventScore)
	g.adjustPaddles(loser, winner)
	g.resetBall()
	g.checkWin()
}

// adjustPaddles shrinks the loser and grows the winner by SizeChange,
// within [MinHeight, MaxHeight].
// The loser keeps its top edge where it can; the winner keeps its center.
func (g *Game) adjustPaddles(loser, winner *Paddle) {
	pc := g.cfg.Paddle
	fieldH := g.cfg.Field.Height

	loser.Height = math.Max(pc.MinHeight, loser.Height-pc.SizeChange)
	loser.Y = core.ClampF(loser.Y, 0, fieldH-loser.Height)

	center := winner.CenterY()
	winner.Height = math.Min(pc.MaxHeight, winner.Height+pc.SizeChange)
	winner.Y = core.ClampF(center-winner.Height/2, 0, fieldH-winner.Height)
}

// resetBall serves from the center toward a random side.
func (g *Game) resetBall() {
	speed := g.cfg.Ball.InitialSpeed
	dir := 1.0
	if g.rng.Float64() <= 0.5 {
		dir = -1
	}

	g.ball = Ball{
		X:     g.cfg.Field.Width / 2,
		Y:     g.cfg.Field.Height / 2,
		DX:    dir * speed,
		DY:    (g.rng.Float64() - 0.5) * speed,
		Trail: g.ball.Trail[:0],
	}
}

func (g *Game) checkWin() {
	win := g.cfg.Gameplay.WinningScore
	if g.scoreLeft < win && g.scoreRight < win {
		return
	}
	g.state = StateOver
	g.emit(EventGameOver, EventMusicStop)
}
