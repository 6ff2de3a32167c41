package pong

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// aiDeadZone is how close the target must be to the paddle center before
// the AI stops moving. Prevents jitter.
const aiDeadZone = 5

// updateAI steers the right paddle.
// The AI acts once every ReactionDelay frames: it picks a velocity and moves
// one step. In between the paddle stands still.
func (g *Game) updateAI() {
	g.aiTimer++
	if g.aiTimer < g.profile.ReactionDelay {
		return
	}
	g.aiTimer = 0
	g.right.DY = g.aiVelocity(g.aiTarget())
	g.movePaddle(&g.right, g.right.DY)
}

// aiTarget predicts where the ball will cross the paddle's x position.
// A lower ai_speed underestimates the vertical travel, and ai_error adds a
// uniform aiming mistake.
func (g *Game) aiTarget() float64 {
	b := g.ball
	target := b.Y
	if b.DX > 0 {
		t := (g.right.X - b.X) / b.DX
		target = b.Y + b.DY*t*g.profile.Speed
	}
	return target + (g.rng.Float64()-0.5)*g.profile.Error
}

// aiVelocity returns the paddle velocity toward target, eased by distance and
// capped at the preset's fraction of paddle speed.
func (g *Game) aiVelocity(target float64) float64 {
	diff := target - g.right.CenterY()
	if math.Abs(diff) <= aiDeadZone {
		return 0
	}
	speed := math.Min(g.cfg.Paddle.Speed*g.profile.Speed, math.Abs(diff)*0.1)
	return core.Sign(diff) * speed
}
