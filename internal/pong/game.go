// Package pong implements Neon Pong: two paddles, a ball, an AI opponent with
// selectable difficulty and paddles that grow or shrink with every point.
// The left paddle belongs to the player; the right one to the CPU or to a
// second player.
//
// The simulation runs in a logical pixel field and knows nothing about the
// terminal or audio. Step reports sound and music cues as Events.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

// Game implements the Neon Pong match logic.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	state State

	left  Paddle
	right Paddle
	ball  Ball

	scoreLeft  int
	scoreRight int

	aiEnabled  bool
	difficulty config.PresetName
	profile    config.AIProfile
	aiTimer    int

	particles []Particle

	events []Event
	ticks  uint64
}

// New creates a match in the waiting state.
// AI mode and difficulty start from the configuration.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		aiEnabled:  cfg.Gameplay.AIEnabled,
		difficulty: cfg.DefaultPreset(),
	}
	g.profile = cfg.Profile(g.difficulty)
	g.resetMatch()

	// The very first serve goes down and to the right.
	g.ball.DX = cfg.Ball.InitialSpeed
	g.ball.DY = cfg.Ball.InitialSpeed
	return g
}

// resetMatch clears scores, paddle sizes, particles and re-serves.
func (g *Game) resetMatch() {
	g.scoreLeft = 0
	g.scoreRight = 0
	g.aiTimer = 0
	g.particles = g.particles[:0]

	g.left = g.newPaddle(g.cfg.Paddle.Offset)
	g.right = g.newPaddle(g.cfg.Field.Width - g.cfg.Paddle.Offset - g.cfg.Paddle.Width)
	g.resetBall()
}

func (g *Game) newPaddle(x float64) Paddle {
	h := g.cfg.Paddle.InitialHeight
	return Paddle{
		X:      x,
		Y:      g.cfg.Field.Height/2 - h/2,
		Width:  g.cfg.Paddle.Width,
		Height: h,
	}
}

// Step advances the game by one frame.
// Commands (serve, difficulty, AI toggle) are applied first, then physics
// when playing. Particles animate in every state.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = nil
	g.ticks++

	g.handleCommands(in)

	if g.state == StatePlaying {
		g.updatePaddles(in)
		g.updateBall()
	}

	g.updateParticles()

	return StepResult{State: g.state, Events: g.events}
}

func (g *Game) handleCommands(in core.InputFrame) {
	if in.Has(core.ActionServe) {
		g.serve()
	}

	if g.aiEnabled && g.state == StateWaiting {
		switch {
		case in.Has(core.ActionEasy):
			g.setDifficulty(config.PresetEasy)
		case in.Has(core.ActionMedium):
			g.setDifficulty(config.PresetMedium)
		case in.Has(core.ActionHard):
			g.setDifficulty(config.PresetHard)
		}
	}

	if in.Has(core.ActionToggleAI) {
		g.aiEnabled = !g.aiEnabled
		g.resetMatch()
		g.state = StateWaiting
		g.emit(EventMusicStop)
	}
}

// serve drives the state machine on Space.
func (g *Game) serve() {
	switch g.state {
	case StateWaiting:
		g.state = StatePlaying
		g.emit(EventGameStart, EventMusicStart)
	case StatePlaying:
		g.state = StatePaused
		g.emit(EventMusicStop)
	case StatePaused:
		g.state = StatePlaying
		g.emit(EventMusicStart)
	case StateOver:
		g.resetMatch()
		g.state = StatePlaying
		g.emit(EventGameStart, EventMusicStart)
	}
}

func (g *Game) setDifficulty(name config.PresetName) {
	g.difficulty = name
	g.profile = g.cfg.Profile(name)
}

func (g *Game) emit(events ...Event) {
	g.events = append(g.events, events...)
}

// State returns the current match state.
func (g *Game) State() State {
	return g.state
}

// Scores returns the left and right scores.
func (g *Game) Scores() (left, right int) {
	return g.scoreLeft, g.scoreRight
}

// AIEnabled reports whether the CPU controls the right paddle.
func (g *Game) AIEnabled() bool {
	return g.aiEnabled
}

// Difficulty returns the selected AI preset and its profile.
func (g *Game) Difficulty() (config.PresetName, config.AIProfile) {
	return g.difficulty, g.profile
}

// Paddles returns copies of the left and right paddles.
func (g *Game) Paddles() (left, right Paddle) {
	return g.left, g.right
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// BallSpeed returns the magnitude of the ball's velocity.
func (g *Game) BallSpeed() float64 {
	return math.Hypot(g.ball.DX, g.ball.DY)
}

// Particles returns the live particles. The slice is owned by the game.
func (g *Game) Particles() []Particle {
	return g.particles
}

// Ticks returns the number of frames stepped so far.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Labels returns the player labels for the left and right side.
func (g *Game) Labels() (left, right string) {
	if g.aiEnabled {
		return "YOU", "CPU"
	}
	return "P1", "P2"
}

// Message returns the overlay title and subtitle for the current state.
// Both are empty while playing.
func (g *Game) Message() (title, subtitle string) {
	switch g.state {
	case StateWaiting:
		if g.aiEnabled {
			return "NEON PONG", fmt.Sprintf("%s Mode - Press SPACE to Start", g.profile.Label)
		}
		return "NEON PONG", "Two Player Mode - Press SPACE to Start"
	case StatePaused:
		return "PAUSED", "Press SPACE to Continue"
	case StateOver:
		return g.winnerMessage(), fmt.Sprintf("%d - %d  |  Press SPACE to play again", g.scoreLeft, g.scoreRight)
	}
	return "", ""
}

func (g *Game) winnerMessage() string {
	leftWon := g.scoreLeft >= g.cfg.Gameplay.WinningScore
	switch {
	case g.aiEnabled && leftWon:
		return "YOU WIN!"
	case g.aiEnabled:
		return "COMPUTER WINS!"
	case leftWon:
		return "PLAYER 1 WINS!"
	default:
		return "PLAYER 2 WINS!"
	}
}
