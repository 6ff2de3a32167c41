package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/audio"
	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/music"
	"github.com/vovakirdan/neon-pong/internal/pong"
)

// helpRows is the height of the key help footer.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#8a5cf6")).
	Background(lipgloss.Color(core.Background))

// SoundPlayer plays sound effects. *audio.Engine satisfies it.
type SoundPlayer interface {
	Play(s audio.Sound)
	ToggleMute() bool
}

// MusicPlayer is the adaptive music control surface. *music.Engine satisfies it.
type MusicPlayer interface {
	Start(intensity float64)
	Stop()
	Update(intensity float64)
	Playing() bool
}

// eventSounds maps game events to their sound effect.
var eventSounds = map[pong.Event]audio.Sound{
	pong.EventPaddleHit:  audio.SoundPaddleHit,
	pong.EventWallBounce: audio.SoundWallBounce,
	pong.EventScore:      audio.SoundScore,
	pong.EventGameStart:  audio.SoundGameStart,
	pong.EventGameOver:   audio.SoundGameOver,
}

// Options configures a game session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Sound   SoundPlayer // nil runs without effects
	Music   MusicPlayer // nil runs without music
	Logger  *log.Logger
}

// Model is the Bubble Tea model running a Neon Pong session.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	renderer *Renderer
	keys     *core.KeyState
	mapper   *KeyMapper
	help     help.Model
	sound    SoundPlayer
	music    MusicPlayer
	logger   *log.Logger
	config   core.RuntimeConfig
	musicDur time.Duration

	// commands holds one-shot actions until the next tick consumes them
	commands core.InputFrame
	state    pong.State
	quitting bool
}

// NewModel creates a model for a fresh match.
func NewModel(opts Options) Model {
	cfg := opts.Runtime.Normalize(time.Now())
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game := pong.New(opts.Config, cfg.Seed)
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		renderer: NewRenderer(),
		keys:     core.NewKeyState(opts.Config.Input.InitialHold(), opts.Config.Input.RepeatHold()),
		mapper:   NewKeyMapper(DefaultKeyMap()),
		help:     help.New(),
		sound:    opts.Sound,
		music:    opts.Music,
		logger:   logger,
		config:   cfg,
		musicDur: opts.Config.Music.UpdateInterval(),
		commands: core.NewInputFrame(),
		state:    game.State(),
	}
}

// Game exposes the running match.
func (m Model) Game() *pong.Game {
	return m.game
}

// Init starts the simulation and music control loops.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tea.Batch(tickCmd(m.config.TickRate), musicTickCmd(m.musicDur))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case MusicTickMsg:
		return m.handleMusicTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		if m.music != nil {
			m.music.Stop()
		}
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionMute:
		if m.sound != nil {
			muted := m.sound.ToggleMute()
			m.logger.Debug("mute toggled", "muted", muted)
		}
	case action.IsMovement():
		m.keys.Press(action, time.Now())
	default:
		m.commands.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The field scales to any size, so the match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.commands.Clone()
	m.commands.Clear()
	m.keys.Apply(&in, now)

	// Toggling AI or restarting drops any keys still held from the last match
	if in.Has(core.ActionToggleAI) {
		m.keys.Reset()
	}

	result := m.game.Step(in)
	m.dispatch(result.Events)

	if result.State != m.state {
		left, right := m.game.Scores()
		m.logger.Debug("state changed", "from", m.state, "to", result.State, "left", left, "right", right)
		m.state = result.State
	}

	return m, tickCmd(m.config.TickRate)
}

// dispatch routes game events to the audio layer, in order.
func (m Model) dispatch(events []pong.Event) {
	for _, e := range events {
		switch e {
		case pong.EventMusicStart:
			if m.music != nil {
				m.music.Start(m.intensity())
			}
		case pong.EventMusicStop:
			if m.music != nil {
				m.music.Stop()
			}
		case pong.EventGameOver:
			left, right := m.game.Scores()
			m.logger.Info("match over", "left", left, "right", right)
			m.play(e)
		default:
			m.play(e)
		}
	}
}

func (m Model) play(e pong.Event) {
	if s, ok := eventSounds[e]; ok && m.sound != nil {
		m.sound.Play(s)
	}
}

func (m Model) handleMusicTick() (tea.Model, tea.Cmd) {
	if m.music != nil && m.music.Playing() {
		m.music.Update(m.intensity())
	}
	return m, musicTickCmd(m.musicDur)
}

func (m Model) intensity() float64 {
	cfg := m.game.Config()
	left, right := m.game.Scores()
	return music.Intensity(left, right, cfg.Gameplay.WinningScore, m.game.BallSpeed(), cfg.Ball.InitialSpeed)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.mapper.Keys()))
}

// Run starts the Bubble Tea program for one session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
