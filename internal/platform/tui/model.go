package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// softDropHold is how long a soft drop stays active after the last Down key
// event. It outlasts the usual key repeat delay so a held key does not stutter.
const softDropHold = 500 * time.Millisecond

// maxFrameDt caps the time one tick may advance after a stall.
const maxFrameDt = 0.25

// Options configures a terminal session.
type Options struct {
	Config        config.TetrisConfig
	Runtime       core.RuntimeConfig
	Store         *storage.Store // May be nil
	HighScorePath string         // Empty disables the high score file
	Logger        *log.Logger    // May be nil
}

// Model is the Bubble Tea model for a Tetris session.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	recorder   *storage.Recorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard *ScoreboardModel

	softDropLeft float64 // Seconds of soft drop left, 0 when released
	lastTick     time.Time
	runStarted   time.Time
	quitting     bool
}

// NewModel creates a model with a fresh game sitting in the start menu.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	recorder := storage.NewRecorder(opts.Store, opts.HighScorePath, logger)
	game := tetris.New(opts.Config, recorder.LoadHighScore())
	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		recorder:   recorder,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed, "high_score", m.gameState.HighScore)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("session ended", "score", m.gameState.Score, "high_score", m.gameState.HighScore)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		if m.gameState.InMenu || m.gameState.GameOver {
			sb := NewScoreboardModel(m.recorder.Store(), m.config.ScreenW, m.config.ScreenH)
			sb.embedded = true
			m.scoreboard = &sb
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone, core.ActionQuit:
	case core.ActionSoftDropStart:
		m.inputFrame.Set(action)
		m.softDropLeft = softDropHold.Seconds()
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		m.scoreboard = nil
		return m, nil
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize keeps the session running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.game.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// frameSeconds returns the time between two ticks, capped at maxFrameDt.
// Without a previous tick, or for a tick that carries no time, it falls back
// to the nominal tick length.
func frameSeconds(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() || now.IsZero() || !now.After(prev) {
		return nominal
	}
	return min(now.Sub(prev).Seconds(), maxFrameDt)
}

// handleTick runs one simulation step covering the time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameSeconds(m.lastTick, now, m.config.TickSeconds())
	if !now.IsZero() {
		m.lastTick = now
	}

	if m.softDropLeft > 0 {
		m.softDropLeft -= dt
		if m.softDropLeft <= 0 {
			m.softDropLeft = 0
			m.inputFrame.Set(core.ActionSoftDropStop)
		}
	}

	prev := m.gameState
	result := m.game.StepDt(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if (prev.InMenu || prev.GameOver) && !m.gameState.InMenu && !m.gameState.GameOver {
		m.runStarted = time.Now()
		m.logger.Info("run started", "high_score", m.gameState.HighScore)
	}
	if result.GameEnded {
		m.recorder.RunFinished(storage.RunResult{
			Score:    m.gameState.Score,
			Lines:    m.gameState.Lines,
			Level:    m.gameState.Level,
			Duration: time.Since(m.runStarted),
		})
	}
	if result.NewHighScore {
		m.recorder.NewHighScore(m.gameState.HighScore)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the latest game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
