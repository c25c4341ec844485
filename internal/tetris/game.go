package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game drives a Session at a fixed tick rate from abstract input frames.
type Game struct {
	cfg     config.TetrisConfig
	session *Session
	tickSec float64
	tick    uint64

	screenW int
	screenH int
}

// New creates a game using cfg and the given persisted high score.
func New(cfg config.TetrisConfig, highScore int) *Game {
	g := &Game{cfg: cfg}
	g.session = NewSession(cfg, 0, highScore)
	g.tickSec = core.DefaultConfig().TickSeconds()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset creates a fresh session in the menu. The high score carries over.
func (g *Game) Reset(rc core.RuntimeConfig) {
	high := 0
	if g.session != nil {
		high = g.session.HighScore()
	}
	g.session = NewSession(g.cfg, rc.Seed, high)
	g.tickSec = rc.TickSeconds()
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step applies the frame's commands in order and advances one nominal tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepDt(in, g.tickSec)
}

// StepDt is Step for frontends that measure their own frame time. dt is in
// seconds.
func (g *Game) StepDt(in core.InputFrame, dt float64) core.StepResult {
	g.tick++
	for _, a := range in.Actions() {
		g.session.Apply(a)
	}
	g.session.Update(dt)

	ev := g.session.DrainEvents()
	return core.StepResult{
		State:        g.State(),
		GameEnded:    ev.GameEnded,
		NewHighScore: ev.NewHighScore,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	phase := s.Phase()
	return core.GameState{
		Score:     s.Score(),
		Lines:     s.Lines(),
		Level:     s.Level(),
		HighScore: s.HighScore(),
		GameOver:  phase == PhaseGameOver,
		Paused:    phase == PhasePaused,
		InMenu:    phase == PhaseMenu,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Tick returns the number of steps since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}
