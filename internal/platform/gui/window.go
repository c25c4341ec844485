// Package gui runs the game in a desktop window with Ebitengine.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Horizontal auto-repeat, in ticks.
const (
	repeatDelay = 10
	repeatRate  = 3
)

// Options configures the window frontend.
type Options struct {
	Config        config.TetrisConfig
	Runtime       core.RuntimeConfig
	Store         *storage.Store
	HighScorePath string
	Logger        *log.Logger
}

// Window implements ebiten.Game on top of a tetris.Game.
type Window struct {
	game       *tetris.Game
	recorder   *storage.Recorder
	logger     *log.Logger
	frame      core.InputFrame
	state      core.GameState
	softDrop   bool
	runStarted time.Time
}

// New creates the window model with a fresh game in the start menu.
func New(opts Options) *Window {
	rc := opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}

	recorder := storage.NewRecorder(opts.Store, opts.HighScorePath, opts.Logger)
	game := tetris.New(opts.Config, recorder.LoadHighScore())
	game.Reset(rc)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Window{
		game:     game,
		recorder: recorder,
		logger:   logger,
		frame:    core.NewInputFrame(),
		state:    game.State(),
	}
}

// keyActions are the keys that fire once per press.
var keyActions = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyUp, ebiten.KeyX}, core.ActionRotateCW},
	{[]ebiten.Key{ebiten.KeyZ}, core.ActionRotateCCW},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionHardDrop},
	{[]ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft}, core.ActionHold},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, core.ActionStart},
}

// repeating reports whether a held key should fire this tick.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatRate == 0)
}

func (w *Window) collectInput() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}

	if repeating(ebiten.KeyLeft) {
		w.frame.Set(core.ActionLeft)
	}
	if repeating(ebiten.KeyRight) {
		w.frame.Set(core.ActionRight)
	}

	down := ebiten.IsKeyPressed(ebiten.KeyDown)
	switch {
	case down && !w.softDrop:
		w.frame.Set(core.ActionSoftDropStart)
	case !down && w.softDrop:
		w.frame.Set(core.ActionSoftDropStop)
	}
	w.softDrop = down

	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if inpututil.IsKeyJustPressed(k) {
				w.frame.Set(ka.action)
				break
			}
		}
	}
	return false
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	if w.collectInput() {
		w.logger.Info("window closed", "score", w.state.Score)
		return ebiten.Termination
	}

	prev := w.state
	result := w.game.Step(w.frame)
	w.state = result.State
	w.frame.Clear()

	if (prev.InMenu || prev.GameOver) && !w.state.InMenu && !w.state.GameOver {
		w.runStarted = time.Now()
		w.logger.Info("run started", "high_score", w.state.HighScore)
	}
	if result.GameEnded {
		w.recorder.RunFinished(storage.RunResult{
			Score:    w.state.Score,
			Lines:    w.state.Lines,
			Level:    w.state.Level,
			Duration: time.Since(w.runStarted),
		})
	}
	if result.NewHighScore {
		w.recorder.NewHighScore(w.state.HighScore)
	}
	return nil
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	win := New(opts)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Tetris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}
	return ebiten.RunGame(win)
}
