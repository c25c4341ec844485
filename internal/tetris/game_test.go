package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newGame(seed int64, high int) *Game {
	g := New(config.DefaultTetrisConfig(), high)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345, 0)
	g2 := newGame(12345, 0)

	script := map[int]core.Action{
		0:   core.ActionStart,
		10:  core.ActionLeft,
		20:  core.ActionRotateCW,
		30:  core.ActionHardDrop,
		50:  core.ActionSoftDropStart,
		80:  core.ActionSoftDropStop,
		100: core.ActionHold,
		130: core.ActionRotateCCW,
		140: core.ActionRight,
		150: core.ActionHardDrop,
	}

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if a, ok := script[i]; ok {
			input.Set(a)
		}
		g1.Step(input)
		g2.Step(input)
	}

	assert.Equal(t, g1.Tick(), g2.Tick())
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, 600, int(g1.Tick()))
}

func TestResetKeepsHighScore(t *testing.T) {
	g := newGame(1, 250)
	st := g.State()
	assert.True(t, st.InMenu)
	assert.Equal(t, 250, st.HighScore)

	g.Session().SetHighScore(900)
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 900, g.State().HighScore)
	assert.Zero(t, g.Tick())
}

func TestStepUsesTickRate(t *testing.T) {
	g := New(config.DefaultTetrisConfig(), 0)
	g.Reset(core.RuntimeConfig{TickRate: 1, Seed: 5})

	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)

	p, ok := g.Session().Current()
	require.True(t, ok)
	assert.Equal(t, -1, p.Y, "one second of gravity at level 0")
}

func TestStepDtAdvancesByElapsed(t *testing.T) {
	g := newGame(5, 0)
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.StepDt(in, 0)

	p, ok := g.Session().Current()
	require.True(t, ok)
	startY := p.Y

	g.StepDt(core.NewInputFrame(), 0.5)
	p, _ = g.Session().Current()
	assert.Equal(t, startY, p.Y, "0.5s is short of the 0.8s interval")

	g.StepDt(core.NewInputFrame(), 0.5)
	p, _ = g.Session().Current()
	assert.Equal(t, startY+1, p.Y)
	assert.Equal(t, uint64(3), g.Tick())
}

func TestStepReportsGameOverOnce(t *testing.T) {
	g := newGame(3, 0)
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)

	s := g.Session()
	s.score = 10
	for y := 0; y < Rows; y++ {
		fillRow(&s.board, y, 9)
	}

	in.Clear()
	in.Set(core.ActionHardDrop)
	res := g.Step(in)
	assert.True(t, res.GameEnded)
	assert.True(t, res.NewHighScore)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 10, res.State.HighScore)

	res = g.Step(core.NewInputFrame())
	assert.False(t, res.GameEnded)
	assert.False(t, res.NewHighScore)
	assert.True(t, res.State.GameOver)
}

func TestRender(t *testing.T) {
	g := newGame(9, 1234)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "TETRIS")
	assert.Contains(t, out, "Enter  start")
	assert.Contains(t, out, "Best 1234")

	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)
	for range_i := 0; range_i < 120; range_i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "Next")
	assert.NotContains(t, out, "Enter  start")
	assert.True(t, strings.ContainsRune(out, '█'))

	in.Clear()
	in.Set(core.ActionPause)
	g.Step(in)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Paused")
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(1, 0)
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRenderColors(t *testing.T) {
	g := newGame(2, 0)
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)

	s := g.Session()
	place(s, Piece{Kind: KindI, X: 3, Y: 10})

	screen := core.NewScreen(MinWidth, MinHeight)
	g.Render(screen)

	// Flat I occupies row 11, columns 3..6.
	sx, sy := cellOrigin(core.NewRect(0, 0, boardW, boardH), 3, 11)
	assert.Equal(t, core.Cell{Rune: '█', Color: core.ColorCyan}, screen.GetCell(sx, sy))

	gx, gy := cellOrigin(core.NewRect(0, 0, boardW, boardH), 3, 19)
	assert.Equal(t, core.Cell{Rune: '░', Color: GhostColor}, screen.GetCell(gx, gy))
}
