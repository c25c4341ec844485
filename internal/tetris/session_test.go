package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newPlaying(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.DefaultTetrisConfig(), 1, 0)
	s.Start()
	require.Equal(t, PhasePlaying, s.Phase())
	return s
}

func place(s *Session, p Piece) {
	s.current = &p
}

func currentPiece(t *testing.T, s *Session) Piece {
	t.Helper()
	p, ok := s.Current()
	require.True(t, ok, "expected a current piece")
	return p
}

// setupSingleLine leaves row 19 missing exactly the cells a flat I fills.
func setupSingleLine(s *Session) {
	fillRow(&s.board, 19, 3, 4, 5, 6)
	place(s, Spawn(KindI))
}

func TestSessionStartsInMenu(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), 1, 75)
	assert.Equal(t, PhaseMenu, s.Phase())
	assert.Equal(t, 75, s.HighScore())

	s.Update(5)
	s.Apply(core.ActionLeft)
	s.Apply(core.ActionHardDrop)
	s.Apply(core.ActionPause)
	assert.Equal(t, PhaseMenu, s.Phase())
	_, ok := s.Current()
	assert.False(t, ok)

	s.Apply(core.ActionStart)
	assert.Equal(t, PhasePlaying, s.Phase())
	p := currentPiece(t, s)
	assert.Equal(t, Cols/2-2, p.X)
	assert.Equal(t, -2, p.Y)
	assert.True(t, s.Snapshot().CanHold)
}

func TestSingleLineClear(t *testing.T) {
	for _, level := range []int{0, 2} {
		t.Run("level", func(t *testing.T) {
			s := newPlaying(t)
			s.level = level
			s.lines = level * 10
			setupSingleLine(s)

			s.Apply(core.ActionHardDrop)
			assert.Equal(t, PhaseLineClear, s.Phase())
			assert.Equal(t, 40, s.Score(), "hard drop of 20 rows")

			snap := s.Snapshot()
			assert.Equal(t, []int{19}, snap.ClearRows)
			assert.InDelta(t, 0.0, snap.ClearProgress, 1e-9)
			assert.False(t, snap.HasCurrent)

			s.Update(0.2)
			assert.Equal(t, PhaseLineClear, s.Phase())
			assert.InDelta(t, 0.2/0.35, s.Snapshot().ClearProgress, 1e-9)

			s.Update(0.2)
			assert.Equal(t, PhasePlaying, s.Phase())
			assert.Equal(t, 40+40*(level+1), s.Score())
			assert.Equal(t, level*10+1, s.Lines())
			assert.Equal(t, level, s.Level())
			assert.Equal(t, 0, s.Board().Count())
			currentPiece(t, s)
		})
	}
}

func TestLineClearScoreTable(t *testing.T) {
	tests := []struct {
		rows  int
		level int
		want  int
	}{
		{1, 0, 40},
		{2, 0, 100},
		{3, 0, 300},
		{4, 0, 1200},
		{4, 3, 4800},
		{2, 9, 1000},
	}
	for _, tt := range tests {
		s := newPlaying(t)
		s.level = tt.level
		s.lines = tt.level * 10
		for y := Rows - tt.rows; y < Rows; y++ {
			fillRow(&s.board, y)
		}
		s.clearRows = s.board.FullRows()
		s.clearTimer = 0.01
		s.current = nil
		s.phase = PhaseLineClear

		s.Update(0.02)
		if s.Score() != tt.want {
			t.Errorf("clear %d rows at level %d: score = %d, expected %d", tt.rows, tt.level, s.Score(), tt.want)
		}
	}
}

func TestSoftDropBonus(t *testing.T) {
	s := newPlaying(t)
	place(s, Spawn(KindT))

	s.Apply(core.ActionSoftDropStart)
	for range_i := 0; range_i < 5; range_i++ {
		s.Update(0.02)
	}
	assert.Equal(t, 3, currentPiece(t, s).Y)
	assert.Equal(t, 0, s.Score(), "bonus is paid on lock")

	s.Apply(core.ActionHardDrop)
	// 15 hard-dropped rows at 2 each plus 5 soft-dropped cells.
	assert.Equal(t, 35, s.Score())
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 4, s.Board().Count())
}

func TestSoftDropReleaseWhilePaused(t *testing.T) {
	s := newPlaying(t)
	s.Apply(core.ActionSoftDropStart)
	s.Apply(core.ActionPause)
	s.Apply(core.ActionSoftDropStop)
	s.Apply(core.ActionPause)
	assert.False(t, s.softDrop)
}

func TestHold(t *testing.T) {
	s := newPlaying(t)
	first := currentPiece(t, s).Kind
	next := s.queue.Peek(1)[0]

	s.Apply(core.ActionHold)
	p := currentPiece(t, s)
	assert.Equal(t, next, p.Kind)
	assert.Equal(t, Spawn(next), p)
	snap := s.Snapshot()
	assert.True(t, snap.HasHold)
	assert.Equal(t, first, snap.Hold)
	assert.False(t, snap.CanHold)

	s.Apply(core.ActionLeft)
	s.Apply(core.ActionHold)
	p = currentPiece(t, s)
	assert.Equal(t, next, p.Kind, "second hold before lock is ignored")
	assert.Equal(t, Spawn(next).X-1, p.X)

	s.Apply(core.ActionHardDrop)
	fresh := currentPiece(t, s)
	assert.True(t, s.Snapshot().CanHold)

	s.Apply(core.ActionHold)
	assert.Equal(t, Spawn(first), currentPiece(t, s))
	assert.Equal(t, fresh.Kind, s.Snapshot().Hold)
}

func TestHoldResetsTimers(t *testing.T) {
	s := newPlaying(t)
	place(s, Piece{Kind: KindT, X: 3, Y: 18})
	for range_i := 0; range_i < 4; range_i++ {
		s.Update(0.25)
	}
	require.True(t, s.onGround)

	s.Apply(core.ActionHold)
	assert.False(t, s.onGround)
	assert.Zero(t, s.lockTimer)
	assert.Zero(t, s.fallTimer)
}

func TestLockAboveTopEndsGame(t *testing.T) {
	s := newPlaying(t)
	s.score = 500
	s.highScore = 100
	for y := 0; y < Rows; y++ {
		fillRow(&s.board, y, 9)
	}
	before := s.board.Cells()
	place(s, Spawn(KindT))

	s.Apply(core.ActionHardDrop)
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, before, s.board.Cells(), "no cells written")

	ev := s.DrainEvents()
	assert.True(t, ev.GameEnded)
	assert.True(t, ev.NewHighScore)
	assert.Equal(t, 500, s.HighScore())
	assert.Equal(t, Events{}, s.DrainEvents())

	s.Apply(core.ActionLeft)
	s.Apply(core.ActionPause)
	s.Update(1)
	assert.Equal(t, PhaseGameOver, s.Phase())

	s.Apply(core.ActionStart)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 500, s.HighScore())
	assert.Equal(t, 0, s.Board().Count())
}

func TestGameOverWithoutNewHighScore(t *testing.T) {
	s := newPlaying(t)
	s.score = 50
	s.highScore = 100
	for y := 0; y < Rows; y++ {
		fillRow(&s.board, y, 0)
	}
	place(s, Spawn(KindO))

	s.Apply(core.ActionHardDrop)
	ev := s.DrainEvents()
	assert.True(t, ev.GameEnded)
	assert.False(t, ev.NewHighScore)
	assert.Equal(t, 100, s.HighScore())
}

func TestLockDelay(t *testing.T) {
	s := newPlaying(t)
	place(s, Piece{Kind: KindT, X: 3, Y: 18})

	for range_i := 0; range_i < 4; range_i++ {
		s.Update(0.25)
	}
	assert.True(t, s.onGround)
	assert.Equal(t, 0, s.Board().Count())

	s.Update(0.25)
	assert.Equal(t, 4, s.Board().Count())
	assert.Equal(t, 1, s.DrainEvents().Locked)
	assert.Equal(t, -2, currentPiece(t, s).Y, "next piece spawned")
}

func TestShiftOnGroundResetsLockDelay(t *testing.T) {
	s := newPlaying(t)
	place(s, Piece{Kind: KindT, X: 3, Y: 18})

	for range_i := 0; range_i < 4; range_i++ {
		s.Update(0.25)
	}
	s.Apply(core.ActionLeft)
	assert.Equal(t, 2, currentPiece(t, s).X)

	s.Update(0.25)
	assert.Equal(t, 0, s.Board().Count())
	s.Update(0.25)
	assert.Equal(t, 4, s.Board().Count())
	assert.True(t, s.Board().Filled(2, 19))
}

func TestGravity(t *testing.T) {
	s := newPlaying(t)
	p := currentPiece(t, s)

	s.Update(0.5)
	assert.Equal(t, p.Y, currentPiece(t, s).Y)
	s.Update(0.5)
	assert.Equal(t, p.Y+1, currentPiece(t, s).Y)

	// A long frame falls several rows at once.
	s.Update(2.4)
	assert.Equal(t, p.Y+4, currentPiece(t, s).Y)
}

func TestPauseFreezes(t *testing.T) {
	s := newPlaying(t)
	before := currentPiece(t, s)

	s.Apply(core.ActionPause)
	assert.Equal(t, PhasePaused, s.Phase())
	assert.Equal(t, PhasePaused, s.Snapshot().Phase)

	s.Update(10)
	s.Apply(core.ActionLeft)
	s.Apply(core.ActionRotateCW)
	s.Apply(core.ActionHardDrop)
	s.Apply(core.ActionHold)
	assert.Equal(t, before, currentPiece(t, s))
	assert.Equal(t, 0, s.Board().Count())

	s.Apply(core.ActionPause)
	assert.Equal(t, PhasePlaying, s.Phase())
	s.Update(0.8)
	assert.Equal(t, before.Y+1, currentPiece(t, s).Y)
}

func TestCommandsIgnoredDuringLineClear(t *testing.T) {
	s := newPlaying(t)
	setupSingleLine(s)
	s.Apply(core.ActionHardDrop)
	require.Equal(t, PhaseLineClear, s.Phase())

	s.Apply(core.ActionLeft)
	s.Apply(core.ActionHold)
	s.Apply(core.ActionHardDrop)
	s.Apply(core.ActionPause)
	assert.Equal(t, PhaseLineClear, s.Phase())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.False(t, s.Snapshot().HasHold)
}

func TestLevelUpPopup(t *testing.T) {
	s := newPlaying(t)
	s.lines = 9
	setupSingleLine(s)

	s.Apply(core.ActionHardDrop)
	s.Update(0.4)
	require.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.Level())
	assert.True(t, s.DrainEvents().LevelUp)

	snap := s.Snapshot()
	assert.InDelta(t, 1.2, snap.PopupRemaining, 1e-9)
	assert.InDelta(t, 0.0, snap.PopupElapsed, 1e-9)

	s.Update(0.2)
	snap = s.Snapshot()
	assert.InDelta(t, 1.0, snap.PopupRemaining, 1e-9)
	assert.InDelta(t, 0.2, snap.PopupElapsed, 1e-9)

	s.Apply(core.ActionPause)
	s.Update(5)
	assert.InDelta(t, 1.0, s.Snapshot().PopupRemaining, 1e-9)

	s.Apply(core.ActionPause)
	s.Update(2)
	assert.Zero(t, s.Snapshot().PopupRemaining)
}

func TestSnapshotContents(t *testing.T) {
	s := newPlaying(t)
	place(s, Spawn(KindT))

	snap := s.Snapshot()
	assert.Len(t, snap.Next, 3)
	assert.Equal(t, s.queue.Peek(3), snap.Next)
	assert.True(t, snap.ShowGhost)
	assert.Equal(t, Spawn(KindT).Cells(), snap.CurrentCells)
	assert.Equal(t, Piece{Kind: KindT, X: 3, Y: 18}.Cells(), snap.Ghost)

	cfg := config.DefaultTetrisConfig()
	cfg.Display.Ghost = false
	cfg.Display.NextPreview = 2
	s = NewSession(cfg, 1, 0)
	s.Start()
	snap = s.Snapshot()
	assert.False(t, snap.ShowGhost)
	assert.Len(t, snap.Next, 2)
}
