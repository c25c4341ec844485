package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot is a read-only view of a session for renderers and determinism
// tests. Slices are copies and safe to keep.
type Snapshot struct {
	Phase Phase
	Board [Rows][Cols]core.Color

	HasCurrent   bool
	Current      Piece
	CurrentCells [4]core.Point
	Ghost        [4]core.Point
	ShowGhost    bool

	Hold    Kind
	HasHold bool
	CanHold bool
	Next    []Kind

	Score     int
	Lines     int
	Level     int
	HighScore int

	ClearRows     []int
	ClearProgress float64 // Animation progress, 0 when rows fill up to 1 when they drop

	PopupRemaining float64
	PopupElapsed   float64
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.Phase(),
		Board:     s.board.Cells(),
		Hold:      s.hold,
		HasHold:   s.hasHold,
		CanHold:   s.canHold,
		Next:      s.queue.Peek(s.cfg.Display.NextPreview),
		Score:     s.score,
		Lines:     s.lines,
		Level:     s.level,
		HighScore: s.highScore,
	}

	if s.current != nil {
		snap.HasCurrent = true
		snap.Current = *s.current
		snap.CurrentCells = s.current.Cells()
		snap.Ghost = Ghost(*s.current, &s.board).Cells()
		snap.ShowGhost = s.cfg.Display.Ghost
	}

	if len(s.clearRows) > 0 {
		snap.ClearRows = append([]int(nil), s.clearRows...)
		if d := s.cfg.Timing.LineClear; d > 0 {
			snap.ClearProgress = core.ClampF(1-s.clearTimer/d, 0, 1)
		}
	}

	if s.popupTimer > 0 {
		snap.PopupRemaining = s.popupTimer
		snap.PopupElapsed = s.cfg.Timing.LevelPopup - s.popupTimer
	}
	return snap
}
