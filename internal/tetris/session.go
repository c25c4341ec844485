package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the top-level state of a session.
type Phase string

const (
	PhaseMenu      Phase = "menu"
	PhasePlaying   Phase = "playing"
	PhasePaused    Phase = "paused"
	PhaseLineClear Phase = "line_clear"
	PhaseGameOver  Phase = "game_over"
)

// Events are the notable things that happened since the last DrainEvents.
type Events struct {
	Locked       int // Pieces locked
	LinesCleared int
	LevelUp      bool
	GameEnded    bool
	NewHighScore bool
}

// Session owns one game: board, current piece, queue, hold slot, scoring and
// the timers driving gravity, lock delay and the line-clear animation.
type Session struct {
	cfg     config.TetrisConfig
	gravity config.GravityCurve
	rand    *Randomizer

	board   Board
	queue   *Queue
	current *Piece
	hold    Kind
	hasHold bool
	canHold bool

	phase  Phase
	paused bool

	score     int
	lines     int
	level     int
	highScore int

	fallTimer     float64
	lockTimer     float64
	onGround      bool
	softDrop      bool
	softDropCells int

	clearRows  []int
	clearTimer float64
	popupTimer float64

	events Events
}

// NewSession returns a session sitting in the menu.
func NewSession(cfg config.TetrisConfig, seed int64, highScore int) *Session {
	r := NewRandomizer(seed)
	return &Session{
		cfg:       cfg,
		gravity:   config.NewGravityCurve(cfg.Gravity),
		rand:      r,
		queue:     NewQueue(r),
		phase:     PhaseMenu,
		highScore: highScore,
	}
}

// Start begins a fresh game, keeping the high score.
func (s *Session) Start() {
	s.board.Reset()
	s.queue = NewQueue(s.rand)
	s.current = nil
	s.hasHold = false
	s.score, s.lines, s.level = 0, 0, 0
	s.softDrop = false
	s.softDropCells = 0
	s.clearRows = nil
	s.clearTimer = 0
	s.popupTimer = 0
	s.paused = false
	s.phase = PhasePlaying
	s.spawnNext()
}

// Phase returns the current phase; a paused game reports PhasePaused.
func (s *Session) Phase() Phase {
	if s.paused {
		return PhasePaused
	}
	return s.phase
}

func (s *Session) Score() int { return s.score }
func (s *Session) Lines() int { return s.lines }
func (s *Session) Level() int { return s.level }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// SetHighScore replaces the stored best score.
func (s *Session) SetHighScore(n int) {
	s.highScore = n
}

// Board returns the locked-cell grid.
func (s *Session) Board() *Board {
	return &s.board
}

// Current returns the falling piece, if any.
func (s *Session) Current() (Piece, bool) {
	if s.current == nil {
		return Piece{}, false
	}
	return *s.current, true
}

// DrainEvents returns and clears the accumulated events.
func (s *Session) DrainEvents() Events {
	ev := s.events
	s.events = Events{}
	return ev
}

// Apply handles one discrete command.
func (s *Session) Apply(a core.Action) {
	switch a {
	case core.ActionStart:
		if s.phase == PhaseMenu || s.phase == PhaseGameOver {
			s.Start()
		}
		return
	case core.ActionPause:
		if s.phase == PhasePlaying {
			s.paused = !s.paused
		}
		return
	case core.ActionSoftDropStop:
		s.softDrop = false
		return
	}

	if s.paused || s.phase != PhasePlaying || s.current == nil {
		return
	}

	switch a {
	case core.ActionLeft:
		s.shift(-1)
	case core.ActionRight:
		s.shift(1)
	case core.ActionRotateCW:
		TryRotate(s.current, Clockwise, &s.board)
	case core.ActionRotateCCW:
		TryRotate(s.current, CounterClockwise, &s.board)
	case core.ActionSoftDropStart:
		s.softDrop = true
	case core.ActionHardDrop:
		s.hardDrop()
	case core.ActionHold:
		s.holdPiece()
	}
}

func (s *Session) shift(dx int) {
	if TryMove(s.current, dx, 0, &s.board) && s.onGround {
		s.lockTimer = 0
	}
}

// Update advances timers by dt seconds.
func (s *Session) Update(dt float64) {
	if dt <= 0 || s.paused {
		return
	}
	switch s.phase {
	case PhasePlaying:
		s.tickPopup(dt)
		s.applyGravity(dt)
	case PhaseLineClear:
		s.tickPopup(dt)
		s.clearTimer -= dt
		if s.clearTimer <= 0 {
			s.finishLineClear()
		}
	}
}

func (s *Session) tickPopup(dt float64) {
	if s.popupTimer > 0 {
		s.popupTimer = max(0, s.popupTimer-dt)
	}
}

func (s *Session) applyGravity(dt float64) {
	if s.current == nil {
		return
	}
	s.fallTimer += dt
	interval := s.gravity.Speed(s.level, s.softDrop)

	moved := false
	for s.fallTimer >= interval {
		s.fallTimer -= interval
		if !TryMove(s.current, 0, 1, &s.board) {
			s.onGround = true
			break
		}
		moved = true
		if s.softDrop {
			s.softDropCells++
		}
	}

	if moved {
		below := *s.current
		below.Y++
		if s.board.Valid(below.Cells()) {
			s.onGround = false
			s.lockTimer = 0
		} else {
			s.onGround = true
		}
	}

	if s.onGround {
		s.lockTimer += dt
		if s.lockTimer >= s.cfg.Timing.LockDelay {
			s.lockCurrent()
		}
	}
}

func (s *Session) hardDrop() {
	dist := 0
	for TryMove(s.current, 0, 1, &s.board) {
		dist++
	}
	s.score += dist * s.cfg.Scoring.HardDropPerCell
	s.lockCurrent()
}

func (s *Session) holdPiece() {
	if !s.canHold {
		return
	}
	kind := s.current.Kind
	var next Kind
	if s.hasHold {
		next = s.hold
	} else {
		next = s.queue.Pop()
		s.hasHold = true
	}
	s.hold = kind
	p := Spawn(next)
	s.current = &p
	s.canHold = false
	s.resetPieceTimers()
}

func (s *Session) lockCurrent() {
	p := *s.current
	if !s.board.Lock(p.Cells(), p.Color()) {
		s.endGame()
		return
	}
	s.events.Locked++
	s.score += s.softDropCells * s.cfg.Scoring.SoftDropPerCell
	s.softDropCells = 0

	if rows := s.board.FullRows(); len(rows) > 0 {
		s.current = nil
		s.clearRows = rows
		s.clearTimer = s.cfg.Timing.LineClear
		s.phase = PhaseLineClear
		return
	}
	s.spawnNext()
}

func (s *Session) finishLineClear() {
	n := s.board.ClearRows()
	s.clearRows = nil
	s.clearTimer = 0
	s.lines += n
	s.score += s.cfg.Scoring.LinePoints(n) * (s.level + 1)
	s.events.LinesCleared += n

	prev := s.level
	if s.cfg.Scoring.LinesPerLevel > 0 {
		s.level = s.lines / s.cfg.Scoring.LinesPerLevel
	}
	if s.level > prev {
		s.popupTimer = s.cfg.Timing.LevelPopup
		s.events.LevelUp = true
	}

	s.phase = PhasePlaying
	s.spawnNext()
}

func (s *Session) spawnNext() {
	p := Spawn(s.queue.Pop())
	s.current = &p
	s.canHold = true
	s.resetPieceTimers()
}

func (s *Session) resetPieceTimers() {
	s.fallTimer = 0
	s.lockTimer = 0
	s.onGround = false
}

func (s *Session) endGame() {
	s.phase = PhaseGameOver
	s.paused = false
	s.softDrop = false
	s.softDropCells = 0
	s.events.GameEnded = true
	if s.score > s.highScore {
		s.highScore = s.score
		s.events.NewHighScore = true
	}
}
