package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Terminal layout: every board cell is two columns wide.
const (
	cellW    = 2
	boardW   = Cols*cellW + 2
	boardH   = Rows + 2
	panelW   = 16
	panelGap = 2

	// MinWidth and MinHeight are the smallest screen the layout fits in.
	MinWidth  = boardW + panelGap + panelW
	MinHeight = boardH
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		renderOverlay(dst, core.NewRect(0, 0, w, h), "Window too small", "Resize to continue")
		return
	}

	snap := g.session.Snapshot()
	originX := (w - MinWidth) / 2
	originY := (h - MinHeight) / 2
	board := core.NewRect(originX, originY, boardW, boardH)

	renderBoard(dst, board, snap)
	renderPanel(dst, board.Right()+panelGap, originY, snap)

	switch snap.Phase {
	case PhaseMenu:
		renderOverlay(dst, board, "TETRIS",
			"Enter  start",
			"Arrows move",
			"Up/X  rotate",
			"Z  rotate back",
			"Space  drop",
			"C  hold  P pause",
			fmt.Sprintf("Best %d", snap.HighScore))
	case PhasePaused:
		renderOverlay(dst, board, "Paused", "P to continue")
	case PhaseGameOver:
		renderOverlay(dst, board, "Game Over",
			fmt.Sprintf("Score %d", snap.Score),
			fmt.Sprintf("Best %d", snap.HighScore),
			"Enter to restart")
	default:
		if snap.PopupRemaining > 0 {
			renderPopup(dst, board, fmt.Sprintf("LEVEL %d", snap.Level), snap.PopupElapsed)
		}
	}
}

func cellOrigin(board core.Rect, x, y int) (int, int) {
	return board.X + 1 + x*cellW, board.Y + 1 + y
}

func drawBlock(dst *core.Screen, sx, sy int, r rune, c core.Color) {
	dst.SetColored(sx, sy, r, c)
	dst.SetColored(sx+1, sy, r, c)
}

func renderBoard(dst *core.Screen, board core.Rect, snap Snapshot) {
	dst.DrawBox(board, core.ColorGray)

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			sx, sy := cellOrigin(board, x, y)
			if c := snap.Board[y][x]; c != core.ColorDefault {
				drawBlock(dst, sx, sy, '█', c)
				continue
			}
			dst.SetColored(sx, sy, ' ', core.ColorDefault)
			dst.SetColored(sx+1, sy, '·', core.ColorGray)
		}
	}

	if len(snap.ClearRows) > 0 {
		on := int(snap.ClearProgress*6)%2 == 0
		for _, y := range snap.ClearRows {
			for x := 0; x < Cols; x++ {
				sx, sy := cellOrigin(board, x, y)
				if on {
					drawBlock(dst, sx, sy, '█', core.ColorBrightWhite)
				} else {
					drawBlock(dst, sx, sy, '▒', core.ColorGray)
				}
			}
		}
	}

	if !snap.HasCurrent {
		return
	}
	if snap.ShowGhost {
		for _, c := range snap.Ghost {
			if c.Y < 0 {
				continue
			}
			sx, sy := cellOrigin(board, c.X, c.Y)
			drawBlock(dst, sx, sy, '░', GhostColor)
		}
	}
	for _, c := range snap.CurrentCells {
		if c.Y < 0 {
			continue
		}
		sx, sy := cellOrigin(board, c.X, c.Y)
		drawBlock(dst, sx, sy, '█', snap.Current.Color())
	}
}

func renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawTextColored(x, y, "TETRIS", core.ColorCyan)

	stats := []struct {
		label string
		value int
	}{
		{"Score", snap.Score},
		{"Level", snap.Level},
		{"Lines", snap.Lines},
		{"Best", snap.HighScore},
	}
	for i, s := range stats {
		dst.DrawText(x, y+2+i, fmt.Sprintf("%-6s%d", s.label, s.value))
	}

	dst.DrawText(x, y+7, "Hold")
	if snap.HasHold {
		c := snap.Hold.Color()
		if !snap.CanHold {
			c = core.ColorGray
		}
		renderMini(dst, x, y+8, snap.Hold, c)
	}

	dst.DrawText(x, y+11, "Next")
	for i, k := range snap.Next {
		row := y + 12 + i*3
		if row+1 >= y+MinHeight {
			break
		}
		renderMini(dst, x, row, k, k.Color())
	}
}

// renderMini draws the two occupied rows of a centered preview.
func renderMini(dst *core.Screen, x, y int, k Kind, c core.Color) {
	for _, p := range PreviewCells(k) {
		drawBlock(dst, x+p.X*cellW, y+p.Y-1, '█', c)
	}
}

func renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := min(maxLen+4, area.W)
	boxH := min(len(lines)+2, area.H)
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box, box.Y+1+i, l, core.ColorDefault)
	}
}

// renderPopup draws the level-up banner, sliding down during its first
// quarter second.
func renderPopup(dst *core.Screen, board core.Rect, text string, elapsed float64) {
	drop := int(core.ClampF(elapsed/0.25, 0, 1) * 3)
	dst.DrawTextCentered(board, board.Y+1+drop, text, core.ColorBrightYellow)
}
