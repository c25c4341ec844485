package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Pixel layout.
const (
	cell    = 28
	margin  = 20
	panelW  = 160
	boardPx = tetris.Cols * cell
	boardPy = tetris.Rows * cell
	screenW = margin + boardPx + margin + panelW
	screenH = margin + boardPy + margin
	lineH   = 16
	glyphW  = 7
)

var (
	bgColor    = color.RGBA{18, 18, 24, 255}
	gridColor  = color.RGBA{40, 40, 55, 255}
	emptyColor = color.RGBA{28, 28, 38, 255}
	textColor  = color.RGBA{230, 230, 230, 255}
	dimColor   = color.RGBA{120, 120, 130, 255}
	shadeColor = color.NRGBA{0, 0, 0, 170}
)

func rgba(c core.Color, alpha uint8) color.NRGBA {
	rgb := c.RGB()
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: alpha}
}

// flashAlpha peaks halfway through the clear animation and never drops
// below 60.
func flashAlpha(progress float64) uint8 {
	return uint8(max(60, 180*(1-math.Abs(2*progress-1))))
}

func drawCell(screen *ebiten.Image, originX, originY float32, x, y int, size float32, c color.Color) {
	px := originX + float32(x)*size
	py := originY + float32(y)*size
	vector.DrawFilledRect(screen, px+1, py+1, size-2, size-2, c, false)
}

func drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, c)
}

func drawCentered(screen *ebiten.Image, s string, centerX, y int, c color.Color) {
	drawText(screen, s, centerX-len(s)*glyphW/2, y, c)
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	snap := w.game.Snapshot()

	ox, oy := float32(margin), float32(margin)
	vector.DrawFilledRect(screen, ox-2, oy-2, boardPx+4, boardPy+4, gridColor, false)

	for y := range tetris.Rows {
		for x := range tetris.Cols {
			c := color.Color(emptyColor)
			if bc := snap.Board[y][x]; bc != core.ColorDefault {
				c = rgba(bc, 255)
			}
			drawCell(screen, ox, oy, x, y, cell, c)
		}
	}

	if len(snap.ClearRows) > 0 {
		flash := color.NRGBA{255, 255, 255, flashAlpha(snap.ClearProgress)}
		for _, y := range snap.ClearRows {
			for x := range tetris.Cols {
				drawCell(screen, ox, oy, x, y, cell, flash)
			}
		}
	}

	if snap.HasCurrent {
		if snap.ShowGhost {
			for _, p := range snap.Ghost {
				if p.Y >= 0 {
					drawCell(screen, ox, oy, p.X, p.Y, cell, rgba(tetris.GhostColor, 90))
				}
			}
		}
		for _, p := range snap.CurrentCells {
			if p.Y >= 0 {
				drawCell(screen, ox, oy, p.X, p.Y, cell, rgba(snap.Current.Color(), 255))
			}
		}
	}

	w.drawPanel(screen, margin+boardPx+margin, margin, snap)
	w.drawOverlay(screen, snap)
}

func (w *Window) drawPanel(screen *ebiten.Image, x, y int, snap tetris.Snapshot) {
	drawText(screen, "TETRIS", x, y+12, rgba(core.ColorCyan, 255))

	stats := []string{
		fmt.Sprintf("Score  %d", snap.Score),
		fmt.Sprintf("Level  %d", snap.Level),
		fmt.Sprintf("Lines  %d", snap.Lines),
		fmt.Sprintf("Best   %d", snap.HighScore),
	}
	for i, s := range stats {
		drawText(screen, s, x, y+40+i*lineH, textColor)
	}

	holdY := y + 120
	drawText(screen, "Hold", x, holdY, textColor)
	if snap.HasHold {
		alpha := uint8(255)
		if !snap.CanHold {
			alpha = 90
		}
		drawMini(screen, float32(x), float32(holdY+6), snap.Hold, alpha)
	}

	nextY := holdY + 90
	drawText(screen, "Next", x, nextY, textColor)
	for i, k := range snap.Next {
		drawMini(screen, float32(x), float32(nextY+6+i*70), k, 255)
	}

	help := []string{"<- -> move", "Up/X rotate", "Z rotate back", "Space drop", "C hold  P pause"}
	for i, s := range help {
		drawText(screen, s, x, screenH-margin-(len(help)-1-i)*lineH, dimColor)
	}
}

// drawMini draws a centered preview of k in a 4x4 box of small cells.
func drawMini(screen *ebiten.Image, x, y float32, k tetris.Kind, alpha uint8) {
	const mini = 18
	for _, p := range tetris.PreviewCells(k) {
		drawCell(screen, x, y, p.X, p.Y, mini, rgba(k.Color(), alpha))
	}
}

func (w *Window) drawOverlay(screen *ebiten.Image, snap tetris.Snapshot) {
	centerX := margin + boardPx/2
	centerY := margin + boardPy/2

	var lines []string
	switch snap.Phase {
	case tetris.PhaseMenu:
		lines = []string{"TETRIS", "", "Press Enter to start", fmt.Sprintf("Best %d", snap.HighScore)}
	case tetris.PhasePaused:
		lines = []string{"PAUSED", "", "P to continue"}
	case tetris.PhaseGameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score %d", snap.Score), fmt.Sprintf("Best %d", snap.HighScore), "Enter to restart"}
	default:
		if snap.PopupRemaining > 0 {
			alpha := uint8(core.ClampF(snap.PopupRemaining/0.4, 0, 1) * 255)
			rise := int(core.ClampF(snap.PopupElapsed/0.3, 0, 1) * 30)
			drawCentered(screen, fmt.Sprintf("LEVEL %d", snap.Level), centerX, centerY-rise, rgba(core.ColorBrightYellow, alpha))
		}
		return
	}

	vector.DrawFilledRect(screen, margin, margin, boardPx, boardPy, shadeColor, false)
	top := centerY - len(lines)*lineH/2
	for i, l := range lines {
		drawCentered(screen, l, centerX, top+i*lineH, textColor)
	}
}
