package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a positioned, rotated instance of a shape. It is a value type:
// assigning it copies it, so speculative moves work on copies.
type Piece struct {
	Kind     Kind
	X, Y     int // Top-left of the 4x4 box in board cells
	Rotation int // 0..3 clockwise quarter turns
}

// Spawn returns a piece of kind k at the spawn position: horizontally
// centered and two rows above the visible board.
func Spawn(k Kind) Piece {
	return Piece{Kind: k, X: Cols/2 - 2, Y: -2}
}

// Cells returns the absolute board cells the piece occupies. Rotation is
// always applied to the base shape, never incrementally.
func (p Piece) Cells() [4]core.Point {
	offs := Rotate(p.Kind.Offsets(), p.Rotation, Pivot)
	origin := core.Point{X: p.X, Y: p.Y}
	for i := range offs {
		offs[i] = offs[i].Add(origin)
	}
	return offs
}

// Clone returns a copy of the piece.
func (p Piece) Clone() Piece {
	return p
}

// Color returns the color of the piece's kind.
func (p Piece) Color() core.Color {
	return p.Kind.Color()
}
