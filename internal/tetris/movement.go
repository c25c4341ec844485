package tetris

// kickOffsets are the horizontal shifts tried, in order, after a rotation.
var kickOffsets = [...]int{0, -1, 1, -2, 2}

// TryMove shifts p by (dx, dy) if the result is a valid position.
func TryMove(p *Piece, dx, dy int, b *Board) bool {
	moved := *p
	moved.X += dx
	moved.Y += dy
	if !b.Valid(moved.Cells()) {
		return false
	}
	*p = moved
	return true
}

// TryRotate turns p one quarter in dir, trying each horizontal kick in turn.
// p is unchanged when every candidate collides.
func TryRotate(p *Piece, dir Direction, b *Board) bool {
	rot := ((p.Rotation+int(dir))%4 + 4) % 4
	for _, kick := range kickOffsets {
		cand := *p
		cand.Rotation = rot
		cand.X += kick
		if b.Valid(cand.Cells()) {
			*p = cand
			return true
		}
	}
	return false
}

// Ghost returns p dropped as far as it can fall.
func Ghost(p Piece, b *Board) Piece {
	for TryMove(&p, 0, 1, b) {
	}
	return p
}

// DropDistance returns how many rows p can fall before it lands.
func DropDistance(p Piece, b *Board) int {
	return Ghost(p, b).Y - p.Y
}
