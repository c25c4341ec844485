package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Direction is a rotation direction.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Pivot is the rotation center of every shape inside its 4x4 box.
var Pivot = core.Point{X: 1, Y: 1}

// rotatePoint turns p a quarter turn around pivot.
func rotatePoint(p, pivot core.Point, dir Direction) core.Point {
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	if dir == Clockwise {
		return core.Point{X: pivot.X + dy, Y: pivot.Y - dx}
	}
	return core.Point{X: pivot.X - dy, Y: pivot.Y + dx}
}

// Rotate applies the clockwise quarter turn times mod 4 to each offset.
// Negative counts rotate counter-clockwise.
func Rotate(offsets [4]core.Point, times int, pivot core.Point) [4]core.Point {
	times = ((times % 4) + 4) % 4
	out := offsets
	for n := 0; n < times; n++ {
		for i := range out {
			out[i] = rotatePoint(out[i], pivot, Clockwise)
		}
	}
	return out
}
