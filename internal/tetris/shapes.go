// Package tetris implements the falling-block engine: piece geometry,
// collision, rotation with kicks, line clears, the 7-bag randomizer and the
// gravity/lock-delay state machine. It has no knowledge of terminals or windows.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board dimensions in cells.
const (
	Cols = 10
	Rows = 20
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// AllKinds lists every kind in table order.
var AllKinds = [7]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

type shape struct {
	name    string
	color   core.Color
	offsets [4]core.Point // default orientation inside a 4x4 box, pivot (1,1)
}

var shapes = [7]shape{
	KindI: {"I", core.ColorCyan, [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}},
	KindO: {"O", core.ColorYellow, [4]core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}},
	KindT: {"T", core.ColorMagenta, [4]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	KindS: {"S", core.ColorGreen, [4]core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}}},
	KindZ: {"Z", core.ColorRed, [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}},
	KindJ: {"J", core.ColorBlue, [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	KindL: {"L", core.ColorOrange, [4]core.Point{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
}

// GhostColor is used for the landing preview.
const GhostColor = core.ColorGray

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return shapes[k].name
}

// Color returns the fixed color of the kind.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return shapes[k].color
}

// Offsets returns the unrotated block offsets of the kind.
func (k Kind) Offsets() [4]core.Point {
	return shapes[k].offsets
}

// PreviewCells returns the unrotated offsets shifted so the shape's bounding
// box is centered inside a 4x4 preview area.
func PreviewCells(k Kind) [4]core.Point {
	offs := k.Offsets()
	minX, minY, maxX, maxY := offs[0].X, offs[0].Y, offs[0].X, offs[0].Y
	for _, o := range offs[1:] {
		minX, maxX = min(minX, o.X), max(maxX, o.X)
		minY, maxY = min(minY, o.Y), max(maxY, o.Y)
	}
	shift := core.Point{
		X: (4-(maxX-minX+1))/2 - minX,
		Y: (4-(maxY-minY+1))/2 - minY,
	}
	var out [4]core.Point
	for i, o := range offs {
		out[i] = o.Add(shift)
	}
	return out
}
