package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board is the grid of locked cells. core.ColorDefault marks an empty cell.
type Board struct {
	cells [Rows][Cols]core.Color
}

var grid = core.NewRect(0, 0, Cols, Rows)

// InBounds reports whether (x, y) lies inside the grid.
func InBounds(x, y int) bool {
	return grid.Contains(x, y)
}

// At returns the color stored at (x, y), or ColorDefault outside the grid.
func (b *Board) At(x, y int) core.Color {
	if !InBounds(x, y) {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// Filled reports whether (x, y) holds a locked block.
func (b *Board) Filled(x, y int) bool {
	return b.At(x, y) != core.ColorDefault
}

func (b *Board) set(x, y int, c core.Color) {
	if InBounds(x, y) {
		b.cells[y][x] = c
	}
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Rows][Cols]core.Color {
	return b.cells
}

// Count returns the number of filled cells.
func (b *Board) Count() int {
	n := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.cells[y][x] != core.ColorDefault {
				n++
			}
		}
	}
	return n
}

// Valid reports whether every cell is inside the columns, above the floor and
// not on a locked block. Cells above the top row are allowed.
func (b *Board) Valid(cells [4]core.Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= Cols || c.Y >= Rows {
			return false
		}
		if c.Y >= 0 && b.cells[c.Y][c.X] != core.ColorDefault {
			return false
		}
	}
	return true
}

// Lock writes the cells with the given color. If any cell is above the
// visible board nothing is written and false is returned.
func (b *Board) Lock(cells [4]core.Point, color core.Color) bool {
	for _, c := range cells {
		if c.Y < 0 {
			return false
		}
	}
	for _, c := range cells {
		b.set(c.X, c.Y, color)
	}
	return true
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < Cols; x++ {
		if b.cells[y][x] == core.ColorDefault {
			return false
		}
	}
	return true
}

// FullRows returns the indices of complete rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < Rows; y++ {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes every complete row, shifts the rows above down by the
// number of complete rows beneath them and returns how many were removed.
func (b *Board) ClearRows() int {
	write := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if b.rowFull(y) {
			continue
		}
		if write != y {
			b.cells[write] = b.cells[y]
		}
		write--
	}
	cleared := write + 1
	for y := 0; y <= write; y++ {
		b.cells[y] = [Cols]core.Color{}
	}
	return cleared
}

// Reset empties the board.
func (b *Board) Reset() {
	b.cells = [Rows][Cols]core.Color{}
}
