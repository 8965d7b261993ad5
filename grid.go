package wordsearch

import (
	"fmt"
	"strings"
)

// Grid is a square 2D grid of runes.
//
// A zero rune marks a cell that no word occupies yet. Cells are only written
// through word placement and the fillers, so a non-empty cell is never
// replaced with a different rune.
type Grid struct {
	cells [][]rune
	empty int
}

func NewGrid(n int) *Grid {
	cells := make([][]rune, n)
	for y := range cells {
		cells[y] = make([]rune, n)
	}
	return &Grid{cells: cells, empty: n * n}
}

// Size returns the side length N.
func (g *Grid) Size() int {
	return len(g.cells)
}

// At returns the rune at (x, y), or 0 if the cell is still empty.
func (g *Grid) At(x, y int) rune {
	return g.cells[y][x]
}

// Empty reports whether the cell at (x, y) holds no letter yet.
func (g *Grid) Empty(x, y int) bool {
	return g.cells[y][x] == 0
}

// EmptyCount returns the number of cells no word or filler has written.
func (g *Grid) EmptyCount() int {
	return g.empty
}

func (g *Grid) set(x, y int, r rune) {
	if g.cells[y][x] == 0 && r != 0 {
		g.empty--
	}
	g.cells[y][x] = r
}

// Repr renders the grid as newline-joined rows, with '.' for empty cells.
func (g *Grid) Repr() string {
	lines := make([]string, g.Size())
	for y := range g.cells {
		row := make([]rune, g.Size())
		for x, r := range g.cells[y] {
			if r == 0 {
				r = '.'
			}
			row[x] = r
		}
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

// Rows returns the grid as strings, one per row, with '.' for empty cells.
func (g *Grid) Rows() []string {
	return strings.Split(g.Repr(), "\n")
}

func (g *Grid) DebugString() string {
	return fmt.Sprintf("Grid{size: %d, empty: %d, cells: %v}", g.Size(), g.empty, g.cells)
}
