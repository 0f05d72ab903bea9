// Package mapgen generates dungeon-like 2D maps by combining a
// cellular-automaton smoothing rule with a drunk-agent random walk.
package mapgen

import (
	"math/rand"
	"strings"
)

// Cell values used by the generators.
const (
	Empty    = 0
	Occupied = 1
)

// Grid is a rectangular field of cells, each holding Empty or Occupied.
// Cells are indexed [row][col] with row in [0, Height) and col in [0, Width).
// Which polarity counts as floor and which as wall is up to the caller.
type Grid struct {
	Width  int
	Height int
	Cells  [][]int
}

// NewGrid allocates a zero-filled grid with the given dimensions.
// Negative dimensions are clamped to zero, producing an empty grid.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]int, height)
	for row := range cells {
		cells[row] = make([]int, width)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// FromCells builds a grid around an existing cell matrix, deep-copying it.
// Ragged rows are padded with Empty so every row ends up the same width.
func FromCells(cells [][]int) *Grid {
	width := 0
	for _, row := range cells {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := NewGrid(width, len(cells))
	for row := range cells {
		copy(grid.Cells[row], cells[row])
	}
	return grid
}

// Clone returns a deep copy sharing no state with the receiver.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.Width, g.Height)
	for row := range g.Cells {
		copy(clone.Cells[row], g.Cells[row])
	}
	return clone
}

// InBounds reports whether (row, col) addresses a cell inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// RandomFill seeds every cell independently: Occupied with the given
// probability, Empty otherwise. A density of 0 leaves the grid untouched
// semantically (all Empty), 1 fills it completely.
func (g *Grid) RandomFill(density float64, rng *rand.Rand) {
	for row := range g.Cells {
		for col := range g.Cells[row] {
			if rng.Float64() < density {
				g.Cells[row][col] = Occupied
			} else {
				g.Cells[row][col] = Empty
			}
		}
	}
}

// String renders the grid as one text line per row, '#' for occupied cells
// and '.' for empty ones.
func (g *Grid) String() string {
	var output strings.Builder
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == Occupied {
				output.WriteByte('#')
			} else {
				output.WriteByte('.')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
