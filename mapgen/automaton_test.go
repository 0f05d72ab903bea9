package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepIsDeterministic(t *testing.T) {
	g := NewGrid(20, 10)
	g.Cells[4][7] = Occupied
	g.Cells[5][8] = Occupied

	a := NewAutomaton(1, 0.5)
	first := a.Step(g)
	second := a.Step(g)

	assert.Equal(t, first.Cells, second.Cells)
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := NewGrid(6, 6)
	g.Cells[3][3] = Occupied

	NewAutomaton(1, 0.3).Step(g)

	for row := range g.Cells {
		for col := range g.Cells[row] {
			want := Empty
			if row == 3 && col == 3 {
				want = Occupied
			}
			assert.Equal(t, want, g.Cells[row][col])
		}
	}
}

func TestStepPreservesDimensions(t *testing.T) {
	g := NewGrid(17, 9)
	next := NewAutomaton(2, 0.5).Step(g)

	assert.Equal(t, g.Width, next.Width)
	assert.Equal(t, g.Height, next.Height)
	assert.Len(t, next.Cells, 9)
	for _, row := range next.Cells {
		assert.Len(t, row, 17)
	}
}

// On an all-empty 10x20 grid with radius 1 and threshold 0.5 only the four
// corners flip: a corner window has 5 of its 9 cells outside the grid
// (ratio 5/9), while a straight-edge window has only 3 outside (ratio 3/9).
func TestStepAllEmptyGolden(t *testing.T) {
	g := NewGrid(20, 10)
	next := NewAutomaton(1, 0.5).Step(g)

	for row := 0; row < 10; row++ {
		for col := 0; col < 20; col++ {
			corner := (row == 0 || row == 9) && (col == 0 || col == 19)
			want := Empty
			if corner {
				want = Occupied
			}
			assert.Equalf(t, want, next.Cells[row][col], "cell (%d,%d)", row, col)
		}
	}
}

// The virtual border pushes a lone center cell's ring over a 0.4 threshold
// on a 3x3 grid while the center itself, reading its own old neighborhood,
// drops back to empty.
func TestStepSmallGolden(t *testing.T) {
	g := NewGrid(3, 3)
	g.Cells[1][1] = Occupied

	next := NewAutomaton(1, 0.4).Step(g)

	want := [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	assert.Equal(t, want, next.Cells)
}

func TestStepThresholdSaturation(t *testing.T) {
	g := NewGrid(5, 4)
	g.Cells[2][2] = Occupied

	t.Run("zero threshold turns every cell on", func(t *testing.T) {
		next := NewAutomaton(1, 0).Step(g)
		for _, row := range next.Cells {
			for _, cell := range row {
				assert.Equal(t, Occupied, cell)
			}
		}
	})

	t.Run("threshold above one turns every cell off", func(t *testing.T) {
		next := NewAutomaton(1, 1.5).Step(g)
		for _, row := range next.Cells {
			for _, cell := range row {
				assert.Equal(t, Empty, cell)
			}
		}
	})
}

func TestStepRadiusZero(t *testing.T) {
	g := NewGrid(4, 4)
	g.Cells[0][0] = Occupied
	g.Cells[2][3] = Occupied

	// With a 1x1 window and threshold 1 each cell is compared only to
	// itself, so the grid passes through unchanged.
	next := NewAutomaton(0, 1).Step(g)
	assert.Equal(t, g.Cells, next.Cells)
}

func TestStepNegativeRadiusClamped(t *testing.T) {
	a := NewAutomaton(-3, 0.5)
	assert.Equal(t, 0, a.Radius)
}

func TestStepEmptyGrid(t *testing.T) {
	next := NewAutomaton(1, 0.5).Step(NewGrid(0, 0))
	assert.Equal(t, 0, next.Width)
	assert.Equal(t, 0, next.Height)
	assert.Empty(t, next.Cells)
}
