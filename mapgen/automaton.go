package mapgen

// Automaton recomputes every cell of a grid from the occupancy ratio of its
// square neighborhood, producing cave-like blobs out of noise.
type Automaton struct {
	// Radius is the half-width of the neighborhood window, so the window
	// spans (2*Radius+1)^2 cells including the cell itself.
	Radius int
	// Threshold is the occupancy ratio at or above which a cell becomes
	// Occupied in the next generation. Values outside [0,1] are allowed
	// and simply saturate: 0 turns every cell on, above 1 turns every
	// cell off.
	Threshold float64
}

// NewAutomaton creates an automaton, clamping a negative radius to zero.
func NewAutomaton(radius int, threshold float64) *Automaton {
	if radius < 0 {
		radius = 0
	}
	return &Automaton{
		Radius:    radius,
		Threshold: threshold,
	}
}

// Step computes the next generation of the grid and returns it as a fresh
// grid, leaving the input untouched. Every cell is recomputed from the same
// prior generation: the output acts as the second buffer, so no cell ever
// reads a half-updated neighbor. Cells outside the grid count as occupied,
// which biases the rule toward closing off the map edges.
//
// Step consumes no randomness; identical inputs always produce identical
// outputs.
func (a *Automaton) Step(g *Grid) *Grid {
	next := NewGrid(g.Width, g.Height)
	window := (2*a.Radius + 1) * (2*a.Radius + 1)

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			count := 0
			for dRow := -a.Radius; dRow <= a.Radius; dRow++ {
				for dCol := -a.Radius; dCol <= a.Radius; dCol++ {
					nRow, nCol := row+dRow, col+dCol
					if !g.InBounds(nRow, nCol) {
						count++
						continue
					}
					if g.Cells[nRow][nCol] == Occupied {
						count++
					}
				}
			}

			if float64(count)/float64(window) >= a.Threshold {
				next.Cells[row][col] = Occupied
			}
		}
	}

	return next
}
