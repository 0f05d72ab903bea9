package mapgen

import (
	"math/rand"
	"time"
)

// Reset values the adaptive chances snap back to after firing. These mirror
// the original generator, which reset to fixed constants regardless of the
// configured starting chances; set AgentConfig.ResetToInitial to reset to
// the configured values instead.
const (
	legacyTurnChanceReset = 0.2
	legacyRoomChanceReset = 0.1
)

// The four axis-aligned step deltas as (dRow, dCol), indexed by a uniform
// draw in [0,4).
var directions = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// AgentConfig holds the tunables of a drunk agent.
type AgentConfig struct {
	// Walks is the number of walk phases per call to Walk.
	Walks int
	// StepsPerWalk is the number of movement steps in each walk phase.
	StepsPerWalk int

	// RoomWidth and RoomHeight are the full extents of carved rooms, in
	// columns and rows respectively. Carving covers half the extent on
	// each side of the agent.
	RoomWidth  int
	RoomHeight int

	// TurnChance is the starting probability of rerolling the direction
	// after a successful step. While no turn fires it drifts upward by
	// TurnChanceStep per step, then resets.
	TurnChance     float64
	TurnChanceStep float64

	// RoomChance is the starting probability of carving a room at the end
	// of a walk phase, drifting upward by RoomChanceStep per phase until
	// a carve fires.
	RoomChance     float64
	RoomChanceStep float64

	// ResetToInitial makes fired chances reset to the configured
	// TurnChance/RoomChance instead of the legacy fixed constants.
	ResetToInitial bool
}

// Agent is a drunk agent: a random walker that marks the cells it visits as
// occupied and occasionally carves a rectangular room around itself. The
// agent keeps its position across calls to Walk so successive passes over
// the same map continue from where the previous one ended.
type Agent struct {
	// Row and Col are the agent's current position, owned by the agent
	// and updated by Walk. Callers may reposition the agent between
	// calls; out-of-bounds positions are tolerated and simply never
	// marked.
	Row int
	Col int

	cfg        AgentConfig
	dRow, dCol int
	turnChance float64
	roomChance float64
	rng        *rand.Rand
}

// NewAgent creates an agent at the given starting cell. A nil rng falls back
// to a clock-seeded source; inject a seeded one for reproducible maps.
func NewAgent(cfg AgentConfig, row, col int, rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent{
		Row:        row,
		Col:        col,
		cfg:        cfg,
		dRow:       0,
		dCol:       1,
		turnChance: cfg.TurnChance,
		roomChance: cfg.RoomChance,
		rng:        rng,
	}
}

// Chances returns the current adaptive turn and room probabilities.
func (a *Agent) Chances() (turn, room float64) {
	return a.turnChance, a.roomChance
}

// Walk runs the agent for Walks phases of StepsPerWalk steps each and
// returns the resulting grid as a fresh copy, leaving the input untouched.
//
// Each step marks the agent's cell, then tries to advance one cell along the
// current direction. A step that would leave the grid rerolls the direction
// and ends there; a successful step may additionally reroll the direction
// with the adaptive turn chance. At the end of each phase the agent may
// carve a room centered on itself with the adaptive room chance; room cells
// falling outside the grid are skipped.
//
// Direction and both adaptive chances are re-initialized at the start of
// every call, so each call behaves like a fresh agent standing at the
// carried-over position.
func (a *Agent) Walk(g *Grid) *Grid {
	next := g.Clone()

	a.dRow, a.dCol = 0, 1
	a.turnChance = a.cfg.TurnChance
	a.roomChance = a.cfg.RoomChance

	for walk := 0; walk < a.cfg.Walks; walk++ {
		for step := 0; step < a.cfg.StepsPerWalk; step++ {
			if next.InBounds(a.Row, a.Col) {
				next.Cells[a.Row][a.Col] = Occupied
			}

			row, col := a.Row+a.dRow, a.Col+a.dCol
			if !next.InBounds(row, col) {
				// Bumped into the edge: pick a new heading and
				// skip the rest of this step.
				a.reroll()
				continue
			}
			a.Row, a.Col = row, col

			if a.rng.Float64() < a.turnChance {
				a.reroll()
				a.turnChance = legacyTurnChanceReset
				if a.cfg.ResetToInitial {
					a.turnChance = a.cfg.TurnChance
				}
			} else {
				a.turnChance += a.cfg.TurnChanceStep
			}
		}

		if a.rng.Float64() < a.roomChance {
			a.carveRoom(next)
			a.roomChance = legacyRoomChanceReset
			if a.cfg.ResetToInitial {
				a.roomChance = a.cfg.RoomChance
			}
		} else {
			a.roomChance += a.cfg.RoomChanceStep
		}
	}

	return next
}

// reroll picks a new direction uniformly from the four axis-aligned options.
func (a *Agent) reroll() {
	d := directions[a.rng.Intn(len(directions))]
	a.dRow, a.dCol = d[0], d[1]
}

// carveRoom fills the rectangle centered on the agent, clipped to the grid.
func (a *Agent) carveRoom(g *Grid) {
	halfRows := a.cfg.RoomHeight / 2
	halfCols := a.cfg.RoomWidth / 2
	for dRow := -halfRows; dRow <= halfRows; dRow++ {
		for dCol := -halfCols; dCol <= halfCols; dCol++ {
			row, col := a.Row+dRow, a.Col+dCol
			if g.InBounds(row, col) {
				g.Cells[row][col] = Occupied
			}
		}
	}
}
