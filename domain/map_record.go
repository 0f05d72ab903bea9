// Package domain holds the persistent models of the map generation service.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Default generation parameters, matching the tuning the generator was
// originally calibrated with.
const (
	DefaultWidth      = 20
	DefaultHeight     = 10
	DefaultIterations = 5

	DefaultRadius    = 1
	DefaultThreshold = 0.5

	DefaultWalks        = 5
	DefaultStepsPerWalk = 10
	DefaultRoomWidth    = 3
	DefaultRoomHeight   = 5

	DefaultRoomChance     = 0.1
	DefaultRoomChanceStep = 0.05
	DefaultTurnChance     = 0.2
	DefaultTurnChanceStep = 0.03
)

var (
	// ErrInvalidDimensions is returned when a map is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("map dimensions must be positive")
	// ErrInvalidIterations is returned when a negative iteration count is
	// requested.
	ErrInvalidIterations = errors.New("iteration count must not be negative")
)

// GenerationParams is the full tuning surface of one map generation run:
// grid size, iteration count, the automaton's window and threshold, and the
// drunk agent's walk and chance settings.
type GenerationParams struct {
	Width      int `bson:"width" json:"width"`
	Height     int `bson:"height" json:"height"`
	Iterations int `bson:"iterations" json:"iterations"`

	// FillDensity seeds the grid with random occupied cells before the
	// first iteration. Zero starts from an all-empty grid.
	FillDensity float64 `bson:"fillDensity" json:"fill_density"`

	Radius    int     `bson:"radius" json:"radius"`
	Threshold float64 `bson:"threshold" json:"threshold"`

	Walks        int `bson:"walks" json:"walks"`
	StepsPerWalk int `bson:"stepsPerWalk" json:"steps_per_walk"`
	RoomWidth    int `bson:"roomWidth" json:"room_width"`
	RoomHeight   int `bson:"roomHeight" json:"room_height"`

	RoomChance     float64 `bson:"roomChance" json:"room_chance"`
	RoomChanceStep float64 `bson:"roomChanceStep" json:"room_chance_step"`
	TurnChance     float64 `bson:"turnChance" json:"turn_chance"`
	TurnChanceStep float64 `bson:"turnChanceStep" json:"turn_chance_step"`

	// ResetToInitial switches the agent's fired chances to reset to the
	// configured starting values instead of the legacy fixed constants.
	ResetToInitial bool `bson:"resetToInitial" json:"reset_to_initial"`

	// Seed drives the random source for the whole run. Zero asks the
	// service to pick one, which is then recorded for reproducibility.
	Seed int64 `bson:"seed" json:"seed"`
}

// DefaultGenerationParams returns the calibration defaults above.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Iterations:     DefaultIterations,
		Radius:         DefaultRadius,
		Threshold:      DefaultThreshold,
		Walks:          DefaultWalks,
		StepsPerWalk:   DefaultStepsPerWalk,
		RoomWidth:      DefaultRoomWidth,
		RoomHeight:     DefaultRoomHeight,
		RoomChance:     DefaultRoomChance,
		RoomChanceStep: DefaultRoomChanceStep,
		TurnChance:     DefaultTurnChance,
		TurnChanceStep: DefaultTurnChanceStep,
	}
}

// Validate rejects parameter sets the generators cannot produce a map from.
// Chances and the threshold are deliberately not range-checked: the
// generators clamp or saturate on out-of-range values instead of failing.
func (p GenerationParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return ErrInvalidDimensions
	}
	if p.Iterations < 0 {
		return ErrInvalidIterations
	}
	return nil
}

// MapRecord is one generated map together with everything needed to
// reproduce it.
type MapRecord struct {
	ID        uuid.UUID        `bson:"_id" json:"id"`
	Name      string           `bson:"name" json:"name"`
	Params    GenerationParams `bson:"params" json:"params"`
	Cells     [][]int          `bson:"cells" json:"cells"`
	AgentRow  int              `bson:"agentRow" json:"agent_row"`
	AgentCol  int              `bson:"agentCol" json:"agent_col"`
	CreatedAt time.Time        `bson:"createdAt" json:"created_at"`
}

// MapRecordConfig carries the fields needed to create a MapRecord.
type MapRecordConfig struct {
	Name     string
	Params   GenerationParams
	Cells    [][]int
	AgentRow int
	AgentCol int
}

// NewMapRecord creates a record with a fresh ID and timestamp after
// validating the parameters it claims to be generated from.
func NewMapRecord(cfg MapRecordConfig) (*MapRecord, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	return &MapRecord{
		ID:        uuid.New(),
		Name:      cfg.Name,
		Params:    cfg.Params,
		Cells:     cfg.Cells,
		AgentRow:  cfg.AgentRow,
		AgentCol:  cfg.AgentCol,
		CreatedAt: time.Now().UTC(),
	}, nil
}
