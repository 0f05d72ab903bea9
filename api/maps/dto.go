// Package mapapi provides structures and utilities for serving generated
// maps over HTTP.
package mapapi

import (
	"time"

	dmn "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/domain"
)

// GenerateRequest represents a request to generate a new map. Numeric
// fields left at zero fall back to the generation defaults.
type GenerateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Iterations  int     `json:"iterations"`
	FillDensity float64 `json:"fill_density"`

	Radius    int     `json:"radius"`
	Threshold float64 `json:"threshold"`

	Walks        int `json:"walks"`
	StepsPerWalk int `json:"steps_per_walk"`
	RoomWidth    int `json:"room_width"`
	RoomHeight   int `json:"room_height"`

	RoomChance     float64 `json:"room_chance"`
	RoomChanceStep float64 `json:"room_chance_step"`
	TurnChance     float64 `json:"turn_chance"`
	TurnChanceStep float64 `json:"turn_chance_step"`
	ResetToInitial bool    `json:"reset_to_initial"`

	Seed int64 `json:"seed"`
}

// Params merges the request over the generation defaults.
func (r *GenerateRequest) Params() dmn.GenerationParams {
	params := dmn.DefaultGenerationParams()
	if r.Width > 0 {
		params.Width = r.Width
	}
	if r.Height > 0 {
		params.Height = r.Height
	}
	if r.Iterations > 0 {
		params.Iterations = r.Iterations
	}
	if r.FillDensity > 0 {
		params.FillDensity = r.FillDensity
	}
	if r.Radius > 0 {
		params.Radius = r.Radius
	}
	if r.Threshold > 0 {
		params.Threshold = r.Threshold
	}
	if r.Walks > 0 {
		params.Walks = r.Walks
	}
	if r.StepsPerWalk > 0 {
		params.StepsPerWalk = r.StepsPerWalk
	}
	if r.RoomWidth > 0 {
		params.RoomWidth = r.RoomWidth
	}
	if r.RoomHeight > 0 {
		params.RoomHeight = r.RoomHeight
	}
	if r.RoomChance > 0 {
		params.RoomChance = r.RoomChance
	}
	if r.RoomChanceStep > 0 {
		params.RoomChanceStep = r.RoomChanceStep
	}
	if r.TurnChance > 0 {
		params.TurnChance = r.TurnChance
	}
	if r.TurnChanceStep > 0 {
		params.TurnChanceStep = r.TurnChanceStep
	}
	params.ResetToInitial = r.ResetToInitial
	params.Seed = r.Seed
	return params
}

// MapResponse represents a generated map returned to the client.
type MapResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Params    dmn.GenerationParams `json:"params"`
	Cells     [][]int              `json:"cells"`
	AgentRow  int                  `json:"agent_row"`
	AgentCol  int                  `json:"agent_col"`
	CreatedAt time.Time            `json:"created_at"`
}

func newMapResponse(record *dmn.MapRecord) *MapResponse {
	return &MapResponse{
		ID:        record.ID.String(),
		Name:      record.Name,
		Params:    record.Params,
		Cells:     record.Cells,
		AgentRow:  record.AgentRow,
		AgentCol:  record.AgentCol,
		CreatedAt: record.CreatedAt,
	}
}
