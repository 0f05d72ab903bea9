package i

import (
	dmn "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/domain"
	"github.com/google/uuid"
)

// MapService generates and serves procedural maps.
type MapService interface {
	// Generate runs the full generation pipeline with the given
	// parameters and persists the result.
	Generate(name string, params dmn.GenerationParams) (*dmn.MapRecord, error)

	// ByID retrieves a stored map.
	ByID(id uuid.UUID) (*dmn.MapRecord, error)

	// Latest retrieves up to limit maps, newest first.
	Latest(limit int64) ([]*dmn.MapRecord, error)

	// Regenerate reruns an existing map's parameters under a fresh seed,
	// keeping its identity.
	Regenerate(id uuid.UUID) (*dmn.MapRecord, error)

	// Delete removes a stored map.
	Delete(id uuid.UUID) error
}
