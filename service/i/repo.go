package i

import (
	dmn "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/domain"
	"github.com/google/uuid"
)

// MapRepo defines the interface for map persistence operations.
type MapRepo interface {
	// Save inserts or updates a map record. If the record already
	// exists, it updates the stored copy. Otherwise, it creates a new one.
	Save(record *dmn.MapRecord) error

	// ByID retrieves a map by its unique ID.
	// Returns an error if the map is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.MapRecord, error)

	// Latest retrieves up to limit maps, newest first.
	Latest(limit int64) ([]*dmn.MapRecord, error)

	// Delete removes a map by its ID. Deleting a missing map is an error.
	Delete(id uuid.UUID) error
}
