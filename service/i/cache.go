package i

import (
	"context"

	dmn "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/domain"
	"github.com/google/uuid"
)

// MapCache keeps recently served maps close to the API so repeated reads
// skip the repository.
type MapCache interface {
	// Set stores a record, replacing any cached copy.
	Set(ctx context.Context, record *dmn.MapRecord) error

	// Get retrieves a cached record. A miss is reported as an error.
	Get(ctx context.Context, id uuid.UUID) (*dmn.MapRecord, error)

	// Evict drops a record from the cache. Evicting a missing record is
	// not an error.
	Evict(ctx context.Context, id uuid.UUID) error
}
