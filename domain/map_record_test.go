package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultGenerationParams(t *testing.T) {
	params := DefaultGenerationParams()

	assert.Equal(t, 20, params.Width)
	assert.Equal(t, 10, params.Height)
	assert.Equal(t, 5, params.Iterations)
	assert.Equal(t, 1, params.Radius)
	assert.Equal(t, 0.5, params.Threshold)
	assert.Equal(t, 5, params.Walks)
	assert.Equal(t, 10, params.StepsPerWalk)
	assert.Equal(t, 3, params.RoomWidth)
	assert.Equal(t, 5, params.RoomHeight)
	assert.Equal(t, 0.1, params.RoomChance)
	assert.Equal(t, 0.05, params.RoomChanceStep)
	assert.Equal(t, 0.2, params.TurnChance)
	assert.Equal(t, 0.03, params.TurnChanceStep)
	assert.NoError(t, params.Validate())
}

func TestGenerationParamsValidate(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		params := DefaultGenerationParams()
		params.Width = 0
		assert.ErrorIs(t, params.Validate(), ErrInvalidDimensions)

		params = DefaultGenerationParams()
		params.Height = -2
		assert.ErrorIs(t, params.Validate(), ErrInvalidDimensions)
	})

	t.Run("rejects negative iterations", func(t *testing.T) {
		params := DefaultGenerationParams()
		params.Iterations = -1
		assert.ErrorIs(t, params.Validate(), ErrInvalidIterations)
	})

	t.Run("tolerates out-of-range chances", func(t *testing.T) {
		params := DefaultGenerationParams()
		params.Threshold = 2.5
		params.TurnChance = -1
		assert.NoError(t, params.Validate())
	})
}

func TestNewMapRecord(t *testing.T) {
	t.Run("assigns identity and timestamp", func(t *testing.T) {
		record, err := NewMapRecord(MapRecordConfig{
			Name:   "caves-01",
			Params: DefaultGenerationParams(),
			Cells:  [][]int{{0, 1}, {1, 0}},
		})

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, record.ID)
		assert.Equal(t, "caves-01", record.Name)
		assert.False(t, record.CreatedAt.IsZero())
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		params := DefaultGenerationParams()
		params.Width = 0

		record, err := NewMapRecord(MapRecordConfig{
			Name:   "bad",
			Params: params,
		})

		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}
