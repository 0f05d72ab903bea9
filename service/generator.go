// Package service wires the map generators to storage: it owns the
// iteration loop alternating the cellular automaton and the drunk agent,
// and persists and caches what comes out of it.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/domain"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/mapgen"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/service/i"
	"github.com/google/uuid"
)

const (
	// regenLockKeyFmt keys the distributed lock guarding regeneration of
	// a single map across replicas.
	regenLockKeyFmt = "mapgen:regen:%s"

	cacheOpTimeout = 500 * time.Millisecond
)

// MapGenerator implements i.MapService on top of the mapgen package.
type MapGenerator struct {
	repo   i.MapRepo
	cache  i.MapCache
	locker i.Locker
	logger i.Logger
}

// MapGeneratorConfig holds the dependencies of a MapGenerator.
type MapGeneratorConfig struct {
	Repo   i.MapRepo
	Cache  i.MapCache
	Locker i.Locker
	Logger i.Logger
}

// NewMapGenerator creates a MapGenerator from its dependencies. Every
// dependency is required.
func NewMapGenerator(cfg *MapGeneratorConfig) (*MapGenerator, error) {
	if cfg == nil || cfg.Repo == nil || cfg.Cache == nil || cfg.Locker == nil || cfg.Logger == nil {
		return nil, errors.New("map generator: missing dependency")
	}
	return &MapGenerator{
		repo:   cfg.Repo,
		cache:  cfg.Cache,
		locker: cfg.Locker,
		logger: cfg.Logger,
	}, nil
}

// Generate runs the full pipeline and persists the result. A zero seed is
// replaced with a clock-derived one, and whichever seed was used ends up in
// the record so the map can be regenerated bit for bit.
func (s *MapGenerator) Generate(name string, params dmn.GenerationParams) (*dmn.MapRecord, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}

	grid, agentRow, agentCol := buildMap(params)
	record, err := dmn.NewMapRecord(dmn.MapRecordConfig{
		Name:     name,
		Params:   params,
		Cells:    grid.Cells,
		AgentRow: agentRow,
		AgentCol: agentCol,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(record); err != nil {
		return nil, err
	}
	s.cacheSet(record)

	s.logger.Info(fmt.Sprintf("Generated map %s (%dx%d, seed %d)", record.ID, params.Width, params.Height, params.Seed))
	return record, nil
}

// ByID serves from the cache when possible and falls back to the
// repository, repopulating the cache on the way out.
func (s *MapGenerator) ByID(id uuid.UUID) (*dmn.MapRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()

	if record, err := s.cache.Get(ctx, id); err == nil {
		return record, nil
	}

	record, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(record)
	return record, nil
}

// Latest retrieves up to limit maps, newest first.
func (s *MapGenerator) Latest(limit int64) ([]*dmn.MapRecord, error) {
	return s.repo.Latest(limit)
}

// Regenerate reruns a stored map's parameters under a fresh seed, keeping
// its ID and name. The per-map lock keeps two replicas from racing on the
// same record.
func (s *MapGenerator) Regenerate(id uuid.UUID) (*dmn.MapRecord, error) {
	release, err := s.locker.Lock(fmt.Sprintf(regenLockKeyFmt, id))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := release(); err != nil {
			s.logger.Error(fmt.Sprintf("Releasing regenerate lock for %s: %v", id, err))
		}
	}()

	record, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	params := record.Params
	params.Seed = time.Now().UnixNano()

	grid, agentRow, agentCol := buildMap(params)
	record.Params = params
	record.Cells = grid.Cells
	record.AgentRow = agentRow
	record.AgentCol = agentCol
	record.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(record); err != nil {
		return nil, err
	}
	s.cacheSet(record)

	s.logger.Info(fmt.Sprintf("Regenerated map %s with seed %d", record.ID, params.Seed))
	return record, nil
}

// Delete removes a map from the repository and the cache.
func (s *MapGenerator) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := s.cache.Evict(ctx, id); err != nil {
		s.logger.Error(fmt.Sprintf("Evicting map %s from cache: %v", id, err))
	}
	return nil
}

// cacheSet stores a record in the cache, logging instead of failing: the
// cache is an accelerator, not a source of truth.
func (s *MapGenerator) cacheSet(record *dmn.MapRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := s.cache.Set(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Caching map %s: %v", record.ID, err))
	}
}

// buildMap is the generation pipeline itself: seed the grid, then alternate
// one automaton step and one agent walk per iteration, threading the agent's
// position and the evolving grid through the loop. Returns the final grid
// and the agent's resting position.
func buildMap(params dmn.GenerationParams) (*mapgen.Grid, int, int) {
	rng := rand.New(rand.NewSource(params.Seed))

	grid := mapgen.NewGrid(params.Width, params.Height)
	if params.FillDensity > 0 {
		grid.RandomFill(params.FillDensity, rng)
	}

	automaton := mapgen.NewAutomaton(params.Radius, params.Threshold)
	agent := mapgen.NewAgent(mapgen.AgentConfig{
		Walks:          params.Walks,
		StepsPerWalk:   params.StepsPerWalk,
		RoomWidth:      params.RoomWidth,
		RoomHeight:     params.RoomHeight,
		TurnChance:     params.TurnChance,
		TurnChanceStep: params.TurnChanceStep,
		RoomChance:     params.RoomChance,
		RoomChanceStep: params.RoomChanceStep,
		ResetToInitial: params.ResetToInitial,
	}, params.Height/2, params.Width/2, rng)

	for iteration := 0; iteration < params.Iterations; iteration++ {
		grid = automaton.Step(grid)
		grid = agent.Walk(grid)
	}

	return grid, agent.Row, agent.Col
}
